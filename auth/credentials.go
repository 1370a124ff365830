package auth

import "golang.org/x/crypto/bcrypt"

// bcryptCost matches the work factor the storefront has always used.
const bcryptCost = 10

// HashPassword produces a salted bcrypt hash. A fresh salt is generated
// per call, so hashing the same plaintext twice gives different outputs.
func HashPassword(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), bcryptCost)
	return string(bytes), err
}

// CheckPassword reports whether plain matches the stored bcrypt hash.
// bcrypt's comparison is constant-time.
func CheckPassword(plain, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
