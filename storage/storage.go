// Package storage handles files placed under the public image directory.
package storage

import (
	"fmt"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
)

// ImageDir is where product images live; main.go serves it at /images.
const ImageDir = "public/images"

// UniqueFilename names an uploaded image: epoch milliseconds, a random
// 0..1000 suffix, original extension. Collisions are possible but
// acceptable at this scale.
func UniqueFilename(original string) string {
	ext := filepath.Ext(original)
	return fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1001), ext)
}

// SaveUpload writes an uploaded file into dir under a unique name and
// returns the generated filename.
func SaveUpload(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := UniqueFilename(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
