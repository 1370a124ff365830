package models

// Product is read-only over the API; rows are seeded directly into the
// store. There is no stock column — inventory tracking is out of scope.
type Product struct {
	ID            uint    `gorm:"primaryKey;autoIncrement" json:"product_id"`
	Name          string  `gorm:"not null" json:"name"`
	Description   string  `json:"description"`
	Cost          float64 `gorm:"not null" json:"cost"`
	ImageFilename string  `json:"image_filename"`
}
