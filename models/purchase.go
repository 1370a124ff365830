package models

import "time"

type Purchase struct {
	ID         uint     `gorm:"primaryKey;autoIncrement" json:"purchase_id"`
	CustomerID uint     `gorm:"not null;index" json:"customer_id"`
	Customer   Customer `gorm:"foreignKey:CustomerID" json:"-"`
	Street     string   `gorm:"not null" json:"street"`
	City       string   `gorm:"not null" json:"city"`
	Province   string   `gorm:"not null" json:"province"`
	Country    string   `gorm:"not null" json:"country"`
	PostalCode string   `gorm:"not null" json:"postal_code"`
	// Card fields are stored as received and excluded from every response.
	CreditCard   string         `gorm:"not null" json:"-"`
	CreditExpire string         `gorm:"not null" json:"-"`
	CreditCVV    string         `gorm:"not null" json:"-"`
	InvoiceAmt   float64        `json:"invoice_amt"`
	InvoiceTax   float64        `json:"invoice_tax"`
	InvoiceTotal float64        `json:"invoice_total"`
	OrderDate    time.Time      `json:"order_date"`
	Items        []PurchaseItem `gorm:"foreignKey:PurchaseID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

type PurchaseItem struct {
	ID         uint `gorm:"primaryKey;autoIncrement" json:"id"`
	PurchaseID uint `gorm:"index" json:"purchase_id"`
	ProductID  uint `gorm:"not null" json:"product_id"`
	Quantity   int  `gorm:"not null" json:"quantity"`
}
