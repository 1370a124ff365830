package purchaseControllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/w0411725/FinalProject-API/models"
	"gorm.io/gorm"
)

// -------- Request Structs --------

// PurchaseRequest carries the checkout payload. Numeric invoice fields
// arrive as strings and are coerced, matching the storefront client's
// form encoding. Presence is the only validation applied to them.
type PurchaseRequest struct {
	Street       string `form:"street" json:"street"`
	City         string `form:"city" json:"city"`
	Province     string `form:"province" json:"province"`
	Country      string `form:"country" json:"country"`
	PostalCode   string `form:"postal_code" json:"postal_code"`
	CreditCard   string `form:"credit_card" json:"credit_card"`
	CreditExpire string `form:"credit_expire" json:"credit_expire"`
	CreditCVV    string `form:"credit_cvv" json:"credit_cvv"`
	Cart         string `form:"cart" json:"cart"`
	InvoiceAmt   string `form:"invoice_amt" json:"invoice_amt"`
	InvoiceTax   string `form:"invoice_tax" json:"invoice_tax"`
	InvoiceTotal string `form:"invoice_total" json:"invoice_total"`
}

func (r PurchaseRequest) missingFields() []string {
	fields := []struct {
		name  string
		value string
	}{
		{"street", r.Street},
		{"city", r.City},
		{"province", r.Province},
		{"country", r.Country},
		{"postal_code", r.PostalCode},
		{"credit_card", r.CreditCard},
		{"credit_expire", r.CreditExpire},
		{"credit_cvv", r.CreditCVV},
		{"cart", r.Cart},
		{"invoice_amt", r.InvoiceAmt},
		{"invoice_tax", r.InvoiceTax},
		{"invoice_total", r.InvoiceTotal},
	}

	var missing []string
	for _, f := range fields {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// -------- Cart Parsing --------

// CartLine is one aggregated cart entry.
type CartLine struct {
	ProductID uint
	Quantity  int
}

// ParseCart expands a comma-separated product id list into per-product
// quantities. Repeated ids increment the quantity; lines keep the order
// ids first appear in.
func ParseCart(cart string) ([]CartLine, error) {
	var lines []CartLine
	index := make(map[uint]int)

	for _, tok := range strings.Split(cart, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		id64, err := strconv.ParseUint(tok, 10, 64)
		if err != nil || id64 == 0 {
			return nil, fmt.Errorf("invalid product ID %q in cart", tok)
		}
		id := uint(id64)
		if pos, ok := index[id]; ok {
			lines[pos].Quantity++
			continue
		}
		index[id] = len(lines)
		lines = append(lines, CartLine{ProductID: id, Quantity: 1})
	}

	if len(lines) == 0 {
		return nil, errors.New("cart is empty")
	}
	return lines, nil
}

type unknownProductError struct {
	ID uint
}

func (e *unknownProductError) Error() string {
	return fmt.Sprintf("Product %d does not exist", e.ID)
}

// -------- Handler --------

// CreatePurchase records a checkout for the logged-in customer. The
// Purchase row and all PurchaseItem rows are created in one transaction:
// an unknown product id rolls back the whole purchase.
// POST /products/purchase (session required)
func CreatePurchase(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		customerID := c.GetUint("customer_id")
		if customerID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not logged in"})
			return
		}

		var req PurchaseRequest
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		if missing := req.missingFields(); len(missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "All fields are required",
				"missing": missing,
			})
			return
		}

		lines, err := ParseCart(req.Cart)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		invoiceAmt, err := strconv.ParseFloat(req.InvoiceAmt, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice_amt"})
			return
		}
		invoiceTax, err := strconv.ParseFloat(req.InvoiceTax, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice_tax"})
			return
		}
		invoiceTotal, err := strconv.ParseFloat(req.InvoiceTotal, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid invoice_total"})
			return
		}

		purchase := models.Purchase{
			CustomerID:   customerID,
			Street:       req.Street,
			City:         req.City,
			Province:     req.Province,
			Country:      req.Country,
			PostalCode:   req.PostalCode,
			CreditCard:   req.CreditCard,
			CreditExpire: req.CreditExpire,
			CreditCVV:    req.CreditCVV,
			InvoiceAmt:   invoiceAmt,
			InvoiceTax:   invoiceTax,
			InvoiceTotal: invoiceTotal,
			OrderDate:    time.Now(),
		}

		var items []models.PurchaseItem
		err = db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&purchase).Error; err != nil {
				return err
			}

			for _, line := range lines {
				var product models.Product
				if err := tx.First(&product, line.ProductID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return &unknownProductError{ID: line.ProductID}
					}
					return err
				}

				item := models.PurchaseItem{
					PurchaseID: purchase.ID,
					ProductID:  line.ProductID,
					Quantity:   line.Quantity,
				}
				if err := tx.Create(&item).Error; err != nil {
					return err
				}
				items = append(items, item)
			}
			return nil
		})
		if err != nil {
			var unknown *unknownProductError
			if errors.As(err, &unknown) {
				c.JSON(http.StatusBadRequest, gin.H{"error": unknown.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record purchase"})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"purchase": purchase,
			"items":    items,
		})
	}
}
