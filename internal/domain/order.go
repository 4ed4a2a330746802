package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Address struct {
	ID            uint   `json:"id" gorm:"primaryKey"`
	UserID        uint   `json:"userId" gorm:"not null;index"`
	RecipientName string `json:"recipientName" gorm:"size:255;not null"`
	Line1         string `json:"line1" gorm:"size:255;not null"`
	Line2         string `json:"line2" gorm:"size:255"`
	Postcode      string `json:"postcode" gorm:"size:8;not null"`
	County        string `json:"county" gorm:"size:255;not null"`
}

type Order struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	AddressID uint      `json:"addressId" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

type OrderItem struct {
	OrderID   uint `json:"orderId" gorm:"primaryKey"`
	ProductID uint `json:"productId" gorm:"primaryKey"`
	Quantity  int  `json:"quantity" gorm:"not null"`

	Product Product `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}

// ProductQuantity pairs a product with how many of it a cart or order holds.
type ProductQuantity struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// TotalCost sums cost*quantity across items.
func TotalCost(items []ProductQuantity) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Product.Cost.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total
}
