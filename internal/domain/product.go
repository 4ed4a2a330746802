package domain

import (
	"github.com/shopspring/decimal"
)

type Product struct {
	ID          uint            `json:"id" gorm:"primaryKey"`
	Title       string          `json:"title" gorm:"size:255;not null"`
	Description string          `json:"description" gorm:"size:255;not null"`
	ImageName   string          `json:"imageName" gorm:"size:255;not null"`
	Cost        decimal.Decimal `json:"cost" gorm:"type:numeric(12,2);not null"`
	Listed      bool            `json:"listed" gorm:"not null;default:true"`
}

// CartItem is one product in a user's cart. A product appears at most once
// per cart; quantity is bounded elsewhere at 1..32.
type CartItem struct {
	UserID    uint `json:"userId" gorm:"primaryKey"`
	ProductID uint `json:"productId" gorm:"primaryKey"`
	Quantity  int  `json:"quantity" gorm:"not null"`

	Product Product `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
}

type LikedProduct struct {
	UserID    uint `json:"userId" gorm:"primaryKey"`
	ProductID uint `json:"productId" gorm:"primaryKey"`

	Product Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
