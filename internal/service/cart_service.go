package service

import (
	"context"
	"errors"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	minCartQuantity = 1
	maxCartQuantity = 32
)

type CartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
}

func NewCartService(cartRepo repository.CartRepository, productRepo repository.ProductRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

type CartView struct {
	Items []domain.ProductQuantity `json:"items"`
	Total decimal.Decimal          `json:"total"`
}

func (s *CartService) View(ctx context.Context, userID uint) (*CartView, error) {
	items, err := s.cartRepo.Items(ctx, userID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return &CartView{Items: items, Total: domain.TotalCost(items)}, nil
}

func (s *CartService) Add(ctx context.Context, userID, productID uint, quantity int) error {
	if quantity < minCartQuantity || quantity > maxCartQuantity {
		return domain.Validation("invalid quantity, please only add 1 to 32 of an item")
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Validation("product not found")
		}
		return domain.Internal(err)
	}
	if !product.Listed {
		return domain.Validation("this item is no longer listed")
	}

	inCart, err := s.cartRepo.Contains(ctx, userID, productID)
	if err != nil {
		return domain.Internal(err)
	}
	if inCart {
		return domain.Validation("this item is already in your cart")
	}

	item := &domain.CartItem{UserID: userID, ProductID: productID, Quantity: quantity}
	if err := s.cartRepo.Add(ctx, item); err != nil {
		// Concurrent adds race to the composite key; the duplicate is the
		// same user error as the pre-check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.Validation("this item is already in your cart")
		}
		return domain.Internal(err)
	}
	return nil
}

func (s *CartService) Remove(ctx context.Context, userID, productID uint) error {
	if err := s.cartRepo.Remove(ctx, userID, productID); err != nil {
		return domain.Internal(err)
	}
	return nil
}
