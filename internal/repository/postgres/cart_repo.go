package postgres

import (
	"context"

	"github.com/dom/securecart/internal/domain"
	"gorm.io/gorm"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) *cartRepository {
	return &cartRepository{db: db}
}

func (r *cartRepository) Items(ctx context.Context, userID uint) ([]domain.ProductQuantity, error) {
	var rows []domain.CartItem
	err := r.db.WithContext(ctx).Preload("Product").
		Where("user_id = ?", userID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]domain.ProductQuantity, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ProductQuantity{Product: row.Product, Quantity: row.Quantity})
	}
	return items, nil
}

func (r *cartRepository) Contains(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("user_id = ? AND product_id = ?", userID, productID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *cartRepository) Add(ctx context.Context, item *domain.CartItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *cartRepository) Remove(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).
		Delete(&domain.CartItem{}, "user_id = ? AND product_id = ?", userID, productID).Error
}

func (r *cartRepository) Count(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.CartItem{}).
		Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
