package postgres

import (
	"context"

	"github.com/dom/securecart/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) *likeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) List(ctx context.Context, userID uint) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Model(&domain.Product{}).
		Joins("JOIN liked_products ON liked_products.product_id = products.id").
		Where("liked_products.user_id = ?", userID).
		Find(&products).Error
	return products, err
}

func (r *likeRepository) IsLiked(ctx context.Context, userID, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.LikedProduct{}).
		Where("user_id = ? AND product_id = ?", userID, productID).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *likeRepository) Add(ctx context.Context, userID, productID uint) error {
	// Liking twice is a no-op rather than a conflict.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).
		Create(&domain.LikedProduct{UserID: userID, ProductID: productID}).Error
}

func (r *likeRepository) Remove(ctx context.Context, userID, productID uint) error {
	return r.db.WithContext(ctx).
		Delete(&domain.LikedProduct{}, "user_id = ? AND product_id = ?", userID, productID).Error
}
