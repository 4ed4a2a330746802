package postgres

import (
	"context"

	"github.com/dom/securecart/internal/domain"
	"gorm.io/gorm"
)

type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *productRepository {
	return &productRepository{db: db}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.db.WithContext(ctx).Create(product).Error
}

func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).First(&product, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *productRepository) ListListed(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("listed = ?", true).Find(&products).Error
	return products, err
}

func (r *productRepository) ListAll(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Order("id asc").Find(&products).Error
	return products, err
}

func (r *productRepository) ListRandom(ctx context.Context, limit int) ([]domain.Product, error) {
	var products []domain.Product
	err := r.db.WithContext(ctx).Where("listed = ?", true).
		Order("RANDOM()").Limit(limit).Find(&products).Error
	return products, err
}

func (r *productRepository) SetListed(ctx context.Context, id uint, listed bool) error {
	return r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ?", id).Update("listed", listed).Error
}

func (r *productRepository) Delete(ctx context.Context, id uint) (string, error) {
	var product domain.Product
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&product, "id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.Product{}, "id = ?", id).Error
	})
	if err != nil {
		return "", err
	}
	return product.ImageName, nil
}
