package service

import (
	"context"
	"errors"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository"
	"gorm.io/gorm"
)

type LikeService struct {
	likeRepo    repository.LikeRepository
	productRepo repository.ProductRepository
}

func NewLikeService(likeRepo repository.LikeRepository, productRepo repository.ProductRepository) *LikeService {
	return &LikeService{
		likeRepo:    likeRepo,
		productRepo: productRepo,
	}
}

func (s *LikeService) List(ctx context.Context, userID uint) ([]domain.Product, error) {
	products, err := s.likeRepo.List(ctx, userID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return products, nil
}

func (s *LikeService) Like(ctx context.Context, userID, productID uint) error {
	if _, err := s.productRepo.GetByID(ctx, productID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Validation("product not found")
		}
		return domain.Internal(err)
	}
	if err := s.likeRepo.Add(ctx, userID, productID); err != nil {
		return domain.Internal(err)
	}
	return nil
}

func (s *LikeService) Unlike(ctx context.Context, userID, productID uint) error {
	if err := s.likeRepo.Remove(ctx, userID, productID); err != nil {
		return domain.Internal(err)
	}
	return nil
}
