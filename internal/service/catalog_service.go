package service

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const homepageProductCount = 7

// CatalogService serves the public product views and the admin-gated
// product management operations. Uploaded images live on disk under
// imageDir with generated names; the database stores only the name.
type CatalogService struct {
	productRepo repository.ProductRepository
	likeRepo    repository.LikeRepository
	imageDir    string
}

func NewCatalogService(productRepo repository.ProductRepository, likeRepo repository.LikeRepository, imageDir string) *CatalogService {
	return &CatalogService{
		productRepo: productRepo,
		likeRepo:    likeRepo,
		imageDir:    imageDir,
	}
}

func (s *CatalogService) ListListed(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListListed(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return products, nil
}

// HomepageProducts returns a random selection of listed products.
func (s *CatalogService) HomepageProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListRandom(ctx, homepageProductCount)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return products, nil
}

// ProductView is a product plus whether the requesting user liked it.
// Liked is always false for anonymous requests.
type ProductView struct {
	Product domain.Product `json:"product"`
	Liked   bool           `json:"liked"`
}

func (s *CatalogService) GetProduct(ctx context.Context, id uint, userID uint) (*ProductView, error) {
	product, err := s.productRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Validation("product not found")
		}
		return nil, domain.Internal(err)
	}

	view := &ProductView{Product: *product}
	if userID != 0 {
		liked, err := s.likeRepo.IsLiked(ctx, userID, id)
		if err != nil {
			return nil, domain.Internal(err)
		}
		view.Liked = liked
	}
	return view, nil
}

func (s *CatalogService) ListAll(ctx context.Context) ([]domain.Product, error) {
	products, err := s.productRepo.ListAll(ctx)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return products, nil
}

type AddProductInput struct {
	Title       string
	Description string
	Cost        string
	Image       io.Reader
	ImageName   string
}

func (s *CatalogService) AddProduct(ctx context.Context, input AddProductInput) (*domain.Product, error) {
	if input.Title == "" || input.Description == "" || input.Image == nil {
		return nil, domain.Validation("title, description and image are required")
	}
	cost, err := decimal.NewFromString(input.Cost)
	if err != nil || cost.IsNegative() {
		return nil, domain.Validation("please enter a valid cost")
	}

	imageName, err := s.storeImage(input.Image, input.ImageName)
	if err != nil {
		return nil, domain.Internal(err)
	}

	product := &domain.Product{
		Title:       input.Title,
		Description: input.Description,
		ImageName:   imageName,
		Cost:        cost,
		Listed:      true,
	}
	if err := s.productRepo.Create(ctx, product); err != nil {
		if rmErr := os.Remove(filepath.Join(s.imageDir, imageName)); rmErr != nil {
			log.Warn().Err(rmErr).Str("image", imageName).Msg("orphaned image after failed insert")
		}
		return nil, domain.Internal(err)
	}
	return product, nil
}

// storeImage writes the upload under a generated name, keeping only the
// original extension. Client-supplied filenames never touch the disk.
func (s *CatalogService) storeImage(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	name := uuid.New().String() + ext

	f, err := os.OpenFile(filepath.Join(s.imageDir, name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return name, nil
}

func (s *CatalogService) RemoveProduct(ctx context.Context, id uint) error {
	imageName, err := s.productRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Validation("product not found")
		}
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return domain.Conflict("unable to remove product, it belongs to existing carts or orders")
		}
		return domain.Internal(err)
	}

	if err := os.Remove(filepath.Join(s.imageDir, imageName)); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("image", imageName).Msg("removing product image")
	}
	return nil
}

func (s *CatalogService) SetListed(ctx context.Context, id uint, listed bool) error {
	if err := s.productRepo.SetListed(ctx, id, listed); err != nil {
		return domain.Internal(err)
	}
	return nil
}
