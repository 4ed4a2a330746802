package service

import (
	"github.com/dom/securecart/internal/config"
	"github.com/dom/securecart/internal/repository"
)

type Services struct {
	Auth    *AuthService
	Catalog *CatalogService
	Cart    *CartService
	Like    *LikeService
	Order   *OrderService
}

func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	return &Services{
		Auth:    NewAuthService(repos.User, repos.Session),
		Catalog: NewCatalogService(repos.Product, repos.Like, cfg.ImageDir),
		Cart:    NewCartService(repos.Cart, repos.Product),
		Like:    NewLikeService(repos.Like, repos.Product),
		Order:   NewOrderService(repos.Order, repos.Cart),
	}
}
