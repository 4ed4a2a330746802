package postgres

import (
	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewConnection(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Session{},
		&domain.Product{},
		&domain.CartItem{},
		&domain.LikedProduct{},
		&domain.Address{},
		&domain.Order{},
		&domain.OrderItem{},
	)
}

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		User:    NewUserRepository(db),
		Session: NewSessionRepository(db),
		Product: NewProductRepository(db),
		Cart:    NewCartRepository(db),
		Like:    NewLikeRepository(db),
		Order:   NewOrderRepository(db),
	}
}
