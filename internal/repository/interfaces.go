package repository

import (
	"context"

	"github.com/dom/securecart/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	EmailExists(ctx context.Context, email string) (bool, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByID(ctx context.Context, id string) (*domain.Session, error)
	// GetWithAdmin fetches a session joined with the owning user's admin
	// flag in one query.
	GetWithAdmin(ctx context.Context, id string) (*domain.Session, bool, error)
	// Delete is idempotent; removing an absent session is not an error.
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	GetByID(ctx context.Context, id uint) (*domain.Product, error)
	ListListed(ctx context.Context) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
	ListRandom(ctx context.Context, limit int) ([]domain.Product, error)
	SetListed(ctx context.Context, id uint, listed bool) error
	// Delete removes the product and returns its image name so the caller
	// can clean up the stored file.
	Delete(ctx context.Context, id uint) (imageName string, err error)
}

type CartRepository interface {
	Items(ctx context.Context, userID uint) ([]domain.ProductQuantity, error)
	Contains(ctx context.Context, userID, productID uint) (bool, error)
	Add(ctx context.Context, item *domain.CartItem) error
	Remove(ctx context.Context, userID, productID uint) error
	Count(ctx context.Context, userID uint) (int64, error)
}

type LikeRepository interface {
	List(ctx context.Context, userID uint) ([]domain.Product, error)
	IsLiked(ctx context.Context, userID, productID uint) (bool, error)
	Add(ctx context.Context, userID, productID uint) error
	Remove(ctx context.Context, userID, productID uint) error
}

type OrderRepository interface {
	// PlaceOrder atomically stores the address, creates the order, copies
	// the user's cart rows into order items and clears the cart.
	PlaceOrder(ctx context.Context, userID uint, address *domain.Address) (*domain.Order, error)
	ListByUser(ctx context.Context, userID uint) ([]domain.Order, error)
	// GetForUser enforces ownership: the order must belong to userID.
	GetForUser(ctx context.Context, orderID, userID uint) (*domain.Order, error)
	GetAddress(ctx context.Context, addressID uint) (*domain.Address, error)
	Items(ctx context.Context, orderID uint) ([]domain.ProductQuantity, error)
}

type Repositories struct {
	User    UserRepository
	Session SessionRepository
	Product ProductRepository
	Cart    CartRepository
	Like    LikeRepository
	Order   OrderRepository
}
