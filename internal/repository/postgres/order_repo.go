package postgres

import (
	"context"

	"github.com/dom/securecart/internal/domain"
	"gorm.io/gorm"
)

type orderRepository struct {
	db *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *orderRepository {
	return &orderRepository{db: db}
}

func (r *orderRepository) PlaceOrder(ctx context.Context, userID uint, address *domain.Address) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(address).Error; err != nil {
			return err
		}
		order = domain.Order{UserID: userID, AddressID: address.ID}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			"INSERT INTO order_items (order_id, product_id, quantity) SELECT ?, product_id, quantity FROM cart_items WHERE user_id = ?",
			order.ID, userID).Error; err != nil {
			return err
		}
		return tx.Delete(&domain.CartItem{}, "user_id = ?", userID).Error
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint) ([]domain.Order, error) {
	var orders []domain.Order
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).
		Order("id desc").Find(&orders).Error
	return orders, err
}

func (r *orderRepository) GetForUser(ctx context.Context, orderID, userID uint) (*domain.Order, error) {
	var order domain.Order
	err := r.db.WithContext(ctx).
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) GetAddress(ctx context.Context, addressID uint) (*domain.Address, error) {
	var address domain.Address
	err := r.db.WithContext(ctx).First(&address, "id = ?", addressID).Error
	if err != nil {
		return nil, err
	}
	return &address, nil
}

func (r *orderRepository) Items(ctx context.Context, orderID uint) ([]domain.ProductQuantity, error) {
	var rows []domain.OrderItem
	err := r.db.WithContext(ctx).Preload("Product").
		Where("order_id = ?", orderID).Find(&rows).Error
	if err != nil {
		return nil, err
	}
	items := make([]domain.ProductQuantity, 0, len(rows))
	for _, row := range rows {
		items = append(items, domain.ProductQuantity{Product: row.Product, Quantity: row.Quantity})
	}
	return items, nil
}
