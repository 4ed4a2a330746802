package service

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderService struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
}

func NewOrderService(orderRepo repository.OrderRepository, cartRepo repository.CartRepository) *OrderService {
	return &OrderService{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
	}
}

// CheckoutInput is the combined payment-and-delivery form. Card details are
// validated and discarded; nothing payment-related is ever stored.
type CheckoutInput struct {
	CardNumber    string
	Expiry        string
	CVV           string
	RecipientName string
	Line1         string
	Line2         string
	Postcode      string
	County        string
}

func stripSpaces(s string) string {
	return strings.Join(strings.Fields(s), "")
}

func (in *CheckoutInput) validate() error {
	cardNum := stripSpaces(in.CardNumber)
	if len(cardNum) == 0 || len(cardNum) > 16 {
		return domain.Validation("please enter a valid card number")
	}
	if _, err := strconv.ParseUint(cardNum, 10, 64); err != nil {
		return domain.Validation("please enter a valid card number")
	}

	cvv := stripSpaces(in.CVV)
	if len(cvv) != 3 {
		return domain.Validation("please enter a valid cvv number")
	}
	if _, err := strconv.ParseUint(cvv, 10, 64); err != nil {
		return domain.Validation("please enter a valid cvv number")
	}

	parts := strings.Split(in.Expiry, "/")
	if len(parts) != 2 {
		return domain.Validation("please enter a valid expiry date")
	}
	month, errM := strconv.Atoi(parts[0])
	year, errY := strconv.Atoi(parts[1])
	currentYear := time.Now().UTC().Year() - 2000
	if errM != nil || errY != nil || month < 1 || month > 12 || year < currentYear || year > 99 {
		return domain.Validation("please enter a valid expiry date")
	}

	postcode := stripSpaces(in.Postcode)
	if len(postcode) < 5 || len(postcode) > 7 {
		return domain.Validation("please enter a valid postcode")
	}
	in.Postcode = postcode

	if in.RecipientName == "" {
		return domain.Validation("please enter your name")
	}
	if in.Line1 == "" || in.County == "" {
		return domain.Validation("please enter your address")
	}
	return nil
}

// Checkout validates the form, requires a non-empty cart and places the
// order atomically: address row, order row, cart rows copied to order
// items, cart cleared.
func (s *OrderService) Checkout(ctx context.Context, userID uint, input CheckoutInput) (*domain.Order, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	count, err := s.cartRepo.Count(ctx, userID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	if count == 0 {
		return nil, domain.Validation("please add items to your cart to buy them")
	}

	address := &domain.Address{
		UserID:        userID,
		RecipientName: input.RecipientName,
		Line1:         input.Line1,
		Line2:         input.Line2,
		Postcode:      input.Postcode,
		County:        input.County,
	}
	order, err := s.orderRepo.PlaceOrder(ctx, userID, address)
	if err != nil {
		return nil, domain.Internal(err)
	}
	return order, nil
}

// OrderSummary is one past order with its delivery address.
type OrderSummary struct {
	Order   domain.Order   `json:"order"`
	Address domain.Address `json:"address"`
}

func (s *OrderService) List(ctx context.Context, userID uint) ([]OrderSummary, error) {
	orders, err := s.orderRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domain.Internal(err)
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, order := range orders {
		address, err := s.orderRepo.GetAddress(ctx, order.AddressID)
		if err != nil {
			return nil, domain.Internal(err)
		}
		summaries = append(summaries, OrderSummary{Order: order, Address: *address})
	}
	return summaries, nil
}

// OrderDetails adds the purchased items and total to a summary.
type OrderDetails struct {
	OrderSummary
	Items []domain.ProductQuantity `json:"items"`
	Total decimal.Decimal          `json:"total"`
}

func (s *OrderService) Details(ctx context.Context, orderID, userID uint) (*OrderDetails, error) {
	order, err := s.orderRepo.GetForUser(ctx, orderID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.Validation("order not found")
		}
		return nil, domain.Internal(err)
	}

	address, err := s.orderRepo.GetAddress(ctx, order.AddressID)
	if err != nil {
		return nil, domain.Internal(err)
	}
	items, err := s.orderRepo.Items(ctx, order.ID)
	if err != nil {
		return nil, domain.Internal(err)
	}

	return &OrderDetails{
		OrderSummary: OrderSummary{Order: *order, Address: *address},
		Items:        items,
		Total:        domain.TotalCost(items),
	}, nil
}
