package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/repository/postgres"
	"github.com/dom/securecart/internal/service"
	"github.com/dom/securecart/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCheckoutInput() service.CheckoutInput {
	expiry := fmt.Sprintf("12/%02d", time.Now().UTC().Year()-2000+1)
	return service.CheckoutInput{
		CardNumber:    "4242 4242 4242 4242",
		Expiry:        expiry,
		CVV:           "123",
		RecipientName: "Ada Lovelace",
		Line1:         "12 Analytical Lane",
		Line2:         "Flat 3",
		Postcode:      "AB1 2CD",
		County:        "Kent",
	}
}

func TestOrderService_CheckoutValidation(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	orderService := service.NewOrderService(repos.Order, repos.Cart)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	tests := []struct {
		name   string
		mutate func(*service.CheckoutInput)
	}{
		{
			name:   "empty card number",
			mutate: func(in *service.CheckoutInput) { in.CardNumber = "" },
		},
		{
			name:   "card number too long",
			mutate: func(in *service.CheckoutInput) { in.CardNumber = "42424242424242424242" },
		},
		{
			name:   "card number not numeric",
			mutate: func(in *service.CheckoutInput) { in.CardNumber = "4242-4242-4242" },
		},
		{
			name:   "cvv wrong length",
			mutate: func(in *service.CheckoutInput) { in.CVV = "12" },
		},
		{
			name:   "cvv not numeric",
			mutate: func(in *service.CheckoutInput) { in.CVV = "12a" },
		},
		{
			name:   "expiry malformed",
			mutate: func(in *service.CheckoutInput) { in.Expiry = "122026" },
		},
		{
			name:   "expiry month out of range",
			mutate: func(in *service.CheckoutInput) { in.Expiry = "13/30" },
		},
		{
			name:   "expiry in the past",
			mutate: func(in *service.CheckoutInput) { in.Expiry = "12/20" },
		},
		{
			name:   "postcode too short",
			mutate: func(in *service.CheckoutInput) { in.Postcode = "AB1" },
		},
		{
			name:   "postcode too long",
			mutate: func(in *service.CheckoutInput) { in.Postcode = "AB12 34CDE" },
		},
		{
			name:   "missing recipient name",
			mutate: func(in *service.CheckoutInput) { in.RecipientName = "" },
		},
		{
			name:   "missing address line",
			mutate: func(in *service.CheckoutInput) { in.Line1 = "" },
		},
		{
			name:   "missing county",
			mutate: func(in *service.CheckoutInput) { in.County = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCheckoutInput()
			tt.mutate(&input)

			_, err := orderService.Checkout(ctx, user.ID, input)
			require.Error(t, err)
			assert.Equal(t, domain.KindValidation, domain.KindOf(err))
		})
	}
}

func TestOrderService_CheckoutEmptyCart(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	orderService := service.NewOrderService(repos.Order, repos.Cart)

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	_, err := orderService.Checkout(context.Background(), user.ID, validCheckoutInput())
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}

func TestOrderService_Checkout(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	orderService := service.NewOrderService(repos.Order, repos.Cart)
	ctx := context.Background()

	user, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	first := testutil.NewProductBuilder().WithCost("4.00").Build(t, testDB.DB)
	second := testutil.NewProductBuilder().WithCost("7.50").Build(t, testDB.DB)

	require.NoError(t, cartService.Add(ctx, user.ID, first.ID, 2))
	require.NoError(t, cartService.Add(ctx, user.ID, second.ID, 1))

	order, err := orderService.Checkout(ctx, user.ID, validCheckoutInput())
	require.NoError(t, err)
	require.NotZero(t, order.ID)
	assert.Equal(t, user.ID, order.UserID)

	// The cart rows became order items and the cart is now empty.
	view, err := cartService.View(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)

	details, err := orderService.Details(ctx, order.ID, user.ID)
	require.NoError(t, err)
	require.Len(t, details.Items, 2)
	// 2*4.00 + 7.50
	assert.True(t, details.Total.Equal(decimal.RequireFromString("15.50")), "total was %s", details.Total)
	assert.Equal(t, "Ada Lovelace", details.Address.RecipientName)
	assert.Equal(t, "AB12CD", details.Address.Postcode)

	quantities := map[uint]int{}
	for _, item := range details.Items {
		quantities[item.Product.ID] = item.Quantity
	}
	assert.Equal(t, 2, quantities[first.ID])
	assert.Equal(t, 1, quantities[second.ID])
}

func TestOrderService_ListAndOwnership(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	cartService := service.NewCartService(repos.Cart, repos.Product)
	orderService := service.NewOrderService(repos.Order, repos.Cart)
	ctx := context.Background()

	buyer, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	other, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	product := testutil.NewProductBuilder().Build(t, testDB.DB)

	require.NoError(t, cartService.Add(ctx, buyer.ID, product.ID, 1))
	order, err := orderService.Checkout(ctx, buyer.ID, validCheckoutInput())
	require.NoError(t, err)

	summaries, err := orderService.List(ctx, buyer.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, order.ID, summaries[0].Order.ID)

	// Another user sees neither the listing nor the details.
	summaries, err = orderService.List(ctx, other.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries)

	_, err = orderService.Details(ctx, order.ID, other.ID)
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
