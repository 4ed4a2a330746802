package handlers_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/dom/securecart/internal/domain"
	"github.com/dom/securecart/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeJSON(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func TestStore_RequiresSignIn(t *testing.T) {
	ts := testutil.NewTestServer(t)

	gets := []string{"/cart", "/liked", "/orders", "/orders/1"}
	for _, path := range gets {
		resp := ts.Get(t, path, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "GET %s", path)
	}

	posts := []string{"/cart", "/liked", "/checkout"}
	for _, path := range posts {
		resp := ts.PostForm(t, path, url.Values{}, nil)
		resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode, "POST %s", path)
	}
}

func TestStore_CatalogVisibility(t *testing.T) {
	ts := testutil.NewTestServer(t)

	listed := testutil.NewProductBuilder().WithTitle("On Shelf").Build(t, ts.DB.DB)
	testutil.NewProductBuilder().WithTitle("In Back Room").Unlisted().Build(t, ts.DB.DB)

	var products []domain.Product
	resp := ts.Get(t, "/products", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &products)

	require.Len(t, products, 1)
	assert.Equal(t, listed.ID, products[0].ID)

	resp = ts.Get(t, "/products/999999", nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestStore_LikedFlag(t *testing.T) {
	ts := testutil.NewTestServer(t)

	product := testutil.NewProductBuilder().Build(t, ts.DB.DB)
	_, cookie := testutil.NewUserBuilder().BuildAndSignIn(t, ts)
	productPath := "/products/" + strconv.FormatUint(uint64(product.ID), 10)

	var view struct {
		Liked bool `json:"liked"`
	}

	// Anonymous requests never see a like.
	resp := ts.Get(t, productPath, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &view)
	assert.False(t, view.Liked)

	resp = ts.PostForm(t, "/liked", url.Values{
		"product_id": {strconv.FormatUint(uint64(product.ID), 10)},
		"action":     {"add"},
	}, cookie)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = ts.Get(t, productPath, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &view)
	assert.True(t, view.Liked)

	// The page is still public with a garbage cookie.
	bad := &http.Cookie{Name: cookie.Name, Value: "notarealtoken"}
	resp = ts.Get(t, productPath, bad)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &view)
	assert.False(t, view.Liked)
}

func TestStore_CartAndCheckoutFlow(t *testing.T) {
	ts := testutil.NewTestServer(t)

	_, cookie := testutil.NewUserBuilder().BuildAndSignIn(t, ts)
	first := testutil.NewProductBuilder().WithCost("3.00").Build(t, ts.DB.DB)
	second := testutil.NewProductBuilder().WithCost("8.25").Build(t, ts.DB.DB)

	addToCart := func(productID uint, quantity int) *http.Response {
		return ts.PostForm(t, "/cart", url.Values{
			"product_id": {strconv.FormatUint(uint64(productID), 10)},
			"action":     {"add"},
			"quantity":   {strconv.Itoa(quantity)},
		}, cookie)
	}

	resp := addToCart(first.ID, 2)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = addToCart(second.ID, 1)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// A second add of the same product is rejected.
	resp = addToCart(first.ID, 1)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var cart struct {
		Items []domain.ProductQuantity `json:"items"`
		Total string                   `json:"total"`
	}
	resp = ts.Get(t, "/cart", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &cart)
	require.Len(t, cart.Items, 2)

	checkoutForm := url.Values{
		"cardnum":        {"4242424242424242"},
		"expiry":         {fmt.Sprintf("12/%02d", time.Now().UTC().Year()-2000+1)},
		"cvv":            {"123"},
		"recipient_name": {"Ada Lovelace"},
		"line_1":         {"12 Analytical Lane"},
		"line_2":         {""},
		"postcode":       {"AB1 2CD"},
		"county":         {"Kent"},
	}

	var placed struct {
		OrderID uint `json:"orderId"`
	}
	resp = ts.PostForm(t, "/checkout", checkoutForm, cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &placed)
	require.NotZero(t, placed.OrderID)

	// The cart emptied into the order.
	resp = ts.Get(t, "/cart", cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &cart)
	assert.Empty(t, cart.Items)

	// A second checkout finds nothing to buy.
	resp = ts.PostForm(t, "/checkout", checkoutForm, cookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var details struct {
		Order struct {
			ID uint `json:"id"`
		} `json:"order"`
		Address struct {
			RecipientName string `json:"recipientName"`
			Postcode      string `json:"postcode"`
		} `json:"address"`
		Items []domain.ProductQuantity `json:"items"`
		Total string                   `json:"total"`
	}
	resp = ts.Get(t, "/orders/"+strconv.FormatUint(uint64(placed.OrderID), 10), cookie)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	decodeJSON(t, resp, &details)
	assert.Equal(t, placed.OrderID, details.Order.ID)
	assert.Equal(t, "Ada Lovelace", details.Address.RecipientName)
	assert.Equal(t, "AB12CD", details.Address.Postcode)
	assert.Len(t, details.Items, 2)
	assert.Equal(t, "14.25", details.Total) // 2*3.00 + 8.25

	// The order is invisible to everyone else.
	_, otherCookie := testutil.NewUserBuilder().BuildAndSignIn(t, ts)
	resp = ts.Get(t, "/orders/"+strconv.FormatUint(uint64(placed.OrderID), 10), otherCookie)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
