package testutil

import (
	"fmt"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/dom/securecart/internal/api/middleware"
	"github.com/dom/securecart/internal/auth"
	"github.com/dom/securecart/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserBuilder creates test users with a builder pattern
type UserBuilder struct {
	email    string
	password string
	isAdmin  bool
}

// NewUserBuilder creates a new UserBuilder with default values
func NewUserBuilder() *UserBuilder {
	return &UserBuilder{
		email:    fmt.Sprintf("testuser_%s@example.com", uuid.New().String()[:8]),
		password: "testpassword123",
	}
}

// WithEmail sets the email
func (b *UserBuilder) WithEmail(email string) *UserBuilder {
	b.email = email
	return b
}

// WithPassword sets the password
func (b *UserBuilder) WithPassword(password string) *UserBuilder {
	b.password = password
	return b
}

// AsAdmin marks the user as an admin
func (b *UserBuilder) AsAdmin() *UserBuilder {
	b.isAdmin = true
	return b
}

// Build creates the user in the database and returns the user with the raw password
func (b *UserBuilder) Build(t *testing.T, db *gorm.DB) (*domain.User, string) {
	t.Helper()

	hash, err := auth.HashPassword(b.password)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &domain.User{
		Email:        b.email,
		PasswordHash: hash,
		IsAdmin:      b.isAdmin,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	return user, b.password
}

// BuildAndSignIn creates the user, signs in through the API and returns
// the user together with the session cookie the server issued.
func (b *UserBuilder) BuildAndSignIn(t *testing.T, ts *TestServer) (*domain.User, *http.Cookie) {
	t.Helper()

	user, password := b.Build(t, ts.DB.DB)

	resp := ts.PostForm(t, "/sign-in", url.Values{
		"email":    {user.Email},
		"password": {password},
	}, nil)
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("sign-in failed with status %d", resp.StatusCode)
	}

	cookie := SessionCookie(resp)
	if cookie == nil {
		t.Fatal("sign-in response carried no session cookie")
	}
	return user, cookie
}

// SessionCookie extracts the session cookie from a response, or nil.
func SessionCookie(resp *http.Response) *http.Cookie {
	for _, c := range resp.Cookies() {
		if c.Name == middleware.SessionCookieName {
			return c
		}
	}
	return nil
}

// SessionBuilder inserts session rows directly, bypassing sign-in, so
// tests can control expiry.
type SessionBuilder struct {
	userID    uint
	expiresAt time.Time
}

func NewSessionBuilder(userID uint) *SessionBuilder {
	return &SessionBuilder{
		userID:    userID,
		expiresAt: time.Now().UTC().Add(auth.SessionLifetime),
	}
}

// ExpiredSince backdates the session's expiry.
func (b *SessionBuilder) ExpiredSince(d time.Duration) *SessionBuilder {
	b.expiresAt = time.Now().UTC().Add(-d)
	return b
}

// Build stores the session and returns the raw bearer token.
func (b *SessionBuilder) Build(t *testing.T, db *gorm.DB) string {
	t.Helper()

	token, err := auth.NewToken()
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	session := &domain.Session{
		ID:        auth.TokenDigest(token),
		UserID:    b.userID,
		ExpiresAt: b.expiresAt,
	}
	if err := db.Create(session).Error; err != nil {
		t.Fatalf("failed to create session: %v", err)
	}
	return token
}

// ProductBuilder creates test products
type ProductBuilder struct {
	title  string
	cost   decimal.Decimal
	listed bool
}

// NewProductBuilder creates a new ProductBuilder with default values
func NewProductBuilder() *ProductBuilder {
	return &ProductBuilder{
		title:  fmt.Sprintf("Test Product %s", uuid.New().String()[:8]),
		cost:   decimal.NewFromFloat(9.99),
		listed: true,
	}
}

// WithTitle sets the title
func (b *ProductBuilder) WithTitle(title string) *ProductBuilder {
	b.title = title
	return b
}

// WithCost sets the cost
func (b *ProductBuilder) WithCost(cost string) *ProductBuilder {
	b.cost = decimal.RequireFromString(cost)
	return b
}

// Unlisted hides the product from the storefront
func (b *ProductBuilder) Unlisted() *ProductBuilder {
	b.listed = false
	return b
}

// Build creates the product in the database
func (b *ProductBuilder) Build(t *testing.T, db *gorm.DB) *domain.Product {
	t.Helper()

	product := &domain.Product{
		Title:       b.title,
		Description: "a product for testing",
		ImageName:   uuid.New().String() + ".jpg",
		Cost:        b.cost,
		Listed:      b.listed,
	}
	if err := db.Create(product).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	return product
}
