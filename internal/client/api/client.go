// Package api is the remote boundary of the storefront client: a typed
// interface over the bookstore's resource-oriented HTTP endpoints, plus the
// concrete cookie-authenticated implementation.
package api

import (
	"context"

	"github.com/bookvite/storefront/internal/client/models"
)

// Client is the single interface the stores talk to. Tests substitute a
// fake; production uses HTTPClient.
//
// Authenticated operations carry the ambient cookie credential; catalog
// reads do not. Failure messages from the server are surfaced verbatim in
// the returned error.
type Client interface {
	Close() error

	// Session
	SignIn(ctx context.Context, creds models.Credentials) (*models.User, error)
	SignUp(ctx context.Context, creds models.Credentials) (*models.User, error)
	UpdatePassword(ctx context.Context, change models.PasswordChange) error
	SignOut(ctx context.Context) error
	CurrentUser(ctx context.Context) (*models.User, error)

	// Categories
	Categories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, input models.CategoryInput) error
	UpdateCategory(ctx context.Context, id string, input models.CategoryInput) error

	// Products
	Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error)
	Product(ctx context.Context, id string) (*models.Product, error)
	FeaturedProducts(ctx context.Context) (*models.FeaturedProducts, error)
	CreateProduct(ctx context.Context, input models.ProductInput) error
	UpdateProduct(ctx context.Context, id string, input models.ProductInput) error

	// Cart
	CartLines(ctx context.Context) ([]models.CartLine, error)
	AddCartLine(ctx context.Context, add models.CartAdd) error
	UpdateCartLine(ctx context.Context, id string, quantity int) error
	RemoveCartLine(ctx context.Context, id string) error

	// Addresses
	Addresses(ctx context.Context) ([]models.Address, error)
	CreateAddress(ctx context.Context, input models.AddressInput) error
	UpdateAddress(ctx context.Context, id string, input models.AddressInput) error
	RemoveAddress(ctx context.Context, id string) error

	// Orders
	Orders(ctx context.Context) ([]models.Order, error)
	AllOrders(ctx context.Context) ([]models.Order, error)
	Order(ctx context.Context, id string) (*models.Order, error)
	PlaceOrder(ctx context.Context, placement models.OrderPlacement) error
	UpdateOrderStatus(ctx context.Context, id string, status string) error

	// Staff
	Staff(ctx context.Context) ([]models.StaffMember, error)
	CreateStaff(ctx context.Context, input models.StaffInput) error
	UpdateStaff(ctx context.Context, id string, input models.StaffInput) error

	// Dashboard
	Statistic(ctx context.Context) (*models.Statistic, error)
}
