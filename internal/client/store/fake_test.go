package store

import (
	"context"
	"io"
	"log/slog"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

func testLogger() logging.Logger {
	return logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// fakeClient implements the subset of api.Client the store tests exercise.
// Unimplemented methods panic via the embedded interface, which is exactly
// what we want: a test reaching an endpoint it did not arrange is a bug.
type fakeClient struct {
	api.Client

	// identity
	user    *models.User
	userErr error

	signInUser *models.User
	signInErr  error
	signOutErr error
	updatePwErr error

	// cart
	cartLines      []models.CartLine
	cartLinesErr   error
	cartLinesCalls int
	addCartErr     error
	updateCartCalls []struct {
		ID       string
		Quantity int
	}
	updateCartErr error
	removeCartIDs []string
	removeCartErr error

	// products
	products        []models.Product
	productsErr     error
	productsCalls   int
	lastFilter      models.ProductFilter
	productByID     *models.Product
	productErr      error
	featured        models.FeaturedProducts
	featuredErr     error
	createProductCalls []models.ProductInput
	createProductErr   error
	updateProductCalls []models.ProductInput
	updateProductErr   error

	// categories
	categories     []models.Category
	categoriesErr  error
	categoriesCalls int
	createCategoryErr error

	// addresses
	addresses      []models.Address
	addressesErr   error
	addressesCalls int
	createAddressErr error
	removeAddressIDs []string

	// staff
	staff          []models.StaffMember
	staffErr       error
	staffCalls     int
	createStaffErr error
	updateStaffIDs []string

	// dashboard
	statistic    models.Statistic
	statisticErr error

	// orders
	orders        []models.Order
	ordersErr     error
	allOrders     []models.Order
	allOrdersErr  error
	placeOrderErr error
	placedOrders  []models.OrderPlacement
	statusCalls   []struct{ ID, Status string }
	statusErr     error
}

func (f *fakeClient) Close() error { return nil }

func (f *fakeClient) CurrentUser(ctx context.Context) (*models.User, error) {
	return f.user, f.userErr
}

func (f *fakeClient) SignIn(ctx context.Context, creds models.Credentials) (*models.User, error) {
	return f.signInUser, f.signInErr
}

func (f *fakeClient) SignUp(ctx context.Context, creds models.Credentials) (*models.User, error) {
	return f.signInUser, f.signInErr
}

func (f *fakeClient) SignOut(ctx context.Context) error { return f.signOutErr }

func (f *fakeClient) UpdatePassword(ctx context.Context, change models.PasswordChange) error {
	return f.updatePwErr
}

func (f *fakeClient) CartLines(ctx context.Context) ([]models.CartLine, error) {
	f.cartLinesCalls++
	return f.cartLines, f.cartLinesErr
}

func (f *fakeClient) AddCartLine(ctx context.Context, add models.CartAdd) error {
	return f.addCartErr
}

func (f *fakeClient) UpdateCartLine(ctx context.Context, id string, quantity int) error {
	f.updateCartCalls = append(f.updateCartCalls, struct {
		ID       string
		Quantity int
	}{id, quantity})
	return f.updateCartErr
}

func (f *fakeClient) RemoveCartLine(ctx context.Context, id string) error {
	f.removeCartIDs = append(f.removeCartIDs, id)
	return f.removeCartErr
}

func (f *fakeClient) Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	f.productsCalls++
	f.lastFilter = filter
	return f.products, f.productsErr
}

func (f *fakeClient) Product(ctx context.Context, id string) (*models.Product, error) {
	return f.productByID, f.productErr
}

func (f *fakeClient) FeaturedProducts(ctx context.Context) (*models.FeaturedProducts, error) {
	if f.featuredErr != nil {
		return nil, f.featuredErr
	}
	return &f.featured, nil
}

func (f *fakeClient) CreateProduct(ctx context.Context, input models.ProductInput) error {
	f.createProductCalls = append(f.createProductCalls, input)
	return f.createProductErr
}

func (f *fakeClient) UpdateProduct(ctx context.Context, id string, input models.ProductInput) error {
	f.updateProductCalls = append(f.updateProductCalls, input)
	return f.updateProductErr
}

func (f *fakeClient) Categories(ctx context.Context) ([]models.Category, error) {
	f.categoriesCalls++
	return f.categories, f.categoriesErr
}

func (f *fakeClient) CreateCategory(ctx context.Context, input models.CategoryInput) error {
	return f.createCategoryErr
}

func (f *fakeClient) Addresses(ctx context.Context) ([]models.Address, error) {
	f.addressesCalls++
	return f.addresses, f.addressesErr
}

func (f *fakeClient) CreateAddress(ctx context.Context, input models.AddressInput) error {
	return f.createAddressErr
}

func (f *fakeClient) RemoveAddress(ctx context.Context, id string) error {
	f.removeAddressIDs = append(f.removeAddressIDs, id)
	return nil
}

func (f *fakeClient) Orders(ctx context.Context) ([]models.Order, error) {
	return f.orders, f.ordersErr
}

func (f *fakeClient) AllOrders(ctx context.Context) ([]models.Order, error) {
	return f.allOrders, f.allOrdersErr
}

func (f *fakeClient) PlaceOrder(ctx context.Context, placement models.OrderPlacement) error {
	if f.placeOrderErr != nil {
		return f.placeOrderErr
	}
	f.placedOrders = append(f.placedOrders, placement)
	return nil
}

func (f *fakeClient) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	f.statusCalls = append(f.statusCalls, struct{ ID, Status string }{id, status})
	return f.statusErr
}

func (f *fakeClient) UpdateCategory(ctx context.Context, id string, input models.CategoryInput) error {
	return nil
}

func (f *fakeClient) UpdateAddress(ctx context.Context, id string, input models.AddressInput) error {
	return nil
}

func (f *fakeClient) Staff(ctx context.Context) ([]models.StaffMember, error) {
	f.staffCalls++
	return f.staff, f.staffErr
}

func (f *fakeClient) CreateStaff(ctx context.Context, input models.StaffInput) error {
	return f.createStaffErr
}

func (f *fakeClient) UpdateStaff(ctx context.Context, id string, input models.StaffInput) error {
	f.updateStaffIDs = append(f.updateStaffIDs, id)
	return nil
}

func (f *fakeClient) Statistic(ctx context.Context) (*models.Statistic, error) {
	if f.statisticErr != nil {
		return nil, f.statisticErr
	}
	return &f.statistic, nil
}

// fakeUploader records upload calls and returns a preset URL or error.
type fakeUploader struct {
	url   string
	err   error
	calls []string
}

func (f *fakeUploader) Upload(ctx context.Context, key string, data []byte) (string, error) {
	f.calls = append(f.calls, key)
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}
