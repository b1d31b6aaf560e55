package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/bookvite/storefront/internal/client/models"
)

// HTTPClient implements Client against the bookstore REST API.
//
// Two underlying http.Clients express the produced contract "the client
// always declares whether a request should carry the ambient credential":
// authed holds the cookie jar the server populates at sign-in, anon has no
// jar at all, so public catalog reads can never leak the credential.
type HTTPClient struct {
	base   *url.URL
	authed *http.Client
	anon   *http.Client
}

var _ Client = (*HTTPClient)(nil)

// NewHTTPClient builds an HTTPClient for the given endpoint, e.g.
// "https://localhost:7014". The timeout applies per request; the stores do
// not implement their own.
func NewHTTPClient(endpoint string, timeout time.Duration) (*HTTPClient, error) {
	base, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid api endpoint: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &HTTPClient{
		base:   base,
		authed: &http.Client{Jar: jar, Timeout: timeout},
		anon:   &http.Client{Timeout: timeout},
	}, nil
}

func (c *HTTPClient) Close() error {
	c.authed.CloseIdleConnections()
	c.anon.CloseIdleConnections()
	return nil
}

// do performs one request/response cycle. A nil in skips the request body;
// a nil out discards the response body. Non-2xx responses become *Error
// with the server's message; transport failures wrap ErrUnavailable.
func (c *HTTPClient) do(ctx context.Context, hc *http.Client, method, path string, query url.Values, in, out any) error {
	var body io.Reader
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(payload)
	}

	u := c.base.JoinPath(path)
	if query != nil {
		u.RawQuery = query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return err
	}
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := hc.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newError(resp.StatusCode, data)
	}

	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("decoding response: %w", err)
		}
	}
	return nil
}

// Session

func (c *HTTPClient) SignIn(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, c.authed, http.MethodPost, "auth/login", nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) SignUp(ctx context.Context, creds models.Credentials) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, c.authed, http.MethodPost, "auth/register", nil, creds, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (c *HTTPClient) UpdatePassword(ctx context.Context, change models.PasswordChange) error {
	return c.do(ctx, c.authed, http.MethodPut, "auth/update-password", nil, change, nil)
}

func (c *HTTPClient) SignOut(ctx context.Context) error {
	return c.do(ctx, c.authed, http.MethodDelete, "auth/logout", nil, nil, nil)
}

func (c *HTTPClient) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, c.authed, http.MethodGet, "auth", nil, nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Categories

func (c *HTTPClient) Categories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := c.do(ctx, c.anon, http.MethodGet, "category", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateCategory(ctx context.Context, input models.CategoryInput) error {
	return c.do(ctx, c.authed, http.MethodPost, "category", nil, input, nil)
}

func (c *HTTPClient) UpdateCategory(ctx context.Context, id string, input models.CategoryInput) error {
	return c.do(ctx, c.authed, http.MethodPut, "category/"+id, nil, input, nil)
}

// Products

func (c *HTTPClient) Products(ctx context.Context, filter models.ProductFilter) ([]models.Product, error) {
	query := url.Values{}
	if filter.Category != "" {
		query.Set("category", filter.Category)
	}
	if filter.Search != "" {
		query.Set("search", filter.Search)
	}

	var items []models.Product
	if err := c.do(ctx, c.anon, http.MethodGet, "product", query, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Product(ctx context.Context, id string) (*models.Product, error) {
	var item models.Product
	if err := c.do(ctx, c.anon, http.MethodGet, "product/"+id, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) FeaturedProducts(ctx context.Context) (*models.FeaturedProducts, error) {
	var featured models.FeaturedProducts
	if err := c.do(ctx, c.anon, http.MethodGet, "product/featured", nil, nil, &featured); err != nil {
		return nil, err
	}
	return &featured, nil
}

func (c *HTTPClient) CreateProduct(ctx context.Context, input models.ProductInput) error {
	return c.do(ctx, c.authed, http.MethodPost, "product", nil, input, nil)
}

func (c *HTTPClient) UpdateProduct(ctx context.Context, id string, input models.ProductInput) error {
	return c.do(ctx, c.authed, http.MethodPut, "product/"+id, nil, input, nil)
}

// Cart

func (c *HTTPClient) CartLines(ctx context.Context) ([]models.CartLine, error) {
	var items []models.CartLine
	if err := c.do(ctx, c.authed, http.MethodGet, "cart", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) AddCartLine(ctx context.Context, add models.CartAdd) error {
	return c.do(ctx, c.authed, http.MethodPost, "cart", nil, add, nil)
}

func (c *HTTPClient) UpdateCartLine(ctx context.Context, id string, quantity int) error {
	return c.do(ctx, c.authed, http.MethodPut, "cart/"+id, nil, models.CartUpdate{Quantity: quantity}, nil)
}

func (c *HTTPClient) RemoveCartLine(ctx context.Context, id string) error {
	return c.do(ctx, c.authed, http.MethodDelete, "cart/"+id, nil, nil, nil)
}

// Addresses

func (c *HTTPClient) Addresses(ctx context.Context) ([]models.Address, error) {
	var items []models.Address
	if err := c.do(ctx, c.authed, http.MethodGet, "address", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateAddress(ctx context.Context, input models.AddressInput) error {
	return c.do(ctx, c.authed, http.MethodPost, "address", nil, input, nil)
}

func (c *HTTPClient) UpdateAddress(ctx context.Context, id string, input models.AddressInput) error {
	return c.do(ctx, c.authed, http.MethodPut, "address/"+id, nil, input, nil)
}

func (c *HTTPClient) RemoveAddress(ctx context.Context, id string) error {
	return c.do(ctx, c.authed, http.MethodDelete, "address/"+id, nil, nil, nil)
}

// Orders

func (c *HTTPClient) Orders(ctx context.Context) ([]models.Order, error) {
	var items []models.Order
	if err := c.do(ctx, c.authed, http.MethodGet, "order", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) AllOrders(ctx context.Context) ([]models.Order, error) {
	var items []models.Order
	if err := c.do(ctx, c.authed, http.MethodGet, "order/all", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) Order(ctx context.Context, id string) (*models.Order, error) {
	var item models.Order
	if err := c.do(ctx, c.authed, http.MethodGet, "order/"+id, nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

func (c *HTTPClient) PlaceOrder(ctx context.Context, placement models.OrderPlacement) error {
	return c.do(ctx, c.authed, http.MethodPost, "order", nil, placement, nil)
}

func (c *HTTPClient) UpdateOrderStatus(ctx context.Context, id string, status string) error {
	return c.do(ctx, c.authed, http.MethodPut, "order/"+id, nil, models.OrderStatusUpdate{Status: status}, nil)
}

// Staff

func (c *HTTPClient) Staff(ctx context.Context) ([]models.StaffMember, error) {
	var items []models.StaffMember
	if err := c.do(ctx, c.authed, http.MethodGet, "staff", nil, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *HTTPClient) CreateStaff(ctx context.Context, input models.StaffInput) error {
	return c.do(ctx, c.authed, http.MethodPost, "staff", nil, input, nil)
}

func (c *HTTPClient) UpdateStaff(ctx context.Context, id string, input models.StaffInput) error {
	return c.do(ctx, c.authed, http.MethodPut, "staff/"+id, nil, input, nil)
}

// Dashboard

func (c *HTTPClient) Statistic(ctx context.Context) (*models.Statistic, error) {
	var stat models.Statistic
	if err := c.do(ctx, c.authed, http.MethodGet, "dashboard", nil, nil, &stat); err != nil {
		return nil, err
	}
	return &stat, nil
}
