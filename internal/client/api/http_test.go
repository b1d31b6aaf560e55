package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/common"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := NewHTTPClient(srv.URL, 5*time.Second)
	require.NoError(t, err)
	return c
}

func TestSignIn_StoresCookieForLaterRequests(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		json.NewEncoder(w).Encode(models.User{ID: "u1", Email: "reader@example.com", Role: models.RoleCustomer})
	})
	var cartCookie string
	mux.HandleFunc("/cart", func(w http.ResponseWriter, r *http.Request) {
		if c, err := r.Cookie("session"); err == nil {
			cartCookie = c.Value
		}
		w.Write([]byte("[]"))
	})

	c := newTestClient(t, mux)

	user, err := c.SignIn(context.Background(), models.Credentials{Email: "reader@example.com", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, "u1", user.ID)

	_, err = c.CartLines(context.Background())
	require.NoError(t, err)
	require.Equal(t, "abc123", cartCookie)
}

func TestCatalogReads_NeverCarryTheCookie(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/auth/login", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc123"})
		json.NewEncoder(w).Encode(models.User{ID: "u1"})
	})
	var sawCookie bool
	mux.HandleFunc("/product", func(w http.ResponseWriter, r *http.Request) {
		if _, err := r.Cookie("session"); err == nil {
			sawCookie = true
		}
		w.Write([]byte("[]"))
	})

	c := newTestClient(t, mux)

	_, err := c.SignIn(context.Background(), models.Credentials{Email: "a@b.c", Password: "x"})
	require.NoError(t, err)

	_, err = c.Products(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	require.False(t, sawCookie, "public catalog reads must not leak the credential")
}

func TestProducts_FilterBecomesQueryParams(t *testing.T) {
	var gotQuery map[string]string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = map[string]string{
			"category": r.URL.Query().Get("category"),
			"search":   r.URL.Query().Get("search"),
		}
		w.Write([]byte("[]"))
	}))

	_, err := c.Products(context.Background(), models.ProductFilter{Category: "scifi", Search: "dune"})
	require.NoError(t, err)
	require.Equal(t, "scifi", gotQuery["category"])
	require.Equal(t, "dune", gotQuery["search"])
}

func TestProducts_EmptyFilterOmitsParams(t *testing.T) {
	var rawQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte("[]"))
	}))

	_, err := c.Products(context.Background(), models.ProductFilter{})
	require.NoError(t, err)
	require.Empty(t, rawQuery)
}

func TestErrorMessage_PassedThroughVerbatim(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode("Invalid email or password!")
	}))

	_, err := c.SignIn(context.Background(), models.Credentials{Email: "a@b.c", Password: "wrong"})
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "Invalid email or password!", apiErr.Message)
	require.ErrorIs(t, err, common.ErrorUnauthorized)
}

func TestError_SentinelMapping(t *testing.T) {
	require.ErrorIs(t, &Error{Status: http.StatusForbidden}, common.ErrorUnauthorized)
	require.ErrorIs(t, &Error{Status: http.StatusNotFound}, common.ErrorNotFound)
	require.ErrorIs(t, &Error{Status: http.StatusBadGateway}, common.ErrorInternal)
	require.NotErrorIs(t, &Error{Status: http.StatusBadRequest}, common.ErrorInternal)
}

func TestNewError_BodyVariants(t *testing.T) {
	require.Equal(t, "boom", newError(500, []byte(`"boom"`)).Message)
	require.Equal(t, "plain failure", newError(500, []byte("plain failure")).Message)
	require.Equal(t, "Internal Server Error", newError(500, nil).Message)
}

func TestTransportFailure_WrapsUnavailable(t *testing.T) {
	c, err := NewHTTPClient("http://127.0.0.1:1", 500*time.Millisecond)
	require.NoError(t, err)

	_, err = c.CurrentUser(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestUpdateOrderStatus_SendsStatusBody(t *testing.T) {
	var got models.OrderStatusUpdate
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/order/o1", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))

	require.NoError(t, c.UpdateOrderStatus(context.Background(), "o1", "shipped"))
	require.Equal(t, "shipped", got.Status)
}
