// Package cli implements the storefront's view compositions: an
// interactive shell whose pages read store snapshots, render plain-text
// lists and forms, and dispatch mutations. Pages never mutate store state
// directly; every change goes through a store operation.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/bookvite/storefront/internal/client/access"
	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/config"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/client/storage"
	"github.com/bookvite/storefront/internal/client/store"
	"github.com/bookvite/storefront/internal/logging"
)

// App owns the stores and hands each page read-only snapshots plus bound
// operations. There is no global store: everything a view touches is
// reachable from here.
type App struct {
	config *config.Config
	log    logging.Logger

	apiClient api.Client

	session    *store.Session
	categories *store.CategoryStore
	catalog    *store.CatalogStore
	cart       *store.CartStore
	addresses  *store.AddressStore
	orders     *store.OrderStore
	staff      *store.StaffStore
	dashboard  *store.DashboardStore

	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the API client, the object-storage uploader, and every
// store. The session's authenticated side effect is the initial cart
// fetch: a cart only means something once an identity resolved.
func NewApp(cfg *config.Config) (*App, error) {
	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	apiClient, err := api.NewHTTPClient(cfg.APIEndpoint, cfg.RequestTimeout)
	if err != nil {
		return nil, err
	}

	uploader := storage.NewS3Uploader(storage.S3Options{
		Endpoint:   cfg.S3Endpoint,
		Region:     cfg.S3Region,
		Bucket:     cfg.S3Bucket,
		AccessKey:  cfg.S3User,
		SecretKey:  cfg.S3Password,
		PresignTTL: cfg.PresignTTL,
	})

	a := &App{
		config:    cfg,
		log:       log,
		apiClient: apiClient,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}

	a.cart = store.NewCartStore(apiClient, log)
	a.session = store.NewSession(apiClient, log, func(ctx context.Context) {
		if err := a.cart.Fetch(ctx); err != nil {
			log.Warn(ctx, "initial cart fetch failed", "error", err.Error())
		}
	})
	a.categories = store.NewCategoryStore(apiClient, log)
	a.catalog = store.NewCatalogStore(apiClient, uploader, log)
	a.addresses = store.NewAddressStore(apiClient, log)
	a.orders = store.NewOrderStore(apiClient, a.cart, log)
	a.staff = store.NewStaffStore(apiClient, log)
	a.dashboard = store.NewDashboardStore(apiClient, log)

	return a, nil
}

// Run probes the identity and enters the shell loop.
func (a *App) Run(ctx context.Context) {
	defer a.apiClient.Close()
	a.session.Probe(ctx)
	a.Root(ctx)
}

// guard is the full-page gate: it renders a placeholder on Pending, the
// not-authorized notice on Deny, and reports whether the page content may
// render.
func (a *App) guard(requiredRoles ...string) bool {
	switch access.Page(a.session.Snapshot(), requiredRoles...) {
	case access.Pending:
		fmt.Fprintln(a.out, "Loading...")
		return false
	case access.Deny:
		fmt.Fprintln(a.out, "You are not allowed to view this page!")
		return false
	}
	return true
}

func (a *App) isLoggedIn() bool {
	return a.session.Snapshot().LoggedIn()
}

// status renders the prompt decoration: the signed-in email, plus the cart
// size for customers (an inline-gated widget).
func (a *App) status() string {
	sess := a.session.Snapshot()
	s := ""
	if sess.LoggedIn() {
		s = sess.User.Email
	}
	if access.Visible(sess, models.RoleCustomer) {
		if n := len(a.cart.Items()); n > 0 {
			s = fmt.Sprintf("%s, cart:%d", s, n)
		}
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}
