package store

import (
	"context"
	"sync"

	"github.com/bookvite/storefront/internal/client/api"
	"github.com/bookvite/storefront/internal/client/models"
	"github.com/bookvite/storefront/internal/logging"
)

// DashboardStore caches the console's statistic aggregate. It is a single
// record rather than a list, so it keeps its own pending/error flags
// instead of embedding Collection.
type DashboardStore struct {
	mu        sync.Mutex
	statistic models.Statistic
	loading   bool
	errMsg    string

	client api.Client
	log    logging.Logger
}

func NewDashboardStore(client api.Client, log logging.Logger) *DashboardStore {
	return &DashboardStore{client: client, log: log.With("store", "dashboard")}
}

// Fetch refreshes the aggregate. A failure leaves the previous statistic
// untouched and records the message.
func (s *DashboardStore) Fetch(ctx context.Context) error {
	s.mu.Lock()
	s.loading = true
	s.errMsg = ""
	s.mu.Unlock()

	stat, err := s.client.Statistic(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false
	if err != nil {
		s.errMsg = err.Error()
		return err
	}
	s.statistic = *stat
	return nil
}

// Snapshot returns the cached statistic plus the loading flag and last
// error message.
func (s *DashboardStore) Snapshot() (models.Statistic, bool, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.statistic, s.loading, s.errMsg
}
