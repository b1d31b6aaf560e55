package store

import (
	"context"
	"errors"
	"testing"

	"github.com/bookvite/storefront/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestSession_InitialStateIsIdentityPending(t *testing.T) {
	s := NewSession(&fakeClient{}, testLogger(), nil)

	snap := s.Snapshot()
	require.Equal(t, StateIdentityPending, snap.State)
	require.True(t, snap.FetchInProgress)
	require.False(t, snap.LoggedIn())
}

func TestProbe_Success_AuthenticatesAndFetchesCartOnce(t *testing.T) {
	fc := &fakeClient{user: &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer}}
	cartFetches := 0
	s := NewSession(fc, testLogger(), func(ctx context.Context) { cartFetches++ })

	s.Probe(context.Background())

	snap := s.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.True(t, snap.LoggedIn())
	require.False(t, snap.FetchInProgress)
	require.Equal(t, "a@b.c", snap.User.Email)
	require.Equal(t, 1, cartFetches)
}

func TestProbe_Failure_ResolvesAnonymous(t *testing.T) {
	fc := &fakeClient{userErr: errors.New("no credential")}
	cartFetches := 0
	s := NewSession(fc, testLogger(), func(ctx context.Context) { cartFetches++ })

	s.Probe(context.Background())

	snap := s.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.False(t, snap.FetchInProgress)
	require.Empty(t, snap.Err, "a failed probe is not an error to display")
	require.Zero(t, cartFetches)
}

func TestSignIn_Success(t *testing.T) {
	fc := &fakeClient{
		userErr:    errors.New("no credential"),
		signInUser: &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer},
	}
	s := NewSession(fc, testLogger(), nil)
	s.Probe(context.Background())

	require.NoError(t, s.SignIn(context.Background(), "a@b.c", "secret"))
	require.Equal(t, StateAuthenticated, s.Snapshot().State)
}

func TestSignIn_Failure_StaysAnonymousRecordsError(t *testing.T) {
	fc := &fakeClient{
		userErr:   errors.New("no credential"),
		signInErr: errors.New("Invalid email or password"),
	}
	s := NewSession(fc, testLogger(), nil)
	s.Probe(context.Background())

	err := s.SignIn(context.Background(), "a@b.c", "wrong")
	require.Error(t, err)

	snap := s.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Equal(t, "Invalid email or password", snap.Err)
	require.False(t, snap.Busy)
}

func TestSignOut_ClearsIdentity(t *testing.T) {
	fc := &fakeClient{user: &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer}}
	s := NewSession(fc, testLogger(), nil)
	s.Probe(context.Background())

	require.NoError(t, s.SignOut(context.Background()))

	snap := s.Snapshot()
	require.Equal(t, StateAnonymous, snap.State)
	require.Empty(t, snap.User.ID)
	require.Empty(t, snap.User.Role)
}

func TestChangePassword_SignsOutAsTerminalStep(t *testing.T) {
	fc := &fakeClient{user: &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer}}
	s := NewSession(fc, testLogger(), nil)
	s.Probe(context.Background())

	require.NoError(t, s.ChangePassword(context.Background(), "old", "new"))
	require.Equal(t, StateAnonymous, s.Snapshot().State)
}

func TestChangePassword_Failure_StaysAuthenticated(t *testing.T) {
	fc := &fakeClient{
		user:        &models.User{ID: "u1", Email: "a@b.c", Role: models.RoleCustomer},
		updatePwErr: errors.New("old password incorrect"),
	}
	s := NewSession(fc, testLogger(), nil)
	s.Probe(context.Background())

	require.Error(t, s.ChangePassword(context.Background(), "bad", "new"))

	snap := s.Snapshot()
	require.Equal(t, StateAuthenticated, snap.State)
	require.Equal(t, "old password incorrect", snap.Err)
}
