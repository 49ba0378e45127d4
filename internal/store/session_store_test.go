package store_test

import (
	"encoding/json"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func randomUser() domain.User {
	return domain.User{
		ID:    gofakeit.UUID(),
		Name:  gofakeit.Name(),
		Email: gofakeit.Email(),
		Phone: gofakeit.Phone(),
	}
}

func newSessionStore(t *testing.T, storage *memoryStorage) *store.SessionStore {
	t.Helper()
	s, err := store.NewSessionStore(storage, nil)
	require.NoError(t, err)
	return s
}

func TestSessionStoreLoginPersistsBothKeys(t *testing.T) {
	storage := newMemoryStorage()
	s := newSessionStore(t, storage)
	user := randomUser()

	require.NoError(t, s.Login(t.Context(), user, "tok-1"))

	session := s.Session()
	assert.True(t, session.Authenticated)
	assert.False(t, session.IsGuest())
	assert.Equal(t, user.ID, session.OwnerID())
	assert.Equal(t, "tok-1", s.Token())

	token, ok := storage.value(domain.SessionTokenKey)
	require.True(t, ok)
	assert.Equal(t, "tok-1", token)

	profile, ok := storage.value(domain.SessionProfileKey)
	require.True(t, ok)
	var stored domain.User
	require.NoError(t, json.Unmarshal([]byte(profile), &stored))
	assert.Equal(t, user, stored)
}

func TestSessionStoreLoginValidation(t *testing.T) {
	s := newSessionStore(t, newMemoryStorage())

	require.EqualError(t, s.Login(t.Context(), domain.User{}, "tok"), "user ID is empty")
	require.EqualError(t, s.Login(t.Context(), randomUser(), ""), "token is empty")
	assert.False(t, s.Session().Authenticated)
}

func TestSessionStoreLoginStorageFailure(t *testing.T) {
	storage := newMemoryStorage()
	storage.fail(domain.SessionTokenKey, errStorage)
	s := newSessionStore(t, storage)

	err := s.Login(t.Context(), randomUser(), "tok")
	require.ErrorIs(t, err, errStorage)

	assert.False(t, s.Session().Authenticated)
	// the profile write is not rolled back
	_, ok := storage.value(domain.SessionProfileKey)
	assert.True(t, ok)
}

func TestSessionStoreInitialize(t *testing.T) {
	user := randomUser()
	profile, err := json.Marshal(user)
	require.NoError(t, err)

	tests := []struct {
		name          string
		values        map[string]string
		authenticated bool
	}{
		{
			name:   "nothing stored",
			values: map[string]string{},
		},
		{
			name: "complete pair",
			values: map[string]string{
				domain.SessionProfileKey: string(profile),
				domain.SessionTokenKey:   "tok",
			},
			authenticated: true,
		},
		{
			name:   "token without profile",
			values: map[string]string{domain.SessionTokenKey: "tok"},
		},
		{
			name:   "profile without token",
			values: map[string]string{domain.SessionProfileKey: string(profile)},
		},
		{
			name: "corrupt profile",
			values: map[string]string{
				domain.SessionProfileKey: "{not json",
				domain.SessionTokenKey:   "tok",
			},
		},
		{
			name: "profile without id",
			values: map[string]string{
				domain.SessionProfileKey: `{"name":"x"}`,
				domain.SessionTokenKey:   "tok",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			storage := newMemoryStorage()
			storage.values = tt.values
			s := newSessionStore(t, storage)

			s.Initialize(t.Context())

			session := s.Session()
			assert.Equal(t, tt.authenticated, session.Authenticated)
			if tt.authenticated {
				assert.Equal(t, user.ID, session.OwnerID())
				assert.Equal(t, "tok", session.Token)
			}
		})
	}
}

func TestSessionStoreInitializeStorageFailure(t *testing.T) {
	storage := newMemoryStorage()
	storage.fail(domain.SessionProfileKey, errStorage)
	s := newSessionStore(t, storage)

	s.Initialize(t.Context())

	assert.False(t, s.Session().Authenticated)
}

func TestSessionStoreLogout(t *testing.T) {
	storage := newMemoryStorage()
	s := newSessionStore(t, storage)
	require.NoError(t, s.Login(t.Context(), randomUser(), "tok"))

	var events []domain.Session
	s.Subscribe(func(session domain.Session) { events = append(events, session) })

	require.NoError(t, s.Logout(t.Context()))

	assert.False(t, s.Session().Authenticated)
	assert.Empty(t, s.Token())
	_, ok := storage.value(domain.SessionTokenKey)
	assert.False(t, ok)
	_, ok = storage.value(domain.SessionProfileKey)
	assert.False(t, ok)
	require.Len(t, events, 1)
	assert.False(t, events[0].Authenticated)
}

func TestSessionStoreLogoutStorageFailureKeepsSession(t *testing.T) {
	storage := newMemoryStorage()
	s := newSessionStore(t, storage)
	user := randomUser()
	require.NoError(t, s.Login(t.Context(), user, "tok"))

	storage.fail(domain.SessionTokenKey, errStorage)

	err := s.ClearSession(t.Context())
	require.ErrorIs(t, err, errStorage)
	assert.Equal(t, user.ID, s.Session().OwnerID())
}

func TestSessionStoreGuest(t *testing.T) {
	storage := newMemoryStorage()
	s := newSessionStore(t, storage)

	s.ContinueAsGuest()

	session := s.Session()
	assert.True(t, session.Authenticated)
	assert.True(t, session.IsGuest())
	assert.Empty(t, session.OwnerID())
	assert.Empty(t, storage.values)
}

func TestSessionStoreSessionIsACopy(t *testing.T) {
	s := newSessionStore(t, newMemoryStorage())
	user := randomUser()
	require.NoError(t, s.Login(t.Context(), user, "tok"))

	session := s.Session()
	session.User.ID = "changed"

	assert.Equal(t, user.ID, s.Session().OwnerID())
}

func TestNewSessionStoreNilStorage(t *testing.T) {
	_, err := store.NewSessionStore(nil, nil)
	require.Error(t, err)
}

func TestSessionStoreInitializeDoesNotUndoConcurrentLogin(t *testing.T) {
	for range 50 {
		s := newSessionStore(t, newMemoryStorage())
		user := randomUser()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Initialize(t.Context())
		}()
		go func() {
			defer wg.Done()
			assert.NoError(t, s.Login(t.Context(), user, "tok"))
		}()
		wg.Wait()

		require.Equal(t, user.ID, s.Session().OwnerID())
		require.Equal(t, "tok", s.Token())
	}
}
