package session_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invopo/internal/domain"
	"invopo/internal/session"
)

func TestMemoryStore_GetOrCreate_ReturnsSameSession(t *testing.T) {
	store := session.NewMemoryStore()
	id := uuid.New()

	first := store.GetOrCreate(id)
	first.StoreFile(domain.RoleInvoice, &domain.TempFile{Path: "/tmp/inv.csv"})

	second := store.GetOrCreate(id)
	assert.Same(t, first, second)
	assert.Equal(t, domain.PhaseFileStored, second.Slot(domain.RoleInvoice).Phase())
}

func TestMemoryStore_SessionsAreIsolated(t *testing.T) {
	store := session.NewMemoryStore()

	a := store.GetOrCreate(uuid.New())
	b := store.GetOrCreate(uuid.New())

	a.StoreFile(domain.RoleInvoice, &domain.TempFile{Path: "/tmp/inv.csv"})

	assert.Equal(t, domain.PhaseFileStored, a.Slot(domain.RoleInvoice).Phase())
	assert.Equal(t, domain.PhaseEmpty, b.Slot(domain.RoleInvoice).Phase())
}

func TestMemoryStore_Get(t *testing.T) {
	store := session.NewMemoryStore()
	id := uuid.New()

	_, err := store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	created := store.GetOrCreate(id)
	got, err := store.Get(id)
	require.NoError(t, err)
	assert.Same(t, created, got)
}

func TestMemoryStore_Delete(t *testing.T) {
	store := session.NewMemoryStore()
	id := uuid.New()
	store.GetOrCreate(id)

	store.Delete(id)

	_, err := store.Get(id)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}
