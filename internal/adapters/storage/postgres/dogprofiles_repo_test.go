package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"bark-advisor/internal/domain/dogprofiles"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Requiere una base real: TEST_DB_DSN=postgres://... go test ./...
func TestDogProfilesRepo_Integration(t *testing.T) {
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	db, err := Open(dsn)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Migrate(ctx, db))

	repo := NewDogProfilesRepo(db)
	owner := "it-" + uuid.NewString()
	now := time.Now().UTC().Truncate(time.Microsecond)

	p := dogprofiles.DogProfile{
		ID:          uuid.NewString(),
		OwnerUserID: owner,
		Name:        "Milo",
		Breed:       "beagle",
		Weight:      24.5,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	require.NoError(t, repo.Create(ctx, p))

	p.VetIssues = "allergies"
	p.UpdatedAt = now.Add(time.Minute)
	require.NoError(t, repo.Update(ctx, p))

	got, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "allergies", got.VetIssues)
	assert.InDelta(t, 24.5, got.Weight, 0.001)

	items, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, items, 1)

	_, err = repo.GetByID(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, dogprofiles.ErrNotFound)
	assert.ErrorIs(t, repo.Update(ctx, dogprofiles.DogProfile{ID: uuid.NewString()}), dogprofiles.ErrNotFound)
}
