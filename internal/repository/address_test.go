package repository

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snnyvrz/shelfshare/internal/model"
	"github.com/snnyvrz/shelfshare/internal/testutil"
)

func newAddress(userID uuid.UUID, label string) *model.Address {
	return &model.Address{UserID: userID, Label: label, Line1: "1 Main St", City: "Pune", PostalCode: "411001"}
}

func defaults(t *testing.T, repo *GormAddressRepository, userID uuid.UUID) []string {
	t.Helper()

	addresses, err := repo.ListByUser(context.Background(), userID)
	require.NoError(t, err)

	var labels []string
	for _, a := range addresses {
		if a.IsDefault {
			labels = append(labels, a.Label)
		}
	}
	return labels
}

func TestGormAddressRepository_FirstAddressIsDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormAddressRepository(database)
	user := testutil.SeedUser(t, database, "reader@example.com", 0)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, newAddress(user.ID, "home")))
	require.NoError(t, repo.Create(ctx, newAddress(user.ID, "work")))

	assert.Equal(t, []string{"home"}, defaults(t, repo, user.ID))

	office := newAddress(user.ID, "office")
	office.IsDefault = true
	require.NoError(t, repo.Create(ctx, office))

	assert.Equal(t, []string{"office"}, defaults(t, repo, user.ID))
}

func TestGormAddressRepository_SetDefault(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormAddressRepository(database)
	user := testutil.SeedUser(t, database, "reader@example.com", 0)
	other := testutil.SeedUser(t, database, "other@example.com", 0)
	ctx := context.Background()

	home := newAddress(user.ID, "home")
	work := newAddress(user.ID, "work")
	require.NoError(t, repo.Create(ctx, home))
	require.NoError(t, repo.Create(ctx, work))

	updated, err := repo.SetDefault(ctx, user.ID, work.ID)
	require.NoError(t, err)
	assert.True(t, updated.IsDefault)
	assert.Equal(t, []string{"work"}, defaults(t, repo, user.ID))

	_, err = repo.SetDefault(ctx, other.ID, home.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, []string{"work"}, defaults(t, repo, user.ID))
}

func TestGormAddressRepository_UpdateAndDelete(t *testing.T) {
	database := testutil.NewTestDB(t)
	repo := NewGormAddressRepository(database)
	user := testutil.SeedUser(t, database, "reader@example.com", 0)
	other := testutil.SeedUser(t, database, "other@example.com", 0)
	ctx := context.Background()

	home := newAddress(user.ID, "home")
	work := newAddress(user.ID, "work")
	require.NoError(t, repo.Create(ctx, home))
	require.NoError(t, repo.Create(ctx, work))

	city := "Mumbai"
	updated, err := repo.Update(ctx, user.ID, work.ID, AddressUpdate{City: &city})
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", updated.City)
	assert.Equal(t, "work", updated.Label)

	_, err = repo.Update(ctx, other.ID, work.ID, AddressUpdate{City: &city})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, repo.Delete(ctx, other.ID, home.ID), ErrNotFound)

	require.NoError(t, repo.Delete(ctx, user.ID, home.ID))
	assert.Equal(t, []string{"work"}, defaults(t, repo, user.ID), "default moves to the remaining address")

	require.NoError(t, repo.Delete(ctx, user.ID, work.ID))
	addresses, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.Empty(t, addresses)
}
