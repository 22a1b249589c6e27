package repository

import (
	"context"
	"path/filepath"
	"testing"

	"countrymgr/errs"
	"countrymgr/migrations"
	"countrymgr/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestRepository(t *testing.T) *CountryRepository {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "countries.db")), &gorm.Config{
		Logger:         logger.Discard,
		TranslateError: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	require.NoError(t, migrations.Migrate(db, false))
	return New(db)
}

func usa() models.Country {
	return models.NewCountry("USA", "United States", models.CountryOptions{
		InternetUsers:     models.Float(46.2),
		AdultLiteracyRate: models.Float(78.89),
	})
}

func TestCreateThenFind(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	for _, c := range []models.Country{
		usa(),
		models.NewCountry("FRA", "France", models.CountryOptions{InternetUsers: models.Float(83.3)}),
		models.NewCountry("ATA", "Antarctica", models.CountryOptions{}),
	} {
		require.NoError(t, repo.Create(ctx, c))

		got, found, err := repo.FindByCode(ctx, c.Code)
		require.NoError(t, err)
		require.True(t, found)
		assert.Equal(t, c, got)
	}
}

func TestCreateDuplicate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	require.NoError(t, repo.Create(ctx, usa()))

	dup := models.NewCountry("USA", "Somewhere Else", models.CountryOptions{})
	err := repo.Create(ctx, dup)
	assert.ErrorIs(t, err, errs.ErrAlreadyExists)

	got, found, err := repo.FindByCode(ctx, "USA")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "United States", got.Name)
}

func TestFindByCodeAbsent(t *testing.T) {
	repo := newTestRepository(t)

	got, found, err := repo.FindByCode(context.Background(), "ZZZ")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, models.Country{}, got)
}

func TestFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	require.NoError(t, repo.Create(ctx, usa()))
	require.NoError(t, repo.Create(ctx, models.NewCountry("FRA", "France", models.CountryOptions{})))

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	codes := make([]string, 0, len(all))
	for _, c := range all {
		codes = append(codes, c.Code)
	}
	assert.ElementsMatch(t, []string{"USA", "FRA"}, codes)
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	require.NoError(t, repo.Create(ctx, usa()))

	edited := usa()
	edited.Name = "United States Of America"
	require.NoError(t, repo.Update(ctx, edited))

	got, found, err := repo.FindByCode(ctx, "USA")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "USA", got.Code)
	assert.Equal(t, "United States Of America", got.Name)
	require.NotNil(t, got.InternetUsers)
	assert.InDelta(t, 46.2, *got.InternetUsers, 1e-9)
	require.NotNil(t, got.AdultLiteracyRate)
	assert.InDelta(t, 78.89, *got.AdultLiteracyRate, 1e-9)
}

func TestUpdateClearsPercentages(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	require.NoError(t, repo.Create(ctx, usa()))

	edited := usa()
	edited.InternetUsers = nil
	require.NoError(t, repo.Update(ctx, edited))

	got, _, err := repo.FindByCode(ctx, "USA")
	require.NoError(t, err)
	assert.Nil(t, got.InternetUsers)
	assert.NotNil(t, got.AdultLiteracyRate)
}

func TestUpdateUnchangedValues(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	require.NoError(t, repo.Create(ctx, usa()))

	assert.NoError(t, repo.Update(ctx, usa()))
}

func TestUpdateMissing(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Update(context.Background(), usa())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepository(t)
	require.NoError(t, repo.Create(ctx, usa()))

	require.NoError(t, repo.Delete(ctx, usa()))

	_, found, err := repo.FindByCode(ctx, "USA")
	require.NoError(t, err)
	assert.False(t, found)

	err = repo.Delete(ctx, usa())
	assert.ErrorIs(t, err, errs.ErrNotFound)
}
