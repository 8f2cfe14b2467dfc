//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VirusAlex/CashCleanerSimulator/internal/domain/model"
)

func TestStockRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := integrationDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewStockRepository(db)

	t.Run("get active when none exists", func(t *testing.T) {
		config, err := repo.GetActive(ctx, "USD")
		assert.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("create first configuration", func(t *testing.T) {
		levels := map[string]int64{"100": 40, "50": 10}
		config, err := repo.Create(ctx, "USD", levels, "bundles", "ops@example.com")
		require.NoError(t, err)
		assert.Equal(t, "USD", config.Currency)
		assert.Equal(t, levels, config.Levels)
		assert.Equal(t, "bundles", config.Unit)
		assert.Equal(t, "ops@example.com", config.CreatedBy)
		assert.Equal(t, 1, config.Version)
		assert.True(t, config.Active)
		assert.False(t, config.ID.IsZero())
	})

	t.Run("get active after create", func(t *testing.T) {
		config, err := repo.GetActive(ctx, "USD")
		require.NoError(t, err)
		require.NotNil(t, config)
		assert.Equal(t, int64(40), config.Levels["100"])
	})

	t.Run("new configuration supersedes old", func(t *testing.T) {
		newLevels := map[string]int64{"100": 100}
		updated, err := repo.Create(ctx, "USD", newLevels, "bills", "ops2@example.com")
		require.NoError(t, err)
		assert.Equal(t, 2, updated.Version)

		active, err := repo.GetActive(ctx, "USD")
		require.NoError(t, err)
		require.NotNil(t, active)
		assert.Equal(t, updated.ID, active.ID)
		assert.Equal(t, "bills", active.Unit)
	})

	t.Run("currencies are independent", func(t *testing.T) {
		config, err := repo.GetActive(ctx, "EUR")
		require.NoError(t, err)
		assert.Nil(t, config)
	})

	t.Run("history is newest first and limited", func(t *testing.T) {
		history, err := repo.History(ctx, "USD", 10)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, 2, history[0].Version)
		assert.Equal(t, 1, history[1].Version)
		assert.False(t, history[1].Active)

		limited, err := repo.History(ctx, "USD", 1)
		require.NoError(t, err)
		require.Len(t, limited, 1)
		assert.Equal(t, 2, limited[0].Version)
	})
}

func TestUserRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := integrationDB(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewUserRepository(db)

	t.Run("find missing user returns nil", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("create and find user", func(t *testing.T) {
		user := &model.User{
			Email:    "ops@example.com",
			Password: "hashed",
			Name:     "Vault Operator",
			Active:   true,
		}
		require.NoError(t, repo.Create(ctx, user))
		assert.False(t, user.ID.IsZero())

		found, err := repo.FindByEmail(ctx, "ops@example.com")
		require.NoError(t, err)
		require.NotNil(t, found)
		assert.Equal(t, user.ID, found.ID)
		assert.Equal(t, "Vault Operator", found.Name)

		byID, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, byID)
		assert.Equal(t, "ops@example.com", byID.Email)
	})

	t.Run("update user", func(t *testing.T) {
		user, err := repo.FindByEmail(ctx, "ops@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)

		user.Active = false
		require.NoError(t, repo.Update(ctx, user))

		updated, err := repo.FindByEmail(ctx, "ops@example.com")
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.False(t, updated.Active)
	})
}
