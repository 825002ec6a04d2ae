//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/platform/postgres"
	"github.com/easybank/easybank-services/internal/store"
	"github.com/easybank/easybank-services/internal/testdb"
)

func TestCustomerAndAccountStoresIntegration(t *testing.T) {
	db := testdb.OpenTestDatabase(t, "accounts")
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		customers := postgres.NewPostgresCustomerStore(tx, nil)
		accounts := postgres.NewPostgresAccountStore(tx, nil)

		c, err := domain.NewCustomer("Jane Doe", "jane@x.com", "1112223333")
		require.NoError(t, err)
		require.NoError(t, customers.Create(ctx, c, "ACCOUNTS_MS"))

		a, err := domain.NewAccount(c.ID, 1_234_567_890)
		require.NoError(t, err)
		require.NoError(t, accounts.Create(ctx, a, "ACCOUNTS_MS"))

		exists, err := accounts.ExistsByAccountNumber(ctx, 1_234_567_890)
		require.NoError(t, err)
		assert.True(t, exists)

		got, err := customers.GetByMobileNumber(ctx, "1112223333")
		require.NoError(t, err)
		assert.Equal(t, c.ID, got.ID)
		assert.Equal(t, "ACCOUNTS_MS", got.CreatedBy)
		assert.Nil(t, got.UpdatedAt)

		got.Name = "Jane Smith"
		require.NoError(t, customers.Update(ctx, got, "teller-1"))

		reread, err := customers.GetByID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", reread.Name)
		assert.Equal(t, "ACCOUNTS_MS", reread.CreatedBy, "creation audit must not change on update")
		assert.Equal(t, "teller-1", reread.UpdatedBy)
		require.NotNil(t, reread.UpdatedAt)

		acct, err := accounts.GetByCustomerID(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultAccountType, acct.AccountType)
		assert.Contains(t, acct.BranchAddress, "New York")

		require.NoError(t, accounts.DeleteByCustomerID(ctx, c.ID))
		require.NoError(t, customers.Delete(ctx, c.ID))

		_, err = customers.GetByMobileNumber(ctx, "1112223333")
		assert.ErrorIs(t, err, store.ErrCustomerNotFound)
		assert.ErrorIs(t, customers.Delete(ctx, c.ID), store.ErrCustomerNotFound)
	})

	// A failed statement aborts the transaction, so duplicates get their own.
	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		customers := postgres.NewPostgresCustomerStore(tx, nil)

		c, err := domain.NewCustomer("Jane Doe", "jane@x.com", "1112223333")
		require.NoError(t, err)
		require.NoError(t, customers.Create(ctx, c, "ACCOUNTS_MS"))

		dup, err := domain.NewCustomer("Other Person", "other@x.com", "1112223333")
		require.NoError(t, err)
		assert.ErrorIs(t, customers.Create(ctx, dup, "ACCOUNTS_MS"), store.ErrMobileNumberExists)
	})
}

func TestCardStoreIntegration(t *testing.T) {
	db := testdb.OpenTestDatabase(t, "cards")
	ctx := context.Background()

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		cards := postgres.NewPostgresCardStore(tx, nil)

		c, err := domain.NewCard("1112223333", 100_000_000_123)
		require.NoError(t, err)
		require.NoError(t, cards.Create(ctx, c, "CARDS_MS"))

		second, err := domain.NewCard("1112223333", 100_000_000_456)
		require.NoError(t, err)
		assert.ErrorIs(t, cards.Create(ctx, second, "CARDS_MS"), store.ErrCardExists)
	})

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		cards := postgres.NewPostgresCardStore(tx, nil)

		c, err := domain.NewCard("2223334444", 100_000_000_789)
		require.NoError(t, err)
		require.NoError(t, cards.Create(ctx, c, "CARDS_MS"))

		c.AmountUsed = 500
		c.AvailableAmount = c.TotalLimit - 500
		require.NoError(t, cards.Update(ctx, c, "teller-1"))

		got, err := cards.GetByCardNumber(ctx, "100000000789")
		require.NoError(t, err)
		assert.Equal(t, 500, got.AmountUsed)
		assert.Equal(t, "CARDS_MS", got.CreatedBy)
		assert.Equal(t, "teller-1", got.UpdatedBy)

		require.NoError(t, cards.DeleteByMobileNumber(ctx, "2223334444"))
		assert.ErrorIs(t, cards.DeleteByMobileNumber(ctx, "2223334444"), store.ErrCardNotFound)
	})
}
