package mocks_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/easybank/easybank-services/internal/domain"
	"github.com/easybank/easybank-services/internal/mocks"
	"github.com/easybank/easybank-services/internal/store"
)

func TestSequenceGenerator(t *testing.T) {
	t.Parallel()

	g := mocks.NewSequenceGenerator(1, 2, 3)
	assert.Equal(t, int64(1), g.Next())
	assert.Equal(t, int64(2), g.Next())
	assert.Equal(t, int64(3), g.Next())
	assert.Equal(t, int64(3), g.Next())
	assert.Equal(t, 3, g.Drawn())

	assert.Equal(t, int64(0), mocks.NewSequenceGenerator().Next())
}

func TestMockTransactor(t *testing.T) {
	t.Parallel()

	tx := &mocks.MockTransactor{}
	called := false
	err := tx.RunInTx(context.Background(), func(ctx context.Context, _ *sql.Tx) error {
		called = true
		return nil
	})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Equal(t, 1, tx.Calls())

	tx.Err = store.ErrTransactionFailed
	err = tx.RunInTx(context.Background(), func(ctx context.Context, _ *sql.Tx) error {
		t.Fatal("fn must not run when Err is set")
		return nil
	})
	assert.ErrorIs(t, err, store.ErrTransactionFailed)
}

func TestInMemoryCustomerStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := mocks.NewInMemoryCustomerStore()

	c, err := domain.NewCustomer("Jane Doe", "jane@x.com", "1112223333")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, c, "ACCOUNTS_MS"))
	assert.Equal(t, "ACCOUNTS_MS", c.CreatedBy)

	dup, err := domain.NewCustomer("Jane Again", "jane2@x.com", "1112223333")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Create(ctx, dup, "ACCOUNTS_MS"), store.ErrMobileNumberExists)

	got, err := s.GetByMobileNumber(ctx, "1112223333")
	require.NoError(t, err)
	assert.Equal(t, c.ID, got.ID)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrCustomerNotFound)

	require.NoError(t, s.Delete(ctx, c.ID))
	assert.ErrorIs(t, s.Delete(ctx, c.ID), store.ErrCustomerNotFound)
	assert.Equal(t, 0, s.Len())
}

func TestInMemoryCardStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := mocks.NewInMemoryCardStore()

	card, err := domain.NewCard("1112223333", 100000000001)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, card, "CARDS_MS"))

	other, err := domain.NewCard("1112223333", 100000000002)
	require.NoError(t, err)
	assert.ErrorIs(t, s.Create(ctx, other, "CARDS_MS"), store.ErrCardExists)

	exists, err := s.ExistsByCardNumber(ctx, "100000000001")
	require.NoError(t, err)
	assert.True(t, exists)

	card.AmountUsed = 500
	card.AvailableAmount = 99_500
	require.NoError(t, s.Update(ctx, card, "alice"))
	got, err := s.GetByCardNumber(ctx, "100000000001")
	require.NoError(t, err)
	assert.Equal(t, 500, got.AmountUsed)
	assert.Equal(t, "CARDS_MS", got.CreatedBy)
	assert.Equal(t, "alice", got.UpdatedBy)

	require.NoError(t, s.DeleteByMobileNumber(ctx, "1112223333"))
	assert.ErrorIs(t, s.DeleteByMobileNumber(ctx, "1112223333"), store.ErrCardNotFound)
}
