package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/money-tracker/internal/entity/transaction"
	"max.ks1230/money-tracker/internal/model/customerr"
	"max.ks1230/money-tracker/internal/model/storage"
)

func newManager(t *testing.T) (*Manager, *storage.InMemStorage) {
	t.Helper()
	store := storage.NewInMemStorage()
	return NewManager(store, store), store
}

func record(kind string, amount float64, category string) transaction.Record {
	return transaction.Record{
		Category: category,
		Kind:     kind,
		Amount:   amount,
	}
}

func Test_Register_ShouldRejectEmptyFields(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	assert.ErrorIs(t, m.Register(ctx, "", "secret"), ErrEmptyField)
	assert.ErrorIs(t, m.Register(ctx, "alice", ""), ErrEmptyField)
	assert.NoError(t, m.Register(ctx, "alice", "secret"))
}

func Test_Register_ShouldSurfaceDuplicates(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)

	require.NoError(t, m.Register(ctx, "alice", "secret"))
	err := m.Register(ctx, "alice", "other")
	assert.ErrorAs(t, err, new(*customerr.AlreadyExistsError))
}

func Test_Login_ShouldRejectWrongPassword(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))

	_, err := m.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)
	assert.Equal(t, "alice", sess.Owner())
}

func Test_Session_ShouldStampOwnerOnAdd(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))
	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	rec := record(transaction.Income, 100, "salary")
	rec.Owner = "bob" // ignored: the session owns its writes
	_, err = sess.Add(ctx, rec)
	require.NoError(t, err)

	txs, err := store.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func Test_Session_ShouldNotReachOtherOwnersRecords(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))
	require.NoError(t, m.Register(ctx, "bob", "hunter2"))

	bobID, err := store.AppendTransaction(ctx, transaction.Record{
		Owner: "bob", Category: "rent", Kind: transaction.Expense, Amount: 700,
	})
	require.NoError(t, err)

	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	err = sess.Update(ctx, bobID, record(transaction.Expense, 1, "hijack"))
	assert.ErrorAs(t, err, new(*customerr.NotFoundError))

	err = sess.Delete(ctx, bobID)
	assert.ErrorAs(t, err, new(*customerr.NotFoundError))

	txs, err := store.ListByOwner(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "rent", txs[0].Category)
}

func Test_LoggedOutSession_ShouldRefuseEverything(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))
	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	sess.Logout()

	_, err = sess.Add(ctx, record(transaction.Income, 1, "x"))
	assert.ErrorIs(t, err, ErrLoggedOut)
	_, err = sess.List(ctx)
	assert.ErrorIs(t, err, ErrLoggedOut)
	assert.ErrorIs(t, sess.Update(ctx, 1, record(transaction.Income, 1, "x")), ErrLoggedOut)
	assert.ErrorIs(t, sess.Delete(ctx, 1), ErrLoggedOut)
	_, err = sess.Clear(ctx)
	assert.ErrorIs(t, err, ErrLoggedOut)
}

func Test_Add_ShouldValidateCreationPreconditions(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))
	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	_, err = sess.Add(ctx, record(transaction.Expense, 10, ""))
	assert.ErrorIs(t, err, transaction.ErrEmptyCategory)

	_, err = sess.Add(ctx, record(transaction.Expense, 0, "food"))
	assert.ErrorIs(t, err, transaction.ErrInvalidAmount)

	_, err = sess.Add(ctx, record("Transfer", 10, "food"))
	assert.ErrorIs(t, err, transaction.ErrUnknownKind)
}

func Test_Update_ShouldAllowEmptyCategory(t *testing.T) {
	ctx := context.Background()
	m, store := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))
	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	id, err := sess.Add(ctx, record(transaction.Expense, 10, "food"))
	require.NoError(t, err)

	require.NoError(t, sess.Update(ctx, id, record(transaction.Expense, 15, "")))

	txs, err := store.ListByOwner(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, "", txs[0].Category)
	assert.Equal(t, -15.0, txs[0].Amount)
}

func Test_Clear_ShouldReportCount(t *testing.T) {
	ctx := context.Background()
	m, _ := newManager(t)
	require.NoError(t, m.Register(ctx, "alice", "secret"))
	sess, err := m.Login(ctx, "alice", "secret")
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err = sess.Add(ctx, record(transaction.Expense, 10, "food"))
		require.NoError(t, err)
	}

	removed, err := sess.Clear(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed)

	txs, err := sess.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, txs)
}
