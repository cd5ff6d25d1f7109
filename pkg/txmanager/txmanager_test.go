package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucerocare/LRM-BookingService/pkg/dbmetrics"
)

// fakeBeginner выдает транзакции, чьи Commit завершаются
// заранее заданными ошибками (по одной на попытку)
type fakeBeginner struct {
	begins     int
	rollbacks  int
	commitErrs []error
}

func (b *fakeBeginner) BeginTx(_ context.Context, _ *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	b.begins++
	return &fakeTx{beginner: b}, nil
}

func (b *fakeBeginner) nextCommitErr() error {
	if len(b.commitErrs) == 0 {
		return nil
	}
	err := b.commitErrs[0]
	b.commitErrs = b.commitErrs[1:]
	return err
}

type fakeTx struct {
	beginner *fakeBeginner
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	return t.beginner.nextCommitErr()
}

func (t *fakeTx) Rollback() error {
	t.beginner.rollbacks++
	return nil
}

func serializationFailure() error {
	return &pq.Error{Code: "40001", Message: "could not serialize access due to concurrent update"}
}

func TestDoSerializable_RetriesAfterSerializationFailure(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{serializationFailure()}}
	manager := NewTransactionManager(beginner)

	calls := 0
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 2, beginner.begins, "aborted attempt must be followed by a fresh transaction")
	assert.Equal(t, 2, calls)
}

func TestDoSerializable_GivesUpAfterMaxAttempts(t *testing.T) {
	beginner := &fakeBeginner{commitErrs: []error{
		serializationFailure(),
		serializationFailure(),
		serializationFailure(),
	}}
	manager := NewTransactionManager(beginner)

	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return nil
	})

	require.Error(t, err)
	assert.True(t, IsSerializationFailure(err))
	assert.Equal(t, maxSerializationAttempts, beginner.begins)
}

func TestDoSerializable_DoesNotRetryBusinessErrors(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	sentinel := errors.New("hours already taken")
	err := manager.DoSerializable(context.Background(), func(ctx context.Context) error {
		return sentinel
	})

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, 1, beginner.begins)
	assert.Equal(t, 1, beginner.rollbacks)
}

func TestDoSerializable_ReusesEnclosingTransaction(t *testing.T) {
	beginner := &fakeBeginner{}
	manager := NewTransactionManager(beginner)

	ctx := dbmetrics.WithTx(context.Background(), &fakeTx{beginner: beginner})

	calls := 0
	err := manager.DoSerializable(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 0, beginner.begins, "nested call must not open a second transaction")
	assert.Equal(t, 1, calls)
}

func TestIsSerializationFailure(t *testing.T) {
	assert.True(t, IsSerializationFailure(serializationFailure()))
	assert.False(t, IsSerializationFailure(errors.New("plain error")))
	assert.False(t, IsSerializationFailure(nil))
	assert.False(t, IsSerializationFailure(&pq.Error{Code: "23505"}))
}
