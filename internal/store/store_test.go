package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExactlyOne(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		_, err := exactlyOne([]int{})
		assert.ErrorIs(t, err, ErrNoResult)
	})

	t.Run("one row", func(t *testing.T) {
		got, err := exactlyOne([]int{42})
		require.NoError(t, err)
		assert.Equal(t, 42, *got)
	})

	t.Run("multiple rows", func(t *testing.T) {
		_, err := exactlyOne([]int{1, 2, 3})
		assert.ErrorIs(t, err, ErrMultipleResults)
	})
}

func TestIsUniqueViolation(t *testing.T) {
	unique := &pgconn.PgError{Code: "23505", ConstraintName: "vehicles_vin_key"}

	assert.True(t, IsUniqueViolation(unique))
	assert.True(t, IsUniqueViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, IsUniqueViolation(&pgconn.PgError{Code: "23503"}))
	assert.False(t, IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, IsUniqueViolation(nil))
}

func TestListQuery(t *testing.T) {
	strPtr := func(s string) *string { return &s }

	sql, args := listQuery(strPtr("1FTBR1Y84GKA12345"), nil)
	assert.Contains(t, sql, "WHERE vin =")
	assert.Equal(t, []any{"1FTBR1Y84GKA12345"}, args)

	sql, args = listQuery(nil, strPtr("Ford"))
	assert.Contains(t, sql, "LIKE")
	assert.Equal(t, []any{"%Ford%"}, args)

	// vin wins when both filters are present
	sql, args = listQuery(strPtr("1FTBR1Y84GKA12345"), strPtr("Ford"))
	assert.Contains(t, sql, "WHERE vin =")
	assert.Equal(t, []any{"1FTBR1Y84GKA12345"}, args)

	// a present but empty filter must not degrade to a full scan
	sql, args = listQuery(strPtr(""), nil)
	assert.Contains(t, sql, "WHERE vin =")
	assert.Equal(t, []any{""}, args)

	sql, args = listQuery(nil, strPtr(""))
	assert.Contains(t, sql, "LIKE")
	assert.Equal(t, []any{"%%"}, args)

	sql, args = listQuery(nil, nil)
	assert.Equal(t, `SELECT * FROM vehicles`, sql)
	assert.Nil(t, args)
}
