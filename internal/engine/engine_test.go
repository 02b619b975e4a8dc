package engine

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/buildlab/calc/internal/expr"
	"github.com/buildlab/calc/internal/store"
	"github.com/buildlab/calc/internal/testutil"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	clk := testutil.NewDeterministicClock()
	s, err := store.Open(path, store.WithNow(clk.Now))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEvaluate_RecordsSuccess(t *testing.T) {
	st := newTestStore(t)
	eng := New(st, NewFixedGenerator("entry-1"))

	res, err := eng.Evaluate(context.Background(), "2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, int64(14), res.Value)
	assert.Equal(t, "entry-1", res.EntryID)
	assert.Equal(t, "2 + 3 * 4", res.Expression)

	entry, err := st.GetEntry(context.Background(), "entry-1")
	require.NoError(t, err)
	assert.Equal(t, store.StatusOK, entry.Status)
	assert.Equal(t, int64(14), entry.Result)
	assert.Equal(t, "2 + 3 * 4", entry.Expression)
	assert.Empty(t, entry.Error)
}

func TestEvaluate_RecordsFailure(t *testing.T) {
	st := newTestStore(t)
	eng := New(st, NewFixedGenerator("entry-1"))

	_, err := eng.Evaluate(context.Background(), "1 / 0")
	require.Error(t, err)

	var exprErr *expr.Error
	require.True(t, errors.As(err, &exprErr))
	assert.Equal(t, expr.ErrCodeDivideByZero, exprErr.Code)

	// Failure still lands in the history
	entry, err := st.GetEntry(context.Background(), "entry-1")
	require.NoError(t, err)
	assert.Equal(t, store.StatusError, entry.Status)
	assert.Equal(t, int64(0), entry.Result)
	assert.Contains(t, entry.Error, "DIVIDE_BY_ZERO")
}

func TestEvaluate_NilStoreSkipsRecording(t *testing.T) {
	eng := New(nil, UUIDv7Generator{})

	res, err := eng.Evaluate(context.Background(), "4 * 5")
	require.NoError(t, err)
	assert.Equal(t, int64(20), res.Value)
	assert.Empty(t, res.EntryID)
}

func TestEvaluate_SequentialEntriesOrdered(t *testing.T) {
	st := newTestStore(t)
	eng := New(st, NewFixedGenerator("entry-1", "entry-2", "entry-3"))

	for _, input := range []string{"1 + 1", "2 + 2", "3 + 3"} {
		_, err := eng.Evaluate(context.Background(), input)
		require.NoError(t, err)
	}

	entries, err := st.ListEntries(context.Background(), store.ListOptions{})
	require.NoError(t, err)
	require.Len(t, entries, 3)

	// Newest first
	assert.Equal(t, "3 + 3", entries[0].Expression)
	assert.Equal(t, "1 + 1", entries[2].Expression)
}

func TestUUIDv7Generator_UniqueAndSortable(t *testing.T) {
	gen := UUIDv7Generator{}

	prev := gen.Generate()
	assert.Len(t, prev, 36)
	for i := 0; i < 100; i++ {
		next := gen.Generate()
		assert.NotEqual(t, prev, next)
		prev = next
	}
}

func TestFixedGenerator_ReturnsInOrder(t *testing.T) {
	gen := NewFixedGenerator("a", "b")
	assert.Equal(t, "a", gen.Generate())
	assert.Equal(t, "b", gen.Generate())
	assert.Panics(t, func() { gen.Generate() })
}
