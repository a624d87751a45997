package pennybook

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearcherCompile(t *testing.T) {
	s := NewSearcher()

	t.Run("empty pattern passes everything", func(t *testing.T) {
		matcher, err := s.Compile("")
		require.NoError(t, err)
		assert.Nil(t, matcher)
	})

	t.Run("insensitive by default", func(t *testing.T) {
		matcher, err := s.Compile("coffee")
		require.NoError(t, err)
		assert.True(t, matcher.MatchString("Morning COFFEE"))
	})

	t.Run("sensitive when asked", func(t *testing.T) {
		s.SetCaseSensitive(true)
		defer s.SetCaseSensitive(false)
		matcher, err := s.Compile("coffee")
		require.NoError(t, err)
		assert.False(t, matcher.MatchString("Morning COFFEE"))
		assert.True(t, matcher.MatchString("iced coffee"))
	})

	t.Run("malformed pattern degrades", func(t *testing.T) {
		matcher, err := s.Compile("[unclosed")
		require.Error(t, err)
		assert.Nil(t, matcher, "a bad pattern behaves like no filter")
	})
}

func TestFilter(t *testing.T) {
	list := []Transaction{
		txn("t1", "Morning coffee", 3.5, "Food", "2025-08-20"),
		txn("t2", "Train to Lyon", 42, "Transport", "2025-08-21"),
		txn("t3", "Paperback", 12.99, "Books", "2025-08-22"),
	}
	s := NewSearcher()

	ids := func(txs []Transaction) []string {
		out := make([]string, 0, len(txs))
		for _, tx := range txs {
			out = append(out, tx.ID)
		}
		return out
	}

	t.Run("nil matcher returns input unchanged", func(t *testing.T) {
		got := Filter(list, nil)
		assert.Equal(t, ids(list), ids(got))
	})

	t.Run("matches description", func(t *testing.T) {
		matcher, err := s.Compile("coffee")
		require.NoError(t, err)
		assert.Equal(t, []string{"t1"}, ids(Filter(list, matcher)))
	})

	t.Run("matches category", func(t *testing.T) {
		matcher, err := s.Compile("transport")
		require.NoError(t, err)
		assert.Equal(t, []string{"t2"}, ids(Filter(list, matcher)))
	})

	t.Run("matches amount text", func(t *testing.T) {
		matcher, err := s.Compile(`12\.99`)
		require.NoError(t, err)
		assert.Equal(t, []string{"t3"}, ids(Filter(list, matcher)))
	})

	t.Run("matches date", func(t *testing.T) {
		matcher, err := s.Compile("2025-08-21")
		require.NoError(t, err)
		assert.Equal(t, []string{"t2"}, ids(Filter(list, matcher)))
	})

	t.Run("no hits yields empty", func(t *testing.T) {
		matcher, err := s.Compile("zzz")
		require.NoError(t, err)
		assert.Empty(t, Filter(list, matcher))
	})
}
