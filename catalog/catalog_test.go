package catalog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/denismitr/florist/catalog"
	"github.com/denismitr/florist/flower"
	"github.com/denismitr/florist/set"
)

type stock struct {
	rose, tulip, lily, rose2, tulip2 flower.Item
}

func newStock(t *testing.T) stock {
	t.Helper()
	must := func(item flower.Item, err error) flower.Item {
		require.NoError(t, err)
		return item
	}

	return stock{
		rose:   must(flower.NewRose(70, 8, 55)),
		tulip:  must(flower.NewTulip(40, 7, 35)),
		lily:   must(flower.NewLily(105, 9, 50)),
		rose2:  must(flower.NewRose(80, 7, 50)),
		tulip2: must(flower.NewTulip(35, 9, 40)),
	}
}

func quietCatalog() *catalog.Catalog {
	return catalog.New(catalog.WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))
}

func TestCatalog_Add(t *testing.T) {
	s := newStock(t)

	t.Run("duplicates are counted out", func(t *testing.T) {
		c := quietCatalog()

		added, err := c.Add(s.rose, s.tulip, s.lily, s.rose, s.tulip)
		require.NoError(t, err)
		assert.Equal(t, 3, added)
		assert.Equal(t, 3, c.Len())
		assert.Equal(t, []flower.Item{s.rose, s.tulip, s.lily}, c.Items())
	})

	t.Run("add all from a collection", func(t *testing.T) {
		c := quietCatalog()
		_, err := c.Add(s.rose)
		require.NoError(t, err)

		modified, err := c.AddAll(set.SliceOf(s.rose, s.lily))
		require.NoError(t, err)
		assert.True(t, modified)
		assert.True(t, c.Contains(s.lily))

		_, err = c.AddAll(nil)
		assert.True(t, errors.Is(err, set.ErrInvalidArgument))
	})

	t.Run("empty flowers are rejected", func(t *testing.T) {
		c := quietCatalog()

		added, err := c.Add(s.rose, flower.Item{}, s.lily)
		assert.True(t, errors.Is(err, flower.ErrInvalidFlower))
		assert.Equal(t, 1, added)
		assert.Equal(t, []flower.Item{s.rose}, c.Items())

		modified, err := c.AddAll(set.SliceOf(s.lily, flower.Item{}))
		assert.False(t, modified)
		assert.True(t, errors.Is(err, flower.ErrInvalidFlower))
		assert.Equal(t, 1, c.Len())

		var buf bytes.Buffer
		require.NoError(t, c.Render(&buf))
		assert.NotContains(t, buf.String(), "price: 0")
	})

	t.Run("debug logs report duplicates", func(t *testing.T) {
		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
		c := catalog.New(catalog.WithLogger(logger))

		_, err := c.Add(s.rose, s.rose)
		require.NoError(t, err)

		assert.Contains(t, buf.String(), "flower added")
		assert.Contains(t, buf.String(), "flower already in catalog")
	})
}

func TestCatalog_Remove(t *testing.T) {
	s := newStock(t)
	c := quietCatalog()
	_, err := c.Add(s.rose, s.tulip, s.lily)
	require.NoError(t, err)

	assert.True(t, c.Remove(s.tulip))
	assert.False(t, c.Remove(s.tulip))
	assert.Equal(t, []flower.Item{s.rose, s.lily}, c.Items())
}

func TestCatalog_Queries(t *testing.T) {
	s := newStock(t)
	c := quietCatalog()
	_, err := c.Add(s.tulip, s.rose, s.tulip2, s.lily, s.rose2)
	require.NoError(t, err)

	t.Run("by kind", func(t *testing.T) {
		assert.Equal(t, []flower.Item{s.rose, s.rose2}, c.ByKind(flower.Rose))
		assert.Equal(t, []flower.Item{s.tulip, s.tulip2}, c.ByKind(flower.Tulip))
		assert.Empty(t, c.ByKind(flower.Unknown))
	})

	t.Run("kinds in first seen order", func(t *testing.T) {
		assert.Equal(t, []flower.Kind{flower.Tulip, flower.Rose, flower.Lily}, c.Kinds().Items())
	})

	t.Run("totals", func(t *testing.T) {
		assert.InDelta(t, 330.0, c.TotalPrice(), 1e-9)
		assert.Equal(t, 230, c.TotalLength())
	})

	t.Run("items form the same set", func(t *testing.T) {
		snapshot, err := set.NewValueSetOf(c.Items()...)
		require.NoError(t, err)
		other, err := set.NewValueSetOf(s.rose, s.rose2, s.lily, s.tulip, s.tulip2)
		require.NoError(t, err)
		assert.True(t, snapshot.Equal(other))
	})
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestCatalog_Render(t *testing.T) {
	s := newStock(t)
	c := quietCatalog()
	_, err := c.Add(s.rose, s.lily)
	require.NoError(t, err)

	t.Run("one line per flower", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, c.Render(&buf))

		expected := "rose | price: 70 | freshness: 8 | length: 55\n" +
			"lily | price: 105 | freshness: 9 | length: 50\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("write errors are returned", func(t *testing.T) {
		err := c.Render(failingWriter{})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("empty catalog renders nothing", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, quietCatalog().Render(&buf))
		assert.Empty(t, buf.String())
	})
}
