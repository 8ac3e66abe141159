package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ondas/internal/page"
)

func sequence(n int) []int {
	items := make([]int, n)
	for i := range items {
		items[i] = i
	}
	return items
}

func TestPaginate(t *testing.T) {
	t.Run("120 items in pages of 50", func(t *testing.T) {
		items := sequence(120)

		first := page.Paginate(items, 1, 50)
		assert.Equal(t, 3, first.TotalPages)
		assert.Equal(t, 120, first.TotalCount)
		assert.Equal(t, items[0:50], first.Items)

		second := page.Paginate(items, 2, 50)
		assert.Equal(t, items[50:100], second.Items)
		assert.Equal(t, 50, second.Items[0])
		assert.Equal(t, 99, second.Items[49])

		third := page.Paginate(items, 3, 50)
		assert.Equal(t, items[100:120], third.Items)
		assert.Len(t, third.Items, 20)
	})

	t.Run("empty sequence still has one page", func(t *testing.T) {
		pg := page.Paginate([]int{}, 1, 50)

		assert.Equal(t, 1, pg.TotalPages)
		assert.Equal(t, 1, pg.Number)
		assert.Empty(t, pg.Items)
		assert.Zero(t, pg.TotalCount)
	})

	t.Run("exact multiple has no trailing page", func(t *testing.T) {
		pg := page.Paginate(sequence(100), 1, 50)

		assert.Equal(t, 2, pg.TotalPages)
	})

	t.Run("out of range page clamps high", func(t *testing.T) {
		pg := page.Paginate(sequence(120), 9, 50)

		assert.Equal(t, 3, pg.Number)
		assert.Len(t, pg.Items, 20)
	})

	t.Run("out of range page clamps low", func(t *testing.T) {
		pg := page.Paginate(sequence(120), 0, 50)

		assert.Equal(t, 1, pg.Number)
		assert.Equal(t, 0, pg.Items[0])
	})

	t.Run("concatenating pages reproduces the sequence", func(t *testing.T) {
		items := sequence(97)
		first := page.Paginate(items, 1, 39)

		var rebuilt []int
		for n := 1; n <= first.TotalPages; n++ {
			rebuilt = append(rebuilt, page.Paginate(items, n, 39).Items...)
		}

		assert.Equal(t, items, rebuilt)
	})
}

func TestWindow(t *testing.T) {
	t.Run("everything fits", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, page.Window(2, 3, 5))
	})

	t.Run("single page", func(t *testing.T) {
		assert.Equal(t, []int{1}, page.Window(1, 1, 5))
	})

	t.Run("gap on both sides", func(t *testing.T) {
		got := page.Window(10, 20, 2)

		assert.Equal(t, []int{1, page.Ellipsis, 8, 9, 10, 11, 12, page.Ellipsis, 20}, got)
	})

	t.Run("window touching the first page", func(t *testing.T) {
		got := page.Window(3, 20, 2)

		assert.Equal(t, []int{1, 2, 3, 4, 5, page.Ellipsis, 20}, got)
	})

	t.Run("no ellipsis when the gap is empty", func(t *testing.T) {
		// Window 2..6 starts right after page 1: nothing is skipped.
		got := page.Window(4, 20, 2)

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, page.Ellipsis, 20}, got)
	})

	t.Run("window touching the last page", func(t *testing.T) {
		got := page.Window(18, 20, 2)

		assert.Equal(t, []int{1, page.Ellipsis, 16, 17, 18, 19, 20}, got)
	})

	t.Run("current clamps into range", func(t *testing.T) {
		assert.Equal(t, page.Window(20, 20, 2), page.Window(99, 20, 2))
		assert.Equal(t, page.Window(1, 20, 2), page.Window(-3, 20, 2))
	})

	t.Run("radius five around the middle", func(t *testing.T) {
		got := page.Window(6, 12, 5)

		assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}, got)
	})
}
