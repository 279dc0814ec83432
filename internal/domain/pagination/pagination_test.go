package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParams_Normalize_Defaults(t *testing.T) {
	tests := []struct {
		name      string
		in        Params
		wantPage  int
		wantLimit int
	}{
		{"zero values", Params{}, 1, 10},
		{"negative page", Params{Page: -3, Limit: 20}, 1, 20},
		{"negative limit", Params{Page: 2, Limit: -1}, 2, 10},
		{"limit over cap", Params{Page: 1, Limit: 5000}, 1, 100},
		{"already valid", Params{Page: 4, Limit: 25}, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.Equal(t, tt.wantPage, got.Page)
			assert.Equal(t, tt.wantLimit, got.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, Params{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, Params{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 40, Params{Page: 3, Limit: 20}.Offset())
	// Malformed input falls back to page 1.
	assert.Equal(t, 0, Params{Page: -5, Limit: 10}.Offset())
}

func TestNewPage_Totals(t *testing.T) {
	// 25 items at limit 10: pages 1 and 2 hold 10, page 3 holds 5, page 4 is empty.
	page := NewPage([]int{1, 2, 3, 4, 5}, Params{Page: 3, Limit: 10}, 25)
	assert.Equal(t, int64(3), page.TotalPages)
	assert.Equal(t, int64(25), page.TotalItems)
	assert.Len(t, page.Items, 5)

	beyond := NewPage([]int{}, Params{Page: 4, Limit: 10}, 25)
	assert.Equal(t, int64(3), beyond.TotalPages)
	assert.Empty(t, beyond.Items)
}

func TestNewPage_EmptySet(t *testing.T) {
	page := NewPage[string](nil, Params{}, 0)
	require.NotNil(t, page.Items)
	assert.Empty(t, page.Items)
	assert.Equal(t, int64(0), page.TotalPages)
}

// Windowing over a full candidate set must partition it: every element
// appears exactly once across pages 1..TotalPages.
func TestPage_WindowPartition(t *testing.T) {
	const n, limit = 25, 10

	candidate := make([]int, 0, n)
	for i := 0; i < n; i++ {
		candidate = append(candidate, i)
	}

	window := func(p Params) []int {
		norm := p.Normalize()
		start := p.Offset()
		if start >= len(candidate) {
			return nil
		}
		end := start + norm.Limit
		if end > len(candidate) {
			end = len(candidate)
		}

		return candidate[start:end]
	}

	var all []int
	total := totalPages(n, limit)
	for p := int64(1); p <= total; p++ {
		items := window(Params{Page: int(p), Limit: limit})
		wantLen := limit
		if remain := n - (int(p)-1)*limit; remain < limit {
			wantLen = remain
		}
		require.Len(t, items, wantLen)
		all = append(all, items...)
	}

	assert.Equal(t, candidate, all)
}
