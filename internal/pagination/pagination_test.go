// FilePath: internal/pagination/pagination_test.go
package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name         string
		page         int
		pageSize     int
		wantPage     int
		wantPageSize int
	}{
		{"defaults", 0, 0, 0, DefaultPageSize},
		{"negative page clamps to zero", -3, 10, 0, 10},
		{"oversized pageSize falls back to default", 2, 500, 2, DefaultPageSize},
		{"valid values pass through", 4, 25, 4, 25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := Normalize(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPageSize, pageSize)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 12))
	assert.Equal(t, 1, TotalPages(1, 12))
	assert.Equal(t, 1, TotalPages(12, 12))
	assert.Equal(t, 2, TotalPages(13, 12))
	assert.Equal(t, 3, TotalPages(25, 12))
}

func TestWindowFor(t *testing.T) {
	w := WindowFor(0, 12)
	assert.Equal(t, 0, w.Offset)
	assert.Equal(t, 12, w.Limit)

	w = WindowFor(3, 10)
	assert.Equal(t, 30, w.Offset)
	assert.Equal(t, 10, w.Limit)
}

func TestInRange(t *testing.T) {
	assert.True(t, InRange(0, 5, 12))
	assert.True(t, InRange(2, 25, 12))
	assert.False(t, InRange(3, 25, 12), "page past the last one is out of range")
	assert.False(t, InRange(0, 0, 12), "empty dataset has no pages")
}

func TestNewPage(t *testing.T) {
	data := []string{"a", "b", "c"}

	page := NewPage(data, 25, 0, 12)
	assert.Equal(t, data, page.Data)
	assert.True(t, page.HasNext)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)

	last := NewPage([]string{"z"}, 25, 2, 12)
	assert.False(t, last.HasNext, "last page must not advertise a next page")
}

func TestNewPageNilData(t *testing.T) {
	page := NewPage[string](nil, 0, 0, 12)
	assert.NotNil(t, page.Data, "data must serialize as [] not null")
	assert.Empty(t, page.Data)
}

func TestEmptyPage(t *testing.T) {
	page := EmptyPage[int](25, 12)
	assert.NotNil(t, page.Data)
	assert.Empty(t, page.Data)
	assert.False(t, page.HasNext)
	assert.Equal(t, int64(25), page.TotalElements)
	assert.Equal(t, 3, page.TotalPages)
}
