package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewParams(t *testing.T) {
	tests := []struct {
		name              string
		page, limit       int
		wantPage, wantLim int
		wantOffset        int
	}{
		{"defaults", 0, 0, 1, DefaultLimit, 0},
		{"second page", 2, 10, 2, 10, 10},
		{"limit capped", 1, 500, 1, MaxLimit, 0},
		{"negative page", -3, 5, 1, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewParams(tt.page, tt.limit)
			assert.Equal(t, tt.wantPage, p.Page)
			assert.Equal(t, tt.wantLim, p.Limit)
			assert.Equal(t, tt.wantOffset, p.Offset)
		})
	}
}

func TestSlice(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}

	assert.Equal(t, []int{1, 2}, Slice(items, NewParams(1, 2)))
	assert.Equal(t, []int{5}, Slice(items, NewParams(3, 2)))
	assert.Equal(t, []int{}, Slice(items, NewParams(4, 2)))
}

func TestGetMeta(t *testing.T) {
	m := GetMeta(NewParams(2, 2), 5)
	assert.Equal(t, 3, m.TotalPages)
	assert.True(t, m.HasNext)
	assert.True(t, m.HasPrev)

	m = GetMeta(NewParams(1, 20), 0)
	assert.Equal(t, 0, m.TotalPages)
	assert.False(t, m.HasNext)
	assert.False(t, m.HasPrev)
}
