package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageRequestDefaults(t *testing.T) {
	var p PageRequest
	p.Defaults()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.PageSize)
	assert.Equal(t, 0, p.Offset())

	p = PageRequest{Page: 3, PageSize: 10}
	p.Defaults()
	assert.Equal(t, 20, p.Offset())
}

func TestNewPageResponse(t *testing.T) {
	resp := NewPageResponse[string](nil, 1, 20, 41)
	assert.NotNil(t, resp.Data)
	assert.Empty(t, resp.Data)
	assert.Equal(t, 3, resp.TotalPages)

	resp = NewPageResponse([]string{"a"}, 1, 0, 1)
	assert.Equal(t, 0, resp.TotalPages)
}

func TestNewWindow(t *testing.T) {
	tests := []struct {
		name        string
		skip, limit int
		want        Window
	}{
		{"defaults", 0, 0, Window{0, DefaultWindowLimit}},
		{"negative skip", -3, 10, Window{0, 10}},
		{"over max", 5, MaxWindowLimit + 1, Window{5, MaxWindowLimit}},
		{"negative limit", 2, -1, Window{2, DefaultWindowLimit}},
		{"exact max", 0, MaxWindowLimit, Window{0, MaxWindowLimit}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewWindow(tt.skip, tt.limit))
		})
	}
}
