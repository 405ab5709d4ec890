package themes

import (
	"testing"

	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/stretchr/testify/assert"
)

func TestGetTheme(t *testing.T) {
	assert.Equal(t, CatppuccinMocha.Primary, GetTheme("catppuccin-mocha").Primary)
	assert.Equal(t, Default.Primary, GetTheme("default").Primary)
	assert.Equal(t, Default.Primary, GetTheme("unknown").Primary)
}

func TestTheme_Badge(t *testing.T) {
	tests := []struct {
		want     any
		category listview.Category
	}{
		{category: listview.CategoryPositive, want: Default.Success},
		{category: listview.CategoryNegative, want: Default.Error},
		{category: listview.CategoryWarning, want: Default.Warning},
		{category: listview.CategoryInfo, want: Default.Info},
		{category: listview.CategoryAccent, want: Default.Accent},
		{category: listview.CategoryNeutral, want: Default.Muted},
		{category: listview.Category(42), want: Default.Muted},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, Default.Badge(tt.category).GetForeground())
		})
	}
}
