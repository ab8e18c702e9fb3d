package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Category
		wantErr bool
	}{
		{name: "food", input: "food", want: CategoryFood},
		{name: "health", input: "health", want: CategoryHealth},
		{name: "housing", input: "housing", want: CategoryHousing},
		{name: "sport", input: "sport", want: CategorySport},
		{name: "education", input: "education", want: CategoryEducation},
		{name: "unknown value", input: "travel", wantErr: true},
		{name: "empty value", input: "", wantErr: true},
		{name: "case sensitive", input: "Food", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCategories_FixedOrder(t *testing.T) {
	assert.Equal(t, []Category{
		CategoryFood,
		CategoryHealth,
		CategoryHousing,
		CategorySport,
		CategoryEducation,
	}, Categories)
}
