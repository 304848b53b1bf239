package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTopAmenities(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "Comma list truncated", input: "Gym, Pool, Clubhouse, Park", want: "Gym, Pool, Clubhouse"},
		{name: "Semicolon list", input: "Gym;Pool", want: "Gym, Pool"},
		{name: "Pipe list", input: "Lift | Power backup | Security | Garden", want: "Lift, Power backup, Security"},
		{name: "Comma preferred over pipe", input: "Gym|Spa, Pool", want: "Gym|Spa, Pool"},
		{name: "Single token", input: "Swimming pool", want: "Swimming pool"},
		{name: "Empty tokens dropped", input: "Gym,,  ,Pool", want: "Gym, Pool"},
		{name: "Empty", input: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TopAmenities(tt.input, 3))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "Godrej Woods", want: "godrej-woods"},
		{input: "  Lodha -- Palava (Phase 2)! ", want: "lodha-palava-phase-2"},
		{input: "Project", want: "project"},
		{input: "Süd Tower", want: "s-d-tower"},
		{input: "***", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}

func TestSlugify_Truncates(t *testing.T) {
	slug := Slugify(strings.Repeat("a", 120))
	assert.Len(t, slug, 80)
}

func TestContainsFold(t *testing.T) {
	assert.True(t, ContainsFold("Pune", "pune"))
	assert.True(t, ContainsFold("1BHK,2BHK,3BHK", "3bhk"))
	assert.False(t, ContainsFold("Mumbai", "pune"))
}
