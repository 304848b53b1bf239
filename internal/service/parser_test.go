package service

import (
	"strings"
	"testing"

	"chatsearch/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryParser_Basic(t *testing.T) {
	p := NewQueryParser().Parse("3BHK flat in Pune under ₹1.2 Cr")

	require.NotNil(t, p.City)
	assert.Contains(t, strings.ToLower(*p.City), "pune")
	require.NotNil(t, p.BHK)
	assert.Equal(t, "3BHK", *p.BHK)
	require.NotNil(t, p.BudgetMax)
	assert.Equal(t, 12000000, int(*p.BudgetMax+0.5))
	assert.Equal(t, model.PossessionUnset, p.Possession)
	assert.Nil(t, p.Locality)
	assert.Nil(t, p.ProjectName)
}

func TestQueryParser_EmptyInput(t *testing.T) {
	for _, q := range []string{"", "   ", "!!!"} {
		p := NewQueryParser().Parse(q)
		assert.True(t, p.IsEmpty(), "query %q", q)
	}
}

func TestQueryParser_KnownCities(t *testing.T) {
	cities := []string{"Pune", "Mumbai", "Bengaluru", "Bangalore", "Delhi", "Hyderabad", "Noida", "Gurgaon", "Ahmedabad", "Chennai"}
	parser := NewQueryParser()

	for _, city := range cities {
		t.Run(city, func(t *testing.T) {
			for _, q := range []string{"2BHK " + city, "flats in " + city, strings.ToUpper(city) + " ready to move"} {
				p := parser.Parse(q)
				require.NotNil(t, p.City, "query %q", q)
				assert.True(t, strings.EqualFold(city, *p.City), "query %q got %q", q, *p.City)
			}
		})
	}
}

func TestExtractBudget(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		want        float64
		wantMatched string
		wantOK      bool
	}{
		{name: "Crore", text: "under 1.2 Cr", want: 12000000, wantMatched: "under 1.2 Cr", wantOK: true},
		{name: "Lakh no space", text: "up to 95L in Pune", want: 9500000, wantMatched: "up to 95L", wantOK: true},
		{name: "Lakhs word", text: "below ₹80 lakhs", want: 8000000, wantMatched: "below ₹80 l", wantOK: true},
		{name: "Thousands", text: "less than 40K rent", want: 40000, wantMatched: "less than 40K", wantOK: true},
		{name: "Separators no unit", text: "upto 5,000,000", want: 5000000, wantMatched: "upto 5,000,000", wantOK: true},
		{name: "Malformed number", text: "under 1.2.3 Cr", wantOK: false},
		{name: "No budget phrase", text: "3BHK in Pune", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, matched, ok := ExtractBudget(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.want, got, 1e-6)
				assert.Equal(t, tt.wantMatched, matched)
			}
		})
	}
}

func TestQueryParser_BudgetRemovedBeforeOtherRules(t *testing.T) {
	// the budget phrase is cut before the city rule runs
	p := NewQueryParser().Parse("under 3 Cr in Mumbai")

	require.NotNil(t, p.BudgetMax)
	assert.InDelta(t, 30000000, *p.BudgetMax, 1e-6)
	require.NotNil(t, p.City)
	assert.Equal(t, "Mumbai", *p.City)
	assert.Nil(t, p.BHK)
}

func TestExtractCity(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "2BHK in Navi Mumbai", want: "Navi Mumbai", wantOK: true},
		{text: "homes at Whitefield, Bengaluru", want: "Whitefield", wantOK: true},
		{text: "villa in Pune near Baner", want: "Pune near Baner", wantOK: true},
		{text: "Hyderabad 3BHK", want: "Hyderabad", wantOK: true},
		{text: "flat near lake", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ExtractCity(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractBHK(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{text: "3BHK", want: "3BHK"},
		{text: "2 bhk flat", want: "2BHK"},
		{text: "4-BHK villa", want: "4BHK"},
		{text: "10 - Bhk", want: "10BHK"},
		{text: "studio", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, _ := ExtractBHK(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractPossession(t *testing.T) {
	tests := []struct {
		text string
		want model.PossessionStatus
	}{
		{text: "ready to move 2BHK", want: model.PossessionReady},
		{text: "Ready-To-Move flats", want: model.PossessionReady},
		{text: "READY homes", want: model.PossessionReady},
		{text: "under construction in Pune", want: model.PossessionUnderConstruction},
		{text: "under-construction", want: model.PossessionUnderConstruction},
		{text: "UC projects", want: model.PossessionUnderConstruction},
		{text: "ready or under construction", want: model.PossessionUnderConstruction},
		{text: "3BHK Pune", want: model.PossessionUnset},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPossession(tt.text))
		})
	}
}

func TestExtractLocality(t *testing.T) {
	got, ok := ExtractLocality("2BHK in Pune near Hinjewadi Phase-1")
	assert.True(t, ok)
	assert.Equal(t, "Hinjewadi Phase-1", got)

	_, ok = ExtractLocality("2BHK in Pune")
	assert.False(t, ok)
}

func TestExtractProjectName(t *testing.T) {
	tests := []struct {
		text   string
		want   string
		wantOK bool
	}{
		{text: "project Godrej Woods", want: "Godrej Woods", wantOK: true},
		{text: `flats in "Lodha Palava"`, want: "Lodha Palava", wantOK: true},
		{text: `project Alpha "Godrej Woods"`, want: "Godrej Woods", wantOK: true},
		{text: "3BHK in Pune", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, ok := ExtractProjectName(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQueryParser_AllFields(t *testing.T) {
	p := NewQueryParser().Parse(`ready to move 2 BHK at Pune near Wakad below 90 L "Kolte Patil"`)

	require.NotNil(t, p.BudgetMax)
	assert.InDelta(t, 9000000, *p.BudgetMax, 1e-6)
	require.NotNil(t, p.City)
	assert.Equal(t, "Pune near Wakad", *p.City)
	require.NotNil(t, p.BHK)
	assert.Equal(t, "2BHK", *p.BHK)
	assert.Equal(t, model.PossessionReady, p.Possession)
	require.NotNil(t, p.Locality)
	assert.Equal(t, "Wakad", *p.Locality)
	require.NotNil(t, p.ProjectName)
	assert.Equal(t, "Kolte Patil", *p.ProjectName)
}
