package service

import (
	"testing"

	"chatsearch/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestSummaryBuilder_Empty(t *testing.T) {
	tests := []struct {
		name   string
		filter *model.StructuredFilter
		want   string
	}{
		{
			name:   "no filters",
			filter: &model.StructuredFilter{},
			want:   "No matching properties options found in the requested city with the given filters.",
		},
		{
			name:   "nil filter",
			filter: nil,
			want:   "No matching properties options found in the requested city with the given filters.",
		},
		{
			name:   "bhk and city echoed",
			filter: &model.StructuredFilter{BHK: stringPtr("3BHK"), City: stringPtr("Pune")},
			want:   "No 3BHK options found in Pune with the given filters.",
		},
	}

	builder := NewSummaryBuilder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, builder.Build(nil, tt.filter))
		})
	}
}

func TestSummaryBuilder_FullSummary(t *testing.T) {
	filter := &model.StructuredFilter{City: stringPtr("Pune")}
	records := NewFilterEngine().Apply(testRecords(), filter)

	got := NewSummaryBuilder().Build(records, filter)
	want := "Found 3 property listings in Pune matching your filters. " +
		"1 are marked Ready-to-move and 2 are under construction. " +
		"Top localities: Wakad, Hinjewadi. " +
		"Price range among these listings: ₹45.0 L to ₹1.5 Cr."
	assert.Equal(t, want, got)
}

func TestSummaryBuilder_OptionalSentencesOmitted(t *testing.T) {
	records := []model.ProjectRecord{testRecords()[3]}

	got := NewSummaryBuilder().Build(records, &model.StructuredFilter{BHK: stringPtr("3BHK")})
	want := "Found 1 3BHK listings in  matching your filters. " +
		"0 are marked Ready-to-move and 1 are under construction."
	assert.Equal(t, want, got)
}

func TestSummaryBuilder_PriceRangeUsesMinPriceOnly(t *testing.T) {
	records := []model.ProjectRecord{
		{ID: "a", City: "Pune", Locality: "Baner", MaxPrice: float64Ptr(90000000), PossessionStatus: "Ready-to-move"},
		{ID: "b", City: "Pune", Locality: "Baner", MinPrice: float64Ptr(6000000), PossessionStatus: "Ready-to-move"},
	}

	got := NewSummaryBuilder().Build(records, nil)
	assert.Contains(t, got, "Price range among these listings: ₹60.0 L to ₹60.0 L.")
	assert.Contains(t, got, "2 are marked Ready-to-move and 0 are under construction.")
}

func TestTopLocalities(t *testing.T) {
	records := []model.ProjectRecord{
		{Locality: "Baner"}, {Locality: "Wakad"}, {Locality: "Wakad"},
		{Locality: ""}, {Locality: "Baner"}, {Locality: "Aundh"}, {Locality: "Kharadi"},
	}

	assert.Equal(t, []string{"Baner", "Wakad", "Aundh"}, topLocalities(records, 3))
	assert.Equal(t, []string{"Baner"}, topLocalities(records, 1))
	assert.Empty(t, topLocalities([]model.ProjectRecord{{Locality: ""}}, 3))
}
