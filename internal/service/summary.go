package service

import (
	"fmt"
	"math"
	"strings"

	"chatsearch/internal/model"
	"chatsearch/internal/utils"
)

const (
	maxSummarySentences = 4
	maxTopLocalities    = 3
)

// SummaryBuilder writes a short description grounded in a result set
type SummaryBuilder struct{}

// NewSummaryBuilder creates a new summary builder
func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{}
}

// Build produces 1-4 sentences describing only what is in records
func (b *SummaryBuilder) Build(records []model.ProjectRecord, filter *model.StructuredFilter) string {
	if filter == nil {
		filter = &model.StructuredFilter{}
	}

	total := len(records)
	if total == 0 {
		return fmt.Sprintf("No %s options found in %s with the given filters.",
			valueOr(filter.BHK, "matching properties"),
			valueOr(filter.City, "the requested city"))
	}

	ready := 0
	for i := range records {
		if utils.ContainsFold(records[i].PossessionStatus, "ready") {
			ready++
		}
	}

	parts := []string{
		fmt.Sprintf("Found %d %s listings in %s matching your filters.",
			total, valueOr(filter.BHK, "property"), valueOr(filter.City, "")),
		fmt.Sprintf("%d are marked Ready-to-move and %d are under construction.", ready, total-ready),
	}

	if locs := topLocalities(records, maxTopLocalities); len(locs) > 0 {
		parts = append(parts, "Top localities: "+strings.Join(locs, ", ")+".")
	}

	if minP, maxP, ok := minPriceRange(records); ok {
		parts = append(parts, fmt.Sprintf("Price range among these listings: %s to %s.",
			utils.FormatPrice(minP), utils.FormatPrice(maxP)))
	}

	if len(parts) > maxSummarySentences {
		parts = parts[:maxSummarySentences]
	}
	return strings.Join(parts, " ")
}

// topLocalities returns the most frequent non-empty localities, most frequent
// first; ties keep first-seen order.
func topLocalities(records []model.ProjectRecord, limit int) []string {
	counts := make(map[string]int)
	var order []string
	for i := range records {
		loc := records[i].Locality
		if loc == "" {
			continue
		}
		if counts[loc] == 0 {
			order = append(order, loc)
		}
		counts[loc]++
	}

	// stable selection keeps first-seen order among equal counts
	top := make([]string, 0, limit)
	used := make(map[string]bool)
	for len(top) < limit && len(top) < len(order) {
		best := ""
		for _, loc := range order {
			if used[loc] {
				continue
			}
			if best == "" || counts[loc] > counts[best] {
				best = loc
			}
		}
		used[best] = true
		top = append(top, best)
	}
	return top
}

// minPriceRange is the min and max over all non-null MinPrice values
func minPriceRange(records []model.ProjectRecord) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)
	found := false
	for i := range records {
		p := records[i].MinPrice
		if p == nil || math.IsNaN(*p) {
			continue
		}
		found = true
		lo = math.Min(lo, *p)
		hi = math.Max(hi, *p)
	}
	return lo, hi, found
}

func valueOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
