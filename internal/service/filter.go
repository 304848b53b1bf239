package service

import (
	"strings"

	"chatsearch/internal/model"
	"chatsearch/internal/utils"
)

// recordPredicate reports whether a record satisfies one filter field
type recordPredicate func(r *model.ProjectRecord) bool

// FilterEngine applies structured filters to project records
type FilterEngine struct{}

// NewFilterEngine creates a new filter engine
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// Apply returns the records matching every set field of the filter, in
// their original order. The input slice is never modified.
func (e *FilterEngine) Apply(records []model.ProjectRecord, filter *model.StructuredFilter) []model.ProjectRecord {
	predicates := e.predicates(filter)

	out := make([]model.ProjectRecord, 0, len(records))
	for i := range records {
		if matchesAll(&records[i], predicates) {
			out = append(out, records[i])
		}
	}
	return out
}

func (e *FilterEngine) predicates(f *model.StructuredFilter) []recordPredicate {
	if f == nil {
		return nil
	}

	var preds []recordPredicate
	if f.City != nil {
		city := *f.City
		preds = append(preds, func(r *model.ProjectRecord) bool {
			return utils.ContainsFold(r.City, city)
		})
	}
	if f.BHK != nil {
		bhk := *f.BHK
		preds = append(preds, func(r *model.ProjectRecord) bool {
			return utils.ContainsFold(r.BHKTypes, bhk) || utils.ContainsFold(r.Name, bhk)
		})
	}
	if f.BudgetMax != nil {
		budget := *f.BudgetMax
		preds = append(preds, func(r *model.ProjectRecord) bool {
			return (r.MinPrice != nil && *r.MinPrice <= budget) ||
				(r.MaxPrice != nil && *r.MaxPrice <= budget)
		})
	}
	if f.Possession != model.PossessionUnset {
		status := strings.ToLower(string(f.Possession))
		preds = append(preds, func(r *model.ProjectRecord) bool {
			return utils.ContainsFold(r.PossessionDate, status) || utils.ContainsFold(r.PossessionStatus, status)
		})
	}
	if f.Locality != nil {
		locality := *f.Locality
		preds = append(preds, func(r *model.ProjectRecord) bool {
			return utils.ContainsFold(r.Locality, locality)
		})
	}
	if f.ProjectName != nil {
		name := *f.ProjectName
		preds = append(preds, func(r *model.ProjectRecord) bool {
			return utils.ContainsFold(r.Name, name)
		})
	}
	return preds
}

func matchesAll(r *model.ProjectRecord, preds []recordPredicate) bool {
	for _, p := range preds {
		if !p(r) {
			return false
		}
	}
	return true
}
