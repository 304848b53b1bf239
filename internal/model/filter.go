package model

// PossessionStatus is the occupancy state a query asks for
type PossessionStatus string

const (
	PossessionUnset             PossessionStatus = ""
	PossessionReady             PossessionStatus = "Ready"
	PossessionUnderConstruction PossessionStatus = "Under Construction"
)

// StructuredFilter represents the conditions extracted from a free-text query.
// A nil (or unset) field imposes no constraint.
type StructuredFilter struct {
	City        *string          `json:"city,omitempty"`
	BHK         *string          `json:"bhk,omitempty"`        // normalized, e.g. "3BHK"
	BudgetMax   *float64         `json:"budget_max,omitempty"` // rupees
	Possession  PossessionStatus `json:"possession,omitempty"`
	Locality    *string          `json:"locality,omitempty"`
	ProjectName *string          `json:"project_name,omitempty"`
}

// IsEmpty reports whether no field is set
func (f *StructuredFilter) IsEmpty() bool {
	return f == nil || (f.City == nil && f.BHK == nil && f.BudgetMax == nil &&
		f.Possession == PossessionUnset && f.Locality == nil && f.ProjectName == nil)
}
