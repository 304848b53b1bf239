package model

// ProjectRecord is one normalized housing project.
// City and PossessionStatus are always populated; prices may be nil.
type ProjectRecord struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	City             string   `json:"city"`
	Locality         string   `json:"locality"`
	BHKTypes         string   `json:"bhk_types"` // comma-joined, e.g. "2BHK,3BHK"
	MinPrice         *float64 `json:"min_price,omitempty"`
	MaxPrice         *float64 `json:"max_price,omitempty"`
	PossessionDate   string   `json:"possession_date,omitempty"`
	PossessionStatus string   `json:"possession_status"`
	Amenities        string   `json:"amenities,omitempty"`
}

// ResultCard is the display projection of a matching project
type ResultCard struct {
	Title          string  `json:"title"`
	City           string  `json:"city"`
	Locality       string  `json:"locality"`
	BHK            string  `json:"bhk"`
	Price          string  `json:"price"`
	ProjectName    string  `json:"project_name"`
	Possession     string  `json:"possession"`
	Amenities      string  `json:"amenities"`
	FloorPlanImage *string `json:"floorPlanImage"`
	CTA            string  `json:"cta"`
}
