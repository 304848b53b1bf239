package service

import (
	"chatsearch/internal/model"
	"chatsearch/internal/utils"
)

const (
	defaultCardTitle = "Project"
	maxCardAmenities = 3
)

// FloorPlanIndex resolves the floor-plan image associated with a project
type FloorPlanIndex interface {
	FloorPlan(projectID string) (string, bool)
}

// CardFormatter converts matching records into result cards
type CardFormatter struct {
	floorPlans FloorPlanIndex
}

// NewCardFormatter creates a new card formatter. floorPlans may be nil.
func NewCardFormatter(floorPlans FloorPlanIndex) *CardFormatter {
	return &CardFormatter{floorPlans: floorPlans}
}

// Format returns at most maxResults cards in record order
func (f *CardFormatter) Format(records []model.ProjectRecord, maxResults int) []model.ResultCard {
	n := len(records)
	if maxResults < n {
		n = maxResults
	}
	if n < 0 {
		n = 0
	}

	cards := make([]model.ResultCard, 0, n)
	for i := 0; i < n; i++ {
		cards = append(cards, f.card(&records[i]))
	}
	return cards
}

func (f *CardFormatter) card(r *model.ProjectRecord) model.ResultCard {
	title := r.Name
	if title == "" {
		title = defaultCardTitle
	}

	price := utils.FormatPricePtr(r.MinPrice)
	if r.MinPrice == nil {
		price = utils.FormatPricePtr(r.MaxPrice)
	}

	return model.ResultCard{
		Title:          title,
		City:           r.City,
		Locality:       r.Locality,
		BHK:            r.BHKTypes,
		Price:          price,
		ProjectName:    title,
		Possession:     r.PossessionDate,
		Amenities:      utils.TopAmenities(r.Amenities, maxCardAmenities),
		FloorPlanImage: f.floorPlan(r.ID),
		CTA:            "/project/" + utils.Slugify(title),
	}
}

func (f *CardFormatter) floorPlan(projectID string) *string {
	if f.floorPlans == nil || projectID == "" {
		return nil
	}
	img, ok := f.floorPlans.FloorPlan(projectID)
	if !ok {
		return nil
	}
	return &img
}
