package service

import (
	"chatsearch/internal/model"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func stringPtr(v string) *string {
	return &v
}

func testRecords() []model.ProjectRecord {
	return []model.ProjectRecord{
		{
			ID: "p1", Name: "Godrej Woods", City: "Pune", Locality: "Wakad",
			BHKTypes: "2BHK,3BHK", MinPrice: float64Ptr(8500000), MaxPrice: float64Ptr(12000000),
			PossessionDate: "2025-12-31", PossessionStatus: "Under construction",
			Amenities: "Gym, Pool, Clubhouse, Park",
		},
		{
			ID: "p2", Name: "Kolte Patil Life Republic", City: "Pune", Locality: "Hinjewadi",
			BHKTypes: "1BHK,2BHK", MinPrice: float64Ptr(4500000), MaxPrice: float64Ptr(7000000),
			PossessionDate: "2023-03-01", PossessionStatus: "Ready-to-move",
		},
		{
			ID: "p3", Name: "Lodha Palava 3BHK Signature", City: "Mumbai", Locality: "Dombivli",
			BHKTypes: "Studio", MinPrice: nil, MaxPrice: float64Ptr(25000000),
			PossessionStatus: "Ready-to-move", Amenities: "Lift;Security",
		},
		{
			ID: "p4", Name: "Sobha Dream Acres", City: "Bengaluru", Locality: "",
			BHKTypes: "1BHK,2BHK,3BHK", PossessionStatus: "Under construction",
		},
		{
			ID: "p5", Name: "Pune Greens", City: "Pune", Locality: "Wakad",
			BHKTypes: "3BHK", MinPrice: float64Ptr(15000000), MaxPrice: nil,
			PossessionStatus: "Under construction",
		},
	}
}

type mapFloorPlans map[string]string

func (m mapFloorPlans) FloorPlan(id string) (string, bool) {
	v, ok := m[id]
	return v, ok
}
