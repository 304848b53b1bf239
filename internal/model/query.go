package model

// SearchRequest represents a free-text search request
type SearchRequest struct {
	Query      string `json:"q"`
	MaxResults int    `json:"max_results,omitempty"`
}

// SearchResponse represents the answer to one query
type SearchResponse struct {
	SearchID string            `json:"search_id"`
	Parsed   *StructuredFilter `json:"parsed"`
	Summary  string            `json:"summary"`
	Cards    []ResultCard      `json:"cards"`
	Total    int               `json:"total"`
	Cached   bool              `json:"cached"`
	Took     int64             `json:"took_ms"` // Response time in milliseconds
}

// HealthResponse reports process status and dataset size
type HealthResponse struct {
	Status string `json:"status"`
	Rows   int    `json:"rows"`
}

// ParseResponse returns only the structured filter for a query
type ParseResponse struct {
	Query  string            `json:"q"`
	Parsed *StructuredFilter `json:"parsed"`
}

// CityCount is the number of projects in one city
type CityCount struct {
	City  string `json:"city"`
	Count int    `json:"count"`
}

// StatsResponse describes the loaded dataset
type StatsResponse struct {
	Rows   int         `json:"rows"`
	Cities []CityCount `json:"cities"`
}
