package service

import (
	"context"
	"errors"
	"time"

	"chatsearch/internal/cache"
	"chatsearch/internal/dataset"
	"chatsearch/internal/metrics"
	"chatsearch/internal/model"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// SearchService runs the parse -> filter -> summarize -> format pipeline over
// a read-only dataset. It holds no per-request state.
type SearchService struct {
	dataset *dataset.Dataset
	parser  *QueryParser
	filter  *FilterEngine
	summary *SummaryBuilder
	cards   *CardFormatter
	cache   cache.ResponseCache
	log     zerolog.Logger
}

// NewSearchService creates a new search service. responses may be nil to
// disable caching.
func NewSearchService(ds *dataset.Dataset, parser *QueryParser, responses cache.ResponseCache, log zerolog.Logger) *SearchService {
	metrics.DatasetRecords.Set(float64(ds.Len()))
	return &SearchService{
		dataset: ds,
		parser:  parser,
		filter:  NewFilterEngine(),
		summary: NewSummaryBuilder(),
		cards:   NewCardFormatter(ds),
		cache:   responses,
		log:     log,
	}
}

// Search answers a free-text query with at most maxResults cards
func (s *SearchService) Search(ctx context.Context, query string, maxResults int) *model.SearchResponse {
	startTime := time.Now()
	searchID := uuid.NewString()

	if cached := s.fromCache(ctx, query, maxResults); cached != nil {
		cached.SearchID = searchID
		cached.Cached = true
		cached.Took = time.Since(startTime).Milliseconds()
		metrics.SearchesTotal.WithLabelValues("hit").Inc()
		metrics.SearchDuration.Observe(time.Since(startTime).Seconds())
		return cached
	}

	parsed := s.parser.Parse(query)
	recordFilterFields(parsed)
	s.log.Debug().Str("search_id", searchID).Str("query", query).Interface("parsed", parsed).Msg("query parsed")

	matched := s.filter.Apply(s.dataset.Records(), parsed)

	resp := &model.SearchResponse{
		SearchID: searchID,
		Parsed:   parsed,
		Summary:  s.summary.Build(matched, parsed),
		Cards:    s.cards.Format(matched, maxResults),
		Total:    len(matched),
	}
	resp.Took = time.Since(startTime).Milliseconds()

	metrics.SearchesTotal.WithLabelValues("miss").Inc()
	metrics.SearchResults.Observe(float64(len(matched)))
	metrics.SearchDuration.Observe(time.Since(startTime).Seconds())

	s.log.Info().
		Str("search_id", searchID).
		Int("matched", len(matched)).
		Int("cards", len(resp.Cards)).
		Int64("took_ms", resp.Took).
		Msg("search completed")

	s.toCache(ctx, query, maxResults, resp)
	return resp
}

// Parse exposes the query parser on its own
func (s *SearchService) Parse(query string) *model.StructuredFilter {
	return s.parser.Parse(query)
}

// RecordCount returns the number of loaded projects
func (s *SearchService) RecordCount() int {
	return s.dataset.Len()
}

// Stats reports the dataset size and its per-city breakdown
func (s *SearchService) Stats() *model.StatsResponse {
	return &model.StatsResponse{
		Rows:   s.dataset.Len(),
		Cities: s.dataset.CityCounts(),
	}
}

func (s *SearchService) fromCache(ctx context.Context, query string, maxResults int) *model.SearchResponse {
	if s.cache == nil {
		return nil
	}
	resp, err := s.cache.Get(ctx, s.dataset.Version(), query, maxResults)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.Warn().Err(err).Msg("response cache read failed")
		}
		return nil
	}
	return resp
}

func (s *SearchService) toCache(ctx context.Context, query string, maxResults int, resp *model.SearchResponse) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, s.dataset.Version(), query, maxResults, resp); err != nil {
		s.log.Warn().Err(err).Msg("response cache write failed")
	}
}

func recordFilterFields(f *model.StructuredFilter) {
	fields := map[string]bool{
		"city":         f.City != nil,
		"bhk":          f.BHK != nil,
		"budget_max":   f.BudgetMax != nil,
		"possession":   f.Possession != model.PossessionUnset,
		"locality":     f.Locality != nil,
		"project_name": f.ProjectName != nil,
	}
	for name, set := range fields {
		if set {
			metrics.FilterFieldsUsed.WithLabelValues(name).Inc()
		}
	}
}
