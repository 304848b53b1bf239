package dataset

import (
	"errors"
	"fmt"
	"regexp"
	"sort"
	"strings"
	"time"

	"chatsearch/internal/model"
	"chatsearch/internal/utils"
)

var (
	// ErrMissingTable is returned when the projects table was not provided
	ErrMissingTable = errors.New("missing table")
	// ErrMissingColumn is returned when a provided table lacks a required column
	ErrMissingColumn = errors.New("missing column")
	// ErrMissingValue is returned when a row lacks its identifier
	ErrMissingValue = errors.New("missing value")
)

const (
	StatusReady             = "Ready-to-move"
	StatusUnderConstruction = "Under construction"
)

var (
	knownCities   = regexp.MustCompile(`(?i)(pune|mumbai|bengaluru|bangalore|delhi|hyderabad|noida|gurgaon|ahmedabad|chennai)`)
	bhkTokenRegex = regexp.MustCompile(`(?i)(\d+)\s*bhk|studio`)

	possessionLayouts = []string{
		"2006-01-02",
		"2006-01-02 15:04:05",
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"Jan 2006",
		"January 2006",
	}
)

// Rules are the defaulting rules applied while normalizing
type Rules struct {
	DefaultCity     string
	DefaultBHKTypes string
	DefaultMinPrice float64
	DefaultMaxPrice float64
}

// DefaultRules returns the standard defaults
func DefaultRules() Rules {
	return Rules{
		DefaultCity:     "Mumbai",
		DefaultBHKTypes: "1BHK,2BHK,3BHK",
		DefaultMinPrice: 500000,
		DefaultMaxPrice: 1500000,
	}
}

type address struct {
	city     string
	locality string
}

type priceRange struct {
	min, max float64
}

// Build joins the source tables into a Dataset. Projects are required; the
// other tables are optional but must carry their join keys when present.
func Build(t Tables, rules Rules) (*Dataset, error) {
	if t.Projects == nil {
		return nil, fmt.Errorf("projects: %w", ErrMissingTable)
	}
	idCol, ok := t.Projects.FindColumn("id", "ProjectId", "ProjectGUID")
	if !ok {
		return nil, fmt.Errorf("projects.id: %w", ErrMissingColumn)
	}

	addresses, err := indexAddresses(t.Addresses)
	if err != nil {
		return nil, err
	}
	configProject, bhkByProject, err := indexConfigurations(t.Configurations)
	if err != nil {
		return nil, err
	}
	prices, floorPlans, err := indexVariants(t.Variants, configProject)
	if err != nil {
		return nil, err
	}

	p := t.Projects
	nameCol, _ := p.FindColumn("projectName", "ProjectName", "name", "Name")
	slugCol, _ := p.FindColumn("slug")
	possCol, _ := p.FindColumn("possessionDate", "possession")
	statusCol, _ := p.FindColumn("status", "possessionStatus")
	var amenityCol string
	if cols := p.ColumnsContaining("amenit", "feature", "facility"); len(cols) > 0 {
		amenityCol = cols[0]
	}

	records := make([]model.ProjectRecord, 0, p.Len())
	for i := 0; i < p.Len(); i++ {
		id := p.Value(i, idCol)
		if id == "" {
			return nil, fmt.Errorf("projects row %d: %s: %w", i+1, idCol, ErrMissingValue)
		}
		slug := p.Value(i, slugCol)
		addr := addresses[id]

		rec := model.ProjectRecord{
			ID:               id,
			Name:             p.Value(i, nameCol),
			City:             resolveCity(slug, addr.city, rules.DefaultCity),
			Locality:         addr.locality,
			BHKTypes:         bhkByProject[id],
			PossessionDate:   normalizeDate(p.Value(i, possCol)),
			PossessionStatus: normalizeStatus(p.Value(i, statusCol)),
			Amenities:        p.Value(i, amenityCol),
		}
		if rec.Locality == "" {
			rec.Locality = localityFromSlug(slug)
		}
		if rec.BHKTypes == "" {
			rec.BHKTypes = rules.DefaultBHKTypes
		}

		if pr, ok := prices[id]; ok {
			rec.MinPrice, rec.MaxPrice = float64Ptr(pr.min), float64Ptr(pr.max)
		} else if t.Variants != nil {
			rec.MinPrice, rec.MaxPrice = float64Ptr(rules.DefaultMinPrice), float64Ptr(rules.DefaultMaxPrice)
		}

		records = append(records, rec)
	}

	return newDataset(records, floorPlans), nil
}

func indexAddresses(t *Table) (map[string]address, error) {
	out := make(map[string]address)
	if t == nil {
		return out, nil
	}
	keyCol, ok := t.FindColumn("projectId", "ProjectId", "ProjectGUID")
	if !ok {
		return nil, fmt.Errorf("%s.projectId: %w", t.Name, ErrMissingColumn)
	}
	cityCol, _ := t.FindColumn("City", "city")
	fullCol, _ := t.FindColumn("fullAddress", "address")
	locCol, _ := t.FindColumn("ProjectLocality", "Locality", "locality")

	for i := 0; i < t.Len(); i++ {
		key := t.Value(i, keyCol)
		if _, seen := out[key]; seen || key == "" {
			continue
		}
		city := knownCities.FindString(t.Value(i, cityCol))
		if city == "" {
			city = knownCities.FindString(t.Value(i, fullCol))
		}
		out[key] = address{city: titleCase(city), locality: t.Value(i, locCol)}
	}
	return out, nil
}

// indexConfigurations maps configuration id -> project id and collects the
// bedroom tokens offered per project
func indexConfigurations(t *Table) (map[string]string, map[string]string, error) {
	configProject := make(map[string]string)
	bhk := make(map[string]string)
	if t == nil {
		return configProject, bhk, nil
	}
	idCol, ok := t.FindColumn("id", "configurationId")
	if !ok {
		return nil, nil, fmt.Errorf("%s.id: %w", t.Name, ErrMissingColumn)
	}
	projCol, ok := t.FindColumn("projectId", "ProjectId", "ProjectGUID")
	if !ok {
		return nil, nil, fmt.Errorf("%s.projectId: %w", t.Name, ErrMissingColumn)
	}
	nameCol, _ := t.FindColumn("Name", "Configuration", "type", "name")

	tokens := make(map[string]map[string]bool)
	for i := 0; i < t.Len(); i++ {
		projectID := t.Value(i, projCol)
		configProject[t.Value(i, idCol)] = projectID
		if tok := bhkToken(t.Value(i, nameCol)); tok != "" {
			if tokens[projectID] == nil {
				tokens[projectID] = make(map[string]bool)
			}
			tokens[projectID][tok] = true
		}
	}
	for projectID, set := range tokens {
		list := make([]string, 0, len(set))
		for tok := range set {
			list = append(list, tok)
		}
		sort.Strings(list)
		bhk[projectID] = strings.Join(list, ",")
	}
	return configProject, bhk, nil
}

// indexVariants aggregates variant prices and the first floor plan per project
func indexVariants(t *Table, configProject map[string]string) (map[string]priceRange, map[string]string, error) {
	prices := make(map[string]priceRange)
	plans := make(map[string]string)
	if t == nil {
		return prices, plans, nil
	}
	cfgCol, ok := t.FindColumn("configurationId", "ConfigurationId")
	if !ok {
		return nil, nil, fmt.Errorf("%s.configurationId: %w", t.Name, ErrMissingColumn)
	}
	priceCols := t.ColumnsContaining("price", "amount", "rate")
	planCol, _ := t.FindColumn("floorPlanImage")

	for i := 0; i < t.Len(); i++ {
		projectID, ok := configProject[t.Value(i, cfgCol)]
		if !ok || projectID == "" {
			continue
		}
		if img := t.Value(i, planCol); img != "" {
			if _, seen := plans[projectID]; !seen {
				plans[projectID] = img
			}
		}
		for _, col := range priceCols {
			v, ok := utils.ParsePrice(t.Value(i, col))
			if !ok {
				continue
			}
			pr, seen := prices[projectID]
			if !seen {
				pr = priceRange{min: v, max: v}
			}
			if v < pr.min {
				pr.min = v
			}
			if v > pr.max {
				pr.max = v
			}
			prices[projectID] = pr
			break
		}
	}
	return prices, plans, nil
}

func resolveCity(slug, addressCity, fallback string) string {
	if c := knownCities.FindString(slug); c != "" {
		return titleCase(c)
	}
	if addressCity != "" {
		return addressCity
	}
	return fallback
}

// localityFromSlug takes the fourth hyphen token from the end, e.g.
// "godrej-woods-sector-43-noida-1bhk" -> "Sector"
func localityFromSlug(slug string) string {
	parts := strings.Split(slug, "-")
	if slug == "" || len(parts) < 4 {
		return ""
	}
	return titleCase(parts[len(parts)-4])
}

func normalizeDate(raw string) string {
	for _, layout := range possessionLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts.Format("2006-01-02")
		}
	}
	return raw
}

func normalizeStatus(raw string) string {
	if strings.EqualFold(strings.TrimSpace(raw), "READY_TO_MOVE") {
		return StatusReady
	}
	return StatusUnderConstruction
}

func bhkToken(name string) string {
	m := bhkTokenRegex.FindStringSubmatch(name)
	if m == nil {
		return ""
	}
	if m[1] == "" {
		return "Studio"
	}
	return m[1] + "BHK"
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

func float64Ptr(v float64) *float64 {
	return &v
}
