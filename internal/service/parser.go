package service

import (
	"regexp"
	"strconv"
	"strings"

	"chatsearch/internal/model"
)

var (
	budgetPattern    = regexp.MustCompile(`(?i)(?:under|below|upto|up to|less than)\s*₹?\s*([\d,.]+)\s*(Cr|cr|L|l|Lakhs|lakhs|K)?`)
	cityPattern      = regexp.MustCompile(`(?i)\b(?:in|at)\s+([A-Za-z][A-Za-z0-9\s\-&]+)`)
	knownCityPattern = regexp.MustCompile(`(?i)\b(Pune|Mumbai|Bengaluru|Bangalore|Delhi|Hyderabad|Noida|Gurgaon|Ahmedabad|Chennai)\b`)
	bhkPattern       = regexp.MustCompile(`(?i)(\d+)\s*-?\s*BHK`)
	readyPattern     = regexp.MustCompile(`(?i)ready to move|ready-to-move|ready`)
	ucPattern        = regexp.MustCompile(`(?i)under construction|under-construction|uc`)
	localityPattern  = regexp.MustCompile(`(?i)near\s+([A-Za-z0-9\s\-&]+)`)
	projectPattern   = regexp.MustCompile(`(?i)project\s+([A-Za-z0-9\s\-&]+)`)
	quotedPattern    = regexp.MustCompile(`"([^"]+)"`)
)

// extractionRule reads one filter field out of the working query text
type extractionRule func(text string, out *model.StructuredFilter)

// QueryParser turns free-text queries into structured filters with an
// ordered list of independent rules
type QueryParser struct {
	rules []extractionRule
}

// NewQueryParser creates a new query parser
func NewQueryParser() *QueryParser {
	return &QueryParser{
		rules: []extractionRule{
			extractCity,
			extractBHK,
			extractPossession,
			extractLocality,
			extractProjectName,
		},
	}
}

// Parse extracts filters from a query. It never fails: unrecognized text
// simply leaves fields unset.
func (p *QueryParser) Parse(query string) *model.StructuredFilter {
	out := &model.StructuredFilter{}
	text := strings.TrimSpace(query)
	if text == "" {
		return out
	}

	// The budget phrase is cut from the text so its numeral is not re-read
	// by later rules.
	if budget, matched, ok := ExtractBudget(text); ok {
		out.BudgetMax = &budget
		text = strings.TrimSpace(strings.Replace(text, matched, "", -1))
	}

	for _, rule := range p.rules {
		rule(text, out)
	}
	return out
}

// ExtractBudget finds an "under/below/upto ..." phrase and returns the amount
// in rupees together with the exact matched substring.
func ExtractBudget(text string) (float64, string, bool) {
	m := budgetPattern.FindStringSubmatch(text)
	if m == nil {
		return 0, "", false
	}
	num, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
	if err != nil {
		return 0, "", false
	}

	unit := strings.ToLower(m[2])
	switch {
	case strings.Contains(unit, "cr"):
		num *= 1e7
	case strings.HasPrefix(unit, "l") || strings.Contains(unit, "lak"):
		num *= 1e5
	case unit == "k":
		num *= 1e3
	}
	return num, m[0], true
}

// ExtractCity prefers an "in/at <place>" phrase and falls back to known city names
func ExtractCity(text string) (string, bool) {
	if m := cityPattern.FindStringSubmatch(text); m != nil {
		candidate := strings.Split(strings.TrimSpace(m[1]), ",")[0]
		if candidate != "" {
			return candidate, true
		}
	}
	if m := knownCityPattern.FindStringSubmatch(text); m != nil {
		return m[1], true
	}
	return "", false
}

// ExtractBHK returns the normalized bedroom token, e.g. "3 bhk" -> "3BHK"
func ExtractBHK(text string) (string, bool) {
	m := bhkPattern.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return m[1] + "BHK", true
}

// ExtractPossession checks ready first and under-construction second; when
// both match the later check wins.
func ExtractPossession(text string) model.PossessionStatus {
	status := model.PossessionUnset
	if readyPattern.MatchString(text) {
		status = model.PossessionReady
	}
	if ucPattern.MatchString(text) {
		status = model.PossessionUnderConstruction
	}
	return status
}

// ExtractLocality reads a "near <place>" phrase
func ExtractLocality(text string) (string, bool) {
	return firstGroup(localityPattern, text)
}

// ExtractProjectName reads "project <name>"; a double-quoted name overrides it
func ExtractProjectName(text string) (string, bool) {
	name, ok := firstGroup(projectPattern, text)
	if quoted, qok := firstGroup(quotedPattern, text); qok {
		name, ok = quoted, true
	}
	return name, ok
}

func firstGroup(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	v := strings.TrimSpace(m[1])
	return v, v != ""
}

func extractCity(text string, out *model.StructuredFilter) {
	if v, ok := ExtractCity(text); ok {
		out.City = &v
	}
}

func extractBHK(text string, out *model.StructuredFilter) {
	if v, ok := ExtractBHK(text); ok {
		out.BHK = &v
	}
}

func extractPossession(text string, out *model.StructuredFilter) {
	out.Possession = ExtractPossession(text)
}

func extractLocality(text string, out *model.StructuredFilter) {
	if v, ok := ExtractLocality(text); ok {
		out.Locality = &v
	}
}

func extractProjectName(text string, out *model.StructuredFilter) {
	if v, ok := ExtractProjectName(text); ok {
		out.ProjectName = &v
	}
}
