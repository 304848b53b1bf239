package utils

import (
	"strings"
)

const maxSlugLength = 80

// amenitySeparators are tried in order; the first one present wins
var amenitySeparators = []string{",", ";", "|"}

// TopAmenities returns at most limit amenity names from a delimited list, joined by ", "
func TopAmenities(amenities string, limit int) string {
	var items []string
	for _, sep := range amenitySeparators {
		if !strings.Contains(amenities, sep) {
			continue
		}
		for _, part := range strings.Split(amenities, sep) {
			if p := strings.TrimSpace(part); p != "" {
				items = append(items, p)
			}
		}
		break
	}
	if len(items) == 0 && amenities != "" {
		items = []string{amenities}
	}
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, ", ")
}

// Slugify lowercases s, maps everything outside [a-z0-9-] to '-', collapses
// runs of '-', trims them from both ends and truncates to 80 characters.
func Slugify(s string) string {
	var b strings.Builder
	lastHyphen := false
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}
	slug := strings.Trim(b.String(), "-")
	if len(slug) > maxSlugLength {
		slug = slug[:maxSlugLength]
	}
	return slug
}

// ContainsFold reports whether substr is within s, ignoring case
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
