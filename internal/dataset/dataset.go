package dataset

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"sort"

	"chatsearch/internal/model"
)

// Dataset is the immutable, normalized collection of projects. It is safe
// for concurrent reads.
type Dataset struct {
	records    []model.ProjectRecord
	floorPlans map[string]string
	version    string
}

// New creates a dataset from already-normalized records
func New(records []model.ProjectRecord, floorPlans map[string]string) *Dataset {
	recs := make([]model.ProjectRecord, len(records))
	copy(recs, records)

	plans := make(map[string]string, len(floorPlans))
	for k, v := range floorPlans {
		plans[k] = v
	}
	return newDataset(recs, plans)
}

func newDataset(records []model.ProjectRecord, floorPlans map[string]string) *Dataset {
	if floorPlans == nil {
		floorPlans = make(map[string]string)
	}
	return &Dataset{
		records:    records,
		floorPlans: floorPlans,
		version:    fingerprint(records, floorPlans),
	}
}

// fingerprint digests every record and floor plan; json sorts map keys so
// equal content always yields the same value
func fingerprint(records []model.ProjectRecord, floorPlans map[string]string) string {
	h := sha1.New()
	enc := json.NewEncoder(h)
	_ = enc.Encode(records)
	_ = enc.Encode(floorPlans)
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// Version identifies the dataset content. Two datasets share a version only
// when their records and floor plans are identical.
func (d *Dataset) Version() string {
	if d == nil {
		return ""
	}
	return d.version
}

// Records returns the records in source order. Callers must not modify them.
func (d *Dataset) Records() []model.ProjectRecord {
	if d == nil {
		return nil
	}
	return d.records[:len(d.records):len(d.records)]
}

// Len returns the number of records
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.records)
}

// FloorPlan returns the floor-plan image associated with a project
func (d *Dataset) FloorPlan(projectID string) (string, bool) {
	if d == nil {
		return "", false
	}
	img, ok := d.floorPlans[projectID]
	return img, ok
}

// CityCounts returns project counts per city, largest first
func (d *Dataset) CityCounts() []model.CityCount {
	counts := make(map[string]int)
	for _, r := range d.Records() {
		counts[r.City]++
	}
	out := make([]model.CityCount, 0, len(counts))
	for city, n := range counts {
		out = append(out, model.CityCount{City: city, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].City < out[j].City
	})
	return out
}
