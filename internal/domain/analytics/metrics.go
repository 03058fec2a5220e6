package analytics

import (
	"math"
	"sort"

	"restaurant-booking/internal/domain/reservation"
)

// Row is one confirmed reservation that matched the filter.
type Row struct {
	Date       reservation.Date
	Time       reservation.TimeOfDay
	GuestCount int
	TableID    int64
	Section    string
}

type DailyCount struct {
	Date  reservation.Date
	Count int
}

type BucketCount struct {
	Label string
	Count int
}

type SectionCount struct {
	Section string
	Count   int
}

// MetricsBundle is the full analytics answer. Pointer fields are nil when no
// reservation matched.
type MetricsBundle struct {
	TotalReservations int
	AvgPartySize      float64
	BusiestDate       *reservation.Date
	PeakTime          *reservation.TimeOfDay
	PopularSection    *string
	TableUtilization  float64
	Daily             []DailyCount
	PartySizes        []BucketCount
	Sections          []SectionCount
}

var bucketLabels = []string{"1-2", "3-4", "5-6", "7+"}

func BucketLabels() []string {
	return append([]string(nil), bucketLabels...)
}

func bucketIndex(guests int) int {
	switch {
	case guests <= 2:
		return 0
	case guests <= 4:
		return 1
	case guests <= 6:
		return 2
	default:
		return 3
	}
}

// Compute aggregates rows already narrowed by a Filter. totalTables is the
// size of the floor plan, used for the utilization percentage.
func Compute(rows []Row, totalTables int) *MetricsBundle {
	b := &MetricsBundle{
		Daily:      []DailyCount{},
		PartySizes: make([]BucketCount, len(bucketLabels)),
		Sections:   []SectionCount{},
	}
	for i, label := range bucketLabels {
		b.PartySizes[i] = BucketCount{Label: label}
	}
	if len(rows) == 0 {
		return b
	}

	var (
		guests   int
		byDate   = map[reservation.Date]int{}
		byTime   = map[reservation.TimeOfDay]int{}
		bySect   = map[string]int{}
		reserved = map[int64]struct{}{}
	)
	for _, r := range rows {
		guests += r.GuestCount
		byDate[r.Date]++
		byTime[r.Time]++
		bySect[r.Section]++
		reserved[r.TableID] = struct{}{}
		b.PartySizes[bucketIndex(r.GuestCount)].Count++
	}

	b.TotalReservations = len(rows)
	b.AvgPartySize = round1(float64(guests) / float64(len(rows)))
	if totalTables > 0 {
		b.TableUtilization = round1(float64(len(reserved)) / float64(totalTables) * 100)
	}

	for d, n := range byDate {
		b.Daily = append(b.Daily, DailyCount{Date: d, Count: n})
	}
	sort.Slice(b.Daily, func(i, j int) bool { return b.Daily[i].Date.Before(b.Daily[j].Date) })
	busiest := b.Daily[0]
	for _, dc := range b.Daily[1:] {
		if dc.Count > busiest.Count {
			busiest = dc
		}
	}
	b.BusiestDate = &busiest.Date

	var peak reservation.TimeOfDay
	peakCount := 0
	for t, n := range byTime {
		if n > peakCount || (n == peakCount && t.Before(peak)) {
			peak, peakCount = t, n
		}
	}
	b.PeakTime = &peak

	for s, n := range bySect {
		b.Sections = append(b.Sections, SectionCount{Section: s, Count: n})
	}
	sort.Slice(b.Sections, func(i, j int) bool {
		if b.Sections[i].Count != b.Sections[j].Count {
			return b.Sections[i].Count > b.Sections[j].Count
		}
		return b.Sections[i].Section < b.Sections[j].Section
	})
	popular := b.Sections[0].Section
	b.PopularSection = &popular

	return b
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
