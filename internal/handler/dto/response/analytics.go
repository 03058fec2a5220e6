package response

import (
	"restaurant-booking/internal/domain/analytics"

	"github.com/jinzhu/copier"
)

type AnalyticsResponse struct {
	TotalReservations int                    `json:"totalReservations"`
	AvgPartySize      float64                `json:"avgPartySize"`
	BusiestDate       *string                `json:"busiestDate" copier:"-"`
	PeakTime          *string                `json:"peakTime" copier:"-"`
	PopularSection    *string                `json:"popularSection"`
	TableUtilization  float64                `json:"tableUtilization"`
	Daily             []DailyCountResponse   `json:"daily" copier:"-"`
	PartySizes        []BucketCountResponse  `json:"partySizes"`
	Sections          []SectionCountResponse `json:"sections"`
}

type DailyCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type BucketCountResponse struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type SectionCountResponse struct {
	Section string `json:"section"`
	Count   int    `json:"count"`
}

func FromMetricsBundle(b *analytics.MetricsBundle) (*AnalyticsResponse, error) {
	out := &AnalyticsResponse{}
	if err := copier.CopyWithOption(out, b, copier.Option{DeepCopy: true}); err != nil {
		return nil, err
	}

	if b.BusiestDate != nil {
		s := b.BusiestDate.String()
		out.BusiestDate = &s
	}
	if b.PeakTime != nil {
		s := b.PeakTime.String()
		out.PeakTime = &s
	}
	out.Daily = make([]DailyCountResponse, len(b.Daily))
	for i, d := range b.Daily {
		out.Daily[i] = DailyCountResponse{Date: d.Date.String(), Count: d.Count}
	}
	if out.PartySizes == nil {
		out.PartySizes = []BucketCountResponse{}
	}
	if out.Sections == nil {
		out.Sections = []SectionCountResponse{}
	}
	return out, nil
}
