package response

import "restaurant-booking/internal/usecase/queries"

type TableResponse struct {
	ID       int64  `json:"id"`
	Number   int    `json:"number"`
	Capacity int    `json:"capacity"`
	Section  string `json:"section"`
}

type SectionResponse struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Tables      []TableResponse `json:"tables"`
}

func FromTableView(v *queries.TableView) TableResponse {
	return TableResponse{
		ID:       v.ID,
		Number:   v.Number,
		Capacity: v.Capacity,
		Section:  v.SectionName,
	}
}

func FromTableViews(vs []*queries.TableView) []TableResponse {
	out := make([]TableResponse, len(vs))
	for i, v := range vs {
		out[i] = FromTableView(v)
	}
	return out
}

func FromSectionViews(vs []*queries.SectionView) []SectionResponse {
	out := make([]SectionResponse, len(vs))
	for i, v := range vs {
		tables := make([]TableResponse, len(v.Tables))
		for j := range v.Tables {
			tables[j] = FromTableView(&v.Tables[j])
		}
		out[i] = SectionResponse{
			ID:          v.ID,
			Name:        v.Name,
			Description: v.Description,
			Tables:      tables,
		}
	}
	return out
}
