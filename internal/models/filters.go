package models

type EventFilters struct {
	Search   string `json:"search"`
	Category string `json:"category"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
	Location string `json:"location"`
}

func (f EventFilters) IsEmpty() bool {
	return f == EventFilters{}
}

// FiltersPatch is a partial update: nil fields are kept, non-nil fields (even empty) overwrite.
type FiltersPatch struct {
	Search   *string `json:"search,omitempty"`
	Category *string `json:"category,omitempty"`
	DateFrom *string `json:"dateFrom,omitempty"`
	DateTo   *string `json:"dateTo,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (f EventFilters) Apply(p FiltersPatch) EventFilters {
	if p.Search != nil {
		f.Search = *p.Search
	}
	if p.Category != nil {
		f.Category = *p.Category
	}
	if p.DateFrom != nil {
		f.DateFrom = *p.DateFrom
	}
	if p.DateTo != nil {
		f.DateTo = *p.DateTo
	}
	if p.Location != nil {
		f.Location = *p.Location
	}
	return f
}
