package ops

import (
	"time"

	"entrypoint/internal/catalog"
	"entrypoint/internal/filter"
)

// ListInput contains parameters for the List operation. Slice fields
// select within a dimension; an empty slice leaves the dimension
// unconstrained.
type ListInput struct {
	Query         string   `json:"query,omitempty"`
	Universities  []string `json:"universities,omitempty"`
	Cities        []string `json:"cities,omitempty"`
	Directions    []string `json:"directions,omitempty"`
	Formats       []string `json:"formats,omitempty"`
	Starts        []string `json:"starts,omitempty"`
	Stack         []string `json:"stack,omitempty"`
	ProfileGPA    *float64 `json:"profileGpa,omitempty"`
	ProfileCourse *int     `json:"profileCourse,omitempty"`
	SalaryMin     *int     `json:"salaryMin,omitempty"`

	Limit  int `json:"limit,omitempty"`  // default: 50, max: 200
	Offset int `json:"offset,omitempty"` // default: 0
}

// ListOutput contains the result of the List operation.
type ListOutput struct {
	Items      []Summary  `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// toState builds an engine-readable filter state from the input.
func (in ListInput) toState() *filter.State {
	st := filter.NewState()
	st.Query = in.Query
	st.Universities.Append(in.Universities...)
	st.Cities.Append(in.Cities...)
	st.Directions.Append(in.Directions...)
	st.Formats.Append(in.Formats...)
	st.Starts.Append(in.Starts...)
	st.Stack.Append(in.Stack...)
	st.ProfileGPA = in.ProfileGPA
	st.ProfileCourse = in.ProfileCourse
	st.SalaryMin = in.SalaryMin
	return st
}

// List filters the merged catalog and returns a page of summaries in
// catalog order.
func List(cat *catalog.Catalog, input ListInput) (*ListOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	offset := max(input.Offset, 0)

	matched := filter.FilterAll(cat.All(), input.toState())
	total := len(matched)

	if offset > total {
		offset = total
	}
	end := min(offset+limit, total)
	page := matched[offset:end]

	now := time.Now()
	items := make([]Summary, 0, len(page))
	for _, p := range page {
		items = append(items, summarize(p, postedLabel(p, now)))
	}

	return &ListOutput{
		Items: items,
		Pagination: Pagination{
			Limit:   limit,
			Offset:  offset,
			HasMore: end < total,
			Total:   total,
		},
	}, nil
}
