package ops

import (
	"strings"
	"time"

	"entrypoint/internal/catalog"
	"entrypoint/internal/errors"
	"entrypoint/internal/posting"
	"entrypoint/internal/route"
	"entrypoint/internal/university"
)

// GetInput contains parameters for the Get operation.
type GetInput struct {
	ID string `json:"id"`
}

// GetOutput contains the result of the Get operation: the full posting
// plus the derived display labels the detail view needs.
type GetOutput struct {
	posting.Posting

	DirectionLabel   string   `json:"directionLabel"`
	FormatLabel      string   `json:"formatLabel"`
	PaidLabel        string   `json:"paidLabel"`
	PostedLabel      string   `json:"postedLabel"`
	CourseLabel      string   `json:"courseLabel"`
	UniversityLabels []string `json:"universityLabels"`
	ShareFragment    string   `json:"shareFragment"`
}

// Get retrieves a posting from the merged catalog by identifier.
func Get(cat *catalog.Catalog, input GetInput) (*GetOutput, error) {
	id := strings.TrimSpace(input.ID)
	if id == "" {
		return nil, errors.NewInvalidRequest("id must not be empty")
	}

	p, ok := cat.ByID(id)
	if !ok {
		return nil, errors.NewNotFound(id)
	}

	labels := make([]string, 0, len(p.Universities))
	for _, uid := range p.Universities {
		if e, ok := university.ByID(uid); ok {
			labels = append(labels, e.Short)
		}
	}

	return &GetOutput{
		Posting:          *p,
		DirectionLabel:   posting.DirectionLabels[p.Direction],
		FormatLabel:      posting.FormatLabels[p.Format],
		PaidLabel:        posting.PaidLabels[p.Paid],
		PostedLabel:      postedLabel(p, time.Now()),
		CourseLabel:      posting.CourseRangeLabel(p.CourseMin, p.CourseMax),
		UniversityLabels: labels,
		ShareFragment:    route.ShareFragment(p.ID),
	}, nil
}
