package ops

import (
	"math"
	"strings"
	"time"

	"entrypoint/internal/catalog"
	"entrypoint/internal/errors"
	"entrypoint/internal/posting"
	"entrypoint/internal/route"
	"entrypoint/internal/university"
)

// CreateInput contains parameters for the Create operation. Stack is a
// comma-separated tag list, matching the submission form.
type CreateInput struct {
	Company   string `json:"company"`
	RoleTitle string `json:"roleTitle"`
	Direction string `json:"direction"`
	Paid      string `json:"paid"`
	Format    string `json:"format"`
	City      string `json:"city"`

	SalaryMin *float64 `json:"salaryMin,omitempty"`
	CourseMin *float64 `json:"courseMin,omitempty"`
	CourseMax *float64 `json:"courseMax,omitempty"`
	MinGPA    *float64 `json:"minGpa,omitempty"`

	Stack      string `json:"stack,omitempty"`
	ShortPitch string `json:"shortPitch"`
	Telegram   string `json:"telegram"`
	Email      string `json:"email"`
}

// CreateOutput contains the stored posting and its share fragment.
type CreateOutput struct {
	posting.Posting

	ShareFragment string `json:"shareFragment"`
}

// Create validates a submission, fills in the derived fields, stores
// the posting in the catalog, and persists the user set.
//
// Coercions mirror the submission rules: a remote posting always gets
// the wildcard city, and a non-remote posting may not keep it.
func Create(cat *catalog.Catalog, input CreateInput) (*CreateOutput, error) {
	company := strings.TrimSpace(input.Company)
	title := strings.TrimSpace(input.RoleTitle)
	pitch := strings.TrimSpace(input.ShortPitch)
	telegram := strings.TrimSpace(input.Telegram)
	email := strings.TrimSpace(input.Email)

	switch {
	case company == "":
		return nil, errors.NewInvalidRecord("company must not be empty")
	case title == "":
		return nil, errors.NewInvalidRecord("roleTitle must not be empty")
	case pitch == "":
		return nil, errors.NewInvalidRecord("shortPitch must not be empty")
	case telegram == "":
		return nil, errors.NewInvalidRecord("telegram must not be empty")
	case email == "":
		return nil, errors.NewInvalidRecord("email must not be empty")
	}

	if !posting.KnownDirection(input.Direction) {
		return nil, errors.NewInvalidRecord("unknown direction: " + input.Direction)
	}
	if !posting.KnownPaid(input.Paid) {
		return nil, errors.NewInvalidRecord("unknown paid state: " + input.Paid)
	}
	if !posting.KnownFormat(input.Format) {
		return nil, errors.NewInvalidRecord("unknown format: " + input.Format)
	}
	if !posting.KnownCity(input.City) {
		return nil, errors.NewInvalidRecord("unknown city: " + input.City)
	}

	city := input.City
	if input.Format == posting.FormatRemote {
		city = posting.CityAny
	} else if city == posting.CityAny {
		city = posting.CityMoscow
	}

	var salaryMin *int
	if input.SalaryMin != nil && *input.SalaryMin > 0 {
		v := int(math.Round(*input.SalaryMin))
		salaryMin = &v
	}

	locationLabel := posting.CityLabels[city]
	if input.Format == posting.FormatRemote {
		locationLabel = "Удаленно"
	}

	p := &posting.Posting{
		ID:            posting.SlugID(company + "-" + title),
		Company:       company,
		RoleTitle:     title,
		SalaryLabel:   posting.SalaryLabel(salaryMin, input.Paid),
		SalaryMin:     salaryMin,
		Paid:          input.Paid,
		Format:        input.Format,
		City:          city,
		Direction:     input.Direction,
		Universities:  guessUniversities(city),
		Programs:      []string{},
		Stack:         splitStack(input.Stack),
		CourseMin:     clampIntPtr(input.CourseMin, 1, 4),
		CourseMax:     clampIntPtr(input.CourseMax, 1, 4),
		MinGPA:        clampFloatPtr(input.MinGPA, 0, 10),
		Season:        "Весна 2026",
		Duration:      "6-12 недель",
		LocationLabel: locationLabel,
		PostedAt:      time.Now().Format("2006-01-02"),
		ShortPitch:    pitch,
		About:         pitch,
		Responsibilities: []string{
			"(MVP) Уточнить в описании вакансии",
		},
		Requirements: []string{
			"(MVP) Базовые навыки по стеку",
		},
		NiceToHave: []string{
			"(MVP) Портфолио/пет-проекты",
		},
		Apply: posting.ApplyContact{
			TelegramURL: telegram,
			Email:       email,
		},
		UserCreated: true,
	}

	cat.AddUserPost(p)

	return &CreateOutput{
		Posting:       *p,
		ShareFragment: route.ShareFragment(p.ID),
	}, nil
}

// guessUniversities picks a plausible eligibility set for a city.
func guessUniversities(city posting.City) []string {
	switch city {
	case posting.CitySPb:
		return []string{"ITMO", "SPbU", "SPbPU"}
	case posting.CityNovosibirsk:
		return []string{"NSU"}
	case posting.CityKazan:
		return []string{"INNO"}
	case posting.CityAny:
		return university.IDs()
	default:
		return []string{"HSE", "MSU", "MIPT", "BMSTU", "MEPHI"}
	}
}

// splitStack parses the comma-separated tag list, dropping blanks and
// capping the tag count.
func splitStack(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
		if len(out) == MaxStackTags {
			break
		}
	}
	return out
}

func clampIntPtr(v *float64, lo, hi int) *int {
	if v == nil {
		return nil
	}
	n := int(math.Round(*v))
	if n < lo {
		n = lo
	}
	if n > hi {
		n = hi
	}
	return &n
}

func clampFloatPtr(v *float64, lo, hi float64) *float64 {
	if v == nil {
		return nil
	}
	f := math.Max(lo, math.Min(hi, *v))
	return &f
}
