// Package posting defines the internship posting entity, its fixed
// categorical vocabularies, and the text helpers shared by filtering
// and matching.
package posting

// Direction is a categorical internship direction.
type Direction = string

// Known directions.
const (
	DirBackend  Direction = "backend"
	DirFrontend Direction = "frontend"
	DirMobile   Direction = "mobile"
	DirData     Direction = "data"
	DirQA       Direction = "qa"
	DirInfra    Direction = "infra"
)

// WorkFormat is a categorical work format.
type WorkFormat = string

// Known work formats.
const (
	FormatRemote WorkFormat = "Remote"
	FormatOnsite WorkFormat = "Onsite"
	FormatHybrid WorkFormat = "Hybrid"
)

// City is a categorical city. CityAny is the wildcard used by remote
// postings.
type City = string

// Known cities.
const (
	CityMoscow      City = "Moscow"
	CitySPb         City = "SPb"
	CityNovosibirsk City = "Novosibirsk"
	CityKazan       City = "Kazan"
	CityAny         City = "Any"
)

// Paid marks whether a posting is a paid position.
type Paid = string

// Known paid states.
const (
	PaidYes Paid = "Paid"
	PaidNo  Paid = "Unpaid"
)

// StartASAP is the start-token literal meaning "as soon as possible".
// Season labels are the other valid start tokens.
const StartASAP = "ASAP"

// Seasons lists the season labels postings may carry, in calendar order.
var Seasons = []string{"Весна 2026", "Лето 2026", "Осень 2026"}

// DirectionLabels maps directions to their display labels.
var DirectionLabels = map[Direction]string{
	DirBackend:  "Бэкенд",
	DirFrontend: "Фронтенд",
	DirMobile:   "Мобильная разработка",
	DirData:     "Данные и ML",
	DirQA:       "Тестирование",
	DirInfra:    "Инфраструктура",
}

// FormatLabels maps work formats to their display labels.
var FormatLabels = map[WorkFormat]string{
	FormatRemote: "Удаленно",
	FormatOnsite: "Офис",
	FormatHybrid: "Гибрид",
}

// CityLabels maps cities to their display labels.
var CityLabels = map[City]string{
	CityMoscow:      "Москва",
	CitySPb:         "Санкт-Петербург",
	CityNovosibirsk: "Новосибирск",
	CityKazan:       "Казань",
	CityAny:         "Любой",
}

// PaidLabels maps paid states to their display labels.
var PaidLabels = map[Paid]string{
	PaidYes: "Оплачиваемая",
	PaidNo:  "Неоплачиваемая",
}

// CourseChoices lists the selectable course numbers.
var CourseChoices = []int{1, 2, 3, 4}

// ApplyContact holds the contact channels for a posting.
type ApplyContact struct {
	TelegramURL string `json:"telegramUrl"`
	Email       string `json:"email"`
}

// Posting is one internship listing, seed or user-submitted.
// JSON tags match the persisted record layout, including the legacy one,
// so stored records round-trip unchanged.
type Posting struct {
	ID          string `json:"id"`
	Company     string `json:"company"`
	RoleTitle   string `json:"roleTitle"`
	SalaryLabel string `json:"salaryLabel"`
	SalaryMin   *int   `json:"salaryMin,omitempty"`
	SalaryMax   *int   `json:"salaryMax,omitempty"`

	Paid      Paid       `json:"paid"`
	Format    WorkFormat `json:"format"`
	City      City       `json:"city"`
	Direction Direction  `json:"direction"`

	// Universities holds eligible university IDs; empty means unrestricted.
	Universities []string `json:"universities"`
	Programs     []string `json:"programs"`
	Stack        []string `json:"stack"`

	CourseMin *int     `json:"courseMin,omitempty"`
	CourseMax *int     `json:"courseMax,omitempty"`
	MinGPA    *float64 `json:"minGpa,omitempty"`

	Season   string `json:"season"`
	ASAP     bool   `json:"asap,omitempty"`
	Hot      bool   `json:"hot,omitempty"`
	Duration string `json:"duration"`

	LocationLabel string `json:"locationLabel"`
	PostedAt      string `json:"postedAtISO"` // YYYY-MM-DD

	ShortPitch       string   `json:"shortPitch"`
	About            string   `json:"about"`
	Responsibilities []string `json:"responsibilities"`
	Requirements     []string `json:"requirements"`
	NiceToHave       []string `json:"niceToHave"`

	Apply ApplyContact `json:"apply"`

	// UserCreated distinguishes user-submitted postings from seed data.
	UserCreated bool `json:"userCreated,omitempty"`
}

// KnownDirection reports whether d is one of the fixed directions.
func KnownDirection(d string) bool {
	_, ok := DirectionLabels[d]
	return ok
}

// KnownFormat reports whether f is one of the fixed work formats.
func KnownFormat(f string) bool {
	_, ok := FormatLabels[f]
	return ok
}

// KnownCity reports whether c is one of the fixed cities.
func KnownCity(c string) bool {
	_, ok := CityLabels[c]
	return ok
}

// KnownPaid reports whether p is one of the fixed paid states.
func KnownPaid(p string) bool {
	_, ok := PaidLabels[p]
	return ok
}
