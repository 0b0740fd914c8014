package posting

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// FormatRelativeDate renders an ISO date (YYYY-MM-DD) as a coarse
// relative label: сегодня, вчера, N дн. назад, N нед. назад, N мес. назад.
// Unparseable dates render as сегодня (the delta clamps at zero).
func FormatRelativeDate(iso string, now time.Time) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return "сегодня"
	}
	delta := now.Sub(d)
	if delta < 0 {
		delta = 0
	}
	days := int(delta.Hours() / 24)
	switch {
	case days <= 0:
		return "сегодня"
	case days == 1:
		return "вчера"
	case days < 7:
		return fmt.Sprintf("%d дн. назад", days)
	}
	if weeks := days / 7; weeks < 5 {
		return fmt.Sprintf("%d нед. назад", weeks)
	}
	return fmt.Sprintf("%d мес. назад", days/30)
}

// CourseRangeLabel renders an optional course interval as a display label.
func CourseRangeLabel(min, max *int) string {
	if min == nil && max == nil {
		return "Курс: любой"
	}
	mn, mx := 1, 4
	if min != nil {
		mn = *min
	}
	if max != nil {
		mx = *max
	}
	if mn == mx {
		return fmt.Sprintf("Курс: %d", mn)
	}
	return fmt.Sprintf("Курс: %d-%d", mn, mx)
}

// LogoText returns up to two uppercase initials for a company name.
func LogoText(company string) string {
	parts := strings.Fields(company)
	if len(parts) == 0 {
		return "U"
	}
	first := []rune(parts[0])
	a := first[0]
	var b rune
	if len(parts) > 1 {
		b = []rune(parts[1])[0]
	} else if len(first) > 1 {
		b = first[1]
	}
	if b == 0 {
		return string(unicode.ToUpper(a))
	}
	return string(unicode.ToUpper(a)) + string(unicode.ToUpper(b))
}

// SalaryLabel builds the human-readable salary label: «от N ₽» with
// space-grouped thousands, «неоплачиваемая» for unpaid postings without
// a floor, «договорная» otherwise.
func SalaryLabel(salaryMin *int, paid Paid) string {
	if salaryMin != nil && *salaryMin > 0 {
		return fmt.Sprintf("от %s ₽", groupThousands(*salaryMin))
	}
	if paid == PaidNo {
		return "неоплачиваемая"
	}
	return "договорная"
}

// groupThousands formats n with spaces between thousand groups.
func groupThousands(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
