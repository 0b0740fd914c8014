// Package university holds the static university reference list and the
// tiered fuzzy matcher used to resolve free-text university search.
package university

// Entry is one reference entry: identifier, short label, full official
// name, and alias spellings used only for matching. Never mutated.
type Entry struct {
	ID      string
	Short   string
	Full    string
	Aliases []string
}

// Entries is the static reference list.
var Entries = []Entry{
	{
		ID:      "HSE",
		Short:   "ВШЭ",
		Full:    "Высшая школа экономики",
		Aliases: []string{"HSE", "вышка", "НИУ ВШЭ"},
	},
	{
		ID:      "MSU",
		Short:   "МГУ",
		Full:    "Московский государственный университет им. М. В. Ломоносова",
		Aliases: []string{"MSU", "ломоносов"},
	},
	{
		ID:      "MIPT",
		Short:   "МФТИ",
		Full:    "Московский физико-технический институт",
		Aliases: []string{"MIPT", "физтех"},
	},
	{
		ID:      "ITMO",
		Short:   "ИТМО",
		Full:    "Национальный исследовательский университет ИТМО",
		Aliases: []string{"ITMO"},
	},
	{
		ID:      "BMSTU",
		Short:   "Бауманка",
		Full:    "Московский государственный технический университет им. Н. Э. Баумана",
		Aliases: []string{"BMSTU", "МГТУ", "бауманский"},
	},
	{
		ID:      "MEPHI",
		Short:   "МИФИ",
		Full:    "Национальный исследовательский ядерный университет МИФИ",
		Aliases: []string{"MEPhI"},
	},
	{
		ID:      "SPbU",
		Short:   "СПбГУ",
		Full:    "Санкт-Петербургский государственный университет",
		Aliases: []string{"SPbU", "СПбГУ"},
	},
	{
		ID:      "SPbPU",
		Short:   "Политех",
		Full:    "Санкт-Петербургский политехнический университет Петра Великого",
		Aliases: []string{"SPbPU", "СПбПУ", "политех петра"},
	},
	{
		ID:      "NSU",
		Short:   "НГУ",
		Full:    "Новосибирский государственный университет",
		Aliases: []string{"NSU"},
	},
	{
		ID:      "INNO",
		Short:   "Иннополис",
		Full:    "Университет Иннополис",
		Aliases: []string{"Innopolis", "ИННО"},
	},
}

// byID indexes entries for label lookups.
var byID = func() map[string]Entry {
	m := make(map[string]Entry, len(Entries))
	for _, e := range Entries {
		m[e.ID] = e
	}
	return m
}()

// ByID returns the reference entry for an ID.
func ByID(id string) (Entry, bool) {
	e, ok := byID[id]
	return e, ok
}

// KnownID reports whether id names a reference entry.
func KnownID(id string) bool {
	_, ok := byID[id]
	return ok
}

// IDs returns all reference IDs in list order.
func IDs() []string {
	ids := make([]string, len(Entries))
	for i, e := range Entries {
		ids[i] = e.ID
	}
	return ids
}
