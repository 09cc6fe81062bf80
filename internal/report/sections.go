package report

import (
	"fmt"
	"slices"
	"strings"

	"reelstats/internal/aggregate"
)

// Section names one block of a rendered report.
type Section string

const (
	SectionTypes     Section = "types"
	SectionYears     Section = "years"
	SectionAdded     Section = "added"
	SectionGenres    Section = "genres"
	SectionRatings   Section = "ratings"
	SectionCountries Section = "countries"
	SectionLongest   Section = "longest"
	SectionShortest  Section = "shortest"
	SectionAverage   Section = "average"
	SectionWords     Section = "words"
	SectionPreview   Section = "preview"
)

// Sections lists every section in rendering order.
func Sections() []Section {
	return []Section{
		SectionTypes, SectionYears, SectionAdded, SectionGenres, SectionRatings,
		SectionCountries, SectionLongest, SectionShortest, SectionAverage,
		SectionWords, SectionPreview,
	}
}

// View returns the aggregate view behind the section. Preview has none.
func (s Section) View() (aggregate.View, bool) {
	if s == SectionPreview {
		return "", false
	}
	return aggregate.View(s), true
}

func (s Section) title() string {
	switch s {
	case SectionTypes:
		return "Movies vs TV Shows"
	case SectionYears:
		return "Titles by Release Year"
	case SectionAdded:
		return "Titles Added by Year"
	case SectionGenres:
		return "Top Genres"
	case SectionRatings:
		return "Top Ratings"
	case SectionCountries:
		return "Top Countries"
	case SectionLongest:
		return "Longest Movies"
	case SectionShortest:
		return "Shortest Movies"
	case SectionAverage:
		return "Average Movie Duration"
	case SectionWords:
		return "Title Words"
	case SectionPreview:
		return "Titles Preview"
	default:
		return string(s)
	}
}

// Variant names.
const (
	VariantOverview  = "overview"
	VariantGenres    = "genres"
	VariantDurations = "durations"
	VariantWords     = "words"
	VariantFull      = "full"
)

var variants = map[string][]Section{
	VariantOverview:  {SectionTypes, SectionAdded, SectionGenres, SectionPreview},
	VariantGenres:    {SectionGenres, SectionCountries, SectionRatings},
	VariantDurations: {SectionLongest, SectionShortest, SectionAverage},
	VariantWords:     {SectionWords},
	VariantFull:      Sections(),
}

// Variants lists the variant names, sorted.
func Variants() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Resolve picks the sections to render. Explicit sections win over the
// variant; both are matched case-insensitively.
func Resolve(variant string, sections []string) ([]Section, error) {
	if len(sections) > 0 {
		out := make([]Section, 0, len(sections))
		for _, raw := range sections {
			s, err := ParseSection(raw)
			if err != nil {
				return nil, err
			}
			if !slices.Contains(out, s) {
				out = append(out, s)
			}
		}
		return out, nil
	}
	key := strings.ToLower(strings.TrimSpace(variant))
	if key == "" {
		key = VariantFull
	}
	list, ok := variants[key]
	if !ok {
		return nil, fmt.Errorf("unknown report variant %q (want one of %s)", variant, strings.Join(Variants(), ", "))
	}
	return slices.Clone(list), nil
}

// ParseSection resolves a section name.
func ParseSection(raw string) (Section, error) {
	key := Section(strings.ToLower(strings.TrimSpace(raw)))
	if slices.Contains(Sections(), key) {
		return key, nil
	}
	names := make([]string, 0, len(Sections()))
	for _, s := range Sections() {
		names = append(names, string(s))
	}
	return "", fmt.Errorf("unknown report section %q (want one of %s)", raw, strings.Join(names, ", "))
}
