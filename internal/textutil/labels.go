package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Label turns a snake_case key such as "release_year" into a display label
// ("Release Year").
func Label(key string) string {
	key = strings.TrimSpace(strings.ReplaceAll(key, "_", " "))
	if key == "" {
		return ""
	}
	return cases.Title(language.English).String(key)
}
