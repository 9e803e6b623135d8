// Package country provides the ISO 3166-1 alpha-2 country list.
package country

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// Country is an ISO 3166-1 alpha-2 code with its English name.
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

var (
	once   sync.Once
	all    []Country
	byCode map[string]Country
)

func load() {
	names := display.English.Regions()
	byCode = make(map[string]Country)

	for a := 'A'; a <= 'Z'; a++ {
		for b := 'A'; b <= 'Z'; b++ {
			code := string([]rune{a, b})
			r, err := language.ParseRegion(code)
			if err != nil || !r.IsCountry() || r.String() != code {
				continue
			}
			if r.Canonicalize().String() != code {
				continue
			}
			name := names.Name(r)
			if name == "" {
				continue
			}
			c := Country{Code: code, Name: name}
			all = append(all, c)
			byCode[code] = c
		}
	}

	slices.SortFunc(all, func(x, y Country) int {
		return strings.Compare(x.Name, y.Name)
	})
}

// List returns all countries sorted by name.
func List() []Country {
	once.Do(load)
	return slices.Clone(all)
}

// Get returns the country for an upper-case alpha-2 code.
func Get(code string) (Country, bool) {
	once.Do(load)
	c, ok := byCode[code]
	return c, ok
}

// Valid reports whether code is an upper-case alpha-2 country code.
func Valid(code string) bool {
	_, ok := Get(code)
	return ok
}
