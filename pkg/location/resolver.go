// Package location maps free-text mentions of Sydney areas to coordinates.
package location

import (
	"regexp"
	"strings"

	"matcha-match-be/pkg/geo"
)

// Area is a named gazetteer entry.
type Area struct {
	Name   string
	Coords geo.Coordinates
}

// gazetteer is a fixed, ordered list of local areas. Order matters: the first
// match wins, so more specific names go before broader ones.
var gazetteer = []Area{
	{"darling harbour", geo.Coordinates{Lat: -33.8748, Lng: 151.1987}},
	{"circular quay", geo.Coordinates{Lat: -33.8613, Lng: 151.2109}},
	{"the rocks", geo.Coordinates{Lat: -33.8593, Lng: 151.2087}},
	{"surry hills", geo.Coordinates{Lat: -33.8860, Lng: 151.2110}},
	{"chinatown", geo.Coordinates{Lat: -33.8790, Lng: 151.2040}},
	{"haymarket", geo.Coordinates{Lat: -33.8810, Lng: 151.2055}},
	{"newtown", geo.Coordinates{Lat: -33.8980, Lng: 151.1790}},
	{"glebe", geo.Coordinates{Lat: -33.8790, Lng: 151.1860}},
	{"bondi", geo.Coordinates{Lat: -33.8915, Lng: 151.2767}},
	{"manly", geo.Coordinates{Lat: -33.7970, Lng: 151.2855}},
	{"chatswood", geo.Coordinates{Lat: -33.7970, Lng: 151.1830}},
	{"parramatta", geo.Coordinates{Lat: -33.8150, Lng: 151.0010}},
	{"cbd", geo.Coordinates{Lat: -33.8688, Lng: 151.2093}},
	{"sydney", geo.Coordinates{Lat: -33.8688, Lng: 151.2093}},
}

var nearPattern = regexp.MustCompile(`(?:near|close to)\s+([a-zA-Z\s]+)`)

// Resolver detects a named local area in user text.
type Resolver struct {
	areas []Area
}

func NewResolver() *Resolver {
	return &Resolver{areas: gazetteer}
}

// Resolve returns the coordinates of the first gazetteer area mentioned in
// text, or nil when nothing matches. Callers must supply their own fallback
// origin for the nil case.
func (r *Resolver) Resolve(text string) *geo.Coordinates {
	lower := strings.ToLower(text)

	for _, area := range r.areas {
		if strings.Contains(lower, area.Name) {
			c := area.Coords
			return &c
		}
	}

	// "near X" / "close to X" with a phrase that only loosely names an area.
	if m := nearPattern.FindStringSubmatch(lower); m != nil {
		phrase := strings.TrimSpace(m[1])
		for _, area := range r.areas {
			if strings.Contains(phrase, area.Name) || strings.Contains(area.Name, phrase) {
				c := area.Coords
				return &c
			}
		}
	}

	return nil
}
