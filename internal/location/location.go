// Package location resolves the place Perch reports weather for. It is
// a thin, total layer: missing or invalid input falls back to the
// default place rather than failing.
package location

import (
	"fmt"
	"strings"
	"time"
)

// Place identifies where the dashboard is "looking from".
type Place struct {
	Name     string
	Lat      float64
	Lon      float64
	Timezone string
}

// DefaultPlace is used when the config names no location.
var DefaultPlace = Place{
	Name:     "Berlin",
	Lat:      52.52,
	Lon:      13.405,
	Timezone: "Europe/Berlin",
}

// Resolve builds a Place from config values, falling back to
// DefaultPlace fields for anything missing or out of range.
func Resolve(name string, lat, lon float64, timezone string) Place {
	place := Place{
		Name:     strings.TrimSpace(name),
		Lat:      lat,
		Lon:      lon,
		Timezone: strings.TrimSpace(timezone),
	}

	if place.Name == "" {
		return DefaultPlace
	}
	if place.Lat < -90 || place.Lat > 90 {
		place.Lat = DefaultPlace.Lat
	}
	if place.Lon < -180 || place.Lon > 180 {
		place.Lon = DefaultPlace.Lon
	}
	if place.Timezone == "" {
		place.Timezone = DefaultPlace.Timezone
	}
	return place
}

// TimeLocation loads the place's timezone, falling back to the local
// zone when the name does not resolve.
func (p Place) TimeLocation() *time.Location {
	loc, err := time.LoadLocation(p.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// String renders the place for display, e.g. "Berlin (52.5°N 13.4°E)".
func (p Place) String() string {
	latDir, lonDir := "N", "E"
	lat, lon := p.Lat, p.Lon
	if lat < 0 {
		latDir, lat = "S", -lat
	}
	if lon < 0 {
		lonDir, lon = "W", -lon
	}
	return fmt.Sprintf("%s (%.1f°%s %.1f°%s)", p.Name, lat, latDir, lon, lonDir)
}
