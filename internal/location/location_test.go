package location

import (
	"testing"
	"time"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		place    string
		lat, lon float64
		tz       string
		want     Place
	}{
		{
			name: "empty name falls back entirely",
			want: DefaultPlace,
		},
		{
			name:  "valid values pass through",
			place: "Lisbon",
			lat:   38.72,
			lon:   -9.14,
			tz:    "Europe/Lisbon",
			want:  Place{Name: "Lisbon", Lat: 38.72, Lon: -9.14, Timezone: "Europe/Lisbon"},
		},
		{
			name:  "out of range coordinates reset",
			place: "Nowhere",
			lat:   120,
			lon:   -400,
			tz:    "UTC",
			want:  Place{Name: "Nowhere", Lat: DefaultPlace.Lat, Lon: DefaultPlace.Lon, Timezone: "UTC"},
		},
		{
			name:  "missing timezone defaults",
			place: "Lisbon",
			lat:   38.72,
			lon:   -9.14,
			want:  Place{Name: "Lisbon", Lat: 38.72, Lon: -9.14, Timezone: DefaultPlace.Timezone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Resolve(tt.place, tt.lat, tt.lon, tt.tz)
			if got != tt.want {
				t.Fatalf("Resolve() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestPlace_TimeLocation(t *testing.T) {
	p := Place{Timezone: "not/a-zone"}
	if got := p.TimeLocation(); got != time.Local {
		t.Fatalf("TimeLocation() = %v, want local fallback", got)
	}

	p = Place{Timezone: "UTC"}
	if got := p.TimeLocation(); got != time.UTC {
		t.Fatalf("TimeLocation() = %v, want UTC", got)
	}
}

func TestPlace_String(t *testing.T) {
	p := Place{Name: "Quito", Lat: -0.18, Lon: -78.47}
	if got := p.String(); got != "Quito (0.2°S 78.5°W)" {
		t.Fatalf("String() = %q", got)
	}
}
