package reservation

import (
	"errors"
	"testing"

	"reservations/internal/v0/menu"
)

func intPtr(v int) *int { return &v }

func seasonEntries() []menu.Entry {
	// Day indices deliberately non-contiguous: resolution must use the
	// stored field, not the slice position.
	return []menu.Entry{
		{ID: 1, Day: 1, Date: "2026-03-10", Menu: "Lentil soup, lamb ouzi"},
		{ID: 2, Day: 2, Date: "2026-03-11", Menu: "Harira, chicken kabsa"},
		{ID: 3, Day: 5, Date: "2026-03-14", Menu: "Shorba, mixed grill"},
	}
}

func TestResolveExplicitDate(t *testing.T) {
	now := mustTime("2026-03-01 12:00:00")

	r, err := Resolve(now, ResolveOptions{Date: "2026-03-14"}, seasonEntries())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Day != 5 || r.Date != "2026-03-14" || r.Menu != "Shorba, mixed grill" {
		t.Errorf("resolved %+v, want day 5 / 2026-03-14", r)
	}

	if _, err := Resolve(now, ResolveOptions{Date: "2026-04-01"}, seasonEntries()); !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("unknown date: err = %v, want ErrMenuNotFound", err)
	}
}

func TestResolveExplicitDay(t *testing.T) {
	now := mustTime("2026-03-01 12:00:00")

	r, err := Resolve(now, ResolveOptions{Day: intPtr(5)}, seasonEntries())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Date != "2026-03-14" {
		t.Errorf("day 5 resolved to %q, want 2026-03-14", r.Date)
	}

	// Day 3 is absent from the stored field even though three entries
	// exist; position must not stand in for it.
	if _, err := Resolve(now, ResolveOptions{Day: intPtr(3)}, seasonEntries()); !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("missing day index: err = %v, want ErrMenuNotFound", err)
	}
}

func TestResolveDatePrecedesDay(t *testing.T) {
	now := mustTime("2026-03-01 12:00:00")

	r, err := Resolve(now, ResolveOptions{Date: "2026-03-10", Day: intPtr(5)}, seasonEntries())
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if r.Day != 1 {
		t.Errorf("resolved day %d, want the date match (day 1)", r.Day)
	}
}

func TestResolveDefaultBooksNextDay(t *testing.T) {
	tests := []struct {
		name string
		now  string
		want string
	}{
		{"during the window", "2026-03-10 20:00:00", "2026-03-11"},
		{"before the window opens", "2026-03-10 10:00:00", "2026-03-11"},
		{"just after midnight", "2026-03-10 00:10:00", "2026-03-11"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Resolve(mustTime(tt.now), ResolveOptions{}, seasonEntries())
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if r.Date != tt.want {
				t.Errorf("resolved %q, want %q", r.Date, tt.want)
			}
		})
	}
}

func TestResolveDefaultNoMenu(t *testing.T) {
	// Tomorrow (2026-03-15) has no entry
	_, err := Resolve(mustTime("2026-03-14 20:00:00"), ResolveOptions{}, seasonEntries())
	if !errors.Is(err, ErrMenuNotFound) {
		t.Errorf("err = %v, want ErrMenuNotFound", err)
	}
}

func TestTargetDateCrossesMonths(t *testing.T) {
	if got := TargetDate(mustTime("2026-03-31 20:00:00")); got != "2026-04-01" {
		t.Errorf("TargetDate = %q, want 2026-04-01", got)
	}
}

//   This project is the backend API for a seasonal Ramadan pre-reservation system: daily iftar menus and dinner bookings.
//   Reservations API Copyright (C) 2025
//       This program is free software: you can redistribute it and/or modify
//       it under the terms of the GNU General Public License as published by
//       the Free Software Foundation, either version 3 of the License, or
//       (at your option) any later version.

//       This program is distributed in the hope that it will be useful,
//       but WITHOUT ANY WARRANTY; without even the implied warranty of
//       MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
//       GNU General Public License for more details.

//       You should have received a copy of the GNU General Public License
//       along with this program.  If not, see <https://www.gnu.org/licenses/>.
