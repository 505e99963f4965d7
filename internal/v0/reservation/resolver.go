package reservation

import (
	"time"

	"reservations/internal/v0/menu"
)

// DateLayout is the calendar date format used across the API.
const DateLayout = "2006-01-02"

// ResolveOptions carries the optional explicit inputs of a request.
// Date wins over Day; with neither set the default self-service rule
// applies.
type ResolveOptions struct {
	Date string
	Day  *int
}

// Resolved pins a request to one service day.
type Resolved struct {
	Day  int
	Date string
	Menu string
}

// TargetDate computes the default self-service date: bookings are
// always for the next service day relative to now.
func TargetDate(now time.Time) string {
	return now.AddDate(0, 0, 1).Format(DateLayout)
}

// Resolve maps a request to its service day over the already-fetched
// menu entries. It does no I/O. Lookup order: explicit date, explicit
// stored day index, then the default target date. If duplicate dates
// exist (the store forbids them) the first match wins.
func Resolve(now time.Time, opts ResolveOptions, entries []menu.Entry) (Resolved, error) {
	switch {
	case opts.Date != "":
		return findByDate(entries, opts.Date)
	case opts.Day != nil:
		for _, e := range entries {
			if e.Day == *opts.Day {
				return Resolved{Day: e.Day, Date: e.Date, Menu: e.Menu}, nil
			}
		}
		return Resolved{}, ErrMenuNotFound
	default:
		return findByDate(entries, TargetDate(now))
	}
}

func findByDate(entries []menu.Entry, date string) (Resolved, error) {
	for _, e := range entries {
		if e.Date == date {
			return Resolved{Day: e.Day, Date: e.Date, Menu: e.Menu}, nil
		}
	}
	return Resolved{}, ErrMenuNotFound
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
