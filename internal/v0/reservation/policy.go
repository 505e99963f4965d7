package reservation

import (
	"fmt"
	"time"
)

// Policy collects every clock rule that used to live scattered around
// the UI and the API routes: when the nightly window opens and closes,
// when the season starts, and whether the window gates submission or
// only the displayed countdown.
type Policy struct {
	OpenHour    int
	CloseHour   int
	CloseMinute int

	// SeasonStart is informational. Day numbering comes from the
	// stored menu day field, never from a season offset.
	SeasonStart time.Time

	// EnforceWindowOnSubmit makes the window check authoritative at
	// submission time, not just on the displayed countdown.
	EnforceWindowOnSubmit bool
}

// DefaultPolicy: open 19:00, close 23:59:59.999 the same day, window
// enforced on submission.
func DefaultPolicy() Policy {
	return Policy{
		OpenHour:              19,
		CloseHour:             23,
		CloseMinute:           59,
		EnforceWindowOnSubmit: true,
	}
}

// WindowState names the three phases of a service day.
type WindowState string

const (
	StateBeforeOpen WindowState = "before_open"
	StateOpen       WindowState = "open"
	StateClosed     WindowState = "closed"
)

// WindowStatus is one evaluation of the gate at a point in time.
// Countdown is the time until the next transition; it is zero once the
// window has closed for the day.
type WindowStatus struct {
	State      WindowState
	CanReserve bool
	Countdown  time.Duration
	Message    string
}

func (p Policy) openTime(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), p.OpenHour, 0, 0, 0, now.Location())
}

func (p Policy) closeTime(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), p.CloseHour, p.CloseMinute, 59, 999000000, now.Location())
}

// Window evaluates the gate for a wall-clock instant.
func (p Policy) Window(now time.Time) WindowStatus {
	open := p.openTime(now)
	closeAt := p.closeTime(now)

	switch {
	case now.Before(open):
		left := open.Sub(now)
		return WindowStatus{
			State:     StateBeforeOpen,
			Countdown: left,
			Message:   fmt.Sprintf("Reservations open in %dh %dm", int(left.Hours()), int(left.Minutes())%60),
		}
	case !now.After(closeAt):
		left := closeAt.Sub(now)
		return WindowStatus{
			State:      StateOpen,
			CanReserve: true,
			Countdown:  left,
			Message:    fmt.Sprintf("%dh %dm left to reserve", int(left.Hours()), int(left.Minutes())%60),
		}
	default:
		return WindowStatus{
			State:   StateClosed,
			Message: "Reservations are closed for today.",
		}
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
