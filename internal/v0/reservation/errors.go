package reservation

import "errors"

// Sentinel errors the handlers translate into HTTP statuses.
var (
	// ErrMenuNotFound means no menu entry exists for the resolved day.
	ErrMenuNotFound = errors.New("menu not found for this day")

	// ErrWindowClosed means the request arrived outside the nightly window.
	ErrWindowClosed = errors.New("reservations are closed right now")

	// ErrDuplicate means the phone already has a booking for the date.
	ErrDuplicate = errors.New("a reservation already exists for this phone number and date")

	// ErrNotFound is returned when an update or delete target is missing.
	ErrNotFound = errors.New("reservation not found")
)

// validationError communicates bad input back to the handlers.
type validationError struct {
	message string
}

func (e validationError) Error() string { return e.message }

func newValidationError(msg string) error {
	return validationError{message: msg}
}

// IsValidation distinguishes bad input from business and store failures.
func IsValidation(err error) bool {
	var v validationError
	return errors.As(err, &v)
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
