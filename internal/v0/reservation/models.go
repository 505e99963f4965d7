package reservation

import (
	"strings"
	"time"
)

// Reservation is one persisted booking. Day is denormalized from the
// menu entry the booking was resolved against.
type Reservation struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	People    int       `json:"people"`
	Type      string    `json:"type"`
	Date      string    `json:"date"`
	Day       int       `json:"day"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateRequest is the POST /reservations payload. Date is only
// honored together with IsAdmin.
type CreateRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	People  int    `json:"people"`
	Type    string `json:"type"`
	Date    string `json:"date"`
	IsAdmin bool   `json:"isAdmin"`
}

// UpdateRequest is the PUT /reservations payload. Only non-empty
// fields are applied.
type UpdateRequest struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	People *int   `json:"people"`
	Type   string `json:"type"`
	Date   string `json:"date"`
}

// DeleteRequest is the DELETE /reservations payload.
type DeleteRequest struct {
	ID string `json:"id"`
}

// Seating modes, keyed by their lowercased form.
var seatingTypes = map[string]string{
	"dine-in":  "Dine-In",
	"takeaway": "Takeaway",
	"delivery": "Delivery",
}

// NormalizeType matches a seating mode case-insensitively and returns
// its canonical spelling.
func NormalizeType(t string) (string, bool) {
	canonical, ok := seatingTypes[strings.ToLower(strings.TrimSpace(t))]
	return canonical, ok
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
