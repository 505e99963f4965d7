package menu

// Entry is one day of the season's menu. Day is the authoritative
// 1-based day index; Date is unique across entries.
type Entry struct {
	ID   int64  `json:"id"`
	Day  int    `json:"day"`
	Date string `json:"date"`
	Menu string `json:"menu"`
}

// UpsertRequest is the admin payload for PUT /menu. Day may be omitted,
// in which case the next free day index is assigned.
type UpsertRequest struct {
	Day  *int   `json:"day"`
	Date string `json:"date"`
	Menu string `json:"menu"`
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
