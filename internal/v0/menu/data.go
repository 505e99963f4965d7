package menu

import (
	"database/sql"
)

// Store is the collection surface the handlers and the reservation
// service depend on. *Repository is the sqlite implementation.
type Store interface {
	ListAll() ([]Entry, error)
	GetByDay(day int) (*Entry, error)
	GetByDate(date string) (*Entry, error)
	Upsert(date, menuText string, day *int) (*Entry, error)
}

type Repository struct {
	db *sql.DB
}

// NewRepository creates a new menu repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// ListAll returns every menu entry ordered by day index
func (r *Repository) ListAll() ([]Entry, error) {
	rows, err := r.db.Query(`
		SELECT id, day, date, menu
		FROM menus
		ORDER BY day
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Avoid a nil slice in the JSON response
	entries := []Entry{}
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Day, &e.Date, &e.Menu); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// GetByDay returns the entry whose stored day field matches, or nil
func (r *Repository) GetByDay(day int) (*Entry, error) {
	var e Entry
	err := r.db.QueryRow(`
		SELECT id, day, date, menu
		FROM menus WHERE day = ?
	`, day).Scan(&e.ID, &e.Day, &e.Date, &e.Menu)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// GetByDate returns the entry for a calendar date, or nil
func (r *Repository) GetByDate(date string) (*Entry, error) {
	var e Entry
	err := r.db.QueryRow(`
		SELECT id, day, date, menu
		FROM menus WHERE date = ?
	`, date).Scan(&e.ID, &e.Day, &e.Date, &e.Menu)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &e, nil
}

// Upsert inserts or replaces the entry for a date. When day is nil the
// next free index (max existing + 1, or 1 on an empty table) is
// assigned before the write.
func (r *Repository) Upsert(date, menuText string, day *int) (*Entry, error) {
	assigned := 0
	if day != nil {
		assigned = *day
	} else {
		if err := r.db.QueryRow("SELECT COALESCE(MAX(day), 0) + 1 FROM menus").Scan(&assigned); err != nil {
			return nil, err
		}
	}

	_, err := r.db.Exec(`
		INSERT INTO menus (day, date, menu) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET day = excluded.day, menu = excluded.menu
	`, assigned, date, menuText)
	if err != nil {
		return nil, err
	}

	return r.GetByDate(date)
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
