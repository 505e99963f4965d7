package reservation

import (
	"database/sql"
	"strings"
	"time"
)

// Store is the collection surface the service and handlers depend on.
// *Repository is the sqlite implementation.
type Store interface {
	Insert(r *Reservation) error
	ListAll() ([]Reservation, error)
	ListByDate(date string) ([]Reservation, error)
	FindByPhoneAndDate(phone, date string) (*Reservation, error)
	Update(req UpdateRequest) error
	Delete(id string) error
}

type Repository struct {
	db *sql.DB
}

// NewRepository creates a new reservation repository
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert persists one reservation
func (r *Repository) Insert(rsv *Reservation) error {
	_, err := r.db.Exec(`
		INSERT INTO reservations (id, code, name, phone, people, type, date, day, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rsv.ID, rsv.Code, rsv.Name, rsv.Phone, rsv.People, rsv.Type, rsv.Date, rsv.Day, rsv.CreatedAt.UTC().Format(time.RFC3339))
	return err
}

func scanReservation(scan func(dest ...any) error) (*Reservation, error) {
	var rsv Reservation
	var day sql.NullInt64
	var createdAt string
	if err := scan(&rsv.ID, &rsv.Code, &rsv.Name, &rsv.Phone, &rsv.People, &rsv.Type, &rsv.Date, &day, &createdAt); err != nil {
		return nil, err
	}
	rsv.Day = int(day.Int64)
	// Timestamps from before the created_at column are empty strings
	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		rsv.CreatedAt = t
	}
	return &rsv, nil
}

const selectColumns = "id, code, name, phone, people, type, date, day, created_at"

// ListAll returns every reservation, newest first
func (r *Repository) ListAll() ([]Reservation, error) {
	rows, err := r.db.Query(`
		SELECT ` + selectColumns + `
		FROM reservations
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []Reservation{}
	for rows.Next() {
		rsv, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *rsv)
	}
	return reservations, rows.Err()
}

// ListByDate returns the reservations booked for one calendar date
func (r *Repository) ListByDate(date string) ([]Reservation, error) {
	rows, err := r.db.Query(`
		SELECT `+selectColumns+`
		FROM reservations
		WHERE date = ?
		ORDER BY created_at DESC
	`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []Reservation{}
	for rows.Next() {
		rsv, err := scanReservation(rows.Scan)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, *rsv)
	}
	return reservations, rows.Err()
}

// FindByPhoneAndDate returns an existing booking for the pair, or nil
func (r *Repository) FindByPhoneAndDate(phone, date string) (*Reservation, error) {
	row := r.db.QueryRow(`
		SELECT `+selectColumns+`
		FROM reservations
		WHERE phone = ? AND date = ?
		LIMIT 1
	`, phone, date)
	rsv, err := scanReservation(row.Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rsv, nil
}

// Update applies only the provided fields. ErrNotFound when the id
// matches nothing or the request carries no fields at all.
func (r *Repository) Update(req UpdateRequest) error {
	sets := []string{}
	args := []any{}
	if req.Name != "" {
		sets = append(sets, "name = ?")
		args = append(args, req.Name)
	}
	if req.Phone != "" {
		sets = append(sets, "phone = ?")
		args = append(args, req.Phone)
	}
	if req.People != nil {
		sets = append(sets, "people = ?")
		args = append(args, *req.People)
	}
	if req.Type != "" {
		sets = append(sets, "type = ?")
		args = append(args, req.Type)
	}
	if req.Date != "" {
		sets = append(sets, "date = ?")
		args = append(args, req.Date)
	}
	if len(sets) == 0 {
		return ErrNotFound
	}

	args = append(args, req.ID)
	res, err := r.db.Exec("UPDATE reservations SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes one reservation by id
func (r *Repository) Delete(id string) error {
	res, err := r.db.Exec("DELETE FROM reservations WHERE id = ?", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
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
