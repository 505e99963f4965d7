package reservation

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("opening sqlite: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE reservations (
			id TEXT PRIMARY KEY,
			code TEXT NOT NULL,
			name TEXT NOT NULL,
			phone TEXT NOT NULL,
			people INTEGER NOT NULL,
			type TEXT NOT NULL,
			date TEXT NOT NULL,
			day INTEGER,
			created_at TEXT NOT NULL
		)
	`)
	if err != nil {
		t.Fatalf("creating schema: %v", err)
	}
	return db
}

func sample(id, phone, date string) *Reservation {
	return &Reservation{
		ID:        id,
		Code:      "rsv_test" + id,
		Name:      "Omar",
		Phone:     phone,
		People:    4,
		Type:      "Dine-In",
		Date:      date,
		Day:       2,
		CreatedAt: time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC),
	}
}

func TestRepositoryInsertAndList(t *testing.T) {
	repo := NewRepository(newTestDB(t))

	if err := repo.Insert(sample("a", "555-0101", "2026-03-11")); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if err := repo.Insert(sample("b", "555-0202", "2026-03-12")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Name != "Omar" || all[0].People != 4 || all[0].Day != 2 {
		t.Errorf("round-tripped reservation = %+v", all[0])
	}
	if all[0].CreatedAt.IsZero() {
		t.Error("createdAt not round-tripped")
	}

	byDate, err := repo.ListByDate("2026-03-12")
	if err != nil {
		t.Fatalf("ListByDate: %v", err)
	}
	if len(byDate) != 1 || byDate[0].ID != "b" {
		t.Errorf("ListByDate = %+v", byDate)
	}
}

func TestRepositoryFindByPhoneAndDate(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	if err := repo.Insert(sample("a", "555-0101", "2026-03-11")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	found, err := repo.FindByPhoneAndDate("555-0101", "2026-03-11")
	if err != nil {
		t.Fatalf("FindByPhoneAndDate: %v", err)
	}
	if found == nil || found.ID != "a" {
		t.Errorf("found = %+v", found)
	}

	// Same phone, another date
	if miss, err := repo.FindByPhoneAndDate("555-0101", "2026-03-12"); err != nil || miss != nil {
		t.Errorf("other date = %+v, %v; want nil, nil", miss, err)
	}
}

func TestRepositoryUpdate(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	if err := repo.Insert(sample("a", "555-0101", "2026-03-11")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	people := 6
	err := repo.Update(UpdateRequest{ID: "a", Name: "Omar K.", People: &people})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}

	all, _ := repo.ListAll()
	if all[0].Name != "Omar K." || all[0].People != 6 {
		t.Errorf("after update = %+v", all[0])
	}
	// Untouched fields survive a partial update
	if all[0].Phone != "555-0101" || all[0].Date != "2026-03-11" {
		t.Errorf("partial update clobbered other fields: %+v", all[0])
	}

	if err := repo.Update(UpdateRequest{ID: "missing", Name: "X"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
	if err := repo.Update(UpdateRequest{ID: "a"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty field set: err = %v, want ErrNotFound", err)
	}
}

func TestRepositoryDelete(t *testing.T) {
	repo := NewRepository(newTestDB(t))
	if err := repo.Insert(sample("a", "555-0101", "2026-03-11")); err != nil {
		t.Fatalf("Insert: %v", err)
	}

	if err := repo.Delete("missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown id: err = %v, want ErrNotFound", err)
	}
	if err := repo.Delete("a"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	all, err := repo.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("%d reservations remain after delete", len(all))
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
