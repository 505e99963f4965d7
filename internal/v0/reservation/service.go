package reservation

import (
	"fmt"
	"strings"
	"time"

	"reservations/internal/v0/menu"

	"github.com/google/uuid"
)

// Clock lets tests pin the wall clock.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the real wall clock.
func SystemClock() Clock { return systemClock{} }

// Service validates and persists reservation requests. It owns the
// window gate and the day resolution; the stores only move data.
type Service struct {
	menus  menu.Store
	store  Store
	policy Policy
	clock  Clock
}

// NewService creates a new reservation service. A nil clock means the
// system clock.
func NewService(menus menu.Store, store Store, policy Policy, clock Clock) *Service {
	if clock == nil {
		clock = systemClock{}
	}
	return &Service{menus: menus, store: store, policy: policy, clock: clock}
}

// Policy exposes the active policy for presentation endpoints.
func (s *Service) Policy() Policy { return s.policy }

// Window evaluates the gate right now. Display only; Create runs its
// own authoritative check.
func (s *Service) Window() WindowStatus {
	return s.policy.Window(s.clock.Now())
}

// TargetDate is the date a self-service booking made now would land on.
func (s *Service) TargetDate() string {
	return TargetDate(s.clock.Now())
}

// Create handles one reservation request end to end: validation, the
// window gate, day resolution, the duplicate check, and exactly one
// insert on success.
func (s *Service) Create(req CreateRequest) (*Reservation, error) {
	name := strings.TrimSpace(req.Name)
	phone := strings.TrimSpace(req.Phone)
	if name == "" || phone == "" || req.People == 0 || strings.TrimSpace(req.Type) == "" {
		return nil, newValidationError("all fields (name, phone, people, type) are required")
	}
	if req.People < 0 {
		return nil, newValidationError("people must be a positive number")
	}
	seating, ok := NormalizeType(req.Type)
	if !ok {
		return nil, newValidationError("type must be one of Dine-In, Takeaway, Delivery")
	}

	now := s.clock.Now()
	admin := req.IsAdmin && req.Date != ""

	if !admin && s.policy.EnforceWindowOnSubmit {
		if ws := s.policy.Window(now); !ws.CanReserve {
			return nil, ErrWindowClosed
		}
	}

	entries, err := s.menus.ListAll()
	if err != nil {
		return nil, fmt.Errorf("loading menus: %w", err)
	}

	opts := ResolveOptions{}
	if admin {
		opts.Date = req.Date
	}
	resolved, err := Resolve(now, opts, entries)
	if err != nil {
		return nil, err
	}

	if !admin {
		existing, err := s.store.FindByPhoneAndDate(phone, resolved.Date)
		if err != nil {
			return nil, fmt.Errorf("checking existing reservations: %w", err)
		}
		if existing != nil {
			return nil, ErrDuplicate
		}
	}

	code, err := NewCode()
	if err != nil {
		return nil, fmt.Errorf("generating confirmation code: %w", err)
	}

	rsv := &Reservation{
		ID:        uuid.New().String(),
		Code:      code,
		Name:      name,
		Phone:     phone,
		People:    req.People,
		Type:      seating,
		Date:      resolved.Date,
		Day:       resolved.Day,
		CreatedAt: now,
	}
	if err := s.store.Insert(rsv); err != nil {
		return nil, fmt.Errorf("saving reservation: %w", err)
	}
	return rsv, nil
}

// Update applies a partial edit. People, when provided, must stay
// positive; dates must parse.
func (s *Service) Update(req UpdateRequest) error {
	if strings.TrimSpace(req.ID) == "" {
		return newValidationError("reservation id is required")
	}
	if req.People != nil && *req.People < 1 {
		return newValidationError("people must be a positive number")
	}
	if req.Type != "" {
		seating, ok := NormalizeType(req.Type)
		if !ok {
			return newValidationError("type must be one of Dine-In, Takeaway, Delivery")
		}
		req.Type = seating
	}
	if req.Date != "" {
		if _, err := time.Parse(DateLayout, req.Date); err != nil {
			return newValidationError("invalid date format, use YYYY-MM-DD")
		}
	}
	return s.store.Update(req)
}

// Delete removes one reservation by id.
func (s *Service) Delete(id string) error {
	if strings.TrimSpace(id) == "" {
		return newValidationError("reservation id is required")
	}
	return s.store.Delete(id)
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
