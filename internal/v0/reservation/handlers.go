package reservation

import (
	"errors"
	"log"
	"net/http"
	"time"

	"reservations/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler wires the service and the store into the HTTP surface
type Handler struct {
	svc   *Service
	store Store
}

func NewHandler(svc *Service, store Store) *Handler {
	return &Handler{svc: svc, store: store}
}

// failFrom maps a service error onto the HTTP taxonomy.
func failFrom(c *gin.Context, err error) {
	switch {
	case IsValidation(err):
		common.Fail(c, http.StatusBadRequest, err.Error(), "")
	case errors.Is(err, ErrMenuNotFound):
		common.Fail(c, http.StatusBadRequest, "Menu not found for this day", "")
	case errors.Is(err, ErrWindowClosed):
		common.Fail(c, http.StatusBadRequest, "Reservations are closed right now", "")
	case errors.Is(err, ErrDuplicate):
		common.Fail(c, http.StatusBadRequest, "A reservation already exists for this phone number and date", "")
	case errors.Is(err, ErrNotFound):
		common.Fail(c, http.StatusNotFound, "Reservation not found", "")
	default:
		log.Printf("Reservation request failed: %v", err)
		common.FailInternal(c, "Failed to process reservation")
	}
}

// PostReservation serves POST /reservations per the service rules.
func (h *Handler) PostReservation(c *gin.Context) {
	var req CreateRequest
	if err := common.BindStrict(c, &req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	rsv, err := h.svc.Create(req)
	if err != nil {
		failFrom(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":   rsv.ID,
		"code": rsv.Code,
		"day":  rsv.Day,
		"date": rsv.Date,
	})
}

// GetReservations serves GET /reservations, optionally date-filtered.
func (h *Handler) GetReservations(c *gin.Context) {
	dateParameter := c.Query("date")

	var (
		reservations []Reservation
		err          error
	)
	if dateParameter != "" {
		if _, perr := time.Parse(DateLayout, dateParameter); perr != nil {
			common.Fail(c, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD", "")
			return
		}
		reservations, err = h.store.ListByDate(dateParameter)
	} else {
		reservations, err = h.store.ListAll()
	}
	if err != nil {
		log.Printf("Error fetching reservations: %v", err)
		common.FailInternal(c, "Failed to fetch reservations")
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// PutReservation serves PUT /reservations: partial update by id.
func (h *Handler) PutReservation(c *gin.Context) {
	var req UpdateRequest
	if err := common.BindStrict(c, &req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.svc.Update(req); err != nil {
		failFrom(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation updated successfully"})
}

// DeleteReservation serves DELETE /reservations by id.
func (h *Handler) DeleteReservation(c *gin.Context) {
	var req DeleteRequest
	if err := common.BindStrict(c, &req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	if err := h.svc.Delete(req.ID); err != nil {
		failFrom(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Reservation deleted successfully"})
}

// GetWindow serves GET /window, the countdown the reservation page
// polls every minute. Submission does not trust it; Create re-checks.
func (h *Handler) GetWindow(c *gin.Context) {
	ws := h.svc.Window()
	resp := gin.H{
		"canReserve":  ws.CanReserve,
		"state":       ws.State,
		"message":     ws.Message,
		"secondsLeft": int(ws.Countdown.Seconds()),
		"targetDate":  h.svc.TargetDate(),
	}
	if season := h.svc.Policy().SeasonStart; !season.IsZero() {
		resp["seasonStart"] = season.Format(DateLayout)
	}
	c.JSON(http.StatusOK, resp)
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
