package menu

import (
	"log"
	"net/http"
	"strconv"
	"strings"
	"time"

	"reservations/internal/v0/common"

	"github.com/gin-gonic/gin"
)

// Handler holds the Store so the endpoints can read and write menus
type Handler struct {
	store Store
}

func NewHandler(store Store) *Handler {
	return &Handler{store: store}
}

// GetMenu serves GET /menu. With no query parameters it returns every
// entry; ?day=N or ?date=YYYY-MM-DD narrow it to one.
func (h *Handler) GetMenu(c *gin.Context) {
	dayParameter := c.Query("day")
	dateParameter := c.Query("date")

	if dayParameter != "" {
		day, err := strconv.Atoi(dayParameter)
		if err != nil || day < 1 {
			common.Fail(c, http.StatusBadRequest, "Invalid day. Please use a positive integer", "")
			return
		}
		entry, err := h.store.GetByDay(day)
		if err != nil {
			log.Printf("Error fetching menu by day: %v", err)
			common.FailInternal(c, "Error fetching menu")
			return
		}
		if entry == nil {
			common.Fail(c, http.StatusNotFound, "Menu not found for this day", "")
			return
		}
		c.JSON(http.StatusOK, entry)
		return
	}

	if dateParameter != "" {
		if _, err := time.Parse("2006-01-02", dateParameter); err != nil {
			common.Fail(c, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD", "")
			return
		}
		entry, err := h.store.GetByDate(dateParameter)
		if err != nil {
			log.Printf("Error fetching menu by date: %v", err)
			common.FailInternal(c, "Error fetching menu")
			return
		}
		if entry == nil {
			common.Fail(c, http.StatusNotFound, "Menu not found for this date", "")
			return
		}
		c.JSON(http.StatusOK, entry)
		return
	}

	entries, err := h.store.ListAll()
	if err != nil {
		log.Printf("Error fetching menus: %v", err)
		common.FailInternal(c, "Error fetching menu")
		return
	}
	c.JSON(http.StatusOK, entries)
}

// PutMenu serves PUT /menu: upsert one entry keyed by date.
func (h *Handler) PutMenu(c *gin.Context) {
	var req UpsertRequest
	if err := common.BindStrict(c, &req); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}

	req.Date = strings.TrimSpace(req.Date)
	req.Menu = strings.TrimSpace(req.Menu)
	if req.Date == "" || req.Menu == "" {
		common.Fail(c, http.StatusBadRequest, "All fields (date, menu) are required", "")
		return
	}
	if _, err := time.Parse("2006-01-02", req.Date); err != nil {
		common.Fail(c, http.StatusBadRequest, "Invalid date format. Please use YYYY-MM-DD", "")
		return
	}
	if req.Day != nil && *req.Day < 1 {
		common.Fail(c, http.StatusBadRequest, "Day must be a positive integer", "")
		return
	}

	entry, err := h.store.Upsert(req.Date, req.Menu, req.Day)
	if err != nil {
		log.Printf("Error updating menu: %v", err)
		common.FailInternal(c, "Error updating menu")
		return
	}
	c.JSON(http.StatusOK, entry)
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
