package common

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ErrorBody is the shape every failed request returns. Details is
// omitted when there is nothing safe to show the caller.
type ErrorBody struct {
	Error     string `json:"error"`
	Details   string `json:"details,omitempty"`
	RequestID string `json:"requestId"`
}

func NewErrorBody(message, details string) ErrorBody {
	return ErrorBody{
		Error:     message,
		Details:   details,
		RequestID: uuid.New().String(),
	}
}

// Fail writes an error body with the given status.
func Fail(c *gin.Context, status int, message, details string) {
	c.JSON(status, NewErrorBody(message, details))
}

// FailInternal hides the underlying error behind a generic message.
// The real cause is for logs only.
func FailInternal(c *gin.Context, message string) {
	c.JSON(http.StatusInternalServerError, NewErrorBody(message, ""))
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
