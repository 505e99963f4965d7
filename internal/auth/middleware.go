/*
This project is the backend API for a seasonal Ramadan pre-reservation system: daily iftar menus and dinner bookings.
Reservations API Copyright (C) 2025
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
    along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	// Headers
	HeaderAdminKey = "X-Admin-Key"

	// DefaultAdminKey matches the admin dashboard's built-in password.
	// Change it through the ADMIN_KEY environment variable.
	DefaultAdminKey = "admin"
)

// Middleware guards the admin surface. This is a plain shared-key
// compare, not real authentication.
type Middleware struct {
	adminKey string
}

// NewMiddleware creates a new middleware instance
func NewMiddleware(adminKey string) *Middleware {
	if adminKey == "" {
		adminKey = DefaultAdminKey
	}
	return &Middleware{adminKey: adminKey}
}

// RequireAdmin returns a middleware that checks the admin key header
func (m *Middleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAdminKey)
		if key == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "missing admin key header",
			})
			return
		}
		if key != m.adminKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error": "invalid admin key",
			})
			return
		}
		c.Next()
	}
}
