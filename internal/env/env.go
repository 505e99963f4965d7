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
package env

import (
	"os"
	"strconv"
	"time"
)

func GetEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func GetInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// GetDate parses a YYYY-MM-DD variable. The zero time means unset.
func GetDate(key string) time.Time {
	if value, exists := os.LookupEnv(key); exists {
		if date, err := time.Parse("2006-01-02", value); err == nil {
			return date
		}
	}
	return time.Time{}
}

// Recognized environment variable keys
const (
	// Persistence
	EnvDatabasePath = "DATABASE_PATH"

	// Server
	EnvListenAddr = "LISTEN_ADDR"

	// Admin gate
	EnvAdminKey = "ADMIN_KEY"

	// Reservation policy
	EnvOpenHour      = "RESERVATION_OPEN_HOUR"
	EnvCloseHour     = "RESERVATION_CLOSE_HOUR"
	EnvCloseMinute   = "RESERVATION_CLOSE_MINUTE"
	EnvEnforceWindow = "RESERVATION_ENFORCE_WINDOW"
	EnvSeasonStart   = "SEASON_START"
)
