package services

import (
	"math"
	"time"

	"vehicle-rental-api/apperr"
	"vehicle-rental-api/models"
)

const dateLayout = "2006-01-02"

// Requester identifies the authenticated caller of a service operation.
type Requester struct {
	ID   uint
	Role models.UserRole
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation(dateLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, apperr.BadRequest("Invalid date format. Use YYYY-MM-DD")
	}
	return t, nil
}

// daysBetween counts rental days, rounding any partial day up.
func daysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// todayUTC returns the current UTC calendar day at midnight.
func todayUTC() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}
