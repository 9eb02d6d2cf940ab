package attendance

import (
	"math"
	"time"

	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
	"github.com/izzypositivetech-001/Attendifybackend/internal/timezone"
)

// ===============================
// Domain Actions
// ===============================

// CheckIn builds the day's record for an employee. The date is pinned to
// local midnight so the (employee, date) unique index holds per calendar day.
func CheckIn(employeeID uint, now time.Time, status Status, note string) *models.Attendance {
	return &models.Attendance{
		EmployeeID:  employeeID,
		Date:        timezone.DayOf(now),
		CheckInTime: now,
		Status:      string(status),
		Note:        note,
	}
}

// CheckOut closes the day's record exactly once.
func CheckOut(a *models.Attendance, now time.Time, note string) error {
	if a.CheckOutTime != nil {
		return httperr.ErrBusiness("already_checked_out")
	}

	hours, err := WorkHours(a.CheckInTime, now)
	if err != nil {
		return err
	}

	a.CheckOutTime = &now
	a.WorkHours = hours
	if note != "" {
		a.Note = note
	}
	return nil
}

// Recompute re-derives the work hours after an administrative time
// correction. A record without a checkout is left untouched.
func Recompute(a *models.Attendance) error {
	if a.CheckOutTime == nil {
		return nil
	}

	hours, err := WorkHours(a.CheckInTime, *a.CheckOutTime)
	if err != nil {
		return err
	}

	a.WorkHours = hours
	return nil
}

// WorkHours returns the checkIn→checkOut duration in fractional hours,
// rounded to 2 decimals. A checkout earlier than the check-in is rejected.
func WorkHours(checkIn, checkOut time.Time) (float64, error) {
	d := checkOut.Sub(checkIn)
	if d < 0 {
		return 0, httperr.ErrBusiness("invalid_checkout_time")
	}
	return math.Round(d.Hours()*100) / 100, nil
}
