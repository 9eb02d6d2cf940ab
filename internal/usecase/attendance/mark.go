package attendance

import (
	"context"

	"github.com/izzypositivetech-001/Attendifybackend/internal/audit"
	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
	"github.com/izzypositivetech-001/Attendifybackend/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type MarkInput struct {
	EmployeeID uint
	Status     string
	Note       string

	ActorID *uint
}

type MarkResult struct {
	Attendance *models.Attendance
	CheckedOut bool
}

// ======================================================
// USE CASE
// ======================================================

// MarkAttendance runs the daily check-in / check-out cycle: the first call
// of the day creates the record, the second closes it, any further call is
// a conflict.
type MarkAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	tz    string
}

func NewMarkAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
	tz string,
) *MarkAttendance {
	return &MarkAttendance{
		repo:  repo,
		audit: audit,
		tz:    tz,
	}
}

func (uc *MarkAttendance) Execute(
	ctx context.Context,
	in MarkInput,
) (*MarkResult, error) {

	if _, err := uc.repo.GetEmployee(ctx, in.EmployeeID); err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("employee_not_found")
		}
		return nil, err
	}

	status, err := domain.ValidateStatus(in.Status)
	if err != nil {
		return nil, err
	}

	now := timezone.NowIn(uc.tz)
	dayStart, dayEnd := timezone.DayBounds(now)

	rec, err := uc.repo.FindByEmployeeAndDay(ctx, in.EmployeeID, dayStart, dayEnd)
	if err != nil && !httperr.IsNotFound(err) {
		return nil, err
	}

	// --------------------------------------------------
	// Existing record: close the cycle exactly once.
	// --------------------------------------------------
	if err == nil {
		if err := domain.CheckOut(rec, now, in.Note); err != nil {
			return nil, err
		}
		if err := uc.repo.Save(ctx, rec); err != nil {
			return nil, err
		}

		uc.audit.Dispatch(audit.Event{
			UserID:   in.ActorID,
			Action:   "attendance_checked_out",
			Entity:   "attendance",
			EntityID: &rec.ID,
		})

		return &MarkResult{Attendance: rec, CheckedOut: true}, nil
	}

	// --------------------------------------------------
	// First mark of the day.
	// --------------------------------------------------
	rec = domain.CheckIn(in.EmployeeID, now, status, in.Note)

	if err := uc.repo.Create(ctx, rec); err != nil {
		// Lost the race against a concurrent check-in; the unique
		// (employee, day) index turned it into a duplicate.
		if httperr.IsDuplicate(err) {
			return nil, httperr.ErrBusiness("attendance_conflict")
		}
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "attendance_checked_in",
		Entity:   "attendance",
		EntityID: &rec.ID,
	})

	return &MarkResult{Attendance: rec, CheckedOut: false}, nil
}
