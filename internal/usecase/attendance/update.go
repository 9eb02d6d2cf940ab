package attendance

import (
	"context"
	"time"

	"github.com/izzypositivetech-001/Attendifybackend/internal/audit"
	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
)

// UpdateInput carries administrative corrections. Nil means "leave as is";
// a non-nil pointer applies the value, empty or not.
type UpdateInput struct {
	ID uint

	Status       *string
	CheckInTime  *time.Time
	CheckOutTime *time.Time
	Note         *string

	ActorID *uint
}

type UpdateAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAttendance {
	return &UpdateAttendance{
		repo:  repo,
		audit: audit,
	}
}

func (uc *UpdateAttendance) Execute(
	ctx context.Context,
	in UpdateInput,
) (*models.Attendance, error) {

	rec, err := uc.repo.Get(ctx, in.ID)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("attendance_not_found")
		}
		return nil, err
	}

	if in.Status != nil {
		if !domain.IsValidStatus(domain.Status(*in.Status)) {
			return nil, httperr.ErrBusiness("invalid_status")
		}
		rec.Status = *in.Status
	}

	if in.CheckInTime != nil {
		rec.CheckInTime = *in.CheckInTime
	}

	if in.CheckOutTime != nil {
		rec.CheckOutTime = in.CheckOutTime
	}

	if in.Note != nil {
		rec.Note = *in.Note
	}

	// Either timestamp moving invalidates the derived hours.
	if in.CheckInTime != nil || in.CheckOutTime != nil {
		if err := domain.Recompute(rec); err != nil {
			return nil, err
		}
	}

	if err := uc.repo.Save(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   in.ActorID,
		Action:   "attendance_updated",
		Entity:   "attendance",
		EntityID: &rec.ID,
	})

	return rec, nil
}
