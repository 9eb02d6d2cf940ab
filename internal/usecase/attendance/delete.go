package attendance

import (
	"context"

	"github.com/izzypositivetech-001/Attendifybackend/internal/audit"
	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
)

type DeleteAttendance struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAttendance(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAttendance {
	return &DeleteAttendance{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAttendance) Execute(
	ctx context.Context,
	id uint,
	actorID *uint,
) error {

	if err := uc.repo.Delete(ctx, id); err != nil {
		if httperr.IsNotFound(err) {
			return httperr.ErrBusiness("attendance_not_found")
		}
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   actorID,
		Action:   "attendance_deleted",
		Entity:   "attendance",
		EntityID: &id,
	})

	return nil
}
