package attendance

import (
	"context"

	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
)

type GetAttendance struct {
	repo domain.Repository
}

func NewGetAttendance(repo domain.Repository) *GetAttendance {
	return &GetAttendance{repo: repo}
}

func (uc *GetAttendance) Execute(
	ctx context.Context,
	id uint,
) (*models.Attendance, error) {

	rec, err := uc.repo.Get(ctx, id)
	if err != nil {
		if httperr.IsNotFound(err) {
			return nil, httperr.ErrBusiness("attendance_not_found")
		}
		return nil, err
	}
	return rec, nil
}
