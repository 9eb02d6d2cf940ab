package attendance

import (
	"context"
	"time"

	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/dto"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/timezone"
)

const (
	defaultPage  = 1
	defaultLimit = 10
	maxLimit     = 100
)

type ListInput struct {
	EmployeeID uint
	StartDate  string // 2006-01-02
	EndDate    string // 2006-01-02, inclusive of its full day
	Status     string
	Department string

	Page  int
	Limit int
}

type ListOutput struct {
	Records     []dto.AttendanceRecordDTO
	Count       int64
	TotalPages  int
	CurrentPage int
}

type ListAttendance struct {
	repo domain.Repository
	tz   string
}

func NewListAttendance(repo domain.Repository, tz string) *ListAttendance {
	return &ListAttendance{repo: repo, tz: tz}
}

func (uc *ListAttendance) Execute(
	ctx context.Context,
	in ListInput,
) (*ListOutput, error) {

	page := in.Page
	if page < 1 {
		page = defaultPage
	}

	limit := in.Limit
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	f := domain.ListFilter{
		EmployeeID: in.EmployeeID,
		Status:     in.Status,
		Department: in.Department,
		Page:       page,
		Limit:      limit,
	}

	loc := timezone.Location(uc.tz)

	if in.StartDate != "" {
		start, err := time.ParseInLocation("2006-01-02", in.StartDate, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		f.Start = &start
	}

	if in.EndDate != "" {
		end, err := time.ParseInLocation("2006-01-02", in.EndDate, loc)
		if err != nil {
			return nil, httperr.ErrBusiness("invalid_date")
		}
		// the end date covers its whole day
		endExcl := end.AddDate(0, 0, 1)
		f.End = &endExcl
	}

	records, total, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &ListOutput{
		Records:     records,
		Count:       total,
		TotalPages:  totalPages,
		CurrentPage: page,
	}, nil
}
