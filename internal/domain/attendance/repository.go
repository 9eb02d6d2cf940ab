package attendance

import (
	"context"
	"time"

	"github.com/izzypositivetech-001/Attendifybackend/internal/dto"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
)

// ListFilter narrows the paginated report. Zero values mean "no filter";
// the date range applies to CheckInTime and End is exclusive.
type ListFilter struct {
	EmployeeID uint
	Start      *time.Time
	End        *time.Time
	Status     string
	Department string

	Page  int
	Limit int
}

// StatsFilter scopes the aggregation queries.
type StatsFilter struct {
	Start      time.Time
	End        time.Time
	Department string
}

type Repository interface {
	// -------- Employee --------
	GetEmployee(
		ctx context.Context,
		id uint,
	) (*models.Employee, error)

	CountActiveEmployees(
		ctx context.Context,
		department string,
	) (int64, error)

	// -------- Attendance (day cycle) --------
	FindByEmployeeAndDay(
		ctx context.Context,
		employeeID uint,
		dayStart time.Time,
		dayEnd time.Time,
	) (*models.Attendance, error)

	Create(
		ctx context.Context,
		a *models.Attendance,
	) error

	Save(
		ctx context.Context,
		a *models.Attendance,
	) error

	// -------- Attendance (admin) --------
	Get(
		ctx context.Context,
		id uint,
	) (*models.Attendance, error)

	Delete(
		ctx context.Context,
		id uint,
	) error

	// -------- Reporting --------
	List(
		ctx context.Context,
		f ListFilter,
	) ([]dto.AttendanceRecordDTO, int64, error)

	StatusCounts(
		ctx context.Context,
		f StatsFilter,
	) ([]dto.StatusCountDTO, error)

	DailyCounts(
		ctx context.Context,
		f StatsFilter,
	) ([]dto.DailyCountDTO, error)

	DepartmentCounts(
		ctx context.Context,
		f StatsFilter,
	) ([]dto.DepartmentCountDTO, error)

	CountCheckedInBetween(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) (int64, error)
}
