package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/dto"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
)

type AttendanceGormRepository struct {
	db *gorm.DB
}

func NewAttendanceGormRepository(db *gorm.DB) *AttendanceGormRepository {
	return &AttendanceGormRepository{db: db}
}

// --------------------------------------------------
// Employee
// --------------------------------------------------

func (r *AttendanceGormRepository) GetEmployee(
	ctx context.Context,
	id uint,
) (*models.Employee, error) {

	var emp models.Employee
	if err := r.db.WithContext(ctx).First(&emp, id).Error; err != nil {
		return nil, err
	}
	return &emp, nil
}

func (r *AttendanceGormRepository) CountActiveEmployees(
	ctx context.Context,
	department string,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Employee{}).
		Where("is_active = ?", true)

	if department != "" {
		q = q.Where("department = ?", department)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// --------------------------------------------------
// Attendance (day cycle)
// --------------------------------------------------

func (r *AttendanceGormRepository) FindByEmployeeAndDay(
	ctx context.Context,
	employeeID uint,
	dayStart time.Time,
	dayEnd time.Time,
) (*models.Attendance, error) {

	var a models.Attendance
	if err := r.db.WithContext(ctx).
		Where(
			"employee_id = ? AND date >= ? AND date < ?",
			employeeID, dayStart, dayEnd,
		).
		First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceGormRepository) Create(
	ctx context.Context,
	a *models.Attendance,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Create(a).Error
}

func (r *AttendanceGormRepository) Save(
	ctx context.Context,
	a *models.Attendance,
) error {
	return r.db.WithContext(ctx).
		Omit(clause.Associations).
		Save(a).Error
}

// --------------------------------------------------
// Attendance (admin)
// --------------------------------------------------

func (r *AttendanceGormRepository) Get(
	ctx context.Context,
	id uint,
) (*models.Attendance, error) {

	var a models.Attendance
	if err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&a, id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *AttendanceGormRepository) Delete(
	ctx context.Context,
	id uint,
) error {

	tx := r.db.WithContext(ctx).Delete(&models.Attendance{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// --------------------------------------------------
// Reporting
// --------------------------------------------------

func (r *AttendanceGormRepository) listQuery(
	ctx context.Context,
	f domain.ListFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id")

	if f.EmployeeID != 0 {
		q = q.Where("attendances.employee_id = ?", f.EmployeeID)
	}
	if f.Start != nil {
		q = q.Where("attendances.check_in_time >= ?", *f.Start)
	}
	if f.End != nil {
		q = q.Where("attendances.check_in_time < ?", *f.End)
	}
	if f.Status != "" {
		q = q.Where("attendances.status = ?", f.Status)
	}
	if f.Department != "" {
		q = q.Where("employees.department = ?", f.Department)
	}

	return q
}

func (r *AttendanceGormRepository) List(
	ctx context.Context,
	f domain.ListFilter,
) ([]dto.AttendanceRecordDTO, int64, error) {

	var total int64
	if err := r.listQuery(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	records := []dto.AttendanceRecordDTO{}
	if err := r.listQuery(ctx, f).
		Select(`attendances.id,
			attendances.employee_id,
			attendances.date,
			attendances.check_in_time,
			attendances.check_out_time,
			attendances.work_hours,
			attendances.status,
			attendances.note,
			employees.name AS employee_name,
			employees.employee_code,
			employees.department`).
		Order("attendances.check_in_time DESC").
		Limit(f.Limit).
		Offset((f.Page - 1) * f.Limit).
		Scan(&records).Error; err != nil {
		return nil, 0, err
	}

	return records, total, nil
}

func (r *AttendanceGormRepository) statsQuery(
	ctx context.Context,
	f domain.StatsFilter,
) *gorm.DB {

	q := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where(
			"attendances.check_in_time >= ? AND attendances.check_in_time < ?",
			f.Start, f.End,
		)

	if f.Department != "" {
		q = q.Where("employees.department = ?", f.Department)
	}

	return q
}

func (r *AttendanceGormRepository) StatusCounts(
	ctx context.Context,
	f domain.StatsFilter,
) ([]dto.StatusCountDTO, error) {

	counts := []dto.StatusCountDTO{}
	if err := r.statsQuery(ctx, f).
		Select("attendances.status AS status, count(*) AS count").
		Group("attendances.status").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *AttendanceGormRepository) DailyCounts(
	ctx context.Context,
	f domain.StatsFilter,
) ([]dto.DailyCountDTO, error) {

	var rows []struct {
		Date  time.Time
		Count int64
	}
	if err := r.statsQuery(ctx, f).
		Select("attendances.date AS date, count(*) AS count").
		Group("attendances.date").
		Order("attendances.date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make([]dto.DailyCountDTO, 0, len(rows))
	for _, row := range rows {
		counts = append(counts, dto.DailyCountDTO{
			Day:   row.Date.Format("2006-01-02"),
			Count: row.Count,
		})
	}
	return counts, nil
}

func (r *AttendanceGormRepository) DepartmentCounts(
	ctx context.Context,
	f domain.StatsFilter,
) ([]dto.DepartmentCountDTO, error) {

	counts := []dto.DepartmentCountDTO{}
	if err := r.statsQuery(ctx, f).
		Select("employees.department AS department, count(*) AS count").
		Group("employees.department").
		Scan(&counts).Error; err != nil {
		return nil, err
	}
	return counts, nil
}

func (r *AttendanceGormRepository) CountCheckedInBetween(
	ctx context.Context,
	start time.Time,
	end time.Time,
) (int64, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Attendance{}).
		Where("check_in_time >= ? AND check_in_time < ?", start, end).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
