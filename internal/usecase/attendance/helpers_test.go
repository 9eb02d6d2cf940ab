package attendance

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/izzypositivetech-001/Attendifybackend/internal/audit"
	dbpkg "github.com/izzypositivetech-001/Attendifybackend/internal/db"
	"github.com/izzypositivetech-001/Attendifybackend/internal/infra/repository"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
	"github.com/izzypositivetech-001/Attendifybackend/internal/timezone"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// an in-memory sqlite database lives per connection
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(db))
	return db
}

func newDeps(db *gorm.DB) (*repository.AttendanceGormRepository, *audit.Dispatcher) {
	return repository.NewAttendanceGormRepository(db),
		audit.NewDispatcher(audit.New(db))
}

func seedEmployee(t *testing.T, db *gorm.DB, name, email, code, department string) *models.Employee {
	t.Helper()

	emp := &models.Employee{
		Name:         name,
		Email:        email,
		Position:     "Engineer",
		Department:   department,
		EmployeeCode: code,
		IsActive:     true,
	}
	require.NoError(t, db.Create(emp).Error)
	return emp
}

func seedRecord(
	t *testing.T,
	db *gorm.DB,
	employeeID uint,
	checkIn time.Time,
	checkOut *time.Time,
	status string,
) *models.Attendance {
	t.Helper()

	rec := &models.Attendance{
		EmployeeID:   employeeID,
		Date:         timezone.DayOf(checkIn),
		CheckInTime:  checkIn,
		CheckOutTime: checkOut,
		Status:       status,
	}
	if checkOut != nil {
		rec.WorkHours = checkOut.Sub(checkIn).Hours()
	}
	require.NoError(t, db.Create(rec).Error)
	return rec
}
