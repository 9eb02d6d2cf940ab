package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/izzypositivetech-001/Attendifybackend/internal/domain/attendance"
	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
	"github.com/izzypositivetech-001/Attendifybackend/internal/timezone"
)

func TestMarkAttendanceDayCycle(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Ada Lovelace", "ada@acme.io", "EMP-001", "Engineering")

	uc := NewMarkAttendance(repo, disp, "UTC")
	ctx := context.Background()

	// First call of the day creates the record.
	res, err := uc.Execute(ctx, MarkInput{EmployeeID: emp.ID})
	require.NoError(t, err)
	assert.False(t, res.CheckedOut)
	assert.Equal(t, string(domain.StatusPresent), res.Attendance.Status)
	assert.Nil(t, res.Attendance.CheckOutTime)
	assert.Nil(t, res.Attendance.Employee)
	assert.True(t, res.Attendance.Date.Equal(timezone.DayOf(res.Attendance.CheckInTime)))

	// Second call closes it.
	res2, err := uc.Execute(ctx, MarkInput{EmployeeID: emp.ID, Note: "left early"})
	require.NoError(t, err)
	assert.True(t, res2.CheckedOut)
	require.NotNil(t, res2.Attendance.CheckOutTime)
	assert.GreaterOrEqual(t, res2.Attendance.WorkHours, 0.0)
	assert.Equal(t, "left early", res2.Attendance.Note)
	assert.Equal(t, res.Attendance.ID, res2.Attendance.ID)

	// Third call is a conflict.
	_, err = uc.Execute(ctx, MarkInput{EmployeeID: emp.ID})
	assert.True(t, httperr.IsBusiness(err, "already_checked_out"))

	// Exactly one row for the day.
	var n int64
	require.NoError(t, db.Model(&models.Attendance{}).Count(&n).Error)
	assert.EqualValues(t, 1, n)
}

func TestMarkAttendanceStatusOverride(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Grace Hopper", "grace@acme.io", "EMP-002", "Engineering")

	uc := NewMarkAttendance(repo, disp, "UTC")

	res, err := uc.Execute(context.Background(), MarkInput{
		EmployeeID: emp.ID,
		Status:     string(domain.StatusLate),
		Note:       "traffic",
	})
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusLate), res.Attendance.Status)
	assert.Equal(t, "traffic", res.Attendance.Note)
}

func TestMarkAttendanceInvalidStatus(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Alan Turing", "alan@acme.io", "EMP-003", "Research")

	uc := NewMarkAttendance(repo, disp, "UTC")

	_, err := uc.Execute(context.Background(), MarkInput{
		EmployeeID: emp.ID,
		Status:     "Sleeping",
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestMarkAttendanceUnknownEmployee(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)

	uc := NewMarkAttendance(repo, disp, "UTC")

	_, err := uc.Execute(context.Background(), MarkInput{EmployeeID: 999})
	assert.True(t, httperr.IsBusiness(err, "employee_not_found"))
}
