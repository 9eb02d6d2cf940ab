package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
)

func ptr[T any](v T) *T { return &v }

func TestUpdateAttendanceRecomputesWorkHours(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Ada Lovelace", "ada@acme.io", "EMP-001", "Engineering")

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	rec := seedRecord(t, db, emp.ID, checkIn, &checkOut, "Present")

	uc := NewUpdateAttendance(repo, disp)

	updated, err := uc.Execute(context.Background(), UpdateInput{
		ID:           rec.ID,
		CheckOutTime: ptr(checkIn.Add(2 * time.Hour)),
	})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, updated.WorkHours, 0.001)

	var stored models.Attendance
	require.NoError(t, db.First(&stored, rec.ID).Error)
	assert.InDelta(t, 2.0, stored.WorkHours, 0.001)
}

func TestUpdateAttendanceLeavesOmittedFieldsAlone(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Grace Hopper", "grace@acme.io", "EMP-002", "Engineering")

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	rec := seedRecord(t, db, emp.ID, checkIn, &checkOut, "Late")

	uc := NewUpdateAttendance(repo, disp)

	// Only the note is supplied; status and hours stay put.
	updated, err := uc.Execute(context.Background(), UpdateInput{
		ID:   rec.ID,
		Note: ptr("corrected by HR"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Late", updated.Status)
	assert.InDelta(t, 8.0, updated.WorkHours, 0.001)
	assert.Equal(t, "corrected by HR", updated.Note)

	// An explicit empty note clears it.
	updated, err = uc.Execute(context.Background(), UpdateInput{
		ID:   rec.ID,
		Note: ptr(""),
	})
	require.NoError(t, err)
	assert.Equal(t, "", updated.Note)
}

func TestUpdateAttendanceRejectsInvalidStatus(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Alan Turing", "alan@acme.io", "EMP-003", "Research")

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	rec := seedRecord(t, db, emp.ID, checkIn, nil, "Present")

	uc := NewUpdateAttendance(repo, disp)

	_, err := uc.Execute(context.Background(), UpdateInput{
		ID:     rec.ID,
		Status: ptr("Vanished"),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_status"))
}

func TestUpdateAttendanceRejectsCheckOutBeforeCheckIn(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)
	emp := seedEmployee(t, db, "Edsger Dijkstra", "edsger@acme.io", "EMP-004", "Research")

	checkIn := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	checkOut := checkIn.Add(8 * time.Hour)
	rec := seedRecord(t, db, emp.ID, checkIn, &checkOut, "Present")

	uc := NewUpdateAttendance(repo, disp)

	_, err := uc.Execute(context.Background(), UpdateInput{
		ID:           rec.ID,
		CheckOutTime: ptr(checkIn.Add(-time.Hour)),
	})
	assert.True(t, httperr.IsBusiness(err, "invalid_checkout_time"))
}

func TestUpdateAttendanceNotFound(t *testing.T) {
	db := setupDB(t)
	repo, disp := newDeps(db)

	uc := NewUpdateAttendance(repo, disp)

	_, err := uc.Execute(context.Background(), UpdateInput{ID: 42})
	assert.True(t, httperr.IsBusiness(err, "attendance_not_found"))
}
