package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gorm.io/gorm"

	"github.com/izzypositivetech-001/Attendifybackend/internal/httperr"
	"github.com/izzypositivetech-001/Attendifybackend/internal/models"
)

// Five records over three days, two departments:
//
//	03-02  eng 09:00 Present   sales 10:00 Present
//	03-03  eng 09:00 Late      sales 10:00 Present
//	03-04  eng 09:00 Present
func seedListFixture(t *testing.T, db *gorm.DB) (eng, sales *models.Employee) {
	t.Helper()

	eng = seedEmployee(t, db, "Ada Lovelace", "ada@acme.io", "EMP-001", "Engineering")
	sales = seedEmployee(t, db, "Grace Hopper", "grace@acme.io", "EMP-002", "Sales")

	day := func(d, h int) time.Time {
		return time.Date(2026, 3, d, h, 0, 0, 0, time.UTC)
	}

	seedRecord(t, db, eng.ID, day(2, 9), nil, "Present")
	seedRecord(t, db, sales.ID, day(2, 10), nil, "Present")
	seedRecord(t, db, eng.ID, day(3, 9), nil, "Late")
	seedRecord(t, db, sales.ID, day(3, 10), nil, "Present")
	seedRecord(t, db, eng.ID, day(4, 9), nil, "Present")
	return eng, sales
}

func TestListAttendanceDefaultsAndOrder(t *testing.T) {
	db := setupDB(t)
	repo, _ := newDeps(db)
	seedListFixture(t, db)

	uc := NewListAttendance(repo, "UTC")

	out, err := uc.Execute(context.Background(), ListInput{})
	require.NoError(t, err)
	assert.EqualValues(t, 5, out.Count)
	assert.Equal(t, 1, out.CurrentPage)
	assert.Equal(t, 1, out.TotalPages)
	require.Len(t, out.Records, 5)

	// Most recent check-in first.
	for i := 1; i < len(out.Records); i++ {
		assert.False(t, out.Records[i].CheckInTime.After(out.Records[i-1].CheckInTime))
	}

	// The join projection carries the employee fields.
	assert.NotEmpty(t, out.Records[0].EmployeeName)
	assert.NotEmpty(t, out.Records[0].EmployeeCode)
	assert.NotEmpty(t, out.Records[0].Department)
}

func TestListAttendancePagination(t *testing.T) {
	db := setupDB(t)
	repo, _ := newDeps(db)
	eng, sales := seedListFixture(t, db)

	uc := NewListAttendance(repo, "UTC")

	out, err := uc.Execute(context.Background(), ListInput{Page: 2, Limit: 2})
	require.NoError(t, err)
	assert.EqualValues(t, 5, out.Count)
	assert.Equal(t, 2, out.CurrentPage)
	assert.Equal(t, 3, out.TotalPages)
	require.Len(t, out.Records, 2)

	// Window 3-4 of [eng 03-04, sales 03-03, eng 03-03, sales 03-02, eng 03-02].
	assert.Equal(t, eng.ID, out.Records[0].EmployeeID)
	assert.Equal(t, "Late", out.Records[0].Status)
	assert.Equal(t, sales.ID, out.Records[1].EmployeeID)
}

func TestListAttendanceFilters(t *testing.T) {
	db := setupDB(t)
	repo, _ := newDeps(db)
	eng, _ := seedListFixture(t, db)

	uc := NewListAttendance(repo, "UTC")
	ctx := context.Background()

	out, err := uc.Execute(ctx, ListInput{EmployeeID: eng.ID})
	require.NoError(t, err)
	assert.EqualValues(t, 3, out.Count)

	out, err = uc.Execute(ctx, ListInput{Department: "Sales"})
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Count)
	for _, rec := range out.Records {
		assert.Equal(t, "Sales", rec.Department)
	}

	out, err = uc.Execute(ctx, ListInput{Status: "Late"})
	require.NoError(t, err)
	assert.EqualValues(t, 1, out.Count)

	// The end date covers its whole day.
	out, err = uc.Execute(ctx, ListInput{
		StartDate: "2026-03-03",
		EndDate:   "2026-03-03",
	})
	require.NoError(t, err)
	assert.EqualValues(t, 2, out.Count)
}

func TestListAttendanceInvalidDate(t *testing.T) {
	db := setupDB(t)
	repo, _ := newDeps(db)

	uc := NewListAttendance(repo, "UTC")

	_, err := uc.Execute(context.Background(), ListInput{StartDate: "03/02/2026"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))

	_, err = uc.Execute(context.Background(), ListInput{EndDate: "not-a-date"})
	assert.True(t, httperr.IsBusiness(err, "invalid_date"))
}
