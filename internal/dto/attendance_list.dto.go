package dto

import "time"

// AttendanceRecordDTO is the list projection: the attendance row joined with
// the employee fields the report needs.
type AttendanceRecordDTO struct {
	ID           uint       `json:"id"`
	EmployeeID   uint       `json:"employee_id"`
	Date         time.Time  `json:"date"`
	CheckInTime  time.Time  `json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`
	WorkHours    float64    `json:"work_hours"`
	Status       string     `json:"status"`
	Note         string     `json:"note"`

	EmployeeName string `json:"employee_name"`
	EmployeeCode string `json:"employee_code"`
	Department   string `json:"department"`
}

type StatusCountDTO struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DailyCountDTO struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

type DepartmentCountDTO struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}
