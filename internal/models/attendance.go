package models

import "time"

type Attendance struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// No FK constraint on purpose: deleting an employee leaves its
	// attendance history behind, as the previous store did.
	EmployeeID uint      `gorm:"not null;uniqueIndex:idx_attendance_employee_day" json:"employee_id"`
	Employee   *Employee `json:"employee,omitempty"`

	// Local midnight of the day the record belongs to. Together with
	// EmployeeID it guarantees one record per employee per day.
	Date time.Time `gorm:"not null;uniqueIndex:idx_attendance_employee_day" json:"date"`

	CheckInTime  time.Time  `gorm:"not null" json:"check_in_time"`
	CheckOutTime *time.Time `json:"check_out_time"`

	Status    string  `gorm:"size:20;default:'Present'" json:"status"`
	WorkHours float64 `json:"work_hours"`
	Note      string  `gorm:"size:255" json:"note"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
