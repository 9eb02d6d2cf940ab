package attendance

import "github.com/izzypositivetech-001/Attendifybackend/internal/httperr"

// ===============================
// Attendance Status
// ===============================

type Status string

const (
	StatusPresent Status = "Present"
	StatusAbsent  Status = "Absent"
	StatusLeave   Status = "Leave"
	StatusHalfDay Status = "Half Day"
	StatusLate    Status = "Late"
)

func DefaultStatus() Status {
	return StatusPresent
}

func IsValidStatus(s Status) bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLeave, StatusHalfDay, StatusLate:
		return true
	}
	return false
}

// ValidateStatus accepts the empty string as "use the default".
func ValidateStatus(s string) (Status, error) {
	if s == "" {
		return DefaultStatus(), nil
	}
	if !IsValidStatus(Status(s)) {
		return "", httperr.ErrBusiness("invalid_status")
	}
	return Status(s), nil
}
