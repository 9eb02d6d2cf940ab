package models

import "time"

type Employee struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name       string `gorm:"size:100;not null" json:"name"`
	Email      string `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone      string `gorm:"size:20" json:"phone"`
	Address    string `gorm:"size:255" json:"address"`
	Position   string `gorm:"size:100;not null" json:"position"`
	Department string `gorm:"size:100;not null" json:"department"`

	// Badge code assigned by HR, distinct from the database id.
	EmployeeCode string `gorm:"size:50;uniqueIndex;not null" json:"employee_code"`

	ProfileImage string `gorm:"size:255" json:"profile_image"`

	// Serialized numeric vector consumed by an external biometric
	// matcher. Stored verbatim, never interpreted here.
	FaceDescriptor string `gorm:"type:text" json:"face_descriptor,omitempty"`

	IsActive bool `gorm:"default:true" json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
