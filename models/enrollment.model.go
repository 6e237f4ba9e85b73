package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment statuses. active may move to completed or cancelled;
// both of those are terminal.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
	EnrollmentCancelled = "cancelled"
)

// Enrollment links a user to a purchased course. UserName, UserEmail,
// UserPhone and CourseTitle are snapshots taken at enrollment time so the
// record stays readable after the source user or course changes or is
// deleted. PricePaid is the course price at purchase time; revenue reports
// still join against the current course price.
type Enrollment struct {
	gorm.Model
	UserID         uint      `json:"userId" gorm:"index;not null"`
	CourseID       uint      `json:"courseId" gorm:"index;not null"`
	UserName       string    `json:"userName" gorm:"not null"`
	UserEmail      string    `json:"userEmail" gorm:"not null"`
	UserPhone      string    `json:"userPhone" gorm:"default:''"`
	CourseTitle    string    `json:"courseTitle" gorm:"not null"`
	PricePaid      float64   `json:"pricePaid"`
	EnrollmentDate time.Time `json:"enrollmentDate" gorm:"autoCreateTime"`
	Status         string    `json:"status" gorm:"default:'active'"`
	Course         *Course   `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}

// ValidEnrollmentStatus reports whether s is one of the allowed statuses.
func ValidEnrollmentStatus(s string) bool {
	return s == EnrollmentActive || s == EnrollmentCompleted || s == EnrollmentCancelled
}

// Terminal reports whether the enrollment can no longer change status.
func (e *Enrollment) Terminal() bool {
	return e.Status == EnrollmentCompleted || e.Status == EnrollmentCancelled
}
