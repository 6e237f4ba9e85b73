package models

import "gorm.io/gorm"

// Contact statuses. The field is free-form; admins normally advance
// unread -> read -> replied but no transition is blocked.
const (
	ContactUnread  = "unread"
	ContactRead    = "read"
	ContactReplied = "replied"
)

type Contact struct {
	gorm.Model
	Name    string `json:"name" gorm:"not null"`
	Email   string `json:"email" gorm:"not null"`
	Phone   string `json:"phone" gorm:"default:''"`
	Message string `json:"message" gorm:"type:text;not null"`
	Status  string `json:"status" gorm:"default:'unread'"`
}
