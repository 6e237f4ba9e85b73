package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	UserID     uint   `json:"userId" gorm:"index"` // Who gave the review
	Name       string `json:"name" gorm:"not null"`
	Role       string `json:"role" gorm:"not null"` // Reviewer's title, free text
	Rating     int    `json:"rating" gorm:"not null;check:rating >= 1 AND rating <= 5"`
	Review     string `json:"review" gorm:"type:text;not null"`
	Course     string `json:"course" gorm:"not null"` // Course label, not a foreign key
	IsApproved bool   `json:"isApproved" gorm:"default:false"`
}
