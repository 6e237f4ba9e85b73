package models

import "gorm.io/gorm"

type Course struct {
	gorm.Model
	Title       string  `json:"title" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Price       float64 `json:"price" gorm:"not null;check:price >= 0"`
	Image       string  `json:"image" gorm:"default:''"`
	Instructor  string  `json:"instructor" gorm:"default:''"`
	Duration    string  `json:"duration" gorm:"default:''"`
	Level       string  `json:"level" gorm:"default:''"`
	Category    string  `json:"category" gorm:"default:''"`
}
