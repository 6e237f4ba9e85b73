package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name             string   `json:"name" gorm:"default:''"`
	Email            string   `json:"email" gorm:"uniqueIndex;not null"`
	Password         string   `json:"-" gorm:"not null"`
	Role             string   `json:"role" gorm:"default:'user'"` // user, admin
	Phone            string   `json:"phone" gorm:"default:''"`
	Bio              string   `json:"bio" gorm:"default:''"`
	Avatar           string   `json:"avatar" gorm:"default:''"`
	PurchasedCourses []Course `json:"purchasedCourses,omitempty" gorm:"many2many:user_purchased_courses"`
}
