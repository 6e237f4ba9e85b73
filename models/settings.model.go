package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SettingsID is the fixed primary key of the singleton settings row.
// All reads and writes go through this id so only one row can ever exist.
const SettingsID uint = 1

const DefaultCompanyName = "SPOT TRADING"

type Settings struct {
	gorm.Model
	CompanyName  string         `json:"companyName" gorm:"default:'SPOT TRADING'"`
	LogoURL      string         `json:"logoUrl" gorm:"default:''"`
	ContactEmail string         `json:"contactEmail" gorm:"default:''"`
	ContactPhone string         `json:"contactPhone" gorm:"default:''"`
	Address      string         `json:"address" gorm:"default:''"`
	SocialLinks  datatypes.JSON `json:"socialLinks"` // facebook/twitter/linkedin/instagram
	IsActive     bool           `json:"isActive" gorm:"default:true"`
}
