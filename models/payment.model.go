package models

import "gorm.io/gorm"

// Payment statuses. pending payments either complete, fail, or get swept
// to expired by the scheduler once they outlive the configured window.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentExpired   = "expired"
)

// CoursePayment is a server-owned record of a UPI checkout attempt. The
// deep-link redirect itself happens on the client; confirmation goes through
// the API so purchase state never lives in browser storage.
type CoursePayment struct {
	gorm.Model
	OrderRef string  `json:"orderRef" gorm:"uniqueIndex;not null"`
	UserID   uint    `json:"userId" gorm:"index;not null"`
	CourseID uint    `json:"courseId" gorm:"index;not null"`
	Amount   float64 `json:"amount" gorm:"not null"`
	Currency string  `json:"currency" gorm:"default:'INR'"`
	UPIApp   string  `json:"upiApp" gorm:"default:''"` // gpay, phonepe, paytm, amazonpay, bhim
	VPA      string  `json:"vpa" gorm:"default:''"`
	Status   string  `json:"status" gorm:"default:'pending'"`
	Course   *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
