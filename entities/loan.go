package entities

import "time"

type LoanStatus string

const (
	LoanPending   LoanStatus = "PENDING"
	LoanSubmitted LoanStatus = "SUBMITTED"
	LoanApproved  LoanStatus = "APPROVED"
	LoanRejected  LoanStatus = "REJECTED"
	LoanDisbursed LoanStatus = "DISBURSED"
	LoanRepaid    LoanStatus = "REPAID"
	LoanDefaulted LoanStatus = "DEFAULTED"
)

func (s LoanStatus) Valid() bool {
	switch s {
	case LoanPending, LoanSubmitted, LoanApproved, LoanRejected,
		LoanDisbursed, LoanRepaid, LoanDefaulted:
		return true
	}
	return false
}

type LoanApplication struct {
	LoanID          uint       `gorm:"primaryKey" json:"loan_id"`
	UserID          uint       `gorm:"index" json:"user_id"`
	AmountRequested float64    `json:"amount_requested"`
	Purpose         string     `json:"purpose"`
	Status          LoanStatus `gorm:"index" json:"status"`

	CreatedAt time.Time
	UpdatedAt time.Time
}
