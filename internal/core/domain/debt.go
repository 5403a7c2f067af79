package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DebtStatus tracks collection state on a receivable.
type DebtStatus string

const (
	DebtUnpaid        DebtStatus = "UNPAID"
	DebtPartiallyPaid DebtStatus = "PARTIALLY_PAID"
	DebtPaid          DebtStatus = "PAID"
)

// Debt is an accounts-receivable ("cari") record tracking money owed by a
// company, derived from a reservation. At most one Debt exists per
// originating reservation; edits to the reservation update it in place.
//
// CompanyName is a snapshot taken at sync time so a placeholder company can
// be reconstructed from it if the company row is deleted out from under us.
type Debt struct {
	DebtID        string          `json:"debtID"`
	CompanyID     string          `json:"companyID"`
	CompanyName   string          `json:"companyName"`
	ReservationID string          `json:"reservationID"` // originating reservation
	TourID        string          `json:"tourID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaidAmount    decimal.Decimal `json:"paidAmount"`
	DueDate       time.Time       `json:"dueDate"`
	Status        DebtStatus      `json:"status"`
	AuditFields
}

// DeriveDebtStatus computes a debt's status from its amounts. The status is
// recomputed on every write, never trusted from caller input.
func DeriveDebtStatus(amount, paid decimal.Decimal) DebtStatus {
	switch {
	case paid.GreaterThanOrEqual(amount):
		return DebtPaid
	case paid.IsPositive():
		return DebtPartiallyPaid
	default:
		return DebtUnpaid
	}
}
