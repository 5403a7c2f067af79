package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TourPaymentStatus indicates how much of a tour sale has been collected.
type TourPaymentStatus string

const (
	TourPaymentPending   TourPaymentStatus = "PENDING"
	TourPaymentPartial   TourPaymentStatus = "PARTIAL"
	TourPaymentCompleted TourPaymentStatus = "COMPLETED"
	TourPaymentRefunded  TourPaymentStatus = "REFUNDED"
)

// Activity is a priced add-on sold with a tour. Its currency may differ from
// the tour's currency; its contribution always lands in its own bucket.
type Activity struct {
	ActivityID       string          `json:"activityID"`
	Name             string          `json:"name"`
	Price            decimal.Decimal `json:"price"`
	Currency         string          `json:"currency"`
	ParticipantCount int             `json:"participantCount"`
	AllParticipants  bool            `json:"allParticipants"` // use the tour's head count instead of ParticipantCount
	// Partial payment recorded against this activity specifically, if any.
	PartialPaymentAmount   decimal.Decimal `json:"partialPaymentAmount"`
	PartialPaymentCurrency string          `json:"partialPaymentCurrency"`
}

// TourExpense is one expense line attached to a tour. Amount is kept as the
// raw string the operator entered; it is parsed defensively at aggregation
// time and skipped (not failed) when malformed.
type TourExpense struct {
	ExpenseID string `json:"expenseID"`
	Category  string `json:"category"`
	Amount    string `json:"amount"`
	Currency  string `json:"currency"`
}

// Tour represents one tour sale with its add-on activities and expense lines.
type Tour struct {
	TourID           string            `json:"tourID"`
	Destination      string            `json:"destination"`
	SaleDate         time.Time         `json:"saleDate"`
	EndDate          time.Time         `json:"endDate"`
	Currency         string            `json:"currency"`
	TotalPrice       decimal.Decimal   `json:"totalPrice"`
	ParticipantCount int               `json:"participantCount"`
	Activities       []Activity        `json:"activities"`
	Expenses         []TourExpense     `json:"expenses"`
	PaymentStatus    TourPaymentStatus `json:"paymentStatus"`
	// Partial payment recorded against the base sale when PaymentStatus is PARTIAL.
	PartialPaymentAmount   decimal.Decimal `json:"partialPaymentAmount"`
	PartialPaymentCurrency string          `json:"partialPaymentCurrency"`
	AuditFields
}
