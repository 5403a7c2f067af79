package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReservationPaymentStatus tracks collection state on a reservation.
type ReservationPaymentStatus string

const (
	ReservationUnpaid        ReservationPaymentStatus = "UNPAID"
	ReservationPartiallyPaid ReservationPaymentStatus = "PARTIALLY_PAID"
	ReservationPaid          ReservationPaymentStatus = "PAID"
)

// Reservation is a customer booking taken through the reservation form.
// Every save re-runs the receivable ledger sync when a company is attached.
type Reservation struct {
	ReservationID   string                   `json:"reservationID"`
	SerialNumber    string                   `json:"serialNumber"`
	TourDate        time.Time                `json:"tourDate"`
	PickupTime      string                   `json:"pickupTime"` // "HH:MM", may be empty
	DestinationID   string                   `json:"destinationID"`
	DestinationName string                   `json:"destinationName"`
	CustomerName    string                   `json:"customerName"`
	CustomerPhone   string                   `json:"customerPhone"`
	CompanyID       string                   `json:"companyID,omitempty"` // optional agency link
	TotalAmount     decimal.Decimal          `json:"totalAmount"`
	Currency        string                   `json:"currency"`
	AmountPaid      decimal.Decimal          `json:"amountPaid"`
	PaymentDueDate  *time.Time               `json:"paymentDueDate,omitempty"`
	PaymentStatus   ReservationPaymentStatus `json:"paymentStatus"`
	AuditFields
}

// ReservationGroup is a presentation-only grouping of reservations by
// destination, ordered by how soon the tours depart.
type ReservationGroup struct {
	Destination  string        `json:"destination"`
	Urgent       bool          `json:"urgent"` // any reservation departs within the urgency window
	Reservations []Reservation `json:"reservations"`
}
