package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// CreateReservationRequest defines the data taken by the reservation form.
type CreateReservationRequest struct {
	SerialNumber    string          `json:"serialNumber" binding:"required"`
	TourDate        time.Time       `json:"tourDate" binding:"required"`
	PickupTime      string          `json:"pickupTime"`
	DestinationID   string          `json:"destinationID" binding:"required"`
	DestinationName string          `json:"destinationName" binding:"required"`
	CustomerName    string          `json:"customerName" binding:"required"`
	CustomerPhone   string          `json:"customerPhone"`
	CompanyID       string          `json:"companyID"`
	TotalAmount     decimal.Decimal `json:"totalAmount"`
	Currency        string          `json:"currency" binding:"omitempty,currency"`
	AmountPaid      decimal.Decimal `json:"amountPaid"`
	PaymentDueDate  *time.Time      `json:"paymentDueDate"`
}

// UpdateReservationRequest carries the same shape as creation.
type UpdateReservationRequest = CreateReservationRequest

// ReservationResponse defines the data returned for a reservation.
type ReservationResponse struct {
	ReservationID   string                          `json:"reservationID"`
	SerialNumber    string                          `json:"serialNumber"`
	TourDate        time.Time                       `json:"tourDate"`
	PickupTime      string                          `json:"pickupTime,omitempty"`
	DestinationID   string                          `json:"destinationID"`
	DestinationName string                          `json:"destinationName"`
	CustomerName    string                          `json:"customerName"`
	CustomerPhone   string                          `json:"customerPhone,omitempty"`
	CompanyID       string                          `json:"companyID,omitempty"`
	TotalAmount     decimal.Decimal                 `json:"totalAmount"`
	Currency        string                          `json:"currency"`
	AmountPaid      decimal.Decimal                 `json:"amountPaid"`
	PaymentDueDate  *time.Time                      `json:"paymentDueDate,omitempty"`
	PaymentStatus   domain.ReservationPaymentStatus `json:"paymentStatus"`
	CreatedAt       time.Time                       `json:"createdAt"`
	LastUpdatedAt   time.Time                       `json:"lastUpdatedAt"`
}

// ReservationSaveResult is what a reservation create/update returns. The
// reservation is the primary artifact; the derived debt is best effort, and a
// sync failure surfaces here as a warning rather than failing the save.
type ReservationSaveResult struct {
	Reservation ReservationResponse `json:"reservation"`
	Debt        *DebtResponse       `json:"debt,omitempty"`
	SyncWarning string              `json:"syncWarning,omitempty"`
}

// ToReservationResponse converts a domain.Reservation to its DTO.
func ToReservationResponse(r *domain.Reservation) ReservationResponse {
	return ReservationResponse{
		ReservationID:   r.ReservationID,
		SerialNumber:    r.SerialNumber,
		TourDate:        r.TourDate,
		PickupTime:      r.PickupTime,
		DestinationID:   r.DestinationID,
		DestinationName: r.DestinationName,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CompanyID:       r.CompanyID,
		TotalAmount:     r.TotalAmount,
		Currency:        r.Currency,
		AmountPaid:      r.AmountPaid,
		PaymentDueDate:  r.PaymentDueDate,
		PaymentStatus:   r.PaymentStatus,
		CreatedAt:       r.CreatedAt,
		LastUpdatedAt:   r.LastUpdatedAt,
	}
}

// ToListReservationResponse converts a slice of reservations to DTOs.
func ToListReservationResponse(reservations []domain.Reservation) []ReservationResponse {
	res := make([]ReservationResponse, len(reservations))
	for i := range reservations {
		res[i] = ToReservationResponse(&reservations[i])
	}
	return res
}

// ReservationGroupResponse is one dashboard group of reservations.
type ReservationGroupResponse struct {
	Destination  string                `json:"destination"`
	Urgent       bool                  `json:"urgent"`
	Reservations []ReservationResponse `json:"reservations"`
}

// ToReservationGroupResponses converts grouped reservations to DTOs.
func ToReservationGroupResponses(groups []domain.ReservationGroup) []ReservationGroupResponse {
	res := make([]ReservationGroupResponse, len(groups))
	for i, g := range groups {
		res[i] = ReservationGroupResponse{
			Destination:  g.Destination,
			Urgent:       g.Urgent,
			Reservations: ToListReservationResponse(g.Reservations),
		}
	}
	return res
}
