package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
	"github.com/tourops/tour_backoffice_app/internal/utils/accounting"
)

// ActivityRequest describes one priced add-on on a tour save.
type ActivityRequest struct {
	Name                   string          `json:"name" binding:"required"`
	Price                  decimal.Decimal `json:"price" binding:"required"`
	Currency               string          `json:"currency" binding:"omitempty,currency"`
	ParticipantCount       int             `json:"participantCount" binding:"omitempty,min=0"`
	AllParticipants        bool            `json:"allParticipants"`
	PartialPaymentAmount   decimal.Decimal `json:"partialPaymentAmount"`
	PartialPaymentCurrency string          `json:"partialPaymentCurrency" binding:"omitempty,currency"`
}

// TourExpenseRequest describes one expense line on a tour save. Amount is
// accepted as entered and parsed defensively at aggregation time.
type TourExpenseRequest struct {
	Category string `json:"category" binding:"required"`
	Amount   string `json:"amount" binding:"required"`
	Currency string `json:"currency" binding:"omitempty,currency"`
}

// CreateTourRequest defines the data needed to record a tour sale.
type CreateTourRequest struct {
	Destination            string                   `json:"destination" binding:"required"`
	SaleDate               time.Time                `json:"saleDate" binding:"required"`
	EndDate                time.Time                `json:"endDate"`
	Currency               string                   `json:"currency" binding:"required,currency"`
	TotalPrice             decimal.Decimal          `json:"totalPrice"`
	ParticipantCount       int                      `json:"participantCount" binding:"omitempty,min=0"`
	Activities             []ActivityRequest        `json:"activities" binding:"omitempty,dive"`
	Expenses               []TourExpenseRequest     `json:"expenses" binding:"omitempty,dive"`
	PaymentStatus          domain.TourPaymentStatus `json:"paymentStatus" binding:"required,oneof=PENDING PARTIAL COMPLETED REFUNDED"`
	PartialPaymentAmount   decimal.Decimal          `json:"partialPaymentAmount"`
	PartialPaymentCurrency string                   `json:"partialPaymentCurrency" binding:"omitempty,currency"`
}

// UpdateTourRequest carries the same shape as creation; the tour is replaced
// wholesale by edits, matching how the sale form works.
type UpdateTourRequest = CreateTourRequest

// TourResponse defines the data returned for a tour.
type TourResponse struct {
	TourID           string                   `json:"tourID"`
	Destination      string                   `json:"destination"`
	SaleDate         time.Time                `json:"saleDate"`
	EndDate          time.Time                `json:"endDate"`
	Currency         string                   `json:"currency"`
	TotalPrice       decimal.Decimal          `json:"totalPrice"`
	ParticipantCount int                      `json:"participantCount"`
	Activities       []domain.Activity        `json:"activities"`
	Expenses         []domain.TourExpense     `json:"expenses"`
	PaymentStatus    domain.TourPaymentStatus `json:"paymentStatus"`
	CreatedAt        time.Time                `json:"createdAt"`
	LastUpdatedAt    time.Time                `json:"lastUpdatedAt"`
}

// ToTourResponse converts a domain.Tour to TourResponse DTO.
func ToTourResponse(tour *domain.Tour) TourResponse {
	return TourResponse{
		TourID:           tour.TourID,
		Destination:      tour.Destination,
		SaleDate:         tour.SaleDate,
		EndDate:          tour.EndDate,
		Currency:         tour.Currency,
		TotalPrice:       tour.TotalPrice,
		ParticipantCount: tour.ParticipantCount,
		Activities:       tour.Activities,
		Expenses:         tour.Expenses,
		PaymentStatus:    tour.PaymentStatus,
		CreatedAt:        tour.CreatedAt,
		LastUpdatedAt:    tour.LastUpdatedAt,
	}
}

// ToListTourResponse converts a slice of domain.Tour to TourResponse DTOs.
func ToListTourResponse(tours []domain.Tour) []TourResponse {
	res := make([]TourResponse, len(tours))
	for i := range tours {
		res[i] = ToTourResponse(&tours[i])
	}
	return res
}

// TourFiguresResponse renders a tour's economics as sorted per-currency
// breakdowns. Empty slices are rendered as "—" by the UI, never as zero.
type TourFiguresResponse struct {
	Income    []domain.CurrencyAmount `json:"income"`
	Expenses  []domain.CurrencyAmount `json:"expenses"`
	Profit    []domain.CurrencyAmount `json:"profit"`
	Paid      []domain.CurrencyAmount `json:"paid"`
	Remaining []domain.CurrencyAmount `json:"remaining"`
}

// ToTourFiguresResponse converts computed tour figures to their DTO.
func ToTourFiguresResponse(figures *accounting.TourFigures) TourFiguresResponse {
	return TourFiguresResponse{
		Income:    figures.Income.Sorted(),
		Expenses:  figures.Expenses.Sorted(),
		Profit:    figures.Profit.Sorted(),
		Paid:      figures.Paid.Sorted(),
		Remaining: figures.Remaining.Sorted(),
	}
}
