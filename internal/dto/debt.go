package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tourops/tour_backoffice_app/internal/core/domain"
)

// RecordPaymentRequest registers a collected amount against a debt.
type RecordPaymentRequest struct {
	Amount decimal.Decimal `json:"amount" binding:"required"`
}

// DebtResponse defines the data returned for a receivable record.
type DebtResponse struct {
	DebtID        string            `json:"debtID"`
	CompanyID     string            `json:"companyID"`
	CompanyName   string            `json:"companyName"`
	ReservationID string            `json:"reservationID"`
	TourID        string            `json:"tourID,omitempty"`
	Amount        decimal.Decimal   `json:"amount"`
	Currency      string            `json:"currency"`
	PaidAmount    decimal.Decimal   `json:"paidAmount"`
	DueDate       time.Time         `json:"dueDate"`
	Status        domain.DebtStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	LastUpdatedAt time.Time         `json:"lastUpdatedAt"`
}

// ToDebtResponse converts a domain.Debt to its DTO.
func ToDebtResponse(debt *domain.Debt) DebtResponse {
	return DebtResponse{
		DebtID:        debt.DebtID,
		CompanyID:     debt.CompanyID,
		CompanyName:   debt.CompanyName,
		ReservationID: debt.ReservationID,
		TourID:        debt.TourID,
		Amount:        debt.Amount,
		Currency:      debt.Currency,
		PaidAmount:    debt.PaidAmount,
		DueDate:       debt.DueDate,
		Status:        debt.Status,
		CreatedAt:     debt.CreatedAt,
		LastUpdatedAt: debt.LastUpdatedAt,
	}
}

// ToListDebtResponse converts a slice of debts to DTOs.
func ToListDebtResponse(debts []domain.Debt) []DebtResponse {
	res := make([]DebtResponse, len(debts))
	for i := range debts {
		res[i] = ToDebtResponse(&debts[i])
	}
	return res
}

// OutstandingResponse reports unpaid remainders per currency.
type OutstandingResponse struct {
	Outstanding []domain.CurrencyAmount `json:"outstanding"`
}
