package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryKind distinguishes manually entered income from expense lines.
type EntryKind string

const (
	EntryIncome  EntryKind = "INCOME"
	EntryExpense EntryKind = "EXPENSE"
)

// TourExpenseCategory is the reserved category for expense entries generated
// from a tour's own expense lines. Entries carrying it are excluded from the
// financial sums during period rollups so tour expenses are not counted twice.
const TourExpenseCategory = "Tour Expense"

// FinancialEntry is a manually entered ledger line. It is read-only to the
// aggregation core; creation and edits happen through the entry form.
type FinancialEntry struct {
	EntryID   string          `json:"entryID"`
	EntryDate time.Time       `json:"entryDate"`
	Kind      EntryKind       `json:"kind"`
	Category  string          `json:"category"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  string          `json:"currency"`
	TourID    string          `json:"tourID,omitempty"`    // optional link to the originating tour
	CompanyID string          `json:"companyID,omitempty"` // optional link to a company
	AuditFields
}
