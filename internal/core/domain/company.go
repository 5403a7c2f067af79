package domain

// CompanyCategoryAgency is the default category for companies created from
// reservation syncs.
const CompanyCategoryAgency = "Agency"

// Company is an agency or partner the back office tracks receivables against.
type Company struct {
	CompanyID   string `json:"companyID"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	ContactName string `json:"contactName"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Notes       string `json:"notes"`
	AuditFields
}
