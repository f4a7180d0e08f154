package models

type DisbursementMethod string

const (
	DisbursementMoMo DisbursementMethod = "momo"
	DisbursementBank DisbursementMethod = "bank"
)

// AcceptanceRequest is the accept-offer payload. The option index points into
// the loan_options of the TrustScoreResponse stored for the session.
type AcceptanceRequest struct {
	SelectedOptionIndex int    `json:"selected_option_index"`
	DisbursementMethod  string `json:"disbursement_method" binding:"required"`
	BankAccount         string `json:"bank_account"`
}

// LoanAcceptance embeds the scoring response and the chosen option by value.
// BankAccount is non-nil exactly when DisbursementMethod is "bank".
type LoanAcceptance struct {
	TrustScoreResponse TrustScoreResponse `json:"trustScoreResponse"`
	SelectedLoanOption LoanOption         `json:"selectedLoanOption"`
	DisbursementMethod DisbursementMethod `json:"disbursementMethod"`
	BankAccount        *string            `json:"bankAccount"`
	TransactionRef     string             `json:"transactionRef"`
	AcceptedAt         string             `json:"acceptedAt"`
}
