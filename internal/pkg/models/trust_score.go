package models

// TrustScoreRequest is the application form payload: the applicant's mobile
// number and an explicit consent flag for data access. Never sent downstream
// unless both pass validation.
type TrustScoreRequest struct {
	MSISDN       string `json:"msisdn" binding:"required"`
	ConsentGiven bool   `json:"consent_given"`
}

// LoanOption is one entry of the ordered offer list inside a TrustScoreResponse.
type LoanOption struct {
	Amount              float64 `json:"amount"`
	InterestRatePercent float64 `json:"interest_rate_percent"`
	TotalRepayment      float64 `json:"total_repayment"`
	TermDays            int     `json:"term_days"`
}

// TrustScoreResponse is produced once per successful scoring call and is
// immutable once written to the session store.
// MSISDN is not part of the scoring engine's reply; the flow service stamps it
// onto the record before storing so the ledger and notification paths know the
// applicant without a second lookup.
type TrustScoreResponse struct {
	RequestID          string       `json:"request_id"`
	MSISDN             string       `json:"msisdn,omitempty"`
	TrustScore         float64      `json:"trust_score"`
	Approved           bool         `json:"approved"`
	LoanOptions        []LoanOption `json:"loan_options"`
	DataSourcesChecked []string     `json:"data_sources_checked"`
	CalculationTimeMs  int64        `json:"calculation_time_ms"`
	CreatedAt          string       `json:"created_at"`
}
