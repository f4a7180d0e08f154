package models

// ValidationErrorResponse is the 4xx error body shape of the scoring service.
type ValidationErrorResponse struct {
	Detail []ValidationErrorDetail `json:"detail"`
}

type ValidationErrorDetail struct {
	Loc  []interface{} `json:"loc"`
	Msg  string        `json:"msg"`
	Type string        `json:"type"`
}
