package consts

const (
	// Digits with an optional leading +, 10 to 15 digits total, applied after
	// whitespace is stripped from the raw input.
	ValidMSISDN = `^\+?[0-9]{10,15}$`
)
