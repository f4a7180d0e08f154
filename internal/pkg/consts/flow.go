package consts

// Session record key patterns. One record each for the scoring result and the
// acceptance, both scoped to a single session id.
const (
	TrustScoreKeyPattern = "trustscore:%s"
	AcceptanceKeyPattern = "acceptance:%s"
	AcceptingKeyPattern  = "accepting:%s"
)

const (
	EventAcceptanceConfirmed = "ACCEPTANCE_CONFIRMED"
)

// Header keys masked out of request logs.
var SensitiveKeys = []string{"Authorization", "X-Api-Key", "Cookie", "Set-Cookie"}
