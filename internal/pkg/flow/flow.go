// Package flow owns the screen-level state machine of the loan application.
// Every screen is derivable from the two session records alone, so a reload or
// deep link into any URL resolves to a screen consistent with stored data and
// never to an orphaned view. Resolve is total and side-effect free; redirects
// are returned as data, never performed here.
package flow

type Screen string

const (
	ScreenStart        Screen = "start"
	ScreenApply        Screen = "apply"
	ScreenProcessing   Screen = "processing"
	ScreenOffer        Screen = "offer"
	ScreenReview       Screen = "review"
	ScreenConfirmation Screen = "confirmation"
)

type State string

const (
	StateStart       State = "Start"
	StateApplying    State = "Applying"
	StateSubmitting  State = "Submitting"
	StateApproved    State = "Approved"
	StateUnderReview State = "UnderReview"
	StateAccepting   State = "Accepting"
	StateConfirmed   State = "Confirmed"
)

// Snapshot is what the controller knows about a session when a screen is
// requested. It is built from the session store by the caller.
type Snapshot struct {
	HasTrustScore      bool
	Approved           bool
	HasAcceptance      bool
	AcceptanceInFlight bool
}

// Decision is the outcome of resolving a requested screen against a snapshot.
type Decision struct {
	Requested  Screen `json:"requested"`
	Resolved   Screen `json:"resolved"`
	Redirected bool   `json:"redirected"`
	Reason     string `json:"reason,omitempty"`
	State      State  `json:"state"`
}

var knownScreens = map[Screen]struct{}{
	ScreenStart:        {},
	ScreenApply:        {},
	ScreenProcessing:   {},
	ScreenOffer:        {},
	ScreenReview:       {},
	ScreenConfirmation: {},
}

// KnownScreen maps a raw path segment to a Screen.
func KnownScreen(raw string) (Screen, bool) {
	s := Screen(raw)
	_, ok := knownScreens[s]
	return s, ok
}

// canonical returns the screen the stored records point at, ignoring what was
// requested. Acceptance wins over the scoring result, the approval flag picks
// between offer and review, and nothing stored means the application screen.
func canonical(snap Snapshot) Screen {
	switch {
	case snap.HasAcceptance:
		return ScreenConfirmation
	case snap.HasTrustScore && snap.Approved:
		return ScreenOffer
	case snap.HasTrustScore:
		return ScreenReview
	default:
		return ScreenApply
	}
}

// Resolve decides which screen a session may actually see. The entry screens
// are always reachable; every other screen redirects to the canonical screen
// whenever its prerequisite record is absent or contradicts the request.
func Resolve(requested Screen, snap Snapshot) Decision {
	d := Decision{Requested: requested, Resolved: requested, State: StateFor(snap)}

	switch requested {
	case ScreenStart, ScreenApply:
		return d
	case ScreenProcessing:
		// Transient sub-state of submission; with nothing pending it resolves
		// to wherever the stored records point.
		if !snap.AcceptanceInFlight {
			return redirect(d, canonical(snap), "no submission pending")
		}
		return d
	case ScreenOffer:
		if !snap.HasTrustScore {
			return redirect(d, canonical(snap), "no trust score on record")
		}
		if snap.HasAcceptance {
			return redirect(d, ScreenConfirmation, "loan already accepted")
		}
		if !snap.Approved {
			return redirect(d, ScreenReview, "application not approved")
		}
		return d
	case ScreenReview:
		if !snap.HasTrustScore {
			return redirect(d, canonical(snap), "no trust score on record")
		}
		if snap.HasAcceptance {
			return redirect(d, ScreenConfirmation, "loan already accepted")
		}
		if snap.Approved {
			return redirect(d, ScreenOffer, "application approved")
		}
		return d
	case ScreenConfirmation:
		if !snap.HasAcceptance {
			return redirect(d, canonical(snap), "no acceptance on record")
		}
		return d
	default:
		return redirect(d, canonical(snap), "unknown screen")
	}
}

// StateFor derives the flow-controller state from the snapshot.
func StateFor(snap Snapshot) State {
	switch {
	case snap.HasAcceptance:
		return StateConfirmed
	case snap.AcceptanceInFlight:
		return StateAccepting
	case snap.HasTrustScore && snap.Approved:
		return StateApproved
	case snap.HasTrustScore:
		return StateUnderReview
	default:
		return StateApplying
	}
}

func redirect(d Decision, to Screen, reason string) Decision {
	d.Resolved = to
	d.Redirected = d.Resolved != d.Requested
	if d.Redirected {
		d.Reason = reason
	}
	return d
}
