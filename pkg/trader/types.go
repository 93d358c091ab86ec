package trader

// OutcomeStatus names the terminal state of one holding during liquidation.
type OutcomeStatus string

const (
	// StatusSubmitted means the venue accepted the sell order.
	StatusSubmitted OutcomeStatus = "submitted"
	// StatusSkippedDust means the holding was filtered before submission:
	// value below the notional threshold, or quantity floored to zero.
	StatusSkippedDust OutcomeStatus = "skipped_dust"
	// StatusFailed means the submission was attempted and the venue or
	// transport declined it.
	StatusFailed OutcomeStatus = "failed"
)

// Outcome records what happened to one holding. A liquidation run yields one
// outcome per non-base-currency holding, in snapshot order, regardless of
// individual failures.
type Outcome struct {
	Coin     string
	Symbol   string
	Status   OutcomeStatus
	Quantity string // floored base-currency quantity, when an order was built
	OrderID  string // set on success
	Err      error  // set on failure
}

// Failed reports whether any outcome in the list carries a failure.
func Failed(outcomes []Outcome) bool {
	for _, o := range outcomes {
		if o.Status == StatusFailed {
			return true
		}
	}
	return false
}
