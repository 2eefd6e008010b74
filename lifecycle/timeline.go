package lifecycle

// Step is one entry in the customer-facing progress timeline.
type Step struct {
	Status     Status `json:"status"`
	IsComplete bool   `json:"isComplete"`
	IsCurrent  bool   `json:"isCurrent"`
}

// TimelineSteps returns the fixed four-step progress sequence for the order
// type, marking every step up to and including the current status complete.
// Cancelled orders get nil: a cancelled order shows no partial progress, and
// callers must check for cancellation before rendering a timeline.
func TimelineSteps(status Status, orderType OrderType) []Step {
	if status == StatusCancelled {
		return nil
	}

	mid := StatusReady
	if orderType == TypeDelivery {
		mid = StatusOutForDelivery
	}
	sequence := []Status{StatusReceived, StatusPreparing, mid, StatusCompleted}

	current := -1
	for i, s := range sequence {
		if s == status {
			current = i
			break
		}
	}

	steps := make([]Step, len(sequence))
	for i, s := range sequence {
		steps[i] = Step{
			Status:     s,
			IsComplete: current >= 0 && i <= current,
			IsCurrent:  i == current,
		}
	}
	return steps
}
