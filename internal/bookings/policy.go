package bookings

// Policy decides which status changes an admin may make.
type Policy int

const (
	// PolicyUnrestricted allows any status to move to any status.
	PolicyUnrestricted Policy = iota
	// PolicyStrict enforces pending -> confirmed -> completed with
	// cancellation from either open state; completed and cancelled are terminal.
	PolicyStrict
)

var strictTransitions = map[Status]map[Status]bool{
	StatusPending:   {StatusConfirmed: true, StatusCancelled: true},
	StatusConfirmed: {StatusCompleted: true, StatusCancelled: true},
	StatusCompleted: {},
	StatusCancelled: {},
}

// Allows reports whether from -> to is permitted. Re-applying the current
// status is always allowed.
func (p Policy) Allows(from, to Status) bool {
	if from == to {
		return true
	}
	if p != PolicyStrict {
		return true
	}
	return strictTransitions[from][to]
}

// NeedsCurrent reports whether the policy must read the row before updating.
func (p Policy) NeedsCurrent() bool {
	return p == PolicyStrict
}

func (p Policy) String() string {
	if p == PolicyStrict {
		return "strict"
	}
	return "unrestricted"
}
