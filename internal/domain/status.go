package domain

// Status represents the lifecycle state of a material request.
type Status string

const (
	StatusRequested Status = "Requested"
	StatusOrdered   Status = "Ordered"
	StatusInStock   Status = "In stock"
)

func (s Status) String() string { return string(s) }

func (s Status) IsValid() bool {
	switch s {
	case StatusRequested, StatusOrdered, StatusInStock:
		return true
	}
	return false
}

// statusTransitions is the intended forward progression of a request.
// It is advisory: UpdateStatus accepts any valid status from any other,
// so existing clients that set an arbitrary status keep working.
var statusTransitions = map[Status][]Status{
	StatusRequested: {StatusOrdered},
	StatusOrdered:   {StatusInStock},
	StatusInStock:   {},
}

// NextStatuses returns the statuses that follow s in the intended
// progression. The result is a copy; callers may modify it.
func NextStatuses(s Status) []Status {
	next, ok := statusTransitions[s]
	if !ok {
		return nil
	}
	out := make([]Status, len(next))
	copy(out, next)
	return out
}

// CanTransition reports whether moving from one status to another follows
// the intended progression.
func CanTransition(from, to Status) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
