package vehicle

import "errors"

var ErrUnknownStatus = errors.New("unknown vehicle status")

type Status string

const (
	StatusCreated         Status = "CREATED"
	StatusPickupScheduled Status = "PICKUP_SCHEDULED"
	StatusInTransit       Status = "IN_TRANSIT"
	StatusReceived        Status = "RECEIVED"
	StatusDismantled      Status = "DISMANTLED"
	StatusCODIssued       Status = "COD_ISSUED"
)

// Statuses is the canonical lifecycle order. Position is significant: it
// decides which steps count as completed and what the next stage is.
var Statuses = []Status{
	StatusCreated,
	StatusPickupScheduled,
	StatusInTransit,
	StatusReceived,
	StatusDismantled,
	StatusCODIssued,
}

var statusLabels = map[Status]string{
	StatusCreated:         "Registered",
	StatusPickupScheduled: "Pickup Scheduled",
	StatusInTransit:       "In Transit",
	StatusReceived:        "Received at Yard",
	StatusDismantled:      "Dismantled",
	StatusCODIssued:       "Certificate Issued",
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := statusLabels[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusCODIssued
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrUnknownStatus
	}
	return status, nil
}

// Label returns the human-readable name for a lifecycle stage.
func Label(s Status) (string, error) {
	label, ok := statusLabels[s]
	if !ok {
		return "", ErrUnknownStatus
	}
	return label, nil
}

// IndexOf returns the position of s in the canonical order, or -1 when s
// is not a registry code.
func IndexOf(s Status) int {
	for i, status := range Statuses {
		if status == s {
			return i
		}
	}
	return -1
}

// Next returns the stage immediately following s, or false at the terminal
// stage and for codes outside the registry.
func Next(s Status) (Status, bool) {
	idx := IndexOf(s)
	if idx < 0 || idx >= len(Statuses)-1 {
		return "", false
	}
	return Statuses[idx+1], true
}

// ProgressPercent maps a stage to completion percentage across the whole
// lifecycle: CREATED is 0, COD_ISSUED is 100.
func ProgressPercent(s Status) int {
	idx := IndexOf(s)
	if idx < 0 {
		return 0
	}
	return idx * 100 / (len(Statuses) - 1)
}

// Step is one entry of the per-vehicle progress checklist shown on both
// dashboards.
type Step struct {
	Status    Status
	Label     string
	Completed bool
	Current   bool
}

// Steps derives the full checklist for a vehicle at the given stage. A step
// is completed when it is at or before the current stage.
func Steps(current Status) []Step {
	steps := make([]Step, len(Statuses))
	cur := IndexOf(current)
	for i, s := range Statuses {
		steps[i] = Step{
			Status:    s,
			Label:     statusLabels[s],
			Completed: i <= cur,
			Current:   i == cur,
		}
	}
	return steps
}
