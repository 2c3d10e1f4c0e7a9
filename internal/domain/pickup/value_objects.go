package pickup

import (
	"errors"
	"time"
)

var (
	ErrInvalidSlot    = errors.New("invalid pickup slot")
	ErrDateInPast     = errors.New("pickup date cannot be in the past")
	ErrZeroPickupDate = errors.New("pickup date is required")
)

type Slot string

const (
	SlotMorning   Slot = "MORNING"
	SlotAfternoon Slot = "AFTERNOON"
	SlotEvening   Slot = "EVENING"
)

var slotWindows = map[Slot]string{
	SlotMorning:   "9:00 AM - 12:00 PM",
	SlotAfternoon: "12:00 PM - 4:00 PM",
	SlotEvening:   "4:00 PM - 7:00 PM",
}

func (s Slot) String() string {
	return string(s)
}

func (s Slot) IsValid() bool {
	_, ok := slotWindows[s]
	return ok
}

// Window returns the human-readable time range for the slot.
func (s Slot) Window() string {
	return slotWindows[s]
}

func NewSlot(s string) (Slot, error) {
	slot := Slot(s)
	if !slot.IsValid() {
		return "", ErrInvalidSlot
	}
	return slot, nil
}

type Date struct {
	value time.Time
}

// NewDate accepts calendar dates from today onward. Comparison is by day,
// not instant, so scheduling for later today is allowed.
func NewDate(d time.Time, now time.Time) (Date, error) {
	if d.IsZero() {
		return Date{}, ErrZeroPickupDate
	}
	day := startOfDay(d)
	if day.Before(startOfDay(now.In(d.Location()))) {
		return Date{}, ErrDateInPast
	}
	return Date{value: day}, nil
}

// startOfDay drops the clock in the value's own location. Truncating
// against absolute time would shift days near midnight outside UTC.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (d Date) Value() time.Time {
	return d.value
}
