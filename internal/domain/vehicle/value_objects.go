package vehicle

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrInvalidConditionScore = errors.New("condition score must be between 1 and 10")
	ErrImplausibleYear       = errors.New("year must be a plausible 4-digit year")
	ErrEmptyMake             = errors.New("make must not be empty")
	ErrEmptyModel            = errors.New("model must not be empty")
)

const (
	MinConditionScore = 1
	MaxConditionScore = 10
	minYear           = 1900
)

type ConditionScore struct {
	value int
}

func NewConditionScore(v int) (ConditionScore, error) {
	if v < MinConditionScore || v > MaxConditionScore {
		return ConditionScore{}, ErrInvalidConditionScore
	}
	return ConditionScore{value: v}, nil
}

func (c ConditionScore) Value() int {
	return c.value
}

type Year struct {
	value int
}

// NewYear accepts model years from 1900 through next calendar year
// relative to now.
func NewYear(v int, now time.Time) (Year, error) {
	if v < minYear || v > now.Year()+1 {
		return Year{}, ErrImplausibleYear
	}
	return Year{value: v}, nil
}

func (y Year) Value() int {
	return y.value
}

type Description struct {
	make  string
	model string
}

func NewDescription(makeName, model string) (Description, error) {
	makeName = strings.TrimSpace(makeName)
	model = strings.TrimSpace(model)
	if makeName == "" {
		return Description{}, ErrEmptyMake
	}
	if model == "" {
		return Description{}, ErrEmptyModel
	}
	return Description{make: makeName, model: model}, nil
}

func (d Description) Make() string  { return d.make }
func (d Description) Model() string { return d.model }

// PickupSchedule is the scheduled half of the vehicle's pickup state.
// A nil *PickupSchedule means the vehicle is still unscheduled; there is
// no date without a slot and no slot without a date.
type PickupSchedule struct {
	date time.Time
	slot string
}

func NewPickupSchedule(date time.Time, slot string) PickupSchedule {
	return PickupSchedule{date: date, slot: slot}
}

func (p PickupSchedule) Date() time.Time { return p.date }
func (p PickupSchedule) Slot() string    { return p.slot }
