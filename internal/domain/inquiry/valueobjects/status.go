package valueobjects

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Status is a stage of the inquiry pipeline.
type Status string

const (
	StatusNew            Status = "new"
	StatusAssigned       Status = "assigned"
	StatusTalked         Status = "talked"
	StatusVisitScheduled Status = "visit_scheduled"
	StatusVisitConfirmed Status = "visit_confirmed"
	StatusClosed         Status = "closed"
)

var (
	ErrUnknownStatus  = errors.New("unknown inquiry status")
	ErrTerminalStatus = errors.New("inquiry is closed")
)

// pipeline is the required linear order; index is the stage rank.
var pipeline = []Status{
	StatusNew,
	StatusAssigned,
	StatusTalked,
	StatusVisitScheduled,
	StatusVisitConfirmed,
	StatusClosed,
}

// legacyAliases maps spellings that older clients send to canonical stages.
var legacyAliases = map[string]Status{
	"visit_completed": StatusVisitConfirmed,
}

// AllStatuses returns every stage in pipeline order.
func AllStatuses() []Status {
	out := make([]Status, len(pipeline))
	copy(out, pipeline)
	return out
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s.Rank() >= 0
}

// Rank is the position of s in the pipeline, or -1 for unknown values.
func (s Status) Rank() int {
	for i, p := range pipeline {
		if p == s {
			return i
		}
	}
	return -1
}

func (s Status) IsNew() bool {
	return s == StatusNew
}

func (s Status) IsClosed() bool {
	return s == StatusClosed
}

// IsOpen reports whether the inquiry still needs work.
func (s Status) IsOpen() bool {
	return s.IsValid() && !s.IsClosed()
}

// Next returns the unique successor of s.
func (s Status) Next() (Status, error) {
	rank := s.Rank()
	switch {
	case rank < 0:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	case s.IsClosed():
		return "", ErrTerminalStatus
	}
	return pipeline[rank+1], nil
}

// Label is the human-readable stage name, e.g. "Visit Scheduled".
func (s Status) Label() string {
	// Casers carry state, so a fresh one is built per call.
	return cases.Title(language.English).String(strings.ReplaceAll(string(s), "_", " "))
}

// ParseStatus normalizes user input ("Visit Scheduled", "VISIT_COMPLETED")
// to a canonical stage.
func ParseStatus(raw string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)

	if alias, ok := legacyAliases[key]; ok {
		return alias, nil
	}

	s := Status(key)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, raw)
	}
	return s, nil
}
