package agent

import (
	"fmt"
	"strings"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	return s == StatusActive || s == StatusInactive
}

func ParseStatus(raw string) (Status, error) {
	s := Status(strings.ToLower(strings.TrimSpace(raw)))
	if s == "" {
		return StatusActive, nil
	}
	if !s.IsValid() {
		return "", fmt.Errorf("invalid agent status: %s", raw)
	}
	return s, nil
}
