package valueobjects

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// InquiryType is an open enumeration; the constants are the types the public
// forms submit today, any other slug is accepted as-is.
type InquiryType string

const (
	TypeGeneral       InquiryType = "general"
	TypeScheduleVisit InquiryType = "schedule_visit"
	TypeCallback      InquiryType = "callback"
	TypeTenant        InquiryType = "tenant"
	TypeOwner         InquiryType = "owner"
)

var ErrInvalidInquiryType = errors.New("invalid inquiry type")

var (
	knownTypes  = []InquiryType{TypeGeneral, TypeScheduleVisit, TypeCallback, TypeTenant, TypeOwner}
	typePattern = regexp.MustCompile(`^[a-z0-9_]{1,50}$`)
)

func KnownInquiryTypes() []InquiryType {
	out := make([]InquiryType, len(knownTypes))
	copy(out, knownTypes)
	return out
}

func (t InquiryType) String() string {
	return string(t)
}

func (t InquiryType) IsKnown() bool {
	for _, k := range knownTypes {
		if k == t {
			return true
		}
	}
	return false
}

// ParseInquiryType lowercases raw and defaults an empty value to general.
func ParseInquiryType(raw string) (InquiryType, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = strings.NewReplacer(" ", "_", "-", "_").Replace(key)
	if key == "" {
		return TypeGeneral, nil
	}
	if !typePattern.MatchString(key) {
		return "", fmt.Errorf("%w: %q", ErrInvalidInquiryType, raw)
	}
	return InquiryType(key), nil
}
