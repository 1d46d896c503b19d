package types

import (
	"strings"

	"github.com/google/uuid"
)

// MonthName is a calendar month in English, e.g. "February"
type MonthName string

// String returns the string representation
func (m MonthName) String() string {
	return string(m)
}

// calendar fixes the calendar order used to sort selected months
var calendar = [...]MonthName{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// Months returns all month names in calendar order
func Months() []MonthName {
	months := make([]MonthName, len(calendar))
	copy(months, calendar[:])
	return months
}

// Index returns the calendar position of the month (January=0)
func (m MonthName) Index() (int, bool) {
	for i, name := range calendar {
		if name == m {
			return i, true
		}
	}
	return -1, false
}

// IsValid reports whether the month name is recognized
func (m MonthName) IsValid() bool {
	_, ok := m.Index()
	return ok
}

// MemberName is the display name of a team member (FSC)
type MemberName string

// String returns the string representation
func (n MemberName) String() string {
	return string(n)
}

// Normalize trims surrounding whitespace
func (n MemberName) Normalize() MemberName {
	return MemberName(strings.TrimSpace(string(n)))
}

// DraftID identifies a form draft held for one browser session
type DraftID string

// String returns the string representation
func (id DraftID) String() string {
	return string(id)
}

// NewDraftID creates a new time-ordered DraftID using UUID v7
func NewDraftID() (DraftID, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return DraftID(id.String()), nil
}
