package model

import "time"

// Severity classifies a notification for styling.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// KnownSeverity reports whether s is one of the four display severities.
func KnownSeverity(s Severity) bool {
	switch s {
	case SeveritySuccess, SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Notification is an ephemeral display message. The ID is assigned when it
// enters the display queue; no identity persists beyond display.
type Notification struct {
	ID       string        `json:"id"`
	Severity Severity      `json:"type"`
	Header   string        `json:"header"`
	Text     string        `json:"text"`
	AutoHide bool          `json:"autohide"`
	Delay    time.Duration `json:"delay"`
}
