package services

import (
	"strings"
)

// EscalationDetector decides whether an inbound message should be escalated
// to a human. It is a literal substring rule set, not a classifier:
// case-sensitive, no normalization. False positives and negatives are
// accepted by design.
type EscalationDetector struct {
	triggers []string
}

// DefaultTriggers returns the built-in trigger substrings associated with
// contact-information sharing: common mail domains, Arabic first-person words
// for "my name" / "my number" / "my email", and the Qatar calling code.
func DefaultTriggers() []string {
	return []string{"@gmail", "@hotmail", "اسمي", "رقمي", "+974", "ايميلي"}
}

// NewEscalationDetector creates a detector for the given trigger substrings.
// An empty list falls back to the default set.
func NewEscalationDetector(triggers []string) *EscalationDetector {
	if len(triggers) == 0 {
		triggers = DefaultTriggers()
	}
	return &EscalationDetector{triggers: triggers}
}

// Match reports whether the raw message contains any trigger substring
func (d *EscalationDetector) Match(message string) bool {
	for _, trigger := range d.triggers {
		if strings.Contains(message, trigger) {
			return true
		}
	}
	return false
}
