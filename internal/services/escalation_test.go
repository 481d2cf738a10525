package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultTriggersMatchContactSharing(t *testing.T) {
	detector := NewEscalationDetector(nil)

	cases := []struct {
		message string
		match   bool
	}{
		{"تواصل معي على ahmed@gmail.com", true},
		{"my mail is x@hotmail.com", true},
		{"اسمي أحمد", true},
		{"رقمي 55555555", true},
		{"اتصل على +97455555555", true},
		{"ايميلي هنا", true},
		{"كم السعر؟", false},
		{"hello there", false},
		{"", false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.match, detector.Match(tc.message), "message: %q", tc.message)
	}
}

func TestMatchingIsCaseSensitive(t *testing.T) {
	detector := NewEscalationDetector(nil)

	// No normalization: the rule set is literal by design
	assert.False(t, detector.Match("AHMED@GMAIL.COM"))
	assert.True(t, detector.Match("ahmed@gmail.com"))
}

func TestCustomTriggerList(t *testing.T) {
	detector := NewEscalationDetector([]string{"call me"})

	assert.True(t, detector.Match("please call me back"))
	assert.False(t, detector.Match("رقمي 5555"))
}
