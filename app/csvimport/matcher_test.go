package csvimport

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var semester3 = []string{
	"Number Theory, Transforms and Queueing Theory",
	"Data Structures and Algorithms",
	"Object Oriented Programming",
	"Computer Organization and Architecture",
	"Universal Human Values",
	"Essentials of Office Automation",
	"Data Structures Lab",
	"Object Oriented Programming Lab",
}

func TestMatchSubject(t *testing.T) {
	tests := []struct {
		label string
		want  int
		ok    bool
	}{
		{"  data structures and algorithms ", 1, true},
		{"CS2301 - Data Structures & Algorithms", 1, true},
		{"Object Oriented Programming - CS2302", 2, true},
		{"CS2381 - Data Structures Laboratory", 6, true},
		{"OOPS Lab - Object Oriented", 7, true},
		{"Computer Organisation & Architecture", 3, true},
		{"Human Values", 4, true},
		{"Physical Education", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		idx, ok := MatchSubject(tt.label, semester3)
		assert.Equal(t, tt.ok, ok, "label %q", tt.label)
		if tt.ok {
			assert.Equal(t, tt.want, idx, "label %q", tt.label)
		}
	}
}

func TestMatchSubjectLabGate(t *testing.T) {
	_, ok := MatchSubject("Data Structures", []string{"Data Structures Lab"})
	assert.False(t, ok)

	_, ok = MatchSubject("Data Structures Lab", []string{"Data Structures"})
	assert.False(t, ok)
}

func TestKeywords(t *testing.T) {
	assert.Equal(t, []string{"computer", "shell", "scripting"},
		keywords("Computer Programming in C & Shell-Scripting"))
	assert.Empty(t, keywords("Lab and the"))
}
