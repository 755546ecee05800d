package models

import (
	"fmt"
	"strings"
)

// Grade is a letter grade. Lower values rank higher: GradeS is the best grade and
// GradeF the fail grade.
type Grade int

const (
	GradeS Grade = iota
	GradeAPlus
	GradeA
	GradeBPlus
	GradeB
	GradeCPlus
	GradeC
	GradeD
	GradeP
	GradeF
)

// GradeBand is one row of the grading scheme.
type GradeBand struct {
	Grade         Grade   `json:"grade"`
	MinPercentage float64 `json:"min_percentage"`
	Point         float64 `json:"grade_point"`
	Range         string  `json:"range"`
}

// Scale lists every grade from best to worst with strictly decreasing thresholds.
// F has no threshold of its own; it covers everything below P.
var Scale = []GradeBand{
	{GradeS, 90, 10.0, "Greater than or equal to 90%"},
	{GradeAPlus, 85, 9.0, "Greater than or equal to 85% and < 90%"},
	{GradeA, 80, 8.5, "Greater than or equal to 80% and < 85%"},
	{GradeBPlus, 75, 8.0, "Greater than or equal to 75% and < 80%"},
	{GradeB, 70, 7.5, "Greater than or equal to 70% and < 75%"},
	{GradeCPlus, 65, 7.0, "Greater than or equal to 65% and < 70%"},
	{GradeC, 60, 6.5, "Greater than or equal to 60% and < 65%"},
	{GradeD, 55, 6.0, "Greater than or equal to 55% and < 60%"},
	{GradeP, 50, 5.5, "Greater than or equal to 50% and < 55%"},
	{GradeF, 0, 0, "< 50% OR ESE < 40% (i.e., < 20 out of 50)"},
}

var gradeLetters = [...]string{"S", "A+", "A", "B+", "B", "C+", "C", "D", "P", "F"}

// Grades returns every grade in scale order.
func Grades() []Grade {
	out := make([]Grade, len(Scale))
	for i, b := range Scale {
		out[i] = b.Grade
	}
	return out
}

// TargetGrades returns the grades a student can aim for (everything except F).
func TargetGrades() []Grade {
	return Grades()[:len(Scale)-1]
}

func (g Grade) Valid() bool {
	return g >= GradeS && g <= GradeF
}

func (g Grade) String() string {
	if !g.Valid() {
		return fmt.Sprintf("Grade(%d)", int(g))
	}
	return gradeLetters[g]
}

// Band returns the scale row for g.
func (g Grade) Band() GradeBand {
	if !g.Valid() {
		return Scale[GradeF]
	}
	return Scale[g]
}

// Point returns the grade point, 0 for F or an invalid grade.
func (g Grade) Point() float64 {
	return g.Band().Point
}

// Threshold returns the minimum percentage needed for g.
func (g Grade) Threshold() float64 {
	return g.Band().MinPercentage
}

// Compare orders grades by rank: negative when g is better than other.
func (g Grade) Compare(other Grade) int {
	return int(g) - int(other)
}

// ParseGrade accepts a letter grade in any case, surrounded by optional whitespace.
func ParseGrade(s string) (Grade, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, l := range gradeLetters {
		if l == s {
			return Grade(i), nil
		}
	}
	return GradeF, fmt.Errorf("unknown grade %q", s)
}

func (g Grade) MarshalText() ([]byte, error) {
	if !g.Valid() {
		return nil, fmt.Errorf("invalid grade %d", int(g))
	}
	return []byte(g.String()), nil
}

func (g *Grade) UnmarshalText(b []byte) error {
	parsed, err := ParseGrade(string(b))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}
