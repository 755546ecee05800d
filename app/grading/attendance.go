package grading

import (
	"fmt"
	"math"

	"gpa-tracker/app/models"
)

// CurrentPercentage returns attended/conducted as a percentage rounded to one
// decimal place, or 0 when no classes have been conducted.
func CurrentPercentage(conducted, attended int) float64 {
	if conducted <= 0 {
		return 0
	}
	return roundTo(rawPercentage(conducted, attended), 1)
}

func rawPercentage(conducted, attended int) float64 {
	if conducted <= 0 {
		return 0
	}
	return float64(attended) / float64(conducted) * 100
}

// ExtraClassesNeeded returns how many consecutive classes must be attended for the
// attendance percentage to reach target.
func ExtraClassesNeeded(conducted, attended int, target float64) models.Outlook {
	if rawPercentage(conducted, attended) >= target {
		return models.Outlook{Status: models.Achieved}
	}
	if target >= 100 {
		return models.Outlook{Status: models.Impossible}
	}

	t := target / 100
	count := math.Ceil((t*float64(conducted) - float64(attended)) / (1 - t))
	if count <= 0 {
		return models.Outlook{Status: models.Achieved}
	}
	if count >= math.MaxInt {
		return models.Outlook{Status: models.Needed, Count: math.MaxInt}
	}
	return models.Outlook{Status: models.Needed, Count: int(count)}
}

// DescribeOutlook renders an attendance outlook the way the tracker shows it.
func DescribeOutlook(o models.Outlook) string {
	switch o.Status {
	case models.Achieved:
		return "Target Achieved"
	case models.Impossible:
		return "Impossible (100% target)"
	}
	if o.Count == 1 {
		return "1 class"
	}
	return fmt.Sprintf("%d classes", o.Count)
}

// ViewAttendance derives the tracker row for a record.
func ViewAttendance(r models.AttendanceRecord) models.AttendanceView {
	o := ExtraClassesNeeded(r.Conducted, r.Attended, float64(r.Target))
	return models.AttendanceView{
		AttendanceRecord:  r,
		CurrentPercentage: CurrentPercentage(r.Conducted, r.Attended),
		Outlook:           o,
		Message:           DescribeOutlook(o),
	}
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
