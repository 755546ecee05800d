package csvimport

import (
	"gpa-tracker/app/models"
	"gpa-tracker/app/sanitize"
)

// Column names of the institutional export.
const (
	ColumnCourse        = "Course"
	ColumnTotalHours    = "Total Hours"
	ColumnAttendedHours = "Attended Hours"
	ColumnInternalMarks = "Internal Marks"
)

// BuildAttendance returns a fresh attendance set for subjects, filled from rows.
// Counters start at zero and are only overwritten by strictly positive imported
// values. It reports how many rows matched a subject.
func BuildAttendance(rows []Row, subjects []string, target int) ([]models.AttendanceRecord, int) {
	records := make([]models.AttendanceRecord, len(subjects))
	for i, name := range subjects {
		records[i] = models.AttendanceRecord{Name: name, Target: target}
	}

	matched := 0
	for _, row := range rows {
		idx, ok := MatchSubject(row[ColumnCourse], subjects)
		if !ok {
			continue
		}
		matched++
		if n := sanitize.Count(row[ColumnTotalHours]); n > 0 {
			records[idx].Conducted = n
		}
		if n := sanitize.Count(row[ColumnAttendedHours]); n > 0 {
			records[idx].Attended = n
		}
	}
	return records, matched
}

// MergeMarks writes imported internal marks into the matching entries in place,
// leaving every other field and every unmatched entry untouched.
func MergeMarks(rows []Row, entries []models.ProjectionEntry) int {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}

	matched := 0
	for _, row := range rows {
		idx, ok := MatchSubject(row[ColumnCourse], names)
		if !ok {
			continue
		}
		matched++
		if n := sanitize.ParseInt(row[ColumnInternalMarks]); n > 0 {
			entries[idx].CIEMarks = sanitize.Clamp(n, 0, sanitize.MaxMarks)
		}
	}
	return matched
}
