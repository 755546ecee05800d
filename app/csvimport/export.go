package csvimport

import (
	"fmt"

	"github.com/gocarina/gocsv"

	"gpa-tracker/app/models"
)

// ExportAttendance writes records as CSV under the export's column names, so the
// output can be imported again.
func ExportAttendance(records []models.AttendanceRecord) ([]byte, error) {
	if records == nil {
		records = []models.AttendanceRecord{}
	}
	out, err := gocsv.MarshalBytes(&records)
	if err != nil {
		return nil, fmt.Errorf("marshal attendance: %w", err)
	}
	return out, nil
}
