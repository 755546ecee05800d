package models

// AttendanceRecord tracks one subject's classes for a semester.
// Attended may exceed Conducted; such records report percentages above 100.
type AttendanceRecord struct {
	Name      string `json:"name" csv:"Course"`
	Conducted int    `json:"conducted" csv:"Total Hours"`
	Attended  int    `json:"attended" csv:"Attended Hours"`
	Target    int    `json:"target" csv:"Target %"`
}

// AttendanceView is an AttendanceRecord with its derived figures.
type AttendanceView struct {
	AttendanceRecord
	CurrentPercentage float64 `json:"current_percentage"`
	Outlook           Outlook `json:"outlook"`
	Message           string  `json:"message"`
}

// Outlook is the result of an extra-classes projection.
type Outlook struct {
	Status OutlookStatus `json:"status"`
	Count  int           `json:"count,omitempty"`
}
