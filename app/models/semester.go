package models

// CatalogSubject is a subject as listed in the curriculum.
type CatalogSubject struct {
	Name         string `json:"name"`
	Credit       int    `json:"credit"`
	DefaultGrade Grade  `json:"default_grade"`
}

// Semester is one curriculum semester.
type Semester struct {
	Number   int              `json:"number"`
	Name     string           `json:"name"`
	Subjects []CatalogSubject `json:"subjects"`
}

// SemesterSummary is the grade-entry view of one semester.
type SemesterSummary struct {
	Number   int            `json:"number"`
	Name     string         `json:"name"`
	Subjects []SubjectGrade `json:"subjects"`
	SGPA     float64        `json:"sgpa"`
	Edited   bool           `json:"edited"`
}
