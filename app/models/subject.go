package models

// SubjectGrade is one row of the SGPA table.
type SubjectGrade struct {
	Name   string `json:"name"`
	Credit int    `json:"credit"`
	Grade  Grade  `json:"grade"`
}

// ProjectionEntry is one row of the ESE projection table.
type ProjectionEntry struct {
	Name        string `json:"name"`
	CIEMarks    int    `json:"cie_marks"`
	TargetGrade Grade  `json:"target_grade"`
}

// ProjectionView is a ProjectionEntry with its derived figures.
type ProjectionView struct {
	ProjectionEntry
	RequiredPercentage float64    `json:"required_percentage"`
	GradePoint         float64    `json:"grade_point"`
	Outlook            ESEOutlook `json:"outlook"`
	Message            string     `json:"message"`
}

// ESEOutlook is the result of an end-semester-exam projection.
type ESEOutlook struct {
	Status  OutlookStatus `json:"status"`
	Needed  int           `json:"needed,omitempty"`
	Deficit int           `json:"deficit,omitempty"`
	Warning bool          `json:"warning,omitempty"`
}
