package grading

import (
	"fmt"

	"gpa-tracker/app/models"
)

const (
	// MaxESEMarks is the end-semester exam's maximum score; CIE has the same maximum.
	MaxESEMarks = 50
	// MinESEPass is the exam's own pass mark (40% of 50).
	MinESEPass = 20
)

// ESEMarksNeeded returns the end-semester exam score needed to reach target given
// the internal (CIE) marks out of 50. Total = CIE + ESE, out of 100.
func ESEMarksNeeded(cieMarks int, target models.Grade) models.ESEOutlook {
	required := int(target.Threshold()) - cieMarks
	if required > MaxESEMarks {
		return models.ESEOutlook{Status: models.Impossible, Deficit: required}
	}

	needed := required
	if needed < 0 {
		needed = 0
	}
	if needed == 0 {
		return models.ESEOutlook{Status: models.Achieved}
	}

	out := models.ESEOutlook{Status: models.Needed, Needed: needed}
	if needed < MinESEPass && cieMarks+needed >= MaxESEMarks {
		out.Warning = true
	}
	return out
}

// DescribeESE renders an ESE outlook the way the projection table shows it.
func DescribeESE(o models.ESEOutlook) string {
	switch o.Status {
	case models.Impossible:
		return fmt.Sprintf("Impossible! Requires %d marks in ESE (max %d)", o.Deficit, MaxESEMarks)
	case models.Achieved:
		return "Target already achieved with CIE marks alone!"
	}
	if o.Warning {
		return fmt.Sprintf("Note: Need %d marks in ESE, but minimum %d (40%%) required to pass ESE", o.Needed, MinESEPass)
	}
	return fmt.Sprintf("Need %d marks in ESE (out of %d)", o.Needed, MaxESEMarks)
}

// ViewProjection derives the projection row for an entry.
func ViewProjection(e models.ProjectionEntry) models.ProjectionView {
	o := ESEMarksNeeded(e.CIEMarks, e.TargetGrade)
	band := e.TargetGrade.Band()
	return models.ProjectionView{
		ProjectionEntry:    e,
		RequiredPercentage: band.MinPercentage,
		GradePoint:         band.Point,
		Outlook:            o,
		Message:            DescribeESE(o),
	}
}
