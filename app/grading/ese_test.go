package grading

import (
	"testing"

	"gpa-tracker/app/models"

	"github.com/stretchr/testify/assert"
)

func TestESEMarksNeeded(t *testing.T) {
	tests := []struct {
		name   string
		cie    int
		target models.Grade
		want   models.ESEOutlook
	}{
		{"cie alone reaches S", 90, models.GradeS, models.ESEOutlook{Status: models.Achieved}},
		{"cie above threshold", 50, models.GradeF, models.ESEOutlook{Status: models.Achieved}},
		{"out of reach", 10, models.GradeS, models.ESEOutlook{Status: models.Impossible, Deficit: 80}},
		{"just reachable", 40, models.GradeS, models.ESEOutlook{Status: models.Needed, Needed: 50}},
		{"plain need", 35, models.GradeC, models.ESEOutlook{Status: models.Needed, Needed: 25}},
		{"below exam pass mark", 45, models.GradeP, models.ESEOutlook{Status: models.Needed, Needed: 5, Warning: true}},
		{"exactly exam pass mark", 30, models.GradeP, models.ESEOutlook{Status: models.Needed, Needed: 20}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ESEMarksNeeded(tt.cie, tt.target))
		})
	}
}

func TestDescribeESE(t *testing.T) {
	assert.Equal(t, "Impossible! Requires 80 marks in ESE (max 50)",
		DescribeESE(models.ESEOutlook{Status: models.Impossible, Deficit: 80}))
	assert.Equal(t, "Target already achieved with CIE marks alone!",
		DescribeESE(models.ESEOutlook{Status: models.Achieved}))
	assert.Equal(t, "Need 25 marks in ESE (out of 50)",
		DescribeESE(models.ESEOutlook{Status: models.Needed, Needed: 25}))
	assert.Equal(t, "Note: Need 5 marks in ESE, but minimum 20 (40%) required to pass ESE",
		DescribeESE(models.ESEOutlook{Status: models.Needed, Needed: 5, Warning: true}))
}

func TestViewProjection(t *testing.T) {
	v := ViewProjection(models.ProjectionEntry{Name: "Object Oriented Programming", CIEMarks: 35, TargetGrade: models.GradeC})
	assert.Equal(t, 60.0, v.RequiredPercentage)
	assert.Equal(t, 6.5, v.GradePoint)
	assert.Equal(t, 25, v.Outlook.Needed)
}
