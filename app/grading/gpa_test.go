package grading

import (
	"testing"

	"gpa-tracker/app/models"

	"github.com/stretchr/testify/assert"
)

func TestWeightedGPA(t *testing.T) {
	assert.Equal(t, 0.0, WeightedGPA(nil))
	assert.Equal(t, 0.0, WeightedGPA([]Weighted{{Credit: 0, Grade: models.GradeS}}))
	assert.Equal(t, 5.0, WeightedGPA([]Weighted{
		{Credit: 4, Grade: models.GradeS},
		{Credit: 4, Grade: models.GradeF},
	}))
	// (4*9 + 3*8.5) / 7 = 8.7857...
	assert.Equal(t, 8.79, WeightedGPA([]Weighted{
		{Credit: 4, Grade: models.GradeAPlus},
		{Credit: 3, Grade: models.GradeA},
	}))
}

func TestWeightedGPAIgnoresZeroCredit(t *testing.T) {
	base := []Weighted{{Credit: 3, Grade: models.GradeB}}
	withZero := append([]Weighted{{Credit: 0, Grade: models.GradeF}}, base...)
	assert.Equal(t, WeightedGPA(base), WeightedGPA(withZero))
}

func TestGradeFromPercentage(t *testing.T) {
	tests := []struct {
		pct  float64
		want models.Grade
	}{
		{100, models.GradeS},
		{90, models.GradeS},
		{89.9, models.GradeAPlus},
		{85, models.GradeAPlus},
		{72, models.GradeB},
		{55, models.GradeD},
		{50, models.GradeP},
		{49.99, models.GradeF},
		{0, models.GradeF},
		{-5, models.GradeF},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, GradeFromPercentage(tt.pct), "pct=%v", tt.pct)
	}
}

func TestSGPAAndCGPA(t *testing.T) {
	sem1 := []models.SubjectGrade{
		{Name: "Discrete Mathematics", Credit: 4, Grade: models.GradeS},
		{Name: "Python for Engineers", Credit: 3, Grade: models.GradeB},
	}
	sem2 := []models.SubjectGrade{
		{Name: "Engineering Economics", Credit: 3, Grade: models.GradeC},
		{Name: "Essentials of Office Automation", Credit: 0, Grade: models.GradeF},
	}

	// (40 + 22.5) / 7
	assert.Equal(t, 8.93, SGPA(sem1))
	assert.Equal(t, 6.5, SGPA(sem2))
	// (40 + 22.5 + 19.5) / 10
	assert.Equal(t, 8.2, CGPA(sem1, sem2))
	assert.Equal(t, 0.0, CGPA())
}
