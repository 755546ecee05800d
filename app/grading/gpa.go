package grading

import "gpa-tracker/app/models"

// Weighted is one (credit, grade) pair of a grade point average.
type Weighted struct {
	Credit int
	Grade  models.Grade
}

// GradeFromPercentage returns the best grade whose threshold pct meets, or F.
func GradeFromPercentage(pct float64) models.Grade {
	for _, band := range models.Scale {
		if band.Grade == models.GradeF {
			break
		}
		if pct >= band.MinPercentage {
			return band.Grade
		}
	}
	return models.GradeF
}

// WeightedGPA computes sum(credit*point)/sum(credit) rounded to two decimals.
// Zero-credit pairs do not move the result; no credits at all yields 0.
func WeightedGPA(pairs []Weighted) float64 {
	totalCredits := 0
	totalPoints := 0.0
	for _, p := range pairs {
		if p.Credit <= 0 {
			continue
		}
		totalCredits += p.Credit
		totalPoints += float64(p.Credit) * p.Grade.Point()
	}
	if totalCredits == 0 {
		return 0
	}
	return roundTo(totalPoints/float64(totalCredits), 2)
}

// SGPA is the grade point average of one semester's subjects.
func SGPA(subjects []models.SubjectGrade) float64 {
	return WeightedGPA(weighted(nil, subjects))
}

// CGPA is the grade point average across semesters, weighting every subject by
// its credit rather than averaging semester SGPAs.
func CGPA(semesters ...[]models.SubjectGrade) float64 {
	var pairs []Weighted
	for _, subjects := range semesters {
		pairs = weighted(pairs, subjects)
	}
	return WeightedGPA(pairs)
}

func weighted(dst []Weighted, subjects []models.SubjectGrade) []Weighted {
	for _, s := range subjects {
		dst = append(dst, Weighted{Credit: s.Credit, Grade: s.Grade})
	}
	return dst
}
