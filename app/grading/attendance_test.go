package grading

import (
	"math"
	"testing"

	"gpa-tracker/app/models"

	"github.com/stretchr/testify/assert"
)

func TestCurrentPercentage(t *testing.T) {
	assert.Equal(t, 0.0, CurrentPercentage(0, 0))
	assert.Equal(t, 70.0, CurrentPercentage(10, 7))
	assert.Equal(t, 66.7, CurrentPercentage(3, 2))
	// attended above conducted is reported as is
	assert.Equal(t, 120.0, CurrentPercentage(10, 12))
}

func TestExtraClassesNeeded(t *testing.T) {
	tests := []struct {
		name      string
		conducted int
		attended  int
		target    float64
		want      models.Outlook
	}{
		{"below target", 10, 7, 75, models.Outlook{Status: models.Needed, Count: 2}},
		{"exactly on target", 4, 3, 75, models.Outlook{Status: models.Achieved}},
		{"above target", 10, 9, 75, models.Outlook{Status: models.Achieved}},
		{"nothing conducted", 0, 0, 75, models.Outlook{Status: models.Achieved}},
		{"zero target", 10, 0, 0, models.Outlook{Status: models.Achieved}},
		{"full target unmet", 10, 9, 100, models.Outlook{Status: models.Impossible}},
		{"full target met", 10, 10, 100, models.Outlook{Status: models.Achieved}},
		{"over full target", 10, 10, 120, models.Outlook{Status: models.Impossible}},
		{"all absent", 20, 0, 50, models.Outlook{Status: models.Needed, Count: 20}},
		{"huge count saturates", math.MaxInt, 0, 75, models.Outlook{Status: models.Needed, Count: math.MaxInt}},
		{"huge conducted near full target", 1000000000000000000, 0, 99, models.Outlook{Status: models.Needed, Count: math.MaxInt}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtraClassesNeeded(tt.conducted, tt.attended, tt.target))
		})
	}
}

func TestExtraClassesNeededReachesTarget(t *testing.T) {
	for conducted := 1; conducted <= 40; conducted++ {
		for attended := 0; attended <= conducted; attended++ {
			for target := 5.0; target < 100; target += 5 {
				o := ExtraClassesNeeded(conducted, attended, target)
				current := float64(attended) / float64(conducted) * 100
				if current >= target {
					assert.Equal(t, models.Achieved, o.Status)
					continue
				}
				if o.Status != models.Needed {
					continue
				}
				assert.Positive(t, o.Count)
				after := float64(attended+o.Count) / float64(conducted+o.Count) * 100
				assert.GreaterOrEqual(t, after+1e-9, target,
					"conducted=%d attended=%d target=%v count=%d", conducted, attended, target, o.Count)
			}
		}
	}
}

func TestDescribeOutlook(t *testing.T) {
	assert.Equal(t, "Target Achieved", DescribeOutlook(models.Outlook{Status: models.Achieved}))
	assert.Equal(t, "Impossible (100% target)", DescribeOutlook(models.Outlook{Status: models.Impossible}))
	assert.Equal(t, "2 classes", DescribeOutlook(models.Outlook{Status: models.Needed, Count: 2}))
	assert.Equal(t, "1 class", DescribeOutlook(models.Outlook{Status: models.Needed, Count: 1}))
}

func TestViewAttendance(t *testing.T) {
	v := ViewAttendance(models.AttendanceRecord{Name: "Discrete Mathematics", Conducted: 10, Attended: 7, Target: 75})
	assert.Equal(t, 70.0, v.CurrentPercentage)
	assert.Equal(t, 2, v.Outlook.Count)
	assert.Equal(t, "2 classes", v.Message)
}
