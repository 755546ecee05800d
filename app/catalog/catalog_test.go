package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"gpa-tracker/app/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c, err := Default()
	require.NoError(t, err)

	assert.Equal(t, []int{1, 2, 3}, c.Numbers())
	assert.Equal(t, 3, c.Latest())

	sem, ok := c.Semester(3)
	require.True(t, ok)
	assert.Equal(t, "Semester 3", sem.Name)
	require.Len(t, sem.Subjects, 8)
	assert.Equal(t, models.CatalogSubject{Name: "Essentials of Office Automation", Credit: 0, DefaultGrade: models.GradeF}, sem.Subjects[5])
	assert.Equal(t, "Number Theory, Transforms and Queueing Theory", c.SubjectNames(3)[0])

	_, ok = c.Semester(9)
	assert.False(t, ok)
	assert.Nil(t, c.SubjectNames(9))
}

func TestParseSortsAndParsesGrades(t *testing.T) {
	doc := `
semesters:
  - number: 5
    name: Fifth
    subjects:
      - {name: Compilers, credit: 4, default_grade: "a+"}
  - number: 4
    name: Fourth
    subjects:
      - {name: Networks, credit: 3}
`
	c, err := Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, []int{4, 5}, c.Numbers())

	sem, _ := c.Semester(5)
	assert.Equal(t, models.GradeAPlus, sem.Subjects[0].DefaultGrade)
	sem, _ = c.Semester(4)
	assert.Equal(t, models.GradeF, sem.Subjects[0].DefaultGrade)
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := map[string]string{
		"credit too high": "semesters:\n  - {number: 1, name: One, subjects: [{name: X, credit: 6}]}\n",
		"no subjects":     "semesters:\n  - {number: 1, name: One, subjects: []}\n",
		"bad grade":       "semesters:\n  - {number: 1, name: One, subjects: [{name: X, credit: 2, default_grade: Z}]}\n",
		"duplicate":       "semesters:\n  - {number: 1, name: One, subjects: [{name: X, credit: 2}]}\n  - {number: 1, name: Again, subjects: [{name: Y, credit: 2}]}\n",
		"no semesters":    "semesters: []\n",
		"not yaml":        "semesters: [",
	}
	for name, doc := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestLoad(t *testing.T) {
	c, err := Load("")
	require.NoError(t, err)
	assert.Len(t, c.Semesters(), 3)

	p := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(p, []byte("semesters:\n  - {number: 7, name: Seven, subjects: [{name: X, credit: 1}]}\n"), 0o644))
	c, err = Load(p)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, c.Numbers())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
