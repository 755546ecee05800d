// Package catalog holds the curriculum: which subjects each semester has, with
// their default credit and grade. It is loaded once and never modified.
package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"sort"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"gpa-tracker/app/models"
)

//go:embed semesters.yaml
var defaultDocument []byte

type document struct {
	Semesters []semesterDoc `yaml:"semesters" validate:"required,min=1,dive"`
}

type semesterDoc struct {
	Number   int          `yaml:"number" validate:"gte=1"`
	Name     string       `yaml:"name" validate:"required"`
	Subjects []subjectDoc `yaml:"subjects" validate:"required,min=1,dive"`
}

type subjectDoc struct {
	Name         string `yaml:"name" validate:"required"`
	Credit       int    `yaml:"credit" validate:"gte=0,lte=5"`
	DefaultGrade string `yaml:"default_grade"`
}

// Catalog is the read-only curriculum, ordered by semester number.
type Catalog struct {
	semesters []models.Semester
	byNumber  map[int]int
}

// Default returns the built-in curriculum.
func Default() (*Catalog, error) {
	return Parse(defaultDocument)
}

// Load reads a catalog file, or the built-in curriculum when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Parse decodes and validates a catalog document.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	c := &Catalog{byNumber: make(map[int]int, len(doc.Semesters))}
	for _, sd := range doc.Semesters {
		if _, dup := c.byNumber[sd.Number]; dup {
			return nil, fmt.Errorf("invalid catalog: semester %d listed twice", sd.Number)
		}
		sem := models.Semester{Number: sd.Number, Name: sd.Name}
		for _, s := range sd.Subjects {
			grade := models.GradeF
			if s.DefaultGrade != "" {
				g, err := models.ParseGrade(s.DefaultGrade)
				if err != nil {
					return nil, fmt.Errorf("invalid catalog: semester %d, %s: %w", sd.Number, s.Name, err)
				}
				grade = g
			}
			sem.Subjects = append(sem.Subjects, models.CatalogSubject{Name: s.Name, Credit: s.Credit, DefaultGrade: grade})
		}
		c.byNumber[sd.Number] = -1
		c.semesters = append(c.semesters, sem)
	}

	sort.Slice(c.semesters, func(i, j int) bool { return c.semesters[i].Number < c.semesters[j].Number })
	for i, s := range c.semesters {
		c.byNumber[s.Number] = i
	}
	return c, nil
}

// Semesters returns every semester in order. Callers must not modify the result.
func (c *Catalog) Semesters() []models.Semester {
	return c.semesters
}

// Numbers returns the semester numbers in order.
func (c *Catalog) Numbers() []int {
	out := make([]int, len(c.semesters))
	for i, s := range c.semesters {
		out[i] = s.Number
	}
	return out
}

// Semester looks up a semester by number.
func (c *Catalog) Semester(number int) (models.Semester, bool) {
	i, ok := c.byNumber[number]
	if !ok {
		return models.Semester{}, false
	}
	return c.semesters[i], true
}

// SubjectNames returns the subject names of a semester, or nil if it is unknown.
func (c *Catalog) SubjectNames(number int) []string {
	sem, ok := c.Semester(number)
	if !ok {
		return nil
	}
	names := make([]string, len(sem.Subjects))
	for i, s := range sem.Subjects {
		names[i] = s.Name
	}
	return names
}

// Latest returns the highest semester number, 0 for an empty catalog.
func (c *Catalog) Latest() int {
	if len(c.semesters) == 0 {
		return 0
	}
	return c.semesters[len(c.semesters)-1].Number
}
