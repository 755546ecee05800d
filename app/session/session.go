package session

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"gpa-tracker/app/catalog"
	"gpa-tracker/app/csvimport"
	"gpa-tracker/app/grading"
	"gpa-tracker/app/models"
	"gpa-tracker/app/sanitize"
)

var (
	ErrUnknownSemester = errors.New("semester not found")
	ErrIndexOutOfRange = errors.New("subject not found")
)

// AttendanceField names an editable attendance column.
type AttendanceField string

const (
	FieldConducted AttendanceField = "conducted"
	FieldAttended  AttendanceField = "attended"
	FieldTarget    AttendanceField = "target"
)

// Session is one client's working state. Every method is safe for concurrent use;
// calls on the same session are serialized.
type Session struct {
	ID string

	mu        sync.Mutex
	catalog   *catalog.Catalog
	semesters map[int]*semesterState

	// unix nanoseconds; kept outside mu so the store never waits on an import
	lastSeen atomic.Int64
}

type semesterState struct {
	grades        []models.SubjectGrade
	edited        bool
	attendance    []models.AttendanceRecord
	defaultTarget int
	projection    []models.ProjectionEntry
}

func newSession(id string, c *catalog.Catalog, now time.Time) *Session {
	sess := &Session{
		ID:        id,
		catalog:   c,
		semesters: make(map[int]*semesterState),
	}
	sess.touch(now)
	return sess
}

func (s *Session) touch(now time.Time) {
	s.lastSeen.Store(now.UnixNano())
}

func (s *Session) lastSeenBefore(t time.Time) bool {
	return s.lastSeen.Load() < t.UnixNano()
}

// state returns the semester's state, seeding it from the catalog on first use.
// Callers hold s.mu.
func (s *Session) state(number int) (*semesterState, error) {
	if st, ok := s.semesters[number]; ok {
		return st, nil
	}
	sem, ok := s.catalog.Semester(number)
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownSemester, number)
	}

	st := &semesterState{defaultTarget: sanitize.DefaultTarget}
	for _, subj := range sem.Subjects {
		st.grades = append(st.grades, models.SubjectGrade{Name: subj.Name, Credit: subj.Credit, Grade: subj.DefaultGrade})
		st.attendance = append(st.attendance, models.AttendanceRecord{Name: subj.Name, Target: sanitize.DefaultTarget})
		st.projection = append(st.projection, models.ProjectionEntry{Name: subj.Name, TargetGrade: models.GradeS})
	}
	s.semesters[number] = st
	return st, nil
}

// projected returns the positions of the subjects shown in the projection list:
// those whose current credit is above zero.
func (st *semesterState) projected() []int {
	var out []int
	for i, g := range st.grades {
		if g.Credit > 0 {
			out = append(out, i)
		}
	}
	return out
}

// projectionEntry resolves an index into the projection list.
func (st *semesterState) projectionEntry(index int) (*models.ProjectionEntry, error) {
	shown := st.projected()
	if err := checkIndex(index, len(shown)); err != nil {
		return nil, err
	}
	return &st.projection[shown[index]], nil
}

func checkIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d", ErrIndexOutOfRange, i)
	}
	return nil
}

func (s *Session) summary(number int, st *semesterState) models.SemesterSummary {
	sem, _ := s.catalog.Semester(number)
	grades := make([]models.SubjectGrade, len(st.grades))
	copy(grades, st.grades)
	return models.SemesterSummary{
		Number:   number,
		Name:     sem.Name,
		Subjects: grades,
		SGPA:     grading.SGPA(grades),
		Edited:   st.edited,
	}
}

// Semester returns the grade table of one semester with its SGPA.
func (s *Session) Semester(number int) (models.SemesterSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return models.SemesterSummary{}, err
	}
	return s.summary(number, st), nil
}

// Semesters returns every semester's grade table and the CGPA. Only semesters
// whose grades or credits have been edited count towards the CGPA.
func (s *Session) Semesters() ([]models.SemesterSummary, float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var (
		out    []models.SemesterSummary
		edited [][]models.SubjectGrade
	)
	for _, n := range s.catalog.Numbers() {
		st, err := s.state(n)
		if err != nil {
			continue
		}
		sum := s.summary(n, st)
		out = append(out, sum)
		if st.edited {
			edited = append(edited, sum.Subjects)
		}
	}
	return out, grading.CGPA(edited...)
}

// SetCredit updates a subject's credit, clamped to 0..5.
func (s *Session) SetCredit(number, index int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return err
	}
	if err := checkIndex(index, len(st.grades)); err != nil {
		return err
	}
	st.grades[index].Credit = sanitize.Credit(raw)
	st.edited = true
	return nil
}

// SetGrade updates a subject's letter grade.
func (s *Session) SetGrade(number, index int, g models.Grade) error {
	if !g.Valid() {
		return fmt.Errorf("invalid grade %d", int(g))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return err
	}
	if err := checkIndex(index, len(st.grades)); err != nil {
		return err
	}
	st.grades[index].Grade = g
	st.edited = true
	return nil
}

// Clear resets every grade of the semester to F, keeping credits.
func (s *Session) Clear(number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return err
	}
	for i := range st.grades {
		st.grades[i].Grade = models.GradeF
	}
	st.edited = true
	return nil
}

// Attendance returns the tracker rows and the semester's default target.
func (s *Session) Attendance(number int) ([]models.AttendanceView, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return nil, 0, err
	}
	views := make([]models.AttendanceView, len(st.attendance))
	for i, r := range st.attendance {
		views[i] = grading.ViewAttendance(r)
	}
	return views, st.defaultTarget, nil
}

// AttendanceRecords returns a copy of the semester's raw attendance records.
func (s *Session) AttendanceRecords(number int) ([]models.AttendanceRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return nil, err
	}
	out := make([]models.AttendanceRecord, len(st.attendance))
	copy(out, st.attendance)
	return out, nil
}

// SetAttendance updates one attendance column. Counters become non-negative
// integers and targets are clamped to 0..100. Attended is allowed to exceed
// conducted.
func (s *Session) SetAttendance(number, index int, field AttendanceField, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return err
	}
	if err := checkIndex(index, len(st.attendance)); err != nil {
		return err
	}
	rec := &st.attendance[index]
	switch field {
	case FieldConducted:
		rec.Conducted = sanitize.Count(raw)
	case FieldAttended:
		rec.Attended = sanitize.Count(raw)
	case FieldTarget:
		rec.Target = sanitize.Target(raw)
	default:
		return fmt.Errorf("unknown attendance field %q", field)
	}
	return nil
}

// SetDefaultTarget sets the semester's default target and applies it to every
// subject.
func (s *Session) SetDefaultTarget(number int, raw string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return 0, err
	}
	target := sanitize.Target(raw)
	st.defaultTarget = target
	for i := range st.attendance {
		st.attendance[i].Target = target
	}
	return target, nil
}

// Projection returns the ESE projection rows of the semester. Subjects whose
// credit is currently zero are left out; their marks and targets are kept for
// when the credit changes again.
func (s *Session) Projection(number int) ([]models.ProjectionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return nil, err
	}
	shown := st.projected()
	views := make([]models.ProjectionView, len(shown))
	for i, idx := range shown {
		views[i] = grading.ViewProjection(st.projection[idx])
	}
	return views, nil
}

// SetCIEMarks updates a subject's internal marks, clamped to 0..50.
func (s *Session) SetCIEMarks(number, index int, raw string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return err
	}
	entry, err := st.projectionEntry(index)
	if err != nil {
		return err
	}
	entry.CIEMarks = sanitize.Marks(raw)
	return nil
}

// SetTargetGrade updates a subject's target grade. Only grades above F are targets.
func (s *Session) SetTargetGrade(number, index int, g models.Grade) error {
	if !g.Valid() || g.Compare(models.GradeF) >= 0 {
		return fmt.Errorf("invalid target grade %s", g)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return err
	}
	entry, err := st.projectionEntry(index)
	if err != nil {
		return err
	}
	entry.TargetGrade = g
	return nil
}

// Loader fetches import rows.
type Loader func() ([]csvimport.Row, error)

// ImportAttendance replaces the semester's attendance with a fresh set built from
// the loaded rows. On error the existing records are kept. The session stays
// locked while loading, so concurrent imports apply one after the other.
func (s *Session) ImportAttendance(number int, load Loader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return 0, err
	}
	rows, err := load()
	if err != nil {
		return 0, err
	}
	records, matched := csvimport.BuildAttendance(rows, s.catalog.SubjectNames(number), st.defaultTarget)
	st.attendance = records
	return matched, nil
}

// ImportMarks merges imported internal marks into the rows of the projection list.
func (s *Session) ImportMarks(number int, load Loader) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, err := s.state(number)
	if err != nil {
		return 0, err
	}
	rows, err := load()
	if err != nil {
		return 0, err
	}
	shown := st.projected()
	entries := make([]models.ProjectionEntry, len(shown))
	for i, idx := range shown {
		entries[i] = st.projection[idx]
	}
	matched := csvimport.MergeMarks(rows, entries)
	for i, idx := range shown {
		st.projection[idx] = entries[i]
	}
	return matched, nil
}
