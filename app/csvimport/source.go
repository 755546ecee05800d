package csvimport

import (
	"errors"
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	// ErrFetch means the import resource could not be retrieved.
	ErrFetch = errors.New("failed to load CSV file")
	// ErrEmpty means the resource was retrieved but held no data rows.
	ErrEmpty = errors.New("CSV file is empty or invalid")
)

// Source is the well-known location of the attendance/marks export. Locations
// starting with http:// or https:// are fetched, anything else is read from disk.
// A location ending in .xlsx is decoded as a workbook instead of CSV.
type Source struct {
	Location string
	Timeout  time.Duration
}

// Load retrieves and tokenizes the resource with a single attempt.
func (s Source) Load() ([]Row, error) {
	data, err := s.read()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	var rows []Row
	if s.isWorkbook() {
		rows, err = ParseWorkbook(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrEmpty, err)
		}
	} else {
		rows = Parse(string(data))
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return rows, nil
}

func (s Source) isRemote() bool {
	return strings.HasPrefix(s.Location, "http://") || strings.HasPrefix(s.Location, "https://")
}

func (s Source) isWorkbook() bool {
	loc := s.Location
	if i := strings.IndexAny(loc, "?#"); i >= 0 && s.isRemote() {
		loc = loc[:i]
	}
	return strings.EqualFold(path.Ext(loc), ".xlsx")
}

func (s Source) read() ([]byte, error) {
	if s.Location == "" {
		return nil, errors.New("no import source configured")
	}
	if !s.isRemote() {
		return os.ReadFile(s.Location)
	}

	agent := fiber.Get(s.Location)
	if s.Timeout > 0 {
		agent.Timeout(s.Timeout)
	}
	code, body, errs := agent.Bytes()
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	if code < 200 || code > 299 {
		return nil, fmt.Errorf("GET %s: status %d", s.Location, code)
	}
	return body, nil
}
