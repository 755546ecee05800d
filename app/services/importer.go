package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"gpa-tracker/app/csvimport"
	"gpa-tracker/app/logging"
	"gpa-tracker/app/models"
)

// Importer loads the well-known export and turns outcomes into notices.
type Importer struct {
	Source       csvimport.Source
	DismissAfter time.Duration
	Logger       log.Logger
}

// Load fetches and tokenizes the export once.
func (i *Importer) Load() ([]csvimport.Row, error) {
	var rows []csvimport.Row
	err := logging.TimeFunction(i.Logger, "load "+i.Source.Location, func() error {
		var err error
		rows, err = i.Source.Load()
		return err
	})
	if err == nil {
		level.Debug(i.Logger).Log("msg", "import rows loaded", "rows", len(rows))
	}
	return rows, err
}

// Success reports a completed import.
func (i *Importer) Success(what string, matched int) models.Notice {
	msg := fmt.Sprintf("%s data loaded successfully!", what)
	if matched == 0 {
		msg = fmt.Sprintf("%s data loaded, but no subjects matched", what)
	}
	return i.notice(models.NoticeSuccess, msg)
}

// Failure turns an import error into the message shown to the user. Only the
// category of the error is exposed.
func (i *Importer) Failure(err error) models.Notice {
	switch {
	case errors.Is(err, csvimport.ErrEmpty):
		return i.notice(models.NoticeError, "CSV file is empty or invalid")
	default:
		return i.notice(models.NoticeError, "Failed to load CSV file")
	}
}

func (i *Importer) notice(kind models.NoticeKind, msg string) models.Notice {
	return models.Notice{Kind: kind, Message: msg, DismissAfterMs: i.DismissAfter.Milliseconds()}
}
