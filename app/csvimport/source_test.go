package csvimport

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestSourceLoadFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "attendance.csv")
	require.NoError(t, os.WriteFile(p, []byte(sampleExport), 0o644))

	rows, err := Source{Location: p}.Load()
	require.NoError(t, err)
	assert.Len(t, rows, 5)
}

func TestSourceLoadMissingFile(t *testing.T) {
	_, err := Source{Location: filepath.Join(t.TempDir(), "nope.csv")}.Load()
	assert.ErrorIs(t, err, ErrFetch)

	_, err = Source{}.Load()
	assert.ErrorIs(t, err, ErrFetch)
}

func TestSourceLoadEmpty(t *testing.T) {
	p := filepath.Join(t.TempDir(), "attendance.csv")
	require.NoError(t, os.WriteFile(p, []byte("Course,Total Hours\n\n"), 0o644))

	_, err := Source{Location: p}.Load()
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestSourceLoadHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/static/attendance.csv" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte(sampleExport))
	}))
	defer srv.Close()

	rows, err := Source{Location: srv.URL + "/static/attendance.csv", Timeout: 2 * time.Second}.Load()
	require.NoError(t, err)
	assert.Len(t, rows, 5)

	_, err = Source{Location: srv.URL + "/missing.csv", Timeout: 2 * time.Second}.Load()
	assert.ErrorIs(t, err, ErrFetch)
}

func TestSourceLoadWorkbook(t *testing.T) {
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Course", "Total Hours", "Attended Hours"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{" Data Structures Lab ", 24, 20}))
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)

	p := filepath.Join(t.TempDir(), "attendance.xlsx")
	require.NoError(t, os.WriteFile(p, buf.Bytes(), 0o644))

	rows, err := Source{Location: p}.Load()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, Row{"Course": "Data Structures Lab", "Total Hours": "24", "Attended Hours": "20"}, rows[0])
}

func TestParseWorkbookRejectsGarbage(t *testing.T) {
	_, err := ParseWorkbook([]byte("not a zip"))
	assert.Error(t, err)
}
