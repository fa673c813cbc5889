package models

import (
	"encoding/json"
	"time"
)

// Archive is a persisted snapshot of one completed analysis: the rendered PDF
// report plus the structured results the agent backend returned for it.
// Entries are immutable after creation and are only ever returned to the user
// that owns them.
type Archive struct {
	// ArchiveID is the server-assigned identifier of the entry.
	ArchiveID int64 `json:"-"`

	// UserID is the owning user. Every read filters by it together with
	// ArchiveID so a foreign identifier behaves as if it did not exist.
	UserID int64 `json:"-"`

	// ReportName is the user-chosen title of the saved report.
	ReportName string `json:"reportName"`

	// Molecule is the compound the analysis was run for.
	Molecule string `json:"molecule"`

	// Query is the original free-text research question, possibly empty.
	Query string `json:"query"`

	// Region is the geography string the analysis was scoped to.
	Region string `json:"region"`

	// PDFData is the base64-encoded rendered PDF report.
	PDFData string `json:"pdfData"`

	// Results is the opaque structured payload from the agent backend,
	// stored verbatim.
	Results json.RawMessage `json:"results"`

	// CreatedAt is the server-assigned creation timestamp.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Archive model.
func (a Archive) TableName() string {
	return "archives"
}

// ArchiveSummary is the list-view projection of an Archive. The heavy PDF and
// results fields are left out so the archive page can render quickly.
type ArchiveSummary struct {
	ID         int64     `json:"id"`
	ReportName string    `json:"reportName"`
	Molecule   string    `json:"molecule"`
	Region     string    `json:"region"`
	Date       string    `json:"date"`
	Timestamp  time.Time `json:"timestamp"`
}

// FormatArchiveDate renders a creation timestamp the way the archive list
// displays it: "02 Jan 06".
func FormatArchiveDate(t time.Time) string {
	return t.Format("02 Jan 06")
}
