// Shared helpers for clinicdesk CLI commands: opening the database,
// wiring repositories, and rendering output.
package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jinzhu/now"
	"github.com/rs/zerolog"

	"github.com/clinickit/clinicdesk/internal/paths"
	"github.com/clinickit/clinicdesk/internal/store"
	"github.com/clinickit/clinicdesk/internal/trace"
	"github.com/clinickit/clinicdesk/pkg/clinic"
	"github.com/clinickit/clinicdesk/pkg/entity"
	"github.com/clinickit/clinicdesk/pkg/repo"
)

// app bundles the open database with one repository per entity type.
// The caller must defer Close.
type app struct {
	db           *sql.DB
	patients     *repo.Repository
	doctors      *repo.Repository
	appointments *repo.Repository
}

// openApp resolves the data directory, opens (creating if needed) the
// clinic database, and wires the repositories.
func openApp() (*app, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	db, err := store.Open(paths.DatabaseFile(dataDir))
	if err != nil {
		return nil, err
	}
	if err := clinic.EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	log := sqlLogger()
	return &app{
		db:           db,
		patients:     repo.New(db, clinic.PatientDescriptor, repo.WithLogger(log)),
		doctors:      repo.New(db, clinic.DoctorDescriptor, repo.WithLogger(log)),
		appointments: repo.New(db, clinic.AppointmentDescriptor, repo.WithLogger(log)),
	}, nil
}

func (a *app) Close() error {
	return a.db.Close()
}

// sqlLogger returns the SQL trace logger: a console zerolog writer on
// stderr when --verbose is set, otherwise disabled.
func sqlLogger() *trace.Logger {
	if !flagVerbose {
		return trace.Disabled()
	}
	w := zerolog.NewConsoleWriter(func(cw *zerolog.ConsoleWriter) {
		cw.Out = os.Stderr
		cw.TimeFormat = time.RFC3339
	})
	return trace.New(zerolog.New(w).With().Timestamp().Logger())
}

// parseDate parses a user-supplied date or date-time flag permissively:
// "1990-05-01", "1990-05-01 14:30", RFC 3339, and friends all work.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := now.Parse(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return t, nil
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newTable returns a go-pretty writer mirroring stdout in the house style.
func newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	return t
}

// printPageFooter prints the page position line under a listing.
func printPageFooter(p *entity.Pagination) {
	fmt.Printf("Page %d of %d (%d records)\n", p.Page(), p.PageCount(), p.TotalRecords)
}

// formatDate renders a date column, blank when unset.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// formatDateTime renders a date-time column, blank when unset.
func formatDateTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04")
}

// renderPatients prints patients as a table with a page footer.
func renderPatients(entities []entity.Entity, p *entity.Pagination) {
	if len(entities) == 0 {
		fmt.Println("No patients found.")
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "Record No", "Full Name", "Birth Date"})
	for _, e := range entities {
		pt := e.(*clinic.Patient)
		t.AppendRow(table.Row{pt.ID(), pt.RecordNo, pt.FullName, formatDate(pt.BirthDate)})
	}
	t.Render()
	if p != nil {
		printPageFooter(p)
	}
}

// renderDoctors prints doctors as a table with a page footer.
func renderDoctors(entities []entity.Entity, p *entity.Pagination) {
	if len(entities) == 0 {
		fmt.Println("No doctors found.")
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "Full Name", "Specialty"})
	for _, e := range entities {
		d := e.(*clinic.Doctor)
		t.AppendRow(table.Row{d.ID(), d.FullName, d.Specialty})
	}
	t.Render()
	if p != nil {
		printPageFooter(p)
	}
}

// renderAppointments prints appointments as a table. Joined patient and
// doctor names appear when the fetch populated them; otherwise the raw
// foreign keys are shown.
func renderAppointments(entities []entity.Entity, p *entity.Pagination) {
	if len(entities) == 0 {
		fmt.Println("No appointments found.")
		return
	}

	t := newTable()
	t.AppendHeader(table.Row{"ID", "Patient", "Doctor", "Scheduled At", "Fee", "Notes"})
	for _, e := range entities {
		a := e.(*clinic.Appointment)
		patient := fmt.Sprintf("#%d", a.PatientID)
		if a.Patient != nil {
			patient = a.Patient.FullName
		}
		doctor := fmt.Sprintf("#%d", a.DoctorID)
		if a.Doctor != nil {
			doctor = a.Doctor.FullName
		}
		t.AppendRow(table.Row{a.ID(), patient, doctor, formatDateTime(a.ScheduledAt), a.Fee, a.Notes})
	}
	t.Render()
	if p != nil {
		printPageFooter(p)
	}
}
