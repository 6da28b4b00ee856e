package clinic

import (
	"database/sql"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

func TestDescriptorTables(t *testing.T) {
	assert.Equal(t, "patients", PatientDescriptor.Table())
	assert.Equal(t, "doctors", DoctorDescriptor.Table())
	assert.Equal(t, "appointments", AppointmentDescriptor.Table())
}

func TestDescriptorColumns(t *testing.T) {
	assert.Equal(t,
		[]string{"record_no", "full_name", "birth_date"},
		PatientDescriptor.ColumnNames())
	assert.Equal(t,
		[]string{"patient_id", "doctor_id", "scheduled_at", "fee", "notes"},
		AppointmentDescriptor.ColumnNames())
}

func TestAppointmentRelations(t *testing.T) {
	rel, ok := AppointmentDescriptor.RelationTo(PatientDescriptor)
	require.True(t, ok)

	appt := &Appointment{}
	patient := &Patient{FullName: "Ana Ruiz"}
	rel.Attach(appt, patient)
	assert.Same(t, patient, appt.Patient)

	_, ok = PatientDescriptor.RelationTo(AppointmentDescriptor)
	assert.False(t, ok)
}

func TestNewPatient(t *testing.T) {
	birth := time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC)
	a := NewPatient("Ana Ruiz", birth)
	b := NewPatient("Ben Okafor", birth)

	assert.NotEmpty(t, a.RecordNo)
	assert.NotEqual(t, a.RecordNo, b.RecordNo)
	assert.Zero(t, a.ID())
}

func TestMarshalJSONCarriesIdentifier(t *testing.T) {
	p := &Patient{
		Ref:       entity.NewRef(7),
		RecordNo:  "r-7",
		FullName:  "Ana Ruiz",
		BirthDate: time.Date(1990, 5, 1, 0, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(p)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(7), got["id"])
	assert.Equal(t, "r-7", got["record_no"])
	assert.Equal(t, "Ana Ruiz", got["full_name"])
}

func TestMarshalJSONNestedEntities(t *testing.T) {
	appt := &Appointment{
		Ref:       entity.NewRef(3),
		PatientID: 7,
		DoctorID:  2,
		Patient:   &Patient{Ref: entity.NewRef(7), FullName: "Ana Ruiz"},
	}

	data, err := json.Marshal(appt)
	require.NoError(t, err)

	var got struct {
		ID      int64 `json:"id"`
		Patient *struct {
			ID int64 `json:"id"`
		} `json:"patient"`
		Doctor *json.RawMessage `json:"doctor"`
	}
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, int64(3), got.ID)
	require.NotNil(t, got.Patient)
	assert.Equal(t, int64(7), got.Patient.ID)
	assert.Nil(t, got.Doctor)
}

func TestEnsureSchema(t *testing.T) {
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "clinic.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, EnsureSchema(db))
	// Idempotent on an already-initialized database.
	require.NoError(t, EnsureSchema(db))

	_, err = db.Exec(`INSERT INTO patients (record_no, full_name) VALUES ('r1', 'Ana Ruiz')`)
	require.NoError(t, err)
}
