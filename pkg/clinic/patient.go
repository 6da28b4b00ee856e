// Package clinic defines the clinic's entity types and their descriptors:
// patients, doctors, and the appointments that join them. Descriptors are
// package-level and immutable; the repositories and the CLI share them.
package clinic

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Patient is one registered patient. RecordNo is the external record
// number handed to the patient; the integer identifier stays internal.
type Patient struct {
	entity.Ref
	RecordNo  string    `json:"record_no"`
	FullName  string    `json:"full_name"`
	BirthDate time.Time `json:"birth_date"`
}

// NewPatient returns an unpersisted patient with a fresh record number.
func NewPatient(fullName string, birthDate time.Time) *Patient {
	return &Patient{
		RecordNo:  uuid.NewString(),
		FullName:  fullName,
		BirthDate: birthDate,
	}
}

// MarshalJSON includes the identifier, which lives unexported on the
// embedded Ref.
func (p *Patient) MarshalJSON() ([]byte, error) {
	type patient Patient
	return json.Marshal(struct {
		ID int64 `json:"id"`
		*patient
	}{ID: p.ID(), patient: (*patient)(p)})
}

// PatientDescriptor maps Patient onto the patients table.
var PatientDescriptor = entity.NewDescriptor("Patient", func(id int64) entity.Entity {
	return &Patient{Ref: entity.NewRef(id)}
}).
	Column("recordNo", entity.KindText,
		func(e entity.Entity) any { return e.(*Patient).RecordNo },
		func(e entity.Entity, v any) { e.(*Patient).RecordNo = v.(string) }).
	Column("fullName", entity.KindText,
		func(e entity.Entity) any { return e.(*Patient).FullName },
		func(e entity.Entity, v any) { e.(*Patient).FullName = v.(string) }).
	Column("birthDate", entity.KindDate,
		func(e entity.Entity) any { return e.(*Patient).BirthDate },
		func(e entity.Entity, v any) { e.(*Patient).BirthDate = v.(time.Time) }).
	MustBuild()
