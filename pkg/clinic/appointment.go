package clinic

import (
	"encoding/json"
	"time"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Appointment schedules one patient with one doctor. Patient and Doctor
// are populated only by join fetches; plain fetches leave them nil and
// carry the foreign keys.
type Appointment struct {
	entity.Ref
	PatientID   int64     `json:"patient_id"`
	DoctorID    int64     `json:"doctor_id"`
	ScheduledAt time.Time `json:"scheduled_at"`
	Fee         float64   `json:"fee"`
	Notes       string    `json:"notes"`

	Patient *Patient `json:"patient,omitempty"`
	Doctor  *Doctor  `json:"doctor,omitempty"`
}

// MarshalJSON includes the identifier, which lives unexported on the
// embedded Ref.
func (a *Appointment) MarshalJSON() ([]byte, error) {
	type appointment Appointment
	return json.Marshal(struct {
		ID int64 `json:"id"`
		*appointment
	}{ID: a.ID(), appointment: (*appointment)(a)})
}

// AppointmentDescriptor maps Appointment onto the appointments table and
// declares its joins to patients and doctors.
var AppointmentDescriptor = entity.NewDescriptor("Appointment", func(id int64) entity.Entity {
	return &Appointment{Ref: entity.NewRef(id)}
}).
	Column("patientId", entity.KindInt,
		func(e entity.Entity) any { return e.(*Appointment).PatientID },
		func(e entity.Entity, v any) { e.(*Appointment).PatientID = v.(int64) }).
	Column("doctorId", entity.KindInt,
		func(e entity.Entity) any { return e.(*Appointment).DoctorID },
		func(e entity.Entity, v any) { e.(*Appointment).DoctorID = v.(int64) }).
	Column("scheduledAt", entity.KindDateTime,
		func(e entity.Entity) any { return e.(*Appointment).ScheduledAt },
		func(e entity.Entity, v any) { e.(*Appointment).ScheduledAt = v.(time.Time) }).
	Column("fee", entity.KindDecimal,
		func(e entity.Entity) any { return e.(*Appointment).Fee },
		func(e entity.Entity, v any) { e.(*Appointment).Fee = v.(float64) }).
	Column("notes", entity.KindText,
		func(e entity.Entity) any { return e.(*Appointment).Notes },
		func(e entity.Entity, v any) { e.(*Appointment).Notes = v.(string) }).
	Relation(PatientDescriptor, func(parent, child entity.Entity) {
		parent.(*Appointment).Patient = child.(*Patient)
	}).
	Relation(DoctorDescriptor, func(parent, child entity.Entity) {
		parent.(*Appointment).Doctor = child.(*Doctor)
	}).
	MustBuild()
