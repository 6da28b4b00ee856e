package clinic

import (
	"encoding/json"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Doctor is one practicing doctor.
type Doctor struct {
	entity.Ref
	FullName  string `json:"full_name"`
	Specialty string `json:"specialty"`
}

// MarshalJSON includes the identifier, which lives unexported on the
// embedded Ref.
func (d *Doctor) MarshalJSON() ([]byte, error) {
	type doctor Doctor
	return json.Marshal(struct {
		ID int64 `json:"id"`
		*doctor
	}{ID: d.ID(), doctor: (*doctor)(d)})
}

// DoctorDescriptor maps Doctor onto the doctors table.
var DoctorDescriptor = entity.NewDescriptor("Doctor", func(id int64) entity.Entity {
	return &Doctor{Ref: entity.NewRef(id)}
}).
	Column("fullName", entity.KindText,
		func(e entity.Entity) any { return e.(*Doctor).FullName },
		func(e entity.Entity, v any) { e.(*Doctor).FullName = v.(string) }).
	Column("specialty", entity.KindText,
		func(e entity.Entity) any { return e.(*Doctor).Specialty },
		func(e entity.Entity, v any) { e.(*Doctor).Specialty = v.(string) }).
	MustBuild()
