// Appointment list command pages through appointments, optionally scoped
// to one patient, or joined to patient and doctor names.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/clinic"
	"github.com/clinickit/clinicdesk/pkg/entity"
)

var (
	apptListPage    int
	apptListSize    int
	apptListPatient int64
	apptListNames   bool
)

var appointmentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List appointments",
	Long: `List fetches one page of appointments.

Use --patient to scope the listing to one patient's appointments, or
--names to join patient and doctor names into the output.

Example:
  clinicdesk appointment list
  clinicdesk appointment list --patient 3
  clinicdesk appointment list --names`,
	RunE: runAppointmentList,
}

func init() {
	appointmentListCmd.Flags().IntVar(&apptListPage, "page", 1, "page number (1-based)")
	appointmentListCmd.Flags().IntVar(&apptListSize, "size", 0, "records per page")
	appointmentListCmd.Flags().Int64Var(&apptListPatient, "patient", 0, "only this patient's appointments")
	appointmentListCmd.Flags().BoolVar(&apptListNames, "names", false, "join patient and doctor names")
	appointmentCmd.AddCommand(appointmentListCmd)
}

func runAppointmentList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if apptListNames {
		return listAppointmentsWithNames(a)
	}

	filter := entity.Filter{}
	if apptListPatient != 0 {
		filter = entity.ForeignKey(clinic.PatientDescriptor, apptListPatient)
	}

	p := newPagination(apptListPage, apptListSize, "", false)
	appts, err := a.appointments.GetPage(filter, p)
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}

	if flagJSON {
		return printJSON(appts)
	}
	renderAppointments(appts, p)
	return nil
}

// listAppointmentsWithNames fetches every appointment twice-joined: once
// to patients, once to doctors, and merges the attached names.
func listAppointmentsWithNames(a *app) error {
	withPatients, err := a.appointments.Join(clinic.PatientDescriptor, "patient_id")
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}
	withDoctors, err := a.appointments.Join(clinic.DoctorDescriptor, "doctor_id")
	if err != nil {
		return fmt.Errorf("list appointments: %w", err)
	}

	doctors := make(map[int64]*clinic.Doctor, len(withDoctors))
	for _, e := range withDoctors {
		appt := e.(*clinic.Appointment)
		doctors[appt.ID()] = appt.Doctor
	}
	for _, e := range withPatients {
		appt := e.(*clinic.Appointment)
		appt.Doctor = doctors[appt.ID()]
	}

	if flagJSON {
		return printJSON(withPatients)
	}
	renderAppointments(withPatients, nil)
	return nil
}
