// Appointment schedule command books a patient with a doctor.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/clinic"
)

var (
	apptPatientID int64
	apptDoctorID  int64
	apptAt        string
	apptFee       float64
	apptNotes     string
)

var appointmentScheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule an appointment",
	Long: `Schedule books a patient with a doctor at the given time.

Example:
  clinicdesk appointment schedule --patient 3 --doctor 1 --at "2026-09-01 10:00" --fee 40`,
	RunE: runAppointmentSchedule,
}

func init() {
	appointmentScheduleCmd.Flags().Int64Var(&apptPatientID, "patient", 0, "patient id")
	appointmentScheduleCmd.Flags().Int64Var(&apptDoctorID, "doctor", 0, "doctor id")
	appointmentScheduleCmd.Flags().StringVar(&apptAt, "at", "", "scheduled time (e.g. \"2026-09-01 10:00\")")
	appointmentScheduleCmd.Flags().Float64Var(&apptFee, "fee", 0, "consultation fee")
	appointmentScheduleCmd.Flags().StringVar(&apptNotes, "notes", "", "free-form notes")
	appointmentScheduleCmd.MarkFlagRequired("patient")
	appointmentScheduleCmd.MarkFlagRequired("doctor")
	appointmentScheduleCmd.MarkFlagRequired("at")
	appointmentCmd.AddCommand(appointmentScheduleCmd)
}

func runAppointmentSchedule(cmd *cobra.Command, args []string) error {
	at, err := parseDate(apptAt)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	// Verify both sides exist so the failure names the missing party
	// instead of surfacing a constraint violation.
	patient, err := a.patients.GetByID(apptPatientID)
	if err != nil {
		return fmt.Errorf("schedule appointment: %w", err)
	}
	if patient == nil {
		return fmt.Errorf("patient %d not found", apptPatientID)
	}
	doctor, err := a.doctors.GetByID(apptDoctorID)
	if err != nil {
		return fmt.Errorf("schedule appointment: %w", err)
	}
	if doctor == nil {
		return fmt.Errorf("doctor %d not found", apptDoctorID)
	}

	appt := &clinic.Appointment{
		PatientID:   apptPatientID,
		DoctorID:    apptDoctorID,
		ScheduledAt: at,
		Fee:         apptFee,
		Notes:       apptNotes,
	}
	if err := a.appointments.Create(appt); err != nil {
		return fmt.Errorf("schedule appointment: %w", err)
	}

	if flagJSON {
		return printJSON(appt)
	}
	fmt.Printf("Scheduled appointment %d\n", appt.ID())
	return nil
}
