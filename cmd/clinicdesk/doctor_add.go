// Doctor add command registers a new doctor.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/clinic"
)

var doctorAddSpecialty string

var doctorAddCmd = &cobra.Command{
	Use:   "add <full name>",
	Short: "Register a new doctor",
	Long: `Add registers a new doctor.

Example:
  clinicdesk doctor add "Dr. Chen" --specialty cardiology`,
	Args: cobra.ExactArgs(1),
	RunE: runDoctorAdd,
}

func init() {
	doctorAddCmd.Flags().StringVar(&doctorAddSpecialty, "specialty", "", "medical specialty")
	doctorCmd.AddCommand(doctorAddCmd)
}

func runDoctorAdd(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	d := &clinic.Doctor{FullName: args[0], Specialty: doctorAddSpecialty}
	if err := a.doctors.Create(d); err != nil {
		return fmt.Errorf("add doctor: %w", err)
	}

	if flagJSON {
		return printJSON(d)
	}
	fmt.Printf("Added doctor %d\n", d.ID())
	return nil
}
