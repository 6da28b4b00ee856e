// Patient add command registers a new patient.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/clinic"
)

var patientAddBirthDate string

var patientAddCmd = &cobra.Command{
	Use:   "add <full name>",
	Short: "Register a new patient",
	Long: `Add registers a new patient and assigns a record number.

Example:
  clinicdesk patient add "Ana Ruiz" --birth-date 1990-05-01`,
	Args: cobra.ExactArgs(1),
	RunE: runPatientAdd,
}

func init() {
	patientAddCmd.Flags().StringVar(&patientAddBirthDate, "birth-date", "", "birth date (e.g. 1990-05-01)")
	patientCmd.AddCommand(patientAddCmd)
}

func runPatientAdd(cmd *cobra.Command, args []string) error {
	birth, err := parseDate(patientAddBirthDate)
	if err != nil {
		return err
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := clinic.NewPatient(args[0], birth)
	if err := a.patients.Create(p); err != nil {
		return fmt.Errorf("add patient: %w", err)
	}

	if flagJSON {
		return printJSON(p)
	}
	fmt.Printf("Added patient %d (record %s)\n", p.ID(), p.RecordNo)
	return nil
}
