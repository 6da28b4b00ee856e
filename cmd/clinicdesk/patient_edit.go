// Patient edit command updates an existing patient.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/clinic"
)

var (
	patientEditName      string
	patientEditBirthDate string
)

var patientEditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a patient",
	Long: `Edit updates the named fields of an existing patient; fields not
given keep their stored values.

Example:
  clinicdesk patient edit 3 --name "Ana Ruiz-Ortega"`,
	Args: cobra.ExactArgs(1),
	RunE: runPatientEdit,
}

func init() {
	patientEditCmd.Flags().StringVar(&patientEditName, "name", "", "new full name")
	patientEditCmd.Flags().StringVar(&patientEditBirthDate, "birth-date", "", "new birth date")
	patientCmd.AddCommand(patientEditCmd)
}

func runPatientEdit(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid patient id %q", args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	e, err := a.patients.GetByID(id)
	if err != nil {
		return fmt.Errorf("edit patient: %w", err)
	}
	if e == nil {
		return fmt.Errorf("patient %d not found", id)
	}

	p := e.(*clinic.Patient)
	if patientEditName != "" {
		p.FullName = patientEditName
	}
	if patientEditBirthDate != "" {
		birth, err := parseDate(patientEditBirthDate)
		if err != nil {
			return err
		}
		p.BirthDate = birth
	}

	ok, err := a.patients.Edit(p)
	if err != nil {
		return fmt.Errorf("edit patient: %w", err)
	}
	if !ok {
		return fmt.Errorf("patient %d not found", id)
	}

	fmt.Printf("Updated patient %d\n", id)
	return nil
}
