// Patient show command fetches one patient by identifier.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/clinic"
)

var patientShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one patient",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatientShow,
}

func init() {
	patientCmd.AddCommand(patientShowCmd)
}

func runPatientShow(cmd *cobra.Command, args []string) error {
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
		return fmt.Errorf("show patient: %w", err)
	}
	if e == nil {
		return fmt.Errorf("patient %d not found", id)
	}

	if flagJSON {
		return printJSON(e)
	}

	p := e.(*clinic.Patient)
	fmt.Printf("ID:         %d\n", p.ID())
	fmt.Printf("Record No:  %s\n", p.RecordNo)
	fmt.Printf("Full Name:  %s\n", p.FullName)
	fmt.Printf("Birth Date: %s\n", formatDate(p.BirthDate))
	return nil
}
