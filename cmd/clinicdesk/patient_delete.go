// Patient delete command removes a patient by identifier.
package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var patientDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a patient",
	Args:  cobra.ExactArgs(1),
	RunE:  runPatientDelete,
}

func init() {
	patientCmd.AddCommand(patientDeleteCmd)
}

func runPatientDelete(cmd *cobra.Command, args []string) error {
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid patient id %q", args[0])
	}

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ok, err := a.patients.Delete(id)
	if err != nil {
		return fmt.Errorf("delete patient: %w", err)
	}
	if !ok {
		return fmt.Errorf("patient %d not found", id)
	}

	fmt.Printf("Deleted patient %d\n", id)
	return nil
}
