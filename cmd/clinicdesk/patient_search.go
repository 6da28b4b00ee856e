// Patient search command matches a term against every patient column.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	patientSearchPage int
	patientSearchSize int
)

var patientSearchCmd = &cobra.Command{
	Use:   "search <term>",
	Short: "Search patients",
	Long: `Search fetches one page of patients whose fields contain the term.

Example:
  clinicdesk patient search Ana`,
	Args: cobra.ExactArgs(1),
	RunE: runPatientSearch,
}

func init() {
	patientSearchCmd.Flags().IntVar(&patientSearchPage, "page", 1, "page number (1-based)")
	patientSearchCmd.Flags().IntVar(&patientSearchSize, "size", 0, "records per page")
	patientCmd.AddCommand(patientSearchCmd)
}

func runPatientSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := newPagination(patientSearchPage, patientSearchSize, "", false)
	patients, err := a.patients.Search(args[0], p)
	if err != nil {
		return fmt.Errorf("search patients: %w", err)
	}

	if flagJSON {
		return printJSON(patients)
	}
	renderPatients(patients, nil)
	fmt.Printf("Matched %d patient(s) on page %d\n", len(patients), p.Page())
	return nil
}
