// Patient list command pages through registered patients.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

var (
	patientListPage int
	patientListSize int
	patientListSort string
	patientListDesc bool
)

var patientListCmd = &cobra.Command{
	Use:   "list",
	Short: "List patients",
	Long: `List fetches one page of patients.

Example:
  clinicdesk patient list
  clinicdesk patient list --page 2 --size 20
  clinicdesk patient list --sort fullName --desc`,
	RunE: runPatientList,
}

func init() {
	patientListCmd.Flags().IntVar(&patientListPage, "page", 1, "page number (1-based)")
	patientListCmd.Flags().IntVar(&patientListSize, "size", 0, "records per page")
	patientListCmd.Flags().StringVar(&patientListSort, "sort", "", "sort column (e.g. fullName, birthDate)")
	patientListCmd.Flags().BoolVar(&patientListDesc, "desc", false, "sort descending")
	patientCmd.AddCommand(patientListCmd)
}

func runPatientList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := newPagination(patientListPage, patientListSize, patientListSort, patientListDesc)
	patients, err := a.patients.GetPage(entity.Filter{}, p)
	if err != nil {
		return fmt.Errorf("list patients: %w", err)
	}

	if flagJSON {
		return printJSON(patients)
	}
	renderPatients(patients, p)
	return nil
}

// newPagination builds pagination state from the common list flags.
func newPagination(page, size int, sortBy string, desc bool) *entity.Pagination {
	p := &entity.Pagination{PageNumber: page, PageSize: size, SortBy: sortBy}
	if sortBy != "" {
		p.SortOrder = entity.SortAscending
		if desc {
			p.SortOrder = entity.SortDescending
		}
	}
	return p
}
