// Doctor list command pages through registered doctors.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

var (
	doctorListPage int
	doctorListSize int
	doctorListSort string
	doctorListDesc bool
)

var doctorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List doctors",
	RunE:  runDoctorList,
}

func init() {
	doctorListCmd.Flags().IntVar(&doctorListPage, "page", 1, "page number (1-based)")
	doctorListCmd.Flags().IntVar(&doctorListSize, "size", 0, "records per page")
	doctorListCmd.Flags().StringVar(&doctorListSort, "sort", "", "sort column (e.g. fullName, specialty)")
	doctorListCmd.Flags().BoolVar(&doctorListDesc, "desc", false, "sort descending")
	doctorCmd.AddCommand(doctorListCmd)
}

func runDoctorList(cmd *cobra.Command, args []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	p := newPagination(doctorListPage, doctorListSize, doctorListSort, doctorListDesc)
	doctors, err := a.doctors.GetPage(entity.Filter{}, p)
	if err != nil {
		return fmt.Errorf("list doctors: %w", err)
	}

	if flagJSON {
		return printJSON(doctors)
	}
	renderDoctors(doctors, p)
	return nil
}
