// Package main provides the clinicdesk CLI, a small front desk for the
// clinic database: patients, doctors, and appointments.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/clinickit/clinicdesk/pkg/entity"
)

// Exit codes: user errors (bad input, missing rows) and system errors
// (database unreachable) are distinguished for scripting.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		if errors.Is(err, entity.ErrConnection) {
			os.Exit(exitSysError)
		}
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
