// Root command for the clinicdesk CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/clinickit/clinicdesk/internal/paths"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
	flagVerbose   bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "clinicdesk",
	Short:   "Clinicdesk manages the clinic's patients, doctors, and appointments",
	Version: version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding clinic.db")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "log executed SQL to stderr")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(patientCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(appointmentCmd)
}

var patientCmd = &cobra.Command{
	Use:   "patient",
	Short: "Manage patients",
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Manage doctors",
}

var appointmentCmd = &cobra.Command{
	Use:   "appointment",
	Short: "Manage appointments",
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > CLINICDESK_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > CLINICDESK_CONFIG_DIR env > default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
