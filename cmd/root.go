package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	httpcmd "github.com/estagiotrack/estagio_backend/cmd/http"
	systemcmd "github.com/estagiotrack/estagio_backend/cmd/system"
)

var (
	cfgFile string
)

var rootCmd = &cobra.Command{
	Use:   "estagio",
	Short: "Backend API for tracking interns and their logged work hours.",
	Long: `Estagio is the backend for an intern work-hours tracker. It registers
interns ("estagiários"), logs their morning and afternoon work entries and
exports aggregated hours as CSV.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Global config flag, available for all commands.
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file path")

	// Attach top-level command trees.
	rootCmd.AddCommand(systemcmd.NewSystemCommand())
	rootCmd.AddCommand(httpcmd.NewHTTPCommand())
}
