package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "pathway",
	Short: "Career guidance API server",
	Long:  "Pathway predicts careers from candidate profiles and resumes, and builds learning paths toward them.",
	// serve is the default command
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "optional .env file to load before the environment")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
