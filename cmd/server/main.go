package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Arnab-Dhar-Arko/iot-health-monitoring/pkg/config"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "server",
	Short: "Patient vital-sign monitoring dashboard",
	Long: `Stores heart rate, SpO2 and temperature readings per patient, flags
readings that cross the patient's thresholds and serves the dashboard,
REST API and optional gRPC endpoint.

Without a subcommand the server is started.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "YAML config file")
	rootCmd.PersistentFlags().String("env-file", ".env", "dotenv file loaded before reading VITALS_* variables")
	addServeFlags(rootCmd)

	rootCmd.AddCommand(newServeCmd(), newAnalyzeCmd())
}

// loadConfig resolves the settings for cmd. Only flags the user actually set
// on cmd override the file and environment.
func loadConfig(cmd *cobra.Command, keys map[string]string) (*config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return nil, err
	}

	v := config.New()
	for key, flag := range keys {
		if f := cmd.Flags().Lookup(flag); f != nil && f.Changed {
			if err := v.BindPFlag(key, f); err != nil {
				return nil, fmt.Errorf("bind --%s: %w", flag, err)
			}
		}
	}
	return config.Load(v, cfgFile)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
