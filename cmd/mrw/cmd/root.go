package cmd

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	mrwlog "github.com/msto63/mRW/foundation/core/log"
	"github.com/msto63/mRW/pkg/core/config"
	"github.com/msto63/mRW/pkg/core/logging"
)

var (
	cfgFile    string
	envFile    string
	verbose    bool
	remoteAddr string

	appConfig *config.Config
	logger    *mrwlog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "mrw",
	Short: "meinRECHENWERK - Rechner-Sammlung für die Kommandozeile",
	Long: `meinRECHENWERK bündelt Rechner für Finanzen, Gesundheit, Mathematik,
Einheiten, Text und Zufall in einem Werkzeug.

Alle Rechner laufen lokal. Mit --remote wird stattdessen ein laufender
"mrw serve" per gRPC angesprochen.

Beispiele:
  mrw tools --category finance
  mrw calc loan -p principal=200000 -p rate=3,5 -p months=360
  mrw convert 100 km mi
  mrw tui`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(err)
	}
	logging.CloseFileWriters()
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (TOML oder YAML, default: $MRW_CONFIG oder ./configs/config.toml)")
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Datei mit Umgebungsvariablen")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Ausführliche Log-Ausgabe")
	rootCmd.PersistentFlags().StringVar(&remoteAddr, "remote", "", "gRPC-Adresse eines laufenden mrw-Servers (host:port)")
}

// setup loads .env and the configuration and builds the logger
func setup(cmd *cobra.Command, _ []string) error {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", envFile, err)
		}
	}

	var err error
	if cfgFile != "" {
		appConfig, err = config.Load(cfgFile)
	} else {
		appConfig, err = config.LoadFromEnv()
	}
	if err != nil {
		return err
	}
	if err := appConfig.Validate(); err != nil {
		return err
	}

	level := appConfig.General.LogLevel
	if cmd.Name() != "serve" {
		// one-shot commands keep stderr quiet
		level = "warn"
	}
	if verbose {
		level = "debug"
	}
	logger = logging.NewLogger(logging.LoggerConfig{
		ServiceName: "mrw",
		Level:       level,
		Format:      appConfig.General.LogFormat,
		Output:      os.Stderr,
	})
	return nil
}

func printError(err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %v\n", err)
}
