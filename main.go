package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/ultimate-tictactoe/internal"
	"github.com/rocketscienceinc/ultimate-tictactoe/internal/config"
)

const version = "0.1.0"

var (
	flagConfig   string
	flagStart    string
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "uttt",
	Short:         "Play ultimate tic-tac-toe in the terminal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, _ []string) error {
		conf := initConfig()
		logger := initLogger(conf)

		return app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Println("uttt v" + version)
	},
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "./config.yml", "config file, skipped when missing")
	rootCmd.Flags().StringVar(&flagStart, "start", "", "starting player, x or o (default: config, then random)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(versionCmd)
}

// main - is the entry point of the application. It runs the root command.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initialize config, flags win over the file and the environment.
func initConfig() *config.Config {
	conf := config.MustLoad(flagConfig)

	if flagStart != "" {
		conf.StartingPlayer = flagStart
		if _, err := conf.Player(); err != nil {
			panic(fmt.Errorf("invalid --start: %w", err))
		}
	}

	if flagLogLevel != "" {
		conf.LogLevel = flagLogLevel
		if _, err := conf.Level(); err != nil {
			panic(fmt.Errorf("invalid --log-level: %w", err))
		}
	}

	return conf
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	// initConfig has already rejected unknown levels.
	level, _ := conf.Level()

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
