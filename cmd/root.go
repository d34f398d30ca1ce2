package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/codexport/codility"
	"github.com/s0up4200/codexport/config"
)

var (
	cfgFile string
	cfg     *config.Config
	logger  zerolog.Logger
	client  *codility.Client

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "codexport",
	Short: "Inspect Codility tests and export completed sessions",
	Long: `codexport is a CLI tool for the Codility API. It lists tests and
candidate sessions, invites candidates, and exports completed sessions
together with their similarity results to CSV.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion sets the version information shown by the version command
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")

	rootCmd.AddCommand(testCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the configuration, logger and API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Codility client
	client, err = codility.NewClient(cfg.Codility.APIKey, logger,
		codility.WithBaseURL(cfg.Codility.BaseURL),
		codility.WithTimeout(cfg.Codility.Timeout),
		codility.WithUserAgent("codexport/"+version),
	)
	if err != nil {
		return fmt.Errorf("failed to create Codility client: %w", err)
	}

	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "trace":
		level = zerolog.TraceLevel
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; only color when writing to a terminal
	color := cfg.Color && isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test the connection to the Codility API",
	Long:  `Verify that the configured API key can reach the Codility API and display basic account information.`,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Printf("Testing connection to %s...\n", cfg.Codility.BaseURL)

	ctx := context.Background()
	user, err := client.GetUserDetails(ctx)
	if err != nil {
		return fmt.Errorf("failed to connect to Codility: %w", err)
	}

	fmt.Println("✓ Connection successful!")
	fmt.Printf("- Account: %s\n", user.Email)
	if user.Company != "" {
		fmt.Printf("- Company: %s\n", user.Company)
	}

	credits, err := client.GetAvailableCredits(ctx)
	if err != nil {
		return fmt.Errorf("failed to get credits: %w", err)
	}
	fmt.Printf("- Available credits: %d\n", credits.Available)

	return nil
}

// versionCmd prints build information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	// No config or client needed to print the version
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("codexport %s (built %s)\n", version, buildTime)
	},
}
