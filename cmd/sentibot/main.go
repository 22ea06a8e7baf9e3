// Package main provides the SentiBot CLI entry point: a command-line
// conversational agent that classifies the sentiment of each user message
// and reports aggregate conversation statistics at session end.
package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"sentibot/internal/config"
	"sentibot/internal/conversation"
	"sentibot/internal/logger"
	"sentibot/internal/output"
	"sentibot/internal/reply"
	"sentibot/internal/sentiment"
	"sentibot/internal/shell"
	"sentibot/internal/version"
)

var (
	logLevel string
	logFile  string
	noEcho   bool
	plain    bool
)

// rootCmd starts the interactive chat session when called without
// subcommands.
var rootCmd = &cobra.Command{
	Use:   "sentibot",
	Short: "SentiBot - sentiment-aware chatbot",
	Long: `SentiBot is a command-line conversational agent that classifies the
emotional valence of your messages in real time and summarizes the
conversation's sentiment when the session ends.`,
	RunE: runChat,
}

// versionCmd prints build and version information.
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Println(version.GetFormattedVersion())
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Set log level (debug|info|warn|error) [default: info]")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to file instead of stderr")
	rootCmd.Flags().BoolVar(&noEcho, "no-echo", false, "Start with per-message sentiment display disabled")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "Disable colored output")

	if err := viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-level flag: %v\n", err)
		os.Exit(1)
	}
	if err := viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file")); err != nil {
		fmt.Fprintf(os.Stderr, "Error binding log-file flag: %v\n", err)
		os.Exit(1)
	}

	rootCmd.AddCommand(versionCmd)

	cobra.OnInitialize(initLogging)
}

func initLogging() {
	if err := logger.Configure(logLevel, logFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error configuring logger: %v\n", err)
		os.Exit(1)
	}
}

func runChat(_ *cobra.Command, _ []string) error {
	if err := version.ValidateVersion(); err != nil {
		return err
	}

	settings, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger.Info("Starting SentiBot", "version", version.Version)
	logger.Debug("Settings loaded",
		"positive_threshold", settings.PositiveThreshold,
		"negative_threshold", settings.NegativeThreshold,
		"mood_shift_delta", settings.MoodShiftDelta)

	analyzer := sentiment.New(settings.Thresholds())
	conv := conversation.New(analyzer, clockwork.NewRealClock(), settings.MoodShiftDelta)

	selector, err := reply.NewSelector(rand.New(rand.NewSource(time.Now().UnixNano())))
	if err != nil {
		return fmt.Errorf("loading reply templates: %w", err)
	}

	renderer := output.NewRenderer(os.Stdout, plain)
	renderer.Banner(version.Version)
	renderer.BotReply(selector.Greeting())

	echo := settings.EchoSentiment && !noEcho
	session := shell.NewSession(conv, selector, renderer, settings.Prompt, echo)
	return session.Run()
}
