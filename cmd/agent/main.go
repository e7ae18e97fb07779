package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mutationsim/agent/internal/agent"
	"github.com/mutationsim/agent/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "agent",
	Short: "Defensive agent for the mutation simulator",
	Long: `Autonomous agent that plays one cell in the mutation simulator.

The agent reads one world observation per line from stdin, answers with
exactly one action per line on stdout, and keeps a small per-identity
memory file across runs. Logs go to stderr; stdout carries only actions.`,
	Run: runAgent,
}

func init() {
	cfg = config.Default()

	// Identity
	rootCmd.Flags().StringVar(&cfg.AgentID, "agent-id", cfg.AgentID, "Agent identity (scopes the memory file)")

	// Memory settings
	rootCmd.Flags().StringVar(&cfg.MemoryDir, "memory-dir", cfg.MemoryDir, "Base directory for persisted memory")

	// Turn settings
	rootCmd.Flags().IntVar(&cfg.MaxTurns, "max-turns", cfg.MaxTurns, "Maximum turns to play (-1 for unlimited)")

	// Logging
	rootCmd.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")

	// Bind flags to viper for environment variable support
	viper.BindPFlags(rootCmd.Flags())
	viper.SetEnvPrefix("AGENT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// The simulator exports the identity as AGENT_ID.
	viper.BindEnv("agent-id", "AGENT_ID")
}

func runAgent(cmd *cobra.Command, args []string) {
	// Resolve precedence: explicit flag > environment > default.
	cfg.AgentID = viper.GetString("agent-id")
	cfg.MemoryDir = viper.GetString("memory-dir")
	cfg.MaxTurns = viper.GetInt("max-turns")
	cfg.LogLevel = viper.GetString("log-level")

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(os.Stderr).With().
		Timestamp().
		Str("agent_id", cfg.AgentID).
		Str("run_id", uuid.New().String()).
		Logger().Level(level)

	logger.Info().Str("memory_dir", cfg.MemoryDir).Int("max_turns", cfg.MaxTurns).Msg("agent starting")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info().Msg("shutdown signal received, stopping agent")
		cancel()
	}()

	a := agent.New(cfg, logger)
	if err := a.Run(ctx, os.Stdin, os.Stdout); err != nil && !errors.Is(err, context.Canceled) {
		logger.Fatal().Err(err).Msg("agent failed")
	}

	logger.Info().Msg("agent stopped")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
