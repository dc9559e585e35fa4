// Command arcanedm is the terminal client: an LLM dungeon master with
// persistent campaigns.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/arcanedm/arcanedm/internal/config"
	"github.com/arcanedm/arcanedm/internal/engine"
	"github.com/arcanedm/arcanedm/internal/logger"
	"github.com/arcanedm/arcanedm/internal/services"
	"github.com/arcanedm/arcanedm/internal/storage"
	"github.com/arcanedm/arcanedm/internal/tui"
)

func main() {
	// Missing .env is fine, the environment may carry everything.
	_ = godotenv.Load()

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "arcanedm",
		Short:        "An AI dungeon master in your terminal",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay()
		},
	}

	root.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Start or resume a campaign",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay()
		},
	})

	campaigns := &cobra.Command{
		Use:   "campaigns",
		Short: "Manage saved campaigns",
	}
	campaigns.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List saved campaigns",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaignsList(cmd.OutOrStdout())
		},
	})
	campaigns.AddCommand(&cobra.Command{
		Use:   "delete <campaign-id>",
		Short: "Delete a saved campaign",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCampaignsDelete(cmd.OutOrStdout(), args[0])
		},
	})
	root.AddCommand(campaigns)

	return root
}

func runPlay() error {
	cfg := config.Load()

	// The TUI owns stdout, so logs go to a file.
	logWriter, closeLog, err := openLogFile()
	if err != nil {
		logWriter = io.Discard
		closeLog = func() {}
	}
	defer closeLog()
	log := logger.Setup(cfg, logWriter)

	narrative, err := buildNarrativeService(cfg, log)
	if err != nil {
		return err
	}

	store := connectStorage(cfg, log)
	if store != nil {
		defer store.Close()
	}

	eng := engine.New(narrative, store, log)

	p := tea.NewProgram(tui.New(eng, store, log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run program: %w", err)
	}
	return nil
}

func runCampaignsList(out io.Writer) error {
	cfg := config.Load()
	log := logger.Setup(cfg, io.Discard)

	store, err := storage.NewRedisStorage(cfg.RedisURL, log)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	campaigns, err := store.ListCampaigns(ctx)
	if err != nil {
		return fmt.Errorf("failed to list campaigns: %w", err)
	}
	if len(campaigns) == 0 {
		fmt.Fprintln(out, "No saved campaigns.")
		return nil
	}
	for _, c := range campaigns {
		fmt.Fprintf(out, "%s  %-30s  %s\n", c.ID, c.Name, c.LastUpdated.Format(time.RFC1123))
	}
	return nil
}

func runCampaignsDelete(out io.Writer, rawID string) error {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return fmt.Errorf("invalid campaign id %q: %w", rawID, err)
	}

	cfg := config.Load()
	log := logger.Setup(cfg, io.Discard)

	store, err := storage.NewRedisStorage(cfg.RedisURL, log)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := store.DeleteCampaign(ctx, id); err != nil {
		return fmt.Errorf("failed to delete campaign: %w", err)
	}
	fmt.Fprintf(out, "Deleted campaign %s.\n", id)
	return nil
}

func buildNarrativeService(cfg *config.Config, log *slog.Logger) (services.NarrativeService, error) {
	switch cfg.Provider {
	case "gemini":
		if cfg.GeminiAPIKey == "" {
			return nil, errors.New("GEMINI_API_KEY is required when NARRATIVE_PROVIDER=gemini")
		}
		return services.NewGeminiService(cfg.GeminiAPIKey, log), nil
	case "openai":
		if cfg.OpenAIAPIKey == "" {
			return nil, errors.New("OPENAI_API_KEY is required when NARRATIVE_PROVIDER=openai")
		}
		return services.NewOpenAIService(cfg.OpenAIAPIKey, log), nil
	default:
		return nil, fmt.Errorf("unknown narrative provider %q", cfg.Provider)
	}
}

// connectStorage returns nil when Redis is unreachable. Play continues
// without saves rather than refusing to start.
func connectStorage(cfg *config.Config, log *slog.Logger) storage.Storage {
	store, err := storage.NewRedisStorage(cfg.RedisURL, log)
	if err != nil {
		log.Warn("Campaign persistence disabled", "error", err)
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Warn("Campaign persistence disabled, redis unreachable", "error", err)
		_ = store.Close()
		return nil
	}
	return store
}

func openLogFile() (io.Writer, func(), error) {
	dir, err := os.UserCacheDir()
	if err != nil {
		return nil, nil, err
	}
	dir = filepath.Join(dir, "arcanedm")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	f, err := os.OpenFile(filepath.Join(dir, "arcanedm.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { _ = f.Close() }, nil
}
