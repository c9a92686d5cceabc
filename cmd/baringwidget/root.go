package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandeepkv93/baringwidget/internal/bridge"
	"github.com/sandeepkv93/baringwidget/internal/logging"
	"github.com/sandeepkv93/baringwidget/internal/scheduler"
	"github.com/sandeepkv93/baringwidget/internal/storage"
	"github.com/sandeepkv93/baringwidget/internal/update"
	"github.com/sandeepkv93/baringwidget/internal/views"
	"github.com/sandeepkv93/baringwidget/internal/widget"
)

// reloadEvery paces host reloads once the burst is spent.
const reloadEvery = time.Second

type rootFlags struct {
	configPath     string
	storePath      string
	logLevel       string
	maxSlots       int
	refreshMinutes int
}

func newRootCommand() *cobra.Command {
	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "baringwidget",
		Short:         "Render Baring home-screen widgets from the host snapshot store",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "YAML config file")
	pf.StringVar(&flags.storePath, "store", "", "SQLite snapshot store path")
	pf.StringVar(&flags.logLevel, "log-level", "", "debug|info|warn|error")
	pf.IntVar(&flags.maxSlots, "max-slots", 0, "to-do widget row count")
	pf.IntVar(&flags.refreshMinutes, "refresh-minutes", 0, "timeline refresh interval")

	root.AddCommand(
		newPreviewCommand(flags),
		newRenderCommand(flags),
		newWriteCommand(flags),
		newCatalogCommand(),
		newBridgeCommand(),
	)
	return root
}

// loadConfig applies defaults, then the config file, then env, then flags.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (update.RuntimeConfig, error) {
	cfg := update.DefaultRuntimeConfig()
	if flags.configPath != "" {
		loaded, err := update.LoadRuntimeConfigFile(flags.configPath, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	pf := cmd.Flags()
	if pf.Changed("store") {
		cfg.StorePath = flags.storePath
	}
	if pf.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}
	if pf.Changed("max-slots") && flags.maxSlots > 0 {
		cfg.MaxSlots = flags.maxSlots
	}
	if pf.Changed("refresh-minutes") && flags.refreshMinutes > 0 {
		cfg.RefreshMinutes = flags.refreshMinutes
	}
	return cfg, nil
}

func newPreviewCommand(flags *rootFlags) *cobra.Command {
	var familyName string
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactive widget preview driven by the refresh scheduler",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			family, err := widget.ParseFamily(familyName)
			if err != nil {
				return err
			}
			// The TUI owns the terminal, so logs go to a file or nowhere.
			logger := logging.New(io.Discard, cfg.LogLevel)
			if cfg.LogFile != "" {
				l, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
				if err != nil {
					return err
				}
				defer closeLog()
				logger = l
			}

			repo, err := storage.OpenSQLite(cfg.StorePath)
			if err != nil {
				return err
			}
			defer repo.Close()

			engine := scheduler.NewEngine(cfg.SchedulerBuffer)
			engine.Start()
			defer engine.Stop()

			renderer := widget.NewRenderer(repo, widget.Options{
				MaxSlots:        cfg.MaxSlots,
				RefreshInterval: cfg.RefreshInterval(),
				Logger:          logger,
			})
			model := update.NewModel(update.Deps{
				Context:         cmd.Context(),
				Renderer:        renderer,
				Scheduler:       engine,
				Reloads:         scheduler.NewReloadGate(engine, reloadEvery, cfg.ReloadBurst),
				Family:          family,
				RefreshInterval: cfg.RefreshInterval(),
			})
			logger.Info("preview starting", "store", cfg.StorePath, "family", family)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
	cmd.Flags().StringVar(&familyName, "family", string(widget.FamilyGoalMedium), "widget family or alias (goal, small, todo)")
	return cmd
}

func newRenderCommand(flags *rootFlags) *cobra.Command {
	var (
		familyName   string
		snapshotPath string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render widgets once and print them",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			var source widget.SnapshotSource
			if snapshotPath != "" {
				snap, err := storage.LoadSnapshotFile(snapshotPath)
				if err != nil {
					return err
				}
				mem := storage.NewMemoryRepository()
				if err := mem.Replace(cmd.Context(), snap); err != nil {
					return err
				}
				source = mem
			} else {
				repo, err := storage.OpenSQLite(cfg.StorePath)
				if err != nil {
					return err
				}
				defer repo.Close()
				source = repo
			}

			renderer := widget.NewRenderer(source, widget.Options{
				MaxSlots:        cfg.MaxSlots,
				RefreshInterval: cfg.RefreshInterval(),
				Logger:          logger,
			})
			entries, err := renderEntries(cmd.Context(), renderer, familyName)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, e := range entries {
				fmt.Fprintln(out, views.RenderEntry(e))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&familyName, "family", "all", "widget family, alias, or all")
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "render from a YAML/JSON snapshot file instead of the store")
	return cmd
}

func renderEntries(ctx context.Context, renderer *widget.Renderer, familyName string) ([]widget.Entry, error) {
	if strings.EqualFold(familyName, "all") {
		return renderer.RefreshAll(ctx)
	}
	family, err := widget.ParseFamily(familyName)
	if err != nil {
		return nil, err
	}
	entry, err := renderer.Refresh(ctx, family)
	if err != nil {
		return nil, err
	}
	return []widget.Entry{entry}, nil
}

func newWriteCommand(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "write <snapshot-file>",
		Short: "Replace the stored snapshot with a YAML/JSON document, as the host app does",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			_, closeLog, err := logging.Setup(cfg.LogLevel, cfg.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			snap, err := storage.LoadSnapshotFile(args[0])
			if err != nil {
				return err
			}
			repo, err := storage.OpenSQLite(cfg.StorePath)
			if err != nil {
				return err
			}
			defer repo.Close()

			if err := repo.Replace(cmd.Context(), snap); err != nil {
				return err
			}
			meta, err := repo.Meta(cmd.Context())
			if err != nil {
				return err
			}
			slog.Info("snapshot written", "store", cfg.StorePath, "keys", snap.Len(), "generation", meta.Generation)
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d keys (generation %d)\n", snap.Len(), meta.Generation)
			return nil
		},
	}
}

func newCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List widget families and style presets",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), views.RenderCatalog())
		},
	}
}

func newBridgeCommand() *cobra.Command {
	var perms bridge.Permissions
	cmd := &cobra.Command{
		Use:   "bridge <method>",
		Short: "Invoke a " + bridge.Channel + " method against stub handlers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := bridge.Invoke(args[0], bridge.Handlers{
				OpenAppSettings:  func() (bool, error) { return true, nil },
				CheckPermissions: func() (bridge.Permissions, error) { return perms, nil },
			})
			if err != nil {
				return err
			}
			raw, err := json.Marshal(res.Value())
			if err != nil {
				return fmt.Errorf("encode result: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(raw))
			return nil
		},
	}
	cmd.Flags().BoolVar(&perms.Camera, "camera", false, "report camera permission granted")
	cmd.Flags().BoolVar(&perms.Notification, "notification", false, "report notification permission granted")
	cmd.Flags().BoolVar(&perms.Calendar, "calendar", false, "report calendar permission granted")
	return cmd
}
