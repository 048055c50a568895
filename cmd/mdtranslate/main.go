package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/mdtranslate/internal/config"
	"git.home.luguber.info/inful/mdtranslate/internal/metrics"
	"git.home.luguber.info/inful/mdtranslate/internal/syncer"
	"git.home.luguber.info/inful/mdtranslate/internal/translate"
	"git.home.luguber.info/inful/mdtranslate/internal/version"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"mdtranslate.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Sync struct {
	} `cmd:"" help:"Translate all missing per-language files once"`

	Status struct {
	} `cmd:"" help:"List source documents and missing translations without translating"`

	Watch struct {
		RescanInterval time.Duration `short:"i" help:"Periodic full rescan interval (0 disables)" default:"15m"`
		MetricsAddr    string        `help:"Address to serve Prometheus metrics on (empty disables)"`
	} `cmd:"" help:"Watch the docs tree and translate new source files continuously"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Version struct {
	} `cmd:"" help:"Print version information"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	switch ctx.Command() {
	case "sync":
		err = runSync()
	case "status":
		err = runStatus()
	case "watch":
		err = runWatch()
	case "init":
		err = config.Init(CLI.Config, CLI.Init.Force)
	case "version":
		fmt.Printf("mdtranslate %s (commit %s, built %s)\n", version.Version, version.GitCommit, version.BuildTime)
	}

	if err != nil {
		slog.Error("Command failed", "command", ctx.Command(), "error", err)
		os.Exit(1)
	}
}

// newTranslator builds the dispatcher from config. The disabled sentinel is
// passed through so callers can decide whether it is fatal.
func newTranslator(cfg *config.Config) (*translate.Translator, error) {
	return translate.New(translate.Options{
		Service: cfg.TranslationService,
		APIKey:  cfg.TranslationServiceAPIKey,
		Timeout: cfg.Timeout(),
		BaseURL: cfg.TranslationServiceBaseURL,
	})
}

func runSync() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	translator, err := newTranslator(cfg)
	if errors.Is(err, translate.ErrTranslationDisabled) {
		slog.Info("Translation disabled: no API key configured, nothing to do")
		return nil
	}
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	result, err := syncer.New(cfg, translator, nil).Run(ctx)
	if err != nil {
		return err
	}
	if len(result.Failed) > 0 {
		slog.Warn("Sync finished with failures", "failed", len(result.Failed))
	}
	return nil
}

func runStatus() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}
	return printStatus(cfg)
}

func runWatch() error {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return err
	}

	// Watch mode without a credential cannot converge; refuse to start.
	translator, err := newTranslator(cfg)
	if err != nil {
		return err
	}

	recorder := metrics.NewRecorder(nil)
	if CLI.Watch.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", recorder.Handler())
		go func() {
			slog.Info("Serving metrics", "addr", CLI.Watch.MetricsAddr)
			if serveErr := http.ListenAndServe(CLI.Watch.MetricsAddr, mux); serveErr != nil {
				slog.Error("Metrics server failed", "error", serveErr)
			}
		}()
	}

	watcher, err := syncer.NewWatcher(syncer.New(cfg, translator, recorder), CLI.Watch.RescanInterval)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := watcher.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	slog.Info("Watcher stopped")
	return nil
}
