package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/go-pkgz/lgr"
	"github.com/jessevdk/go-flags"

	"github.com/umputun/newshub/pkg/aggregator"
	"github.com/umputun/newshub/pkg/config"
	"github.com/umputun/newshub/pkg/db"
	"github.com/umputun/newshub/pkg/provider"
	"github.com/umputun/newshub/pkg/scheduler"
	"github.com/umputun/newshub/server"
)

// Opts with all CLI options
type Opts struct {
	Config string `short:"f" long:"config" env:"CONFIG" default:"newshub.yml" description:"config file path"`

	Aggregate bool   `long:"aggregate" description:"run aggregation once and exit"`
	Source    string `long:"source" description:"limit one-shot aggregation to a single source slug"`
	Force     bool   `long:"force" description:"fetch the source even if it is not ready"`

	Cleanup bool `long:"cleanup" description:"delete articles past retention and exit"`
	Days    int  `long:"days" default:"30" description:"retention in days for cleanup"`

	Debug   bool `long:"dbg" env:"DEBUG" description:"debug mode"`
	Version bool `short:"V" long:"version" description:"show version info"`
	NoColor bool `long:"no-color" env:"NO_COLOR" description:"disable color output"`
}

var revision = "unknown"

func main() {
	var opts Opts
	parser := flags.NewParser(&opts, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("Version: %s\nGolang: %s\n", revision, runtime.Version())
		os.Exit(0)
	}

	setupLog(opts.Debug)

	log.Printf("[INFO] starting newshub version %s", revision)

	ctx, cancel := context.WithCancel(context.Background())

	// handle termination signals
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		<-sigChan
		log.Print("[INFO] termination signal received")
		cancel()
	}()

	err := run(ctx, opts)
	cancel()

	if err != nil {
		log.Printf("[ERROR] newshub failed: %v", err)
		os.Exit(1)
	}

	log.Print("[INFO] shutdown complete")
}

// run wires dependencies and executes the requested mode
func run(ctx context.Context, opts Opts) error {
	cfg, err := config.Load(opts.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	database, err := db.New(db.Config{
		DSN:             cfg.Database.DSN,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: time.Duration(cfg.Database.ConnMaxLifetime) * time.Second,
	})
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close() //nolint:errcheck // closing on shutdown

	if err := seed(ctx, database, cfg); err != nil {
		return fmt.Errorf("failed to seed configuration: %w", err)
	}

	agg := aggregator.New(aggregator.Params{
		Sources:    database,
		Categories: database,
		Articles:   database,
		Registry:   makeRegistry(cfg.GetProvidersConfig()),
		MaxWorkers: cfg.Schedule.MaxWorkers,
	})

	switch {
	case opts.Cleanup:
		cutoff := time.Now().AddDate(0, 0, -opts.Days)
		deleted, err := database.DeleteArticlesBefore(ctx, cutoff)
		if err != nil {
			return fmt.Errorf("cleanup failed: %w", err)
		}
		log.Printf("[INFO] deleted %d articles older than %d days", deleted, opts.Days)
		return nil

	case opts.Aggregate:
		return runAggregation(ctx, agg, opts)

	default:
		sched := scheduler.NewScheduler(agg, database, scheduler.Config{
			UpdateInterval:  cfg.Schedule.UpdateInterval,
			CleanupInterval: cfg.Schedule.CleanupInterval,
			RetentionDays:   cfg.Schedule.RetentionDays,
		})
		sched.Start(ctx)
		defer sched.Stop()

		srv := server.New(cfg, database, agg, revision, opts.Debug)
		return srv.Run(ctx)
	}
}

// runAggregation performs a one-shot aggregation and prints the summary
func runAggregation(ctx context.Context, agg *aggregator.Aggregator, opts Opts) error {
	if opts.Source != "" {
		result, err := agg.RunOne(ctx, opts.Source, opts.Force)
		if err != nil {
			return fmt.Errorf("aggregation of %q failed: %w", opts.Source, err)
		}
		fmt.Println(aggregator.Summary([]aggregator.FetchResult{result}))
		return nil
	}

	results, err := agg.RunAll(ctx)
	if err != nil {
		return fmt.Errorf("aggregation failed: %w", err)
	}
	fmt.Println(aggregator.Summary(results))
	return nil
}

// seed upserts configured sources and categories into the database
func seed(ctx context.Context, database *db.DB, cfg *config.Config) error {
	for _, c := range cfg.Categories {
		category := &db.Category{Slug: c.Slug, Name: c.Name, SortOrder: c.SortOrder, Enabled: c.Enabled}
		if err := database.UpsertCategory(ctx, category); err != nil {
			return fmt.Errorf("seed category %q: %w", c.Slug, err)
		}
	}
	for _, s := range cfg.Sources {
		source := &db.Source{
			Slug:          s.Slug,
			Name:          s.Name,
			APIURL:        s.APIURL,
			APIKey:        s.APIKey,
			APIConfig:     db.StringMap(s.APIConfig),
			Language:      s.Language,
			Country:       s.Country,
			Enabled:       s.Enabled,
			FetchInterval: s.Interval,
		}
		if err := database.UpsertSource(ctx, source); err != nil {
			return fmt.Errorf("seed source %q: %w", s.Slug, err)
		}
	}
	return nil
}

// makeRegistry binds source slugs to provider adapters, resolved at startup
func makeRegistry(cfg config.ProvidersConfig) *provider.Registry {
	opts := provider.Options{Timeout: cfg.Timeout, Window: cfg.Window, UserAgent: cfg.UserAgent}

	registry := provider.NewRegistry()

	newsapi := provider.NewNewsAPI(opts)
	registry.Register("newsapi", newsapi)
	// these sources proxy through the NewsAPI wire format
	registry.Register("bbc", newsapi)
	registry.Register("opennews", newsapi)
	registry.Register("newscred", newsapi)

	registry.Register("guardian", provider.NewGuardian(opts))
	registry.Register("nytimes", provider.NewNYTimes(opts))
	registry.Register("rss", provider.NewRSS(opts))

	return registry
}

func setupLog(dbg bool, secs ...string) {
	logOpts := []lgr.Option{lgr.Out(io.Discard), lgr.Err(io.Discard)}
	if dbg {
		logOpts = []lgr.Option{lgr.Debug, lgr.Msec, lgr.LevelBraces, lgr.StackTraceOnError}
	}

	colorizer := lgr.Mapper{
		ErrorFunc:  func(s string) string { return color.New(color.FgHiRed).Sprint(s) },
		WarnFunc:   func(s string) string { return color.New(color.FgRed).Sprint(s) },
		InfoFunc:   func(s string) string { return color.New(color.FgYellow).Sprint(s) },
		DebugFunc:  func(s string) string { return color.New(color.FgWhite).Sprint(s) },
		CallerFunc: func(s string) string { return color.New(color.FgBlue).Sprint(s) },
		TimeFunc:   func(s string) string { return color.New(color.FgCyan).Sprint(s) },
	}
	logOpts = append(logOpts, lgr.Map(colorizer))
	if len(secs) > 0 {
		logOpts = append(logOpts, lgr.Secret(secs...))
	}
	lgr.SetupStdLogger(logOpts...)
	lgr.Setup(logOpts...)
}
