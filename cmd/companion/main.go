package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/drpriyanshi/companion-tui/internal/rng"
	"github.com/drpriyanshi/companion-tui/internal/store"
	"github.com/drpriyanshi/companion-tui/internal/ui"
	"github.com/drpriyanshi/companion-tui/internal/util"
)

var version = "0.1.0"

func main() {
	// Load .env file if it exists (ignore error if file doesn't exist)
	_ = godotenv.Load()

	configPath := flag.String("config", "", "config file path (default ~/.companion/config.yaml)")
	dsnFlag := flag.String("dsn", "", "sqlite file path or postgres:// URL")
	seedFlag := flag.String("seed", "", "session seed for the simulated responder")
	langFlag := flag.String("language", "", "interface language: english|hindi")
	themeFlag := flag.String("theme", "", "ui palette: clinic|marigold")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "companion [--config file] [--dsn DSN] [--seed text] [--language english|hindi] | migrate up|down | reset | version\n")
	}
	flag.Parse()

	cfg, err := util.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *dsnFlag != "" {
		cfg.DSN = *dsnFlag
	}
	if *seedFlag != "" {
		cfg.SeedText = *seedFlag
	}
	if *langFlag != "" {
		cfg.Language = *langFlag
	}
	if *themeFlag != "" {
		cfg.Theme = *themeFlag
	}
	if cfg.SeedText == "" {
		generated, err := rng.RandomText()
		if err != nil {
			log.Fatalf("failed to generate seed: %v", err)
		}
		cfg.SeedText = generated
		fmt.Printf("New session seed: %s\n", generated)
	}

	if !store.IsPostgresDSN(cfg.DSN) {
		if err := os.MkdirAll(filepath.Dir(cfg.DSN), 0o700); err != nil {
			log.Fatalf("data dir: %v", err)
		}
	}

	ctx := context.Background()

	args := flag.Args()
	if len(args) > 0 {
		switch args[0] {
		case "version":
			fmt.Println("companion", version)
			return
		case "migrate":
			if len(args) < 2 {
				log.Fatal("migrate requires 'up' or 'down'")
			}
			migCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
			defer cancel()
			migrator, err := store.NewMigrator(cfg.DSN)
			if err != nil {
				log.Fatal(err)
			}
			switch args[1] {
			case "up":
				if err := migrator.Up(migCtx); err != nil && err != store.ErrNoChange {
					log.Fatal(err)
				}
				fmt.Println("Migrations applied")
			case "down":
				if err := migrator.Down(migCtx); err != nil && err != store.ErrNoChange {
					log.Fatal(err)
				}
				fmt.Println("Migrations rolled back")
			default:
				log.Fatal("unknown migrate action; use up|down")
			}
			return
		case "reset":
			if err := resetData(ctx, cfg); err != nil {
				log.Fatal(err)
			}
			fmt.Println("All data cleared")
			return
		}
	}

	// migrations must be in place before the UI touches the store
	mig, err := store.NewMigrator(cfg.DSN)
	if err != nil {
		log.Fatalf("migrations init failed: %v", err)
	}
	migCtx, cancelMig := context.WithTimeout(ctx, 30*time.Second)
	defer cancelMig()
	if err := mig.Up(migCtx); err != nil && err != store.ErrNoChange {
		log.Fatalf("migrations failed: %v", err)
	}

	db, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	st := store.New(store.NewGormDocuments(db))
	if err := ui.Run(ctx, st, cfg, version); err != nil {
		log.Fatal(err)
	}
}

// resetData wipes every storage slot, the CLI counterpart of a fresh install.
func resetData(ctx context.Context, cfg util.Config) error {
	db, err := store.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return store.New(store.NewGormDocuments(db)).ClearAll(ctx)
}
