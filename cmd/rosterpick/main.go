package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/rosterpick/internal/audio"
	"github.com/jask/rosterpick/internal/catalog"
	"github.com/jask/rosterpick/internal/config"
	"github.com/jask/rosterpick/internal/database"
	"github.com/jask/rosterpick/internal/input"
	"github.com/jask/rosterpick/internal/prefs"
	"github.com/jask/rosterpick/internal/preview"
	"github.com/jask/rosterpick/internal/roster"
	"github.com/jask/rosterpick/internal/session"
	"github.com/jask/rosterpick/internal/tui"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// The alt screen owns stdout, so logs go to a file or nowhere.
	logger := log.New(io.Discard, "", 0)
	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "rosterpick")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
		logger = log.Default()
	}

	entities, err := loadCatalog(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	store, warnings := catalog.New(entities)
	for _, w := range warnings {
		logger.Printf("warn: %s", w)
	}

	var player audio.Player = audio.Nop{}
	if cfg.Audio.Enabled {
		sp := audio.NewSpeaker(cfg.Audio.SampleRate)
		if err := sp.Initialize(); err != nil {
			logger.Printf("warn: audio disabled: %v", err)
		} else {
			defer sp.Close()
			player = sp
		}
	}

	sortKey, err := roster.ParseSortKey(cfg.UI.Sort)
	if err != nil {
		logger.Printf("warn: %v; using insertion order", err)
	}

	sess := session.New(store, session.Options{
		Player: player,
		Preview: preview.Config{
			Sensitivity: cfg.Preview.Sensitivity,
			ZoomStep:    cfg.Preview.ZoomStep,
			MinZoom:     cfg.Preview.MinZoom,
			MaxZoom:     cfg.Preview.MaxZoom,
		},
		SlotCount: cfg.Team.Slots,
		Sort:      sortKey,
		Logger:    logger,
	})

	if team, err := prefs.LoadTeam(cfg.Team.Path); err != nil {
		logger.Printf("warn: team not restored: %v", err)
	} else if len(team.Slots) > 0 {
		n := sess.Slots.Restore(team.Slots)
		logger.Printf("restored %d of %d slots from %s", n, len(team.Slots), cfg.Team.Path)
	}

	app, err := tui.New(sess, tui.Options{
		Keymap:    input.DefaultKeymap().WithOverrides(cfg.Keys),
		CardWidth: cfg.UI.CardWidth,
		TeamPath:  cfg.Team.Path,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("tui: %v", err)
	}
	defer app.Close()

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithReportFocus())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// loadCatalog reads characters from a TOML file when one is configured, otherwise from
// the sqlite catalog, seeding it with the built-in roster on first run.
func loadCatalog(ctx context.Context, cfg config.Config, logger *log.Logger) ([]catalog.Entity, error) {
	if path := strings.TrimSpace(cfg.Catalog.Path); path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return catalog.DecodeTOML(f)
	}
	if cfg.Catalog.Database == "" {
		return catalog.Defaults(), nil
	}

	db, err := database.Open(cfg.Catalog.Database)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	defer db.Close()

	if err := database.RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	if cfg.Catalog.Seed {
		seeded, err := database.SeedCatalog(ctx, db, catalog.Defaults())
		if err != nil {
			return nil, err
		}
		if seeded {
			logger.Printf("seeded %s with the built-in roster", cfg.Catalog.Database)
		}
	}
	return database.LoadCatalog(ctx, db)
}
