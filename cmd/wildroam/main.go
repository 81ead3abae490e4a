package main

import (
	"context"
	"fmt"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/wildroam/internal/booking"
	"github.com/jask/wildroam/internal/catalog"
	"github.com/jask/wildroam/internal/config"
	"github.com/jask/wildroam/internal/logging"
	"github.com/jask/wildroam/internal/selection"
	"github.com/jask/wildroam/internal/tui"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if created, err := config.EnsureFile(cfg); err != nil {
		log.Printf("warn: could not write default config: %v", err)
	} else if created {
		log.Printf("wrote default config to %s", config.Path())
	}

	logger, closer, err := logging.Setup(cfg.Log)
	if err != nil {
		log.Fatalf("logging: %v", err)
	}
	defer closer.Close()

	loc, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone: %v", err)
	}

	cat, err := catalog.Default()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}

	form := booking.NewForm(booking.Options{
		DefaultGuests: cfg.Booking.DefaultGuests,
		MaxGuests:     cfg.Booking.MaxGuests,
		Location:      loc,
	})

	app := tui.New(ctx, cfg, tui.Deps{
		Selection: selection.New(cat),
		Form:      form,
		Submitter: booking.SimulatedSubmitter{Delay: cfg.Booking.SubmitDelay},
		Logger:    logger,
	})

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logger.Error().Err(err).Msg("program exited")
		closer.Close()
		os.Exit(1)
	}
}
