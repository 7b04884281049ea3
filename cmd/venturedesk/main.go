package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jask/venturedesk/app"
	"github.com/jask/venturedesk/internal/calendar"
	"github.com/jask/venturedesk/internal/config"
	"github.com/jask/venturedesk/internal/logging"
)

func main() {
	fs := config.Flags("venturedesk")
	if err := fs.Parse(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		log.Fatalf("flags: %v", err)
	}

	cfg, err := config.Load(fs)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	if write, _ := fs.GetBool("write-config"); write {
		path, _ := fs.GetString("config")
		if path == "" {
			err = config.Save(cfg)
		} else {
			err = config.SaveTo(path, cfg)
		}
		if err != nil {
			log.Fatalf("write config: %v", err)
		}
		fmt.Println("config written")
		return
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	now := time.Now()
	var seed []calendar.Meeting
	if cfg.Calendar.Seed {
		seed = calendar.Seed(now)
	}
	book := calendar.NewBook(seed)
	logger.Info("starting",
		zap.String("route", cfg.UI.StartRoute),
		zap.Int("meetings", book.Len()),
	)

	m := app.NewModel(app.Deps{Config: cfg, Book: book, Log: logger})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		_ = logger.Sync()
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
