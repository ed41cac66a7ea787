package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lmittmann/tint"

	"carbitrage/internal/catalog"
	"carbitrage/internal/config"
	"carbitrage/internal/eventbus"
	"carbitrage/internal/search"
	"carbitrage/internal/suggest"
	"carbitrage/internal/ui"
)

func main() {
	var link string
	var debug bool
	flag.StringVar(&link, "link", "", "Deep link query string, e.g. \"q=camry&priceMax=30000\"")
	flag.StringVar(&link, "l", "", "Deep link query string (shorthand)")
	flag.BoolVar(&debug, "debug", false, "Enable debug logging")
	flag.Parse()

	// Set up logging. The terminal belongs to the TUI, so logs go to a file.
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logFile, err := os.OpenFile("carbitrage.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err == nil {
		defer logFile.Close()
		slog.SetDefault(slog.New(tint.NewHandler(logFile, &tint.Options{
			Level:   level,
			NoColor: true,
		})))
	}

	bus := eventbus.New()

	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		slog.Warn("main: config load failed, using defaults", "error", err)
		cfg = config.DefaultConfig()
	}

	store := catalog.NewSampleStore()
	client := catalog.NewClient(store)
	controller := search.NewController(client, bus)
	controller.SetPageSize(cfg.UISettings.PageSize)
	index := suggest.NewIndex(store.All())
	recents := suggest.NewRecents(cfg.RecentSearches)

	// Buffer domain events for the bubbletea loop. Subscribing before
	// the first search means startup events are not lost.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			slog.Warn("main: event channel full, dropping event", "event", e.Type())
		}
	}
	for _, et := range []eventbus.EventType{
		eventbus.EventSearchStarted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventFiltersChanged,
		eventbus.EventPageChanged,
		eventbus.EventSuggestionsReady,
		eventbus.EventVehicleLoaded,
		eventbus.EventVehicleNotFound,
		eventbus.EventSimilarLoaded,
		eventbus.EventFeaturedLoaded,
		eventbus.EventRecentSearchesChanged,
		eventbus.EventError,
	} {
		bus.Subscribe(et, forward)
	}

	// Seed the search state from the deep link, if one was given. This
	// import runs once at startup; state never flows back out to a link.
	if link != "" {
		slog.Info("main: applying deep link", "link", link)
		controller.ApplyLink(link)
	}

	uiModel := ui.NewModel(ui.Deps{
		Bus:        bus,
		Controller: controller,
		Client:     client,
		Store:      store,
		Index:      index,
		Recents:    recents,
		ConfigSvc:  configSvc,
		Config:     cfg,
	})

	p := tea.NewProgram(uiModel, tea.WithAltScreen())

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	close(eventChan)
}
