package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/sightline/sightline/internal/astro"
	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/config"
	"github.com/sightline/sightline/internal/obslist"
	"github.com/sightline/sightline/internal/positioning"
	"github.com/sightline/sightline/internal/targets"
)

// Run wires the catalog store, list persistence, astrometry, and positioning
// source into the screen controller and blocks on the Bubble Tea program.
func Run(cfg config.Config, source positioning.Source) error {
	objects := catalog.BuiltinObjects()
	if cfg.ObjectsFile != "" {
		loaded, err := catalog.LoadObjects(cfg.ObjectsFile)
		if err != nil {
			return err
		}
		objects = loaded
	}
	store := catalog.NewMemStore(objects)
	cursor := catalog.NewCursor(store, cfg.Catalogs)
	manager := targets.NewManager(obslist.NewStore(cfg.ListsDir), store)

	status := &StatusLine{}
	controller := NewController(
		status,
		NewCatalogScreen(cursor, manager, status),
		NewLocateScreen(manager, astro.NewConverter(), source, status),
	)

	p := tea.NewProgram(NewModel(controller), tea.WithAltScreen())

	// Silence logs during the TUI to avoid corrupting the frame.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	_, err := p.Run()
	return err
}
