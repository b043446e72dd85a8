package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/designator"
	"github.com/sightline/sightline/internal/targets"
)

// CatalogScreen lets the user find an object by typing its designation
// digit-by-digit, cycling catalogs, and scrolling to real neighbor objects.
// Enter commits the tentative match as the shared target.
type CatalogScreen struct {
	cursor  *catalog.Cursor
	entry   *designator.Entry
	manager *targets.Manager
	status  *StatusLine
	match   *catalog.Object
}

func NewCatalogScreen(cursor *catalog.Cursor, manager *targets.Manager, status *StatusLine) *CatalogScreen {
	return &CatalogScreen{
		cursor:  cursor,
		entry:   designator.New(cursor.Active().DesignatorWidth),
		manager: manager,
		status:  status,
	}
}

func (s *CatalogScreen) Title() string { return "CATALOG" }

// Activate keeps the in-progress designator; returning to the search screen
// resumes where the user left off.
func (s *CatalogScreen) Activate() {}

func (s *CatalogScreen) HandleKey(ev KeyEvent) Signal {
	switch ev.Kind {
	case KindDigit:
		s.entry.PushDigit(ev.Digit)
		s.refreshMatch()

	case KindCatalogCycle:
		cat := s.cursor.CycleCatalog()
		s.entry.Reset(cat.DesignatorWidth)
		s.match = nil

	case KindUp:
		s.adoptNeighbor(catalog.Backward)

	case KindDown:
		s.adoptNeighbor(catalog.Forward)

	case KindEnter:
		if s.match != nil {
			s.manager.SetTarget(*s.match)
			return SwitchTo(ScreenLocate)
		}
	}
	return Signal{}
}

// refreshMatch re-runs the exact lookup for the current key. A retrieval
// failure is reported and treated as no match; prior screen state stays.
func (s *CatalogScreen) refreshMatch() {
	obj, err := s.cursor.Lookup(s.entry.Key())
	if err != nil {
		s.match = nil
		if !errors.Is(err, catalog.ErrNotFound) {
			logrus.Debugf("catalog lookup failed: %v", err)
			s.status.Post("Err! catalog unavailable")
		}
		return
	}
	s.match = &obj
}

// adoptNeighbor finds the next real object beyond the typed key and adopts
// its designation into the entry buffer.
func (s *CatalogScreen) adoptNeighbor(dir catalog.Direction) {
	obj, err := s.cursor.Neighbor(s.entry.Key(), dir)
	if err != nil {
		if !errors.Is(err, catalog.ErrNotFound) {
			logrus.Debugf("catalog neighbor failed: %v", err)
			s.status.Post("Err! catalog unavailable")
		}
		return
	}
	s.match = &obj
	s.entry.SetKey(obj.Designation)
}

func (s *CatalogScreen) View(now time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-3s %s\n\n", s.cursor.Active().Name, s.entry.String())

	if s.match == nil {
		b.WriteString("No Object Found\n")
		return b.String()
	}
	fmt.Fprintf(&b, "%-14s %s\n", catalog.TypeLabel(s.match.ObjectType), s.match.Constellation)
	fmt.Fprintf(&b, "RA %7.3f  Dec %+7.3f\n", s.match.RA, s.match.Dec)
	if s.match.Magnitude != 0 {
		fmt.Fprintf(&b, "Mag %.1f\n", s.match.Magnitude)
	}
	return b.String()
}
