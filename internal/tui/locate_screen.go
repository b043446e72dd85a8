package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/obslist"
	"github.com/sightline/sightline/internal/pointing"
	"github.com/sightline/sightline/internal/positioning"
	"github.com/sightline/sightline/internal/targets"
)

// LocateScreen shows push-to guidance for the shared target and browses the
// history/observing lists. Enter hands control back to the catalog search.
type LocateScreen struct {
	manager *targets.Manager
	sky     pointing.Astrometry
	source  positioning.Source
	status  *StatusLine

	// session prefixes saved-list names so lists from different power-ons
	// never collide.
	session   string
	saveCount int
	loadIndex int
}

func NewLocateScreen(manager *targets.Manager, sky pointing.Astrometry, source positioning.Source, status *StatusLine) *LocateScreen {
	return &LocateScreen{
		manager: manager,
		sky:     sky,
		source:  source,
		status:  status,
		session: uuid.NewString()[:8],
	}
}

func (s *LocateScreen) Title() string { return "LOCATE" }

// Activate re-synchronizes the cursor against whichever list is active; the
// target may have been committed or the lists swapped since the last visit.
func (s *LocateScreen) Activate() {
	s.manager.Resync()
}

func (s *LocateScreen) HandleKey(ev KeyEvent) Signal {
	switch ev.Kind {
	case KindUp:
		s.manager.Scroll(-1)

	case KindDown:
		s.manager.Scroll(+1)

	case KindListSwitch:
		s.switchList()

	case KindSave:
		s.saveActive()

	case KindLoad:
		s.loadNext()

	case KindEnter:
		return SwitchTo(ScreenCatalog)
	}
	return Signal{}
}

func (s *LocateScreen) switchList() {
	if err := s.manager.SwitchActive(); err != nil {
		if s.manager.ActiveTag() == targets.History {
			s.status.Post("No Obs List")
		} else {
			s.status.Post("No History")
		}
	}
}

func (s *LocateScreen) saveActive() {
	scope := s.manager.ActiveTag()
	name := fmt.Sprintf("%s_%s_%02d", s.session, scope, s.saveCount)
	if _, err := s.manager.Save(scope, name); err != nil {
		if errors.Is(err, targets.ErrEmptyList) {
			s.status.Post("No objects")
		} else {
			logrus.Debugf("save list failed: %v", err)
			s.status.Post("Err! save failed")
		}
		return
	}
	s.status.Post(fmt.Sprintf("Saved list - %02d", s.saveCount))
	s.saveCount++
}

// loadNext cycles through the saved lists, loading the next one on each
// press. Simple, but workable on a five-button keypad.
func (s *LocateScreen) loadNext() {
	names, err := s.manager.ListNames()
	if err != nil {
		logrus.Debugf("enumerating lists failed: %v", err)
		s.status.Post("Err! lists unavailable")
		return
	}
	if len(names) == 0 {
		s.status.Post("No saved lists")
		return
	}
	name := names[s.loadIndex%len(names)]
	s.loadIndex++

	loaded, parsed, err := s.manager.Load(name)
	switch {
	case errors.Is(err, targets.ErrNoMatches):
		s.status.Post("No matches")
	case errors.Is(err, obslist.ErrNotFound):
		s.status.Post("No matches")
	case err != nil:
		logrus.Debugf("load list %q failed: %v", name, err)
		s.status.Post("Err! load failed")
	default:
		s.status.Post(fmt.Sprintf("Loaded %d of %d", loaded, parsed))
	}
}

func (s *LocateScreen) View(now time.Time) string {
	target, ok := s.manager.Target()
	if !ok {
		return "No Target Set\n"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%-10s %s\n", target.Name(), s.positionLabel())
	fmt.Fprintf(&b, "%-14s %s\n\n", catalog.TypeLabel(target.ObjectType), target.Constellation)
	b.WriteString(s.aimLines(target))
	return b.String()
}

// positionLabel renders "3/12 Hist" style cursor context, or nothing when
// the cursor is unset.
func (s *LocateScreen) positionLabel() string {
	idx, ok := s.manager.Cursor()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d/%d %s", idx+1, len(s.manager.ActiveObjects()), s.manager.ActiveTag())
}

// aimLines renders the big az/alt correction readout, or neutral
// placeholders when there is no fix.
func (s *LocateScreen) aimLines(target catalog.Object) string {
	v, ok := pointing.Aim(s.sky, target, s.source.Snapshot())
	if !ok {
		return " ---.-\n  --.-\n"
	}

	azArrow, az := "▶", v.Az
	if az < 0 {
		azArrow, az = "◀", -az
	}
	altArrow, alt := "▲", v.Alt
	if alt < 0 {
		altArrow, alt = "▼", -alt
	}
	return fmt.Sprintf("%s %5.1f\n%s %5.1f\n", azArrow, az, altArrow, alt)
}
