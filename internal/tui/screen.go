package tui

import "time"

// ScreenID names the interactive screens.
type ScreenID int

const (
	ScreenCatalog ScreenID = iota
	ScreenLocate
)

// Signal is the only control-flow effect a screen produces: an optional
// request to hand control to a different screen.
type Signal struct {
	Target ScreenID
	Switch bool
}

// SwitchTo builds a screen-switch signal.
func SwitchTo(id ScreenID) Signal {
	return Signal{Target: id, Switch: true}
}

// Screen is the capability interface every screen implements. The controller
// composes screens by delegation; there is no shared base type.
type Screen interface {
	Title() string
	// Activate runs when the screen gains control of the display.
	Activate()
	HandleKey(ev KeyEvent) Signal
	// View renders the screen body. now drives live readouts and message
	// expiry.
	View(now time.Time) string
}

const statusMessageTTL = 2 * time.Second

// StatusLine is the transient one-line message surface shared by all
// screens. Messages expire rather than being dismissed.
type StatusLine struct {
	text  string
	until time.Time
}

// Post shows a message for the default duration.
func (s *StatusLine) Post(text string) {
	s.PostFor(text, statusMessageTTL)
}

// PostFor shows a message for an explicit duration.
func (s *StatusLine) PostFor(text string, d time.Duration) {
	s.text = text
	s.until = time.Now().Add(d)
}

// Current returns the visible message, if it has not expired yet.
func (s *StatusLine) Current(now time.Time) (string, bool) {
	if s.text == "" || now.After(s.until) {
		return "", false
	}
	return s.text, true
}

// Controller routes key events to the active screen and performs the screen
// switches those events signal.
type Controller struct {
	screens map[ScreenID]Screen
	active  ScreenID
	status  *StatusLine
}

// NewController composes the two screens; the catalog-search screen starts
// active.
func NewController(status *StatusLine, catalogScreen, locateScreen Screen) *Controller {
	c := &Controller{
		screens: map[ScreenID]Screen{
			ScreenCatalog: catalogScreen,
			ScreenLocate:  locateScreen,
		},
		active: ScreenCatalog,
		status: status,
	}
	c.screens[c.active].Activate()
	return c
}

// HandleKey delegates to the active screen and follows any switch signal.
func (c *Controller) HandleKey(ev KeyEvent) {
	sig := c.screens[c.active].HandleKey(ev)
	if sig.Switch {
		c.Switch(sig.Target)
	}
}

// Switch hands control to the given screen and re-activates it.
func (c *Controller) Switch(id ScreenID) {
	c.active = id
	c.screens[id].Activate()
}

// ActiveID reports which screen currently has control.
func (c *Controller) ActiveID() ScreenID {
	return c.active
}

// ActiveScreen returns the screen currently in control.
func (c *Controller) ActiveScreen() Screen {
	return c.screens[c.active]
}

// Status exposes the shared message line.
func (c *Controller) Status() *StatusLine {
	return c.status
}
