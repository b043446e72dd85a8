//nolint:testpackage // White-box tests require access to unexported identifiers in this package.
package tui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/obslist"
	"github.com/sightline/sightline/internal/positioning"
	"github.com/sightline/sightline/internal/targets"
)

// fixedSky returns the same horizontal coordinates for any target.
type fixedSky struct {
	alt, az float64
}

func (f *fixedSky) SetLocation(lat, lon, altitude float64) {}

func (f *fixedSky) RADecToAltAz(ra, dec float64, t time.Time) (alt, az float64) {
	return f.alt, f.az
}

type fixture struct {
	controller *Controller
	manager    *targets.Manager
	catalog    *CatalogScreen
	locate     *LocateScreen
	status     *StatusLine
	source     *positioning.StaticSource
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := catalog.NewMemStore([]catalog.Object{
		{CatalogCode: "N", Designation: 1, ObjectType: "OC", Constellation: "Tau"},
		{CatalogCode: "N", Designation: 5, ObjectType: "Nb", Constellation: "Ori"},
		{CatalogCode: "N", Designation: 9, ObjectType: "Gx", Constellation: "And"},
		{CatalogCode: "M", Designation: 31, ObjectType: "Gx", Constellation: "And"},
	})
	cursor := catalog.NewCursor(store, []catalog.Catalog{
		{Code: "N", Name: "NGC", DesignatorWidth: 4},
		{Code: "M", Name: "Mes", DesignatorWidth: 3},
	})
	manager := targets.NewManager(obslist.NewStore(t.TempDir()), store)
	status := &StatusLine{}
	source := positioning.NewStaticSource()

	cs := NewCatalogScreen(cursor, manager, status)
	ls := NewLocateScreen(manager, &fixedSky{alt: 15, az: 2}, source, status)
	return &fixture{
		controller: NewController(status, cs, ls),
		manager:    manager,
		catalog:    cs,
		locate:     ls,
		status:     status,
		source:     source,
	}
}

func (f *fixture) press(evs ...KeyEvent) {
	for _, ev := range evs {
		f.controller.HandleKey(ev)
	}
}

func TestController_StartsOnCatalogSearch(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, ScreenCatalog, f.controller.ActiveID())
}

func TestCatalogScreen_TypedKeyFindsMatch(t *testing.T) {
	f := newFixture(t)

	f.press(Digit(5))
	require.NotNil(t, f.catalog.match)
	assert.Equal(t, 5, f.catalog.match.Designation)

	// 55 matches nothing; the tentative match clears.
	f.press(Digit(5))
	assert.Nil(t, f.catalog.match)
}

func TestCatalogScreen_NeighborScanAdoptsDesignation(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5))

	f.press(KeyEvent{Kind: KindDown})
	require.NotNil(t, f.catalog.match)
	assert.Equal(t, 9, f.catalog.match.Designation)
	assert.Equal(t, "---9", f.catalog.entry.String())

	f.press(KeyEvent{Kind: KindUp})
	assert.Equal(t, 5, f.catalog.match.Designation)
	assert.Equal(t, "---5", f.catalog.entry.String())
}

func TestCatalogScreen_NeighborFromUntypedBuffer(t *testing.T) {
	f := newFixture(t)

	f.press(KeyEvent{Kind: KindDown})
	require.NotNil(t, f.catalog.match)
	assert.Equal(t, 1, f.catalog.match.Designation)
}

func TestCatalogScreen_CycleResetsWidthAndMatch(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5))
	require.NotNil(t, f.catalog.match)

	f.press(KeyEvent{Kind: KindCatalogCycle})
	assert.Nil(t, f.catalog.match)
	assert.Equal(t, 3, f.catalog.entry.Width())
	assert.Equal(t, "---", f.catalog.entry.String())
}

func TestCatalogScreen_EnterWithoutMatchStays(t *testing.T) {
	f := newFixture(t)
	f.press(KeyEvent{Kind: KindEnter})
	assert.Equal(t, ScreenCatalog, f.controller.ActiveID())
}

func TestCatalogScreen_EnterCommitsTargetAndSwitches(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})

	assert.Equal(t, ScreenLocate, f.controller.ActiveID())
	target, ok := f.manager.Target()
	require.True(t, ok)
	assert.Equal(t, 5, target.Designation)
	assert.Len(t, f.manager.ActiveObjects(), 1)

	// Cursor re-synced on screen entry.
	idx, ok := f.manager.Cursor()
	require.True(t, ok)
	assert.Equal(t, 0, idx)
}

func TestLocateScreen_EnterReturnsToSearch(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})
	f.press(KeyEvent{Kind: KindEnter})
	assert.Equal(t, ScreenCatalog, f.controller.ActiveID())
}

func TestLocateScreen_ScrollRouting(t *testing.T) {
	f := newFixture(t)
	// The designator buffer persists between visits; cycling through the
	// catalog set and back clears it before each new designation.
	resetBuffer := []KeyEvent{{Kind: KindCatalogCycle}, {Kind: KindCatalogCycle}}
	f.press(Digit(1), KeyEvent{Kind: KindEnter})
	f.press(KeyEvent{Kind: KindEnter})
	f.press(resetBuffer...)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})
	f.press(KeyEvent{Kind: KindEnter})
	f.press(resetBuffer...)
	f.press(Digit(9), KeyEvent{Kind: KindEnter})

	// Three entries in history, cursor on the last.
	idx, ok := f.manager.Cursor()
	require.True(t, ok)
	assert.Equal(t, 2, idx)

	f.press(KeyEvent{Kind: KindUp})
	idx, _ = f.manager.Cursor()
	assert.Equal(t, 1, idx)

	f.press(KeyEvent{Kind: KindDown}, KeyEvent{Kind: KindDown})
	idx, _ = f.manager.Cursor()
	assert.Equal(t, 2, idx)
}

func TestLocateScreen_SwitchToEmptyObservingReports(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})

	f.press(KeyEvent{Kind: KindListSwitch})
	msg, ok := f.status.Current(time.Now())
	require.True(t, ok)
	assert.Equal(t, "No Obs List", msg)
	assert.Equal(t, targets.History, f.manager.ActiveTag())
}

func TestLocateScreen_SaveThenLoadRoundTrip(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})
	f.press(KeyEvent{Kind: KindSave})

	msg, ok := f.status.Current(time.Now())
	require.True(t, ok)
	assert.Equal(t, "Saved list - 00", msg)

	names, err := f.manager.ListNames()
	require.NoError(t, err)
	require.Len(t, names, 1)

	f.press(KeyEvent{Kind: KindLoad})
	msg, ok = f.status.Current(time.Now())
	require.True(t, ok)
	assert.Equal(t, "Loaded 1 of 1", msg)
	assert.Equal(t, targets.Observing, f.manager.ActiveTag())
}

func TestLocateScreen_SaveEmptyHistoryReports(t *testing.T) {
	f := newFixture(t)
	f.controller.Switch(ScreenLocate)

	f.press(KeyEvent{Kind: KindSave})
	msg, ok := f.status.Current(time.Now())
	require.True(t, ok)
	assert.Equal(t, "No objects", msg)
}

func TestLocateScreen_LoadWithNoSavedLists(t *testing.T) {
	f := newFixture(t)
	f.controller.Switch(ScreenLocate)

	f.press(KeyEvent{Kind: KindLoad})
	msg, ok := f.status.Current(time.Now())
	require.True(t, ok)
	assert.Equal(t, "No saved lists", msg)
}

func TestLocateScreen_ViewWithoutTarget(t *testing.T) {
	f := newFixture(t)
	f.controller.Switch(ScreenLocate)
	assert.Contains(t, f.locate.View(time.Now()), "No Target Set")
}

func TestLocateScreen_ViewShowsPlaceholdersWithoutFix(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})

	view := f.locate.View(time.Now())
	assert.Contains(t, view, "N5")
	assert.Contains(t, view, "---.-")
}

func TestLocateScreen_ViewShowsAimWithFix(t *testing.T) {
	f := newFixture(t)
	f.press(Digit(5), KeyEvent{Kind: KindEnter})

	now := time.Now().UTC()
	f.source.SetSolution(positioning.Solution{Az: 359, Alt: 10, AltAzValid: true})
	f.source.SetLocation(positioning.Location{Lat: 40, Lon: -105, GPSLock: true})
	f.source.SetTime(now)

	// Sky fixed at az=2 alt=15: corrections are +3 az, +5 alt.
	view := f.locate.View(time.Now())
	assert.Contains(t, view, "▶   3.0")
	assert.Contains(t, view, "▲   5.0")
	assert.Contains(t, view, "1/1 Hist")
}
