// Package pointing computes the live azimuth/altitude correction from the
// instrument's current solved position to the selected target.
package pointing

import (
	"math"
	"time"

	"github.com/sightline/sightline/internal/catalog"
	"github.com/sightline/sightline/internal/positioning"
)

// Vector is a signed pointing correction in degrees. Positive Az means the
// target is clockwise of the current pointing (turn right/east); positive Alt
// means the target is above it.
type Vector struct {
	Az  float64
	Alt float64
}

// Astrometry converts equatorial coordinates to horizontal ones for a
// configured observer location.
type Astrometry interface {
	SetLocation(lat, lon, altitude float64)
	RADecToAltAz(ra, dec float64, t time.Time) (alt, az float64)
}

// NormalizeSigned180 maps a degree difference into the signed half-turn
// range: ((x+180) mod 360) - 180. This keeps azimuth corrections short across
// the 0/360 wrap (target at 1, observer at 359 yields +2, not -358).
func NormalizeSigned180(x float64) float64 {
	d := math.Mod(x+180, 360)
	if d < 0 {
		d += 360
	}
	return d - 180
}

// Aim computes the correction from the snapshot's solved position to the
// target. Returns false when location, time, or a valid alt/az solution is
// missing; the caller renders a no-fix placeholder.
func Aim(sky Astrometry, target catalog.Object, snap positioning.Snapshot) (Vector, bool) {
	if snap.Location == nil || snap.Time == nil || snap.Solution == nil || !snap.Solution.AltAzValid {
		return Vector{}, false
	}
	sky.SetLocation(snap.Location.Lat, snap.Location.Lon, snap.Location.Altitude)
	targetAlt, targetAz := sky.RADecToAltAz(target.RA, target.Dec, *snap.Time)
	return Vector{
		Az:  NormalizeSigned180(targetAz - snap.Solution.Az),
		Alt: NormalizeSigned180(targetAlt - snap.Solution.Alt),
	}, true
}
