// Package astro is the default astrometry collaborator: a compact spherical
// conversion from equatorial (RA/Dec) to horizontal (Alt/Az) coordinates via
// local sidereal time. Accuracy is good enough to push-to; it ignores
// refraction, nutation, and proper motion.
package astro

import (
	"math"
	"time"
)

// Converter holds the observer location set by the UI core before each
// conversion. It implements pointing.Astrometry.
type Converter struct {
	lat float64
	lon float64
	alt float64
}

func NewConverter() *Converter {
	return &Converter{}
}

// SetLocation fixes the observer position. Latitude and longitude are in
// degrees, east-positive; altitude is meters and only kept for completeness.
func (c *Converter) SetLocation(lat, lon, altitude float64) {
	c.lat = lat
	c.lon = lon
	c.alt = altitude
}

// RADecToAltAz converts J2000 equatorial coordinates (degrees) at time t to
// horizontal coordinates for the configured location. Azimuth is measured
// from north through east.
func (c *Converter) RADecToAltAz(ra, dec float64, t time.Time) (alt, az float64) {
	lst := LocalSiderealTime(t, c.lon)
	ha := math.Mod(lst-ra, 360)
	if ha < 0 {
		ha += 360
	}

	haR := ha * math.Pi / 180
	decR := dec * math.Pi / 180
	latR := c.lat * math.Pi / 180

	sinAlt := math.Sin(decR)*math.Sin(latR) + math.Cos(decR)*math.Cos(latR)*math.Cos(haR)
	altR := math.Asin(clamp(sinAlt))

	cosAz := (math.Sin(decR) - math.Sin(altR)*math.Sin(latR)) / (math.Cos(altR) * math.Cos(latR))
	azR := math.Acos(clamp(cosAz))
	if math.Sin(haR) > 0 {
		azR = 2*math.Pi - azR
	}

	return altR * 180 / math.Pi, azR * 180 / math.Pi
}

// LocalSiderealTime returns the local sidereal time in degrees for an
// east-positive longitude.
func LocalSiderealTime(t time.Time, lon float64) float64 {
	d := julianDate(t.UTC()) - 2451545.0
	gmst := 280.46061837 + 360.98564736629*d
	lst := math.Mod(gmst+lon, 360)
	if lst < 0 {
		lst += 360
	}
	return lst
}

func julianDate(t time.Time) float64 {
	y := t.Year()
	m := int(t.Month())
	if m <= 2 {
		y--
		m += 12
	}
	a := y / 100
	b := 2 - a + a/4

	day := float64(t.Day()) +
		(float64(t.Hour())+float64(t.Minute())/60+(float64(t.Second())+float64(t.Nanosecond())/1e9)/3600)/24

	return math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + day + float64(b) - 1524.5
}

func clamp(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
