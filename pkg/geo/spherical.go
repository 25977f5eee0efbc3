package geo

import (
	"math"

	"github.com/spheremath/greatcircle/pkg"
	"github.com/spheremath/greatcircle/pkg/datastructure"
)

// great-circle geodesy on a perfect sphere.
// https://www.movable-type.co.uk/scripts/latlong.html

// GroundDistance returns the great-circle surface distance in meters between
// p1 and p2 on the mean Earth sphere.
func GroundDistance(p1, p2 datastructure.GeographicPoint) float64 {
	return GroundDistanceR(p1, p2, pkg.MEAN_EARTH_RADIUS)
}

// GroundDistanceR is GroundDistance on a sphere of the given radius (meters).
// Haversine formula; symmetric in its two points, 0 for coincident points,
// pi*radius for antipodal ones.
func GroundDistanceR(p1, p2 datastructure.GeographicPoint, radius float64) float64 {
	deltaLat := p2.Lat() - p1.Lat()
	deltaLon := p2.Lon() - p1.Lon()

	sinDLat := math.Sin(deltaLat / 2)
	sinDLon := math.Sin(deltaLon / 2)
	a := sinDLat*sinDLat + math.Cos(p1.Lat())*math.Cos(p2.Lat())*sinDLon*sinDLon
	// rounding can push a slightly outside [0,1] for (near-)identical or
	// (near-)antipodal points; sqrt of a negative would turn the whole
	// result into NaN
	a = clamp(a, 0, 1)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return radius * c
}

// InitialBearing returns the heading in radians [0, 2*pi) at which the great
// circle from p1 to p2 departs p1. 0 is due north, pi/2 due east. For
// coincident points (and for p1 exactly at a pole) both atan2 arguments
// vanish and the result degenerates to 0.
func InitialBearing(p1, p2 datastructure.GeographicPoint) float64 {
	deltaLon := p2.Lon() - p1.Lon()
	y := math.Sin(deltaLon) * math.Cos(p2.Lat())
	x := math.Cos(p1.Lat())*math.Sin(p2.Lat()) -
		math.Sin(p1.Lat())*math.Cos(p2.Lat())*math.Cos(deltaLon)
	return WrapTwoPi(math.Atan2(y, x))
}

// FinalBearing returns the heading in radians [0, 2*pi) at which the great
// circle from p1 arrives at p2.
func FinalBearing(p1, p2 datastructure.GeographicPoint) float64 {
	return WrapTwoPi(InitialBearing(p2, p1) + math.Pi)
}

// Destination returns the point reached after traveling dist meters from p
// along the given initial bearing (radians) on the mean Earth sphere.
func Destination(p datastructure.GeographicPoint, dist, bearing float64) datastructure.GeographicPoint {
	return DestinationR(p, dist, bearing, pkg.MEAN_EARTH_RADIUS)
}

// DestinationR is Destination on a sphere of the given radius (meters).
// Negative dist travels along bearing+pi. The returned longitude is
// p.Lon() + atan2(y, x) verbatim and may fall outside (-pi, pi]; callers
// needing a canonical range wrap it themselves. Height of the result is
// always 0.
func DestinationR(p datastructure.GeographicPoint, dist, bearing, radius float64) datastructure.GeographicPoint {
	delta := dist / radius // angular distance

	sinLat2 := math.Sin(p.Lat())*math.Cos(delta) +
		math.Cos(p.Lat())*math.Sin(delta)*math.Cos(bearing)
	// rounding can push sinLat2 past +-1 near the poles; asin would return NaN
	sinLat2 = clamp(sinLat2, -1, 1)
	lat2 := math.Asin(sinLat2)

	y := math.Sin(bearing) * math.Sin(delta) * math.Cos(p.Lat())
	x := math.Cos(delta) - math.Sin(p.Lat())*sinLat2
	lon2 := p.Lon() + math.Atan2(y, x)

	return datastructure.NewGeographicPoint(lat2, lon2, 0)
}

// Midpoint returns the half-way point of the great circle between p1 and p2.
// Height of the result is always 0.
func Midpoint(p1, p2 datastructure.GeographicPoint) datastructure.GeographicPoint {
	deltaLon := p2.Lon() - p1.Lon()
	bx := math.Cos(p2.Lat()) * math.Cos(deltaLon)
	by := math.Cos(p2.Lat()) * math.Sin(deltaLon)

	lat := math.Atan2(math.Sin(p1.Lat())+math.Sin(p2.Lat()),
		math.Sqrt((math.Cos(p1.Lat())+bx)*(math.Cos(p1.Lat())+bx)+by*by))
	lon := p1.Lon() + math.Atan2(by, math.Cos(p1.Lat())+bx)

	return datastructure.NewGeographicPoint(lat, lon, 0)
}

// IntermediatePoint returns the point at fraction f along the great circle
// from p1 to p2 (f=0 is p1, f=1 is p2, values outside [0,1] extrapolate).
// Coincident endpoints short-circuit to p1. Height of the result is always 0.
func IntermediatePoint(p1, p2 datastructure.GeographicPoint, f float64) datastructure.GeographicPoint {
	delta := GroundDistanceR(p1, p2, 1) // central angle
	if delta == 0 {
		return datastructure.NewGeographicPoint(p1.Lat(), p1.Lon(), 0)
	}

	a := math.Sin((1-f)*delta) / math.Sin(delta)
	b := math.Sin(f*delta) / math.Sin(delta)

	x := a*math.Cos(p1.Lat())*math.Cos(p1.Lon()) + b*math.Cos(p2.Lat())*math.Cos(p2.Lon())
	y := a*math.Cos(p1.Lat())*math.Sin(p1.Lon()) + b*math.Cos(p2.Lat())*math.Sin(p2.Lon())
	z := a*math.Sin(p1.Lat()) + b*math.Sin(p2.Lat())

	return datastructure.NewGeographicPoint(
		math.Atan2(z, math.Sqrt(x*x+y*y)),
		math.Atan2(y, x),
		0,
	)
}

// Antipode returns the point diametrically opposite p. Height carries over.
func Antipode(p datastructure.GeographicPoint) datastructure.GeographicPoint {
	return datastructure.NewGeographicPoint(-p.Lat(), p.Lon()+math.Pi, p.Height())
}

func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
