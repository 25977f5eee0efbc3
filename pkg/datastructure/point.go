package datastructure

// GeographicPoint is an immutable position on the sphere. Latitude and
// longitude are plain radian angles (latitude in [-pi/2, pi/2], longitude
// conventionally in (-pi, pi] but any real value is accepted); height is
// meters above the sphere and is carried through the geodesic formulas
// without ever being read.
type GeographicPoint struct {
	lat    float64
	lon    float64
	height float64
}

func (p GeographicPoint) Lat() float64 {
	return p.lat
}

func (p GeographicPoint) Lon() float64 {
	return p.lon
}

func (p GeographicPoint) Height() float64 {
	return p.height
}

func NewGeographicPoint(lat, lon, height float64) GeographicPoint {
	return GeographicPoint{
		lat:    lat,
		lon:    lon,
		height: height,
	}
}

func NewGeographicPoints(lat, lon []float64) []GeographicPoint {
	points := make([]GeographicPoint, len(lat))
	for i := range lat {
		points[i] = NewGeographicPoint(lat[i], lon[i], 0)
	}
	return points
}
