package route

import (
	"encoding/json"
	"io"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spheremath/greatcircle/pkg/datastructure"
	"github.com/spheremath/greatcircle/pkg/geo"
	"github.com/twpayne/go-polyline"
)

// PolylineFromPoints encodes the path as a Google encoded polyline. Polyline
// coordinates are degrees in lat,lon order.
func PolylineFromPoints(path []datastructure.GeographicPoint) string {
	coords := make([][]float64, 0, len(path))
	for _, p := range path {
		coords = append(coords, []float64{
			geo.RadiansToDegree(p.Lat()),
			geo.RadiansToDegree(p.Lon()),
		})
	}
	return string(polyline.EncodeCoords(coords))
}

// LineStringFromPoints converts the path into an orb.LineString. orb points
// are degrees in lon,lat order.
func LineStringFromPoints(path []datastructure.GeographicPoint) orb.LineString {
	ls := make(orb.LineString, 0, len(path))
	for _, p := range path {
		ls = append(ls, orb.Point{
			geo.RadiansToDegree(p.Lon()),
			geo.RadiansToDegree(p.Lat()),
		})
	}
	return ls
}

// ExportGeoJSON writes the path to w as a single-feature GeoJSON document.
func ExportGeoJSON(path []datastructure.GeographicPoint, w io.Writer) error {
	feature := geojson.NewFeature(LineStringFromPoints(path))
	buf, err := json.MarshalIndent(feature, "", "  ")
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
