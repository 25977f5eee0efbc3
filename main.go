package main

import (
	"context"
	"flag"
	"os"

	"github.com/spheremath/greatcircle/pkg"
	"github.com/spheremath/greatcircle/pkg/datastructure"
	"github.com/spheremath/greatcircle/pkg/geo"
	"github.com/spheremath/greatcircle/pkg/logger"
	"github.com/spheremath/greatcircle/pkg/route"
	"github.com/spheremath/greatcircle/pkg/waypoint"
	"go.uber.org/zap"
)

func main() {
	pbfFile := flag.String("pbf", "", "optional .osm.pbf file; its named nodes become waypoints for a distance matrix")
	geojsonFile := flag.String("geojson", "", "optional output file for the sampled great-circle path")
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}

	// the classic Lizard Point -> John o' Groats geodesic
	lizardPoint := datastructure.NewGeographicPoint(
		geo.DegreeToRadians(50.0667), geo.DegreeToRadians(-5.7167), 0)
	johnOGroats := datastructure.NewGeographicPoint(
		geo.DegreeToRadians(58.6439), geo.DegreeToRadians(-3.07), 0)

	log.Info("lizard point -> john o' groats",
		zap.Float64("distance_m", geo.GroundDistance(lizardPoint, johnOGroats)),
		zap.Float64("initial_bearing_deg", geo.RadiansToDegree(geo.InitialBearing(lizardPoint, johnOGroats))),
		zap.Float64("final_bearing_deg", geo.RadiansToDegree(geo.FinalBearing(lizardPoint, johnOGroats))),
	)

	midpoint := geo.Midpoint(lizardPoint, johnOGroats)
	log.Info("midpoint",
		zap.Float64("lat_deg", geo.RadiansToDegree(midpoint.Lat())),
		zap.Float64("lon_deg", geo.RadiansToDegree(midpoint.Lon())),
	)

	path := route.SampleGreatCircle(lizardPoint, johnOGroats, pkg.DEFAULT_PATH_SEGMENTS)
	simplified := route.Simplify(path, pkg.DEFAULT_SIMPLIFY_TOLERANCE_M)
	log.Info("sampled path",
		zap.Int("sampled_points", len(path)),
		zap.Int("simplified_points", len(simplified)),
		zap.String("polyline", route.PolylineFromPoints(simplified)),
	)

	if *geojsonFile != "" {
		if err := writeGeoJSON(path, *geojsonFile); err != nil {
			log.Fatal("writing geojson", zap.String("file", *geojsonFile), zap.Error(err))
		}
		log.Info("wrote geojson", zap.String("file", *geojsonFile))
	}

	if *pbfFile != "" {
		waypoints, err := waypoint.LoadNamedPoints(context.Background(), *pbfFile, log)
		if err != nil {
			log.Fatal("loading waypoints", zap.String("file", *pbfFile), zap.Error(err))
		}

		points := make([]datastructure.GeographicPoint, len(waypoints))
		for i, wp := range waypoints {
			points[i] = wp.Point
		}
		matrix := route.DistanceMatrix(points, pkg.MEAN_EARTH_RADIUS, pkg.DEFAULT_MATRIX_WORKERS)

		for i := range waypoints {
			for j := i + 1; j < len(waypoints); j++ {
				log.Info("waypoint pair",
					zap.String("from", waypoints[i].Name),
					zap.String("to", waypoints[j].Name),
					zap.Float64("distance_m", matrix[i][j]),
				)
			}
		}
	}
}

func writeGeoJSON(path []datastructure.GeographicPoint, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	return route.ExportGeoJSON(path, f)
}
