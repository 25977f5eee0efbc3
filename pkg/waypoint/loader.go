package waypoint

import (
	"context"
	"os"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/spheremath/greatcircle/pkg/datastructure"
	"github.com/spheremath/greatcircle/pkg/geo"
	"go.uber.org/zap"
)

// NamedPoint is an openstreetmap node that carries a name tag, with its
// position converted to radians.
type NamedPoint struct {
	Name  string
	Point datastructure.GeographicPoint
}

// LoadNamedPoints streams an .osm.pbf file and collects every node carrying
// a name tag.
func LoadNamedPoints(ctx context.Context, mapFile string, logger *zap.Logger) ([]NamedPoint, error) {
	f, err := os.Open(mapFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	waypoints := make([]NamedPoint, 0)

	scanner := osmpbf.New(ctx, f, 0)
	defer scanner.Close()

	countNodes := 0
	for scanner.Scan() {
		o := scanner.Object()

		if o.ObjectID().Type() != osm.TypeNode {
			continue
		}
		node := o.(*osm.Node)

		if (countNodes+1)%100000 == 0 {
			logger.Sugar().Infof("scanning openstreetmap nodes: %d...", countNodes+1)
		}
		countNodes++

		if wp, ok := namedPointFromNode(node); ok {
			waypoints = append(waypoints, wp)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	logger.Sugar().Infof("collected %d named waypoints from %d nodes", len(waypoints), countNodes)
	return waypoints, nil
}

func namedPointFromNode(node *osm.Node) (NamedPoint, bool) {
	name := node.Tags.Find("name")
	if name == "" {
		return NamedPoint{}, false
	}
	return NamedPoint{
		Name: name,
		Point: datastructure.NewGeographicPoint(
			geo.DegreeToRadians(node.Lat),
			geo.DegreeToRadians(node.Lon),
			0,
		),
	}, true
}
