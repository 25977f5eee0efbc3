package waypoint

import (
	"context"
	"testing"

	"github.com/paulmach/osm"
	"github.com/spheremath/greatcircle/pkg/geo"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNamedPointFromNode(t *testing.T) {
	node := &osm.Node{
		Lat: 50.0667,
		Lon: -5.7167,
		Tags: osm.Tags{
			{Key: "tourism", Value: "viewpoint"},
			{Key: "name", Value: "Lizard Point"},
		},
	}

	wp, ok := namedPointFromNode(node)
	require.True(t, ok)
	require.Equal(t, "Lizard Point", wp.Name)
	require.InDelta(t, geo.DegreeToRadians(50.0667), wp.Point.Lat(), 1e-15)
	require.InDelta(t, geo.DegreeToRadians(-5.7167), wp.Point.Lon(), 1e-15)
	require.Equal(t, 0.0, wp.Point.Height())
}

func TestNamedPointFromNodeUnnamed(t *testing.T) {
	node := &osm.Node{Lat: 1, Lon: 2}
	_, ok := namedPointFromNode(node)
	require.False(t, ok)
}

func TestLoadNamedPointsMissingFile(t *testing.T) {
	_, err := LoadNamedPoints(context.Background(), "does-not-exist.osm.pbf", zap.NewNop())
	require.Error(t, err)
}
