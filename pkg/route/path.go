package route

import (
	"container/list"

	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/spheremath/greatcircle/pkg/datastructure"
	"github.com/spheremath/greatcircle/pkg/geo"
)

// SampleGreatCircle returns segments+1 points along the great circle from p1
// to p2, both endpoints included. segments < 1 is treated as 1.
func SampleGreatCircle(p1, p2 datastructure.GeographicPoint, segments int) []datastructure.GeographicPoint {
	if segments < 1 {
		segments = 1
	}
	points := make([]datastructure.GeographicPoint, 0, segments+1)
	for i := 0; i <= segments; i++ {
		points = append(points, geo.IntermediatePoint(p1, p2, float64(i)/float64(segments)))
	}
	return points
}

// https://cartography-playground.gitlab.io/playgrounds/douglas-peucker-algorithm/

// Simplify drops the points of a path that stay within toleranceMeters of
// the chord between their kept neighbors (Ramer-Douglas-Peucker). Endpoints
// are always kept.
func Simplify(points []datastructure.GeographicPoint, toleranceMeters float64) []datastructure.GeographicPoint {
	size := len(points)
	if size < 3 {
		return points
	}

	kepts := make([]bool, size)
	kepts[0] = true
	kepts[size-1] = true

	stack := list.New()
	stack.PushBack([2]int{0, size - 1})

	for stack.Len() > 0 {
		pair := stack.Remove(stack.Back()).([2]int)
		left, right := pair[0], pair[1]
		var maxDist float64
		farthestIndex := left

		// sweep over the range to find the farthest point from the segment (left,right)
		for i := left + 1; i < right; i++ {
			dist := PointLinePerpendicularDistance(points[left], points[right], points[i])
			if dist > maxDist && dist > toleranceMeters {
				maxDist = dist
				farthestIndex = i
			}
		}

		if maxDist > toleranceMeters {
			kepts[farthestIndex] = true
			if left < farthestIndex {
				stack.PushBack([2]int{left, farthestIndex})
			}
			if farthestIndex < right {
				stack.PushBack([2]int{farthestIndex, right})
			}
		}
	}

	simplified := make([]datastructure.GeographicPoint, 0)
	for i, necessary := range kepts {
		if necessary {
			simplified = append(simplified, points[i])
		}
	}
	return simplified
}

// PointLinePerpendicularDistance returns the distance in meters from point to
// its projection onto the great-circle segment (segStart, segEnd).
func PointLinePerpendicularDistance(segStart, segEnd, point datastructure.GeographicPoint) float64 {
	projection := ProjectPointToLine(segStart, segEnd, point)
	return geo.GroundDistance(point, projection)
}

// ProjectPointToLine returns the closest point to p on the great-circle
// segment (segStart, segEnd).
func ProjectPointToLine(segStart, segEnd, p datastructure.GeographicPoint) datastructure.GeographicPoint {
	segStartS2 := s2.PointFromLatLng(toS2LatLng(segStart))
	segEndS2 := s2.PointFromLatLng(toS2LatLng(segEnd))
	pS2 := s2.PointFromLatLng(toS2LatLng(p))
	projection := s2.LatLngFromPoint(s2.Project(pS2, segStartS2, segEndS2))
	return datastructure.NewGeographicPoint(projection.Lat.Radians(), projection.Lng.Radians(), 0)
}

func toS2LatLng(p datastructure.GeographicPoint) s2.LatLng {
	return s2.LatLng{Lat: s1.Angle(p.Lat()), Lng: s1.Angle(p.Lon())}
}
