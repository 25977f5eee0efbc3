package geo

import "math"

func DegreeToRadians(angle float64) float64 {
	return angle * (math.Pi / 180.0)
}

func RadiansToDegree(angle float64) float64 {
	return angle * (180.0 / math.Pi)
}

// WrapTwoPi maps any real radian angle into [0, 2*pi). The inner Mod can
// come out negative, the outer one keeps the +2*pi shift from rounding back
// up to exactly 2*pi.
func WrapTwoPi(angleRad float64) float64 {
	return math.Mod(math.Mod(angleRad, 2*math.Pi)+2*math.Pi, 2*math.Pi)
}
