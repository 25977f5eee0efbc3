package pkg

const (
	// mean Earth radius in meters. every geodesic formula that takes an
	// optional sphere radius defaults to this.
	MEAN_EARTH_RADIUS = 6371000.0

	DEFAULT_PATH_SEGMENTS        = 128
	DEFAULT_SIMPLIFY_TOLERANCE_M = 1.0
	DEFAULT_MATRIX_WORKERS       = 8
)
