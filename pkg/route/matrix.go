package route

import (
	"sync"

	"github.com/spheremath/greatcircle/pkg/datastructure"
	"github.com/spheremath/greatcircle/pkg/geo"
)

type matrixJob struct {
	row, col int
}

type matrixCell struct {
	row, col int
	dist     float64
}

// DistanceMatrix computes the pairwise great-circle distance matrix in
// meters on a sphere of the given radius, fanning the upper triangle out to
// numWorkers goroutines. The matrix is symmetric with a zero diagonal.
func DistanceMatrix(points []datastructure.GeographicPoint, radius float64, numWorkers int) [][]float64 {
	n := len(points)
	matrix := make([][]float64, n)
	for i := range matrix {
		matrix[i] = make([]float64, n)
	}
	if n < 2 {
		return matrix
	}
	if numWorkers < 1 {
		numWorkers = 1
	}

	jobQueue := make(chan matrixJob, n)
	results := make(chan matrixCell, n)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range jobQueue {
				results <- matrixCell{
					row:  job.row,
					col:  job.col,
					dist: geo.GroundDistanceR(points[job.row], points[job.col], radius),
				}
			}
		}()
	}

	go func() {
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				jobQueue <- matrixJob{row: i, col: j}
			}
		}
		close(jobQueue)
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	for cell := range results {
		matrix[cell.row][cell.col] = cell.dist
		matrix[cell.col][cell.row] = cell.dist
	}
	return matrix
}
