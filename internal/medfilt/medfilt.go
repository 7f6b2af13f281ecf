// Package medfilt provides median smoothing filters with zero-padded edges.
package medfilt

import (
	"errors"
	"sort"
)

// ErrInvalidWindow is returned for even or non-positive window sizes.
var ErrInvalidWindow = errors.New("medfilt: window size must be odd and positive")

// Filter1D applies a sliding median of the given odd window size. Samples
// outside the signal count as zero, so edge outputs are pulled toward 0.
func Filter1D(x []float64, window int) ([]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, ErrInvalidWindow
	}

	half := window / 2
	out := make([]float64, len(x))
	buf := make([]float64, window)

	for i := range x {
		for j := -half; j <= half; j++ {
			k := i + j
			if k < 0 || k >= len(x) {
				buf[j+half] = 0
			} else {
				buf[j+half] = x[k]
			}
		}

		out[i] = median(buf)
	}

	return out, nil
}

// Filter2D applies a window×window median to a row-major rows×cols image.
// Pixels outside the image count as zero.
func Filter2D(img []float64, rows, cols, window int) ([]float64, error) {
	if window <= 0 || window%2 == 0 {
		return nil, ErrInvalidWindow
	}

	half := window / 2
	out := make([]float64, len(img))
	buf := make([]float64, window*window)

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			n := 0
			for dr := -half; dr <= half; dr++ {
				for dc := -half; dc <= half; dc++ {
					rr, cc := r+dr, c+dc
					if rr < 0 || rr >= rows || cc < 0 || cc >= cols {
						buf[n] = 0
					} else {
						buf[n] = img[rr*cols+cc]
					}
					n++
				}
			}

			out[r*cols+c] = median(buf)
		}
	}

	return out, nil
}

// median sorts buf in place and returns its middle element. Callers always
// pass odd lengths.
func median(buf []float64) float64 {
	sort.Float64s(buf)
	return buf[len(buf)/2]
}
