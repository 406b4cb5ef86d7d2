package distance

import (
	"context"
	"math"

	"github.com/katalvlaran/valvenet/network"
)

// fillFloydWarshall closes the raw network in an n×n scratch table and
// copies the reduced rows out. Loop order is fixed (k, i, j) for
// determinism; the context is checked once per pivot.
func (m *Matrix) fillFloydWarshall(ctx context.Context, net *network.Network) error {
	const inf = math.MaxInt / 2

	n := net.Len()
	dist := make([]int, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				dist[i*n+j] = inf
			}
		}
		for _, j := range net.Neighbors(i) {
			dist[i*n+j] = 1
		}
	}

	for k := 0; k < n; k++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rowK := dist[k*n : (k+1)*n]
		for i := 0; i < n; i++ {
			ik := dist[i*n+k]
			if ik == inf {
				continue
			}
			rowI := dist[i*n : (i+1)*n]
			for j := 0; j < n; j++ {
				if alt := ik + rowK[j]; alt < rowI[j] {
					rowI[j] = alt
				}
			}
		}
	}

	for r := 0; r < m.k; r++ {
		for c := 0; c < m.k; c++ {
			d := dist[m.raw[r]*n+m.raw[c]]
			if d >= inf {
				d = Unreachable
			}
			m.data[r*m.k+c] = d
		}
	}
	return nil
}
