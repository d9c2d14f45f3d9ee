package fid

import (
	"fmt"
	"math"
	"math/cmplx"
	"sync"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/cblas128"
	"gonum.org/v1/gonum/mat"
)

// Coefficients returns the complex amplitudes alpha_i = A_i*exp(i*phi_i).
func Coefficients(table Table) []complex128 {
	out := make([]complex128, table.Len())
	for i, c := range table.rows {
		out[i] = complex(c.Amplitude, 0) * cmplx.Exp(complex(0, c.Phase))
	}
	return out
}

// Rates returns the per-component complex rates 2*pi*i*(f_i-offset) - d_i.
func Rates(table Table, offset float64) []complex128 {
	out := make([]complex128, table.Len())
	for i, c := range table.rows {
		out[i] = complex(-c.Damping, 2*math.Pi*(c.Frequency-offset))
	}
	return out
}

// Basis returns the n x M matrix Z[k,i] = exp(t[k]*rates[i]).
//
// On the grid t_k = k/sw, column i holds the successive powers of
// exp(rates[i]/sw). It returns an error wrapping [ErrShape] if t or rates is
// empty.
func Basis(t []float64, rates []complex128) (*mat.CDense, error) {
	return basis(t, rates, 1)
}

func basis(t []float64, rates []complex128, workers int) (*mat.CDense, error) {
	n, m := len(t), len(rates)
	if n == 0 || m == 0 {
		return nil, fmt.Errorf("%w: basis needs samples and components: %d x %d", ErrShape, n, m)
	}

	data := make([]complex128, n*m)
	fill := func(lo, hi int) {
		for k := lo; k < hi; k++ {
			tk := complex(t[k], 0)
			row := data[k*m : (k+1)*m]
			for i, r := range rates {
				row[i] = cmplx.Exp(tk * r)
			}
		}
	}

	if workers <= 1 || n < 2*workers {
		fill(0, n)
	} else {
		chunk := (n + workers - 1) / workers
		var wg sync.WaitGroup
		for lo := 0; lo < n; lo += chunk {
			hi := min(lo+chunk, n)
			wg.Add(1)
			go func(lo, hi int) {
				defer wg.Done()
				fill(lo, hi)
			}(lo, hi)
		}
		wg.Wait()
	}

	return mat.NewCDense(n, m, data), nil
}

// Combine evaluates the matrix-vector product z*alpha.
//
// It returns an error wrapping [ErrShape] if alpha does not have one entry
// per column of z.
func Combine(z *mat.CDense, alpha []complex128) (Signal, error) {
	if z == nil {
		return nil, fmt.Errorf("%w: nil basis", ErrShape)
	}
	rows, cols := z.Dims()
	if rows == 0 || cols == 0 {
		return nil, fmt.Errorf("%w: empty basis %d x %d", ErrShape, rows, cols)
	}
	if len(alpha) != cols {
		return nil, fmt.Errorf("%w: basis has %d columns, coefficients %d", ErrShape, cols, len(alpha))
	}

	out := make([]complex128, rows)
	cblas128.Gemv(blas.NoTrans, 1, z.RawCMatrix(),
		cblas128.Vector{N: cols, Inc: 1, Data: alpha},
		0, cblas128.Vector{N: rows, Inc: 1, Data: out})
	return Signal(out), nil
}
