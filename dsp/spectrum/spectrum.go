package spectrum

import (
	"math"
	"math/cmplx"
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

// getScratch returns count slices of length n backed by one pooled buffer.
func getScratch(n, count int) ([][]float64, *scratchBuf) {
	buf := scratchPool.Get().(*scratchBuf)
	need := count * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	out := make([][]float64, count)
	for i := range out {
		out[i] = buf.data[i*n : (i+1)*n]
	}
	return out, buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

func split(in []complex128, re, im []float64) {
	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}
}

// Magnitude returns |X[k]| for each complex bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Magnitude(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	parts, buf := getScratch(len(in), 2)
	split(in, parts[0], parts[1])
	vecmath.Magnitude(out, parts[0], parts[1])
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each complex bin.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	parts, buf := getScratch(len(in), 2)
	split(in, parts[0], parts[1])
	vecmath.Power(out, parts[0], parts[1])
	putScratch(buf)
	return out
}

// Phase returns arg(X[k]) for each complex bin in radians.
func Phase(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}
	out := make([]float64, len(in))
	for i, c := range in {
		out[i] = cmplx.Phase(c)
	}
	return out
}

// UnwrapPhase returns a new phase slice with +/-2*pi discontinuities removed.
func UnwrapPhase(phase []float64) []float64 {
	if len(phase) == 0 {
		return nil
	}
	out := make([]float64, len(phase))
	out[0] = phase[0]
	offset := 0.0
	for i := 1; i < len(phase); i++ {
		d := phase[i] - phase[i-1]
		switch {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		out[i] = phase[i] + offset
	}
	return out
}
