// Package fid synthesizes complex free induction decay (FID) signals.
//
// A FID is the superposition of damped complex sinusoids
//
//	s(t_k) = sum_i A_i exp(i*phi_i) exp(t_k * (2*pi*i*(f_i - offset) - d_i))
//
// evaluated on the uniform grid t_k = k/sw, k = 0..n-1. Each component is
// one row of a [Table]. Synthesis builds the [n x M] Vandermonde basis Z
// from the per-component complex rates and evaluates Z*alpha, where alpha
// holds the complex amplitudes.
//
// The package only performs forward synthesis. Reading parameter tables and
// writing samples as text are provided by [ParseTable], [WriteText] and
// [ReadText] for callers that need a persisted form.
package fid
