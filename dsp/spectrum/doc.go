// Package spectrum provides frequency-domain views of complex FIDs.
//
// [Transform] zero-fills, optionally apodizes and Fourier transforms a FID
// into a centred spectrum with an absolute frequency axis. [Goertzel]
// evaluates a single DFT term at an arbitrary, possibly negative, frequency.
// The remaining helpers extract magnitude, power and phase from complex
// bins.
package spectrum
