// Package testutil provides testing utilities for topogo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded thread-safe RNG, synthetic point-cloud
// generators, and trivial filtration engines for exercising the
// pipeline without a real Ripser/GUDHI binding.
package testutil
