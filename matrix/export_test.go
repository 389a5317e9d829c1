// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for the options snapshot and panic messages.
// Compiled only into the test binary; invisible to production builds.

// OptionsSnapshot is a read-only view of the resolved Options.
type OptionsSnapshot struct {
	Eps     float64
	Seed    int64
	HasRand bool
}

// GatherOptionsSnapshot_TestOnly resolves opts exactly as public entry points do.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{Eps: o.eps, Seed: o.seed, HasRand: o.rng != nil}
}

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
	PanicRandNil_TestOnly        = panicRandNil
)
