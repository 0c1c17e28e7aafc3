// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for Private Row Primitives
//
// Purpose:
//   - Expose the UNEXPORTED row primitives to matrix_test ONLY, so the
//     engine's building blocks can be verified (including their bounds
//     checks) without widening the production API.
//
// Provided Surface:
//   - Exported* method expressions: thin pass-throughs to the private
//     primitives on *Dense.
//
// Behavior & Determinism:
//   - No allocations beyond what the wrapped methods do; no side effects
//     besides the wrapped in-place mutation.

var (
	// ExportedSwapRows exposes (*Dense).swapRows for white-box tests.
	ExportedSwapRows = (*Dense).swapRows
	// ExportedScaleRow exposes (*Dense).scaleRow for white-box tests.
	ExportedScaleRow = (*Dense).scaleRow
	// ExportedAddRowMultiple exposes (*Dense).addRowMultiple for white-box tests.
	ExportedAddRowMultiple = (*Dense).addRowMultiple
)

// Panic message export to avoid "magic strings" in tests.
const PanicEpsilonInvalid_TestOnly = panicEpsilonInvalid
