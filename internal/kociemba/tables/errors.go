package tables

import "errors"

// Error kinds per the solver's error handling design: InvalidCube is
// rejected at ReprCube construction, TableIO covers a missing, unreadable,
// or checksum-mismatched table file (recoverable by regeneration),
// GenerationFailure is fatal and indicates a logic bug in the generator
// itself.
var (
	ErrInvalidCube       = errors.New("kociemba: invalid cube (orientation sum or parity violation)")
	ErrTableIO           = errors.New("kociemba: table file missing, unreadable, or checksum mismatch")
	ErrGenerationFailure = errors.New("kociemba: table generation failed")
)
