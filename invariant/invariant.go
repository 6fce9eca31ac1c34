// Package invariant aborts the process with a diagnostic when an internal
// invariant is violated. These checks exist for conditions that would mean
// a programmer bug elsewhere in the engine, never for user-facing input
// validation.
package invariant

import "github.com/rs/zerolog/log"

// Check aborts with a zerolog Fatal (which exits the process) if cond is
// false.
func Check(cond bool, format string, args ...any) {
	if !cond {
		log.Fatal().Msgf(format, args...)
	}
}

// Fatalf unconditionally aborts with a zerolog Fatal, for code paths that
// have already determined an impossibility has occurred.
func Fatalf(format string, args ...any) {
	log.Fatal().Msgf(format, args...)
}
