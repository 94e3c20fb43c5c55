package pic3d

import "fmt"

// ConfigError reports a malformed configuration: a missing required key,
// a value out of range, or a structurally invalid UniverseProperties. It
// aborts the run before any cycle begins.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config: " + e.Msg }

// DomainError reports an out-of-bounds index, a non-positive cell width,
// or a particle with a non-finite position/velocity. In release builds a
// particle that triggers a DomainError is dropped and logged rather than
// aborting the run; debug builds may choose to panic on it instead.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "domain: " + e.Msg }

// InvariantViolation reports a broken post-migration invariant: a
// particle left outside its owning cell, or a change in total particle
// count across a cycle. It always indicates a bug and is never
// recovered from.
type InvariantViolation struct {
	Msg string
}

func (e *InvariantViolation) Error() string { return "invariant violation: " + e.Msg }

func newInvariantf(format string, args ...interface{}) error {
	return &InvariantViolation{Msg: fmt.Sprintf(format, args...)}
}

func newDomainf(format string, args ...interface{}) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}
