// Package diag holds the diagnostic record produced by sysfirst rules,
// collection and emission plumbing around it.
package diag

import "fmt"

// Severity defines the importance of a diagnostic.
type Severity int

const (
	SeverityInvalid Severity = iota

	SeverityInfo
	SeverityWarning
	SeverityError
)

var severityValueMap = map[Severity]string{
	SeverityInfo:    "info",
	SeverityWarning: "warning",
	SeverityError:   "error",
}

func (s Severity) String() string {
	v, ok := severityValueMap[s]
	if !ok {
		return fmt.Sprintf("invalid(%d)", int(s))
	}

	return v
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	v, ok := severityValueMap[s]
	if !ok {
		return nil, fmt.Errorf("cannot marshal invalid severity(%d)", int(s))
	}

	return []byte(v), nil
}

// UnmarshalText for setting values with configs, CLI, etc.
func (s *Severity) UnmarshalText(rawtext []byte) error {
	text := string(rawtext)
	for k, v := range severityValueMap {
		if v == text {
			*s = k
			return nil
		}
	}

	return fmt.Errorf("unknown severity %q", text)
}
