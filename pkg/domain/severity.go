package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// Severity is the level a rule reports at.
// Values mirror the numeric levels used in linter configuration files.
type Severity int

const (
	// SeverityOff disables a rule.
	SeverityOff Severity = iota
	// SeverityWarn reports without failing the run.
	SeverityWarn
	// SeverityError reports and fails the run.
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "off"
	case SeverityWarn:
		return "warn"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Enabled reports whether the rule should run at this severity.
func (s Severity) Enabled() bool {
	return s == SeverityWarn || s == SeverityError
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// ParseSeverity accepts "off", "warn", "warning", "error" or the numeric forms 0, 1, 2.
func ParseSeverity(s string) (Severity, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "off", "0":
		return SeverityOff, nil
	case "warn", "warning", "1":
		return SeverityWarn, nil
	case "error", "2":
		return SeverityError, nil
	default:
		return SeverityOff, fmt.Errorf("invalid severity %q: expected off, warn or error", s)
	}
}

// SeverityFromValue converts a decoded configuration value (string or number) into a Severity.
func SeverityFromValue(v any) (Severity, error) {
	switch val := v.(type) {
	case Severity:
		return val, nil
	case string:
		return ParseSeverity(val)
	case int:
		return ParseSeverity(strconv.Itoa(val))
	case int64:
		return ParseSeverity(strconv.FormatInt(val, 10))
	case float64:
		if val != float64(int(val)) {
			return SeverityOff, fmt.Errorf("invalid severity %v", val)
		}
		return ParseSeverity(strconv.Itoa(int(val)))
	default:
		return SeverityOff, fmt.Errorf("invalid severity %v of type %T", v, v)
	}
}
