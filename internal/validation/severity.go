package validation

import "fmt"

// Severity classifies a validation issue. The four levels determine the
// issue's scoring weight.
type Severity string

const (
	SeverityCritical Severity = "CRITICAL"
	SeverityMajor    Severity = "MAJOR"
	SeverityMinor    Severity = "MINOR"
	SeverityWarning  Severity = "WARNING"
)

// severityWeights maps each severity to its score deduction. Pure data,
// verifiable independently of any validator's control flow.
var severityWeights = map[Severity]int{
	SeverityCritical: 50,
	SeverityMajor:    20,
	SeverityMinor:    10,
	SeverityWarning:  5,
}

// Weight returns the score deduction for the severity.
func (s Severity) Weight() int {
	return severityWeights[s]
}

// ParseSeverity converts a string into a Severity.
func ParseSeverity(s string) (Severity, error) {
	switch Severity(s) {
	case SeverityCritical, SeverityMajor, SeverityMinor, SeverityWarning:
		return Severity(s), nil
	}
	return "", fmt.Errorf("invalid severity: %s", s)
}

// ComputeScore applies the weight table to issue counts and clamps the result
// to [0, 100].
func ComputeScore(critical, major, minor, warning int) int {
	score := 100 -
		critical*severityWeights[SeverityCritical] -
		major*severityWeights[SeverityMajor] -
		minor*severityWeights[SeverityMinor] -
		warning*severityWeights[SeverityWarning]
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
