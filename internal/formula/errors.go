// ABOUTME: Typed validation errors raised by the formula library.
// ABOUTME: Callers (onboarding/settings) catch these and re-prompt the user.
package formula

import "fmt"

// InvalidProfileError reports a missing, non-finite, or non-positive
// required profile field.
type InvalidProfileError struct {
	Field  string
	Reason string
}

func (e *InvalidProfileError) Error() string {
	return fmt.Sprintf("invalid profile: %s %s", e.Field, e.Reason)
}

// InvalidEnumError reports an unrecognized enum value (sex, activity
// level, or goal).
type InvalidEnumError struct {
	Kind  string
	Value string
}

func (e *InvalidEnumError) Error() string {
	return fmt.Sprintf("invalid %s: %q", e.Kind, e.Value)
}
