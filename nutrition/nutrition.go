// Package nutrition is the pure calculation core of the app: profile
// normalization, daily calorie/macro target derivation, day-level health
// scoring, and streak transitions. Nothing in here touches the database,
// the network, or the wall clock. Callers pass every input in explicitly
// so each branch stays unit-testable.
package nutrition

import "errors"

var (
	ErrInvalidProfile = errors.New("invalid profile")
	ErrInvalidGoals   = errors.New("invalid goals")
)
