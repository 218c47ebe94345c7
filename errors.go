// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/pkg/errors"

// ChipNotFoundError is returned when a chip name cannot be resolved in a
// ChipBuilder's registry.
type ChipNotFoundError struct{ Name string }

func (e *ChipNotFoundError) Error() string { return "chip not found: " + e.Name }

// PinNotFoundError is raised by the elaborator when a part argument names a
// pin that does not exist on the part's interface.
type PinNotFoundError struct {
	Pin  string
	Chip string
}

func (e *PinNotFoundError) Error() string {
	return "pin " + e.Pin + " not found on chip " + e.Chip
}

// ConflictingSourcesError is raised when an internal wire is driven by more
// than one source.
type ConflictingSourcesError struct{ Wire string }

func (e *ConflictingSourcesError) Error() string {
	return "wire " + e.Wire + " has conflicting sources"
}

// NoSourceError is raised when an internal wire has sinks but no driver.
type NoSourceError struct{ Wire string }

func (e *NoSourceError) Error() string { return "wire " + e.Wire + " has no source" }

// ValuesNotSupportedError is raised when a part argument attempts to drive
// a pin with a numeric literal; only boolean literals are supported.
type ValuesNotSupportedError struct{ Pin string }

func (e *ValuesNotSupportedError) Error() string {
	return "numeric constant driver not supported for pin " + e.Pin
}

// NeedsError is returned by ChipBuilder.RegisterHDL when a chip's parts
// reference sub-chip names that have not yet been registered. The caller
// may load those chips and retry.
type NeedsError struct{ Names []string }

func (e *NeedsError) Error() string {
	s := "needs: "
	for i, n := range e.Names {
		if i > 0 {
			s += ", "
		}
		s += n
	}
	return s
}

// RebuiltError is returned by ChipBuilder.RegisterHDL when a chip name is
// already registered.
type RebuiltError struct{ Name string }

func (e *RebuiltError) Error() string { return "chip already registered: " + e.Name }

func wrapf(err error, format string, args ...interface{}) error {
	return errors.Wrapf(err, format, args...)
}
