// This file is part of 86Box.
//
// 86Box is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// 86Box is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with 86Box.  If not, see <https://www.gnu.org/licenses/>.

// Package device implements the configuration side of emulated devices. Every
// device variant publishes a list of OptionSpec entries describing the
// switches and jumpers on the physical board. At attach time the option
// values chosen by the user are bound to the specs in a Config, which the
// device reads with typed lookup functions.
//
// Lookups never fail: an option without a user-supplied value reads as the
// spec default; an option name the device variant does not define reads as
// zero. A user-supplied value outside what the option can physically take is
// corrected rather than errored: spinners clamp to their range and snap to
// the step grid, options with a choice list fall back to the default. This
// mirrors how the original configuration files behave and keeps device
// construction free of error plumbing for values that physically cannot be
// absent on a real board.
package device

// OptionKind describes how an option value is presented and edited.
type OptionKind int

// List of valid OptionKind values.
const (
	// a numeric value with min/max/step constraints
	Spinner OptionKind = iota

	// one value from a fixed list of choices
	Selection

	// a 16-bit value presented in hex (I/O addresses)
	Hex16

	// a 20-bit value presented in hex (upper-memory addresses)
	Hex20
)

// Choice is one selectable value of a Selection, Hex16 or Hex20 option.
type Choice struct {
	Label string
	Value int
}

// OptionSpec describes a single configuration option of a device variant.
type OptionSpec struct {
	Name        string
	Description string
	Kind        OptionKind
	Default     int

	// Spinner constraints. unused for other kinds
	Min  int
	Max  int
	Step int

	// Selection/Hex16/Hex20 choices. unused for Spinner
	Choices []Choice
}

// Options is the set of option values chosen by the user, keyed by option
// name. A nil Options is valid and means every option is at its default.
type Options map[string]int

// Config binds user-chosen option values to the OptionSpec list of a device
// variant.
type Config struct {
	specs  []OptionSpec
	values Options
}

// NewConfig is the preferred method of initialisation for the Config type.
func NewConfig(specs []OptionSpec, values Options) Config {
	return Config{
		specs:  specs,
		values: values,
	}
}

// clamp forces a user-supplied value into the set the option can physically
// take. a switch block or jumper cannot be in a position it does not have.
func (s *OptionSpec) clamp(v int) int {
	if s.Kind == Spinner {
		if v < s.Min {
			v = s.Min
		}
		if v > s.Max {
			v = s.Max
		}
		if s.Step > 0 {
			v -= (v - s.Min) % s.Step
		}
		return v
	}

	if len(s.Choices) == 0 {
		return v
	}
	for _, c := range s.Choices {
		if c.Value == v {
			return v
		}
	}
	return s.Default
}

// Int returns the integer value of the named option.
func (c Config) Int(name string) int {
	var spec *OptionSpec
	for i := range c.specs {
		if c.specs[i].Name == name {
			spec = &c.specs[i]
			break // for loop
		}
	}

	v, ok := c.values[name]
	if !ok {
		if spec == nil {
			return 0
		}
		return spec.Default
	}
	if spec == nil {
		return v
	}
	return spec.clamp(v)
}

// Hex16 returns the value of the named option as a 16-bit address.
func (c Config) Hex16(name string) uint16 {
	return uint16(c.Int(name))
}

// Hex20 returns the value of the named option as a 20-bit address.
func (c Config) Hex20(name string) uint32 {
	return uint32(c.Int(name)) & 0xfffff
}

// Bool returns true if the named option has a nonzero value.
func (c Config) Bool(name string) bool {
	return c.Int(name) != 0
}
