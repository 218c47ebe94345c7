// Package hdl implements the lexer and recursive-descent parser for the
// Nand2Tetris-dialect HDL grammar described in the project's specification:
// CHIP declarations with IN/OUT pin lists and either a BUILTIN or a
// PARTS: body.
//
// This package has no knowledge of chip elaboration or simulation; it only
// turns source text into the small AST defined in this file. The root
// package converts that AST into its own ChipRepr in ParseChip.
package hdl

import "github.com/n2t/hwsim/internal/lex"

// Channel is a parsed pin declaration: a name and an optional bus width.
// Width is 1 for a plain pin.
type Channel struct {
	Name  string
	Width uint16
	Pos   lex.Pos
}

// Range is a parsed "[start..end]" or "[index]" bus selector. A bare index
// is represented with Start == End.
type Range struct {
	Start, End uint16
}

// Size returns the number of bits selected by the range.
func (r Range) Size() int { return int(r.End) - int(r.Start) + 1 }

// ChipDecl is the AST of a single "CHIP Name { ... }" declaration.
type ChipDecl struct {
	Name    string
	InPins  []Channel
	OutPins []Channel
	Impl    Implementation
	Pos     lex.Pos
}

// Implementation is the sum type for a chip's body: either Builtin or
// Native.
type Implementation interface {
	implementation()
}

// Builtin is a "BUILTIN Name; [CLOCKED a, b;]" chip body.
type Builtin struct {
	Name    string
	Clocked []string // nil if no CLOCKED clause was present
}

func (*Builtin) implementation() {}

// Native is a "PARTS: Part+" chip body.
type Native struct {
	Parts []PartInstance
}

func (*Native) implementation() {}

// PartInstance is a single "SubChip(arg, arg, ...);" part declaration.
type PartInstance struct {
	SubChip string
	Args    []Argument
	Pos     lex.Pos
}

// Argument is a single "internal[bus] = external[bus]" pin mapping within a
// part instantiation.
type Argument struct {
	Internal    string
	InternalBus *Range
	External    ArgExternal
	Pos         lex.Pos
}

// ArgExternal is the sum type for the right-hand side of an Argument:
// a (possibly bus-sliced) name reference, a boolean literal, or a numeric
// literal.
type ArgExternal interface {
	argExternal()
}

// ExtName is a name reference, optionally sliced by a bus range.
type ExtName struct {
	Name string
	Bus  *Range
}

func (ExtName) argExternal() {}

// ExtBool is a "true"/"false" literal driving a pin with a constant value.
type ExtBool bool

func (ExtBool) argExternal() {}

// ExtNumber is a bare numeric literal in driver position. It parses
// successfully (the grammar does not reject it) but elaboration always
// rejects it with ValuesNotSupported -- only boolean constants and pin
// references may drive a pin.
type ExtNumber int64

func (ExtNumber) argExternal() {}
