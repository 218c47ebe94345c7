// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import (
	"github.com/n2t/hwsim/internal/hdl"
	"github.com/pkg/errors"
)

// ChipRepr is the parsed representation of a single HDL chip declaration:
// its name, its ordered input/output pin declarations, and its
// implementation (either BuiltinImpl or NativeImpl).
type ChipRepr struct {
	Name    string
	InPins  []Channel
	OutPins []Channel
	Impl    Implementation
}

// Implementation is the sum type for a ChipRepr's body.
type Implementation interface {
	implementation()
}

// BuiltinImpl names a built-in chip registered under Name, with Clocked
// listing which of its pins are sequential (all others are combinatorial).
type BuiltinImpl struct {
	Name    string
	Clocked []string
}

func (*BuiltinImpl) implementation() {}

// NativeImpl is a chip implemented by wiring together sub-chip parts.
type NativeImpl struct {
	Parts []PartInstance
}

func (*NativeImpl) implementation() {}

// PartInstance is a single sub-chip instantiation together with its pin
// wiring arguments.
type PartInstance struct {
	SubChip string
	Args    []Argument
}

// Argument is a single pin-to-pin (or pin-to-constant) wiring within a
// PartInstance: internal is a pin name on the sub-chip, external is either
// a pin name on the enclosing chip, an internal wire name, a boolean
// literal, or a numeric literal (which elaboration rejects).
type Argument struct {
	Internal    string
	InternalBus *ChannelRange
	External    ArgExternal
}

// ArgExternal is the sum type for an Argument's external (right-hand) side.
type ArgExternal interface {
	argExternal()
}

// ExtRef is a name reference (a top-level pin or an internal wire),
// optionally sliced by a bus range.
type ExtRef struct {
	Name string
	Bus  *ChannelRange
}

func (ExtRef) argExternal() {}

// ExtConst is a boolean literal driving a pin with a constant default
// value.
type ExtConst bool

func (ExtConst) argExternal() {}

// ExtNumber is a bare numeric literal in driver position: valid syntax, but
// the elaborator always rejects it with a *ValuesNotSupportedError.
type ExtNumber int64

func (ExtNumber) argExternal() {}

// ParseChip parses HDL source text into a ChipRepr.
func ParseChip(src string) (*ChipRepr, error) {
	decl, err := hdl.Parse(src)
	if err != nil {
		return nil, errors.Wrap(err, "parse error")
	}
	return convertChip(decl), nil
}

func convertChip(d *hdl.ChipDecl) *ChipRepr {
	return &ChipRepr{
		Name:    d.Name,
		InPins:  convertChannels(d.InPins),
		OutPins: convertChannels(d.OutPins),
		Impl:    convertImpl(d.Impl),
	}
}

func convertChannels(cs []hdl.Channel) []Channel {
	out := make([]Channel, len(cs))
	for i, c := range cs {
		out[i] = Channel{Name: c.Name, Width: c.Width}
	}
	return out
}

func convertImpl(impl hdl.Implementation) Implementation {
	switch v := impl.(type) {
	case *hdl.Builtin:
		return &BuiltinImpl{Name: v.Name, Clocked: v.Clocked}
	case *hdl.Native:
		parts := make([]PartInstance, len(v.Parts))
		for i, p := range v.Parts {
			parts[i] = PartInstance{
				SubChip: p.SubChip,
				Args:    convertArgs(p.Args),
			}
		}
		return &NativeImpl{Parts: parts}
	default:
		panic("BUG: unknown hdl.Implementation variant")
	}
}

func convertArgs(args []hdl.Argument) []Argument {
	out := make([]Argument, len(args))
	for i, a := range args {
		out[i] = Argument{
			Internal:    a.Internal,
			InternalBus: convertRange(a.InternalBus),
			External:    convertExternal(a.External),
		}
	}
	return out
}

func convertRange(r *hdl.Range) *ChannelRange {
	if r == nil {
		return nil
	}
	return &ChannelRange{Start: r.Start, End: r.End}
}

func convertExternal(e hdl.ArgExternal) ArgExternal {
	switch v := e.(type) {
	case hdl.ExtName:
		return ExtRef{Name: v.Name, Bus: convertRange(v.Bus)}
	case hdl.ExtBool:
		return ExtConst(v)
	case hdl.ExtNumber:
		return ExtNumber(v)
	default:
		panic("BUG: unknown hdl.ArgExternal variant")
	}
}

// Interface synthesizes this ChipRepr's pin Interface. For a NativeImpl,
// all pins are combinatorial by definition; for a BuiltinImpl, the
// Clocked list partitions both the in-pin and out-pin lists into
// sequential/combinatorial halves.
func (c *ChipRepr) Interface() (Interface, error) {
	b, isBuiltin := c.Impl.(*BuiltinImpl)
	if !isBuiltin {
		return NewInterface(nil, c.InPins, nil, c.OutPins)
	}
	clocked := make(map[string]bool, len(b.Clocked))
	for _, p := range b.Clocked {
		clocked[p] = true
	}
	var seqIn, combIn, seqOut, combOut []Channel
	for _, p := range c.InPins {
		if clocked[p.Name] {
			seqIn = append(seqIn, p)
		} else {
			combIn = append(combIn, p)
		}
	}
	for _, p := range c.OutPins {
		if clocked[p.Name] {
			seqOut = append(seqOut, p)
		} else {
			combOut = append(combOut, p)
		}
	}
	return NewInterface(seqIn, combIn, seqOut, combOut)
}
