// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/pkg/errors"

// canonical HDL source for the two built-in primitives. Declaring them as
// ordinary chip text (rather than special-casing their registration) keeps
// RegisterHDL the single entry point for every chip, built-in or not.
const (
	nandHDL = "CHIP Nand {\n\tIN a, b;\n\tOUT out;\n\n\tBUILTIN Nand;\n}\n"
	dffHDL  = "CHIP DFF {\n\tIN in;\n\tOUT out;\n\n\tBUILTIN DFF;\n\tCLOCKED in, out;\n}\n"
)

// primitives maps a BUILTIN clause's name to the Go-native Chip it binds to.
// Nand and DFF are the only two the engine implements directly; any other
// name in a BUILTIN clause is a ChipNotFoundError.
var primitives = map[string]func() Chip{
	"Nand": Nand,
	"DFF":  DFF,
}

// ChipInfo is a ChipBuilder's registration record for one chip name: its
// synthesized Interface and a prototype Chip that ResolveChip clones from.
type ChipInfo struct {
	Name  string
	Iface Interface

	proto Chip
}

// ChipBuilder accumulates chip registrations by name, in the order HDL
// sources are fed to it via RegisterHDL. A chip can only reference parts
// that were registered before it, so HDL libraries must be registered in
// dependency order (leaves first).
type ChipBuilder struct {
	chips map[string]*ChipInfo
	order []string
}

// NewChipBuilder returns an empty ChipBuilder.
func NewChipBuilder() *ChipBuilder {
	return &ChipBuilder{chips: make(map[string]*ChipInfo)}
}

// WithBuiltins registers the Nand and DFF primitives and returns b, so it
// can be chained onto NewChipBuilder.
func (b *ChipBuilder) WithBuiltins() (*ChipBuilder, error) {
	for _, src := range []string{nandHDL, dffHDL} {
		if _, err := b.RegisterHDL(src); err != nil {
			return b, err
		}
	}
	return b, nil
}

// RegisterHDL parses and registers one HDL chip declaration. It fails with
// a *RebuiltError if the chip's name is already registered, a *NeedsError
// listing every referenced sub-chip name that is not yet registered, or
// whatever error the elaborator (for a PARTS: chip) or the parser raises.
func (b *ChipBuilder) RegisterHDL(src string) (*ChipRepr, error) {
	repr, err := ParseChip(src)
	if err != nil {
		return nil, err
	}
	if _, exists := b.chips[repr.Name]; exists {
		return nil, &RebuiltError{Name: repr.Name}
	}
	iface, err := repr.Interface()
	if err != nil {
		return nil, err
	}

	var proto Chip
	switch impl := repr.Impl.(type) {
	case *BuiltinImpl:
		ctor, ok := primitives[impl.Name]
		if !ok {
			return nil, &ChipNotFoundError{Name: impl.Name}
		}
		proto = ctor()
		if iface.SizeIn() != proto.Interface().SizeIn() || iface.SizeOut() != proto.Interface().SizeOut() {
			return nil, errors.Errorf("chip %q: declared pin layout does not match built-in %q", repr.Name, impl.Name)
		}
	case *NativeImpl:
		var missing []string
		seen := make(map[string]bool)
		for _, p := range impl.Parts {
			if _, ok := b.chips[p.SubChip]; !ok && !seen[p.SubChip] {
				missing = append(missing, p.SubChip)
				seen[p.SubChip] = true
			}
		}
		if len(missing) > 0 {
			return nil, &NeedsError{Names: missing}
		}
		native, err := elaborate(repr, iface, b.resolve)
		if err != nil {
			return nil, err
		}
		proto = native
	default:
		return nil, errors.Errorf("chip %q: unknown implementation kind", repr.Name)
	}

	b.chips[repr.Name] = &ChipInfo{Name: repr.Name, Iface: iface, proto: proto}
	b.order = append(b.order, repr.Name)
	return repr, nil
}

func (b *ChipBuilder) resolve(name string) (Interface, Chip, bool) {
	ci, ok := b.chips[name]
	if !ok {
		return Interface{}, nil, false
	}
	return ci.Iface, ci.proto.Clone(), true
}

// GetChipInfo returns the registration record for name, if any.
func (b *ChipBuilder) GetChipInfo(name string) (*ChipInfo, bool) {
	ci, ok := b.chips[name]
	return ci, ok
}

// ResolveChip returns a fresh, independent Chip instance for the named,
// already-registered chip.
func (b *ChipBuilder) ResolveChip(name string) (Chip, error) {
	ci, ok := b.chips[name]
	if !ok {
		return nil, &ChipNotFoundError{Name: name}
	}
	return ci.proto.Clone(), nil
}

// Names returns every registered chip name, in registration order.
func (b *ChipBuilder) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}
