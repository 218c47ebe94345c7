// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package hwsim

import "github.com/pkg/errors"

// resolver looks up an already-registered chip by name, returning its
// Interface and a Chip usable as a fresh sub-chip instance (the elaborator
// keeps the Chip it is handed as that part's instance inside its Barrier,
// so it is expected to be a Clone()).
type resolver func(name string) (Interface, Chip, bool)

// edgeEndpoint identifies one endpoint (driver or sink) of an internal wire.
type edgeEndpoint struct {
	partID int
	rng    ChannelRange
}

type edgeSet struct {
	driver    *edgeEndpoint
	driverKey string // wire name, for error messages
	sinks     []edgeEndpoint
}

type constDefault struct {
	rng ChannelRange
	val bool
}

// elaborate converts a Native ChipRepr, given its already-synthesized top
// Interface and a resolver for its sub-chips, into an executable
// NativeChip. All sub-chips named by repr must already be resolvable;
// ChipBuilder is responsible for turning an unresolvable name into a
// NeedsError before calling elaborate.
func elaborate(repr *ChipRepr, topIface Interface, resolve resolver) (*NativeChip, error) {
	native, ok := repr.Impl.(*NativeImpl)
	if !ok {
		return nil, errors.Errorf("chip %q is not a native (PARTS:) chip", repr.Name)
	}

	n := len(native.Parts)
	partIfaces := make([]Interface, n)
	partChips := make([]Chip, n)
	partRouters := make([]Router, n)
	constDefaults := make([][]constDefault, n)

	edgeSets := make(map[string]*edgeSet)
	var edgeOrder []string

	var inRouter Router
	isClocked := false

	for partID, inst := range native.Parts {
		iface, chip, ok := resolve(inst.SubChip)
		if !ok {
			return nil, errors.Errorf("chip %q not registered (BUG: ChipBuilder should have caught this)", inst.SubChip)
		}
		partIfaces[partID] = iface
		partChips[partID] = chip
		if chip.IsClocked() {
			isClocked = true
		}

		for _, arg := range inst.Args {
			internalRange, err := iface.RealRange(arg.Internal, arg.InternalBus)
			if err != nil {
				return nil, &PinNotFoundError{Pin: arg.Internal, Chip: inst.SubChip}
			}
			isInput := iface.IsInputPin(arg.Internal)

			switch ext := arg.External.(type) {
			case ExtConst:
				constDefaults[partID] = append(constDefaults[partID], constDefault{internalRange, bool(ext)})
			case ExtNumber:
				return nil, &ValuesNotSupportedError{Pin: arg.Internal}
			case ExtRef:
				outer, side, isTop, err := topSide(topIface, ext.Name, ext.Bus)
				if err != nil {
					return nil, err
				}
				if isTop {
					switch {
					case side == sideIn && isInput:
						inRouter = append(inRouter, RouteEntry{From: outer, To: Hook{ChipID: partID, Range: internalRange}})
					case side == sideOut && !isInput:
						partRouters[partID] = append(partRouters[partID], RouteEntry{From: internalRange, To: Hook{ChipID: outChipID, Range: outer}})
					default:
						return nil, errors.Errorf("pin %q of part %q (#%d) cannot connect to top-level pin %q: direction mismatch", arg.Internal, inst.SubChip, partID, ext.Name)
					}
					continue
				}
				key := wireKey(ext.Name, ext.Bus)
				es := edgeSets[key]
				if es == nil {
					es = &edgeSet{driverKey: ext.Name}
					edgeSets[key] = es
					edgeOrder = append(edgeOrder, key)
				}
				ep := edgeEndpoint{partID: partID, rng: internalRange}
				if isInput {
					es.sinks = append(es.sinks, ep)
				} else {
					if es.driver != nil {
						return nil, &ConflictingSourcesError{Wire: ext.Name}
					}
					es.driver = &ep
				}
			default:
				return nil, errors.Errorf("unsupported argument value for pin %q", arg.Internal)
			}
		}
	}

	// top-level pins never enter edgeSets: they were routed by the
	// per-argument topSide() branch above (input pins into inRouter, output
	// pins onto the driving part's router). The loop below wires internal
	// wires only.

	for _, key := range edgeOrder {
		es := edgeSets[key]
		if es.driver == nil {
			return nil, &NoSourceError{Wire: es.driverKey}
		}
		for _, sink := range es.sinks {
			if sink.rng.Size() != es.driver.rng.Size() {
				return nil, errors.Errorf("wire %q: width mismatch between driver (%d bits) and sink (%d bits)", es.driverKey, es.driver.rng.Size(), sink.rng.Size())
			}
			partRouters[es.driver.partID] = append(partRouters[es.driver.partID], RouteEntry{
				From: es.driver.rng,
				To:   Hook{ChipID: sink.partID, Range: sink.rng},
			})
		}
	}

	registry := make(map[int]*Barrier, n)
	for partID := 0; partID < n; partID++ {
		b := newBarrier(partChips[partID], clockMaskFor(partIfaces[partID]), partRouters[partID])
		for _, d := range constDefaults[partID] {
			for i := d.rng.Start; i <= d.rng.End; i++ {
				b.inBuffer[i] = d.val
			}
		}
		registry[partID] = b
	}

	return &NativeChip{
		iface:    topIface,
		registry: registry,
		inRouter: inRouter,
		outChip:  outChipID,
		outBuf:   NewBits(topIface.SizeOut()),
		clocked:  isClocked,
	}, nil
}

type side int

const (
	sideIn side = iota
	sideOut
)

// topSide resolves name against the top-level interface's input or output
// pins. isTop reports whether name is a top-level pin at all -- the caller
// needs that distinction to tell "not a top-level pin, must be an internal
// wire" apart from "top-level pin, but bus is bad", the latter being a real
// elaboration error (err non-nil) rather than a reason to fall through to
// wire classification.
func topSide(iface Interface, name string, bus *ChannelRange) (rng ChannelRange, s side, isTop bool, err error) {
	if _, ok := iface.CombIn[name]; ok {
		r, err := iface.RealRange(name, bus)
		return r, sideIn, true, err
	}
	if _, ok := iface.SeqIn[name]; ok {
		r, err := iface.RealRange(name, bus)
		return r, sideIn, true, err
	}
	if _, ok := iface.CombOut[name]; ok {
		r, err := iface.RealRange(name, bus)
		return r, sideOut, true, err
	}
	if _, ok := iface.SeqOut[name]; ok {
		r, err := iface.RealRange(name, bus)
		return r, sideOut, true, err
	}
	return ChannelRange{}, 0, false, nil
}

// wireKey returns the canonical key for an internal wire name: the bare
// name if no bus was specified on this reference, else a key that
// disambiguates distinct bus sub-ranges of the same name so that, e.g.,
// "bus[0..7]" and "bus[8..15]" form two distinct wires.
func wireKey(name string, bus *ChannelRange) string {
	if bus == nil {
		return name
	}
	return name + "." + bus.String()
}

func clockMaskFor(iface Interface) Bits {
	m := NewBits(iface.SizeIn())
	for _, r := range iface.CombIn {
		for i := r.Start; i <= r.End; i++ {
			m[i] = true
		}
	}
	return m
}
