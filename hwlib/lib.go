// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package hwlib provides a library of reusable chips for hwsim, sourced as
// plain HDL text rather than composed in Go code.
package hwlib

import (
	"embed"

	hwsim "github.com/n2t/hwsim"
)

//go:embed testdata/*.hdl
var sources embed.FS

// chips lists the library's chips in dependency order: every chip after
// the first only refers to chips earlier in this list (and the Nand/DFF
// primitives, which Register requires the builder to already have).
var chips = []string{
	"Not", "And", "Or", "Xor", "Mux",
	"DMux", "DMux4Way", "Bit",
}

// Register parses and registers every chip in the library against b, in
// dependency order. b must already have the Nand and DFF primitives
// registered (see hwsim.ChipBuilder.WithBuiltins).
func Register(b *hwsim.ChipBuilder) error {
	for _, name := range chips {
		src, err := sources.ReadFile("testdata/" + name + ".hdl")
		if err != nil {
			return err
		}
		if _, err := b.RegisterHDL(string(src)); err != nil {
			return err
		}
	}
	return nil
}
