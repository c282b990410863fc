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

package isamem

import (
	"github.com/anabate123/86Box/hardware/device"
)

// Spec describes one selectable board variant. A single generic construction
// routine interprets the descriptor; there is no per-variant code.
type Spec struct {
	Name         string
	InternalName string

	// flags preset by the board type, before options are read
	presetWide       bool
	presetFast       bool
	presetEMS        bool
	presetConfigured bool

	// the EMS frame address when fixed by the board design. zero means the
	// frame comes from the "frame" option (or the board has no frame at all)
	fixedFrame uint32

	// the value of the "width" option that selects 16-bit transfers. zero
	// when the variant has no width option
	wideOn int

	// how much of the fitted RAM is used as contiguous (conventional and
	// extended) memory: all of it, none of it, or the amount given by a
	// separate "length" option
	contiguous bool
	hasLength  bool

	// the switches and jumpers on the physical board
	Options []device.OptionSpec
}

func (s *Spec) String() string {
	return s.Name
}

var specs = []Spec{
	{
		Name:         "IBM PC/XT Memory Expansion",
		InternalName: "ibmxt",
		contiguous:   true,
		Options: []device.OptionSpec{
			{Name: "size", Description: "Memory Size", Kind: device.Spinner, Default: 128, Min: 0, Max: 512, Step: 16},
			{Name: "start", Description: "Start Address", Kind: device.Spinner, Default: 256, Min: 0, Max: 576, Step: 64},
		},
	},
	{
		Name:         "IBM PC/AT Memory Expansion",
		InternalName: "ibmat",
		presetWide:   true,
		contiguous:   true,
		Options: []device.OptionSpec{
			{Name: "size", Description: "Memory Size", Kind: device.Spinner, Default: 512, Min: 0, Max: 4096, Step: 512},
			{Name: "start", Description: "Start Address", Kind: device.Spinner, Default: 512, Min: 0, Max: 16128, Step: 128},
		},
	},
	{
		Name:         "Paradise Systems 5-PAK",
		InternalName: "p5pak",
		contiguous:   true,
		Options: []device.OptionSpec{
			{Name: "size", Description: "Memory Size", Kind: device.Spinner, Default: 128, Min: 0, Max: 384, Step: 64},
			{Name: "start", Description: "Start Address", Kind: device.Spinner, Default: 512, Min: 64, Max: 576, Step: 64},
		},
	},
	{
		Name:             "Micro Mainframe EMS-5150(T)",
		InternalName:     "ems5150",
		presetEMS:        true,
		presetConfigured: true,
		fixedFrame:       0xd0000,
		Options: []device.OptionSpec{
			{Name: "size", Description: "Memory Size", Kind: device.Spinner, Default: 256, Min: 0, Max: 2048, Step: 64},
			{Name: "base", Description: "Address", Kind: device.Hex16, Default: 0,
				Choices: []device.Choice{
					{Label: "Disabled", Value: 0},
					{Label: "Board 1", Value: 0x0208},
					{Label: "Board 2", Value: 0x020a},
					{Label: "Board 3", Value: 0x020c},
					{Label: "Board 4", Value: 0x020e},
				}},
		},
	},
	{
		Name:         "Everex EV-159 RAM 3000 Deluxe",
		InternalName: "ev159",
		fixedFrame:   0xe0000,
		wideOn:       1,
		hasLength:    true,
		Options: []device.OptionSpec{
			{Name: "size", Description: "Memory Size", Kind: device.Spinner, Default: 512, Min: 0, Max: 3072, Step: 512},
			{Name: "start", Description: "Start Address", Kind: device.Spinner, Default: 0, Min: 0, Max: 16128, Step: 128},
			{Name: "length", Description: "Contiguous Size", Kind: device.Spinner, Default: 0, Min: 0, Max: 16384, Step: 128},
			{Name: "width", Description: "I/O Width", Kind: device.Selection, Default: 0,
				Choices: []device.Choice{
					{Label: "8-bit", Value: 0},
					{Label: "16-bit", Value: 1},
				}},
			{Name: "speed", Description: "Transfer Speed", Kind: device.Selection, Default: 0,
				Choices: []device.Choice{
					{Label: "Standard (150ns)", Value: 0},
					{Label: "High-Speed (120ns)", Value: 1},
				}},
			{Name: "ems", Description: "EMS mode", Kind: device.Selection, Default: 0,
				Choices: []device.Choice{
					{Label: "Disabled", Value: 0},
					{Label: "Enabled", Value: 1},
				}},
			{Name: "base", Description: "Address", Kind: device.Hex16, Default: 0x0258,
				Choices: []device.Choice{
					{Label: "208H", Value: 0x0208},
					{Label: "218H", Value: 0x0218},
					{Label: "258H", Value: 0x0258},
					{Label: "268H", Value: 0x0268},
					{Label: "2A8H", Value: 0x02a8},
					{Label: "2B8H", Value: 0x02b8},
					{Label: "2E8H", Value: 0x02e8},
				}},
		},
	},
	{
		Name:         "AST RAMpage/XT",
		InternalName: "rampage",
		presetEMS:    true,
		wideOn:       16,
		Options: []device.OptionSpec{
			{Name: "base", Description: "Address", Kind: device.Hex16, Default: 0x0258,
				Choices: []device.Choice{
					{Label: "208H", Value: 0x0208},
					{Label: "218H", Value: 0x0218},
					{Label: "258H", Value: 0x0258},
					{Label: "268H", Value: 0x0268},
					{Label: "2A8H", Value: 0x02a8},
					{Label: "2B8H", Value: 0x02b8},
					{Label: "2E8H", Value: 0x02e8},
				}},
			{Name: "frame", Description: "Frame Address", Kind: device.Hex20, Default: 0,
				Choices: []device.Choice{
					{Label: "Disabled", Value: 0x00000},
					{Label: "C000H", Value: 0xc0000},
					{Label: "D000H", Value: 0xd0000},
					{Label: "E000H", Value: 0xe0000},
				}},
			{Name: "width", Description: "I/O Width", Kind: device.Selection, Default: 8,
				Choices: []device.Choice{
					{Label: "8-bit", Value: 8},
					{Label: "16-bit", Value: 16},
				}},
			{Name: "speed", Description: "Transfer Speed", Kind: device.Selection, Default: 0,
				Choices: []device.Choice{
					{Label: "Standard", Value: 0},
					{Label: "High-Speed", Value: 1},
				}},
			{Name: "size", Description: "Memory Size", Kind: device.Spinner, Default: 128, Min: 0, Max: 8192, Step: 128},
		},
	},
}

// List returns the catalogue of selectable board variants.
func List() []*Spec {
	l := make([]*Spec, len(specs))
	for i := range specs {
		l[i] = &specs[i]
	}
	return l
}

// Lookup returns the Spec with the given internal name, or nil if there is
// no such board variant.
func Lookup(internalName string) *Spec {
	for i := range specs {
		if specs[i].InternalName == internalName {
			return &specs[i]
		}
	}
	return nil
}
