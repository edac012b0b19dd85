// This file is part of Gopher8bit.
//
// Gopher8bit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher8bit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher8bit.  If not, see <https://www.gnu.org/licenses/>.

package mastersystem

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher8bit/curated"
)

// Model of the machine.
type Model int

// List of valid Model values.
const (
	MasterSystem Model = iota
	SG1000
)

func (m Model) String() string {
	switch m {
	case MasterSystem:
		return "Master System"
	case SG1000:
		return "SG-1000"
	}
	return "unknown model"
}

// Region of the machine. The region decides the TV standard, the presence of
// the BIOS and whether the cartridge can be disabled.
type Region int

// List of valid Region values.
const (
	Japan Region = iota
	USA
	Europe
	Brazil
)

func (r Region) String() string {
	switch r {
	case Japan:
		return "Japan"
	case USA:
		return "USA"
	case Europe:
		return "Europe"
	case Brazil:
		return "Brazil"
	}
	return "unknown region"
}

// PagingScheme is the method by which a cartridge selects its banks.
type PagingScheme int

// List of valid PagingScheme values.
const (
	Sega PagingScheme = iota
	Codemasters
)

func (p PagingScheme) String() string {
	switch p {
	case Sega:
		return "Sega"
	case Codemasters:
		return "Codemasters"
	}
	return "unknown paging scheme"
}

// UnknownTargetValue is returned by the Parse functions.
const UnknownTargetValue = "mastersystem: unknown %s (%s)"

// ParseModel returns the Model named by the string. Case is ignored.
func ParseModel(s string) (Model, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SMS", "MASTERSYSTEM", "MASTER SYSTEM":
		return MasterSystem, nil
	case "SG1000", "SG-1000", "SG":
		return SG1000, nil
	}
	return MasterSystem, curated.Errorf(UnknownTargetValue, "model", s)
}

// ParseRegion returns the Region named by the string. Case is ignored.
func ParseRegion(s string) (Region, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "JAPAN", "JP":
		return Japan, nil
	case "USA", "US":
		return USA, nil
	case "EUROPE", "EU":
		return Europe, nil
	case "BRAZIL", "BR":
		return Brazil, nil
	}
	return USA, curated.Errorf(UnknownTargetValue, "region", s)
}

// ParsePagingScheme returns the PagingScheme named by the string. Case is
// ignored.
func ParsePagingScheme(s string) (PagingScheme, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "SEGA", "":
		return Sega, nil
	case "CODEMASTERS":
		return Codemasters, nil
	}
	return Sega, curated.Errorf(UnknownTargetValue, "paging scheme", s)
}

// Target describes the machine to be created by New().
type Target struct {
	Model        Model
	Region       Region
	PagingScheme PagingScheme

	// the cartridge image. may be empty
	Cartridge []uint8
}

func (t Target) String() string {
	return fmt.Sprintf("%s (%s) %s paging, %d byte cartridge", t.Model, t.Region, t.PagingScheme, len(t.Cartridge))
}

// HasBIOS returns true if the target requires a BIOS. Japanese machines and
// the SG-1000 have no BIOS.
func (t Target) HasBIOS() bool {
	return t.Model == MasterSystem && t.Region != Japan
}

// PAL returns true if the target uses the PAL TV standard.
func (t Target) PAL() bool {
	return t.Region == Europe
}
