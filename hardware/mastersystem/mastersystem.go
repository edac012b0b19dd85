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

	"github.com/jetsetilly/gopher8bit/cartridgeloader"
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/audio"
	"github.com/jetsetilly/gopher8bit/hardware/chips"
	"github.com/jetsetilly/gopher8bit/hardware/clocks"
	"github.com/jetsetilly/gopher8bit/hardware/input"
	"github.com/jetsetilly/gopher8bit/hardware/memory/bus"
	"github.com/jetsetilly/gopher8bit/hardware/memory/pagetable"
	"github.com/jetsetilly/gopher8bit/hardware/preferences"
	"github.com/jetsetilly/gopher8bit/hardware/sn76489"
	"github.com/jetsetilly/gopher8bit/hardware/vdp"
)

// MissingROMs is returned by New() when a ROM required by the target is not
// supplied by the ROMFetcher.
const MissingROMs = "mastersystem: missing ROM (%s)"

// BIOSFilename is the name of the BIOS image requested from the ROMFetcher.
const BIOSFilename = "bios.sms"

const (
	biosSize      = 0x2000
	ramSizeSMS    = 0x2000
	ramSizeSG1000 = 0x0400

	// the sound generator is clocked at half the CPU rate
	audioDivider clocks.Cycles = 2
)

// the tag used for log entries
const logTag = "mastersystem"

// Machine is the bus of a Master System or SG-1000. It implements the
// bus.Handler interface.
type Machine struct {
	prefs  *preferences.Preferences
	target Target

	pager pagetable.Pager

	cartridge pagetable.BufferID
	ram       pagetable.BufferID
	bios      pagetable.BufferID

	// size of the cartridge image before padding
	cartridgeSize int

	pagingRegisters [3]uint8
	memoryControl   uint8
	ioPortControl   uint8

	// peripheral chips are referred to only through their capabilities
	video chips.Video
	audio chips.Audio

	// default chips created by New()
	vdp     *vdp.VDP
	psg     *sn76489.Chip
	speaker *audio.Speaker
	queue   audio.Queue

	timeSinceVideoUpdate clocks.HalfCycles
	timeSinceAudioUpdate clocks.HalfCycles

	interrupts arbiter

	joysticks [2]*Joystick

	clockRate float64

	// number of times the page tables have been rebuilt
	rebuilds int
}

// New is the preferred method of initialisation for the Machine type. The
// fetcher is used to request the BIOS image for targets that require one. A
// nil prefs argument means the default preferences.
func New(target Target, fetcher cartridgeloader.ROMFetcher, prefs *preferences.Preferences) (*Machine, error) {
	if prefs == nil {
		prefs = preferences.Defaults()
	}

	m := &Machine{
		prefs:         prefs,
		target:        target,
		cartridgeSize: len(target.Cartridge),
		ioPortControl: 0x0f,
		interrupts: arbiter{
			timeUntilInterrupt: clocks.Never,
		},
	}

	if target.HasBIOS() {
		if fetcher == nil {
			return nil, curated.Errorf(MissingROMs, BIOSFilename)
		}
		roms, err := fetcher(BIOSFilename)
		if err != nil {
			return nil, curated.Errorf("mastersystem: %v", err)
		}
		if len(roms) == 0 || roms[0] == nil {
			return nil, curated.Errorf(MissingROMs, BIOSFilename)
		}
		bios := make([]uint8, biosSize)
		copy(bios, roms[0])
		m.bios = m.pager.Arena.Add("bios", bios)
	}

	m.cartridge = m.pager.Arena.Add("cartridge", padCartridge(target.Cartridge))

	if target.Model == SG1000 {
		m.ram = m.pager.Arena.Add("ram", make([]uint8, ramSizeSG1000))
	} else {
		m.ram = m.pager.Arena.Add("ram", make([]uint8, ramSizeSMS))
	}

	// the Codemasters power-on state maps the first bank in the last window
	if target.PagingScheme == Codemasters {
		m.pagingRegisters = [3]uint8{0, 1, 0}
	} else {
		m.pagingRegisters = [3]uint8{0, 1, 2}
	}

	standard := vdp.NTSC
	m.clockRate = clocks.NTSC_SMS
	if target.PAL() {
		standard = vdp.PAL
		m.clockRate = clocks.PAL_SMS
	}

	if target.Model == SG1000 {
		m.vdp = vdp.NewVDP(vdp.TMS9918A, standard)
		m.psg = sn76489.NewChip(sn76489.SN76489)
	} else {
		m.vdp = vdp.NewVDP(vdp.SMSVDP, standard)
		m.psg = sn76489.NewChip(sn76489.SMS)
	}

	m.speaker = audio.NewSpeaker(m.psg, m.clockRate/float64(audioDivider), float64(prefs.SampleRate.Get().(int)))
	m.speaker.SetHighFrequencyCutoff(prefs.SpeakerCutoff.Get().(float64))

	m.video = m.vdp
	m.audio = audio.NewOutput(&m.queue, m.psg, m.speaker)

	m.joysticks[input.Player0] = NewJoystick()
	m.joysticks[input.Player1] = NewJoystick()

	m.pageCartridge()

	return m, nil
}

// AllowLogging implements the logger.Permission interface.
func (m *Machine) AllowLogging() bool {
	return m.prefs.Logging.Get().(bool)
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s: paging=%02x memctrl=%02x ioctrl=%02x", m.target, m.pagingRegisters, m.memoryControl, m.ioPortControl)
}

// Target returns the description of the machine.
func (m *Machine) Target() Target {
	return m.target
}

// ClockRate returns the CPU clock rate in Hz.
func (m *Machine) ClockRate() float64 {
	return m.clockRate
}

// AttachCPU connects the interrupt line of the CPU.
func (m *Machine) AttachCPU(cpu bus.InterruptReceiver) {
	m.interrupts.cpu = cpu
}

// InstallVideo replaces the video chip. The new chip is advanced from the
// current time.
func (m *Machine) InstallVideo(video chips.Video) {
	m.updateVideo()
	m.video = video
	m.interrupts.update(m.video)
}

// InstallAudio replaces the audio chip.
func (m *Machine) InstallAudio(a chips.Audio) {
	m.updateAudio()
	m.audio = a
}

// VDP returns the video chip created by New().
func (m *Machine) VDP() *vdp.VDP {
	return m.vdp
}

// PSG returns the sound generator created by New().
func (m *Machine) PSG() *sn76489.Chip {
	return m.psg
}

// SetSpeakerDelegate sets the recipient of completed audio buffers.
func (m *Machine) SetSpeakerDelegate(delegate audio.SpeakerDelegate) {
	m.speaker.SetDelegate(delegate)
}

// Queue returns the machine's audio queue.
func (m *Machine) Queue() *audio.Queue {
	return &m.queue
}

// Joystick returns the joystick in the specified port. Returns nil if the
// port does not exist.
func (m *Machine) Joystick(id input.PortID) *Joystick {
	if id < 0 || int(id) >= len(m.joysticks) {
		return nil
	}
	return m.joysticks[id]
}

// HandleEvent implements the input.Handler interface.
func (m *Machine) HandleEvent(id input.PortID, ev input.Event, data input.EventData) error {
	j := m.Joystick(id)
	if j == nil {
		return curated.Errorf(UnhandledEvent, id)
	}
	return j.HandleEvent(ev, data)
}

// Summary returns a description of the current memory map.
func (m *Machine) Summary() string {
	s := strings.Builder{}
	s.WriteString(m.String())
	s.WriteString("\n")
	s.WriteString(m.pager.Summary())
	return s.String()
}

// Flush brings all peripheral chips up to date and performs the audio queue.
// Must be called at least once per output frame.
func (m *Machine) Flush() {
	m.updateVideo()
	m.updateAudio()
	m.queue.Perform()
}

// Close flushes the machine and drains the audio queue. Trailing audio is
// delivered to the speaker delegate.
func (m *Machine) Close() {
	m.Flush()
	m.speaker.Drain(&m.queue)
	m.queue.Flush()
}
