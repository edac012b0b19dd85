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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/davecgh/go-spew/spew"
	"github.com/jetsetilly/gopher8bit/cartridgeloader"
	"github.com/jetsetilly/gopher8bit/curated"
	"github.com/jetsetilly/gopher8bit/hardware/cpu"
	"github.com/jetsetilly/gopher8bit/hardware/electron"
	"github.com/jetsetilly/gopher8bit/hardware/mastersystem"
	"github.com/jetsetilly/gopher8bit/hardware/preferences"
	"github.com/jetsetilly/gopher8bit/logger"
	"github.com/jetsetilly/gopher8bit/modalflag"
	"github.com/jetsetilly/gopher8bit/paths"
	"github.com/jetsetilly/gopher8bit/prefs"
	"github.com/jetsetilly/gopher8bit/statsview"
	"github.com/jetsetilly/gopher8bit/storage/tape"
	"github.com/jetsetilly/gopher8bit/version"
	"github.com/jetsetilly/gopher8bit/wavwriter"
)

// the number of carrier bits written before and after data in RECORD mode.
// at 1200 baud this is about two seconds
const defaultCarrier = 2400

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("INFO", "RUN", "TAPE", "RECORD", "VERSION")

	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, "launch the statistics server")
	statsAddr := md.AddString("statsaddr", statsview.DefaultAddress, "address of the statistics server")
	prefsFile := md.AddString("prefs", "", "preferences file (default is the resource path)")
	override := md.AddString("override", "", "override preferences. eg. \"hardware.region::Europe; hardware.logging::false\"")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)
	case modalflag.ParseError:
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	if *log {
		logger.SetEcho(os.Stdout)
	}

	if *override != "" {
		prefs.PushCommandLineStack(*override)
	}

	if *stats {
		statsview.Launch(os.Stdout, *statsAddr)
	}

	prf, err := loadPreferences(*prefsFile)
	if err != nil {
		fmt.Printf("* %s\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "INFO":
		err = info(md, prf)
	case "RUN":
		err = run(md, prf)
	case "TAPE":
		err = readTape(md, prf)
	case "RECORD":
		err = recordTape(md, prf)
	case "VERSION":
		fmt.Println(version.Current())
	}

	if err != nil {
		// curated errors already describe themselves fully
		if curated.IsAny(err) {
			fmt.Printf("* %s\n", err)
		} else {
			fmt.Printf("* error in %s mode: %s\n", md, err)
		}
		os.Exit(20)
	}

	// keep the process alive for as long as the statistics server is wanted
	if *stats {
		fmt.Println("! press ctrl-c to end")
		intChan := make(chan os.Signal, 1)
		signal.Notify(intChan, os.Interrupt)
		<-intChan
	}
}

func loadPreferences(pth string) (*preferences.Preferences, error) {
	if pth == "" {
		return preferences.NewPreferences()
	}
	return preferences.NewPreferencesFromFile(pth)
}

// wavFilename returns a unique WAV filename based on the name of the source
// file
func wavFilename(prepend string, source string) string {
	var name string
	if source != "" {
		name = strings.TrimSuffix(filepath.Base(source), filepath.Ext(source))
	}
	return paths.UniqueFilename(prepend, name) + ".wav"
}

// machineFlags are the flags common to all modes that create a Master System
type machineFlags struct {
	model   *string
	region  *string
	paging  *string
	biosDir *string
}

func addMachineFlags(md *modalflag.Modes, prf *preferences.Preferences) machineFlags {
	return machineFlags{
		model:   md.AddString("model", "SMS", "machine model: SMS, SG1000"),
		region:  md.AddString("region", prf.Region.String(), "region: JAPAN, USA, EUROPE, BRAZIL"),
		paging:  md.AddString("paging", "SEGA", "cartridge paging scheme: SEGA, CODEMASTERS"),
		biosDir: md.AddString("bios", ".", "directory containing the BIOS image"),
	}
}

// create the machine from the flags and the cartridge named in the remaining
// arguments
func (f machineFlags) create(md *modalflag.Modes, prf *preferences.Preferences) (*mastersystem.Machine, error) {
	var target mastersystem.Target
	var err error

	target.Model, err = mastersystem.ParseModel(*f.model)
	if err != nil {
		return nil, err
	}
	target.Region, err = mastersystem.ParseRegion(*f.region)
	if err != nil {
		return nil, err
	}
	target.PagingScheme, err = mastersystem.ParsePagingScheme(*f.paging)
	if err != nil {
		return nil, err
	}

	switch len(md.RemainingArgs()) {
	case 0:
	case 1:
		cl := cartridgeloader.NewLoader(md.GetArg(0))
		if cl.Kind != cartridgeloader.Cartridge {
			return nil, fmt.Errorf("%s is not a cartridge", cl.ShortName())
		}
		err = cl.Load()
		if err != nil {
			return nil, err
		}
		target.Cartridge = cl.Data
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	return mastersystem.New(target, cartridgeloader.DirectoryFetcher(*f.biosDir), prf)
}

func info(md *modalflag.Modes, prf *preferences.Preferences) error {
	md.NewMode()

	mf := addMachineFlags(md, prf)
	memvizFile := md.AddString("memviz", "", "write a graph of the machine to the named file")
	dump := md.AddBool("dump", false, "print the state of the machine")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := mf.create(md, prf)
	if err != nil {
		return err
	}
	defer m.Close()

	fmt.Fprintln(md.Output, m.String())
	fmt.Fprint(md.Output, m.Summary())

	if *dump {
		cfg := spew.ConfigState{
			Indent:                  "  ",
			MaxDepth:                2,
			DisablePointerAddresses: true,
			DisableCapacities:       true,
		}

		// the cartridge data is too large to be useful
		t := m.Target()
		t.Cartridge = nil
		cfg.Fdump(md.Output, t, m.PSG(), m.Joystick(0), m.Joystick(1))
	}

	if *memvizFile != "" {
		f, err := os.Create(*memvizFile)
		if err != nil {
			return err
		}
		defer f.Close()
		memviz.Map(f, m)
		fmt.Fprintf(md.Output, "machine graph written to %s\n", *memvizFile)
	}

	return nil
}

func run(md *modalflag.Modes, prf *preferences.Preferences) (rerr error) {
	md.NewMode()

	mf := addMachineFlags(md, prf)
	frames := md.AddInt("frames", 60, "number of frames to run for")
	wav := md.AddString("wav", "", "record audio to the named WAV file")
	record := md.AddBool("record", false, "record audio to a WAV file named after the cartridge")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := mf.create(md, prf)
	if err != nil {
		return err
	}

	var aw *wavwriter.WavWriter

	// the machine is closed before the WAV file so that trailing audio is
	// part of the recording
	defer func() {
		m.Close()
		if aw != nil {
			err := aw.Close()
			if err != nil && rerr == nil {
				rerr = err
			}
		}
	}()

	z := cpu.NewZ80(m)
	m.AttachCPU(z)

	if *wav == "" && *record {
		*wav = wavFilename("audio", md.GetArg(0))
	}

	if *wav != "" {
		aw, err = wavwriter.New(*wav, prf.SampleRate.Get().(int))
		if err != nil {
			return err
		}
		m.SetSpeakerDelegate(aw)
		fmt.Fprintf(md.Output, "recording audio to %s\n", aw.Filename())
	}

	frame := m.VDP().FrameLength()
	for i := 0; i < *frames; i++ {
		z.RunFor(frame)
		m.Flush()
	}

	fmt.Fprintf(md.Output, "%d frames (%s)\n", *frames, z)

	return nil
}

func readTape(md *modalflag.Modes, prf *preferences.Preferences) error {
	md.NewMode()

	dump := md.AddBool("hex", true, "print a hex dump of the data")
	output := md.AddString("out", "", "write the data to the named file")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("%s mode requires one recording", md)
	}

	cl := cartridgeloader.NewLoader(md.GetArg(0))
	if cl.Kind != cartridgeloader.Tape {
		return fmt.Errorf("%s is not a tape recording", cl.ShortName())
	}
	err = cl.Load()
	if err != nil {
		return err
	}

	tp, err := tape.NewPCMTape(cl.Filename, cl.Data)
	if err != nil {
		return err
	}

	data := electron.ReadTape(prf, tp)
	fmt.Fprintf(md.Output, "%d bytes read from %s (%d pulses)\n", len(data), cl.ShortName(), tp.Len())

	if *dump {
		fmt.Fprint(md.Output, hex.Dump(data))
	}

	if *output != "" {
		err = os.WriteFile(*output, data, 0644)
		if err != nil {
			return err
		}
	}

	return nil
}

func recordTape(md *modalflag.Modes, prf *preferences.Preferences) error {
	md.NewMode()

	carrier := md.AddInt("carrier", defaultCarrier, "number of carrier bits before and after the data")
	rate := md.AddInt("rate", prf.SampleRate.Get().(int), "sample rate of the recording")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var in, out string
	switch len(md.RemainingArgs()) {
	case 1:
		in = md.GetArg(0)
		out = wavFilename("tape", in)
	case 2:
		in = md.GetArg(0)
		out = md.GetArg(1)
	default:
		return fmt.Errorf("%s mode requires an input file and an optional output file", md)
	}

	if strings.ToLower(filepath.Ext(out)) != ".wav" {
		return fmt.Errorf("output must be a WAV file")
	}

	cl := cartridgeloader.NewLoader(in)
	err = cl.Load()
	if err != nil {
		return err
	}

	r := &tape.Recorder{}
	electron.WriteTape(prf, r, cl.Data, *carrier)

	aw, err := wavwriter.New(out, *rate)
	if err != nil {
		return err
	}
	aw.Append(r.Render(aw.SampleRate()))

	err = aw.Close()
	if err != nil {
		return err
	}

	fmt.Fprintf(md.Output, "%d bytes written to %s (%s)\n", len(cl.Data), out, r.Duration())

	return nil
}
