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

package tape

import (
	"bytes"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
	"github.com/jetsetilly/gopher8bit/curated"
)

// UnsupportedFormat is returned by NewPCMTape() for files that are neither
// WAV nor MP3.
const UnsupportedFormat = "tape: unsupported format (%s)"

// pcm is a single channel of sample data
type pcm struct {
	sampleRate float64
	data       []float32
}

// NewPCMTape decodes a WAV or MP3 recording into a PulseTape. The format is
// decided by the filename extension. Only the first channel is used.
func NewPCMTape(filename string, data []byte) (*PulseTape, error) {
	var p pcm
	var err error

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".wav":
		p, err = decodeWAV(data)
	case ".mp3":
		p, err = decodeMP3(data)
	default:
		return nil, curated.Errorf(UnsupportedFormat, filename)
	}
	if err != nil {
		return nil, curated.Errorf("tape: %v", err)
	}

	return NewPulseTape(p.pulses()), nil
}

func decodeWAV(data []byte) (pcm, error) {
	var p pcm

	dec := wav.NewDecoder(bytes.NewReader(data))
	if !dec.IsValidFile() {
		return p, curated.Errorf("wav: not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, curated.Errorf("wav: %v", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	chans := int(dec.NumChans)
	if chans < 1 {
		chans = 1
	}

	p.sampleRate = float64(dec.SampleRate)
	p.data = make([]float32, 0, len(floatBuf.Data)/chans)
	for i := 0; i < len(floatBuf.Data); i += chans {
		p.data = append(p.data, floatBuf.Data[i])
	}

	return p, nil
}

func decodeMP3(data []byte) (pcm, error) {
	var p pcm

	dec, err := mp3.NewDecoder(bytes.NewReader(data))
	if err != nil {
		return p, curated.Errorf("mp3: %v", err)
	}

	// the decoded stream is always 16 bit little endian stereo. four bytes
	// per sample and the left channel is the first two
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			s := int16(uint16(chunk[i]) | uint16(chunk[i+1])<<8)
			p.data = append(p.data, float32(s))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return p, curated.Errorf("mp3: %v", err)
		}
	}

	p.sampleRate = float64(dec.SampleRate())

	return p, nil
}

// pulses converts the sample data to pulses. a pulse ends at every change of
// sign of the signal
func (p pcm) pulses() []Pulse {
	var pulses []Pulse
	if len(p.data) == 0 || p.sampleRate <= 0 {
		return pulses
	}

	level := func(s float32) PulseType {
		if s > 0 {
			return High
		}
		return Low
	}

	sampleLength := float64(time.Second) / p.sampleRate

	current := level(p.data[0])
	run := 0
	for _, s := range p.data {
		l := level(s)
		if l != current {
			pulses = append(pulses, Pulse{Type: current, Length: time.Duration(float64(run) * sampleLength)})
			current = l
			run = 0
		}
		run++
	}
	pulses = append(pulses, Pulse{Type: current, Length: time.Duration(float64(run) * sampleLength)})

	return pulses
}
