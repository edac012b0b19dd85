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

// Package wavwriter allows writing of audio data to disk as a WAV file. Note
// that audio data is buffered in memory in its entirity, and written to disk
// when the writer is closed. It is therefore only suitable for short
// recordings, such as the tape images made by the RECORD mode, and for
// testing purposes.
package wavwriter

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/jetsetilly/gopher8bit/curated"
	sampling "github.com/jetsetilly/gopher8bit/hardware/audio"
	"github.com/jetsetilly/gopher8bit/logger"
)

const logTag = "wavwriter"

// WavWriter implements the audio.SpeakerDelegate interface. Samples are
// mono and sixteen bit.
type WavWriter struct {
	filename   string
	sampleRate int
	buffer     []int
}

// New is the preferred method of initialisation for the WavWriter type.
func New(filename string, sampleRate int) (*WavWriter, error) {
	if sampleRate <= 0 {
		return nil, curated.Errorf("wavwriter: %v", "sample rate must be positive")
	}

	aw := &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]int, 0),
	}

	return aw, nil
}

// Filename returns the name of the file written by Close().
func (aw *WavWriter) Filename() string {
	return aw.filename
}

// SampleRate returns the rate at which samples should be supplied.
func (aw *WavWriter) SampleRate() int {
	return aw.sampleRate
}

// SpeakerDidCompleteSamples implements the audio.SpeakerDelegate interface.
func (aw *WavWriter) SpeakerDidCompleteSamples(_ *sampling.Speaker, samples []int16) {
	for _, s := range samples {
		aw.buffer = append(aw.buffer, int(s))
	}
}

// Append adds samples to the end of the recording.
func (aw *WavWriter) Append(samples []int) {
	aw.buffer = append(aw.buffer, samples...)
}

// Len returns the number of samples waiting to be written.
func (aw *WavWriter) Len() int {
	return len(aw.buffer)
}

// Close writes the buffered samples to disk.
func (aw *WavWriter) Close() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil {
			rerr = curated.Errorf("wavwriter: %v", err)
		}
	}()

	// audio format 1 is uncompressed PCM
	enc := wav.NewEncoder(f, aw.sampleRate, 16, 1, 1)

	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  aw.sampleRate,
		},
		Data:           aw.buffer,
		SourceBitDepth: 16,
	}

	logger.Logf(logger.Allow, logTag, "writing audio to %s", aw.filename)

	err = enc.Write(buf)
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	err = enc.Close()
	if err != nil {
		return curated.Errorf("wavwriter: %v", err)
	}

	return nil
}
