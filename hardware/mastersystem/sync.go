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

// bring the video chip up to date
func (m *Machine) updateVideo() {
	m.video.Advance(m.timeSinceVideoUpdate.Flush())
}

// bring the audio chip up to date. the remainder of the division is carried
// forward to the next update
func (m *Machine) updateAudio() {
	m.audio.Advance(m.timeSinceAudioUpdate.DivideCycles(audioDivider))
}
