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

package audio

// Queue is a FIFO of deferred tasks.
//
// Queue is not safe for concurrent use. If the audio device requires a
// separate callback goroutine then that goroutine should only see the output
// of the Speaker, never the Queue.
type Queue struct {
	tasks []func()

	// number of tasks performed over the lifetime of the queue
	performed int

	// a task deferring another task during Perform() is allowed. the new task
	// will be performed in the same call to Perform()
	performing bool
}

// Defer adds a task to the end of the queue.
func (q *Queue) Defer(task func()) {
	q.tasks = append(q.tasks, task)
}

// Perform all deferred tasks in the order they were deferred.
func (q *Queue) Perform() {
	if q.performing {
		return
	}
	q.performing = true
	defer func() {
		q.performing = false
	}()

	for i := 0; i < len(q.tasks); i++ {
		q.tasks[i]()
		q.tasks[i] = nil
		q.performed++
	}
	q.tasks = q.tasks[:0]
}

// Flush is the explicit final drain of the queue. It should be called before
// the owner of the queue is discarded.
func (q *Queue) Flush() {
	q.Perform()
}

// Len returns the number of tasks waiting to be performed.
func (q *Queue) Len() int {
	return len(q.tasks)
}

// Performed returns the number of tasks performed over the lifetime of the
// queue.
func (q *Queue) Performed() int {
	return q.performed
}
