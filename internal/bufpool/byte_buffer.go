// Package bufpool pools growable scratch byte buffers for callers that
// don't know their output size ahead of time, cutting the number of
// intermediate allocations for workloads that repeat the same
// operation in a tight loop. Builder uses it to accumulate a payload of
// unknown size before copying the result into an exactly-sized,
// permanently retained slice; internal/hash uses it the same way for
// its staging buffer. Project and Merge don't: their output's upper
// bound is known exactly ahead of time (the size of the input
// payload(s)), so they pre-size a plain slice directly instead of
// going through the pool.
package bufpool

import "sync"

// DefaultSize is the initial capacity of a buffer freshly created by
// the pool. Most records are well under this size; buffers that grow
// past it keep their larger capacity until GC reclaims them.
const DefaultSize = 4096

// MaxRetainedSize caps how large a buffer the pool will put back.
// Buffers that grow beyond this during one use are dropped rather than
// retained, so one outsized record doesn't pin a large allocation for
// the lifetime of the pool.
const MaxRetainedSize = 1024 * 1024

// ByteBuffer is a resettable, growable byte slice wrapper, the same
// shape the teacher's pool.ByteBuffer takes: operations append to B
// and read it back via Bytes, and Reset clears length without
// releasing capacity.
type ByteBuffer struct {
	B []byte
}

// Bytes returns the buffer's current contents.
func (bb *ByteBuffer) Bytes() []byte { return bb.B }

// Reset clears the buffer's length, retaining its capacity.
func (bb *ByteBuffer) Reset() { bb.B = bb.B[:0] }

// Write appends data to the buffer, growing it as needed.
func (bb *ByteBuffer) Write(data []byte) (int, error) {
	bb.B = append(bb.B, data...)
	return len(data), nil
}

var pool = sync.Pool{
	New: func() any {
		return &ByteBuffer{B: make([]byte, 0, DefaultSize)}
	},
}

// Get returns a ByteBuffer from the pool, ready for use.
func Get() *ByteBuffer {
	return pool.Get().(*ByteBuffer)
}

// Put returns bb to the pool after resetting it. Buffers that grew
// past MaxRetainedSize are discarded instead of pooled.
func Put(bb *ByteBuffer) {
	if cap(bb.B) > MaxRetainedSize {
		return
	}
	bb.Reset()
	pool.Put(bb)
}
