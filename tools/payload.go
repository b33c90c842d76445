package tools

import (
	"encoding/binary"

	"github.com/cespare/xxhash"
)

// frame is a large payload whose teardown scrubs every buffer it owns,
// so dropping it costs time proportional to its size.
type frame struct {
	buffers [][]byte
}

func newFrame(buffers, size int) frame {
	f := frame{buffers: make([][]byte, buffers)}
	for i := range f.buffers {
		b := make([]byte, size)
		binary.LittleEndian.PutUint64(b, uint64(i))
		f.buffers[i] = b
	}
	return f
}

func (f *frame) Drop() {
	for _, b := range f.buffers {
		clear(b)
	}
	f.buffers = nil
}

// Sum is a digest of every buffer, in order.
func (f *frame) Sum() uint64 {
	d := xxhash.New()
	for _, b := range f.buffers {
		d.Write(b)
	}
	return d.Sum64()
}
