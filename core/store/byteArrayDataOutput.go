package store

import (
	"github.com/balzaczyy/goweight/core/util"
)

// DataOutput backed by a byte slice which grows as bytes are written.
type ByteArrayDataOutput struct {
	*util.DataOutputImpl
	data []byte
}

func NewByteArrayDataOutput(capacity int) *ByteArrayDataOutput {
	ans := &ByteArrayDataOutput{data: make([]byte, 0, capacity)}
	ans.DataOutputImpl = util.NewDataOutput(ans)
	return ans
}

func (o *ByteArrayDataOutput) Position() int {
	return len(o.data)
}

// Bytes returns the bytes written so far. The slice aliases the
// internal buffer until the next write.
func (o *ByteArrayDataOutput) Bytes() []byte {
	return o.data
}

func (o *ByteArrayDataOutput) WriteByte(b byte) error {
	o.data = append(o.data, b)
	return nil
}

func (o *ByteArrayDataOutput) WriteBytes(b []byte) error {
	o.data = append(o.data, b...)
	return nil
}
