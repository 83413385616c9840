package store

import (
	"fmt"
	"io"

	"github.com/balzaczyy/goweight/core/util"
)

// DataInput over a fixed byte slice. Reading past the end fails with
// io.ErrUnexpectedEOF and leaves the position untouched.
type ByteArrayDataInput struct {
	*util.DataInputImpl
	bytes []byte
	Pos   int
	limit int
}

func NewByteArrayDataInput(bytes []byte) *ByteArrayDataInput {
	ans := &ByteArrayDataInput{}
	ans.DataInputImpl = util.NewDataInput(ans)
	ans.Reset(bytes)
	return ans
}

func (in *ByteArrayDataInput) Reset(bytes []byte) {
	in.bytes = bytes
	in.Pos = 0
	in.limit = len(bytes)
}

func (in *ByteArrayDataInput) Length() int {
	return in.limit
}

// Number of bytes not consumed yet.
func (in *ByteArrayDataInput) Remaining() int {
	return in.limit - in.Pos
}

func (in *ByteArrayDataInput) EOF() bool {
	return in.Pos == in.limit
}

func (in *ByteArrayDataInput) ReadByte() (b byte, err error) {
	if in.Pos >= in.limit {
		return 0, io.ErrUnexpectedEOF
	}
	in.Pos++
	return in.bytes[in.Pos-1], nil
}

func (in *ByteArrayDataInput) ReadBytes(buf []byte) error {
	if len(buf) > in.limit-in.Pos {
		return io.ErrUnexpectedEOF
	}
	copy(buf, in.bytes[in.Pos:])
	in.Pos += len(buf)
	return nil
}

func (in *ByteArrayDataInput) String() string {
	return fmt.Sprintf("ByteArrayDataInput(pos=%v length=%v)", in.Pos, in.limit)
}
