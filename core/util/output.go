package util

import (
	"fmt"
	"math"
)

/*
Performs write operations of the low-level data types used by weight
serialization.

DataOutput may only be used from one goroutine, because it is not
thread safe (the underlying writer keeps its own position).
*/
type DataOutput interface {
	DataWriter
	WriteInt(i int32) error
	WriteLong(i int64) error
	WriteDouble(f float64) error
}

type DataWriter interface {
	WriteByte(b byte) error
	WriteBytes(buf []byte) error
}

type DataOutputImpl struct {
	Writer DataWriter
}

func NewDataOutput(part DataWriter) *DataOutputImpl {
	assert(part != nil)
	return &DataOutputImpl{Writer: part}
}

func (out *DataOutputImpl) WriteByte(b byte) error {
	return out.Writer.WriteByte(b)
}

func (out *DataOutputImpl) WriteBytes(buf []byte) error {
	return out.Writer.WriteBytes(buf)
}

/*
Writes an int as four bytes.

32-bit unsigned integer written as four bytes, high-order bytes first.
*/
func (out *DataOutputImpl) WriteInt(i int32) error {
	assert(out.Writer != nil)
	err := out.Writer.WriteByte(byte(i >> 24))
	if err == nil {
		err = out.Writer.WriteByte(byte(i >> 16))
		if err == nil {
			err = out.Writer.WriteByte(byte(i >> 8))
			if err == nil {
				err = out.Writer.WriteByte(byte(i))
			}
		}
	}
	return err
}

/*
Writes a long as eight bytes.

64-bit unsigned integer written as eight bytes, high-order bytes first.
*/
func (out *DataOutputImpl) WriteLong(i int64) error {
	err := out.WriteInt(int32(i >> 32))
	if err == nil {
		err = out.WriteInt(int32(i))
	}
	return err
}

/*
Writes a double as its IEEE-754 bit pattern, using WriteLong().

Every float64 value, including NaN payloads and signed zeros, maps to
exactly one 8-byte sequence, so two nodes encoding the same value
produce identical bytes.
*/
func (out *DataOutputImpl) WriteDouble(f float64) error {
	return out.WriteLong(int64(math.Float64bits(f)))
}

func assert(ok bool) {
	if !ok {
		panic("assert fail")
	}
}

func assert2(ok bool, msg string, args ...interface{}) {
	if !ok {
		panic(fmt.Sprintf(msg, args...))
	}
}
