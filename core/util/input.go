package util

import (
	"math"
)

/*
Performs read operations of the low-level data types used by weight
serialization.

DataInput may only be used from one goroutine, because it is not
thread safe (it keeps internal state like the read position).
*/
type DataInput interface {
	ReadByte() (b byte, err error)
	ReadBytes(buf []byte) error
	ReadInt() (n int32, err error)
	ReadLong() (n int64, err error)
	ReadDouble() (f float64, err error)
}

type DataReader interface {
	/* Reads and returns a single byte.	*/
	ReadByte() (b byte, err error)
	/* Reads a specified number of bytes into an array */
	ReadBytes(buf []byte) error
}

type DataInputImpl struct {
	Reader DataReader
}

func NewDataInput(spi DataReader) *DataInputImpl {
	assert2(spi != nil, "DataInput requires a reader")
	return &DataInputImpl{Reader: spi}
}

func (in *DataInputImpl) ReadByte() (byte, error) {
	return in.Reader.ReadByte()
}

func (in *DataInputImpl) ReadBytes(buf []byte) error {
	return in.Reader.ReadBytes(buf)
}

func (in *DataInputImpl) ReadInt() (n int32, err error) {
	var buf [4]byte
	if err = in.Reader.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	return (int32(buf[0]) << 24) | (int32(buf[1]) << 16) |
		(int32(buf[2]) << 8) | int32(buf[3]), nil
}

func (in *DataInputImpl) ReadLong() (n int64, err error) {
	var buf [8]byte
	if err = in.Reader.ReadBytes(buf[:]); err != nil {
		return 0, err
	}
	for _, b := range buf {
		n = (n << 8) | int64(b)
	}
	return n, nil
}

// Reads a double written by DataOutput.WriteDouble().
func (in *DataInputImpl) ReadDouble() (f float64, err error) {
	bits, err := in.ReadLong()
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(uint64(bits)), nil
}
