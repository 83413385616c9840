package weight

import (
	"github.com/balzaczyy/goweight/core/store"
)

/*
Serialized layout of TfIdfWeight:

	| slope (8) | delta (8) | wdf (1) | idf (1) | wt (1) |

Doubles are IEEE-754 bit patterns, high-order bytes first. The variant
bytes are the WdfNorm, IdfNorm and WtNorm values.
*/
const tfIdfSerializedSize = 8 + 8 + 3

func (w *TfIdfWeight) Serialize() []byte {
	out := store.NewByteArrayDataOutput(tfIdfSerializedSize)
	// ByteArrayDataOutput never fails
	out.WriteDouble(w.slope)
	out.WriteDouble(w.delta)
	out.WriteByte(byte(w.wdfNorm))
	out.WriteByte(byte(w.idfNorm))
	out.WriteByte(byte(w.wtNorm))
	assertTrue(out.Position() == tfIdfSerializedSize)
	return out.Bytes()
}

func (w *TfIdfWeight) Deserialize(data []byte) (Weight, error) {
	ans, err := DeserializeTfIdfWeight(data)
	if err != nil {
		return nil, err
	}
	return ans, nil
}

// Reverses TfIdfWeight.Serialize(). Decoded parameters are validated
// as on construction.
func DeserializeTfIdfWeight(data []byte) (*TfIdfWeight, error) {
	in := store.NewByteArrayDataInput(data)
	slope, err := in.ReadDouble()
	if err != nil {
		return nil, &SerializationError{"Bad slope in TfIdfWeight.Deserialize()", err}
	}
	delta, err := in.ReadDouble()
	if err != nil {
		return nil, &SerializationError{"Bad delta in TfIdfWeight.Deserialize()", err}
	}
	var tags [3]byte
	if err = in.ReadBytes(tags[:]); err != nil {
		return nil, &SerializationError{"Bad normalizations in TfIdfWeight.Deserialize()", err}
	}
	if !in.EOF() {
		return nil, &SerializationError{Msg: "Extra data in TfIdfWeight.Deserialize()"}
	}
	wdf, idf, wt := WdfNorm(tags[0]), IdfNorm(tags[1]), WtNorm(tags[2])
	if !wdf.Valid() || !idf.Valid() || !wt.Valid() {
		return nil, &SerializationError{Msg: "Unknown normalization in TfIdfWeight.Deserialize()"}
	}
	return NewTfIdfWeightFromNormsWithParams(wdf, idf, wt, slope, delta)
}
