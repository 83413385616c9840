/*
Package remote packs configured weighting schemes for shipment to the
nodes evaluating a distributed query.

An envelope carries the scheme name, its serialized parameters and a
keyed BLAKE3 fingerprint of both. The receiving node rebuilds the
scheme through the weight registry and refuses an envelope whose
fingerprint does not match, so every shard scores with exactly the
configuration the coordinator sent.
*/
package remote

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/op/go-logging"
	"github.com/zeebo/blake3"

	"github.com/balzaczyy/goweight/core/search/weight"
)

var log = logging.MustGetLogger("remote")

const EnvelopeVersion = 1

var ErrFingerprintMismatch = errors.New("remote: scheme fingerprint mismatch")

// Fingerprint is a 32-byte keyed BLAKE3 digest of a scheme name and
// its serialized parameters.
type Fingerprint [32]byte

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Domain separation key: "goweight.remote.scheme", zero-padded.
var fingerprintKey = [32]byte{
	'g', 'o', 'w', 'e', 'i', 'g', 'h', 't', '.', 'r', 'e', 'm', 'o', 't', 'e', '.',
	's', 'c', 'h', 'e', 'm', 'e', 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Computes the fingerprint of a serialized scheme. The name and the
// parameters are separated by a zero byte, which no scheme name holds.
func FingerprintOf(name string, params []byte) Fingerprint {
	hasher, err := blake3.NewKeyed(fingerprintKey[:])
	if err != nil {
		panic("remote: BLAKE3 keyed hash initialization failed: " + err.Error())
	}
	hasher.Write([]byte(name))
	hasher.Write([]byte{0})
	hasher.Write(params)
	var ans Fingerprint
	hasher.Sum(ans[:0])
	return ans
}

// Envelope is the wire form of a configured scheme.
type Envelope struct {
	Version     uint   `cbor:"1,keyasint"`
	Scheme      string `cbor:"2,keyasint"`
	Params      []byte `cbor:"3,keyasint"`
	Fingerprint []byte `cbor:"4,keyasint"`
}

// Core Deterministic Encoding: the same scheme always produces the same
// envelope bytes.
var encMode cbor.EncMode

// Unknown fields and trailing data are errors.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("remote: CBOR encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{
		ExtraReturnErrors: cbor.ExtraDecErrorUnknownField,
	}.DecMode()
	if err != nil {
		panic("remote: CBOR decoder initialization failed: " + err.Error())
	}
}

func NewEnvelope(w weight.Weight) *Envelope {
	params := w.Serialize()
	fp := FingerprintOf(w.Name(), params)
	return &Envelope{
		Version:     EnvelopeVersion,
		Scheme:      w.Name(),
		Params:      params,
		Fingerprint: fp[:],
	}
}

// Encodes w into envelope bytes.
func Pack(w weight.Weight) ([]byte, error) {
	data, err := encMode.Marshal(NewEnvelope(w))
	if err != nil {
		return nil, fmt.Errorf("remote: encoding %v: %w", w.Name(), err)
	}
	return data, nil
}

// Decodes envelope bytes and rebuilds the scheme they carry.
func Unpack(data []byte) (weight.Weight, error) {
	var env Envelope
	if err := decMode.Unmarshal(data, &env); err != nil {
		return nil, &weight.SerializationError{Msg: "remote: malformed envelope", Err: err}
	}
	return env.Open()
}

// Verifies the envelope and rebuilds the scheme it carries.
func (env *Envelope) Open() (weight.Weight, error) {
	if env.Version != EnvelopeVersion {
		return nil, &weight.SerializationError{
			Msg: fmt.Sprintf("remote: unsupported envelope version %v", env.Version)}
	}
	want := FingerprintOf(env.Scheme, env.Params)
	if !bytes.Equal(want[:], env.Fingerprint) {
		log.Warningf("Fingerprint mismatch for %v: got %x, want %v", env.Scheme, env.Fingerprint, want)
		return nil, ErrFingerprintMismatch
	}
	w, err := weight.DeserializeWeight(env.Scheme, env.Params)
	if err != nil {
		return nil, fmt.Errorf("remote: opening %v: %w", env.Scheme, err)
	}
	log.Debugf("Opened %v (%v)", env.Scheme, want)
	return w, nil
}
