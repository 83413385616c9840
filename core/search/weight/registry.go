package weight

import (
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/op/go-logging"
)

var log = logging.MustGetLogger("weight")

var (
	registryLock sync.RWMutex
	allWeights   = make(map[string]Weight) // by full and short name
	metrics      atomic.Pointer[Metrics]
)

func init() {
	RegisterWeight(NewTfIdfWeight())
}

// Routes registry counters to m. Pass nil to stop recording.
func SetMetrics(m *Metrics) {
	metrics.Store(m)
}

// Registers prototypes under both their full and short names. A later
// registration under the same name replaces the earlier one.
func RegisterWeight(weights ...Weight) {
	registryLock.Lock()
	defer registryLock.Unlock()
	for _, w := range weights {
		log.Debugf("Found weighting scheme: %v (%v)", w.Name(), w.ShortName())
		allWeights[w.Name()] = w
		allWeights[w.ShortName()] = w
	}
}

func lookup(name string) (Weight, error) {
	registryLock.RLock()
	w, ok := allWeights[name]
	registryLock.RUnlock()
	if !ok {
		log.Warningf("Unknown weighting scheme: %v, available: %v", name, AvailableWeights())
		metrics.Load().IncErrors(name, ErrorUnknownScheme)
		return nil, &UnknownWeightError{name}
	}
	return w, nil
}

// Looks up a scheme by full or short name and returns a fresh clone of
// the registered prototype.
func LoadWeight(name string) (Weight, error) {
	w, err := lookup(name)
	if err != nil {
		return nil, err
	}
	metrics.Load().IncCreated(w.ShortName(), SourceLoad)
	return w.Clone(), nil
}

// Builds the named scheme from a parameter string, as accepted by the
// scheme's CreateFromParameters().
func CreateWeight(name, params string) (Weight, error) {
	proto, err := lookup(name)
	if err != nil {
		return nil, err
	}
	w, err := proto.CreateFromParameters(params)
	if err != nil {
		recordError(proto.ShortName(), err)
		return nil, err
	}
	metrics.Load().IncCreated(w.ShortName(), SourceParameters)
	return w, nil
}

// Builds the named scheme from serialized parameters, as received from
// another node.
func DeserializeWeight(name string, data []byte) (Weight, error) {
	proto, err := lookup(name)
	if err != nil {
		return nil, err
	}
	w, err := proto.Deserialize(data)
	if err != nil {
		log.Warningf("Cannot deserialize %v: %v", name, err)
		recordError(proto.ShortName(), err)
		return nil, err
	}
	metrics.Load().IncCreated(w.ShortName(), SourceDeserialize)
	return w, nil
}

func recordError(scheme string, err error) {
	var invalid *InvalidArgumentError
	var serial *SerializationError
	switch {
	case errors.As(err, &invalid):
		metrics.Load().IncErrors(scheme, ErrorInvalidArgument)
	case errors.As(err, &serial):
		metrics.Load().IncErrors(scheme, ErrorSerialization)
	}
}

// Returns the full names of all registered schemes, sorted.
func AvailableWeights() []string {
	registryLock.RLock()
	defer registryLock.RUnlock()
	seen := make(map[string]bool)
	for _, w := range allWeights {
		seen[w.Name()] = true
	}
	ans := make([]string, 0, len(seen))
	for name := range seen {
		ans = append(ans, name)
	}
	sort.Strings(ans)
	return ans
}
