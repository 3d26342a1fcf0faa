package binding

import (
	"errors"
	"fmt"

	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// ErrNotAvailable is returned when no strategy produced an instance.
var ErrNotAvailable = errors.New("instance not available")

// Synthesizer produces instances by running a kind's strategy chain.
type Synthesizer struct {
	registry *Registry
	logger   premisgen.Logger
}

// NewSynthesizer creates a synthesizer over registry.
// Panics if registry or logger is nil (programming error).
func NewSynthesizer(registry *Registry, logger premisgen.Logger) *Synthesizer {
	if registry == nil {
		panic("registry cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Synthesizer{registry: registry, logger: logger}
}

// Synthesize returns a new instance of kind. The first strategy whose value
// has the expected type and capabilities wins. When every strategy fails the
// error wraps ErrNotAvailable.
func (s *Synthesizer) Synthesize(kind Kind, localNameHint string) (Instance, error) {
	spec, ok := s.registry.Spec(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q: %w", kind, ErrNotAvailable)
	}

	req := Request{Spec: spec, LocalName: localNameHint}
	for _, strategy := range s.registry.Strategies(kind) {
		inst, err := s.run(strategy, req)
		if err != nil {
			s.logger.Verbose("synthesize %s: %s: %v", kind, strategy.Name, err)
			continue
		}
		s.logger.Verbose("synthesize %s: %s produced %T", kind, strategy.Name, inst)
		return inst, nil
	}
	return nil, fmt.Errorf("%s: %w", kind, ErrNotAvailable)
}

// Decode parses fragment as an instance of kind using the schema's
// fragment decoder, the same path the minimal-document strategy uses.
func (s *Synthesizer) Decode(kind Kind, fragment []byte) (Instance, error) {
	spec, ok := s.registry.Spec(kind)
	if !ok {
		return nil, fmt.Errorf("unknown kind %q: %w", kind, ErrNotAvailable)
	}
	v, err := s.registry.decode(spec, fragment)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", kind, err)
	}
	return s.check(spec, v)
}

func (s *Synthesizer) run(strategy Strategy, req Request) (inst Instance, err error) {
	defer func() {
		if r := recover(); r != nil {
			inst, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	if strategy.Build == nil {
		return nil, errNoMatch
	}
	v, err := strategy.Build(req)
	if err != nil {
		return nil, err
	}
	return s.check(req.Spec, v)
}

func (s *Synthesizer) check(spec KindSpec, v any) (Instance, error) {
	if v == nil {
		return nil, fmt.Errorf("nil value: %w", errNoMatch)
	}
	if spec.Type != nil {
		accepted, ok := accept(v, spec.Type)
		if !ok {
			return nil, fmt.Errorf("%T is not assignable to %v: %w", v, spec.Type, errNoMatch)
		}
		v = accepted
	}
	inst, ok := v.(Instance)
	if !ok {
		return nil, fmt.Errorf("%T is not an instance: %w", v, errNoMatch)
	}
	if !Supports(inst, spec.Capabilities) {
		return nil, fmt.Errorf("%T lacks required capabilities: %w", v, errNoMatch)
	}
	return inst, nil
}
