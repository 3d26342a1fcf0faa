package binding

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Request is the input handed to every strategy.
type Request struct {
	Spec      KindSpec
	LocalName string
}

// Strategy is one named recipe for producing a value for a kind.
// Strategies hold no state; the returned value is checked by the caller.
type Strategy struct {
	Name  string
	Build func(req Request) (any, error)
}

// Creator is a zero-argument factory operation.
type Creator struct {
	Name string
	New  func() any
}

// Factory is the object factory collaborator of a schema binding.
type Factory interface {
	// Creators returns every zero-argument operation in a stable order.
	Creators() []Creator

	// Lookup returns the operation with the given name.
	Lookup(name string) (func() any, bool)
}

// TypeIndex resolves Go type names declared by a schema binding.
type TypeIndex interface {
	LookupType(name string) (reflect.Type, bool)
}

// FragmentDecoder parses a single-element document into a value of target.
type FragmentDecoder interface {
	DecodeFragment(data []byte, target reflect.Type) (any, error)
}

// Collaborators bundles what a schema binding provides to the registry.
// Any field may be nil; the strategies depending on it then always fail.
type Collaborators struct {
	Factory   Factory
	Types     TypeIndex
	Decoder   FragmentDecoder
	Namespace string
}

// Strategy names, in priority order.
const (
	StrategyFactoryProbe    = "factory-probe"
	StrategyNamedCandidates = "named-candidates"
	StrategyDefault         = "default-construction"
	StrategySibling         = "sibling-implementation"
	StrategyMinimalDocument = "minimal-document"
)

var errNoMatch = errors.New("no matching value")

// Registry maps each kind to its ordered strategy chain.
type Registry struct {
	specs  map[Kind]KindSpec
	chains map[Kind][]Strategy
	collab Collaborators
}

// NewRegistry builds the default five-strategy chain for every spec.
func NewRegistry(specs []KindSpec, collab Collaborators) *Registry {
	r := &Registry{
		specs:  make(map[Kind]KindSpec, len(specs)),
		chains: make(map[Kind][]Strategy, len(specs)),
		collab: collab,
	}
	for _, spec := range specs {
		r.specs[spec.Kind] = spec
		r.chains[spec.Kind] = r.defaultChain()
	}
	return r
}

func (r *Registry) defaultChain() []Strategy {
	return []Strategy{
		{Name: StrategyFactoryProbe, Build: r.factoryProbe},
		{Name: StrategyNamedCandidates, Build: r.namedCandidates},
		{Name: StrategyDefault, Build: defaultConstruction},
		{Name: StrategySibling, Build: r.siblingImplementation},
		{Name: StrategyMinimalDocument, Build: r.minimalDocument},
	}
}

// WithStrategies replaces the chain for kind. Unknown kinds are ignored.
func (r *Registry) WithStrategies(kind Kind, strategies ...Strategy) *Registry {
	if _, ok := r.specs[kind]; ok {
		r.chains[kind] = append([]Strategy(nil), strategies...)
	}
	return r
}

// Spec returns the spec registered for kind.
func (r *Registry) Spec(kind Kind) (KindSpec, bool) {
	spec, ok := r.specs[kind]
	return spec, ok
}

// Specs returns all registered specs ordered by kind.
func (r *Registry) Specs() []KindSpec {
	specs := make([]KindSpec, 0, len(r.specs))
	for _, spec := range r.specs {
		specs = append(specs, spec)
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Kind < specs[j].Kind })
	return specs
}

// Strategies returns the chain for kind in priority order.
func (r *Registry) Strategies(kind Kind) []Strategy {
	return r.chains[kind]
}

// accept returns v, or the value v wraps, when it is assignable to t.
func accept(v any, t reflect.Type) (any, bool) {
	if v == nil || t == nil {
		return nil, false
	}
	if reflect.TypeOf(v).AssignableTo(t) {
		return v, true
	}
	if u, ok := v.(Unwrapper); ok {
		inner := u.Unwrap()
		if inner != nil && reflect.TypeOf(inner).AssignableTo(t) {
			return inner, true
		}
	}
	return nil, false
}

func (r *Registry) factoryProbe(req Request) (any, error) {
	if r.collab.Factory == nil {
		return nil, fmt.Errorf("no factory: %w", errNoMatch)
	}
	for _, c := range r.collab.Factory.Creators() {
		if !strings.HasPrefix(c.Name, "create") {
			continue
		}
		if v, ok := accept(c.New(), req.Spec.Type); ok {
			return v, nil
		}
	}
	return nil, errNoMatch
}

func (r *Registry) namedCandidates(req Request) (any, error) {
	if r.collab.Factory == nil {
		return nil, fmt.Errorf("no factory: %w", errNoMatch)
	}
	for _, name := range req.Spec.Candidates {
		create, ok := r.collab.Factory.Lookup(name)
		if !ok {
			continue
		}
		if v, ok := accept(create(), req.Spec.Type); ok {
			return v, nil
		}
	}
	return nil, errNoMatch
}

func defaultConstruction(req Request) (any, error) {
	t := req.Spec.Type
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("%v is not a pointer to a struct: %w", t, errNoMatch)
	}
	return reflect.New(t.Elem()).Interface(), nil
}

func (r *Registry) siblingImplementation(req Request) (any, error) {
	if r.collab.Types == nil || req.Spec.Type == nil {
		return nil, fmt.Errorf("no type index: %w", errNoMatch)
	}
	base := baseName(req.Spec.Type)
	for _, suffix := range typeSuffixes {
		base = strings.TrimSuffix(base, suffix)
	}
	for _, suffix := range siblingSuffixes {
		impl, ok := r.collab.Types.LookupType(base + suffix)
		if !ok || impl.Kind() != reflect.Struct {
			continue
		}
		if v, ok := accept(reflect.New(impl).Interface(), req.Spec.Type); ok {
			return v, nil
		}
	}
	return nil, errNoMatch
}

func (r *Registry) minimalDocument(req Request) (any, error) {
	name := req.LocalName
	if name == "" {
		name = req.Spec.LocalName
	}
	if name == "" && req.Spec.Type != nil {
		name = LocalNameFor(req.Spec.Type)
	}
	return r.decode(req.Spec, MinimalDocument(name, r.collab.Namespace))
}

func (r *Registry) decode(spec KindSpec, fragment []byte) (any, error) {
	if r.collab.Decoder == nil {
		return nil, fmt.Errorf("no decoder: %w", errNoMatch)
	}
	v, err := r.collab.Decoder.DecodeFragment(fragment, spec.Type)
	if err != nil {
		return nil, err
	}
	if v, ok := accept(v, spec.Type); ok {
		return v, nil
	}
	return nil, fmt.Errorf("decoded %T: %w", v, errNoMatch)
}

// MinimalDocument renders an empty element in namespace ns.
func MinimalDocument(localName, ns string) []byte {
	if ns == "" {
		return []byte("<" + localName + "/>")
	}
	return []byte("<" + localName + ` xmlns="` + ns + `"/>`)
}
