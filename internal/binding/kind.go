// Package binding builds schema-conforming object graphs whose concrete
// shape is discovered at runtime through capability interfaces.
//
// The package knows nothing about PREMIS. A schema package supplies the
// kind table, an object factory, a type index and a fragment decoder;
// binding turns those into instances (Synthesizer), sets values on them
// (Binder) and links them into a tree (Attacher).
package binding

import (
	"reflect"
	"strings"
)

// Kind names a category of schema element, e.g. "file" or "fixity".
type Kind string

// Capability is a bit set of operations an instance is expected to support.
type Capability uint8

const (
	// CapScalar requires the Scalars interface.
	CapScalar Capability = 1 << iota

	// CapRepeated requires the Repeateds interface.
	CapRepeated
)

// KindSpec describes how to synthesize and validate one element kind.
type KindSpec struct {
	// Kind is the element kind described by this spec.
	Kind Kind

	// Type is the Go type an instance must be assignable to.
	// It may be an interface for abstract kinds.
	Type reflect.Type

	// LocalName is the default XML local name of the element.
	LocalName string

	// Candidates are factory operation names tried in order by the
	// named-candidates strategy.
	Candidates []string

	// Capabilities are checked on every synthesized instance.
	Capabilities Capability
}

// Instance is a node of the schema graph.
type Instance interface {
	Kind() Kind
}

// Supports reports whether inst implements every capability in caps.
func Supports(inst any, caps Capability) bool {
	if caps&CapScalar != 0 {
		if _, ok := inst.(Scalars); !ok {
			return false
		}
	}
	if caps&CapRepeated != 0 {
		if _, ok := inst.(Repeateds); !ok {
			return false
		}
	}
	return true
}

// typeSuffixes are stripped from type names when deriving element names,
// and appended when probing for sibling implementations.
var typeSuffixes = []string{"ComplexType", "Type"}

// siblingSuffixes are the naming conventions for concrete implementations.
var siblingSuffixes = []string{"Impl", "J", "ComplexType", "Type"}

// baseName returns the name of t with pointers removed.
func baseName(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}

// LocalNameFor derives an element local name from a type name by stripping
// a known type suffix and lower-casing the first letter.
func LocalNameFor(t reflect.Type) string {
	name := baseName(t)
	for _, suffix := range typeSuffixes {
		if len(name) > len(suffix) && strings.HasSuffix(name, suffix) {
			name = strings.TrimSuffix(name, suffix)
			break
		}
	}
	if name == "" {
		return ""
	}
	return strings.ToLower(name[:1]) + name[1:]
}
