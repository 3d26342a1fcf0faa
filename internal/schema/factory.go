package schema

import (
	"reflect"
	"sort"

	"github.com/vvka-141/premisgen/internal/binding"
)

// ObjectFactory exposes zero-argument constructors for the binding types.
// The root is created wrapped in an Element, the way a schema compiler
// produces root element factories. Extension content has no factory entry.
type ObjectFactory struct {
	creators map[string]func() any
}

// NewObjectFactory returns the factory of the PREMIS v3 binding.
func NewObjectFactory() *ObjectFactory {
	return &ObjectFactory{creators: map[string]func() any{
		"createPremis":                    func() any { return NewElement("premis", &Premis{}) },
		"createFile":                      func() any { return &File{} },
		"createRepresentation":            func() any { return &Representation{} },
		"createIntellectualEntity":        func() any { return &IntellectualEntity{} },
		"createObjectIdentifier":          func() any { return &ObjectIdentifier{} },
		"createSignificantProperties":     func() any { return &SignificantProperties{} },
		"createObjectCharacteristics":     func() any { return &ObjectCharacteristics{} },
		"createFixity":                    func() any { return &Fixity{} },
		"createFormat":                    func() any { return &Format{} },
		"createFormatDesignation":         func() any { return &FormatDesignation{} },
		"createCreatingApplication":       func() any { return &CreatingApplication{} },
		"createRelationship":              func() any { return &Relationship{} },
		"createRelationshipElement":       func() any { return &RelationshipElement{} },
		"createRelatedObjectIdentifier":   func() any { return &RelatedObjectIdentifier{} },
		"createAgent":                     func() any { return &Agent{} },
		"createAgentIdentifier":           func() any { return &AgentIdentifier{} },
		"createRights":                    func() any { return &Rights{} },
		"createRightsStatement":           func() any { return &RightsStatement{} },
		"createRightsStatementIdentifier": func() any { return &RightsStatementIdentifier{} },
		"createRightsGranted":             func() any { return &RightsGranted{} },
		"createEvent":                     func() any { return &Event{} },
		"createEventIdentifier":           func() any { return &EventIdentifier{} },
		"createLinkingAgentIdentifier":    func() any { return &LinkingAgentIdentifier{} },
		"createLinkingObjectIdentifier":   func() any { return &LinkingObjectIdentifier{} },
		"createStringPlusAuthority":       func() any { return &StringPlusAuthority{} },
	}}
}

// Creators returns the constructors ordered by name.
func (f *ObjectFactory) Creators() []binding.Creator {
	out := make([]binding.Creator, 0, len(f.creators))
	for name, create := range f.creators {
		out = append(out, binding.Creator{Name: name, New: create})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Lookup returns the constructor named name.
func (f *ObjectFactory) Lookup(name string) (func() any, bool) {
	create, ok := f.creators[name]
	return create, ok
}

// TypeIndex resolves binding type names.
type TypeIndex map[string]reflect.Type

// NewTypeIndex indexes every struct type of the binding.
func NewTypeIndex() TypeIndex {
	index := make(TypeIndex)
	for _, t := range []reflect.Type{
		reflect.TypeOf((*Premis)(nil)).Elem(),
		reflect.TypeOf((*File)(nil)).Elem(),
		reflect.TypeOf((*Representation)(nil)).Elem(),
		reflect.TypeOf((*IntellectualEntity)(nil)).Elem(),
		reflect.TypeOf((*ObjectIdentifier)(nil)).Elem(),
		reflect.TypeOf((*SignificantProperties)(nil)).Elem(),
		reflect.TypeOf((*ObjectCharacteristics)(nil)).Elem(),
		reflect.TypeOf((*Fixity)(nil)).Elem(),
		reflect.TypeOf((*Format)(nil)).Elem(),
		reflect.TypeOf((*FormatDesignation)(nil)).Elem(),
		reflect.TypeOf((*CreatingApplication)(nil)).Elem(),
		reflect.TypeOf((*Extension)(nil)).Elem(),
		reflect.TypeOf((*Relationship)(nil)).Elem(),
		reflect.TypeOf((*RelationshipElement)(nil)).Elem(),
		reflect.TypeOf((*RelatedObjectIdentifier)(nil)).Elem(),
		reflect.TypeOf((*Agent)(nil)).Elem(),
		reflect.TypeOf((*AgentIdentifier)(nil)).Elem(),
		reflect.TypeOf((*Rights)(nil)).Elem(),
		reflect.TypeOf((*RightsStatement)(nil)).Elem(),
		reflect.TypeOf((*RightsStatementIdentifier)(nil)).Elem(),
		reflect.TypeOf((*RightsGranted)(nil)).Elem(),
		reflect.TypeOf((*Event)(nil)).Elem(),
		reflect.TypeOf((*EventIdentifier)(nil)).Elem(),
		reflect.TypeOf((*LinkingAgentIdentifier)(nil)).Elem(),
		reflect.TypeOf((*LinkingObjectIdentifier)(nil)).Elem(),
		reflect.TypeOf((*StringPlusAuthority)(nil)).Elem(),
	} {
		index[t.Name()] = t
	}
	return index
}

// LookupType returns the struct type named name.
func (ix TypeIndex) LookupType(name string) (reflect.Type, bool) {
	t, ok := ix[name]
	return t, ok
}
