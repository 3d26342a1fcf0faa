package schema

import (
	"encoding/xml"

	"github.com/vvka-141/premisgen/internal/binding"
)

// Premis is the root of a record.
type Premis struct {
	XMLName xml.Name   `xml:"premis"`
	Version string     `xml:"version,attr,omitempty"`
	Object  ObjectList `xml:"object"`
	Event   []*Event   `xml:"event"`
	Agent   []*Agent   `xml:"agent"`
	Rights  []*Rights  `xml:"rights"`
}

func (*Premis) Kind() binding.Kind { return KindPremis }

func (p *Premis) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("version", &p.Version)}
}

func (p *Premis) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("object", (*[]ObjectVariant)(&p.Object)),
		binding.RepeatedOf("event", &p.Event),
		binding.RepeatedOf("agent", &p.Agent),
		binding.RepeatedOf("rights", &p.Rights),
	}
}

// Objects returns the objects of the given xsi:type, in document order.
func (p *Premis) Objects(xsiType string) []ObjectVariant {
	var out []ObjectVariant
	for _, obj := range p.Object {
		if obj != nil && obj.XSIType() == xsiType {
			out = append(out, obj)
		}
	}
	return out
}

// Files returns the file objects of the record.
func (p *Premis) Files() []*File {
	var out []*File
	for _, obj := range p.Object {
		if f, ok := obj.(*File); ok {
			out = append(out, f)
		}
	}
	return out
}

// IntellectualEntity returns the first intellectual entity, or nil.
func (p *Premis) IntellectualEntity() *IntellectualEntity {
	for _, obj := range p.Object {
		if ie, ok := obj.(*IntellectualEntity); ok {
			return ie
		}
	}
	return nil
}
