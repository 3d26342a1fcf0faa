// Package schema holds the PREMIS v3 binding: element types with their
// capability tables, the object factory, the kind table and the fragment
// decoder used by the binding package.
package schema

import (
	"encoding/xml"
	"strings"

	"github.com/vvka-141/premisgen/internal/binding"
)

// StringPlusAuthority is a controlled-vocabulary string with optional
// authority attributes.
type StringPlusAuthority struct {
	Value        string `xml:",chardata"`
	Authority    string `xml:"authority,attr,omitempty"`
	AuthorityURI string `xml:"authorityURI,attr,omitempty"`
	ValueURI     string `xml:"valueURI,attr,omitempty"`
}

// SetText stores s as the boxed value.
func (s *StringPlusAuthority) SetText(text string) { s.Value = text }

// String returns the boxed value.
func (s *StringPlusAuthority) String() string {
	if s == nil {
		return ""
	}
	return s.Value
}

// Text boxes a plain string.
func Text(s string) *StringPlusAuthority {
	return &StringPlusAuthority{Value: s}
}

// Element is a named value, one wrapper level deep.
type Element[T any] struct {
	Name  string
	Value T
}

// NewElement wraps value under the given local name.
func NewElement[T any](name string, value T) Element[T] {
	return Element[T]{Name: name, Value: value}
}

// Unwrap returns the wrapped value.
func (e Element[T]) Unwrap() any { return e.Value }

// MarshalXML encodes the value under the element's own name.
func (e Element[T]) MarshalXML(enc *xml.Encoder, _ xml.StartElement) error {
	return enc.EncodeElement(e.Value, xml.StartElement{Name: xml.Name{Local: e.Name}})
}

// Extension carries arbitrary content, e.g. a receivingDate element.
type Extension struct {
	Any []any
}

func (*Extension) Kind() binding.Kind { return KindExtension }

func (e *Extension) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{binding.RepeatedOf("any", &e.Any)}
}

// MarshalXML writes each item as a child of start.
func (e *Extension) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	if err := enc.EncodeToken(start); err != nil {
		return err
	}
	for _, item := range e.Any {
		if err := enc.Encode(item); err != nil {
			return err
		}
	}
	return enc.EncodeToken(start.End())
}

// UnmarshalXML reads simple child elements back as Element[string].
func (e *Extension) UnmarshalXML(dec *xml.Decoder, _ xml.StartElement) error {
	for {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			var text string
			if err := dec.DecodeElement(&text, &t); err != nil {
				return err
			}
			e.Any = append(e.Any, NewElement(t.Name.Local, strings.TrimSpace(text)))
		case xml.EndElement:
			return nil
		}
	}
}
