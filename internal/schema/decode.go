package schema

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"
)

// Decoder parses single-element XML fragments into binding types.
type Decoder struct{}

// DecodeFragment decodes data into a new value of target. Interface
// targets are resolved from the xsi:type attribute of the element.
func (Decoder) DecodeFragment(data []byte, target reflect.Type) (any, error) {
	if target == nil {
		return nil, errors.New("decode fragment: nil target type")
	}

	if target.Kind() == reflect.Pointer && target.Elem().Kind() == reflect.Struct {
		v := reflect.New(target.Elem())
		if err := xml.Unmarshal(data, v.Interface()); err != nil {
			return nil, fmt.Errorf("decode %s fragment: %w", target.Elem().Name(), err)
		}
		return v.Interface(), nil
	}

	if target.Kind() != reflect.Interface {
		return nil, fmt.Errorf("decode fragment: unsupported target %v", target)
	}

	dec := xml.NewDecoder(bytes.NewReader(data))
	start, err := firstStart(dec)
	if err != nil {
		return nil, fmt.Errorf("decode fragment: %w", err)
	}
	obj, ok := NewObject(xsiType(start))
	if !ok {
		return nil, fmt.Errorf("decode fragment: element %q has no known xsi:type", start.Name.Local)
	}
	if !reflect.TypeOf(obj).AssignableTo(target) {
		return nil, fmt.Errorf("decode fragment: %T is not a %v", obj, target)
	}
	if err := dec.DecodeElement(obj, &start); err != nil {
		return nil, fmt.Errorf("decode %s fragment: %w", obj.XSIType(), err)
	}
	return obj, nil
}

func firstStart(dec *xml.Decoder) (xml.StartElement, error) {
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return xml.StartElement{}, errors.New("empty fragment")
		}
		if err != nil {
			return xml.StartElement{}, err
		}
		if start, ok := tok.(xml.StartElement); ok {
			return start, nil
		}
	}
}

func xsiType(start xml.StartElement) string {
	for _, attr := range start.Attr {
		if attr.Name.Local == "type" {
			_, local, found := strings.Cut(attr.Value, ":")
			if !found {
				return attr.Value
			}
			return local
		}
	}
	return ""
}
