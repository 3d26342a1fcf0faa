package binding

import (
	"reflect"
	"strings"
)

// Edge is a (parent kind, child kind) pair.
type Edge struct {
	Parent Kind
	Child  Kind
}

// AttachmentTable maps an edge to the parent property holding the child.
type AttachmentTable map[Edge]string

// Lookup returns the property for the edge parent -> child.
func (t AttachmentTable) Lookup(parent, child Kind) (string, bool) {
	prop, ok := t[Edge{Parent: parent, Child: child}]
	return prop, ok
}

// BuildAttachmentTable derives edges from the xml field tags of every
// concrete kind. A field whose type (or slice element type) accepts the Go
// type of another concrete kind becomes an edge named after the tag.
func BuildAttachmentTable(specs []KindSpec) AttachmentTable {
	table := make(AttachmentTable)
	for _, parent := range specs {
		st := structOf(parent.Type)
		if st == nil {
			continue
		}
		for i := 0; i < st.NumField(); i++ {
			field := st.Field(i)
			name := elementName(field)
			if name == "" {
				continue
			}
			holds := field.Type
			if holds.Kind() == reflect.Slice {
				holds = holds.Elem()
			}
			if Untyped(holds) {
				continue
			}
			for _, child := range specs {
				if structOf(child.Type) == nil || !child.Type.AssignableTo(holds) {
					continue
				}
				edge := Edge{Parent: parent.Kind, Child: child.Kind}
				if _, exists := table[edge]; !exists {
					table[edge] = name
				}
			}
		}
	}
	return table
}

// structOf returns the struct type behind a pointer-to-struct, or nil.
func structOf(t reflect.Type) reflect.Type {
	if t == nil || t.Kind() != reflect.Pointer || t.Elem().Kind() != reflect.Struct {
		return nil
	}
	return t.Elem()
}

// elementName returns the child element name of an xml-tagged field.
func elementName(f reflect.StructField) string {
	if !f.IsExported() || f.Name == "XMLName" {
		return ""
	}
	tag, ok := f.Tag.Lookup("xml")
	if !ok || tag == "-" {
		return ""
	}
	name, opts, _ := strings.Cut(tag, ",")
	if strings.Contains(opts, "attr") || strings.Contains(opts, "chardata") || strings.Contains(opts, "innerxml") {
		return ""
	}
	if i := strings.LastIndex(name, " "); i >= 0 {
		name = name[i+1:]
	}
	if strings.Contains(name, ">") {
		return ""
	}
	return name
}
