package binding

import (
	"math/big"
	"reflect"
)

// Scalar is a settable single-valued property.
type Scalar struct {
	Name  string
	Param reflect.Type
	Set   func(v any)
	Get   func() any
}

// Repeated is an appendable multi-valued property.
// Elem equal to the empty interface means the element type is not
// statically known.
type Repeated struct {
	Name   string
	Elem   reflect.Type
	Append func(v any)
	Items  func() []any
}

// Scalars is implemented by instances exposing scalar properties.
type Scalars interface {
	ScalarProperties() []Scalar
}

// Repeateds is implemented by instances exposing repeated properties.
type Repeateds interface {
	RepeatedProperties() []Repeated
}

// Unwrapper is implemented by one-level wrappers around a value.
type Unwrapper interface {
	Unwrap() any
}

// TextBox is implemented by pointer types that can hold boxed text.
type TextBox interface {
	SetText(s string)
}

var (
	anyType     = reflect.TypeOf((*any)(nil)).Elem()
	stringType  = reflect.TypeOf((*string)(nil)).Elem()
	bigIntType  = reflect.TypeOf((**big.Int)(nil)).Elem()
	textBoxType = reflect.TypeOf((*TextBox)(nil)).Elem()
)

// Untyped reports whether t is the "not statically known" element type.
func Untyped(t reflect.Type) bool {
	return t == nil || t == anyType
}

// ScalarOf exposes dst as a scalar property named name.
func ScalarOf[T any](name string, dst *T) Scalar {
	return Scalar{
		Name:  name,
		Param: reflect.TypeOf((*T)(nil)).Elem(),
		Set:   func(v any) { *dst = v.(T) },
		Get:   func() any { return *dst },
	}
}

// RepeatedOf exposes dst as a repeated property named name.
func RepeatedOf[T any](name string, dst *[]T) Repeated {
	return Repeated{
		Name:   name,
		Elem:   reflect.TypeOf((*T)(nil)).Elem(),
		Append: func(v any) { *dst = append(*dst, v.(T)) },
		Items: func() []any {
			items := make([]any, len(*dst))
			for i, item := range *dst {
				items[i] = item
			}
			return items
		},
	}
}

func scalarsOf(inst any) []Scalar {
	if s, ok := inst.(Scalars); ok {
		return s.ScalarProperties()
	}
	return nil
}

func repeatedsOf(inst any) []Repeated {
	if r, ok := inst.(Repeateds); ok {
		return r.RepeatedProperties()
	}
	return nil
}

// isUnset reports whether a scalar currently holds no value.
func isUnset(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map:
		return rv.IsNil()
	}
	return rv.IsZero()
}
