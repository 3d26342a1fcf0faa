package binding

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// Binder sets property values using set-or-append semantics.
type Binder struct {
	logger premisgen.Logger
}

// NewBinder creates a binder.
// Panics if logger is nil (programming error).
func NewBinder(logger premisgen.Logger) *Binder {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Binder{logger: logger}
}

// Bind applies value to the property of inst named property.
//
// A scalar property with a matching name (case-insensitive) is set when the
// value can be adapted to its parameter type. Otherwise a repeated property
// of the same name receives the value appended. The value is adapted before
// anything is mutated, so a failed Bind leaves inst unchanged.
func (b *Binder) Bind(inst Instance, property string, value any) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Verbose("bind %s.%s: recovered: %v", kindOf(inst), property, r)
			ok = false
		}
	}()

	if inst == nil || value == nil {
		return false
	}

	if s, found := findScalar(inst, property); found {
		if v, adapted := Adapt(value, s.Param); adapted {
			s.Set(v)
			return true
		}
		b.logger.Verbose("bind %s.%s: cannot adapt %T to %v", inst.Kind(), property, value, s.Param)
	}

	if r, found := findRepeated(inst, property); found {
		v := value
		if !Untyped(r.Elem) {
			adapted, ok := Adapt(value, r.Elem)
			if !ok {
				b.logger.Verbose("bind %s.%s: cannot adapt %T to %v", inst.Kind(), property, value, r.Elem)
				return false
			}
			v = adapted
		}
		r.Append(v)
		return true
	}

	b.logger.Verbose("bind %s.%s: no property accepts %T", inst.Kind(), property, value)
	return false
}

func kindOf(inst Instance) Kind {
	if inst == nil {
		return ""
	}
	return inst.Kind()
}

func findScalar(inst any, name string) (Scalar, bool) {
	for _, s := range scalarsOf(inst) {
		if strings.EqualFold(s.Name, name) {
			return s, true
		}
	}
	return Scalar{}, false
}

func findRepeated(inst any, name string) (Repeated, bool) {
	for _, r := range repeatedsOf(inst) {
		if strings.EqualFold(r.Name, name) {
			return r, true
		}
	}
	return Repeated{}, false
}

// Adapt converts value to target. The rules are tried in order:
// direct assignment, integer widening or decimal parsing into *big.Int,
// stringification, unwrapping one wrapper level, and boxing a string into
// a TextBox pointer type.
func Adapt(value any, target reflect.Type) (any, bool) {
	if value == nil || target == nil {
		return nil, false
	}

	if reflect.TypeOf(value).AssignableTo(target) {
		return value, true
	}

	if target == bigIntType {
		if n, ok := toBigInt(value); ok {
			return n, true
		}
	}

	if target == stringType {
		if s, ok := stringify(value); ok {
			return s, true
		}
	}

	if u, ok := value.(Unwrapper); ok {
		inner := u.Unwrap()
		if inner != nil && reflect.TypeOf(inner).AssignableTo(target) {
			return inner, true
		}
	}

	if target.Kind() == reflect.Pointer && target.Implements(textBoxType) {
		if s, ok := stringify(value); ok {
			box := reflect.New(target.Elem())
			box.Interface().(TextBox).SetText(s)
			return box.Interface(), true
		}
	}

	return nil, false
}

func toBigInt(value any) (*big.Int, bool) {
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return big.NewInt(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return new(big.Int).SetUint64(rv.Uint()), true
	}

	switch v := value.(type) {
	case big.Int:
		return new(big.Int).Set(&v), true
	case string:
		return new(big.Int).SetString(strings.TrimSpace(v), 10)
	}
	return nil, false
}

func stringify(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *big.Int:
		if v == nil {
			return "", false
		}
		return v.String(), true
	case fmt.Stringer:
		return v.String(), true
	case bool:
		return strconv.FormatBool(v), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.String:
		return rv.String(), true
	}
	return "", false
}
