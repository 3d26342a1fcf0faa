package binding

import (
	"errors"
	"math/big"
	"reflect"
	"sort"
)

// Small hand-written binding used by the tests in this package.

type label struct {
	Text string
}

func (l *label) SetText(s string) { l.Text = s }

type wrapper struct {
	value any
}

func (w wrapper) Unwrap() any { return w.value }

type widget struct {
	Title  *label   `xml:"title"`
	Count  *big.Int `xml:"count"`
	Name   string   `xml:"name,attr"`
	Tags   []string `xml:"tags"`
	Parts  []*part  `xml:"parts"`
	Extras []any    `xml:"extras"`
}

func (*widget) Kind() Kind { return "widget" }

func (w *widget) ScalarProperties() []Scalar {
	return []Scalar{
		ScalarOf("title", &w.Title),
		ScalarOf("count", &w.Count),
		ScalarOf("name", &w.Name),
	}
}

func (w *widget) RepeatedProperties() []Repeated {
	return []Repeated{
		RepeatedOf("tags", &w.Tags),
		RepeatedOf("parts", &w.Parts),
		RepeatedOf("extras", &w.Extras),
	}
}

type part struct {
	ID string `xml:"id,attr"`
}

func (*part) Kind() Kind { return "part" }

func (p *part) ScalarProperties() []Scalar {
	return []Scalar{ScalarOf("id", &p.ID)}
}

// bare has no capabilities at all.
type bare struct{}

func (*bare) Kind() Kind { return "bare" }

// gadgetImpl is only reachable through the sibling strategy.
type gadget interface {
	Instance
	Gadget()
}

type gadgetImpl struct{ part }

func (*gadgetImpl) Kind() Kind { return "gadget" }
func (*gadgetImpl) Gadget()    {}

type fakeFactory struct {
	creators []Creator
	named    map[string]func() any
}

func (f *fakeFactory) Creators() []Creator { return f.creators }

func (f *fakeFactory) Lookup(name string) (func() any, bool) {
	create, ok := f.named[name]
	return create, ok
}

type fakeTypes map[string]reflect.Type

func (ft fakeTypes) LookupType(name string) (reflect.Type, bool) {
	t, ok := ft[name]
	return t, ok
}

type fakeDecoder struct {
	seen []string
	make func(data []byte) (any, error)
}

func (d *fakeDecoder) DecodeFragment(data []byte, _ reflect.Type) (any, error) {
	d.seen = append(d.seen, string(data))
	if d.make == nil {
		return nil, errors.New("cannot decode")
	}
	return d.make(data)
}

var testSpecs = []KindSpec{
	{Kind: "widget", Type: reflect.TypeOf((**widget)(nil)).Elem(), LocalName: "widget", Capabilities: CapScalar | CapRepeated},
	{Kind: "part", Type: reflect.TypeOf((**part)(nil)).Elem(), LocalName: "part", Candidates: []string{"newPart"}, Capabilities: CapScalar},
	{Kind: "gadget", Type: reflect.TypeOf((*gadget)(nil)).Elem(), Capabilities: CapScalar},
	{Kind: "bare", Type: reflect.TypeOf((**bare)(nil)).Elem(), Capabilities: CapScalar},
}

func kinds(specs []KindSpec) []Kind {
	out := make([]Kind, len(specs))
	for i, s := range specs {
		out[i] = s.Kind
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
