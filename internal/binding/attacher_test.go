package binding

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/premisgen/internal/logging"
)

func newTestAttacher(table AttachmentTable) *Attacher {
	return NewAttacher(table, logging.NewNullLogger())
}

func TestAttach_UsesTableFirst(t *testing.T) {
	table := AttachmentTable{{Parent: "widget", Child: "part"}: "extras"}
	a := newTestAttacher(table)
	w := &widget{}
	p := &part{}

	require.True(t, a.Attach(w, p))
	assert.Empty(t, w.Parts)
	assert.Equal(t, []any{p}, w.Extras)
}

func TestAttach_DeclaredTypeWithoutTable(t *testing.T) {
	a := newTestAttacher(nil)
	w := &widget{}
	p := &part{}

	require.True(t, a.Attach(w, p))
	assert.Equal(t, []*part{p}, w.Parts)

	parent, ok := a.Parent(p)
	require.True(t, ok)
	assert.Same(t, w, parent)
}

func TestAttach_NeverDoubleInserts(t *testing.T) {
	a := newTestAttacher(nil)
	w := &widget{}
	p := &part{}

	require.True(t, a.Attach(w, p))
	assert.False(t, a.Attach(w, p))
	assert.Len(t, w.Parts, 1)
}

func TestAttach_NeverTwoParents(t *testing.T) {
	a := newTestAttacher(nil)
	first, second := &widget{}, &widget{}
	p := &part{}

	require.True(t, a.Attach(first, p))
	assert.False(t, a.Attach(second, p))
	assert.Empty(t, second.Parts)
}

func TestAttach_RejectsSelfAndNil(t *testing.T) {
	a := newTestAttacher(nil)
	w := &widget{}

	assert.False(t, a.Attach(w, w))
	assert.False(t, a.Attach(nil, w))
	assert.False(t, a.Attach(w, nil))
}

func TestAttach_RejectsChildAlreadyHeld(t *testing.T) {
	a := newTestAttacher(nil)
	p := &part{}
	w := &widget{Parts: []*part{p}}

	assert.False(t, a.Attach(w, p))
	assert.Len(t, w.Parts, 1)
}

func TestAttach_FailsWhenNothingFits(t *testing.T) {
	a := newTestAttacher(nil)
	p := &part{}

	assert.False(t, a.Attach(p, &widget{}))
}

func TestAttach_TableScalarOnlyWhenUnset(t *testing.T) {
	table := AttachmentTable{{Parent: "holder", Child: "part"}: "main"}
	a := newTestAttacher(table)
	h := &holder{}

	first, second := &part{ID: "1"}, &part{ID: "2"}
	require.True(t, a.Attach(h, first))
	assert.False(t, a.Attach(h, second))
	assert.Same(t, first, h.Main)
}

func TestMatchDeclared(t *testing.T) {
	cands := []Candidate{
		{Name: "extras", Elem: anyType},
		{Name: "tags", Elem: reflect.TypeOf((*string)(nil)).Elem()},
		{Name: "parts", Elem: reflect.TypeOf((**part)(nil)).Elem()},
	}
	assert.Equal(t, 2, matchDeclared(cands, reflect.TypeOf((**part)(nil)).Elem()))
	assert.Equal(t, -1, matchDeclared(cands, reflect.TypeOf((**widget)(nil)).Elem()))
}

func TestMatchContents(t *testing.T) {
	partType := reflect.TypeOf((**part)(nil)).Elem()
	cands := []Candidate{
		{Name: "empty", Elem: anyType},
		{Name: "typed", Elem: partType, Sample: partType, Len: 1},
		{Name: "widgets", Elem: anyType, Sample: reflect.TypeOf((**widget)(nil)).Elem(), Len: 1},
		{Name: "instances", Elem: anyType, Sample: partType, Len: 2},
	}
	assert.Equal(t, 3, matchContents(cands, partType))
	assert.Equal(t, 2, matchContents(cands, reflect.TypeOf((**widget)(nil)).Elem()))
	assert.Equal(t, -1, matchContents(cands, reflect.TypeOf((*string)(nil)).Elem()))
}

func TestMatchNameHint(t *testing.T) {
	child := reflect.TypeOf((**part)(nil)).Elem()
	cands := []Candidate{
		{Name: "misc", Elem: anyType},
		{Name: "agentList", Elem: anyType, Len: 1},
		{Name: "linkedRightsItems", Elem: anyType},
	}
	assert.Equal(t, 2, matchNameHint(cands, child))
	assert.Equal(t, -1, matchNameHint(cands[:2], child))
}

func TestMatchFallbackName(t *testing.T) {
	child := reflect.TypeOf((**part)(nil)).Elem()
	cands := []Candidate{
		{Name: "event", Elem: anyType},
		{Name: "Agent", Elem: reflect.TypeOf((**widget)(nil)).Elem()},
		{Name: "object", Elem: anyType},
		{Name: "relationship", Elem: anyType},
	}
	assert.Equal(t, 3, matchFallbackName(cands, child))
	assert.Equal(t, 2, matchFallbackName(cands[:3], child))
	assert.Equal(t, -1, matchFallbackName(cands[1:2], child))
}

func TestAttach_TierOrder(t *testing.T) {
	a := newTestAttacher(nil)
	bag := &bag{Misc: []any{&part{}}}
	p := &part{}

	require.True(t, a.Attach(bag, p))
	assert.Len(t, bag.Misc, 2)
	assert.Empty(t, bag.ObjectRefs)

	w := &widget{}
	require.True(t, a.Attach(bag, w))
	assert.Equal(t, []any{w}, bag.ObjectRefs)
}

func TestBuildAttachmentTable(t *testing.T) {
	table := BuildAttachmentTable(testSpecs)

	prop, ok := table.Lookup("widget", "part")
	require.True(t, ok)
	assert.Equal(t, "parts", prop)

	_, ok = table.Lookup("part", "widget")
	assert.False(t, ok)
}

type holder struct {
	Main *part
}

func (*holder) Kind() Kind { return "holder" }

func (h *holder) ScalarProperties() []Scalar {
	return []Scalar{ScalarOf("main", &h.Main)}
}

type bag struct {
	Misc       []any
	ObjectRefs []any
}

func (*bag) Kind() Kind { return "bag" }

func (b *bag) RepeatedProperties() []Repeated {
	return []Repeated{
		RepeatedOf("misc", &b.Misc),
		RepeatedOf("objectRefs", &b.ObjectRefs),
	}
}
