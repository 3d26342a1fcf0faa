package binding

import (
	"reflect"
	"strings"

	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// Candidate describes one repeated property of a parent for tier matching.
type Candidate struct {
	Name   string
	Elem   reflect.Type
	Sample reflect.Type
	Len    int
}

// Tier picks the candidate a child should be appended to, or -1.
type Tier struct {
	Name  string
	Match func(cands []Candidate, child reflect.Type) int
}

// Tiers is the scoring fallback used when the attachment table has no edge.
var Tiers = []Tier{
	{Name: "declared", Match: matchDeclared},
	{Name: "contents", Match: matchContents},
	{Name: "name-hint", Match: matchNameHint},
	{Name: "fallback-name", Match: matchFallbackName},
}

var nameHints = []string{"object", "agent", "rights", "relationship", "intellectual", "event"}

var fallbackNames = []string{
	"relationship",
	"intellectualEntity",
	"intellectualObject",
	"agent",
	"rights",
	"object",
	"event",
}

func matchDeclared(cands []Candidate, child reflect.Type) int {
	for i, c := range cands {
		if !Untyped(c.Elem) && child.AssignableTo(c.Elem) {
			return i
		}
	}
	return -1
}

func matchContents(cands []Candidate, child reflect.Type) int {
	for i, c := range cands {
		if c.Len == 0 || !Untyped(c.Elem) || c.Sample == nil {
			continue
		}
		if child.AssignableTo(c.Sample) || c.Sample.AssignableTo(child) {
			return i
		}
	}
	return -1
}

func matchNameHint(cands []Candidate, _ reflect.Type) int {
	for i, c := range cands {
		if c.Len != 0 || !Untyped(c.Elem) {
			continue
		}
		name := strings.ToLower(c.Name)
		for _, hint := range nameHints {
			if strings.Contains(name, hint) {
				return i
			}
		}
	}
	return -1
}

func matchFallbackName(cands []Candidate, child reflect.Type) int {
	for _, want := range fallbackNames {
		for i, c := range cands {
			if !strings.EqualFold(c.Name, want) {
				continue
			}
			if Untyped(c.Elem) || child.AssignableTo(c.Elem) {
				return i
			}
		}
	}
	return -1
}

// Describe turns repeated properties into tier candidates.
func Describe(reps []Repeated) []Candidate {
	cands := make([]Candidate, len(reps))
	for i, r := range reps {
		items := r.Items()
		c := Candidate{Name: r.Name, Elem: r.Elem, Len: len(items)}
		if len(items) > 0 && items[0] != nil {
			c.Sample = reflect.TypeOf(items[0])
		}
		cands[i] = c
	}
	return cands
}

// Attacher links child instances into parents. An attacher remembers every
// child it placed, so a child never ends up under two parents.
type Attacher struct {
	table  AttachmentTable
	owners map[any]Instance
	logger premisgen.Logger
}

// NewAttacher creates an attacher consulting table before the scoring tiers.
// Panics if logger is nil (programming error).
func NewAttacher(table AttachmentTable, logger premisgen.Logger) *Attacher {
	if logger == nil {
		panic("logger cannot be nil")
	}
	return &Attacher{table: table, owners: make(map[any]Instance), logger: logger}
}

// Attach places child into parent and reports whether it did.
func (a *Attacher) Attach(parent, child Instance) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			a.logger.Verbose("attach %s -> %s: recovered: %v", kindOf(parent), kindOf(child), r)
			ok = false
		}
	}()

	if parent == nil || child == nil {
		return false
	}

	key, tracked := identity(child)
	if tracked {
		if pk, same := identity(parent); same && pk == key {
			return false
		}
		if _, owned := a.owners[key]; owned {
			return false
		}
	}
	if holds(parent, child) {
		return false
	}

	if prop, found := a.table.Lookup(parent.Kind(), child.Kind()); found && place(parent, prop, child) {
		a.record(key, tracked, parent)
		a.logger.Verbose("attach %s -> %s via %s", parent.Kind(), child.Kind(), prop)
		return true
	}

	reps := repeatedsOf(parent)
	cands := Describe(reps)
	childType := reflect.TypeOf(child)
	for _, tier := range Tiers {
		i := tier.Match(cands, childType)
		if i < 0 {
			continue
		}
		reps[i].Append(child)
		a.record(key, tracked, parent)
		a.logger.Verbose("attach %s -> %s via %s (%s)", parent.Kind(), child.Kind(), reps[i].Name, tier.Name)
		return true
	}

	a.logger.Verbose("attach %s -> %s: no property fits", parent.Kind(), child.Kind())
	return false
}

// Parent returns the parent child was attached to by this attacher.
func (a *Attacher) Parent(child Instance) (Instance, bool) {
	key, tracked := identity(child)
	if !tracked {
		return nil, false
	}
	parent, ok := a.owners[key]
	return parent, ok
}

func (a *Attacher) record(key any, tracked bool, parent Instance) {
	if tracked {
		a.owners[key] = parent
	}
}

// identity returns a map key for inst when its dynamic type is comparable.
func identity(inst any) (any, bool) {
	if inst == nil || !reflect.TypeOf(inst).Comparable() {
		return nil, false
	}
	return inst, true
}

// holds reports whether child is already referenced by parent.
func holds(parent, child any) bool {
	key, ok := identity(child)
	if !ok {
		return false
	}
	for _, r := range repeatedsOf(parent) {
		for _, item := range r.Items() {
			if k, ok := identity(item); ok && k == key {
				return true
			}
		}
	}
	for _, s := range scalarsOf(parent) {
		if s.Get == nil {
			continue
		}
		if k, ok := identity(s.Get()); ok && k == key {
			return true
		}
	}
	return false
}

// place puts child into the property named prop: appended when repeated,
// set when scalar and currently unset.
func place(parent any, prop string, child any) bool {
	childType := reflect.TypeOf(child)
	if r, ok := findRepeated(parent, prop); ok && (Untyped(r.Elem) || childType.AssignableTo(r.Elem)) {
		r.Append(child)
		return true
	}
	if s, ok := findScalar(parent, prop); ok && childType.AssignableTo(s.Param) && (s.Get == nil || isUnset(s.Get())) {
		s.Set(child)
		return true
	}
	return false
}
