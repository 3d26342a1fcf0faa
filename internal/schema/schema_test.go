package schema

import (
	"encoding/xml"
	"math/big"
	"reflect"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vvka-141/premisgen/internal/binding"
	"github.com/vvka-141/premisgen/internal/logging"
)

var bigIntComparer = cmp.Comparer(func(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Cmp(b) == 0
})

func newSynthesizer() *binding.Synthesizer {
	return binding.NewSynthesizer(NewRegistry(), logging.NewNullLogger())
}

func TestSpecs_EveryKindSynthesizes(t *testing.T) {
	s := newSynthesizer()

	for _, spec := range Specs() {
		t.Run(string(spec.Kind), func(t *testing.T) {
			inst, err := s.Synthesize(spec.Kind, "")
			require.NoError(t, err)
			require.NotNil(t, inst)
			assert.True(t, reflect.TypeOf(inst).AssignableTo(spec.Type))
			if spec.Type.Kind() != reflect.Interface {
				assert.Equal(t, spec.Kind, inst.Kind())
			}
		})
	}
}

func TestSpecs_RootIsUnwrappedFromFactoryElement(t *testing.T) {
	inst, err := newSynthesizer().Synthesize(KindPremis, "")
	require.NoError(t, err)
	assert.IsType(t, &Premis{}, inst)
}

func TestSpecs_ExtensionHasNoFactoryEntry(t *testing.T) {
	_, ok := NewObjectFactory().Lookup("createExtension")
	assert.False(t, ok)

	inst, err := newSynthesizer().Synthesize(KindExtension, "")
	require.NoError(t, err)
	assert.IsType(t, &Extension{}, inst)
}

func TestSpecs_AbstractObjectResolvesToConcreteVariant(t *testing.T) {
	inst, err := newSynthesizer().Synthesize(KindObject, "")
	require.NoError(t, err)
	_, ok := inst.(ObjectVariant)
	assert.True(t, ok)
}

func TestFactory_CreatorsAreSorted(t *testing.T) {
	creators := NewObjectFactory().Creators()
	require.NotEmpty(t, creators)
	for i := 1; i < len(creators); i++ {
		assert.Less(t, creators[i-1].Name, creators[i].Name)
	}
}

func TestTypeIndex_LookupType(t *testing.T) {
	typ, ok := NewTypeIndex().LookupType("Fixity")
	require.True(t, ok)
	assert.Equal(t, reflect.TypeOf((*Fixity)(nil)).Elem(), typ)

	_, ok = NewTypeIndex().LookupType("FixityImpl")
	assert.False(t, ok)
}

func TestAttachments_KnownEdges(t *testing.T) {
	table := Attachments()

	tests := []struct {
		parent, child binding.Kind
		property      string
	}{
		{KindPremis, KindFile, "object"},
		{KindPremis, KindIntellectualEntity, "object"},
		{KindPremis, KindAgent, "agent"},
		{KindPremis, KindRights, "rights"},
		{KindPremis, KindEvent, "event"},
		{KindFile, KindObjectCharacteristics, "objectCharacteristics"},
		{KindFile, KindRelationship, "relationship"},
		{KindIntellectualEntity, KindRelationship, "relationship"},
		{KindObjectCharacteristics, KindFixity, "fixity"},
		{KindObjectCharacteristics, KindExtension, "objectCharacteristicsExtension"},
		{KindFormat, KindFormatDesignation, "formatDesignation"},
		{KindRelationship, KindRelationshipElement, "relationshipElement"},
		{KindRelationshipElement, KindRelatedObjectIdentifier, "relatedObjectIdentifier"},
		{KindRightsStatement, KindRightsStatementIdentifier, "rightsStatementIdentifier"},
		{KindEvent, KindEventIdentifier, "eventIdentifier"},
	}
	for _, tt := range tests {
		prop, ok := table.Lookup(tt.parent, tt.child)
		if assert.True(t, ok, "%s -> %s", tt.parent, tt.child) {
			assert.Equal(t, tt.property, prop)
		}
	}

	_, ok := table.Lookup(KindPremis, KindRelationship)
	assert.False(t, ok, "relationships are not held by the root")
}

func TestAttachments_EveryEdgeNamesAProperty(t *testing.T) {
	s := newSynthesizer()

	for edge, prop := range Attachments() {
		parent, err := s.Synthesize(edge.Parent, "")
		require.NoError(t, err)

		found := false
		if sc, ok := parent.(binding.Scalars); ok {
			for _, p := range sc.ScalarProperties() {
				found = found || p.Name == prop
			}
		}
		if rp, ok := parent.(binding.Repeateds); ok {
			for _, p := range rp.RepeatedProperties() {
				found = found || p.Name == prop
			}
		}
		assert.True(t, found, "%s has no property %q for %s", edge.Parent, prop, edge.Child)
	}
}

func TestDecoder_MinimalDocument(t *testing.T) {
	v, err := Decoder{}.DecodeFragment(binding.MinimalDocument("fixity", Namespace), reflect.TypeOf((**Fixity)(nil)).Elem())
	require.NoError(t, err)
	assert.Equal(t, &Fixity{}, v)
}

func TestDecoder_InterfaceTargetUsesXSIType(t *testing.T) {
	fragment := `<premis:object xmlns:premis="` + Namespace + `" xmlns:xsi="` + XSINamespace + `" xsi:type="premis:intellectualEntity">
  <premis:objectIdentifier>
    <premis:objectIdentifierType>CNR</premis:objectIdentifierType>
    <premis:objectIdentifierValue>SIP-1</premis:objectIdentifierValue>
  </premis:objectIdentifier>
</premis:object>`

	v, err := Decoder{}.DecodeFragment([]byte(fragment), reflect.TypeOf((*ObjectVariant)(nil)).Elem())
	require.NoError(t, err)

	ie, ok := v.(*IntellectualEntity)
	require.True(t, ok)
	require.Len(t, ie.ObjectIdentifier, 1)
	assert.Equal(t, "CNR", ie.ObjectIdentifier[0].ObjectIdentifierType.Value)
	assert.Equal(t, "SIP-1", ie.ObjectIdentifier[0].ObjectIdentifierValue)
}

func TestDecoder_Errors(t *testing.T) {
	_, err := Decoder{}.DecodeFragment([]byte("<object/>"), reflect.TypeOf((*ObjectVariant)(nil)).Elem())
	assert.Error(t, err)

	_, err = Decoder{}.DecodeFragment([]byte("<fixity>"), reflect.TypeOf((**Fixity)(nil)).Elem())
	assert.Error(t, err)

	_, err = Decoder{}.DecodeFragment(nil, reflect.TypeOf((*string)(nil)).Elem())
	assert.Error(t, err)

	_, err = Decoder{}.DecodeFragment(nil, nil)
	assert.Error(t, err)
}

func TestPremis_ObjectListRoundTrip(t *testing.T) {
	file := &File{
		ObjectIdentifier: []*ObjectIdentifier{{
			ObjectIdentifierType:  Text("FilePath"),
			ObjectIdentifierValue: "representation/rep1/data/SIP_1.pdf",
		}},
		ObjectCharacteristics: []*ObjectCharacteristics{{
			CompositionLevel: big.NewInt(0),
			Size:             big.NewInt(12),
			Fixity: []*Fixity{{
				MessageDigestAlgorithm: Text("SHA-256"),
				MessageDigest:          "abc123",
			}},
			Format: []*Format{{FormatDesignation: &FormatDesignation{FormatName: Text("PDF")}}},
			ObjectCharacteristicsExtension: []*Extension{{
				Any: []any{NewElement("receivingDate", "2025-01-02T03:04:05Z")},
			}},
		}},
	}
	in := &Premis{
		Version: "3.0",
		Object:  ObjectList{&IntellectualEntity{}, file},
		Agent:   []*Agent{{AgentType: Text("software")}},
	}

	data, err := xml.Marshal(in)
	require.NoError(t, err)

	var out Premis
	require.NoError(t, xml.Unmarshal(data, &out))

	require.Len(t, out.Object, 2)
	assert.IsType(t, &IntellectualEntity{}, out.Object[0])
	if diff := cmp.Diff(file, out.Object[1], bigIntComparer); diff != "" {
		t.Errorf("file object mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "3.0", out.Version)
	assert.Len(t, out.Agent, 1)
	assert.Len(t, out.Files(), 1)
	assert.NotNil(t, out.IntellectualEntity())
	assert.Len(t, out.Objects("intellectualEntity"), 1)
}

func TestStringPlusAuthority_TextBox(t *testing.T) {
	var box binding.TextBox = &StringPlusAuthority{}
	box.SetText("statute")
	assert.Equal(t, "statute", box.(*StringPlusAuthority).String())

	var nilBox *StringPlusAuthority
	assert.Equal(t, "", nilBox.String())
}
