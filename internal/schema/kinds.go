package schema

import (
	"reflect"
	"strings"

	"github.com/vvka-141/premisgen/internal/binding"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

const (
	// Namespace is the PREMIS v3 target namespace.
	Namespace = premisgen.PremisNamespace

	// Prefix is the namespace prefix used for element names and xsi:type values.
	Prefix = premisgen.PremisPrefix

	// XSINamespace is the XML Schema instance namespace.
	XSINamespace = premisgen.XSINamespace
)

const (
	KindPremis                    binding.Kind = "premis"
	KindObject                    binding.Kind = "object"
	KindFile                      binding.Kind = "file"
	KindRepresentation            binding.Kind = "representation"
	KindIntellectualEntity        binding.Kind = "intellectualEntity"
	KindObjectIdentifier          binding.Kind = "objectIdentifier"
	KindSignificantProperties     binding.Kind = "significantProperties"
	KindObjectCharacteristics     binding.Kind = "objectCharacteristics"
	KindFixity                    binding.Kind = "fixity"
	KindFormat                    binding.Kind = "format"
	KindFormatDesignation         binding.Kind = "formatDesignation"
	KindCreatingApplication       binding.Kind = "creatingApplication"
	KindExtension                 binding.Kind = "extension"
	KindRelationship              binding.Kind = "relationship"
	KindRelationshipElement       binding.Kind = "relationshipElement"
	KindRelatedObjectIdentifier   binding.Kind = "relatedObjectIdentifier"
	KindAgent                     binding.Kind = "agent"
	KindAgentIdentifier           binding.Kind = "agentIdentifier"
	KindRights                    binding.Kind = "rights"
	KindRightsStatement           binding.Kind = "rightsStatement"
	KindRightsStatementIdentifier binding.Kind = "rightsStatementIdentifier"
	KindRightsGranted             binding.Kind = "rightsGranted"
	KindEvent                     binding.Kind = "event"
	KindEventIdentifier           binding.Kind = "eventIdentifier"
	KindLinkingAgentIdentifier    binding.Kind = "linkingAgentIdentifier"
	KindLinkingObjectIdentifier   binding.Kind = "linkingObjectIdentifier"
)

const scalar, repeated = binding.CapScalar, binding.CapRepeated

// Specs returns the kind table of the PREMIS v3 binding.
func Specs() []binding.KindSpec {
	return []binding.KindSpec{
		spec[*Premis](KindPremis, "premis", scalar|repeated),
		spec[ObjectVariant](KindObject, "object", repeated),
		spec[*File](KindFile, "object", scalar|repeated),
		spec[*Representation](KindRepresentation, "object", repeated),
		spec[*IntellectualEntity](KindIntellectualEntity, "object", scalar|repeated),
		spec[*ObjectIdentifier](KindObjectIdentifier, "", scalar),
		spec[*SignificantProperties](KindSignificantProperties, "", scalar|repeated),
		spec[*ObjectCharacteristics](KindObjectCharacteristics, "", scalar|repeated),
		spec[*Fixity](KindFixity, "", scalar),
		spec[*Format](KindFormat, "", scalar|repeated),
		spec[*FormatDesignation](KindFormatDesignation, "", scalar),
		spec[*CreatingApplication](KindCreatingApplication, "", scalar),
		spec[*Extension](KindExtension, "objectCharacteristicsExtension", repeated),
		spec[*Relationship](KindRelationship, "", scalar|repeated),
		spec[*RelationshipElement](KindRelationshipElement, "", scalar|repeated),
		spec[*RelatedObjectIdentifier](KindRelatedObjectIdentifier, "", scalar),
		spec[*Agent](KindAgent, "", scalar|repeated),
		spec[*AgentIdentifier](KindAgentIdentifier, "", scalar),
		spec[*Rights](KindRights, "", repeated),
		spec[*RightsStatement](KindRightsStatement, "", scalar|repeated),
		spec[*RightsStatementIdentifier](KindRightsStatementIdentifier, "", scalar),
		spec[*RightsGranted](KindRightsGranted, "", scalar|repeated),
		spec[*Event](KindEvent, "", scalar|repeated),
		spec[*EventIdentifier](KindEventIdentifier, "", scalar),
		spec[*LinkingAgentIdentifier](KindLinkingAgentIdentifier, "", scalar|repeated),
		spec[*LinkingObjectIdentifier](KindLinkingObjectIdentifier, "", scalar),
	}
}

// spec builds a KindSpec for T. The local name defaults to the kind name
// and the factory candidates follow the create<Name>[ComplexType] convention.
func spec[T any](kind binding.Kind, localName string, caps binding.Capability) binding.KindSpec {
	if localName == "" {
		localName = string(kind)
	}
	name := strings.ToUpper(string(kind[:1])) + string(kind[1:])
	return binding.KindSpec{
		Kind:         kind,
		Type:         reflect.TypeOf((*T)(nil)).Elem(),
		LocalName:    localName,
		Candidates:   []string{"create" + name, "create" + name + "ComplexType", "create" + name + "Type"},
		Capabilities: caps,
	}
}
