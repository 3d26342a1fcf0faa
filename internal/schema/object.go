package schema

import (
	"encoding/xml"
	"fmt"
	"math/big"

	"github.com/vvka-141/premisgen/internal/binding"
)

// ObjectVariant is implemented by the concrete object types
// (file, representation, intellectualEntity).
type ObjectVariant interface {
	binding.Instance
	XSIType() string
}

// ObjectList holds object sections and writes each with its xsi:type.
type ObjectList []ObjectVariant

// MarshalXML encodes every object under start, tagged with xsi:type.
func (l ObjectList) MarshalXML(enc *xml.Encoder, start xml.StartElement) error {
	for _, obj := range l {
		if obj == nil {
			continue
		}
		el := start.Copy()
		el.Attr = append(el.Attr, xml.Attr{
			Name:  xml.Name{Space: XSINamespace, Local: "type"},
			Value: Prefix + ":" + obj.XSIType(),
		})
		if err := enc.EncodeElement(obj, el); err != nil {
			return err
		}
	}
	return nil
}

// UnmarshalXML decodes one object element, choosing the type from xsi:type.
func (l *ObjectList) UnmarshalXML(dec *xml.Decoder, start xml.StartElement) error {
	obj, ok := NewObject(xsiType(start))
	if !ok {
		return fmt.Errorf("unsupported object xsi:type %q", xsiType(start))
	}
	if err := dec.DecodeElement(obj, &start); err != nil {
		return err
	}
	*l = append(*l, obj)
	return nil
}

// NewObject returns an empty object for an xsi:type local name.
func NewObject(name string) (ObjectVariant, bool) {
	switch name {
	case "file":
		return &File{}, true
	case "representation":
		return &Representation{}, true
	case "intellectualEntity":
		return &IntellectualEntity{}, true
	}
	return nil, false
}

// ObjectIdentifier identifies an object.
type ObjectIdentifier struct {
	ObjectIdentifierType  *StringPlusAuthority `xml:"objectIdentifierType"`
	ObjectIdentifierValue string               `xml:"objectIdentifierValue"`
}

func (*ObjectIdentifier) Kind() binding.Kind { return KindObjectIdentifier }

func (o *ObjectIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("objectIdentifierType", &o.ObjectIdentifierType),
		binding.ScalarOf("objectIdentifierValue", &o.ObjectIdentifierValue),
	}
}

// SignificantProperties records properties that must be preserved.
type SignificantProperties struct {
	SignificantPropertiesType      *StringPlusAuthority `xml:"significantPropertiesType,omitempty"`
	SignificantPropertiesValue     string               `xml:"significantPropertiesValue,omitempty"`
	SignificantPropertiesExtension []*Extension         `xml:"significantPropertiesExtension,omitempty"`
}

func (*SignificantProperties) Kind() binding.Kind { return KindSignificantProperties }

func (s *SignificantProperties) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("significantPropertiesType", &s.SignificantPropertiesType),
		binding.ScalarOf("significantPropertiesValue", &s.SignificantPropertiesValue),
	}
}

func (s *SignificantProperties) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("significantPropertiesExtension", &s.SignificantPropertiesExtension),
	}
}

// File is an object with xsi:type file.
type File struct {
	ObjectIdentifier      []*ObjectIdentifier      `xml:"objectIdentifier"`
	SignificantProperties []*SignificantProperties `xml:"significantProperties,omitempty"`
	ObjectCharacteristics []*ObjectCharacteristics `xml:"objectCharacteristics"`
	OriginalName          *StringPlusAuthority     `xml:"originalName,omitempty"`
	Relationship          []*Relationship          `xml:"relationship,omitempty"`
}

func (*File) Kind() binding.Kind { return KindFile }
func (*File) XSIType() string    { return "file" }

func (f *File) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("originalName", &f.OriginalName)}
}

func (f *File) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("objectIdentifier", &f.ObjectIdentifier),
		binding.RepeatedOf("significantProperties", &f.SignificantProperties),
		binding.RepeatedOf("objectCharacteristics", &f.ObjectCharacteristics),
		binding.RepeatedOf("relationship", &f.Relationship),
	}
}

// Representation is an object with xsi:type representation.
type Representation struct {
	ObjectIdentifier      []*ObjectIdentifier      `xml:"objectIdentifier"`
	SignificantProperties []*SignificantProperties `xml:"significantProperties,omitempty"`
	Relationship          []*Relationship          `xml:"relationship,omitempty"`
}

func (*Representation) Kind() binding.Kind { return KindRepresentation }
func (*Representation) XSIType() string    { return "representation" }

func (r *Representation) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("objectIdentifier", &r.ObjectIdentifier),
		binding.RepeatedOf("significantProperties", &r.SignificantProperties),
		binding.RepeatedOf("relationship", &r.Relationship),
	}
}

// IntellectualEntity is an object with xsi:type intellectualEntity.
type IntellectualEntity struct {
	ObjectIdentifier      []*ObjectIdentifier      `xml:"objectIdentifier"`
	SignificantProperties []*SignificantProperties `xml:"significantProperties,omitempty"`
	OriginalName          *StringPlusAuthority     `xml:"originalName,omitempty"`
	Relationship          []*Relationship          `xml:"relationship,omitempty"`
}

func (*IntellectualEntity) Kind() binding.Kind { return KindIntellectualEntity }
func (*IntellectualEntity) XSIType() string    { return "intellectualEntity" }

func (e *IntellectualEntity) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("originalName", &e.OriginalName)}
}

func (e *IntellectualEntity) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("objectIdentifier", &e.ObjectIdentifier),
		binding.RepeatedOf("significantProperties", &e.SignificantProperties),
		binding.RepeatedOf("relationship", &e.Relationship),
	}
}

// ObjectCharacteristics holds technical properties of a file.
type ObjectCharacteristics struct {
	CompositionLevel               *big.Int               `xml:"compositionLevel"`
	Fixity                         []*Fixity              `xml:"fixity"`
	Size                           *big.Int               `xml:"size,omitempty"`
	Format                         []*Format              `xml:"format"`
	CreatingApplication            []*CreatingApplication `xml:"creatingApplication,omitempty"`
	ObjectCharacteristicsExtension []*Extension           `xml:"objectCharacteristicsExtension,omitempty"`
}

func (*ObjectCharacteristics) Kind() binding.Kind { return KindObjectCharacteristics }

func (c *ObjectCharacteristics) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("compositionLevel", &c.CompositionLevel),
		binding.ScalarOf("size", &c.Size),
	}
}

func (c *ObjectCharacteristics) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{
		binding.RepeatedOf("fixity", &c.Fixity),
		binding.RepeatedOf("format", &c.Format),
		binding.RepeatedOf("creatingApplication", &c.CreatingApplication),
		binding.RepeatedOf("objectCharacteristicsExtension", &c.ObjectCharacteristicsExtension),
	}
}

// Fixity is a message digest of the object content.
type Fixity struct {
	MessageDigestAlgorithm  *StringPlusAuthority `xml:"messageDigestAlgorithm"`
	MessageDigest           string               `xml:"messageDigest"`
	MessageDigestOriginator *StringPlusAuthority `xml:"messageDigestOriginator,omitempty"`
}

func (*Fixity) Kind() binding.Kind { return KindFixity }

func (f *Fixity) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("messageDigestAlgorithm", &f.MessageDigestAlgorithm),
		binding.ScalarOf("messageDigest", &f.MessageDigest),
		binding.ScalarOf("messageDigestOriginator", &f.MessageDigestOriginator),
	}
}

// Format identifies the file format.
type Format struct {
	FormatDesignation *FormatDesignation `xml:"formatDesignation,omitempty"`
	FormatNote        []string           `xml:"formatNote,omitempty"`
}

func (*Format) Kind() binding.Kind { return KindFormat }

func (f *Format) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("formatDesignation", &f.FormatDesignation)}
}

func (f *Format) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{binding.RepeatedOf("formatNote", &f.FormatNote)}
}

// FormatDesignation names a format and its version.
type FormatDesignation struct {
	FormatName    *StringPlusAuthority `xml:"formatName"`
	FormatVersion string               `xml:"formatVersion,omitempty"`
}

func (*FormatDesignation) Kind() binding.Kind { return KindFormatDesignation }

func (d *FormatDesignation) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("formatName", &d.FormatName),
		binding.ScalarOf("formatVersion", &d.FormatVersion),
	}
}

// CreatingApplication records the software that created a file.
type CreatingApplication struct {
	CreatingApplicationName    *StringPlusAuthority `xml:"creatingApplicationName"`
	CreatingApplicationVersion string               `xml:"creatingApplicationVersion,omitempty"`
	DateCreatedByApplication   string               `xml:"dateCreatedByApplication,omitempty"`
}

func (*CreatingApplication) Kind() binding.Kind { return KindCreatingApplication }

func (a *CreatingApplication) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("creatingApplicationName", &a.CreatingApplicationName),
		binding.ScalarOf("creatingApplicationVersion", &a.CreatingApplicationVersion),
		binding.ScalarOf("dateCreatedByApplication", &a.DateCreatedByApplication),
	}
}

// Relationship links an object to other objects.
type Relationship struct {
	RelationshipType    *StringPlusAuthority   `xml:"relationshipType"`
	RelationshipElement []*RelationshipElement `xml:"relationshipElement"`
}

func (*Relationship) Kind() binding.Kind { return KindRelationship }

func (r *Relationship) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("relationshipType", &r.RelationshipType)}
}

func (r *Relationship) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{binding.RepeatedOf("relationshipElement", &r.RelationshipElement)}
}

// RelationshipElement carries a relationship subtype and its targets.
type RelationshipElement struct {
	RelationshipSubType     *StringPlusAuthority       `xml:"relationshipSubType"`
	RelatedObjectIdentifier []*RelatedObjectIdentifier `xml:"relatedObjectIdentifier"`
}

func (*RelationshipElement) Kind() binding.Kind { return KindRelationshipElement }

func (r *RelationshipElement) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{binding.ScalarOf("relationshipSubType", &r.RelationshipSubType)}
}

func (r *RelationshipElement) RepeatedProperties() []binding.Repeated {
	return []binding.Repeated{binding.RepeatedOf("relatedObjectIdentifier", &r.RelatedObjectIdentifier)}
}

// RelatedObjectIdentifier points at another object.
type RelatedObjectIdentifier struct {
	RelatedObjectIdentifierType  *StringPlusAuthority `xml:"relatedObjectIdentifierType"`
	RelatedObjectIdentifierValue string               `xml:"relatedObjectIdentifierValue"`
}

func (*RelatedObjectIdentifier) Kind() binding.Kind { return KindRelatedObjectIdentifier }

func (r *RelatedObjectIdentifier) ScalarProperties() []binding.Scalar {
	return []binding.Scalar{
		binding.ScalarOf("relatedObjectIdentifierType", &r.RelatedObjectIdentifierType),
		binding.ScalarOf("relatedObjectIdentifierValue", &r.RelatedObjectIdentifierValue),
	}
}
