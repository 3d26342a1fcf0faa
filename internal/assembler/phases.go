package assembler

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/vvka-141/premisgen/internal/binding"
	"github.com/vvka-141/premisgen/internal/schema"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// Vocabulary written into the record.
const (
	IdentifierTypeCNR      = "CNR"
	IdentifierTypeFilePath = "FilePath"
	IdentifierTypeUUID     = "UUID"
	IdentifierTypeDir      = "directory"

	SignificantCaseSIP = "Case SIP"

	RelationshipDerivation = "derivation"
	RelationshipStructural = "structural"

	SubtypeDerivedFrom       = "derivedFrom"
	SubtypeHasRepresentation = "hasRepresentation"
	SubtypeHasMetadata       = "hasMetadata"
	SubtypeHasSchema         = "hasSchema"

	EventTypeIngestion = "ingestion"
	AgentRoleExecuting = "executing program"

	FormatXML  = "XML"
	FormatXSD  = "XSD"
	FormatPDF  = "PDF"
	FormatPDFA = "PDF/A-1B"

	ReceivingDate = "receivingDate"
)

// idSpace seeds the name-based identifiers of rights statements and events.
var idSpace = uuid.NewSHA1(uuid.NameSpaceURL, []byte(premisgen.PremisNamespace))

// DeterministicID returns the UUID v5 of name within the record namespace.
func DeterministicID(name string) string {
	return uuid.NewSHA1(idSpace, []byte(name)).String()
}

func (b *build) buildRoot() {
	inst, err := b.synth.Synthesize(schema.KindPremis, "premis")
	if root, ok := inst.(*schema.Premis); err == nil && ok {
		b.root = root
	} else {
		b.warn("root not available, using an empty record: %v", err)
		b.root = &schema.Premis{}
	}
	b.set(b.root, "version", premisgen.PremisVersion)
}

func (b *build) buildIntellectualObject() {
	entity := b.create(schema.KindIntellectualEntity, "object")
	if entity == nil {
		return
	}
	b.attach(entity, b.identifier(schema.KindObjectIdentifier, IdentifierTypeCNR, b.opts.SIPID))

	props := b.create(schema.KindSignificantProperties, "")
	b.set(props, "significantPropertiesValue", SignificantCaseSIP)
	b.attach(entity, props)

	if b.attach(b.root, entity) {
		b.entity = entity
	}
}

func (b *build) buildAgentsAndRights() {
	for _, a := range []premisgen.Agent{b.opts.SystemAgent, b.opts.Depositor} {
		agent := b.create(schema.KindAgent, "")
		if agent == nil {
			continue
		}
		b.attach(agent, b.identifier(schema.KindAgentIdentifier, a.IdentifierType, a.IdentifierValue))
		if a.Name != "" {
			b.set(agent, "agentName", a.Name)
		}
		if a.Type != "" {
			b.set(agent, "agentType", a.Type)
		}
		b.attach(b.root, agent)
	}

	rights := b.create(schema.KindRights, "")
	stmt := b.create(schema.KindRightsStatement, "")
	if stmt != nil {
		b.attach(stmt, b.identifier(schema.KindRightsStatementIdentifier, IdentifierTypeUUID,
			DeterministicID(b.opts.SIPID+"/rights")))
		b.set(stmt, "rightsBasis", b.opts.Rights.Basis)

		granted := b.create(schema.KindRightsGranted, "")
		b.set(granted, "act", b.opts.Rights.Granted)
		b.attach(stmt, granted)

		b.attach(stmt, b.identifier(schema.KindLinkingObjectIdentifier, IdentifierTypeCNR, b.opts.SIPID))
	}
	b.attach(rights, stmt)
	b.attach(b.root, rights)
}

// fileObject describes one file section to build.
type fileObject struct {
	id          string
	fp          premisgen.Fingerprint
	format      string
	application bool
	received    bool
	derivedFrom string
}

func (b *build) buildObjects() {
	var metadata, originals, derived, schemas []premisgen.FileEntry
	for _, e := range b.entries {
		switch e.Role {
		case premisgen.RoleMetadata:
			metadata = append(metadata, e)
		case premisgen.RoleOriginal:
			originals = append(originals, e)
		case premisgen.RoleDerived:
			derived = append(derived, e)
		case premisgen.RoleSchema:
			schemas = append(schemas, e)
		}
	}

	seen := make(map[string]bool)
	for _, e := range metadata {
		id := b.uniqueID(seen, "data/metadata/"+e.Name, e)
		b.metadataIDs = append(b.metadataIDs, id)
		b.addFile(fileObject{id: id, fp: e.Fingerprint, format: FormatXML, application: true, received: true})
	}

	originalIDs := make([]string, len(originals))
	for i, e := range originals {
		originalIDs[i] = fmt.Sprintf("%s/rep1/data/%s_%d%s", premisgen.RepresentationDir, b.opts.SIPID, i+1, e.Extension)
		b.addFile(fileObject{id: originalIDs[i], fp: e.Fingerprint, format: formatOf(e), received: true})
	}

	// Without real derived files every original gets a converted copy
	// carrying the original's bytes.
	if len(derived) == 0 {
		derived = originals
	}
	for i, e := range derived {
		obj := fileObject{
			id:          fmt.Sprintf("%s/rep2/data/%s_%d_converted%s", premisgen.RepresentationDir, b.opts.SIPID, i+1, e.Extension),
			fp:          e.Fingerprint,
			format:      DerivedFormat(formatOf(e)),
			application: true,
		}
		if i < len(originalIDs) {
			obj.derivedFrom = originalIDs[i]
		}
		b.addFile(obj)
	}

	for _, e := range schemas {
		id := b.uniqueID(seen, "schema/"+e.Name, e)
		b.schemaIDs = append(b.schemaIDs, id)
		b.addFile(fileObject{id: id, fp: e.Fingerprint, format: FormatXSD})
	}
}

// uniqueID numbers an identifier already taken by a same-named file in
// another directory: name.xml, name_2.xml, name_3.xml.
func (b *build) uniqueID(seen map[string]bool, id string, e premisgen.FileEntry) string {
	ext := path.Ext(id)
	stem := strings.TrimSuffix(id, ext)
	candidate := id
	for n := 2; seen[candidate]; n++ {
		candidate = fmt.Sprintf("%s_%d%s", stem, n, ext)
	}
	seen[candidate] = true
	if candidate != id {
		b.warn("%s: identifier %s already used, recorded as %s", e.RelativePath, id, candidate)
	}
	return candidate
}

// DerivedFormat is the format label of the converted copy of a file.
func DerivedFormat(source string) string {
	if strings.EqualFold(source, FormatPDF) {
		return FormatPDFA
	}
	return source
}

func formatOf(e premisgen.FileEntry) string {
	if e.Fingerprint.Format != "" {
		return e.Fingerprint.Format
	}
	return strings.ToUpper(strings.TrimPrefix(path.Ext(e.Name), "."))
}

func (b *build) addFile(obj fileObject) {
	file := b.create(schema.KindFile, "object")
	if file == nil {
		return
	}
	b.attach(file, b.identifier(schema.KindObjectIdentifier, IdentifierTypeFilePath, obj.id))

	chars := b.create(schema.KindObjectCharacteristics, "")
	if chars != nil {
		b.set(chars, "compositionLevel", 0)
		if obj.fp.Digest != "" {
			b.attach(chars, b.fixity(obj.fp))
		} else {
			b.warn("%s: no digest, fixity omitted", obj.id)
		}
		b.set(chars, "size", obj.fp.Size)
		b.attach(chars, b.format(obj.format))
		if obj.application {
			b.attach(chars, b.creatingApplication())
		}
		if obj.received {
			ext := b.create(schema.KindExtension, "objectCharacteristicsExtension")
			b.set(ext, "any", schema.NewElement(ReceivingDate, b.timestamp()))
			b.attach(chars, ext)
		}
		b.attach(file, chars)
	}

	if obj.derivedFrom != "" {
		rel := b.create(schema.KindRelationship, "")
		b.set(rel, "relationshipType", RelationshipDerivation)
		b.attach(rel, b.relationshipElement(SubtypeDerivedFrom, IdentifierTypeFilePath, obj.derivedFrom))
		b.attach(file, rel)
	}

	b.attach(b.root, file)
}

func (b *build) fixity(fp premisgen.Fingerprint) binding.Instance {
	fixity := b.create(schema.KindFixity, "")
	algorithm := fp.Algorithm
	if algorithm == "" {
		algorithm = premisgen.DigestAlgorithm
	}
	b.set(fixity, "messageDigestAlgorithm", algorithm)
	b.set(fixity, "messageDigest", fp.Digest)
	return fixity
}

func (b *build) format(name string) binding.Instance {
	format := b.create(schema.KindFormat, "")
	designation := b.create(schema.KindFormatDesignation, "")
	b.set(designation, "formatName", name)
	b.attach(format, designation)
	return format
}

func (b *build) creatingApplication() binding.Instance {
	app := b.create(schema.KindCreatingApplication, "")
	b.set(app, "creatingApplicationName", b.opts.CreatingApplication.Name)
	if b.opts.CreatingApplication.DateCreated != "" {
		b.set(app, "dateCreatedByApplication", b.opts.CreatingApplication.DateCreated)
	}
	return app
}

// relationshipElement returns nil when the element cannot be built; the
// caller keeps the relationship without it.
func (b *build) relationshipElement(subtype, idType, target string) binding.Instance {
	el := b.create(schema.KindRelationshipElement, "")
	if el == nil {
		return nil
	}
	b.set(el, "relationshipSubType", subtype)
	b.attach(el, b.identifier(schema.KindRelatedObjectIdentifier, idType, target))
	return el
}

func (b *build) buildRelationships() {
	rel := b.create(schema.KindRelationship, "")
	if rel == nil {
		return
	}
	b.set(rel, "relationshipType", RelationshipStructural)

	for _, rep := range []string{"rep1", "rep2"} {
		target := premisgen.RepresentationDir + "/" + rep + "/"
		b.attach(rel, b.relationshipElement(SubtypeHasRepresentation, IdentifierTypeDir, target))
	}
	for _, id := range b.metadataIDs {
		b.attach(rel, b.relationshipElement(SubtypeHasMetadata, IdentifierTypeFilePath, id))
	}
	for _, id := range b.schemaIDs {
		b.attach(rel, b.relationshipElement(SubtypeHasSchema, IdentifierTypeFilePath, id))
	}

	parent := b.entity
	if parent == nil {
		b.warn("no intellectual entity, offering %s to the root", rel.Kind())
		parent = b.root
	}
	b.attach(parent, rel)
}

func (b *build) buildEvents() {
	event := b.create(schema.KindEvent, "")
	if event == nil {
		return
	}
	b.attach(event, b.identifier(schema.KindEventIdentifier, IdentifierTypeUUID,
		DeterministicID(b.opts.SIPID+"/"+EventTypeIngestion)))
	b.set(event, "eventType", EventTypeIngestion)
	b.set(event, "eventDateTime", b.timestamp())
	b.set(event, "eventDetail", fmt.Sprintf("%d file(s) recorded", len(b.root.Files())))

	agent := b.identifier(schema.KindLinkingAgentIdentifier, b.opts.SystemAgent.IdentifierType, b.opts.SystemAgent.IdentifierValue)
	b.set(agent, "linkingAgentRole", AgentRoleExecuting)
	b.attach(event, agent)
	b.attach(event, b.identifier(schema.KindLinkingObjectIdentifier, IdentifierTypeCNR, b.opts.SIPID))

	b.attach(b.root, event)
}

func (b *build) summarize() {
	b.summary = Summarize(b.root)
	b.logger.Info("Record summary: %s", b.summary)
}
