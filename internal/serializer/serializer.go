// Package serializer writes PREMIS records as prefixed, schema-located XML.
package serializer

import (
	"bufio"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vvka-141/premisgen/internal/schema"
	"github.com/vvka-141/premisgen/pkg/premisgen"
)

// Serializer renders a record. The zero value is not usable; use New.
type Serializer struct {
	Prefix         string
	Namespace      string
	SchemaLocation string
	Version        string
	Indent         string
}

// New returns a serializer for the PREMIS v3 namespace.
func New() *Serializer {
	return &Serializer{
		Prefix:         premisgen.PremisPrefix,
		Namespace:      premisgen.PremisNamespace,
		SchemaLocation: premisgen.PremisSchemaLocation,
		Version:        premisgen.PremisVersion,
		Indent:         "  ",
	}
}

// Marshal returns the document for root.
func (s *Serializer) Marshal(root *schema.Premis) ([]byte, error) {
	var buf bytes.Buffer
	if err := s.Encode(&buf, root); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Encode writes the document for root to w.
//
// encoding/xml cannot emit prefixed element names, so the record is
// marshaled plainly first and then re-encoded token by token: element names
// get the prefix, namespace declarations are replaced by the prefix and xsi
// declarations on the root, and xsi attributes are written as xsi:<name>.
func (s *Serializer) Encode(w io.Writer, root *schema.Premis) error {
	if root == nil {
		return fmt.Errorf("%w: nil record", premisgen.ErrSerialization)
	}

	plain, err := xml.Marshal(root)
	if err != nil {
		return fmt.Errorf("%w: %w", premisgen.ErrSerialization, err)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return fmt.Errorf("%w: %w", premisgen.ErrSerialization, err)
	}

	dec := xml.NewDecoder(bytes.NewReader(plain))
	enc := xml.NewEncoder(w)
	enc.Indent("", s.Indent)

	depth := 0
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: re-encode: %w", premisgen.ErrSerialization, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			out := xml.StartElement{Name: s.name(t.Name), Attr: s.attrs(t.Attr)}
			if depth == 0 {
				out.Attr = s.rootAttrs(out.Attr)
			}
			depth++
			tok = out
		case xml.EndElement:
			depth--
			tok = xml.EndElement{Name: s.name(t.Name)}
		}

		if err := enc.EncodeToken(tok); err != nil {
			return fmt.Errorf("%w: re-encode: %w", premisgen.ErrSerialization, err)
		}
	}

	if err := enc.Flush(); err != nil {
		return fmt.Errorf("%w: %w", premisgen.ErrSerialization, err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return fmt.Errorf("%w: %w", premisgen.ErrSerialization, err)
	}
	return nil
}

func (s *Serializer) name(n xml.Name) xml.Name {
	return xml.Name{Local: s.Prefix + ":" + n.Local}
}

// attrs drops namespace declarations and rewrites xsi attributes.
func (s *Serializer) attrs(in []xml.Attr) []xml.Attr {
	out := make([]xml.Attr, 0, len(in))
	for _, a := range in {
		switch {
		case a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns"):
			continue
		case a.Name.Space == premisgen.XSINamespace || a.Name.Space == "xsi":
			out = append(out, xml.Attr{Name: xml.Name{Local: "xsi:" + a.Name.Local}, Value: a.Value})
		default:
			out = append(out, xml.Attr{Name: xml.Name{Local: a.Name.Local}, Value: a.Value})
		}
	}
	return out
}

func (s *Serializer) rootAttrs(attrs []xml.Attr) []xml.Attr {
	out := []xml.Attr{
		{Name: xml.Name{Local: "xmlns:" + s.Prefix}, Value: s.Namespace},
		{Name: xml.Name{Local: "xmlns:xsi"}, Value: premisgen.XSINamespace},
		{Name: xml.Name{Local: "xsi:schemaLocation"}, Value: s.SchemaLocation},
	}
	hasVersion := false
	for _, a := range attrs {
		if a.Name.Local == "xsi:schemaLocation" {
			continue
		}
		if a.Name.Local == "version" {
			hasVersion = true
		}
		out = append(out, a)
	}
	if !hasVersion && s.Version != "" {
		out = append(out, xml.Attr{Name: xml.Name{Local: "version"}, Value: s.Version})
	}
	return out
}

// WriteFile writes the document to path atomically: the content goes to a
// temp file in the same directory, is synced, and renamed over path. The
// temp file is removed on any failure, leaving an existing path untouched.
func (s *Serializer) WriteFile(path string, root *schema.Premis) error {
	dir := filepath.Dir(path)
	base := filepath.Base(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}

	tmp, err := os.CreateTemp(dir, base+".tmp.*")
	if err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}
	tmpName := tmp.Name()
	committed := false
	defer func() {
		_ = tmp.Close()
		if !committed {
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriter(tmp)
	if err := s.Encode(bw, root); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: %s: %w", premisgen.ErrSerialization, path, err)
	}
	committed = true
	return nil
}
