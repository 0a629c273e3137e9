package schema

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Parse errors that callers may want to match on.
var (
	ErrNoSchema     = errors.New("document contains no <schema> element")
	ErrKeySignature = errors.New("key must declare exactly one of type or enum")
)

// xml* types mirror the schema document structure for decoding only;
// they never leave this file.

type xmlSchemaList struct {
	XMLName xml.Name    `xml:"schemalist"`
	Enums   []xmlEnum   `xml:"enum"`
	Schemas []xmlSchema `xml:"schema"`
}

type xmlEnum struct {
	ID     string         `xml:"id,attr"`
	Values []xmlEnumValue `xml:"value"`
}

type xmlEnumValue struct {
	Nick  string `xml:"nick,attr"`
	Value int32  `xml:"value,attr"`
}

type xmlSchema struct {
	ID   string   `xml:"id,attr"`
	Path string   `xml:"path,attr"`
	Keys []xmlKey `xml:"key"`
}

type xmlKey struct {
	Name    string    `xml:"name,attr"`
	Type    string    `xml:"type,attr"`
	Enum    string    `xml:"enum,attr"`
	Default string    `xml:"default"`
	Summary string    `xml:"summary"`
	Range   *xmlRange `xml:"range"`
}

type xmlRange struct {
	Min string `xml:"min,attr"`
	Max string `xml:"max,attr"`
}

// FromXMLFile reads a schema document from a file.
func FromXMLFile(path string) (*Schema, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening schema file: %w", err)
	}

	defer func() {
		_ = f.Close()
	}()

	return FromXML(f)
}

// FromXML decodes a schema document. The first <schema> element becomes
// the result; enum definitions are collected document-wide since keys
// reference them by their document-level id.
func FromXML(r io.Reader) (*Schema, error) {
	var doc xmlSchemaList
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding schema document: %w", err)
	}

	if len(doc.Schemas) == 0 {
		return nil, ErrNoSchema
	}

	enums := make(map[string]*Enum, len(doc.Enums))
	for _, e := range doc.Enums {
		enum := &Enum{Name: e.ID}
		for _, v := range e.Values {
			enum.Values = append(enum.Values, EnumValue{Nick: v.Nick, Value: v.Value})
		}

		enums[e.ID] = enum
	}

	src := doc.Schemas[0]
	out := &Schema{
		ID:    src.ID,
		Path:  src.Path,
		Enums: enums,
	}

	for _, k := range src.Keys {
		key, err := convertKey(k)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k.Name, err)
		}

		out.Keys = append(out.Keys, key)
	}

	return out, nil
}

func convertKey(k xmlKey) (*Key, error) {
	var sig KeySignature

	switch {
	case k.Type != "" && k.Enum != "":
		return nil, ErrKeySignature
	case k.Type != "":
		sig = TypeSignature(k.Type)
	case k.Enum != "":
		sig = EnumSignature(k.Enum)
	default:
		return nil, ErrKeySignature
	}

	key := &Key{
		Name:      k.Name,
		Signature: sig,
		Default:   strings.TrimSpace(k.Default),
		Summary:   strings.TrimSpace(k.Summary),
	}

	if k.Range != nil {
		key.Range = &Range{Min: k.Range.Min, Max: k.Range.Max}
	}

	return key, nil
}
