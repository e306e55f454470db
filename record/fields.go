package record

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Field is one named value of a flat record.
type Field struct {
	Name  string
	Value any
}

// Fielder is implemented by records that can list their fields in
// declaration order.
type Fielder interface {
	Fields() []Field
}

// JSON encodes r as a flat JSON object. Keys keep declaration order, which
// a map-based encoding would sort away.
func JSON(r Fielder) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r.Fields() {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Name)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.Name, err)
		}
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.Name, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// YAML encodes r as a YAML mapping in declaration order.
func YAML(r Fielder) ([]byte, error) {
	doc := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range r.Fields() {
		var val yaml.Node
		if err := val.Encode(f.Value); err != nil {
			return nil, fmt.Errorf("encode %s: %w", f.Name, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Name}
		doc.Content = append(doc.Content, key, &val)
	}
	return yaml.Marshal(doc)
}

// render formats fields as Name(key=value, …), quoting strings the way a
// frozen dataclass repr does.
func render(name string, fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case string:
			parts[i] = fmt.Sprintf("%s='%s'", f.Name, v)
		default:
			parts[i] = fmt.Sprintf("%s=%v", f.Name, v)
		}
	}
	return name + "(" + strings.Join(parts, ", ") + ")"
}
