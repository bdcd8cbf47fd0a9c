package loader

import "github.com/talav/c2openapi/internal/model"

var schemaKnownKeys = map[string]bool{
	"$ref": true, "$dynamicRef": true, "type": true, "nullable": true,
	"title": true, "description": true, "format": true, "contentEncoding": true,
	"contentMediaType": true, "deprecated": true, "readOnly": true, "writeOnly": true,
	"example": true, "examples": true, "pattern": true, "minLength": true, "maxLength": true,
	"minimum": true, "maximum": true, "exclusiveMinimum": true, "exclusiveMaximum": true,
	"multipleOf": true, "items": true, "minItems": true, "maxItems": true, "uniqueItems": true,
	"properties": true, "required": true, "dependentRequired": true, "additionalProperties": true,
	"patternProperties": true, "unevaluatedProperties": true, "minProperties": true,
	"maxProperties": true, "allOf": true, "anyOf": true, "oneOf": true, "not": true,
	"enum": true, "const": true, "default": true, "discriminator": true, "xml": true,
	"externalDocs": true,
}

// decodeSchema projects a decoded JSON object into a model.Schema. Keywords
// this project's build/export side never needs to round-trip
// (patternProperties, dependentSchemas, contains, and the rest of the long
// tail of JSON Schema 2020-12 vocabulary) are read where cheap and simply
// dropped otherwise; see DESIGN.md for why full schema fidelity is out of
// scope for the loader's first pass.
func decodeSchema(raw map[string]any) *model.Schema {
	s := &model.Schema{
		Ref:              str(raw["$ref"]),
		DynamicRef:       str(raw["$dynamicRef"]),
		Title:            str(raw["title"]),
		Description:      str(raw["description"]),
		Format:           str(raw["format"]),
		ContentEncoding:  str(raw["contentEncoding"]),
		ContentMediaType: str(raw["contentMediaType"]),
		Deprecated:       boolOf(raw["deprecated"]),
		ReadOnly:         boolOf(raw["readOnly"]),
		WriteOnly:        boolOf(raw["writeOnly"]),
		Example:          raw["example"],
		Pattern:          str(raw["pattern"]),
		Default:          raw["default"],
		Const:            raw["const"],
		UniqueItems:      boolOf(raw["uniqueItems"]),
		Extensions:       extensionsOf(raw, schemaKnownKeys),
	}

	decodeSchemaType(s, raw["type"])

	for _, e := range slice(raw["examples"]) {
		s.Examples = append(s.Examples, e)
	}

	s.MinLength = intPtr(raw["minLength"])
	s.MaxLength = intPtr(raw["maxLength"])
	s.MinItems = intPtr(raw["minItems"])
	s.MaxItems = intPtr(raw["maxItems"])
	s.MinProperties = intPtr(raw["minProperties"])
	s.MaxProperties = intPtr(raw["maxProperties"])
	s.MultipleOf = floatPtr(raw["multipleOf"])

	s.Minimum = decodeBound(raw["minimum"], raw["exclusiveMinimum"])
	s.Maximum = decodeBound(raw["maximum"], raw["exclusiveMaximum"])

	if items, ok := raw["items"].(map[string]any); ok {
		s.Items = decodeSchema(items)
	} else if b, ok := raw["items"].(bool); ok {
		s.Items = &model.Schema{IsBoolean: true, BoolValue: b}
	}

	if props, ok := raw["properties"].(map[string]any); ok {
		s.Properties = make(map[string]*model.Schema, len(props))
		for name, v := range props {
			if m, ok := v.(map[string]any); ok {
				s.Properties[name] = decodeSchema(m)
			} else if b, ok := v.(bool); ok {
				s.Properties[name] = &model.Schema{IsBoolean: true, BoolValue: b}
			}
		}
	}

	for _, r := range slice(raw["required"]) {
		s.Required = append(s.Required, str(r))
	}

	if dr, ok := raw["dependentRequired"].(map[string]any); ok {
		s.DependentRequired = make(map[string][]string, len(dr))
		for k, v := range dr {
			for _, name := range slice(v) {
				s.DependentRequired[k] = append(s.DependentRequired[k], str(name))
			}
		}
	}

	s.Additional = decodeAdditional(raw["additionalProperties"])

	if pp, ok := raw["patternProperties"].(map[string]any); ok {
		s.PatternProps = make(map[string]*model.Schema, len(pp))
		for pattern, v := range pp {
			if m, ok := v.(map[string]any); ok {
				s.PatternProps[pattern] = decodeSchema(m)
			}
		}
	}

	if up, ok := raw["unevaluatedProperties"].(map[string]any); ok {
		s.Unevaluated = decodeSchema(up)
	}

	s.AllOf = decodeSchemaList(raw["allOf"])
	s.AnyOf = decodeSchemaList(raw["anyOf"])
	s.OneOf = decodeSchemaList(raw["oneOf"])

	if not, ok := raw["not"].(map[string]any); ok {
		s.Not = decodeSchema(not)
	}

	s.Enum = slice(raw["enum"])

	if d, ok := raw["discriminator"].(map[string]any); ok {
		disc := &model.Discriminator{PropertyName: str(d["propertyName"])}
		if mapping, ok := d["mapping"].(map[string]any); ok {
			disc.Mapping = make(map[string]string, len(mapping))
			for k, v := range mapping {
				disc.Mapping[k] = str(v)
			}
		}

		s.Discriminator = disc
	}

	if x, ok := raw["xml"].(map[string]any); ok {
		s.XML = &model.XML{
			Name:      str(x["name"]),
			Namespace: str(x["namespace"]),
			Prefix:    str(x["prefix"]),
			Attribute: boolOf(x["attribute"]),
			Wrapped:   boolOf(x["wrapped"]),
		}
	}

	if ed, ok := raw["externalDocs"].(map[string]any); ok {
		s.ExternalDocs = decodeExternalDocs(ed)
	}

	return s
}

// decodeSchemaType handles both the 3.0 single-string "type" keyword and
// the 3.1+ array form, including the common ["T", "null"] nullable idiom,
// which collapses to Type+Nullable rather than populating TypeUnion.
func decodeSchemaType(s *model.Schema, v any) {
	switch t := v.(type) {
	case string:
		s.Type = t
	case []any:
		var names []string
		for _, e := range t {
			names = append(names, str(e))
		}

		var nonNull []string
		for _, n := range names {
			if n == "null" {
				s.Nullable = true
			} else {
				nonNull = append(nonNull, n)
			}
		}

		switch len(nonNull) {
		case 1:
			s.Type = nonNull[0]
		case 0:
			// type: ["null"] alone; leave Type empty, Nullable already set.
		default:
			s.TypeUnion = nonNull
		}
	}
}

func decodeSchemaList(v any) []*model.Schema {
	var out []*model.Schema

	for _, e := range slice(v) {
		if m, ok := e.(map[string]any); ok {
			out = append(out, decodeSchema(m))
		} else if b, ok := e.(bool); ok {
			out = append(out, &model.Schema{IsBoolean: true, BoolValue: b})
		}
	}

	return out
}

// decodeBound merges a 3.0-style (numeric minimum/maximum + boolean
// exclusiveMinimum/exclusiveMaximum) or 3.1-style (numeric
// exclusiveMinimum/exclusiveMaximum alone) bound into one model.Bound.
func decodeBound(value, exclusive any) *model.Bound {
	if f, ok := exclusive.(float64); ok {
		return &model.Bound{Value: f, Exclusive: true}
	}

	if value == nil {
		return nil
	}

	f, ok := value.(float64)
	if !ok {
		return nil
	}

	return &model.Bound{Value: f, Exclusive: boolOf(exclusive)}
}

func decodeAdditional(v any) *model.Additional {
	switch t := v.(type) {
	case bool:
		b := t

		return &model.Additional{Allow: &b}
	case map[string]any:
		return &model.Additional{Schema: decodeSchema(t)}
	default:
		return nil
	}
}

func intPtr(v any) *int {
	f, ok := v.(float64)
	if !ok {
		return nil
	}

	i := int(f)

	return &i
}

func floatPtr(v any) *float64 {
	f, ok := v.(float64)
	if !ok {
		return nil
	}

	return &f
}
