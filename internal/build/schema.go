package build

import (
	"strings"

	"github.com/talav/c2openapi/hook"
	"github.com/talav/c2openapi/internal/cst"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/typeinspect"
)

// JSON Schema type constants, reused by both the struct/enum generator
// below and the C-type-to-OpenAPI mapping table in typemap.go.
const (
	TypeString  = "string"
	TypeArray   = "array"
	TypeObject  = "object"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"

	formatInt32  = "int32"
	formatInt64  = "int64"
	formatBinary = "binary"

	contentEncodingBase64 = "base64"
	contentTypeOctetStream = "application/octet-stream"
)

// SchemaGenerator turns typeinspect.TypeDefs discovered in a source file
// into OpenAPI schemas, caching one schema per named struct/enum so that
// repeated references become a $ref instead of being inlined again. This
// plays the same role the teacher's reflect.Type-keyed SchemaGenerator
// played, re-pointed at parsed C type definitions instead of Go types.
type SchemaGenerator struct {
	prefix string
	defs   map[string]typeinspect.TypeDef

	schemas    map[string]*model.Schema
	inlineOnly map[string]bool

	overrides  []hook.SchemaOverride
	transforms []hook.SchemaTransform
}

// SchemaOption configures a SchemaGenerator at construction time.
type SchemaOption func(*SchemaGenerator)

// WithSchemaOverrides registers overrides consulted, in order, before a
// named type's schema is derived from its parsed TypeDef. The first
// override to report a match wins.
func WithSchemaOverrides(overrides ...hook.SchemaOverride) SchemaOption {
	return func(g *SchemaGenerator) {
		g.overrides = append(g.overrides, overrides...)
	}
}

// WithSchemaTransforms registers transforms applied, in order, to every
// named type's schema after it is generated or overridden.
func WithSchemaTransforms(transforms ...hook.SchemaTransform) SchemaOption {
	return func(g *SchemaGenerator) {
		g.transforms = append(g.transforms, transforms...)
	}
}

// NewSchemaGenerator creates a generator over the type definitions found
// while inspecting one or more source files.
func NewSchemaGenerator(prefix string, defs []typeinspect.TypeDef, opts ...SchemaOption) *SchemaGenerator {
	byName := make(map[string]typeinspect.TypeDef, len(defs))

	for _, d := range defs {
		if d.Name != "" {
			byName[d.Name] = d
		}
	}

	g := &SchemaGenerator{
		prefix:     prefix,
		defs:       byName,
		schemas:    make(map[string]*model.Schema),
		inlineOnly: make(map[string]bool),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Schemas returns all generated schemas, suitable for OpenAPI
// components/schemas. Inline-only schemas (MarkInlineOnly) are excluded.
func (g *SchemaGenerator) Schemas() map[string]*model.Schema {
	result := make(map[string]*model.Schema, len(g.schemas))

	for name, s := range g.schemas {
		if !g.inlineOnly[name] {
			result[name] = s
		}
	}

	return result
}

// MarkInlineOnly excludes a named schema from Schemas() while still
// allowing it to be referenced (used for multipart bodies, which must be
// inline per spec.md's request-body rules).
func (g *SchemaGenerator) MarkInlineOnly(name string) {
	g.inlineOnly[name] = true
}

// SchemaForRef returns a $ref schema for a named struct/enum type,
// generating and caching its body from the inspected TypeDef the first
// time it is seen. Unknown names still get a $ref -- the writer round
// trips whatever raw JSON a later loader pass supplies for them.
func (g *SchemaGenerator) SchemaForRef(name string) *model.Schema {
	if name == "" {
		return &model.Schema{Type: TypeObject}
	}

	if _, ok := g.schemas[name]; !ok {
		g.schemas[name] = &model.Schema{} // placeholder breaks self-reference recursion

		s := g.overridden(name)
		if s == nil {
			if def, ok := g.defs[name]; ok {
				s = g.generate(def)
			} else {
				s = &model.Schema{Type: TypeObject}
			}
		}

		for _, t := range g.transforms {
			s = t.TransformSchema(name, s)
		}

		g.schemas[name] = s
	}

	return &model.Schema{Ref: g.prefix + name}
}

// overridden returns the first registered SchemaOverride's schema for
// name, or nil if none matched.
func (g *SchemaGenerator) overridden(name string) *model.Schema {
	for _, o := range g.overrides {
		if s, ok := o.OverrideSchema(name); ok {
			return s
		}
	}

	return nil
}

func (g *SchemaGenerator) generate(def typeinspect.TypeDef) *model.Schema {
	switch {
	case def.Kind == cst.KindEnum:
		return g.generateEnum(def)
	case def.Kind == cst.KindTypedef && def.AliasOf != "":
		return schemaForCType(def.AliasOf, 0, false, 0, "", g)
	default:
		return g.generateStruct(def)
	}
}

func (g *SchemaGenerator) generateEnum(def typeinspect.TypeDef) *model.Schema {
	s := &model.Schema{Type: TypeInteger, Title: def.Name}

	names := make([]string, 0, len(def.EnumMembers))
	for _, m := range def.EnumMembers {
		s.Enum = append(s.Enum, m.Value)
		names = append(names, m.Name)
	}

	if len(names) > 0 {
		s.Extensions = map[string]any{"x-enum-varnames": names}
	}

	return s
}

func (g *SchemaGenerator) generateStruct(def typeinspect.TypeDef) *model.Schema {
	s := &model.Schema{Type: TypeObject, Title: def.Name}
	s.Properties = make(map[string]*model.Schema, len(def.Fields))

	for _, f := range def.Fields {
		fs := schemaForCType(f.CType, f.PointerDepth, f.IsArray, f.ArrayLength, f.RefName, g)
		s.Properties[f.Name] = fs
		s.Required = append(s.Required, f.Name)
	}

	return s
}

// normalizeCType collapses a field/return type's qualifier text down to the
// bare base type name the mapping table in typemap.go keys on: strips
// "const"/"struct"/"union" and collapses internal whitespace.
func normalizeCType(cType string) string {
	fields := strings.Fields(cType)
	out := fields[:0]

	for _, f := range fields {
		if f == "const" || f == "struct" || f == "union" || f == "volatile" {
			continue
		}

		out = append(out, f)
	}

	return strings.Join(out, " ")
}
