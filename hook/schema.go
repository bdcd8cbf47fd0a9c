// Package hook lets a caller customize schema generation for specific C
// type names without forking internal/build: a SchemaOverride replaces a
// named struct/enum's generated schema outright, and a SchemaTransform
// rewrites one the generator already produced. This plays the same role
// the teacher's reflect.Type-keyed SchemaProvider/SchemaTransformer pair
// played for Go struct types, re-keyed on the C type name a typedef/struct
// declaration introduces since there is no reflect.Type for C source.
package hook

import "github.com/talav/c2openapi/internal/model"

// SchemaOverride replaces the schema SchemaGenerator would otherwise
// derive from the parsed struct or enum named typeName.
type SchemaOverride interface {
	OverrideSchema(typeName string) (*model.Schema, bool)
}

// SchemaTransform rewrites a schema SchemaGenerator already built for
// typeName, e.g. to add a format or x- extension the C source has no
// Doxygen directive to express.
type SchemaTransform interface {
	TransformSchema(typeName string, s *model.Schema) *model.Schema
}

// SchemaOverrideFunc adapts a function to a SchemaOverride.
type SchemaOverrideFunc func(typeName string) (*model.Schema, bool)

func (f SchemaOverrideFunc) OverrideSchema(typeName string) (*model.Schema, bool) { return f(typeName) }

// SchemaTransformFunc adapts a function to a SchemaTransform.
type SchemaTransformFunc func(typeName string, s *model.Schema) *model.Schema

func (f SchemaTransformFunc) TransformSchema(typeName string, s *model.Schema) *model.Schema {
	return f(typeName, s)
}
