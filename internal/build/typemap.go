package build

import "github.com/talav/c2openapi/internal/model"

// scalarTypeMap implements spec.md's operation-builder C-type mapping
// table as map-based dispatch, the same shape as the teacher's own
// map-driven validator/lookup tables (lookUpByKind in the original
// reflect-based generator).
var scalarTypeMap = map[string]*model.Schema{
	"int":                {Type: TypeInteger, Format: formatInt32},
	"short":              {Type: TypeInteger, Format: formatInt32},
	"short int":          {Type: TypeInteger, Format: formatInt32},
	"signed":             {Type: TypeInteger, Format: formatInt32},
	"signed int":         {Type: TypeInteger, Format: formatInt32},
	"unsigned":           {Type: TypeInteger, Format: formatInt32, Minimum: &model.Bound{Value: 0}},
	"unsigned int":       {Type: TypeInteger, Format: formatInt32, Minimum: &model.Bound{Value: 0}},
	"unsigned short":     {Type: TypeInteger, Format: formatInt32, Minimum: &model.Bound{Value: 0}},
	"long":               {Type: TypeInteger, Format: formatInt64},
	"long int":           {Type: TypeInteger, Format: formatInt64},
	"long long":          {Type: TypeInteger, Format: formatInt64},
	"long long int":      {Type: TypeInteger, Format: formatInt64},
	"unsigned long":      {Type: TypeInteger, Format: formatInt64, Minimum: &model.Bound{Value: 0}},
	"unsigned long long": {Type: TypeInteger, Format: formatInt64, Minimum: &model.Bound{Value: 0}},
	"size_t":             {Type: TypeInteger, Format: formatInt64, Minimum: &model.Bound{Value: 0}},
	"int32_t":            {Type: TypeInteger, Format: formatInt32},
	"uint32_t":           {Type: TypeInteger, Format: formatInt32, Minimum: &model.Bound{Value: 0}},
	"int64_t":            {Type: TypeInteger, Format: formatInt64},
	"uint64_t":           {Type: TypeInteger, Format: formatInt64, Minimum: &model.Bound{Value: 0}},
	"float":              {Type: TypeNumber, Format: "float"},
	"double":             {Type: TypeNumber, Format: "double"},
	"long double":        {Type: TypeNumber, Format: "double"},
	"bool":               {Type: TypeBoolean},
	"_Bool":              {Type: TypeBoolean},
	"void":               {},
}

// schemaForCType applies spec.md §4.5 step 5's type-mapping table to one
// normalized C type occurrence. refName, when set, means the type was
// classified typeinspect.FieldStructRef and takes priority over the
// scalar table (`struct X *` -> (ref X)).
func schemaForCType(cType string, pointerDepth int, isArray bool, arrayLength int, refName string, gen *SchemaGenerator) *model.Schema {
	base := normalizeCType(cType)

	if isArray {
		item := schemaForCType(cType, 0, false, 0, refName, gen)
		s := &model.Schema{Type: TypeArray, Items: item}

		if arrayLength > 0 {
			s.MinItems = &arrayLength
			s.MaxItems = &arrayLength
		}

		return s
	}

	if refName != "" {
		return gen.SchemaForRef(refName)
	}

	if base == "char" && pointerDepth > 0 {
		return &model.Schema{Type: TypeString}
	}

	if base == "char" && !isArray {
		// []byte-shaped [N]char buffer already folded into isArray above;
		// a bare `char` field is a single character, represented as a
		// one-length string.
		one := 1

		return &model.Schema{Type: TypeString, MaxLength: &one}
	}

	if pointerDepth > 0 {
		if s, ok := scalarTypeMap[base]; ok {
			cp := *s
			cp.Nullable = true

			return &cp
		}

		return &model.Schema{Type: TypeObject, Nullable: true}
	}

	if s, ok := scalarTypeMap[base]; ok {
		cp := *s

		return &cp
	}

	// Unknown bare type name: likely an unresolved typedef alias or
	// forward-declared struct; fall back to a named object reference so
	// the writer still emits something round-trippable.
	return gen.SchemaForRef(base)
}
