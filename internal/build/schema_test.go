package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/cst"
	"github.com/talav/c2openapi/internal/typeinspect"
)

func TestSchemaForCTypeScalars(t *testing.T) {
	gen := NewSchemaGenerator("#/components/schemas/", nil)

	tests := []struct {
		cType  string
		ptr    int
		wantTy string
		wantFm string
	}{
		{"int", 0, TypeInteger, formatInt32},
		{"long long", 0, TypeInteger, formatInt64},
		{"float", 0, TypeNumber, "float"},
		{"double", 0, TypeNumber, "double"},
		{"bool", 0, TypeBoolean, ""},
		{"const char", 1, TypeString, ""},
	}

	for _, tt := range tests {
		s := schemaForCType(tt.cType, tt.ptr, false, 0, "", gen)
		assert.Equal(t, tt.wantTy, s.Type, tt.cType)
		assert.Equal(t, tt.wantFm, s.Format, tt.cType)
	}
}

func TestSchemaForCTypeStructRef(t *testing.T) {
	gen := NewSchemaGenerator("#/components/schemas/", []typeinspect.TypeDef{
		{Name: "User", Kind: cst.KindStruct, Fields: []typeinspect.Field{
			{Name: "id", CType: "int", Kind: typeinspect.FieldScalar},
		}},
	})

	s := schemaForCType("struct User", 1, false, 0, "User", gen)
	assert.Equal(t, "#/components/schemas/User", s.Ref)

	schemas := gen.Schemas()
	require.Contains(t, schemas, "User")
	assert.Equal(t, TypeObject, schemas["User"].Type)
	assert.Contains(t, schemas["User"].Properties, "id")
}

func TestSchemaForCTypeArray(t *testing.T) {
	gen := NewSchemaGenerator("#/components/schemas/", nil)

	s := schemaForCType("int", 0, true, 4, "", gen)
	assert.Equal(t, TypeArray, s.Type)
	require.NotNil(t, s.Items)
	assert.Equal(t, TypeInteger, s.Items.Type)
	require.NotNil(t, s.MaxItems)
	assert.Equal(t, 4, *s.MaxItems)
}

func TestSchemaGeneratorEnum(t *testing.T) {
	gen := NewSchemaGenerator("#/components/schemas/", []typeinspect.TypeDef{
		{Name: "Color", Kind: cst.KindEnum, EnumMembers: []typeinspect.EnumMember{
			{Name: "Red", Value: 0},
			{Name: "Blue", Value: 1},
		}},
	})

	ref := gen.SchemaForRef("Color")
	assert.Equal(t, "#/components/schemas/Color", ref.Ref)

	s := gen.Schemas()["Color"]
	require.NotNil(t, s)
	assert.Equal(t, TypeInteger, s.Type)
	assert.Equal(t, []any{0, 1}, s.Enum)
}

func TestSchemaGeneratorMarkInlineOnly(t *testing.T) {
	gen := NewSchemaGenerator("#/components/schemas/", []typeinspect.TypeDef{
		{Name: "Upload", Kind: cst.KindStruct},
	})

	gen.SchemaForRef("Upload")
	gen.MarkInlineOnly("Upload")

	assert.NotContains(t, gen.Schemas(), "Upload")
}
