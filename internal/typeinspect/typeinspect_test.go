package typeinspect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/cst"
	"github.com/talav/c2openapi/internal/token"
)

func build(t *testing.T, src string) ([]cst.Node, []token.Token) {
	t.Helper()

	toks, err := token.Scan([]byte(src))
	require.NoError(t, err)

	nodes, err := cst.Build(toks, []byte(src))
	require.NoError(t, err)

	return nodes, toks
}

func TestInspectStruct(t *testing.T) {
	src := "struct User { int id; const char *name; unsigned flags : 4; };"
	nodes, toks := build(t, src)

	defs, err := Inspect(nodes, toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	d := defs[0]
	assert.Equal(t, "User", d.Name)
	require.Len(t, d.Fields, 3)

	assert.Equal(t, "id", d.Fields[0].Name)
	assert.Equal(t, FieldScalar, d.Fields[0].Kind)

	assert.Equal(t, "name", d.Fields[1].Name)
	assert.Equal(t, FieldPointer, d.Fields[1].Kind)
	assert.Equal(t, 1, d.Fields[1].PointerDepth)

	assert.Equal(t, "flags", d.Fields[2].Name)
	assert.True(t, d.Fields[2].HasBitfieldWidth)
	assert.Equal(t, 4, d.Fields[2].BitfieldWidth)
}

func TestInspectEnum(t *testing.T) {
	src := "enum Color { Red, Green = 5, Blue };"
	nodes, toks := build(t, src)

	defs, err := Inspect(nodes, toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	d := defs[0]
	assert.Equal(t, "Color", d.Name)
	require.Len(t, d.EnumMembers, 3)
	assert.Equal(t, "Red", d.EnumMembers[0].Name)
	assert.Equal(t, 0, d.EnumMembers[0].Value)
	assert.Equal(t, "Green", d.EnumMembers[1].Name)
	assert.Equal(t, 5, d.EnumMembers[1].Value)
	assert.Equal(t, "Blue", d.EnumMembers[2].Name)
	assert.Equal(t, 6, d.EnumMembers[2].Value)
}

func TestInspectTypedefStruct(t *testing.T) {
	src := "typedef struct { int x; int y; } Point;"
	nodes, toks := build(t, src)

	defs, err := Inspect(nodes, toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Equal(t, "Point", defs[0].Name)
	assert.Equal(t, cst.KindStruct, defs[0].Kind)
	assert.Len(t, defs[0].Fields, 2)
}

func TestInspectTypedefAlias(t *testing.T) {
	src := "typedef unsigned int id_t;"
	nodes, toks := build(t, src)

	defs, err := Inspect(nodes, toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, defs, 1)

	assert.Equal(t, "id_t", defs[0].Name)
	assert.Equal(t, "unsigned int", defs[0].AliasOf)
}

func TestInspectArrayField(t *testing.T) {
	src := "struct Buf { char data[16]; };"
	nodes, toks := build(t, src)

	defs, err := Inspect(nodes, toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, defs, 1)
	require.Len(t, defs[0].Fields, 1)

	f := defs[0].Fields[0]
	assert.Equal(t, FieldArray, f.Kind)
	assert.True(t, f.IsArray)
	assert.Equal(t, 16, f.ArrayLength)
}
