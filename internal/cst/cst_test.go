package cst

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/token"
)

func scan(t *testing.T, src string) []token.Token {
	t.Helper()

	toks, err := token.Scan([]byte(src))
	require.NoError(t, err)

	return toks
}

func TestBuildFunction(t *testing.T) {
	src := "int add(int a, int b) { return a + b; }"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	assert.Equal(t, KindFunction, nodes[0].Kind)
	assert.GreaterOrEqual(t, nodes[0].BraceOpen, 0)
	assert.Equal(t, token.KindLbrace, toks[nodes[0].BraceOpen].Kind)
}

func TestBuildStruct(t *testing.T) {
	src := "struct Point { int x; int y; };"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, KindStruct, nodes[0].Kind)
}

func TestBuildTypedefStruct(t *testing.T) {
	src := "typedef struct { int x; } Point;"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, KindTypedef, nodes[0].Kind)
}

func TestBuildEnum(t *testing.T) {
	src := "enum Color { Red, Green, Blue };"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, KindEnum, nodes[0].Kind)
}

func TestBuildDeclaration(t *testing.T) {
	src := "int add(int a, int b);"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	assert.Equal(t, KindDeclaration, nodes[0].Kind)
	assert.Equal(t, -1, nodes[0].BraceOpen)
}

func TestBuildTriviaPassthrough(t *testing.T) {
	src := "// comment\n#define FOO 1\nint x;"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)

	var kinds []Kind
	for _, n := range nodes {
		kinds = append(kinds, n.Kind)
	}

	assert.Contains(t, kinds, KindComment)
	assert.Contains(t, kinds, KindMacro)
	assert.Contains(t, kinds, KindDeclaration)
}

func TestBuildMultipleFunctions(t *testing.T) {
	src := "int a(void) { return 1; }\nint b(void) { return 2; }\n"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.NoError(t, err)

	var fnCount int
	for _, n := range nodes {
		if n.Kind == KindFunction {
			fnCount++
		}
	}

	assert.Equal(t, 2, fnCount)
}

func TestBuildTruncatedUnbalancedBrace(t *testing.T) {
	src := "int a(void) { return 1; }\nint b(void) { return 2;"
	toks := scan(t, src)

	nodes, err := Build(toks, []byte(src))
	require.ErrorIs(t, err, ErrTruncated)

	// The first, well-formed function is still returned.
	var fnCount int
	for _, n := range nodes {
		if n.Kind == KindFunction {
			fnCount++
		}
	}

	assert.Equal(t, 1, fnCount)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Function", KindFunction.String())
	assert.Equal(t, "Unknown", Kind(255).String())
}
