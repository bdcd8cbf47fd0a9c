package token

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/apierr"
)

func TestScanTotality(t *testing.T) {
	src := []byte(`int add(int a, int b) { return a + b; } // trailing`)

	tokens, err := Scan(src)
	require.NoError(t, err)

	var total int
	for _, tok := range tokens {
		total += tok.Length
	}

	assert.Equal(t, len(src), total)
}

func TestScanDisjoint(t *testing.T) {
	src := []byte(`struct Foo { int x; };`)

	tokens, err := Scan(src)
	require.NoError(t, err)

	for i := 1; i < len(tokens); i++ {
		assert.Equal(t, tokens[i-1].End(), tokens[i].Offset)
	}
}

func TestScanKinds(t *testing.T) {
	src := []byte(`x += 1;`)

	tokens, err := Scan(src)
	require.NoError(t, err)

	var kinds []Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}

	assert.Contains(t, kinds, KindPlusAssign)
	assert.Contains(t, kinds, KindSemicolon)
}

func TestScanBlockComment(t *testing.T) {
	src := []byte("/* hello\nworld */int x;")

	tokens, err := Scan(src)
	require.NoError(t, err)

	assert.Equal(t, KindBlockComment, tokens[0].Kind)
	assert.Equal(t, "/* hello\nworld */", string(tokens[0].Bytes(src)))
}

func TestScanUnterminatedBlockComment(t *testing.T) {
	_, err := Scan([]byte("/* never closed"))

	require.Error(t, err)

	var apiErr *apierr.Error

	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, apierr.KindInvalidInput, apiErr.Kind)
}

func TestScanUnterminatedString(t *testing.T) {
	_, err := Scan([]byte(`char *s = "unterminated`))

	require.Error(t, err)
	assert.True(t, errors.Is(err, apierr.ErrInvalidInput))
}

func TestScanPreprocessorDirective(t *testing.T) {
	src := []byte("#define FOO 1\nint x;")

	tokens, err := Scan(src)
	require.NoError(t, err)

	assert.Equal(t, KindDirective, tokens[0].Kind)
	assert.Equal(t, "#define FOO 1", string(tokens[0].Bytes(src)))
}

func TestScanPreprocessorContinuation(t *testing.T) {
	src := []byte("#define FOO \\\n  1\nint x;")

	tokens, err := Scan(src)
	require.NoError(t, err)

	assert.Equal(t, KindDirective, tokens[0].Kind)
	assert.Equal(t, "#define FOO \\\n  1", string(tokens[0].Bytes(src)))
}

func TestScanIntegerLiteral(t *testing.T) {
	tests := []struct {
		name     string
		src      string
		base     int
		mag      uint64
		unsigned bool
		long     bool
	}{
		{"decimal", "42", 10, 42, false, false},
		{"hex", "0xFF", 16, 0xFF, false, false},
		{"octal", "0755", 8, 0755, false, false},
		{"binary", "0b101", 2, 5, false, false},
		{"unsigned long", "10UL", 10, 10, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Scan([]byte(tt.src))
			require.NoError(t, err)
			require.Len(t, tokens, 1)

			num := tokens[0].Numeric
			require.NotNil(t, num)
			assert.False(t, num.IsFloat)
			assert.Equal(t, tt.base, num.Base)
			assert.Equal(t, tt.mag, num.Magnitude)
			assert.Equal(t, tt.unsigned, num.Unsigned)
			assert.Equal(t, tt.long, num.Long)
		})
	}
}

func TestScanIntegerOverflow(t *testing.T) {
	tokens, err := Scan([]byte("99999999999999999999999999"))

	require.Error(t, err)
	assert.True(t, errors.Is(err, apierr.ErrOutOfRange))
	require.Len(t, tokens, 1)
	assert.True(t, tokens[0].Numeric.Overflowed)
}

func TestScanFloatLiteral(t *testing.T) {
	tokens, err := Scan([]byte("3.14f"))
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	num := tokens[0].Numeric
	require.NotNil(t, num)
	assert.True(t, num.IsFloat)
	assert.InDelta(t, 3.14, num.Value, 0.0001)
	assert.True(t, num.FloatSfx)
}

func TestScanHexFloatExponent(t *testing.T) {
	tokens, err := Scan([]byte("0x1.8p3"))
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	assert.True(t, tokens[0].Numeric.IsFloat)
}

func TestScanIdentifierVsKeyword(t *testing.T) {
	tokens, err := Scan([]byte("struct foo"))
	require.NoError(t, err)

	assert.Equal(t, KindKeyword, tokens[0].Kind)
	assert.Equal(t, KindWhitespace, tokens[1].Kind)
	assert.Equal(t, KindIdent, tokens[2].Kind)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "Lbrace", KindLbrace.String())
	assert.Equal(t, "Unknown", Kind(255).String())
}
