// Package typeinspect walks struct/enum/typedef CST nodes and produces a
// normalized type-definition list (StructFields form) with bitfield
// widths, pointer/array suffixes, and enum member values resolved,
// grounded on original_source/src/classes/emit_schema.c's struct-to-schema
// walk and parse_numeric.c/parse_initializer.c's initializer reading.
package typeinspect

import (
	"strings"

	"github.com/talav/c2openapi/internal/cst"
	"github.com/talav/c2openapi/internal/token"
)

// FieldKind classifies how a struct field's type maps onward to a schema.
type FieldKind byte

const (
	FieldScalar FieldKind = iota
	FieldPointer
	FieldArray
	FieldStructRef
)

// Field is one member of a struct or union.
type Field struct {
	Name string

	// CType is the field's declared type text with the field name and any
	// array/bitfield suffix stripped (e.g. "const char *", "struct User").
	CType string

	Kind FieldKind

	// PointerDepth counts leading '*' tokens in the declared type.
	PointerDepth int

	// ArrayLength is the literal array extent, when present
	// (0 when unspecified, e.g. `int xs[]`).
	ArrayLength int
	IsArray     bool

	// BitfieldWidth is set when the field declares `: N`.
	BitfieldWidth    int
	HasBitfieldWidth bool

	// RefName is the referenced struct/typedef name for FieldStructRef
	// fields (the bare type name with "struct"/"union" stripped).
	RefName string
}

// EnumMember is one member of an enum, with its resolved integer value.
type EnumMember struct {
	Name         string
	Value        int
	ValueIsSet   bool // true when the source gave an explicit initializer
}

// TypeDef is a normalized struct, union, enum, or scalar-typedef
// declaration in source order.
type TypeDef struct {
	Name string
	Kind cst.Kind // KindStruct, KindEnum, or KindTypedef

	Fields      []Field
	EnumMembers []EnumMember

	// AliasOf is set for a typedef of a scalar/pointer type that is not
	// itself an inline struct/enum body (e.g. `typedef uint32_t id_t;`).
	AliasOf string
}

// Inspect walks nodes in order and returns a TypeDef for each
// struct/enum/typedef construct. Function, declaration, and trivia nodes
// are skipped.
func Inspect(nodes []cst.Node, toks []token.Token, src []byte) ([]TypeDef, error) {
	var defs []TypeDef

	for _, n := range nodes {
		switch n.Kind {
		case cst.KindStruct:
			defs = append(defs, inspectStruct(n, toks, src))
		case cst.KindEnum:
			defs = append(defs, inspectEnum(n, toks, src))
		case cst.KindTypedef:
			defs = append(defs, inspectTypedef(n, toks, src))
		}
	}

	return defs, nil
}

// significant filters out trivia tokens from a node's token range, since
// neither the struct/enum body walkers nor the name search need to see
// whitespace or comments.
func significant(toks []token.Token, start, end int) []token.Token {
	out := make([]token.Token, 0, end-start)

	for i := start; i < end; i++ {
		switch toks[i].Kind {
		case token.KindWhitespace, token.KindLineComment, token.KindBlockComment, token.KindDirective:
			continue
		}

		out = append(out, toks[i])
	}

	return out
}

func text(tok token.Token, src []byte) string {
	return string(tok.Bytes(src))
}

func braceSpan(toks []token.Token, src []byte) (open, close int, ok bool) {
	depth := 0

	for i, t := range toks {
		if t.Kind == token.KindLbrace {
			if depth == 0 {
				open = i
			}

			depth++
		}

		if t.Kind == token.KindRbrace {
			depth--

			if depth == 0 {
				return open, i, true
			}
		}
	}

	return 0, 0, false
}

// nameAfterBrace returns the identifier that follows the closing brace up
// to the terminating ';', used for `struct { ... } Name;` and
// `typedef struct { ... } Name;` forms.
func nameAfterBrace(toks []token.Token, closeIdx int, src []byte) string {
	for i := closeIdx + 1; i < len(toks); i++ {
		switch toks[i].Kind {
		case token.KindIdent:
			return text(toks[i], src)
		case token.KindSemicolon:
			return ""
		}
	}

	return ""
}

// nameBeforeBrace returns the tag name between the leading keyword
// (struct/union/enum) and the opening brace, when present
// (`struct Point { ... }`).
func nameBeforeBrace(toks []token.Token, openIdx int, src []byte) string {
	for i := openIdx - 1; i >= 0; i-- {
		if toks[i].Kind == token.KindIdent {
			return text(toks[i], src)
		}

		if toks[i].Kind == token.KindKeyword {
			break
		}
	}

	return ""
}

func inspectStruct(n cst.Node, allToks []token.Token, src []byte) TypeDef {
	toks := significant(allToks, n.Start, n.End)

	open, closeIdx, ok := braceSpan(toks, src)
	if !ok {
		return TypeDef{Kind: cst.KindStruct}
	}

	name := nameBeforeBrace(toks, open, src)
	if name == "" {
		name = nameAfterBrace(toks, closeIdx, src)
	}

	return TypeDef{
		Name:   name,
		Kind:   cst.KindStruct,
		Fields: splitFields(toks[open+1:closeIdx], src),
	}
}

// splitFields splits a struct/union body's token slice (between braces)
// into field declarations at each top-level ';' and parses each one.
func splitFields(body []token.Token, src []byte) []Field {
	var fields []Field

	depth := 0
	start := 0

	for i, t := range body {
		switch t.Kind {
		case token.KindLbrace:
			depth++
		case token.KindRbrace:
			depth--
		case token.KindSemicolon:
			if depth == 0 {
				if f, ok := parseField(body[start:i], src); ok {
					fields = append(fields, f)
				}

				start = i + 1
			}
		}
	}

	return fields
}

// parseField interprets one field declaration's tokens (excluding the
// trailing ';'): leading type tokens, then the field name, then optional
// array-length or bitfield-width suffixes.
func parseField(decl []token.Token, src []byte) (Field, bool) {
	if len(decl) == 0 {
		return Field{}, false
	}

	// Bitfield: "... name : N"
	bitWidth := -1

	colonIdx := -1

	for i, t := range decl {
		if t.Kind == token.KindColon {
			colonIdx = i

			break
		}
	}

	if colonIdx >= 0 && colonIdx+1 < len(decl) && decl[colonIdx+1].Numeric != nil {
		bitWidth = int(decl[colonIdx+1].Numeric.Magnitude)
		decl = decl[:colonIdx]
	}

	// Array suffix: "... name [ N ]" or "... name [ ]"
	arrayLen := -1
	isArray := false

	if lb := indexOf(decl, token.KindLbracket); lb >= 0 {
		isArray = true

		if lb+1 < len(decl) && decl[lb+1].Numeric != nil {
			arrayLen = int(decl[lb+1].Numeric.Magnitude)
		}

		decl = decl[:lb]
	}

	if len(decl) == 0 {
		return Field{}, false
	}

	nameIdx := -1

	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Kind == token.KindIdent {
			nameIdx = i

			break
		}
	}

	if nameIdx < 0 {
		return Field{}, false
	}

	name := text(decl[nameIdx], src)

	typeTokens := decl[:nameIdx]

	pointerDepth := 0
	for _, t := range typeTokens {
		if t.Kind == token.KindStar {
			pointerDepth++
		}
	}

	var typeParts []string

	for _, t := range typeTokens {
		if t.Kind == token.KindKeyword || t.Kind == token.KindIdent {
			typeParts = append(typeParts, text(t, src))
		}
	}

	cType := strings.Join(typeParts, " ")

	f := Field{
		Name:         name,
		CType:        cType,
		PointerDepth: pointerDepth,
		IsArray:      isArray,
	}

	if bitWidth >= 0 {
		f.HasBitfieldWidth = true
		f.BitfieldWidth = bitWidth
	}

	if isArray && arrayLen >= 0 {
		f.ArrayLength = arrayLen
	}

	switch {
	case isArray:
		f.Kind = FieldArray
	case pointerDepth > 0:
		f.Kind = FieldPointer
	case strings.HasPrefix(cType, "struct ") || strings.HasPrefix(cType, "union "):
		f.Kind = FieldStructRef
		f.RefName = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(cType, "struct"), "union"))
	default:
		f.Kind = FieldScalar
	}

	return f, true
}

func indexOf(toks []token.Token, kind token.Kind) int {
	for i, t := range toks {
		if t.Kind == kind {
			return i
		}
	}

	return -1
}

func inspectEnum(n cst.Node, allToks []token.Token, src []byte) TypeDef {
	toks := significant(allToks, n.Start, n.End)

	open, closeIdx, ok := braceSpan(toks, src)
	if !ok {
		return TypeDef{Kind: cst.KindEnum}
	}

	name := nameBeforeBrace(toks, open, src)
	if name == "" {
		name = nameAfterBrace(toks, closeIdx, src)
	}

	members := splitEnumMembers(toks[open+1:closeIdx], src)

	return TypeDef{Name: name, Kind: cst.KindEnum, EnumMembers: members}
}

func splitEnumMembers(body []token.Token, src []byte) []EnumMember {
	var members []EnumMember

	next := 0
	start := 0

	flush := func(end int) {
		seg := body[start:end]
		if len(seg) == 0 {
			return
		}

		if seg[0].Kind != token.KindIdent {
			return
		}

		m := EnumMember{Name: text(seg[0], src), Value: next}

		if len(seg) >= 3 && seg[1].Kind == token.KindAssign && seg[2].Numeric != nil {
			m.Value = int(seg[2].Numeric.Magnitude)
			m.ValueIsSet = true
		}

		members = append(members, m)
		next = m.Value + 1
	}

	depth := 0

	for i, t := range body {
		switch t.Kind {
		case token.KindLparen:
			depth++
		case token.KindRparen:
			depth--
		case token.KindComma:
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}

	flush(len(body))

	return members
}

func inspectTypedef(n cst.Node, allToks []token.Token, src []byte) TypeDef {
	toks := significant(allToks, n.Start, n.End)

	if open, closeIdx, ok := braceSpan(toks, src); ok {
		name := nameAfterBrace(toks, closeIdx, src)
		kind := cst.KindStruct

		for i := 1; i < open; i++ {
			if toks[i].Kind == token.KindKeyword && text(toks[i], src) == "enum" {
				kind = cst.KindEnum
			}
		}

		if kind == cst.KindEnum {
			return TypeDef{Name: name, Kind: cst.KindEnum, EnumMembers: splitEnumMembers(toks[open+1:closeIdx], src)}
		}

		return TypeDef{Name: name, Kind: cst.KindStruct, Fields: splitFields(toks[open+1:closeIdx], src)}
	}

	// Scalar alias: `typedef <type> Name;`
	var names []string

	for _, t := range toks {
		if t.Kind == token.KindIdent || (t.Kind == token.KindKeyword && text(t, src) != "typedef") {
			names = append(names, text(t, src))
		}
	}

	if len(names) < 2 {
		return TypeDef{Kind: cst.KindTypedef}
	}

	return TypeDef{
		Name:    names[len(names)-1],
		Kind:    cst.KindTypedef,
		AliasOf: strings.Join(names[:len(names)-1], " "),
	}
}
