package patch

import (
	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/token"
)

// function is the located extent of one C function definition: its
// identifier token index, the range of its declarator (name through the
// matching closing paren of the argument list), and the range of its body
// (the matching `{...}` that follows).
type function struct {
	identToken int
	sigStart   int
	sigEnd     int
	bodyStart  int
	bodyEnd    int
}

// findFunction scans toks for a function whose identifier matches
// "<prefix>operationId" (the same identifier Signature's funcName would
// produce for op), per spec.md §4.9 step 2.
func findFunction(src []byte, toks []token.Token, op *model.Operation, cfg config.EmitterConfig) *function {
	wantGroup := ""
	if len(op.Tags) > 0 {
		wantGroup = op.Tags[0]
	}

	want := expectedIdent(op.OperationID, wantGroup, cfg)

	for i, tok := range toks {
		if tok.Kind != token.KindIdent {
			continue
		}

		if string(tok.Bytes(src)) != want {
			continue
		}

		if fn := tryParseFunctionAt(src, toks, i); fn != nil {
			return fn
		}
	}

	return nil
}

// expectedIdent mirrors internal/emit's funcName composition without
// importing internal/emit's Signature machinery, since the patch engine
// only needs the bare identifier, not a full prototype string.
func expectedIdent(operationID, tag string, cfg config.EmitterConfig) string {
	group := ""
	if tag != "" {
		group = sanitizeIdent(tag)
		if group != "" {
			group = initialCapASCII(group) + "_"
		}
	}

	if cfg.NamespacePrefix == "" {
		return group + operationID
	}

	ns := sanitizeIdent(cfg.NamespacePrefix)

	return initialCapASCII(ns) + "_" + group + operationID
}

func sanitizeIdent(s string) string {
	var b []byte

	prevUnderscore := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9':
			b = append(b, c)
			prevUnderscore = false
		default:
			if !prevUnderscore && len(b) > 0 {
				b = append(b, '_')
				prevUnderscore = true
			}
		}
	}

	for len(b) > 0 && b[len(b)-1] == '_' {
		b = b[:len(b)-1]
	}

	return string(b)
}

func initialCapASCII(s string) string {
	if s == "" {
		return s
	}

	if s[0] >= 'a' && s[0] <= 'z' {
		out := []byte(s)
		out[0] -= 'a' - 'A'

		return string(out)
	}

	return s
}

// tryParseFunctionAt attempts to parse a function definition whose
// identifier token is at index idx: identifier, '(', argument list, ')',
// then '{', a scope-tracked body, and the matching '}'. Returns nil if the
// shape doesn't match (e.g. the identifier is a call site, not a
// definition -- no '{' follows the declarator's ')').
func tryParseFunctionAt(src []byte, toks []token.Token, idx int) *function {
	j := idx + 1

	j = skipTrivia(toks, j)
	if j >= len(toks) || toks[j].Kind != token.KindLparen {
		return nil
	}

	depth := 0
	sigEndTok := -1

	for ; j < len(toks); j++ {
		switch toks[j].Kind {
		case token.KindLparen:
			depth++
		case token.KindRparen:
			depth--
			if depth == 0 {
				sigEndTok = j
			}
		}

		if sigEndTok >= 0 {
			break
		}
	}

	if sigEndTok < 0 {
		return nil
	}

	k := skipTrivia(toks, sigEndTok+1)
	if k >= len(toks) || toks[k].Kind != token.KindLbrace {
		return nil
	}

	braceDepth := 0
	bodyEndTok := -1

	for b := k; b < len(toks); b++ {
		switch toks[b].Kind {
		case token.KindLbrace:
			braceDepth++
		case token.KindRbrace:
			braceDepth--
			if braceDepth == 0 {
				bodyEndTok = b
			}
		}

		if bodyEndTok >= 0 {
			break
		}
	}

	if bodyEndTok < 0 {
		return nil
	}

	return &function{
		identToken: idx,
		sigStart:   findLineStart(src, toks[idx].Offset),
		sigEnd:     toks[sigEndTok].End(),
		bodyStart:  toks[k].Offset,
		bodyEnd:    toks[bodyEndTok].End(),
	}
}

func skipTrivia(toks []token.Token, i int) int {
	for i < len(toks) {
		switch toks[i].Kind {
		case token.KindWhitespace, token.KindLineComment, token.KindBlockComment:
			i++
		default:
			return i
		}
	}

	return i
}

// findLineStart walks backward from offset to the start of its line, so a
// signature patch replaces from the return-type token rather than leaving
// "int " dangling before the replaced identifier. Conservatively stops at
// the previous ';' or '}' if no newline is found first (keeps a one-line
// "int foo(...)" on the same file line from swallowing a prior statement).
func findLineStart(src []byte, offset int) int {
	i := offset

	for i > 0 {
		c := src[i-1]
		if c == '\n' {
			return i
		}

		if c == ';' || c == '}' {
			return i
		}

		i--
	}

	return i
}
