// Package cst builds the flat concrete-syntax-tree sequence the rest of the
// pipeline walks: top-level constructs (functions, aggregate types,
// typedefs, declarations) plus pass-through trivia nodes, in source order,
// with no semantic analysis.
package cst

import (
	"errors"

	"github.com/talav/c2openapi/internal/token"
)

// Kind identifies a CST node's top-level construct category.
type Kind byte

const (
	KindWhitespace Kind = iota
	KindComment
	KindMacro
	KindFunction
	KindStruct
	KindEnum
	KindTypedef
	KindDeclaration
)

func (k Kind) String() string {
	switch k {
	case KindWhitespace:
		return "Whitespace"
	case KindComment:
		return "Comment"
	case KindMacro:
		return "Macro"
	case KindFunction:
		return "Function"
	case KindStruct:
		return "Struct"
	case KindEnum:
		return "Enum"
	case KindTypedef:
		return "Typedef"
	case KindDeclaration:
		return "Declaration"
	default:
		return "Unknown"
	}
}

// Node is a half-open token range [Start, End) tagged with a Kind. Nesting
// is implied by containment, not represented structurally: the CST is a
// flat ordered sequence.
type Node struct {
	Kind Kind

	// Start and End are token indices into the slice passed to Build,
	// forming a half-open range [Start, End).
	Start, End int

	// BraceOpen is the token index of the construct's opening brace.
	// Meaningful only for KindFunction nodes; -1 otherwise, and -1 for a
	// function prototype that has no body (terminated by ';' instead of
	// '{').
	BraceOpen int
}

// ErrTruncated indicates Build reached end-of-input with an unbalanced
// brace or parenthesis in the construct it was scanning. The nodes
// successfully parsed before that construct are still returned.
var ErrTruncated = errors.New("cst: truncated input")

var aggregateKeywords = map[string]Kind{
	"struct": KindStruct,
	"union":  KindStruct, // unions are modeled as struct nodes; typeinspect distinguishes by the keyword text it re-reads from src.
	"enum":   KindEnum,
}

// Build walks tokens once and produces the flat top-level node sequence.
// src must be the same buffer the tokens were scanned from: classifying a
// construct as a function, aggregate type, or typedef requires re-reading
// keyword text, which a bare Kind tag does not carry.
func Build(tokens []token.Token, src []byte) ([]Node, error) {
	var nodes []Node

	i := 0
	n := len(tokens)

	for i < n {
		switch tokens[i].Kind {
		case token.KindWhitespace:
			nodes = append(nodes, Node{Kind: KindWhitespace, Start: i, End: i + 1, BraceOpen: -1})
			i++

			continue
		case token.KindLineComment, token.KindBlockComment:
			nodes = append(nodes, Node{Kind: KindComment, Start: i, End: i + 1, BraceOpen: -1})
			i++

			continue
		case token.KindDirective:
			nodes = append(nodes, Node{Kind: KindMacro, Start: i, End: i + 1, BraceOpen: -1})
			i++

			continue
		}

		node, next, ok := scanConstruct(tokens, src, i)
		if !ok {
			return nodes, ErrTruncated
		}

		nodes = append(nodes, node)
		i = next
	}

	return nodes, nil
}

// scanConstruct consumes one function/aggregate/typedef/declaration
// construct starting at tokens[start] and returns it along with the index
// just past its end. ok is false when end-of-input was reached with
// unbalanced braces or parentheses.
func scanConstruct(tokens []token.Token, src []byte, start int) (Node, int, bool) {
	kind := leadKind(tokens, src, start)
	braceOpen := -1
	depthParen := 0
	depthBrace := 0

	for j := start; j < len(tokens); j++ {
		switch tokens[j].Kind {
		case token.KindLparen:
			depthParen++
		case token.KindRparen:
			if depthParen > 0 {
				depthParen--
			}
		case token.KindLbrace:
			if depthBrace == 0 && braceOpen == -1 {
				braceOpen = j

				if kind == KindDeclaration {
					kind = KindFunction
				}
			}

			depthBrace++
		case token.KindRbrace:
			if depthBrace > 0 {
				depthBrace--
			}

			if depthBrace == 0 && kind == KindFunction {
				return Node{Kind: kind, Start: start, End: j + 1, BraceOpen: braceOpen}, j + 1, true
			}
		case token.KindSemicolon:
			if depthBrace == 0 && depthParen == 0 {
				return Node{Kind: kind, Start: start, End: j + 1, BraceOpen: braceOpen}, j + 1, true
			}
		}
	}

	return Node{}, 0, false
}

// leadKind scans forward from start, skipping trivia, looking for a
// struct/union/enum/typedef keyword before the construct's first '(' or
// '{'. Returns KindDeclaration when none is found, deferring to
// scanConstruct to promote it to KindFunction if a body follows.
func leadKind(tokens []token.Token, src []byte, start int) Kind {
	sawTypedef := false
	aggregate := Kind(0)
	sawAggregate := false

	for j := start; j < len(tokens); j++ {
		t := tokens[j]

		switch t.Kind {
		case token.KindWhitespace, token.KindLineComment, token.KindBlockComment, token.KindDirective:
			continue
		case token.KindLparen, token.KindLbrace, token.KindSemicolon:
			return resolveLeadKind(sawTypedef, sawAggregate, aggregate)
		case token.KindKeyword, token.KindIdent:
			word := string(t.Bytes(src))
			if word == "typedef" {
				sawTypedef = true

				continue
			}

			if k, ok := aggregateKeywords[word]; ok {
				aggregate = k
				sawAggregate = true
			}
		}
	}

	return resolveLeadKind(sawTypedef, sawAggregate, aggregate)
}

func resolveLeadKind(sawTypedef, sawAggregate bool, aggregate Kind) Kind {
	if sawTypedef {
		return KindTypedef
	}

	if sawAggregate {
		return aggregate
	}

	return KindDeclaration
}
