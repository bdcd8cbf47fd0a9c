package c2openapi

import (
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/aggregate"
	"github.com/talav/c2openapi/internal/apierr"
	"github.com/talav/c2openapi/internal/build"
	"github.com/talav/c2openapi/internal/cst"
	"github.com/talav/c2openapi/internal/docparser"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/token"
	"github.com/talav/c2openapi/internal/typeinspect"
)

// buildFileResults runs the C front end -- tokenizer, CST builder, type
// inspector, doc-comment parser, operation builder -- over every source,
// sharing one SchemaGenerator across all of them so a struct defined in
// one header and referenced from another resolves to the same $ref.
//
// A lexical/syntactic failure in one file does not fail the whole run
// (spec.md §7's "a per-file failure does not fail the whole run"): that
// file is dropped and the rest are still processed, unless every file
// fails, in which case the last such error is returned.
func buildFileResults(sources []Source, cfg config.EmitterConfig, schemaOpts ...build.SchemaOption) ([]aggregate.FileResult, error) {
	parsed := make([]parsedSource, 0, len(sources))

	var (
		allDefs []typeinspect.TypeDef
		lastErr error
	)

	for _, src := range sources {
		toks, err := token.Scan(src.Content)
		if err != nil {
			lastErr = apierr.New(apierr.KindInvalidInput, "c2openapi", "tokenize "+src.Path, err)
			continue
		}

		nodes, err := cst.Build(toks, src.Content)
		if err != nil && len(nodes) == 0 {
			lastErr = apierr.New(apierr.KindInvalidInput, "c2openapi", "parse "+src.Path, err)
			continue
		}

		defs, err := typeinspect.Inspect(nodes, toks, src.Content)
		if err != nil {
			lastErr = apierr.New(apierr.KindInvalidInput, "c2openapi", "inspect types in "+src.Path, err)
			continue
		}

		allDefs = append(allDefs, defs...)
		parsed = append(parsed, parsedSource{Source: src, tokens: toks, nodes: nodes})
	}

	if len(parsed) == 0 && len(sources) > 0 {
		return nil, lastErr
	}

	gen := build.NewSchemaGenerator(cfg.SchemaPrefix, allDefs, schemaOpts...)

	var files []aggregate.FileResult

	for _, p := range parsed {
		files = append(files, fileResultsFor(p, gen, cfg)...)
	}

	return files, nil
}

type parsedSource struct {
	Source
	tokens []token.Token
	nodes  []cst.Node
}

// fileResultsFor walks one source's CST nodes in order and produces one
// aggregate.FileResult per function (its built operation) and one per
// orphan doc-comment block (a comment that documents no following
// function, carrying file-level globals) -- appended in source order
// rather than merged by hand, since aggregate.Aggregate already folds a
// sequence of FileResults in caller order.
func fileResultsFor(p parsedSource, gen *build.SchemaGenerator, cfg config.EmitterConfig) []aggregate.FileResult {
	var files []aggregate.FileResult

	for i, n := range p.nodes {
		switch n.Kind {
		case cst.KindFunction:
			sig, ok := extractSignature(n, p.tokens, p.Content)
			if !ok {
				continue
			}

			var doc *docparser.Metadata
			if text, ok := leadingComment(p.nodes, p.tokens, p.Content, i); ok {
				doc, _ = docparser.Parse(text)
			}

			built := build.BuildOperation(sig, doc, gen, cfg)
			files = append(files, aggregate.FileResult{Path: p.Path, Operations: []build.Built{built}})

		case cst.KindComment:
			if commentsFunction(p.nodes, i) {
				continue
			}

			text := string(p.tokens[n.Start].Bytes(p.Content))

			meta, err := docparser.Parse(text)
			if err != nil || isEmptyGlobals(meta) {
				continue
			}

			files = append(files, aggregate.FileResult{Path: p.Path, Globals: meta})
		}
	}

	return files
}

// leadingComment returns the nearest preceding KindComment node's text for
// the node at index i, skipping whitespace, if one immediately precedes it.
func leadingComment(nodes []cst.Node, toks []token.Token, src []byte, i int) (string, bool) {
	for j := i - 1; j >= 0; j-- {
		switch nodes[j].Kind {
		case cst.KindWhitespace:
			continue
		case cst.KindComment:
			return string(toks[nodes[j].Start].Bytes(src)), true
		default:
			return "", false
		}
	}

	return "", false
}

// commentsFunction reports whether the comment node at index i documents
// the function that immediately follows it (skipping whitespace), which
// marks it as already handled by the function-node branch above rather
// than a file-level global block.
func commentsFunction(nodes []cst.Node, i int) bool {
	for j := i + 1; j < len(nodes); j++ {
		switch nodes[j].Kind {
		case cst.KindWhitespace:
			continue
		case cst.KindFunction:
			return true
		default:
			return false
		}
	}

	return false
}

// isEmptyGlobals reports whether meta carries no file-level information
// worth recording as an aggregate.FileResult -- an ordinary comment with no
// directives parses into a zero Metadata except possibly Description.
func isEmptyGlobals(meta *docparser.Metadata) bool {
	return meta.InfoTitle == "" && meta.InfoVersion == "" && meta.InfoSummary == "" &&
		meta.InfoDescription == "" && meta.TermsOfService == "" &&
		meta.ContactName == "" && meta.ContactURL == "" && meta.ContactEmail == "" &&
		meta.LicenseName == "" && meta.LicenseIdentifier == "" && meta.LicenseURL == "" &&
		len(meta.TagMeta) == 0 && len(meta.SecuritySchemes) == 0 && len(meta.Servers) == 0
}

// aggregateFiles wraps internal/aggregate.Aggregate and returns its error
// unchanged (already an *apierr.Error wrapping the aggregate sentinel).
func aggregateFiles(files []aggregate.FileResult) (*model.Spec, error) {
	spec, err := aggregate.Aggregate(files)
	if err != nil {
		return nil, err
	}

	return spec, nil
}

// extractSignature parses a KindFunction node's declarator range
// (tokens[node.Start:node.BraceOpen], up to but excluding the opening
// brace) into a build.Signature: return type, pointer depth, name, and
// ordered argument list. The return-type/pointer-depth/name split mirrors
// typeinspect.parseField's declarator walk for struct fields, generalized
// to stop at a parenthesized argument list instead of an array/bitfield
// suffix.
func extractSignature(node cst.Node, toks []token.Token, src []byte) (build.Signature, bool) {
	decl := significant(toks, node.Start, node.BraceOpen)

	parenIdx := -1

	for i, t := range decl {
		if t.Kind == token.KindLparen {
			parenIdx = i

			break
		}
	}

	if parenIdx <= 0 {
		return build.Signature{}, false
	}

	closeIdx := matchingParen(decl, parenIdx)
	if closeIdx < 0 {
		return build.Signature{}, false
	}

	nameIdx := parenIdx - 1
	if decl[nameIdx].Kind != token.KindIdent {
		return build.Signature{}, false
	}

	name := string(decl[nameIdx].Bytes(src))
	returnType, returnPointerDepth, returnRef := parseTypeTokens(decl[:nameIdx], src)

	sig := build.Signature{
		Name:               name,
		ReturnType:         returnType,
		ReturnPointerDepth: returnPointerDepth,
		ReturnRefName:      returnRef,
	}

	for _, argDecl := range splitArgs(decl[parenIdx+1:closeIdx], src) {
		if arg, ok := parseArg(argDecl, src); ok {
			sig.Args = append(sig.Args, arg)
		}
	}

	return sig, true
}

// significant filters trivia tokens out of [start, end), the same
// whitespace/comment/directive skip typeinspect.significant applies before
// a struct body walk -- a function declarator needs the identical filter
// before its return-type/name/argument split.
func significant(toks []token.Token, start, end int) []token.Token {
	var out []token.Token

	for _, t := range toks[start:end] {
		switch t.Kind {
		case token.KindWhitespace, token.KindLineComment, token.KindBlockComment, token.KindDirective:
			continue
		}

		out = append(out, t)
	}

	return out
}

// matchingParen returns the index in decl of the ')' matching the '(' at
// openIdx, depth-tracking nested parens (a function-pointer argument can
// introduce its own parenthesized declarator).
func matchingParen(decl []token.Token, openIdx int) int {
	depth := 0

	for i := openIdx; i < len(decl); i++ {
		switch decl[i].Kind {
		case token.KindLparen:
			depth++
		case token.KindRparen:
			depth--
			if depth == 0 {
				return i
			}
		}
	}

	return -1
}

// splitArgs splits a parameter list's tokens on top-level commas. A lone
// "(void)" parameter list is treated as zero arguments.
func splitArgs(toks []token.Token, src []byte) [][]token.Token {
	if len(toks) == 0 {
		return nil
	}

	if len(toks) == 1 && string(toks[0].Bytes(src)) == "void" {
		return nil
	}

	var args [][]token.Token

	depth := 0
	start := 0

	for i, t := range toks {
		switch t.Kind {
		case token.KindLparen:
			depth++
		case token.KindRparen:
			depth--
		case token.KindComma:
			if depth == 0 {
				args = append(args, toks[start:i])
				start = i + 1
			}
		}
	}

	args = append(args, toks[start:])

	return args
}

// parseArg parses one argument declarator into a build.Arg, following the
// same array-suffix/pointer-count/trailing-name pattern
// typeinspect.parseField uses for struct fields (minus the bitfield case,
// which cannot appear in a C argument list).
func parseArg(decl []token.Token, src []byte) (build.Arg, bool) {
	if len(decl) == 0 {
		return build.Arg{}, false
	}

	arrayLen := -1
	isArray := false

	if lb := indexOfKind(decl, token.KindLbracket); lb >= 0 {
		isArray = true

		if lb+1 < len(decl) && decl[lb+1].Numeric != nil {
			arrayLen = int(decl[lb+1].Numeric.Magnitude)
		}

		decl = decl[:lb]
	}

	if len(decl) == 0 {
		return build.Arg{}, false
	}

	nameIdx := -1

	for i := len(decl) - 1; i >= 0; i-- {
		if decl[i].Kind == token.KindIdent {
			nameIdx = i

			break
		}
	}

	if nameIdx < 0 {
		return build.Arg{}, false
	}

	name := string(decl[nameIdx].Bytes(src))
	cType, pointerDepth, refName := parseTypeTokens(decl[:nameIdx], src)

	arg := build.Arg{
		Name:         name,
		CType:        cType,
		PointerDepth: pointerDepth,
		IsArray:      isArray,
		RefName:      refName,
	}

	if isArray && arrayLen >= 0 {
		arg.ArrayLength = arrayLen
	}

	return arg, true
}

// parseTypeTokens joins a declarator's type tokens (excluding the trailing
// name) into a normalized type string, counts leading '*' tokens as
// pointer depth, and extracts a struct/union RefName, matching
// typeinspect.parseField's equivalent inline logic.
func parseTypeTokens(toks []token.Token, src []byte) (cType string, pointerDepth int, refName string) {
	var parts []string

	for _, t := range toks {
		switch t.Kind {
		case token.KindStar:
			pointerDepth++
		case token.KindKeyword, token.KindIdent:
			parts = append(parts, string(t.Bytes(src)))
		}
	}

	cType = strings.Join(parts, " ")

	if strings.HasPrefix(cType, "struct ") || strings.HasPrefix(cType, "union ") {
		refName = strings.TrimSpace(strings.TrimPrefix(strings.TrimPrefix(cType, "struct"), "union"))
	}

	return cType, pointerDepth, refName
}

func indexOfKind(toks []token.Token, kind token.Kind) int {
	for i, t := range toks {
		if t.Kind == kind {
			return i
		}
	}

	return -1
}
