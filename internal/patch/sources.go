package patch

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/emit"
	"github.com/talav/c2openapi/internal/model"
)

// signaturePatch compares the function's current declarator text against
// the emitter's expected signature and, when they differ, replaces the
// declarator range with the regenerated one (the trailing ';' that would
// terminate a prototype is not part of a definition's declarator, so it is
// stripped before use here).
func signaturePatch(src []byte, fn *function, op *model.Operation, cfg config.EmitterConfig) *Patch {
	want := strings.TrimSuffix(emit.Signature(op, cfg), ";")

	got := string(src[fn.sigStart:fn.sigEnd])
	if normalizeWhitespace(got) == normalizeWhitespace(want) {
		return nil
	}

	return &Patch{Range: Range{Start: fn.sigStart, End: fn.sigEnd}, Replacement: want}
}

func normalizeWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// queryBlockPatch locates the range from the first url_query_init call to
// the matching url_query_build call (inclusive of their containing
// statements) inside the function body and replaces it with the
// regenerated query block.
func queryBlockPatch(src []byte, fn *function, op *model.Operation, spec *model.Spec, cfg config.EmitterConfig) *Patch {
	body := src[fn.bodyStart:fn.bodyEnd]

	initIdx := bytes.Index(body, []byte("url_query_init"))
	if initIdx < 0 {
		return nil
	}

	buildIdx := bytes.Index(body, []byte("url_query_build"))

	start := statementStart(body, initIdx)

	var end int

	if buildIdx >= 0 && buildIdx > initIdx {
		end = statementEnd(body, buildIdx)
	} else {
		end = statementEnd(body, initIdx)
	}

	replacement := regeneratedQueryBlock(op, spec, cfg)

	return &Patch{
		Range:       Range{Start: fn.bodyStart + start, End: fn.bodyStart + end},
		Replacement: replacement,
	}
}

func regeneratedQueryBlock(op *model.Operation, spec *model.Spec, cfg config.EmitterConfig) string {
	full := emit.Body(op, spec, cfg)

	initIdx := strings.Index(full, "url_query_init")
	if initIdx < 0 {
		return ""
	}

	lineStart := strings.LastIndexByte(full[:initIdx], '\n') + 1

	buildEnd := strings.Index(full, "url_query_build")
	if buildEnd < 0 {
		nextNL := strings.IndexByte(full[initIdx:], '\n')
		if nextNL < 0 {
			return full[lineStart:]
		}

		return full[lineStart : initIdx+nextNL]
	}

	nextNL := strings.IndexByte(full[buildEnd:], '\n')
	if nextNL < 0 {
		return full[lineStart:]
	}

	return full[lineStart : buildEnd+nextNL]
}

// headerBlockPatches finds each "/* Header Parameter: <name> */" anchor
// comment in the function body and replaces it plus the statement that
// immediately follows with the regenerated header statement for that
// parameter.
func headerBlockPatches(src []byte, fn *function, op *model.Operation) []Patch {
	body := src[fn.bodyStart:fn.bodyEnd]

	var patches []Patch

	for _, p := range op.Parameters {
		if p.In != "header" {
			continue
		}

		anchor := fmt.Sprintf("/* Header Parameter: %s */", p.Name)

		idx := bytes.Index(body, []byte(anchor))
		if idx < 0 {
			continue
		}

		stmtStart := idx
		afterAnchor := idx + len(anchor)
		stmtEnd := statementEnd(body, skipWhitespaceBytes(body, afterAnchor))

		replacement := fmt.Sprintf("%s\nif (%s) { http_headers_add(&headers, \"%s\", %s); }", anchor, p.Name, p.Name, p.Name)

		patches = append(patches, Patch{
			Range:       Range{Start: fn.bodyStart + stmtStart, End: fn.bodyStart + stmtEnd},
			Replacement: replacement,
		})
	}

	return patches
}

// urlBuildPatch finds the first asprintf/snprintf statement that assigns
// to the configured URL variable ("url", matching internal/emit's own
// convention) and replaces it with the regenerated URL-builder statement.
func urlBuildPatch(src []byte, fn *function, op *model.Operation, spec *model.Spec, cfg config.EmitterConfig) *Patch {
	body := src[fn.bodyStart:fn.bodyEnd]

	idx := -1

	for _, call := range []string{"asprintf", "snprintf"} {
		if i := bytes.Index(body, []byte(call)); i >= 0 && (idx == -1 || i < idx) {
			if assignsURLVar(body, i) {
				idx = i
			}
		}
	}

	if idx < 0 {
		return nil
	}

	start := statementStart(body, idx)
	end := statementEnd(body, idx)

	replacement := regeneratedURLBlock(op, spec, cfg)

	return &Patch{
		Range:       Range{Start: fn.bodyStart + start, End: fn.bodyStart + end},
		Replacement: replacement,
	}
}

// assignsURLVar reports whether the snprintf/asprintf call at callIdx in
// body targets the "url" buffer, by checking its first argument.
func assignsURLVar(body []byte, callIdx int) bool {
	open := bytes.IndexByte(body[callIdx:], '(')
	if open < 0 {
		return false
	}

	after := body[callIdx+open+1:]

	return bytes.HasPrefix(bytes.TrimLeft(after, " \t"), []byte("url"))
}

func regeneratedURLBlock(op *model.Operation, spec *model.Spec, cfg config.EmitterConfig) string {
	full := emit.Body(op, spec, cfg)

	idx := strings.Index(full, "snprintf(url")
	if idx < 0 {
		return ""
	}

	lineStart := strings.LastIndexByte(full[:idx], '\n') + 1

	nextNL := strings.IndexByte(full[idx:], '\n')
	if nextNL < 0 {
		return full[lineStart:]
	}

	// Include the query_buf concatenation guard line that immediately
	// follows, if present -- the two lines together are the URL-build unit
	// this package regenerates as one statement group.
	rest := full[idx+nextNL+1:]
	if strings.HasPrefix(strings.TrimLeft(rest, " \t"), "if (query_buf") {
		secondNL := strings.IndexByte(rest, '\n')
		if secondNL >= 0 {
			return full[lineStart : idx+nextNL+1+secondNL]
		}
	}

	return full[lineStart : idx+nextNL]
}

func statementStart(body []byte, idx int) int {
	i := idx

	for i > 0 {
		c := body[i-1]
		if c == '\n' {
			return i
		}

		if c == ';' || c == '{' || c == '}' {
			return i
		}

		i--
	}

	return i
}

func statementEnd(body []byte, idx int) int {
	i := idx

	for i < len(body) {
		if body[i] == ';' {
			return i + 1
		}

		i++
	}

	return len(body)
}

func skipWhitespaceBytes(body []byte, i int) int {
	for i < len(body) && (body[i] == ' ' || body[i] == '\t' || body[i] == '\n' || body[i] == '\r') {
		i++
	}

	return i
}
