// Package patch implements the in-place C source synchronizer: given an
// existing source file and the spec it should match, it computes a
// minimal set of non-overlapping byte ranges to rewrite rather than
// regenerating the file wholesale, so hand-written code around a
// documented function survives a resync untouched.
//
// Grounded on original_source/c_cdd/refactor_api_sync.c/.h.
package patch

import (
	"bytes"
	"sort"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/apierr"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/token"
)

// Range is a half-open byte range, [Start, End), into the original source.
// Mirrors model.Bound's "value + flag" shape in spirit: here "boundary
// pair" rather than "value + exclusivity flag", since both ends matter
// equally for a patch.
type Range struct {
	Start int
	End   int
}

// Patch replaces the bytes in Range with Replacement.
type Patch struct {
	Range       Range
	Replacement string
}

// Plan computes the patch list for one operation's existing function body
// in existing, comparing it against the signature/query/header/URL shape
// the emitter would generate for op from spec and cfg. Patches are sorted
// by descending start offset and checked for overlap before being
// returned, per spec.md §9's "reject overlaps at construction time, not at
// apply time" redesign.
func Plan(existing []byte, op *model.Operation, spec *model.Spec, cfg config.EmitterConfig) ([]Patch, error) {
	toks, err := token.Scan(existing)
	if err != nil {
		return nil, apierr.New(apierr.KindInvalidInput, "patch", "tokenize existing source", err)
	}

	fn := findFunction(existing, toks, op, cfg)
	if fn == nil {
		return nil, apierr.New(apierr.KindNotFound, "patch", "no function matches operationId "+op.OperationID, nil)
	}

	var patches []Patch

	if p := signaturePatch(existing, fn, op, cfg); p != nil {
		patches = append(patches, *p)
	}

	if p := queryBlockPatch(existing, fn, op, spec, cfg); p != nil {
		patches = append(patches, *p)
	}

	patches = append(patches, headerBlockPatches(existing, fn, op)...)

	if p := urlBuildPatch(existing, fn, op, spec, cfg); p != nil {
		patches = append(patches, *p)
	}

	sort.Slice(patches, func(i, j int) bool { return patches[i].Range.Start < patches[j].Range.Start })

	for i := 1; i < len(patches); i++ {
		if patches[i].Range.Start < patches[i-1].Range.End {
			return nil, apierr.New(apierr.KindInvalidInput, "patch", "overlapping patch ranges", nil)
		}
	}

	sort.Slice(patches, func(i, j int) bool { return patches[i].Range.Start > patches[j].Range.Start })

	return patches, nil
}

// Apply rewrites src by replacing each patch's range with its replacement,
// applying patches in the order given. Callers get non-overlapping,
// descending-start-offset order from Plan so that applying left-to-right
// never invalidates a later range; Apply itself does not re-sort, so a
// hand-built patch list must already satisfy that order.
func Apply(src []byte, patches []Patch) ([]byte, error) {
	for i := 1; i < len(patches); i++ {
		if patches[i].Range.Start < patches[i-1].Range.End && patches[i].Range.End > patches[i-1].Range.Start {
			return nil, apierr.New(apierr.KindInvalidInput, "patch", "overlapping patch ranges", nil)
		}
	}

	out := append([]byte(nil), src...)

	for _, p := range patches {
		if p.Range.Start < 0 || p.Range.End > len(out) || p.Range.Start > p.Range.End {
			return nil, apierr.New(apierr.KindInvalidInput, "patch", "patch range out of bounds", nil)
		}

		var buf bytes.Buffer
		buf.Write(out[:p.Range.Start])
		buf.WriteString(p.Replacement)
		buf.Write(out[p.Range.End:])
		out = buf.Bytes()
	}

	return out, nil
}
