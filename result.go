package c2openapi

import "github.com/talav/c2openapi/debug"

// Result is the output of ToOpenAPI: the marshaled OpenAPI document plus
// any advisory warnings raised while building or exporting it.
type Result struct {
	JSON []byte

	// Warnings contains informational, non-fatal issues.
	// These are advisory only and do not indicate failure.
	Warnings debug.Warnings
}

// GeneratedClient is the output of FromOpenAPI: a compilable C header and
// implementation pair.
type GeneratedClient struct {
	Header []byte
	Source []byte
}

// PatchedSource is one file Sync rewrote, keyed by the same Path its
// corresponding Source was submitted under.
type PatchedSource struct {
	Path    string
	Content []byte
}

// SyncResult is the output of Sync: the patched files plus any advisory
// warnings raised while resyncing them (e.g. WarnPatchAppendOnly when an
// operation had no matching hand-written function to patch).
type SyncResult struct {
	Files    []PatchedSource
	Warnings debug.Warnings
}
