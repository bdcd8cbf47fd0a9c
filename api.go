// Package c2openapi is a bidirectional bridge between annotated C source
// and OpenAPI v3.2 specifications: [API.ToOpenAPI] reads Doxygen-annotated
// C headers and produces an OpenAPI document, [API.FromOpenAPI] reads an
// OpenAPI document and produces a compilable C client, and [API.Sync]
// rewrites an existing hand-maintained C client in place to match a
// changed document. All three are pure functions over caller-supplied
// bytes; file-system walking, argument parsing, and a CLI front end are
// collaborators outside this package, the same boundary the teacher drew
// around its own router-facing API type.
package c2openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/hook"
	"github.com/talav/c2openapi/internal/apierr"
	"github.com/talav/c2openapi/internal/build"
	"github.com/talav/c2openapi/internal/emit"
	"github.com/talav/c2openapi/internal/export"
	v304 "github.com/talav/c2openapi/internal/export/v304"
	v312 "github.com/talav/c2openapi/internal/export/v312"
	v320 "github.com/talav/c2openapi/internal/export/v320"
	"github.com/talav/c2openapi/internal/loader"
	"github.com/talav/c2openapi/internal/model"
	"github.com/talav/c2openapi/internal/patch"
)

// API holds the emitter configuration and export target shared across
// ToOpenAPI/FromOpenAPI/Sync calls. Build one with [NewAPI] and reuse it;
// it carries no per-call state.
type API struct {
	cfg          config.EmitterConfig
	version      string
	validateSpec bool

	schemaOverrides  []hook.SchemaOverride
	schemaTransforms []hook.SchemaTransform

	exporter export.Exporter
	adapters map[string]export.ViewAdapter
}

// Option configures an API using the functional options pattern.
type Option func(*API)

// NewAPI creates an API targeting OpenAPI 3.2.0 with
// [config.DefaultEmitterConfig], and options applied in order.
func NewAPI(opts ...Option) *API {
	a := &API{
		cfg:     config.DefaultEmitterConfig(),
		version: "3.2.0",
	}

	for _, opt := range opts {
		opt(a)
	}

	viewAdapters := []export.ViewAdapter{
		&v304.AdapterV304{},
		&v312.AdapterV312{},
		&v320.AdapterV320{},
	}

	a.exporter = export.NewExporter(viewAdapters)

	a.adapters = make(map[string]export.ViewAdapter, len(viewAdapters))
	for _, ad := range viewAdapters {
		a.adapters[ad.Version()] = ad
	}

	return a
}

// WithEmitterConfig replaces the default emitter configuration.
func WithEmitterConfig(cfg config.EmitterConfig) Option {
	return func(a *API) {
		a.cfg = cfg
	}
}

// WithVersion sets the target OpenAPI version ToOpenAPI exports and
// FromOpenAPI/Sync expect their input document to declare. Supported
// values are "3.0.4", "3.1.2", and "3.2.0".
func WithVersion(version string) Option {
	return func(a *API) {
		a.version = version
	}
}

// WithValidation enables JSON Schema validation of ToOpenAPI's output (and
// of FromOpenAPI/Sync's input document) against the target version's OAS
// meta-schema.
func WithValidation(enabled bool) Option {
	return func(a *API) {
		a.validateSpec = enabled
	}
}

// WithSchemaOverrides registers [hook.SchemaOverride] values consulted
// before ToOpenAPI would otherwise derive a schema from a parsed C struct
// or enum, for types with serialization rules the doc-comment directives
// cannot express.
func WithSchemaOverrides(overrides ...hook.SchemaOverride) Option {
	return func(a *API) {
		a.schemaOverrides = append(a.schemaOverrides, overrides...)
	}
}

// WithSchemaTransforms registers [hook.SchemaTransform] values applied to
// every generated or overridden schema before ToOpenAPI emits it.
func WithSchemaTransforms(transforms ...hook.SchemaTransform) Option {
	return func(a *API) {
		a.schemaTransforms = append(a.schemaTransforms, transforms...)
	}
}

// Source is one C source or header file, the unit ToOpenAPI and Sync
// operate on. File-system walking is an external collaborator (per this
// package's non-goals), so callers read files themselves and hand them
// here already in memory -- the same bytes-in discipline internal/loader
// holds for OpenAPI documents.
type Source struct {
	Path    string
	Content []byte
}

// ToOpenAPI parses a set of annotated C sources into one OpenAPI document,
// in the order sources are given: tokenize, build the concrete syntax
// tree, inspect struct/enum/typedef declarations across every source so
// $refs resolve across files, then walk each source's functions and
// file-level doc-comment globals into an aggregate.FileResult, and fold
// the whole sequence into a spec with internal/aggregate before exporting
// it through the configured view adapter.
func (a *API) ToOpenAPI(ctx context.Context, sources []Source) (*Result, error) {
	var schemaOpts []build.SchemaOption
	if len(a.schemaOverrides) > 0 {
		schemaOpts = append(schemaOpts, build.WithSchemaOverrides(a.schemaOverrides...))
	}

	if len(a.schemaTransforms) > 0 {
		schemaOpts = append(schemaOpts, build.WithSchemaTransforms(a.schemaTransforms...))
	}

	files, err := buildFileResults(sources, a.cfg, schemaOpts...)
	if err != nil {
		return nil, err
	}

	spec, err := aggregateFiles(files)
	if err != nil {
		return nil, err
	}

	if !a.exporter.IsSupportedVersion(a.version) {
		return nil, fmt.Errorf("c2openapi: unsupported OpenAPI version: %s", a.version)
	}

	result, err := a.exporter.Export(ctx, spec, export.ExporterConfig{
		Version:        a.version,
		ShouldValidate: a.validateSpec,
	})
	if err != nil {
		return nil, fmt.Errorf("c2openapi: export spec: %w", err)
	}

	return &Result{JSON: result.Result, Warnings: result.Warnings}, nil
}

// FromOpenAPI decodes one OpenAPI document into a compilable C client: a
// header declaring one prototype per operation and a source file
// implementing each one against the transport backend internal/emit
// selects at compile time. retrievalURI is recorded on the decoded spec as
// its base URI for $ref resolution; it may be empty for a document with no
// external references.
func (a *API) FromOpenAPI(ctx context.Context, doc []byte, retrievalURI string) (*GeneratedClient, error) {
	spec, err := a.loadSpec(ctx, doc, retrievalURI)
	if err != nil {
		return nil, err
	}

	header := emit.Header(spec, a.cfg)
	source := emit.Source(spec, a.cfg)

	return &GeneratedClient{Header: []byte(header), Source: []byte(source)}, nil
}

// Sync rewrites sources in place to match doc: for every operation in the
// document, it locates the hand-written function matching that
// operation's generated name in whichever source declares it and patches
// only the ranges that drifted (signature, query-parameter block, header
// assignments, URL construction), leaving the rest of the file -- and any
// function with no corresponding operation -- untouched. An operation with
// no matching function in any source is appended to the first source
// instead, recorded with a [debug.WarnPatchAppendOnly] warning rather than
// failing the whole call.
func (a *API) Sync(ctx context.Context, doc []byte, retrievalURI string, sources []Source) (*SyncResult, error) {
	spec, err := a.loadSpec(ctx, doc, retrievalURI)
	if err != nil {
		return nil, err
	}

	contents := make([][]byte, len(sources))
	for i, src := range sources {
		contents[i] = src.Content
	}

	var warnings debug.Warnings

	var unmatched []*model.Operation

	for _, op := range specOperations(spec) {
		matched := false

		for i := range sources {
			patches, err := patch.Plan(contents[i], op, spec, a.cfg)
			if err != nil {
				var apiErr *apierr.Error
				if errors.As(err, &apiErr) && apiErr.Kind == apierr.KindNotFound {
					continue
				}

				return nil, err
			}

			contents[i], err = patch.Apply(contents[i], patches)
			if err != nil {
				return nil, err
			}

			matched = true

			break
		}

		if !matched {
			unmatched = append(unmatched, op)
		}
	}

	if len(unmatched) > 0 && len(contents) > 0 {
		var appended []byte

		for _, op := range unmatched {
			appended = append(appended, []byte("\n"+strings.TrimSuffix(emit.Signature(op, a.cfg), ";")+" {\n"+emit.Body(op, spec, a.cfg)+"}\n")...)
			warnings.Append(debug.NewWarning(debug.WarnPatchAppendOnly, op.OperationID,
				"no hand-written function matched this operation; appended a freshly generated one"))
		}

		contents[0] = append(contents[0], appended...)
	}

	files := make([]PatchedSource, len(sources))
	for i, src := range sources {
		files[i] = PatchedSource{Path: src.Path, Content: contents[i]}
	}

	return &SyncResult{Files: files, Warnings: warnings}, nil
}

// loadSpec decodes doc through internal/loader, validating it first when
// validation is enabled and rejecting a document declaring an unsupported
// OpenAPI version.
func (a *API) loadSpec(ctx context.Context, doc []byte, retrievalURI string) (*model.Spec, error) {
	adapter, ok := a.adapters[a.version]
	if !ok {
		return nil, fmt.Errorf("c2openapi: unsupported OpenAPI version: %s", a.version)
	}

	opts := loader.Options{}
	if a.validateSpec {
		opts.Validate = func(ctx context.Context, doc []byte) error {
			validator, err := export.NewValidator(adapter.SchemaJSON())
			if err != nil {
				return err
			}

			return validator.Validate(ctx, doc)
		}
	}

	return loader.Load(ctx, doc, retrievalURI, loader.NewRegistry(), opts)
}

// specOperations returns every operation declared in spec's paths and
// webhooks, in deterministic route-then-verb order -- the same ordering
// internal/emit's own file assembly uses, so Sync's append-only fallback
// lands new functions in a stable order across runs.
func specOperations(spec *model.Spec) []*model.Operation {
	type routed struct {
		route string
		verb  string
		op    *model.Operation
	}

	var all []routed

	collect := func(paths map[string]*model.PathItem) {
		for route, item := range paths {
			for _, vo := range item.Operations() {
				all = append(all, routed{route: route, verb: vo.Verb, op: vo.Operation})
			}
		}
	}

	collect(spec.Paths)
	collect(spec.Webhooks)

	sort.Slice(all, func(i, j int) bool {
		if all[i].route != all[j].route {
			return all[i].route < all[j].route
		}

		return all[i].verb < all[j].verb
	})

	ops := make([]*model.Operation, len(all))
	for i, r := range all {
		ops[i] = r.op
	}

	return ops
}
