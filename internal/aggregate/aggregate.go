// Package aggregate folds the per-file output of the operation builder
// (internal/build) into one model.Spec, the way api.go's own
// processOperations/sortSpec pair folds hand-authored operations into a
// spec for the teacher's simpler single-call-site case. Aggregate
// generalizes that same group-by-path, deterministic-sort shape to
// multi-file, multi-global-block input: each source file can also carry
// file-level documentation globals (info/contact/license/tag/security
// scheme declarations attached to a comment with no following function).
package aggregate

import (
	"errors"
	"fmt"
	"sort"

	"github.com/talav/c2openapi/internal/apierr"
	"github.com/talav/c2openapi/internal/build"
	"github.com/talav/c2openapi/internal/docparser"
	"github.com/talav/c2openapi/internal/model"
)

// ErrDuplicateOperationID is wrapped by the *apierr.Error Aggregate returns
// when two operations across the aggregated files share an OperationID.
// model.Operation.OperationID is documented as globally unique when
// present, so a violation fails the aggregate rather than silently
// shadowing one operation with another -- a silent duplicate here would
// become a C client symbol collision downstream in internal/emit.
var ErrDuplicateOperationID = errors.New("aggregate: duplicate operationId")

// FileResult is one source file's contribution: its built operations, in
// declaration order, plus any file-level metadata globals found on a
// comment block that precedes no function (info_*, contact_*, license_*,
// termsOfService, @tagMeta, @securityScheme, @server).
type FileResult struct {
	Path       string
	Operations []build.Built
	Globals    *docparser.Metadata
}

// Aggregate folds files, in the caller-supplied order, into one spec. File
// order and in-file declaration order decide which file's globals and
// schemes win; the returned spec's tags are sorted by name, and its maps
// are left for the writer to order at export time.
func Aggregate(files []FileResult) (*model.Spec, error) {
	spec := &model.Spec{
		Paths:    make(map[string]*model.PathItem),
		Webhooks: make(map[string]*model.PathItem),
		Components: &model.Components{
			SecuritySchemes: make(map[string]*model.SecurityScheme),
		},
	}

	seenTags := make(map[string]bool)
	seenIDs := make(map[string]string)

	for _, f := range files {
		if f.Globals != nil {
			applyGlobals(spec, f.Globals, seenTags)
		}

		for _, built := range f.Operations {
			if built.Operation.OperationID != "" {
				if prev, ok := seenIDs[built.Operation.OperationID]; ok {
					return nil, apierr.New(apierr.KindInvalidInput, "aggregate",
						fmt.Sprintf("operationId %q in %s already used in %s", built.Operation.OperationID, f.Path, prev),
						ErrDuplicateOperationID)
				}

				seenIDs[built.Operation.OperationID] = f.Path
			}

			target := spec.Paths
			if built.IsWebhook {
				target = spec.Webhooks
			}

			item := target[built.Route]
			if item == nil {
				item = &model.PathItem{}
				target[built.Route] = item
			}

			assign(item, built)
		}
	}

	sortSpec(spec)

	return spec, nil
}

// assign places a built operation on its path item's verb field, or into
// AdditionalOperations when the verb is not one of the eight fixed HTTP
// methods or QUERY.
func assign(item *model.PathItem, built build.Built) {
	switch built.Verb {
	case "GET":
		item.Get = built.Operation
	case "PUT":
		item.Put = built.Operation
	case "POST":
		item.Post = built.Operation
	case "DELETE":
		item.Delete = built.Operation
	case "OPTIONS":
		item.Options = built.Operation
	case "HEAD":
		item.Head = built.Operation
	case "PATCH":
		item.Patch = built.Operation
	case "TRACE":
		item.Trace = built.Operation
	case "QUERY":
		item.Query = built.Operation
	default:
		if item.AdditionalOperations == nil {
			item.AdditionalOperations = make(map[string]*model.Operation)
		}

		item.AdditionalOperations[built.Verb] = built.Operation
	}
}

// applyGlobals merges one file's documentation globals into spec: the
// first file to set a singular Info/Contact/License field wins (matching
// the loader's "first declaration wins" discipline elsewhere in this
// project), while tags, security schemes, and servers accumulate across
// every file that declares them.
func applyGlobals(spec *model.Spec, g *docparser.Metadata, seenTags map[string]bool) {
	if spec.Info.Title == "" {
		spec.Info.Title = g.InfoTitle
	}

	if spec.Info.Version == "" {
		spec.Info.Version = g.InfoVersion
	}

	if spec.Info.Summary == "" {
		spec.Info.Summary = g.InfoSummary
	}

	if spec.Info.Description == "" {
		spec.Info.Description = g.InfoDescription
	}

	if spec.Info.TermsOfService == "" {
		spec.Info.TermsOfService = g.TermsOfService
	}

	if spec.Info.Contact == nil && (g.ContactName != "" || g.ContactURL != "" || g.ContactEmail != "") {
		spec.Info.Contact = &model.Contact{Name: g.ContactName, URL: g.ContactURL, Email: g.ContactEmail}
	}

	if spec.Info.License == nil && (g.LicenseName != "" || g.LicenseIdentifier != "" || g.LicenseURL != "") {
		spec.Info.License = &model.License{Name: g.LicenseName, Identifier: g.LicenseIdentifier, URL: g.LicenseURL}
	}

	for _, tm := range g.TagMeta {
		if seenTags[tm.Name] {
			continue
		}

		seenTags[tm.Name] = true

		tag := model.Tag{Name: tm.Name, Description: tm.Description}
		if tm.Summary != "" && tag.Description == "" {
			tag.Description = tm.Summary
		}

		if tm.ExternalDocsURL != "" {
			tag.ExternalDocs = &model.ExternalDocs{URL: tm.ExternalDocsURL, Description: tm.ExternalDocsDescription}
		}

		if tm.Parent != "" || tm.Kind != "" {
			tag.Extensions = map[string]any{}
			if tm.Parent != "" {
				tag.Extensions["x-parent"] = tm.Parent
			}

			if tm.Kind != "" {
				tag.Extensions["x-kind"] = tm.Kind
			}
		}

		spec.Tags = append(spec.Tags, tag)
	}

	for _, s := range g.SecuritySchemes {
		if _, ok := spec.Components.SecuritySchemes[s.Name]; ok {
			continue
		}

		spec.Components.SecuritySchemes[s.Name] = securitySchemeFromDoc(s)
	}

	for _, s := range g.Servers {
		srv := model.Server{URL: s.URL, Description: s.Description}

		if len(s.Variables) > 0 {
			srv.Variables = make(map[string]*model.ServerVariable, len(s.Variables))
			for _, v := range s.Variables {
				srv.Variables[v.Name] = &model.ServerVariable{Default: v.Default, Description: v.Description, Enum: v.Enum}
			}
		}

		spec.Servers = append(spec.Servers, srv)
	}
}

// securitySchemeFromDoc converts a documented @securityScheme directive
// into the model's SecurityScheme, dispatching each OAuth2 flow into its
// slot by the flow's documented Type.
func securitySchemeFromDoc(s docparser.SecurityScheme) *model.SecurityScheme {
	scheme := &model.SecurityScheme{
		Type:             s.Type,
		Description:      s.Description,
		Scheme:           s.Scheme,
		BearerFormat:     s.BearerFormat,
		Name:             s.ParamName,
		In:               s.In,
		OpenIDConnectURL: s.OpenIDConnectURL,
	}

	if s.DeprecatedSet {
		// Security schemes carry no Deprecated field in OpenAPI itself;
		// the documented flag is preserved as an extension so it is not
		// silently lost.
		scheme.Extensions = map[string]any{"x-deprecated": s.Deprecated}
	}

	if len(s.Flows) == 0 {
		return scheme
	}

	flows := &model.OAuthFlows{}

	for _, f := range s.Flows {
		flow := &model.OAuthFlow{
			AuthorizationURL:       f.AuthorizationURL,
			TokenURL:               f.TokenURL,
			DeviceAuthorizationURL: f.DeviceAuthorizationURL,
			RefreshURL:             f.RefreshURL,
		}

		if len(f.Scopes) > 0 {
			flow.Scopes = make(map[string]string, len(f.Scopes))
			for _, sc := range f.Scopes {
				flow.Scopes[sc.Name] = sc.Description
			}
		}

		switch f.Type {
		case "implicit":
			flows.Implicit = flow
		case "password":
			flows.Password = flow
		case "clientCredentials":
			flows.ClientCredentials = flow
		case "authorizationCode":
			flows.AuthorizationCode = flow
		case "deviceAuthorization":
			flows.DeviceAuthorization = flow
		}
	}

	scheme.Flows = flows

	return scheme
}

// sortSpec sorts tags for deterministic output. Paths and component maps
// need no explicit sort here: encoding/json already marshals map keys in
// sorted order, which is what every export view ultimately serializes
// through.
func sortSpec(s *model.Spec) {
	sort.Slice(s.Tags, func(i, j int) bool { return s.Tags[i].Name < s.Tags[j].Name })
}
