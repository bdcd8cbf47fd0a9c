package v320

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/talav/c2openapi/debug"
	"github.com/talav/c2openapi/internal/export/v312"
	"github.com/talav/c2openapi/internal/model"
)

//go:embed schema_v320.json
var schemaV320JSON []byte

// AdapterV320 projects a model.Spec into the OpenAPI 3.2.0 view, adapted
// from v312.AdapterV312 with additions for the QUERY method,
// additionalOperations, querystring parameters, and split item/prefix
// encoding.
type AdapterV320 struct{}

func (a *AdapterV320) Version() string {
	return "3.2.0"
}

func (a *AdapterV320) SchemaJSON() []byte {
	return schemaV320JSON
}

func (a *AdapterV320) View(spec *model.Spec) (any, debug.Warnings, error) {
	if spec == nil {
		return nil, nil, fmt.Errorf("nil spec")
	}

	var warnings debug.Warnings

	result := &ViewV320{
		OpenAPI:           a.Version(),
		JSONSchemaDialect: spec.JSONSchemaDialect,
		Info:              transformInfo(spec.Info),
		Servers:           v312.TransformServers(spec.Servers),
		Paths:             a.transformPaths(spec.Paths, &warnings),
		Components:        a.transformComponents(spec.Components, &warnings),
		Security:          v312.TransformSecurity(spec.Security),
		Tags:              v312.TransformTags(spec.Tags),
		ExternalDocs:      v312.TransformExternalDocs(spec.ExternalDocs),
		Webhooks:          a.transformWebhooks(spec.Webhooks, &warnings),
		Extensions:        spec.Extensions,
	}

	if err := validateViewV320(result); err != nil {
		return nil, nil, err
	}

	return result, warnings, nil
}

func validateViewV320(result *ViewV320) error {
	if result.Info.Title == "" {
		return fmt.Errorf("openapi: title is required")
	}
	if result.Info.Version == "" {
		return fmt.Errorf("openapi: version is required")
	}

	for key := range result.Extensions {
		if !strings.HasPrefix(key, "x-") {
			return fmt.Errorf("openapi: extension key must start with 'x-': %s", key)
		}
	}

	return nil
}

func transformInfo(in model.Info) *InfoV32 {
	info := &InfoV32{
		Title:          in.Title,
		Summary:        in.Summary,
		Description:    in.Description,
		TermsOfService: in.TermsOfService,
		Version:        in.Version,
		Extensions:     in.Extensions,
	}

	if in.Contact != nil {
		info.Contact = &ContactV32{Name: in.Contact.Name, URL: in.Contact.URL, Email: in.Contact.Email, Extensions: in.Contact.Extensions}
	}

	if in.License != nil {
		info.License = &LicenseV32{Name: in.License.Name, Identifier: in.License.Identifier, URL: in.License.URL, Extensions: in.License.Extensions}
	}

	return info
}

func (a *AdapterV320) transformPaths(in map[string]*model.PathItem, warnings *debug.Warnings) PathsV32 {
	paths := make(PathsV32, len(in))
	for path, item := range in {
		paths[path] = a.transformPathItem(item, warnings)
	}

	return paths
}

func (a *AdapterV320) transformWebhooks(in map[string]*model.PathItem, warnings *debug.Warnings) map[string]*PathItemV32 {
	if len(in) == 0 {
		return nil
	}

	webhooks := make(map[string]*PathItemV32, len(in))
	for name, item := range in {
		webhooks[name] = a.transformPathItem(item, warnings)
	}

	return webhooks
}

func (a *AdapterV320) transformPathItem(in *model.PathItem, warnings *debug.Warnings) *PathItemV32 {
	if in == nil {
		return nil
	}

	if in.Ref != "" {
		return &PathItemV32{Ref: in.Ref}
	}

	item := &PathItemV32{
		Summary:     in.Summary,
		Description: in.Description,
		Extensions:  in.Extensions,
	}

	if len(in.Parameters) > 0 {
		item.Parameters = a.transformParameters(in.Parameters, warnings)
	}

	item.Get = a.transformOperation(in.Get, warnings)
	item.Put = a.transformOperation(in.Put, warnings)
	item.Post = a.transformOperation(in.Post, warnings)
	item.Delete = a.transformOperation(in.Delete, warnings)
	item.Options = a.transformOperation(in.Options, warnings)
	item.Head = a.transformOperation(in.Head, warnings)
	item.Patch = a.transformOperation(in.Patch, warnings)
	item.Trace = a.transformOperation(in.Trace, warnings)
	item.Query = a.transformOperation(in.Query, warnings)

	if len(in.AdditionalOperations) > 0 {
		item.AdditionalOperations = make(map[string]*OperationV32, len(in.AdditionalOperations))
		for verb, op := range in.AdditionalOperations {
			item.AdditionalOperations[verb] = a.transformOperation(op, warnings)
		}
	}

	if len(in.Servers) > 0 {
		item.Servers = v312.TransformServers(in.Servers)
	}

	return item
}

func (a *AdapterV320) transformParameters(in []model.Parameter, warnings *debug.Warnings) []*ParameterV32 {
	out := make([]*ParameterV32, 0, len(in))
	for _, p := range in {
		out = append(out, a.transformParameter(p, warnings))
	}

	return out
}

func (a *AdapterV320) transformParameter(in model.Parameter, warnings *debug.Warnings) *ParameterV32 {
	if in.Ref != "" {
		return &ParameterV32{Ref: in.Ref}
	}

	p := &ParameterV32{
		Name:            in.Name,
		In:              in.In,
		Description:     in.Description,
		Required:        in.Required,
		Deprecated:      in.Deprecated,
		AllowEmptyValue: in.AllowEmptyValue,
		Style:           in.Style,
		Explode:         in.Explode,
		AllowReserved:   in.AllowReserved,
		Example:         in.Example,
		Schema:          v312.TransformSchema(in.Schema, warnings),
		Extensions:      in.Extensions,
	}

	if len(in.Examples) > 0 {
		p.Examples = make(map[string]*ExampleV32, len(in.Examples))
		for k, ex := range in.Examples {
			p.Examples[k] = v312.TransformExample(ex, warnings)
		}
	}

	if len(in.Content) > 0 {
		p.Content = make(map[string]*MediaTypeV32, len(in.Content))
		for ct, mt := range in.Content {
			p.Content[ct] = a.transformMediaType(mt, warnings)
		}
	}

	return p
}

func (a *AdapterV320) transformOperation(in *model.Operation, warnings *debug.Warnings) *OperationV32 {
	if in == nil {
		return nil
	}

	op := &OperationV32{
		Tags:        append([]string(nil), in.Tags...),
		Summary:     in.Summary,
		Description: in.Description,
		OperationID: in.OperationID,
		Deprecated:  in.Deprecated,
		Security:    v312.TransformSecurity(in.Security),
		Servers:     v312.TransformServers(in.Servers),
		Extensions:  in.Extensions,
	}

	if in.ExternalDocs != nil {
		op.ExternalDocs = v312.TransformExternalDocs(in.ExternalDocs)
	}

	if len(in.Parameters) > 0 {
		op.Parameters = a.transformParameters(in.Parameters, warnings)
	}

	op.RequestBody = a.transformRequestBody(in.RequestBody, warnings)

	if len(in.Responses) > 0 {
		op.Responses = make(map[string]*ResponseV32, len(in.Responses))
		for code, r := range in.Responses {
			op.Responses[code] = a.transformResponse(r, warnings)
		}
	}

	if len(in.Callbacks) > 0 {
		op.Callbacks = make(map[string]*CallbackV32, len(in.Callbacks))
		for name, cb := range in.Callbacks {
			op.Callbacks[name] = v312.TransformCallback(cb, warnings)
		}
	}

	return op
}

func (a *AdapterV320) transformRequestBody(in *model.RequestBody, warnings *debug.Warnings) *RequestBodyV32 {
	if in == nil {
		return nil
	}

	if in.Ref != "" {
		return &RequestBodyV32{Ref: in.Ref}
	}

	rb := &RequestBodyV32{Description: in.Description, Required: in.Required, Extensions: in.Extensions}

	if len(in.Content) > 0 {
		rb.Content = make(map[string]*MediaTypeV32, len(in.Content))
		for ct, mt := range in.Content {
			rb.Content[ct] = a.transformMediaType(mt, warnings)
		}
	}

	return rb
}

func (a *AdapterV320) transformResponse(in *model.Response, warnings *debug.Warnings) *ResponseV32 {
	if in == nil {
		return nil
	}

	if in.Ref != "" {
		return &ResponseV32{Ref: in.Ref}
	}

	r := &ResponseV32{Description: in.Description, Extensions: in.Extensions}

	if len(in.Content) > 0 {
		r.Content = make(map[string]*MediaTypeV32, len(in.Content))
		for ct, mt := range in.Content {
			r.Content[ct] = a.transformMediaType(mt, warnings)
		}
	}

	if len(in.Headers) > 0 {
		r.Headers = make(map[string]*HeaderV32, len(in.Headers))
		for name, h := range in.Headers {
			r.Headers[name] = a.transformHeader(h, warnings)
		}
	}

	if len(in.Links) > 0 {
		r.Links = make(map[string]*v312.LinkV31, len(in.Links))
		for name, link := range in.Links {
			r.Links[name] = v312.TransformLink(link)
		}
	}

	return r
}

func (a *AdapterV320) transformHeader(in *model.Header, warnings *debug.Warnings) *HeaderV32 {
	if in == nil {
		return nil
	}

	if in.Ref != "" {
		return &HeaderV32{Ref: in.Ref}
	}

	h := &HeaderV32{
		Description:     in.Description,
		Required:        in.Required,
		Deprecated:      in.Deprecated,
		AllowEmptyValue: in.AllowEmptyValue,
		Style:           in.Style,
		Explode:         in.Explode,
		Example:         in.Example,
		Schema:          v312.TransformSchema(in.Schema, warnings),
		Extensions:      in.Extensions,
	}

	if len(in.Content) > 0 {
		h.Content = make(map[string]*MediaTypeV32, len(in.Content))
		for ct, mt := range in.Content {
			h.Content[ct] = a.transformMediaType(mt, warnings)
		}
	}

	return h
}

func (a *AdapterV320) transformMediaType(in *model.MediaType, warnings *debug.Warnings) *MediaTypeV32 {
	if in == nil {
		return nil
	}

	mt := &MediaTypeV32{
		Schema:     v312.TransformSchema(in.Schema, warnings),
		Example:    in.Example,
		Extensions: in.Extensions,
	}

	if len(in.Examples) > 0 {
		mt.Examples = make(map[string]*ExampleV32, len(in.Examples))
		for k, ex := range in.Examples {
			mt.Examples[k] = v312.TransformExample(ex, warnings)
		}
	}

	if len(in.Encoding) > 0 {
		mt.Encoding = make(map[string]*EncodingV32, len(in.Encoding))
		for name, enc := range in.Encoding {
			mt.Encoding[name] = a.transformEncoding(enc, warnings)
		}
	}

	return mt
}

func (a *AdapterV320) transformEncoding(in *model.Encoding, warnings *debug.Warnings) *EncodingV32 {
	if in == nil {
		return nil
	}

	enc := &EncodingV32{
		ContentType:   in.ContentType,
		Style:         in.Style,
		Explode:       in.Explode,
		AllowReserved: in.AllowReserved,
		Extensions:    in.Extensions,
	}

	if len(in.Headers) > 0 {
		enc.Headers = make(map[string]*HeaderV32, len(in.Headers))
		for name, h := range in.Headers {
			enc.Headers[name] = a.transformHeader(h, warnings)
		}
	}

	if in.ItemEncoding != nil {
		enc.ItemEncoding = a.transformEncoding(in.ItemEncoding, warnings)
	}

	for _, pe := range in.PrefixEncoding {
		enc.PrefixEncoding = append(enc.PrefixEncoding, a.transformEncoding(pe, warnings))
	}

	return enc
}

func (a *AdapterV320) transformComponents(in *model.Components, warnings *debug.Warnings) *ComponentsV32 {
	if in == nil {
		return nil
	}

	comp := &ComponentsV32{Extensions: in.Extensions}

	if len(in.Schemas) > 0 {
		comp.Schemas = make(map[string]*SchemaV32, len(in.Schemas))
		for name, s := range in.Schemas {
			comp.Schemas[name] = v312.TransformSchema(s, warnings)
		}
	}

	if len(in.Responses) > 0 {
		comp.Responses = make(map[string]*ResponseV32, len(in.Responses))
		for name, r := range in.Responses {
			comp.Responses[name] = a.transformResponse(r, warnings)
		}
	}

	if len(in.Parameters) > 0 {
		comp.Parameters = make(map[string]*ParameterV32, len(in.Parameters))
		for name, p := range in.Parameters {
			comp.Parameters[name] = a.transformParameter(*p, warnings)
		}
	}

	if len(in.Examples) > 0 {
		comp.Examples = make(map[string]*ExampleV32, len(in.Examples))
		for name, ex := range in.Examples {
			comp.Examples[name] = v312.TransformExample(ex, warnings)
		}
	}

	if len(in.RequestBodies) > 0 {
		comp.RequestBodies = make(map[string]*RequestBodyV32, len(in.RequestBodies))
		for name, rb := range in.RequestBodies {
			comp.RequestBodies[name] = a.transformRequestBody(rb, warnings)
		}
	}

	if len(in.Headers) > 0 {
		comp.Headers = make(map[string]*HeaderV32, len(in.Headers))
		for name, h := range in.Headers {
			comp.Headers[name] = a.transformHeader(h, warnings)
		}
	}

	if len(in.SecuritySchemes) > 0 {
		comp.SecuritySchemes = make(map[string]*SecuritySchemeV32, len(in.SecuritySchemes))
		for name, ss := range in.SecuritySchemes {
			comp.SecuritySchemes[name] = a.transformSecurityScheme(ss)
		}
	}

	if len(in.PathItems) > 0 {
		comp.PathItems = make(map[string]*PathItemV32, len(in.PathItems))
		for name, pi := range in.PathItems {
			comp.PathItems[name] = a.transformPathItem(pi, warnings)
		}
	}

	if len(in.Links) > 0 {
		comp.Links = make(map[string]*v312.LinkV31, len(in.Links))
		for name, link := range in.Links {
			comp.Links[name] = v312.TransformLink(link)
		}
	}

	if len(in.Callbacks) > 0 {
		comp.Callbacks = make(map[string]*CallbackV32, len(in.Callbacks))
		for name, cb := range in.Callbacks {
			comp.Callbacks[name] = v312.TransformCallback(cb, warnings)
		}
	}

	return comp
}

func (a *AdapterV320) transformSecurityScheme(in *model.SecurityScheme) *SecuritySchemeV32 {
	if in == nil {
		return nil
	}

	if in.Ref != "" {
		return &SecuritySchemeV32{Ref: in.Ref}
	}

	out := &SecuritySchemeV32{
		Type:             in.Type,
		Description:      in.Description,
		Name:             in.Name,
		In:               in.In,
		Scheme:           in.Scheme,
		BearerFormat:     in.BearerFormat,
		OpenIDConnectURL: in.OpenIDConnectURL,
		Extensions:       in.Extensions,
	}

	if in.Flows != nil {
		out.Flows = &OAuthFlowsV32{
			Implicit:            v312.TransformOAuthFlow(in.Flows.Implicit),
			Password:            v312.TransformOAuthFlow(in.Flows.Password),
			ClientCredentials:   v312.TransformOAuthFlow(in.Flows.ClientCredentials),
			AuthorizationCode:   v312.TransformOAuthFlow(in.Flows.AuthorizationCode),
			DeviceAuthorization: v312.TransformOAuthFlow(in.Flows.DeviceAuthorization),
			Extensions:          in.Flows.Extensions,
		}
	}

	return out
}
