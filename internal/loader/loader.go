// Package loader decodes an OpenAPI document (already read into memory --
// this package never does I/O itself, matching internal/export.Exporter's
// own bytes-in/bytes-out discipline) into a model.Spec and adds that spec to
// a shared Registry under its canonical base URI. $ref and $dynamicRef
// values are kept on the model as the strings the document wrote; this
// package does not resolve them or link them to their targets.
package loader

import (
	"context"
	"encoding/json"
	"sort"

	"github.com/talav/c2openapi/internal/apierr"
	"github.com/talav/c2openapi/internal/model"
)

// Registry is the document registry Load records specs into, re-exported
// from internal/model where the type actually lives (Spec.SetRegistry/
// Registry already live there) so callers of this package never need to
// import internal/model directly just to construct one.
type Registry = model.Registry

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry { return model.NewRegistry() }

// Options configures Load. Validate, when non-nil, is called with the raw
// document bytes before decoding begins; a non-nil error aborts the load.
// internal/export.Validator (wrapping santhosh-tekuri/jsonschema) is the
// expected implementation, giving both directions of the bridge the same
// validation primitive.
type Options struct {
	Validate func(ctx context.Context, doc []byte) error
}

// Load decodes doc into a model.Spec and, when reg is non-nil, registers
// it under its canonical base URI ($self if the document declares one,
// else retrievalURI). Unknown top-level and per-object keys starting with
// "x-" are captured as Extensions, a map, so the order the document wrote
// them in is not kept; everything else
// follows the OpenAPI 3.0/3.1/3.2 object model this project's writer also
// targets.
func Load(ctx context.Context, doc []byte, retrievalURI string, reg *Registry, opts Options) (*model.Spec, error) {
	if opts.Validate != nil {
		if err := opts.Validate(ctx, doc); err != nil {
			return nil, apierr.New(apierr.KindInvalidInput, "loader", "document failed schema validation", err)
		}
	}

	var raw map[string]any
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, apierr.New(apierr.KindInvalidInput, "loader", "malformed JSON", err)
	}

	spec := decodeSpec(raw)
	spec.RetrievalURI = retrievalURI

	if reg != nil {
		reg.Add(spec)
	}

	return spec, nil
}

var specKnownKeys = map[string]bool{
	"openapi": true, "$self": true, "jsonSchemaDialect": true, "info": true,
	"servers": true, "paths": true, "webhooks": true, "components": true,
	"security": true, "tags": true, "externalDocs": true,
}

func decodeSpec(raw map[string]any) *model.Spec {
	spec := &model.Spec{
		Self:              str(raw["$self"]),
		JSONSchemaDialect: str(raw["jsonSchemaDialect"]),
		Paths:             make(map[string]*model.PathItem),
		Extensions:        extensionsOf(raw, specKnownKeys),
	}

	if info, ok := raw["info"].(map[string]any); ok {
		spec.Info = decodeInfo(info)
	}

	for _, s := range slice(raw["servers"]) {
		if m, ok := s.(map[string]any); ok {
			spec.Servers = append(spec.Servers, decodeServer(m))
		}
	}

	if paths, ok := raw["paths"].(map[string]any); ok {
		for route, v := range paths {
			if m, ok := v.(map[string]any); ok {
				spec.Paths[route] = decodePathItem(m)
			}
		}
	}

	if webhooks, ok := raw["webhooks"].(map[string]any); ok {
		spec.Webhooks = make(map[string]*model.PathItem, len(webhooks))
		for name, v := range webhooks {
			if m, ok := v.(map[string]any); ok {
				spec.Webhooks[name] = decodePathItem(m)
			}
		}
	}

	if comp, ok := raw["components"].(map[string]any); ok {
		spec.Components = decodeComponents(comp)
	}

	for _, s := range slice(raw["security"]) {
		if m, ok := s.(map[string]any); ok {
			spec.Security = append(spec.Security, decodeSecurityRequirement(m))
		}
	}

	for _, t := range slice(raw["tags"]) {
		if m, ok := t.(map[string]any); ok {
			spec.Tags = append(spec.Tags, decodeTag(m))
		}
	}

	if ed, ok := raw["externalDocs"].(map[string]any); ok {
		spec.ExternalDocs = decodeExternalDocs(ed)
	}

	return spec
}

var infoKnownKeys = map[string]bool{
	"title": true, "summary": true, "description": true, "termsOfService": true,
	"contact": true, "license": true, "version": true,
}

func decodeInfo(raw map[string]any) model.Info {
	info := model.Info{
		Title:          str(raw["title"]),
		Summary:        str(raw["summary"]),
		Description:    str(raw["description"]),
		TermsOfService: str(raw["termsOfService"]),
		Version:        str(raw["version"]),
		Extensions:     extensionsOf(raw, infoKnownKeys),
	}

	if c, ok := raw["contact"].(map[string]any); ok {
		info.Contact = &model.Contact{Name: str(c["name"]), URL: str(c["url"]), Email: str(c["email"])}
	}

	if l, ok := raw["license"].(map[string]any); ok {
		info.License = &model.License{Name: str(l["name"]), Identifier: str(l["identifier"]), URL: str(l["url"])}
	}

	return info
}

func decodeServer(raw map[string]any) model.Server {
	srv := model.Server{URL: str(raw["url"]), Description: str(raw["description"])}

	if vars, ok := raw["variables"].(map[string]any); ok {
		srv.Variables = make(map[string]*model.ServerVariable, len(vars))

		for name, v := range vars {
			if m, ok := v.(map[string]any); ok {
				sv := &model.ServerVariable{Default: str(m["default"]), Description: str(m["description"])}
				for _, e := range slice(m["enum"]) {
					sv.Enum = append(sv.Enum, str(e))
				}

				srv.Variables[name] = sv
			}
		}
	}

	return srv
}

var pathItemKnownKeys = map[string]bool{
	"$ref": true, "summary": true, "description": true, "get": true, "put": true,
	"post": true, "delete": true, "options": true, "head": true, "patch": true,
	"trace": true, "query": true, "additionalOperations": true, "servers": true,
	"parameters": true,
}

func decodePathItem(raw map[string]any) *model.PathItem {
	item := &model.PathItem{
		Ref:         str(raw["$ref"]),
		Summary:     str(raw["summary"]),
		Description: str(raw["description"]),
		Extensions:  extensionsOf(raw, pathItemKnownKeys),
	}

	assignOp := func(field **model.Operation, key string) {
		if m, ok := raw[key].(map[string]any); ok {
			*field = decodeOperation(m)
		}
	}

	assignOp(&item.Get, "get")
	assignOp(&item.Put, "put")
	assignOp(&item.Post, "post")
	assignOp(&item.Delete, "delete")
	assignOp(&item.Options, "options")
	assignOp(&item.Head, "head")
	assignOp(&item.Patch, "patch")
	assignOp(&item.Trace, "trace")
	assignOp(&item.Query, "query")

	if additional, ok := raw["additionalOperations"].(map[string]any); ok {
		item.AdditionalOperations = make(map[string]*model.Operation, len(additional))
		for verb, v := range additional {
			if m, ok := v.(map[string]any); ok {
				item.AdditionalOperations[verb] = decodeOperation(m)
			}
		}
	}

	for _, s := range slice(raw["servers"]) {
		if m, ok := s.(map[string]any); ok {
			item.Servers = append(item.Servers, decodeServer(m))
		}
	}

	for _, p := range slice(raw["parameters"]) {
		if m, ok := p.(map[string]any); ok {
			item.Parameters = append(item.Parameters, decodeParameter(m))
		}
	}

	return item
}

var operationKnownKeys = map[string]bool{
	"tags": true, "summary": true, "description": true, "externalDocs": true,
	"operationId": true, "parameters": true, "requestBody": true, "responses": true,
	"callbacks": true, "deprecated": true, "security": true, "servers": true,
}

func decodeOperation(raw map[string]any) *model.Operation {
	op := &model.Operation{
		Summary:     str(raw["summary"]),
		Description: str(raw["description"]),
		OperationID: str(raw["operationId"]),
		Deprecated:  boolOf(raw["deprecated"]),
		Responses:   make(map[string]*model.Response),
		Extensions:  extensionsOf(raw, operationKnownKeys),
	}

	for _, t := range slice(raw["tags"]) {
		op.Tags = append(op.Tags, str(t))
	}

	if ed, ok := raw["externalDocs"].(map[string]any); ok {
		op.ExternalDocs = decodeExternalDocs(ed)
	}

	for _, p := range slice(raw["parameters"]) {
		if m, ok := p.(map[string]any); ok {
			op.Parameters = append(op.Parameters, decodeParameter(m))
		}
	}

	if rb, ok := raw["requestBody"].(map[string]any); ok {
		op.RequestBody = decodeRequestBody(rb)
	}

	if responses, ok := raw["responses"].(map[string]any); ok {
		for code, v := range responses {
			if m, ok := v.(map[string]any); ok {
				op.Responses[code] = decodeResponse(m)
			}
		}
	}

	if callbacks, ok := raw["callbacks"].(map[string]any); ok {
		op.Callbacks = make(map[string]*model.Callback, len(callbacks))

		for name, v := range callbacks {
			if m, ok := v.(map[string]any); ok {
				op.Callbacks[name] = decodeCallback(m)
			}
		}
	}

	for _, s := range slice(raw["security"]) {
		if m, ok := s.(map[string]any); ok {
			op.Security = append(op.Security, decodeSecurityRequirement(m))
		}
	}

	for _, s := range slice(raw["servers"]) {
		if m, ok := s.(map[string]any); ok {
			op.Servers = append(op.Servers, decodeServer(m))
		}
	}

	return op
}

func decodeCallback(raw map[string]any) *model.Callback {
	cb := &model.Callback{Ref: str(raw["$ref"])}
	if cb.Ref != "" {
		return cb
	}

	cb.PathItems = make(map[string]*model.PathItem, len(raw))
	for expr, v := range raw {
		if m, ok := v.(map[string]any); ok {
			cb.PathItems[expr] = decodePathItem(m)
		}
	}

	return cb
}

var paramKnownKeys = map[string]bool{
	"$ref": true, "name": true, "in": true, "description": true, "required": true,
	"deprecated": true, "allowEmptyValue": true, "style": true, "explode": true,
	"allowReserved": true, "schema": true, "example": true, "examples": true, "content": true,
}

func decodeParameter(raw map[string]any) model.Parameter {
	p := model.Parameter{
		Ref:             str(raw["$ref"]),
		Name:            str(raw["name"]),
		In:              str(raw["in"]),
		Description:     str(raw["description"]),
		Required:        boolOf(raw["required"]),
		Deprecated:      boolOf(raw["deprecated"]),
		AllowEmptyValue: boolOf(raw["allowEmptyValue"]),
		Style:           str(raw["style"]),
		Explode:         boolOf(raw["explode"]),
		AllowReserved:   boolOf(raw["allowReserved"]),
		Example:         raw["example"],
		Extensions:      extensionsOf(raw, paramKnownKeys),
	}

	if s, ok := raw["schema"].(map[string]any); ok {
		p.Schema = decodeSchema(s)
	} else if b, ok := raw["schema"].(bool); ok {
		p.Schema = &model.Schema{IsBoolean: true, BoolValue: b}
	}

	if examples, ok := raw["examples"].(map[string]any); ok {
		p.Examples = make(map[string]*model.Example, len(examples))
		for name, v := range examples {
			if m, ok := v.(map[string]any); ok {
				p.Examples[name] = decodeExample(m)
			}
		}
	}

	if content, ok := raw["content"].(map[string]any); ok {
		p.Content = decodeContent(content)
	}

	return p
}

var requestBodyKnownKeys = map[string]bool{"$ref": true, "description": true, "required": true, "content": true}

func decodeRequestBody(raw map[string]any) *model.RequestBody {
	rb := &model.RequestBody{
		Ref:         str(raw["$ref"]),
		Description: str(raw["description"]),
		Required:    boolOf(raw["required"]),
		Extensions:  extensionsOf(raw, requestBodyKnownKeys),
	}

	if content, ok := raw["content"].(map[string]any); ok {
		rb.Content = decodeContent(content)
	}

	return rb
}

var responseKnownKeys = map[string]bool{"$ref": true, "description": true, "content": true, "headers": true, "links": true}

func decodeResponse(raw map[string]any) *model.Response {
	resp := &model.Response{
		Ref:         str(raw["$ref"]),
		Description: str(raw["description"]),
		Extensions:  extensionsOf(raw, responseKnownKeys),
	}

	if content, ok := raw["content"].(map[string]any); ok {
		resp.Content = decodeContent(content)
	}

	if headers, ok := raw["headers"].(map[string]any); ok {
		resp.Headers = make(map[string]*model.Header, len(headers))
		for name, v := range headers {
			if m, ok := v.(map[string]any); ok {
				resp.Headers[name] = decodeHeader(m)
			}
		}
	}

	if links, ok := raw["links"].(map[string]any); ok {
		resp.Links = make(map[string]*model.Link, len(links))
		for name, v := range links {
			if m, ok := v.(map[string]any); ok {
				resp.Links[name] = decodeLink(m)
			}
		}
	}

	return resp
}

var headerKnownKeys = map[string]bool{
	"$ref": true, "description": true, "required": true, "deprecated": true,
	"allowEmptyValue": true, "style": true, "explode": true, "schema": true,
	"example": true, "examples": true, "content": true,
}

func decodeHeader(raw map[string]any) *model.Header {
	h := &model.Header{
		Ref:             str(raw["$ref"]),
		Description:     str(raw["description"]),
		Required:        boolOf(raw["required"]),
		Deprecated:      boolOf(raw["deprecated"]),
		AllowEmptyValue: boolOf(raw["allowEmptyValue"]),
		Style:           str(raw["style"]),
		Explode:         boolOf(raw["explode"]),
		Example:         raw["example"],
		Extensions:      extensionsOf(raw, headerKnownKeys),
	}

	if s, ok := raw["schema"].(map[string]any); ok {
		h.Schema = decodeSchema(s)
	}

	if content, ok := raw["content"].(map[string]any); ok {
		h.Content = decodeContent(content)
	}

	return h
}

func decodeContent(raw map[string]any) map[string]*model.MediaType {
	out := make(map[string]*model.MediaType, len(raw))

	for ct, v := range raw {
		if m, ok := v.(map[string]any); ok {
			out[ct] = decodeMediaType(m)
		}
	}

	return out
}

var mediaTypeKnownKeys = map[string]bool{"schema": true, "example": true, "examples": true, "encoding": true}

func decodeMediaType(raw map[string]any) *model.MediaType {
	mt := &model.MediaType{Example: raw["example"], Extensions: extensionsOf(raw, mediaTypeKnownKeys)}

	if s, ok := raw["schema"].(map[string]any); ok {
		mt.Schema = decodeSchema(s)
	}

	if examples, ok := raw["examples"].(map[string]any); ok {
		mt.Examples = make(map[string]*model.Example, len(examples))
		for name, v := range examples {
			if m, ok := v.(map[string]any); ok {
				mt.Examples[name] = decodeExample(m)
			}
		}
	}

	if encoding, ok := raw["encoding"].(map[string]any); ok {
		mt.Encoding = make(map[string]*model.Encoding, len(encoding))
		for name, v := range encoding {
			if m, ok := v.(map[string]any); ok {
				mt.Encoding[name] = decodeEncoding(m)
			}
		}
	}

	return mt
}

var encodingKnownKeys = map[string]bool{
	"contentType": true, "headers": true, "style": true, "explode": true,
	"allowReserved": true, "itemEncoding": true, "prefixEncoding": true,
}

func decodeEncoding(raw map[string]any) *model.Encoding {
	e := &model.Encoding{
		ContentType:   str(raw["contentType"]),
		Style:         str(raw["style"]),
		Explode:       boolOf(raw["explode"]),
		AllowReserved: boolOf(raw["allowReserved"]),
		Extensions:    extensionsOf(raw, encodingKnownKeys),
	}

	if headers, ok := raw["headers"].(map[string]any); ok {
		e.Headers = make(map[string]*model.Header, len(headers))
		for name, v := range headers {
			if m, ok := v.(map[string]any); ok {
				e.Headers[name] = decodeHeader(m)
			}
		}
	}

	if item, ok := raw["itemEncoding"].(map[string]any); ok {
		e.ItemEncoding = decodeEncoding(item)
	}

	for _, p := range slice(raw["prefixEncoding"]) {
		if m, ok := p.(map[string]any); ok {
			e.PrefixEncoding = append(e.PrefixEncoding, decodeEncoding(m))
		}
	}

	return e
}

func decodeExample(raw map[string]any) *model.Example {
	return &model.Example{
		Ref:           str(raw["$ref"]),
		Summary:       str(raw["summary"]),
		Description:   str(raw["description"]),
		Value:         raw["value"],
		ExternalValue: str(raw["externalValue"]),
		Extensions: extensionsOf(raw, map[string]bool{
			"$ref": true, "summary": true, "description": true, "value": true, "externalValue": true,
		}),
	}
}

func decodeLink(raw map[string]any) *model.Link {
	link := &model.Link{
		Ref:          str(raw["$ref"]),
		OperationRef: str(raw["operationRef"]),
		OperationID:  str(raw["operationId"]),
		Description:  str(raw["description"]),
		RequestBody:  raw["requestBody"],
	}

	if params, ok := raw["parameters"].(map[string]any); ok {
		link.Parameters = params
	}

	if s, ok := raw["server"].(map[string]any); ok {
		srv := decodeServer(s)
		link.Server = &srv
	}

	return link
}

var componentsKnownKeys = map[string]bool{
	"schemas": true, "responses": true, "parameters": true, "examples": true,
	"requestBodies": true, "headers": true, "securitySchemes": true, "links": true,
	"callbacks": true, "pathItems": true,
}

func decodeComponents(raw map[string]any) *model.Components {
	c := &model.Components{Extensions: extensionsOf(raw, componentsKnownKeys)}

	if schemas, ok := raw["schemas"].(map[string]any); ok {
		c.Schemas = make(map[string]*model.Schema, len(schemas))
		for name, v := range schemas {
			if m, ok := v.(map[string]any); ok {
				c.Schemas[name] = decodeSchema(m)
			} else if b, ok := v.(bool); ok {
				c.Schemas[name] = &model.Schema{IsBoolean: true, BoolValue: b}
			}
		}
	}

	if responses, ok := raw["responses"].(map[string]any); ok {
		c.Responses = make(map[string]*model.Response, len(responses))
		for name, v := range responses {
			if m, ok := v.(map[string]any); ok {
				c.Responses[name] = decodeResponse(m)
			}
		}
	}

	if params, ok := raw["parameters"].(map[string]any); ok {
		c.Parameters = make(map[string]*model.Parameter, len(params))
		for name, v := range params {
			if m, ok := v.(map[string]any); ok {
				p := decodeParameter(m)
				c.Parameters[name] = &p
			}
		}
	}

	if examples, ok := raw["examples"].(map[string]any); ok {
		c.Examples = make(map[string]*model.Example, len(examples))
		for name, v := range examples {
			if m, ok := v.(map[string]any); ok {
				c.Examples[name] = decodeExample(m)
			}
		}
	}

	if bodies, ok := raw["requestBodies"].(map[string]any); ok {
		c.RequestBodies = make(map[string]*model.RequestBody, len(bodies))
		for name, v := range bodies {
			if m, ok := v.(map[string]any); ok {
				c.RequestBodies[name] = decodeRequestBody(m)
			}
		}
	}

	if headers, ok := raw["headers"].(map[string]any); ok {
		c.Headers = make(map[string]*model.Header, len(headers))
		for name, v := range headers {
			if m, ok := v.(map[string]any); ok {
				c.Headers[name] = decodeHeader(m)
			}
		}
	}

	if schemes, ok := raw["securitySchemes"].(map[string]any); ok {
		c.SecuritySchemes = make(map[string]*model.SecurityScheme, len(schemes))
		for name, v := range schemes {
			if m, ok := v.(map[string]any); ok {
				c.SecuritySchemes[name] = decodeSecurityScheme(m)
			}
		}
	}

	if links, ok := raw["links"].(map[string]any); ok {
		c.Links = make(map[string]*model.Link, len(links))
		for name, v := range links {
			if m, ok := v.(map[string]any); ok {
				c.Links[name] = decodeLink(m)
			}
		}
	}

	if callbacks, ok := raw["callbacks"].(map[string]any); ok {
		c.Callbacks = make(map[string]*model.Callback, len(callbacks))
		for name, v := range callbacks {
			if m, ok := v.(map[string]any); ok {
				c.Callbacks[name] = decodeCallback(m)
			}
		}
	}

	if pathItems, ok := raw["pathItems"].(map[string]any); ok {
		c.PathItems = make(map[string]*model.PathItem, len(pathItems))
		for name, v := range pathItems {
			if m, ok := v.(map[string]any); ok {
				c.PathItems[name] = decodePathItem(m)
			}
		}
	}

	return c
}

var securitySchemeKnownKeys = map[string]bool{
	"$ref": true, "type": true, "description": true, "name": true, "in": true,
	"scheme": true, "bearerFormat": true, "flows": true, "openIdConnectUrl": true,
}

func decodeSecurityScheme(raw map[string]any) *model.SecurityScheme {
	s := &model.SecurityScheme{
		Ref:              str(raw["$ref"]),
		Type:             str(raw["type"]),
		Description:      str(raw["description"]),
		Name:             str(raw["name"]),
		In:               str(raw["in"]),
		Scheme:           str(raw["scheme"]),
		BearerFormat:     str(raw["bearerFormat"]),
		OpenIDConnectURL: str(raw["openIdConnectUrl"]),
		Extensions:       extensionsOf(raw, securitySchemeKnownKeys),
	}

	if flows, ok := raw["flows"].(map[string]any); ok {
		s.Flows = decodeOAuthFlows(flows)
	}

	return s
}

func decodeOAuthFlows(raw map[string]any) *model.OAuthFlows {
	flows := &model.OAuthFlows{}

	if m, ok := raw["implicit"].(map[string]any); ok {
		flows.Implicit = decodeOAuthFlow(m)
	}

	if m, ok := raw["password"].(map[string]any); ok {
		flows.Password = decodeOAuthFlow(m)
	}

	if m, ok := raw["clientCredentials"].(map[string]any); ok {
		flows.ClientCredentials = decodeOAuthFlow(m)
	}

	if m, ok := raw["authorizationCode"].(map[string]any); ok {
		flows.AuthorizationCode = decodeOAuthFlow(m)
	}

	if m, ok := raw["deviceAuthorization"].(map[string]any); ok {
		flows.DeviceAuthorization = decodeOAuthFlow(m)
	}

	return flows
}

func decodeOAuthFlow(raw map[string]any) *model.OAuthFlow {
	flow := &model.OAuthFlow{
		AuthorizationURL:      str(raw["authorizationUrl"]),
		TokenURL:               str(raw["tokenUrl"]),
		DeviceAuthorizationURL: str(raw["deviceAuthorizationUrl"]),
		RefreshURL:             str(raw["refreshUrl"]),
	}

	if scopes, ok := raw["scopes"].(map[string]any); ok {
		flow.Scopes = make(map[string]string, len(scopes))
		for name, v := range scopes {
			flow.Scopes[name] = str(v)
		}
	}

	return flow
}

func decodeSecurityRequirement(raw map[string]any) model.SecurityRequirement {
	req := make(model.SecurityRequirement, len(raw))

	for name, v := range raw {
		for _, scope := range slice(v) {
			req[name] = append(req[name], str(scope))
		}

		if _, ok := req[name]; !ok {
			req[name] = []string{}
		}
	}

	return req
}

func decodeTag(raw map[string]any) model.Tag {
	t := model.Tag{
		Name:        str(raw["name"]),
		Description: str(raw["description"]),
		Extensions:  extensionsOf(raw, map[string]bool{"name": true, "description": true, "externalDocs": true}),
	}

	if ed, ok := raw["externalDocs"].(map[string]any); ok {
		t.ExternalDocs = decodeExternalDocs(ed)
	}

	return t
}

func decodeExternalDocs(raw map[string]any) *model.ExternalDocs {
	return &model.ExternalDocs{
		Description: str(raw["description"]),
		URL:         str(raw["url"]),
		Extensions:  extensionsOf(raw, map[string]bool{"description": true, "url": true}),
	}
}

// extensionsOf captures every "x-"-prefixed key not already named in
// known into a map. The keys are gathered in sorted order, but the
// returned map holds no order, so the document's own key order is lost;
// the writers emit extensions in encoding/json's sorted-key order.
func extensionsOf(raw map[string]any, known map[string]bool) map[string]any {
	var keys []string

	for k := range raw {
		if !known[k] && len(k) > 2 && k[0] == 'x' && k[1] == '-' {
			keys = append(keys, k)
		}
	}

	if len(keys) == 0 {
		return nil
	}

	sort.Strings(keys)

	ext := make(map[string]any, len(keys))
	for _, k := range keys {
		ext[k] = raw[k]
	}

	return ext
}

func str(v any) string {
	s, _ := v.(string)

	return s
}

func boolOf(v any) bool {
	b, _ := v.(bool)

	return b
}

func slice(v any) []any {
	s, _ := v.([]any)

	return s
}
