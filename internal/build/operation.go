package build

import (
	"strconv"
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/docparser"
	"github.com/talav/c2openapi/internal/model"
)

// Built is the result of BuildOperation: the operation itself plus the
// routing facts (route template, HTTP verb, webhook/additional-operation
// flags) the caller needs to place it into a model.Spec's path tree.
type Built struct {
	Route        string
	Verb         string
	IsWebhook    bool
	IsAdditional bool
	Operation    *model.Operation
}

var verbPrefixes = []struct {
	prefixes []string
	verb     string
}{
	{[]string{"get_", "list_", "fetch_"}, "GET"},
	{[]string{"create_", "post_", "add_"}, "POST"},
	{[]string{"update_", "put_"}, "PUT"},
	{[]string{"delete_", "remove_"}, "DELETE"},
	{[]string{"patch_"}, "PATCH"},
}

var knownVerbs = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "HEAD": true, "OPTIONS": true, "TRACE": true, "QUERY": true,
}

// BuildOperation implements spec.md §4.5's six-step algorithm: given a
// parsed function signature and its (possibly nil) documentation
// metadata, produce a fully-formed Operation plus the routing facts
// needed to place it in a spec's path tree.
func BuildOperation(sig Signature, doc *docparser.Metadata, gen *SchemaGenerator, cfg config.EmitterConfig) Built {
	if doc == nil {
		doc = &docparser.Metadata{}
	}

	verb, isAdditional := selectVerb(sig.Name, doc)
	route := selectRoute(sig.Name, doc)
	opID := selectOperationID(sig.Name, doc)

	op := &model.Operation{
		OperationID: opID,
		Summary:     doc.Summary,
		Description: doc.Description,
		Tags:        doc.Tags,
	}

	if doc.DeprecatedSet {
		op.Deprecated = doc.Deprecated
	}

	if doc.ExternalDocsURL != "" {
		op.ExternalDocs = &model.ExternalDocs{URL: doc.ExternalDocsURL, Description: doc.ExternalDocsDesc}
	}

	reserved := cfg.ReservedHeaders
	if len(reserved) == 0 {
		reserved = defaultReservedHeaders
	}

	outParam := classifyParameters(op, sig, doc, route, verb, reserved, gen)
	buildResponses(op, doc, outParam, gen)
	buildSecurityAndServers(op, doc)

	return Built{
		Route:        route,
		Verb:         verb,
		IsWebhook:    doc.IsWebhook,
		IsAdditional: isAdditional,
		Operation:    op,
	}
}

// selectVerb implements step 1: explicit doc.Verb wins; else a
// function-name prefix table; else GET. An explicit verb this project
// does not recognize is kept verbatim with IsAdditional set, per spec.md's
// "unknown verbs set is_additional=true" rule.
func selectVerb(name string, doc *docparser.Metadata) (verb string, isAdditional bool) {
	if doc.Verb != "" {
		v := strings.ToUpper(doc.Verb)

		return v, !knownVerbs[v]
	}

	for _, entry := range verbPrefixes {
		for _, p := range entry.prefixes {
			if strings.HasPrefix(name, p) {
				return entry.verb, false
			}
		}
	}

	return "GET", false
}

// selectRoute implements step 2: explicit doc.Route wins; else synthesize
// from the function's resource prefix (api_user_get -> /user).
func selectRoute(name string, doc *docparser.Metadata) string {
	if doc.Route != "" {
		return doc.Route
	}

	return "/" + resourceFromName(name)
}

// resourceFromName strips a leading "api_" namespace and a trailing
// verb-ish suffix to recover the resource segment of a function name,
// e.g. "api_user_get" -> "user".
func resourceFromName(name string) string {
	parts := strings.Split(name, "_")
	parts = trimIfEqual(parts, "api")
	parts = trimTrailingVerb(parts)

	if len(parts) == 0 {
		return name
	}

	return strings.Join(parts, "/")
}

func trimIfEqual(parts []string, first string) []string {
	if len(parts) > 1 && parts[0] == first {
		return parts[1:]
	}

	return parts
}

var trailingVerbWords = map[string]bool{
	"get": true, "list": true, "fetch": true, "create": true, "post": true,
	"add": true, "update": true, "put": true, "delete": true, "remove": true,
	"patch": true,
}

func trimTrailingVerb(parts []string) []string {
	if len(parts) > 1 && trailingVerbWords[parts[len(parts)-1]] {
		return parts[:len(parts)-1]
	}

	return parts
}

// selectOperationID implements step 3.
func selectOperationID(name string, doc *docparser.Metadata) string {
	if doc.OperationID != "" {
		return doc.OperationID
	}

	return name
}

// classifyParameters implements step 4 + step 5 (type mapping). It
// returns the function argument treated as the double-pointer output
// parameter, if any, for response synthesis (step 6) to fall back on.
func classifyParameters(op *model.Operation, sig Signature, doc *docparser.Metadata, route, verb string, reserved []string, gen *SchemaGenerator) *Arg {
	pathNames := pathParamNames(route)
	byName := make(map[string]docparser.Param, len(doc.Params))

	for _, p := range doc.Params {
		byName[p.Name] = p
	}

	var outParam *Arg

	mutating := verb == "POST" || verb == "PUT" || verb == "PATCH"

	for i := range sig.Args {
		arg := sig.Args[i]

		if docParam, ok := byName[arg.Name]; ok {
			addDocumentedParameter(op, arg, docParam, reserved, gen)

			continue
		}

		switch {
		case contains(pathNames, arg.Name):
			addInferredParameter(op, arg, "path", true, reserved, gen)
		case mutating && arg.PointerDepth >= 2:
			outParam = &sig.Args[i]
		case arg.PointerDepth == 1 && arg.RefName != "" && op.RequestBody == nil:
			setRequestBody(op, arg, gen)
		default:
			addInferredParameter(op, arg, "query", false, reserved, gen)
		}
	}

	return outParam
}

func addDocumentedParameter(op *model.Operation, arg Arg, doc docparser.Param, reserved []string, gen *SchemaGenerator) {
	in := doc.In
	if in == "" {
		in = "query"
	}

	if in == "header" && isReservedHeader(arg.Name, reserved) {
		return
	}

	s := schemaForCType(arg.CType, arg.PointerDepth, arg.IsArray, arg.ArrayLength, arg.RefName, gen)
	if doc.Format != "" {
		s.Format = doc.Format
	}

	p := model.Parameter{
		Name:        arg.Name,
		In:          in,
		Description: doc.Description,
		Required:    doc.Required || in == "path",
		Schema:      s,
	}

	if doc.DeprecatedSet {
		p.Deprecated = doc.Deprecated
	}

	if doc.StyleSet {
		p.Style = doc.Style
	}

	if doc.ExplodeSet {
		p.Explode = doc.Explode
	}

	if doc.AllowEmptyValueSet {
		p.AllowEmptyValue = doc.AllowEmptyValue
	}

	if doc.Example != "" {
		p.Examples = map[string]*model.Example{"default": namedExample(doc.Example)}
	}

	op.Parameters = append(op.Parameters, p)
}

func addInferredParameter(op *model.Operation, arg Arg, in string, required bool, reserved []string, gen *SchemaGenerator) {
	if isReservedHeader(arg.Name, reserved) {
		return
	}

	op.Parameters = append(op.Parameters, model.Parameter{
		Name:     arg.Name,
		In:       in,
		Required: required,
		Schema:   schemaForCType(arg.CType, arg.PointerDepth, arg.IsArray, arg.ArrayLength, arg.RefName, gen),
	})
}

func setRequestBody(op *model.Operation, arg Arg, gen *SchemaGenerator) {
	op.RequestBody = &model.RequestBody{
		Required: true,
		Content: map[string]*model.MediaType{
			contentTypeJSON: {Schema: gen.SchemaForRef(arg.RefName)},
		},
	}
}

// buildResponses implements step 6.
func buildResponses(op *model.Operation, doc *docparser.Metadata, outParam *Arg, gen *SchemaGenerator) {
	op.Responses = make(map[string]*model.Response)

	for _, r := range doc.Returns {
		resp := op.Responses[r.Code]
		if resp == nil {
			resp = &model.Response{Description: r.Description, Content: make(map[string]*model.MediaType)}

			if resp.Description == "" {
				resp.Description = r.Summary
			}

			if resp.Description == "" {
				resp.Description = statusText(r.Code)
			}

			op.Responses[r.Code] = resp
		}

		ct := r.ContentType
		if ct == "" {
			ct = contentTypeJSON
		}

		mt := &model.MediaType{}
		if r.Example != "" {
			mt.Examples = map[string]*model.Example{"default": namedExample(r.Example)}
		}

		resp.Content[ct] = mt
	}

	for _, l := range doc.Links {
		resp := op.Responses[l.Code]
		if resp == nil {
			continue
		}

		if resp.Links == nil {
			resp.Links = make(map[string]*model.Link)
		}

		link := &model.Link{
			OperationID:  l.OperationID,
			OperationRef: l.OperationRef,
			Description:  l.Description,
		}

		if l.ServerURL != "" {
			link.Server = &model.Server{URL: l.ServerURL, Description: l.ServerDescription}
		}

		if l.ParametersJSON != "" {
			if m, ok := parseExampleValue(l.ParametersJSON).(map[string]any); ok {
				link.Parameters = m
			}
		}

		if l.RequestBodyJSON != "" {
			link.RequestBody = parseExampleValue(l.RequestBodyJSON)
		}

		resp.Links[l.Name] = link
	}

	for _, h := range doc.ResponseHeaders {
		resp := op.Responses[h.Code]
		if resp == nil {
			continue
		}

		if resp.Headers == nil {
			resp.Headers = make(map[string]*model.Header)
		}

		hdr := &model.Header{Description: h.Description, Schema: &model.Schema{Type: TypeString}}
		if h.RequiredSet {
			hdr.Required = h.Required
		}

		resp.Headers[h.Name] = hdr
	}

	if len(op.Responses) == 0 {
		resp := &model.Response{Description: "OK", Content: make(map[string]*model.MediaType)}

		if outParam != nil {
			resp.Content[contentTypeJSON] = &model.MediaType{
				Schema: schemaForCType(outParam.CType, outParam.PointerDepth-1, outParam.IsArray, outParam.ArrayLength, outParam.RefName, gen),
			}
		}

		op.Responses["200"] = resp
	}
}

// buildSecurityAndServers implements step 7's security/server half; the
// request-body half is handled in classifyParameters/setRequestBody, with
// the doc-level @requestBody override applied here.
func buildSecurityAndServers(op *model.Operation, doc *docparser.Metadata) {
	for _, s := range doc.Security {
		op.Security = append(op.Security, model.SecurityRequirement{s.Scheme: s.Scopes})
	}

	for _, s := range doc.Servers {
		srv := model.Server{URL: s.URL, Description: s.Description}

		if len(s.Variables) > 0 {
			srv.Variables = make(map[string]*model.ServerVariable, len(s.Variables))

			for _, v := range s.Variables {
				srv.Variables[v.Name] = &model.ServerVariable{Default: v.Default, Description: v.Description, Enum: v.Enum}
			}
		}

		op.Servers = append(op.Servers, srv)
	}

	if doc.RequestBodyDescription != "" && op.RequestBody != nil {
		op.RequestBody.Description = doc.RequestBodyDescription
	}

	if doc.RequestBodyRequiredSet && op.RequestBody != nil {
		op.RequestBody.Required = doc.RequestBodyRequired
	}

	if ct := doc.RequestBodyContentType; ct != "" && op.RequestBody != nil {
		if mt, ok := op.RequestBody.Content[contentTypeJSON]; ok && ct != contentTypeJSON {
			op.RequestBody.Content[ct] = mt
			delete(op.RequestBody.Content, contentTypeJSON)
		}
	}

	for _, rb := range doc.RequestBodies {
		if rb.ContentType == "" {
			continue
		}

		if op.RequestBody == nil {
			op.RequestBody = &model.RequestBody{Required: true, Content: make(map[string]*model.MediaType)}
		}

		mt := op.RequestBody.Content[rb.ContentType]
		if mt == nil {
			mt = &model.MediaType{}
			op.RequestBody.Content[rb.ContentType] = mt
		}

		if rb.Example != "" {
			mt.Examples = map[string]*model.Example{"default": namedExample(rb.Example)}
		}

		if rb.Description != "" && op.RequestBody.Description == "" {
			op.RequestBody.Description = rb.Description
		}
	}
}

// statusText mirrors the small subset of net/http.StatusText this
// project needs without depending on net/http from a package that
// otherwise has no HTTP surface.
func statusText(code string) string {
	n, err := strconv.Atoi(code)
	if err != nil {
		return ""
	}

	switch n {
	case 200:
		return "OK"
	case 201:
		return "Created"
	case 204:
		return "No Content"
	case 400:
		return "Bad Request"
	case 401:
		return "Unauthorized"
	case 403:
		return "Forbidden"
	case 404:
		return "Not Found"
	case 409:
		return "Conflict"
	case 500:
		return "Internal Server Error"
	default:
		return ""
	}
}
