package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/model"
)

// emitter assembles one operation's body, one private method per step of
// codegen_client_body.h's fixed eleven-step order. The struct carries the
// per-call state each step needs so Body itself stays a flat, readable
// sequence of method calls -- Go's sequential statement order is what
// enforces the ordering invariant spec.md calls out, not a runtime check.
type emitter struct {
	b       strings.Builder
	op      *model.Operation
	route   string
	spec    *model.Spec
	cfg     config.EmitterConfig
	schemes map[string]*model.SecurityScheme
}

// Body assembles the eleven-step function body for op in the fixed order:
// declarations, init, security, header params, query params, body
// serialization, URL assembly, method assignment, send loop, response
// switch, cleanup.
func Body(op *model.Operation, spec *model.Spec, cfg config.EmitterConfig) string {
	route, _ := routeAndVerbFor(op, spec)

	var schemes map[string]*model.SecurityScheme
	if spec.Components != nil {
		schemes = spec.Components.SecuritySchemes
	}

	e := &emitter{op: op, route: route, spec: spec, cfg: cfg, schemes: schemes}

	e.declarations()
	e.initRequest()
	e.security()
	e.headerParams()
	e.queryParams()
	e.bodySerialization()
	e.urlAssembly()
	e.methodAssignment()
	e.sendLoop()
	e.responseSwitch()
	e.cleanup()

	return e.b.String()
}

// routeAndVerbFor scans spec for the route/verb op was registered under --
// the model stores the association on PathItem, not on Operation itself,
// so the emitter (which only receives the operation) looks it up here
// rather than requiring every caller to thread the route through
// separately.
func routeAndVerbFor(op *model.Operation, spec *model.Spec) (route, verb string) {
	for _, paths := range []map[string]*model.PathItem{spec.Paths, spec.Webhooks} {
		for r, item := range paths {
			for _, vo := range item.Operations() {
				if vo.Operation == op {
					return r, vo.Verb
				}
			}
		}
	}

	return "", ""
}

func (e *emitter) line(format string, args ...any) {
	fmt.Fprintf(&e.b, format+"\n", args...)
}

// 1. Variable declarations.
func (e *emitter) declarations() {
	e.line("struct HttpRequest req;")
	e.line("struct HttpResponse resp;")
	e.line("struct UrlQuery q;")
	e.line("struct HttpHeaders headers;")
	e.line("char url[OPENAPI_URL_BUFSIZE];")
	e.line("char query_buf[OPENAPI_URL_BUFSIZE] = {0};")
	e.line("int rc = 0;")
	e.line("int attempt = 0;")
	e.line("char *body_json = NULL;")
}

// 2. http_request_init and context sanity check.
func (e *emitter) initRequest() {
	e.line("")
	e.line("if (ctx == NULL) { if (api_error) *api_error = ApiError_new(EINVAL, \"null context\"); return EINVAL; }")
	e.line("http_request_init(&req);")
	e.line("http_headers_init(&headers);")
}

// 3. Security injection. apiKey-in-query schemes are deferred to the
// query-parameter step (5) so that step keeps sole ownership of the shared
// query accumulator's init/build pair.
func (e *emitter) security() {
	block := nonQuerySecurityBlock(e.schemes, e.effectiveSecurity())
	if block == "" {
		return
	}

	e.line("")
	e.b.WriteString(block)
}

// effectiveSecurity returns op.Security, falling back to the spec's
// root-level requirement when the operation declares none.
func (e *emitter) effectiveSecurity() []model.SecurityRequirement {
	if len(e.op.Security) > 0 {
		return e.op.Security
	}

	return e.spec.Security
}

// 4. Header parameters.
func (e *emitter) headerParams() {
	headers := paramsByLocation(e.op, "header")
	if len(headers) == 0 {
		return
	}

	e.line("")

	for _, p := range headers {
		e.line("/* Header Parameter: %s */", p.Name)
		e.line("if (%s) { http_headers_add(&headers, \"%s\", %s); }", p.Name, p.Name, p.Name)
	}
}

// 5. Query parameter block. url_query_init and url_query_build bound this
// block on both sides so the patch engine can replace the whole thing as
// one contiguous unit when parameters change. apiKey-in-query security
// (deferred here by step 3) is folded in as well, since it shares the same
// accumulator.
func (e *emitter) queryParams() {
	params := paramsByLocation(e.op, "query")
	querySecurity := querySecurityLines(e.schemes, e.effectiveSecurity())

	if len(params) == 0 && querySecurity == "" {
		return
	}

	e.line("")
	e.line("url_query_init(&q);")

	if querySecurity != "" {
		e.b.WriteString(querySecurity)
	}

	for _, p := range params {
		e.queryParam(p)
	}

	e.line("if (q.count > 0) { url_query_build(&q, query_buf, sizeof(query_buf)); }")
}

func (e *emitter) queryParam(p model.Parameter) {
	if p.Schema != nil && p.Schema.Type == "array" {
		e.arrayQueryParam(p)
		return
	}

	if p.Schema != nil && p.Schema.Type == "object" {
		e.objectQueryParam(p)
		return
	}

	e.line("if (%s) { url_query_add(&q, \"%s\", %s); }", p.Name, p.Name, p.Name)
}

func (e *emitter) arrayQueryParam(p model.Parameter) {
	switch p.Style {
	case "spaceDelimited":
		e.line("url_query_add_joined(&q, \"%s\", %s, %s_len, ' ');", p.Name, p.Name, p.Name)
	case "pipeDelimited":
		e.line("url_query_add_joined(&q, \"%s\", %s, %s_len, '|');", p.Name, p.Name, p.Name)
	default:
		if p.Explode {
			e.line("for (size_t i = 0; i < %s_len; i++) { url_query_add(&q, \"%s\", %s[i]); }", p.Name, p.Name, p.Name)
		} else {
			e.line("url_query_add_joined(&q, \"%s\", %s, %s_len, ',');", p.Name, p.Name, p.Name)
		}
	}
}

func (e *emitter) objectQueryParam(p model.Parameter) {
	if p.Style == "deepObject" {
		e.line("url_query_add_deep_object(&q, \"%s\", %s, %s_len);", p.Name, p.Name, p.Name)
		return
	}

	e.line("url_query_add_kv(&q, \"%s\", %s, %s_len);", p.Name, p.Name, p.Name)
}

// 6. Body serialization.
func (e *emitter) bodySerialization() {
	if e.op.RequestBody == nil {
		return
	}

	e.line("")

	ct, mt := e.requestContentType()

	switch ct {
	case "multipart/form-data":
		e.line("/* multipart/form-data body */")

		if mt != nil {
			names := make([]string, 0, len(mt.Schema.Properties))
			for name := range mt.Schema.Properties {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				e.line("http_multipart_add_field(&req, \"%s\", %s);", name, name)
			}
		}
	case "application/x-www-form-urlencoded":
		e.line("/* application/x-www-form-urlencoded body */")

		if mt != nil {
			names := make([]string, 0, len(mt.Schema.Properties))
			for name := range mt.Schema.Properties {
				names = append(names, name)
			}

			sort.Strings(names)

			for _, name := range names {
				e.line("http_form_add(&req, \"%s\", %s);", name, name)
			}
		}
	default:
		ctype, _ := cTypeForSchema(mtSchema(mt))
		e.line("body_json = %s_to_json(req_body);", strings.TrimPrefix(ctype, "struct "))
		e.line("http_request_set_body(&req, body_json, \"application/json\");")
	}
}

func mtSchema(mt *model.MediaType) *model.Schema {
	if mt == nil {
		return nil
	}

	return mt.Schema
}

func (e *emitter) requestContentType() (string, *model.MediaType) {
	rb := e.op.RequestBody
	if rb == nil {
		return "", nil
	}

	ct := e.cfg.DefaultContentType
	if ct == "" {
		ct = "application/json"
	}

	if mt, ok := rb.Content[ct]; ok {
		return ct, mt
	}

	for k, v := range rb.Content {
		return k, v
	}

	return "", nil
}

// 7. URL assembly.
func (e *emitter) urlAssembly() {
	e.line("")

	format, args := urlFormat(e.route, paramsByLocation(e.op, "path"))
	if len(args) > 0 {
		e.line("snprintf(url, sizeof(url), \"%s\", %s);", format, strings.Join(args, ", "))
	} else {
		e.line("snprintf(url, sizeof(url), \"%s\");", format)
	}

	e.line("if (query_buf[0] != '\\0') { strncat(url, query_buf, sizeof(url) - strlen(url) - 1); }")
}

// urlFormat interpolates a route template's {name} placeholders into a
// printf-style format string per the parameter's style (simple is the
// common case; matrix/label rewrite the placeholder's leading separator).
func urlFormat(route string, pathParams []model.Parameter) (string, []string) {
	byName := make(map[string]model.Parameter, len(pathParams))
	for _, p := range pathParams {
		byName[p.Name] = p
	}

	var (
		out  strings.Builder
		args []string
	)

	for i := 0; i < len(route); i++ {
		if route[i] != '{' {
			out.WriteByte(route[i])
			continue
		}

		end := strings.IndexByte(route[i:], '}')
		if end < 0 {
			out.WriteByte(route[i])
			continue
		}

		name := route[i+1 : i+end]
		i += end

		p := byName[name]

		switch p.Style {
		case "matrix":
			out.WriteString(";" + name + "=%s")
		case "label":
			out.WriteString(".%s")
		default:
			out.WriteString("%s")
		}

		args = append(args, name)
	}

	return out.String(), args
}

// 8. req.method assignment.
func (e *emitter) methodAssignment() {
	_, verb := routeAndVerbFor(e.op, e.spec)
	e.line("req.method = HTTP_METHOD_%s;", verb)
	e.line("req.url = url;")
	e.line("req.headers = &headers;")
}

// 9. Send loop with retry.
func (e *emitter) sendLoop() {
	e.line("")
	e.line("for (attempt = 0; attempt <= ctx->config.retry_count; attempt++) {")
	e.line("\trc = http_client_send(ctx, &req, &resp);")
	e.line("\tif (rc == 0) { break; }")
	e.line("\thttp_client_backoff(ctx, attempt);")
	e.line("}")
	e.line("if (rc != 0) { goto cleanup; }")
}

// 10. Response switch.
func (e *emitter) responseSwitch() {
	e.line("")
	e.line("switch (resp.status) {")

	codes := make([]string, 0, len(e.op.Responses))
	for code := range e.op.Responses {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	for _, code := range codes {
		e.responseCase(code)
	}

	e.line("default:")
	e.line("\trc = EIO;")
	e.line("\tApiError_from_json(resp.body, api_error);")
	e.line("\tbreak;")
	e.line("}")
}

func (e *emitter) responseCase(code string) {
	resp := e.op.Responses[code]

	if code == "default" {
		return
	}

	e.line("case %s:", code)

	if len(code) == 3 && code[0] == '2' {
		if mt := resp.Content["application/json"]; mt != nil && mt.Schema != nil {
			ctype, _ := cTypeForSchema(mt.Schema)
			e.line("\t*out = %s_from_json(resp.body);", strings.TrimPrefix(ctype, "struct "))
		}

		e.line("\trc = 0;")
	} else {
		e.line("\trc = %s;", httpStatusErrno(code))
		e.line("\tApiError_from_json(resp.body, api_error);")
	}

	e.line("\tbreak;")
}

func httpStatusErrno(code string) string {
	switch code {
	case "400":
		return "EINVAL"
	case "401", "403":
		return "EACCES"
	case "404":
		return "ENOENT"
	default:
		return "EIO"
	}
}

// 11. cleanup label.
func (e *emitter) cleanup() {
	e.line("")
	e.line("cleanup:")
	e.line("\thttp_request_release(&req);")
	e.line("\thttp_headers_release(&headers);")
	e.line("\turl_query_release(&q);")
	e.line("\tfree(body_json);")
	e.line("\treturn rc;")
}
