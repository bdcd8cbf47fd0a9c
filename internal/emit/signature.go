// Package emit turns a loaded model.Spec back into C client signatures and
// bodies, the FromOpenAPI direction's counterpart to internal/build's
// C-to-OpenAPI direction. Grounded on original_source/c_cdd/codegen_client_sig.h,
// codegen_client_body.h, and codegen_security.h.
package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/model"
)

// ctxType is the transport handle every generated client function takes as
// its first argument.
const ctxType = "struct HttpClient *"

// funcName composes "[Namespace_][Group_]<opId>" per the Signature shape's
// naming rules: Group is the sanitized, initial-capped first tag; a
// configured namespace prefix wraps both.
func funcName(op *model.Operation, cfg config.EmitterConfig) string {
	var group string
	if len(op.Tags) > 0 {
		group = initialCap(sanitizeIdent(op.Tags[0])) + "_"
	}

	if cfg.NamespacePrefix == "" {
		return group + op.OperationID
	}

	ns := initialCap(sanitizeIdent(cfg.NamespacePrefix)) + "_"

	return ns + group + op.OperationID
}

// paramsByLocation returns op.Parameters filtered to one `in` value,
// preserving declaration order.
func paramsByLocation(op *model.Operation, in string) []model.Parameter {
	var out []model.Parameter

	for _, p := range op.Parameters {
		if p.In == in {
			out = append(out, p)
		}
	}

	return out
}

// successSchema returns the schema of the first 2xx response (falling back
// to "default") that declares a JSON body, used to append a signature
// output parameter.
func successSchema(op *model.Operation) (status string, schema *model.Schema) {
	codes := make([]string, 0, len(op.Responses))
	for code := range op.Responses {
		codes = append(codes, code)
	}

	sort.Strings(codes)

	pick := func(code string) (*model.Schema, bool) {
		resp := op.Responses[code]
		if resp == nil {
			return nil, false
		}

		mt := resp.Content["application/json"]
		if mt == nil || mt.Schema == nil {
			return nil, false
		}

		return mt.Schema, true
	}

	for _, code := range codes {
		if len(code) == 3 && code[0] == '2' {
			if s, ok := pick(code); ok {
				return code, s
			}
		}
	}

	if s, ok := pick("default"); ok {
		return "default", s
	}

	return "", nil
}

// Signature composes the C function prototype for op, following the
// Signature shape documented in codegen_client_sig.h: ctx, path params in
// declaration order, query params, header params, request body, success
// output, and a trailing struct ApiError **api_error.
func Signature(op *model.Operation, cfg config.EmitterConfig) string {
	name := funcName(op, cfg)

	args := []string{ctxType + "ctx"}

	for _, p := range paramsByLocation(op, "path") {
		ctype, depth := cTypeForSchema(p.Schema)
		args = append(args, declareArg(ctype, depth, p.Name))
	}

	for _, p := range paramsByLocation(op, "query") {
		args = append(args, queryArgDecl(p))
	}

	for _, p := range paramsByLocation(op, "querystring") {
		args = append(args, "const char *"+p.Name)
	}

	for _, p := range paramsByLocation(op, "header") {
		ctype, depth := cTypeForSchema(p.Schema)
		args = append(args, declareArg(ctype, depth, p.Name))
	}

	if op.RequestBody != nil {
		args = append(args, requestBodyArgs(op.RequestBody, cfg)...)
	}

	if _, schema := successSchema(op); schema != nil {
		args = append(args, successOutputArgs(schema)...)
	}

	args = append(args, "struct ApiError **api_error")

	return fmt.Sprintf("int %s(\n\t%s);", name, strings.Join(args, ",\n\t"))
}

func declareArg(ctype string, pointerDepth int, name string) string {
	if pointerDepth == 0 {
		return fmt.Sprintf("%s %s", ctype, name)
	}

	return fmt.Sprintf("const %s %s%s", ctype, strings.Repeat("*", pointerDepth), name)
}

// queryArgDecl implements the object/array query-parameter shapes: object
// schemas pass a key-value list plus length, array schemas pass an item
// pointer plus length, scalars pass by value/pointer as usual.
func queryArgDecl(p model.Parameter) string {
	if p.Schema == nil {
		return fmt.Sprintf("const char *%s", p.Name)
	}

	switch p.Schema.Type {
	case "object":
		return fmt.Sprintf("struct OpenAPI_KV *%s, size_t %s_len", p.Name, p.Name)
	case "array":
		item, depth := cTypeForSchema(p.Schema.Items)
		return fmt.Sprintf("const %s %s%s, size_t %s_len", item, strings.Repeat("*", depth), p.Name, p.Name)
	default:
		ctype, depth := cTypeForSchema(p.Schema)
		return declareArg(ctype, depth, p.Name)
	}
}

func requestBodyArgs(rb *model.RequestBody, cfg config.EmitterConfig) []string {
	ct := cfg.DefaultContentType
	if ct == "" {
		ct = "application/json"
	}

	mt := rb.Content[ct]
	if mt == nil {
		for k, v := range rb.Content {
			ct, mt = k, v
			break
		}
	}

	if mt == nil || mt.Schema == nil {
		return nil
	}

	if ct == "multipart/form-data" {
		// Multipart bodies are inlined field-by-field rather than taking a
		// single struct pointer, per spec.md's request-body rules.
		var out []string

		for name, prop := range mt.Schema.Properties {
			ctype, depth := cTypeForSchema(prop)
			out = append(out, declareArg(ctype, depth, name))
		}

		sort.Strings(out)

		return out
	}

	ctype, depth := cTypeForSchema(mt.Schema)

	return []string{declareArg(ctype, depth, "req_body")}
}

func successOutputArgs(schema *model.Schema) []string {
	if schema.Type == "array" {
		item, depth := cTypeForSchema(schema.Items)

		return []string{fmt.Sprintf("%s %sout", item, strings.Repeat("*", depth+1)), "size_t *out_len"}
	}

	ctype, depth := cTypeForSchema(schema)

	return []string{fmt.Sprintf("%s %sout", ctype, strings.Repeat("*", depth+1))}
}
