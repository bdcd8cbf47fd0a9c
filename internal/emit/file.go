package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/model"
)

// allOperations returns every operation in spec paired with its route and
// verb, sorted by route then verb for deterministic file output -- the
// spec's own Paths map has no stable iteration order, and spec.md's
// "deterministic: given the same spec and config, byte-identical output"
// guarantee has to come from somewhere in this package since the model
// doesn't sort for us.
func allOperations(spec *model.Spec) []routedOperation {
	var out []routedOperation

	collect := func(paths map[string]*model.PathItem) {
		for route, item := range paths {
			for _, vo := range item.Operations() {
				out = append(out, routedOperation{route: route, verb: vo.Verb, op: vo.Operation})
			}
		}
	}

	collect(spec.Paths)
	collect(spec.Webhooks)

	sort.Slice(out, func(i, j int) bool {
		if out[i].route != out[j].route {
			return out[i].route < out[j].route
		}

		return out[i].verb < out[j].verb
	})

	return out
}

type routedOperation struct {
	route string
	verb  string
	op    *model.Operation
}

// Header assembles the full .h file: include preamble, extern "C" guard,
// the ApiError struct, init/cleanup prototypes, and one Doxygen-annotated
// prototype per operation.
func Header(spec *model.Spec, cfg config.EmitterConfig) string {
	var b strings.Builder

	guard := strings.ToUpper(sanitizeIdent(cfg.NamespacePrefix)) + "_CLIENT_H"
	if guard == "_CLIENT_H" {
		guard = "OPENAPI_CLIENT_H"
	}

	fmt.Fprintf(&b, "#ifndef %s\n#define %s\n\n", guard, guard)
	b.WriteString("#include <stddef.h>\n#include <stdbool.h>\n#include <stdint.h>\n\n")
	b.WriteString("#ifdef __cplusplus\nextern \"C\" {\n#endif\n\n")
	b.WriteString("struct ApiError {\n\tint code;\n\tchar *message;\n};\n\n")

	prefix := sanitizeIdent(cfg.NamespacePrefix)
	if prefix == "" {
		prefix = "openapi"
	}

	fmt.Fprintf(&b, "int %s_init(struct HttpClient *ctx);\n", prefix)
	fmt.Fprintf(&b, "void %s_cleanup(struct HttpClient *ctx);\n\n", prefix)

	for _, ro := range allOperations(spec) {
		if ro.op.Summary != "" || ro.op.Description != "" {
			b.WriteString("/**\n")

			if ro.op.Summary != "" {
				fmt.Fprintf(&b, " * @brief %s\n", ro.op.Summary)
			}

			if ro.op.Description != "" {
				fmt.Fprintf(&b, " * %s\n", ro.op.Description)
			}

			b.WriteString(" */\n")
		}

		b.WriteString(Signature(ro.op, cfg))
		b.WriteString("\n\n")
	}

	b.WriteString("#ifdef __cplusplus\n}\n#endif\n\n")
	fmt.Fprintf(&b, "#endif /* %s */\n", guard)

	return b.String()
}

// Source assembles the full .c file: include graph, transport backend
// selection, the ApiError_from_json helper, lifecycle implementations, and
// one function body per operation following Body's layout.
func Source(spec *model.Spec, cfg config.EmitterConfig) string {
	var b strings.Builder

	headerName := sanitizeIdent(cfg.NamespacePrefix)
	if headerName == "" {
		headerName = "openapi"
	}

	fmt.Fprintf(&b, "#include \"%s_client.h\"\n", headerName)
	b.WriteString("#include <parson.h>\n\n")
	b.WriteString("#if defined(OPENAPI_USE_WININET)\n")
	b.WriteString("#include \"transport_wininet.h\"\n")
	b.WriteString("#elif defined(OPENAPI_USE_WINHTTP)\n")
	b.WriteString("#include \"transport_winhttp.h\"\n")
	b.WriteString("#else\n")
	b.WriteString("#include \"transport_curl.h\"\n")
	b.WriteString("#endif\n\n")

	b.WriteString("static void ApiError_from_json(const char *body, struct ApiError **api_error) {\n")
	b.WriteString("\tif (api_error == NULL || body == NULL) { return; }\n")
	b.WriteString("\t*api_error = ApiError_new_from_json(body);\n")
	b.WriteString("}\n\n")

	prefix := sanitizeIdent(cfg.NamespacePrefix)
	if prefix == "" {
		prefix = "openapi"
	}

	fmt.Fprintf(&b, "int %s_init(struct HttpClient *ctx) {\n\treturn http_client_init(ctx);\n}\n\n", prefix)
	fmt.Fprintf(&b, "void %s_cleanup(struct HttpClient *ctx) {\n\thttp_client_cleanup(ctx);\n}\n\n", prefix)

	for _, ro := range allOperations(spec) {
		sig := strings.TrimSuffix(Signature(ro.op, cfg), ";")
		fmt.Fprintf(&b, "%s {\n", sig)
		b.WriteString(indent(Body(ro.op, spec, cfg)))
		b.WriteString("}\n\n")
	}

	return b.String()
}

func indent(s string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")

	var b strings.Builder

	for _, l := range lines {
		if l == "" {
			b.WriteString("\n")
			continue
		}

		b.WriteString("\t")
		b.WriteString(l)
		b.WriteString("\n")
	}

	return b.String()
}
