package emit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/talav/c2openapi/internal/model"
)

// canonicalSchemeName strips a requirement identifier down to the bare
// scheme name, accepting both a bare name and an absolute URI resolving to
// "#/components/securitySchemes/<name>" per spec.md §4.8.1.
func canonicalSchemeName(id string) string {
	if i := strings.LastIndex(id, "/securitySchemes/"); i >= 0 {
		return id[i+len("/securitySchemes/"):]
	}

	return id
}

// Security emits one block per distinct security scheme referenced by reqs
// (falling back to no block for an empty requirement, the "unauthenticated"
// alternative in an OR'd requirement set), dispatched by scheme kind per
// codegen_security.h.
func Security(schemes map[string]*model.SecurityScheme, reqs []model.SecurityRequirement) string {
	var b strings.Builder

	for _, name := range securitySchemeNames(schemes, reqs) {
		b.WriteString(securityBlock(name, schemes[name]))
	}

	return b.String()
}

// securitySchemeNames returns the distinct, resolvable scheme names
// referenced across reqs, sorted for deterministic output.
func securitySchemeNames(schemes map[string]*model.SecurityScheme, reqs []model.SecurityRequirement) []string {
	seen := make(map[string]bool)

	var names []string

	for _, req := range reqs {
		for id := range req {
			name := canonicalSchemeName(id)
			if !seen[name] {
				seen[name] = true

				names = append(names, name)
			}
		}
	}

	sort.Strings(names)

	var resolved []string

	for _, name := range names {
		if schemes[name] != nil {
			resolved = append(resolved, name)
		}
	}

	return resolved
}

// nonQuerySecurityBlock emits every security block except apiKey-in-query
// schemes: those add to the shared query-parameter accumulator, which
// body.go's queryParams step owns so the whole url_query_init/url_query_build
// block stays one contiguous, self-contained unit for the patch engine.
func nonQuerySecurityBlock(schemes map[string]*model.SecurityScheme, reqs []model.SecurityRequirement) string {
	var b strings.Builder

	for _, name := range securitySchemeNames(schemes, reqs) {
		scheme := schemes[name]
		if scheme.Type == "apiKey" && scheme.In == "query" {
			continue
		}

		b.WriteString(securityBlock(name, scheme))
	}

	return b.String()
}

// querySecurityLines emits the apiKey-in-query security statements skipped
// by nonQuerySecurityBlock, for body.go's queryParams step to fold into the
// query-parameter block.
func querySecurityLines(schemes map[string]*model.SecurityScheme, reqs []model.SecurityRequirement) string {
	var b strings.Builder

	for _, name := range securitySchemeNames(schemes, reqs) {
		scheme := schemes[name]
		if scheme.Type != "apiKey" || scheme.In != "query" {
			continue
		}

		b.WriteString(securityBlock(name, scheme))
	}

	return b.String()
}

func securityBlock(name string, scheme *model.SecurityScheme) string {
	switch {
	case scheme.Type == "http" && scheme.Scheme == "bearer",
		scheme.Type == "oauth2",
		scheme.Type == "openIdConnect":
		return fmt.Sprintf("http_request_set_auth_bearer(&req, ctx->credentials.%s_token);\n", sanitizeIdent(name))

	case scheme.Type == "http" && scheme.Scheme == "basic":
		return fmt.Sprintf("http_request_set_auth_basic(&req, ctx->credentials.%s_user, ctx->credentials.%s_pass);\n",
			sanitizeIdent(name), sanitizeIdent(name))

	case scheme.Type == "apiKey" && scheme.In == "header":
		return fmt.Sprintf("http_headers_add(&headers, %q, ctx->credentials.%s_key);\n", scheme.Name, sanitizeIdent(name))

	case scheme.Type == "apiKey" && scheme.In == "query":
		return fmt.Sprintf("url_query_add(&q, %q, ctx->credentials.%s_key);\n", scheme.Name, sanitizeIdent(name))

	case scheme.Type == "apiKey" && scheme.In == "cookie":
		return fmt.Sprintf("snprintf(cookie_buf, sizeof(cookie_buf), \"%s=%%s\", ctx->credentials.%s_key);\n"+
			"http_headers_add(&headers, \"Cookie\", cookie_buf);\n", scheme.Name, sanitizeIdent(name))

	default:
		return ""
	}
}
