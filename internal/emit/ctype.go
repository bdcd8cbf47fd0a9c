package emit

import (
	"strings"

	"github.com/talav/c2openapi/internal/model"
)

// cTypeForSchema is the inverse of internal/build's C-type-to-schema
// mapping table: given a schema, returns the C type spelling and pointer
// depth a generated client would declare for it. Struct references
// resolve from Schema.Ref's trailing path segment, the same name
// internal/build.SchemaGenerator.SchemaForRef used to build the ref.
func cTypeForSchema(s *model.Schema) (ctype string, pointerDepth int) {
	if s == nil {
		return "void", 0
	}

	if s.Ref != "" {
		return "struct " + refName(s.Ref), 1
	}

	switch s.Type {
	case "string":
		if s.Format == "binary" || s.ContentEncoding == "base64" {
			return "uint8_t", 1
		}

		return "char", 1
	case "integer":
		if s.Format == "int64" {
			return "int64_t", 0
		}

		return "int32_t", 0
	case "number":
		if s.Format == "float" {
			return "float", 0
		}

		return "double", 0
	case "boolean":
		return "bool", 0
	case "array":
		item, depth := cTypeForSchema(s.Items)
		if depth > 0 {
			return item, depth
		}

		return item, 1
	case "object":
		return "struct OpenAPI_KV", 1
	default:
		return "void", 1
	}
}

func refName(ref string) string {
	if i := strings.LastIndexByte(ref, '/'); i >= 0 {
		return ref[i+1:]
	}

	return ref
}

// sanitizeIdent converts an arbitrary tag or identifier string into a valid
// C identifier fragment: non-alphanumeric runs collapse to a single
// underscore, matching the Signature shape's "Group sanitization" rule.
func sanitizeIdent(s string) string {
	var b strings.Builder

	prevUnderscore := false

	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			prevUnderscore = false
		default:
			if !prevUnderscore {
				b.WriteByte('_')
				prevUnderscore = true
			}
		}
	}

	return strings.Trim(b.String(), "_")
}

func initialCap(s string) string {
	if s == "" {
		return s
	}

	return strings.ToUpper(s[:1]) + s[1:]
}
