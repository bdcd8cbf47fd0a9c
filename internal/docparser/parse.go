package docparser

import (
	"strings"
)

// Parse strips decorative comment leaders from commentText, then parses it
// line by line into a Metadata record. Unknown directives and malformed
// lines are skipped rather than treated as fatal, matching the forward
// compatibility requirement: a newer doc comment processed by an older
// build must still degrade gracefully instead of aborting the whole file.
func Parse(commentText string) (*Metadata, error) {
	meta := &Metadata{}

	var lastServer *Server

	var description strings.Builder

	for _, raw := range splitLines(commentText) {
		line := stripLeader(raw)
		if line == "" {
			continue
		}

		directive, rest, ok := splitDirective(line)
		if !ok {
			if description.Len() > 0 {
				description.WriteByte('\n')
			}

			description.WriteString(line)

			continue
		}

		applyDirective(meta, &lastServer, directive, rest)
	}

	if meta.Description == "" {
		meta.Description = strings.TrimSpace(description.String())
	}

	return meta, nil
}

// splitLines splits on '\n' only; callers pass already-decoded text so '\r'
// is stripped defensively per line in stripLeader.
func splitLines(s string) []string {
	return strings.Split(s, "\n")
}

// stripLeader removes block-comment delimiters (/*, */), line-comment
// markers (//, ///), and decorative leading asterisks from one raw line.
func stripLeader(line string) string {
	line = strings.TrimRight(line, "\r")
	line = strings.TrimSpace(line)

	line = strings.TrimPrefix(line, "/**")
	line = strings.TrimPrefix(line, "/*!")
	line = strings.TrimPrefix(line, "/*")
	line = strings.TrimSuffix(line, "*/")
	line = strings.TrimSpace(line)

	for strings.HasPrefix(line, "*") {
		line = strings.TrimSpace(strings.TrimPrefix(line, "*"))
	}

	line = strings.TrimPrefix(line, "///")
	line = strings.TrimPrefix(line, "//")

	return strings.TrimSpace(line)
}

// splitDirective reports whether line begins with '@' or '\' followed by
// an identifier, and if so returns the directive name (lowercased) and the
// remainder of the line.
func splitDirective(line string) (name, rest string, ok bool) {
	if line == "" || (line[0] != '@' && line[0] != '\\') {
		return "", "", false
	}

	body := line[1:]

	i := 0
	for i < len(body) && (isAlnum(body[i]) || body[i] == '_') {
		i++
	}

	if i == 0 {
		return "", "", false
	}

	return strings.ToLower(body[:i]), strings.TrimSpace(body[i:]), true
}

func isAlnum(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// applyDirective dispatches one parsed directive into meta. lastServer
// tracks the most recently emitted @server within this block so a
// subsequent @serverVar can attach to it.
func applyDirective(meta *Metadata, lastServer **Server, name, rest string) {
	switch name {
	case "route":
		f := splitFields(rest, 2)
		meta.Verb, meta.Route = strings.ToUpper(f[0]), f[1]
	case "webhook":
		f := splitFields(rest, 2)
		meta.Verb, meta.Route = strings.ToUpper(f[0]), f[1]
		meta.IsWebhook = true
	case "param":
		applyParam(meta, rest)
	case "return", "returns":
		applyReturn(meta, rest)
	case "operationid":
		meta.OperationID = rest
	case "summary", "brief":
		meta.Summary = rest
	case "description", "details":
		meta.Description = rest
	case "tag":
		if rest != "" {
			meta.Tags = append(meta.Tags, rest)
		}
	case "tags":
		meta.Tags = append(meta.Tags, splitScopes(rest)...)
	case "tagmeta":
		applyTagMeta(meta, rest)
	case "deprecated":
		meta.Deprecated = parseBool(rest)
		meta.DeprecatedSet = true
	case "externaldocs":
		f := splitFields(rest, 2)
		meta.ExternalDocsURL = f[0]
		meta.ExternalDocsDesc = f[1]
	case "security":
		applySecurity(meta, rest)
	case "securityscheme":
		applySecurityScheme(meta, rest)
	case "server":
		*lastServer = applyServer(meta, rest)
	case "servervar":
		applyServerVar(*lastServer, rest)
	case "infotitle":
		meta.InfoTitle = rest
	case "infoversion":
		meta.InfoVersion = rest
	case "infosummary":
		meta.InfoSummary = rest
	case "infodescription":
		meta.InfoDescription = rest
	case "termsofservice":
		meta.TermsOfService = rest
	case "contact":
		applyContact(meta, rest)
	case "license":
		applyLicense(meta, rest)
	case "requestbody":
		applyRequestBody(meta, rest)
	case "responseheader":
		applyResponseHeader(meta, rest)
	case "link":
		applyLink(meta, rest)
	default:
		// Unknown directive: ignored, not fatal (forward compatibility).
	}
}
