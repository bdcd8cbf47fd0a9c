package docparser

import "strings"

// attrs holds the bracketed attribute groups parsed from one directive
// line, plus the free-text tail that follows them.
type attrs struct {
	values map[string]string
	flags  map[string]bool
	tail   string
}

func (a attrs) get(key string) (string, bool) {
	v, ok := a.values[key]

	return v, ok
}

func (a attrs) getDefault(key, def string) string {
	if v, ok := a.values[key]; ok {
		return v
	}

	return def
}

// boolFlag resolves a [key] / [key:true] / [key:false] attribute using
// doc_parser.h's shorthand: a bare flag with no value means true. Returns
// the resolved value and whether the attribute was present at all.
func (a attrs) boolFlag(key string) (bool, bool) {
	if v, ok := a.flags[key]; ok {
		return v, true
	}

	if v, ok := a.values[key]; ok {
		return parseBool(v), true
	}

	return false, false
}

// splitScopes splits a comma-separated scope list, trimming whitespace
// around each entry and dropping empty entries.
func splitScopes(raw string) []string {
	if raw == "" {
		return nil
	}

	var out []string

	for _, s := range strings.Split(raw, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}

	return out
}

// parseBool implements doc_parser.h's "empty string means flag-true" rule:
// a bare [required] flag (empty value) is true; "true"/"1"/"yes" are true;
// anything else is false.
func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "true", "1", "yes":
		return true
	default:
		return false
	}
}

// parseAttrs consumes leading "[key:value]"/"[flag]" groups from line,
// separated by optional whitespace, and returns them alongside whatever
// text remains after the last group (trimmed).
func parseAttrs(line string) attrs {
	a := attrs{values: map[string]string{}, flags: map[string]bool{}}

	rest := strings.TrimLeft(line, " \t")

	for strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			break
		}

		group := rest[1:end]
		rest = strings.TrimLeft(rest[end+1:], " \t")

		// doc_parser.h's own annotation grammar is inconsistent about the
		// key/value separator ([type:apiKey] vs [name=admin] for @server);
		// accept either.
		sep := strings.IndexAny(group, ":=")
		if sep >= 0 {
			key := strings.TrimSpace(group[:sep])
			val := strings.TrimSpace(group[sep+1:])
			a.values[key] = val
			a.flags[key] = parseBool(val)
		} else {
			key := strings.TrimSpace(group)
			a.flags[key] = true
			a.values[key] = ""
		}
	}

	a.tail = rest

	return a
}

// splitFields splits s on runs of whitespace into at most n fields: the
// first n-1 words and the (trimmed) remainder. Used to peel off a directive's
// positional arguments (name, status code, verb+path, ...) before its
// bracketed attributes.
func splitFields(s string, n int) []string {
	fields := make([]string, 0, n)
	rest := s

	for i := 0; i < n-1; i++ {
		rest = strings.TrimLeft(rest, " \t")

		sp := strings.IndexAny(rest, " \t")
		if sp < 0 {
			fields = append(fields, rest)
			rest = ""

			break
		}

		fields = append(fields, rest[:sp])
		rest = rest[sp:]
	}

	fields = append(fields, strings.TrimSpace(rest))

	return fields
}
