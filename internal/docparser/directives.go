package docparser

import "strings"

func applyParam(meta *Metadata, rest string) {
	f := splitFields(rest, 2)
	p := Param{Name: f[0]}

	a := parseAttrs(f[1])

	p.In = a.getDefault("in", "")
	p.Format = a.getDefault("format", "")
	p.ContentType = a.getDefault("contentType", "")
	p.Example = a.getDefault("example", "")
	p.Description = a.tail

	if v, ok := a.boolFlag("required"); ok {
		p.Required = v
	}

	if v, ok := a.boolFlag("deprecated"); ok {
		p.Deprecated, p.DeprecatedSet = v, true
	}

	if v, ok := a.get("style"); ok {
		p.Style, p.StyleSet = v, true
	}

	if v, ok := a.boolFlag("explode"); ok {
		p.Explode, p.ExplodeSet = v, true
	}

	if v, ok := a.boolFlag("allowReserved"); ok {
		p.AllowReserved, p.AllowReservedSet = v, true
	}

	if v, ok := a.boolFlag("allowEmptyValue"); ok {
		p.AllowEmptyValue, p.AllowEmptyValueSet = v, true
	}

	meta.Params = append(meta.Params, p)
}

func applyReturn(meta *Metadata, rest string) {
	f := splitFields(rest, 2)
	a := parseAttrs(f[1])

	meta.Returns = append(meta.Returns, Response{
		Code:        f[0],
		Summary:     a.getDefault("summary", ""),
		Description: a.tail,
		ContentType: a.getDefault("contentType", ""),
		Example:     a.getDefault("example", ""),
	})
}

func applyTagMeta(meta *Metadata, rest string) {
	f := splitFields(rest, 2)
	a := parseAttrs(f[1])

	meta.TagMeta = append(meta.TagMeta, TagMeta{
		Name:                    f[0],
		Summary:                 a.getDefault("summary", ""),
		Description:             a.getDefault("description", a.tail),
		Parent:                  a.getDefault("parent", ""),
		Kind:                    a.getDefault("kind", ""),
		ExternalDocsURL:         a.getDefault("externalDocs", ""),
		ExternalDocsDescription: a.getDefault("externalDocsDescription", ""),
	})
}

func applySecurity(meta *Metadata, rest string) {
	f := splitFields(rest, 2)

	meta.Security = append(meta.Security, SecurityRequirement{
		Scheme: f[0],
		Scopes: splitScopes(f[1]),
	})
}

func applySecurityScheme(meta *Metadata, rest string) {
	f := splitFields(rest, 2)
	a := parseAttrs(f[1])

	scheme := SecurityScheme{
		Name:              f[0],
		Type:              a.getDefault("type", ""),
		Description:       a.getDefault("description", ""),
		Scheme:            a.getDefault("scheme", ""),
		BearerFormat:      a.getDefault("bearerFormat", ""),
		ParamName:         a.getDefault("paramName", ""),
		In:                a.getDefault("in", ""),
		OpenIDConnectURL:  a.getDefault("openIdConnectUrl", ""),
		OAuth2MetadataURL: a.getDefault("oauth2MetadataUrl", ""),
	}

	if v, ok := a.boolFlag("deprecated"); ok {
		scheme.Deprecated, scheme.DeprecatedSet = v, true
	}

	if flowType, ok := a.get("flow"); ok {
		flow := OAuthFlow{
			Type:                   flowType,
			AuthorizationURL:       a.getDefault("authorizationUrl", ""),
			TokenURL:               a.getDefault("tokenUrl", ""),
			RefreshURL:             a.getDefault("refreshUrl", ""),
			DeviceAuthorizationURL: a.getDefault("deviceAuthorizationUrl", ""),
		}

		for _, scopeName := range splitScopes(a.getDefault("scopes", "")) {
			flow.Scopes = append(flow.Scopes, OAuthScope{Name: scopeName})
		}

		scheme.Flows = append(scheme.Flows, flow)
	}

	meta.SecuritySchemes = append(meta.SecuritySchemes, scheme)
}

func applyServer(meta *Metadata, rest string) *Server {
	f := splitFields(rest, 2)
	a := parseAttrs(f[1])

	srv := Server{
		URL:         f[0],
		Name:        a.getDefault("name", ""),
		Description: a.getDefault("description", a.tail),
	}

	meta.Servers = append(meta.Servers, srv)

	return &meta.Servers[len(meta.Servers)-1]
}

func applyServerVar(lastServer *Server, rest string) {
	if lastServer == nil {
		return
	}

	f := splitFields(rest, 2)
	a := parseAttrs(f[1])

	lastServer.Variables = append(lastServer.Variables, ServerVar{
		Name:        f[0],
		Default:     a.getDefault("default", ""),
		Description: a.getDefault("description", ""),
		Enum:        splitScopes(a.getDefault("enum", "")),
	})
}

func applyContact(meta *Metadata, rest string) {
	a := parseAttrs(rest)
	meta.ContactName = a.getDefault("name", "")
	meta.ContactURL = a.getDefault("url", "")
	meta.ContactEmail = a.getDefault("email", "")
}

func applyLicense(meta *Metadata, rest string) {
	a := parseAttrs(rest)
	meta.LicenseName = a.getDefault("name", "")
	meta.LicenseIdentifier = a.getDefault("identifier", "")
	meta.LicenseURL = a.getDefault("url", "")
}

func applyRequestBody(meta *Metadata, rest string) {
	a := parseAttrs(rest)

	meta.RequestBodyDescription = a.tail
	meta.RequestBodyContentType = a.getDefault("contentType", "")

	if v, ok := a.boolFlag("required"); ok {
		meta.RequestBodyRequired, meta.RequestBodyRequiredSet = v, true
	}

	if a.getDefault("contentType", "") != "" || a.tail != "" {
		meta.RequestBodies = append(meta.RequestBodies, RequestBody{
			ContentType: a.getDefault("contentType", ""),
			Description: a.tail,
			Example:     a.getDefault("example", ""),
		})
	}
}

func applyResponseHeader(meta *Metadata, rest string) {
	f := splitFields(rest, 3)
	a := parseAttrs(f[2])

	h := ResponseHeader{
		Code:        f[0],
		Name:        f[1],
		Type:        a.getDefault("type", ""),
		Format:      a.getDefault("format", ""),
		ContentType: a.getDefault("contentType", ""),
		Description: a.tail,
		Example:     a.getDefault("example", ""),
	}

	if v, ok := a.boolFlag("required"); ok {
		h.Required, h.RequiredSet = v, true
	}

	meta.ResponseHeaders = append(meta.ResponseHeaders, h)
}

func applyLink(meta *Metadata, rest string) {
	f := splitFields(rest, 3)
	a := parseAttrs(f[2])

	meta.Links = append(meta.Links, Link{
		Code:              f[0],
		Name:              f[1],
		OperationID:       a.getDefault("operationId", ""),
		OperationRef:      a.getDefault("operationRef", ""),
		Summary:           a.getDefault("summary", ""),
		Description:       a.getDefault("description", a.tail),
		ParametersJSON:    a.getDefault("parameters", ""),
		RequestBodyJSON:   a.getDefault("requestBody", ""),
		ServerURL:         a.getDefault("serverUrl", ""),
		ServerName:        a.getDefault("serverName", ""),
		ServerDescription: a.getDefault("serverDescription", ""),
	})
}

// parseFloat64/parseInt round out the coercion helpers for attribute
// values that name a number rather than a bool, kept in the spirit of
// metadata/utils.go's original signatures. They are unexported and local
// to this package.
func parseFloat64(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}

	var v float64
	var sign float64 = 1
	i := 0

	if s[0] == '-' {
		sign = -1
		i++
	} else if s[0] == '+' {
		i++
	}

	seenDigit := false
	frac := 0.0
	fracDiv := 1.0
	inFrac := false

	for ; i < len(s); i++ {
		c := s[i]

		switch {
		case c == '.' && !inFrac:
			inFrac = true
		case c >= '0' && c <= '9':
			seenDigit = true

			if inFrac {
				fracDiv *= 10
				frac = frac*10 + float64(c-'0')
			} else {
				v = v*10 + float64(c-'0')
			}
		default:
			return 0, false
		}
	}

	if !seenDigit {
		return 0, false
	}

	return sign * (v + frac/fracDiv), true
}

func parseInt(s string) (int, bool) {
	v, ok := parseFloat64(s)
	if !ok {
		return 0, false
	}

	return int(v), true
}
