// Package v320 projects the version-agnostic model.Spec into the OpenAPI
// 3.2.0 document shape, adding the QUERY method, additionalOperations, the
// querystring parameter location, and split item/prefix encoding on top of
// the 3.1 view this package is adapted from (internal/export/v312).
package v320

import (
	"github.com/talav/c2openapi/internal/export/util"
	"github.com/talav/c2openapi/internal/export/v312"
)

// Types unaffected by the 3.2 additions are reused directly from the 3.1
// view rather than duplicated: a schema, an example, a tag, or a contact
// object looks the same in both dialects.
type (
	InfoV32            = v312.InfoV31
	ContactV32         = v312.ContactV31
	LicenseV32         = v312.LicenseV31
	ServerV32          = v312.ServerV31
	ServerVariableV32  = v312.ServerVariableV31
	SchemaV32          = v312.SchemaV31
	DiscriminatorV32   = v312.DiscriminatorV31
	XMLV32             = v312.XMLV31
	SecurityRequirementV32 = v312.SecurityRequirementV31
	TagV32             = v312.TagV31
	ExternalDocsV32    = v312.ExternalDocsV31
	ExampleV32         = v312.ExampleV31
	CallbackV32        = v312.CallbackV31
)

// ViewV320 represents an OpenAPI 3.2.0 specification.
// https://spec.openapis.org/oas/v3.2.0
type ViewV320 struct {
	OpenAPI string `json:"openapi"`

	JSONSchemaDialect string `json:"jsonSchemaDialect,omitempty"`

	Info *InfoV32 `json:"info"`

	Servers []*ServerV32 `json:"servers,omitempty"`

	Paths PathsV32 `json:"paths"`

	Components *ComponentsV32 `json:"components,omitempty"`

	Security []SecurityRequirementV32 `json:"security,omitempty"`

	Tags []*TagV32 `json:"tags,omitempty"`

	ExternalDocs *ExternalDocsV32 `json:"externalDocs,omitempty"`

	Webhooks map[string]*PathItemV32 `json:"webhooks,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (s *ViewV320) MarshalJSON() ([]byte, error) {
	type viewV320 ViewV320

	return util.MarshalWithExtensions(viewV320(*s), s.Extensions)
}

// PathsV32 maps a path template to its PathItemV32.
type PathsV32 map[string]*PathItemV32

// PathItemV32 adds the QUERY method and the additionalOperations map (3.2
// features) on top of the fixed eight-method shape carried over from 3.1.
type PathItemV32 struct {
	Ref string `json:"$ref,omitempty"`

	Summary     string `json:"summary,omitempty"`
	Description string `json:"description,omitempty"`

	Get     *OperationV32 `json:"get,omitempty"`
	Put     *OperationV32 `json:"put,omitempty"`
	Post    *OperationV32 `json:"post,omitempty"`
	Delete  *OperationV32 `json:"delete,omitempty"`
	Options *OperationV32 `json:"options,omitempty"`
	Head    *OperationV32 `json:"head,omitempty"`
	Patch   *OperationV32 `json:"patch,omitempty"`
	Trace   *OperationV32 `json:"trace,omitempty"`

	// Query is the QUERY method operation, 3.2's only new fixed field.
	Query *OperationV32 `json:"query,omitempty"`

	// AdditionalOperations holds operations reached by any other HTTP
	// method, keyed by uppercase method name.
	AdditionalOperations map[string]*OperationV32 `json:"additionalOperations,omitempty"`

	Servers []*ServerV32 `json:"servers,omitempty"`

	Parameters []*ParameterV32 `json:"parameters,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (p *PathItemV32) MarshalJSON() ([]byte, error) {
	type pathItemV32 PathItemV32

	return util.MarshalWithExtensions(pathItemV32(*p), p.Extensions)
}

// OperationV32 mirrors OperationV31, with its Parameters/RequestBody/
// Responses re-pointed at the 3.2 media-type shape (EncodingV32).
type OperationV32 struct {
	Tags         []string                 `json:"tags,omitempty"`
	Summary      string                   `json:"summary,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ExternalDocs *ExternalDocsV32         `json:"externalDocs,omitempty"`
	OperationID  string                   `json:"operationId,omitempty"`
	Parameters   []*ParameterV32          `json:"parameters,omitempty"`
	RequestBody  *RequestBodyV32          `json:"requestBody,omitempty"`
	Responses    map[string]*ResponseV32  `json:"responses,omitempty"`
	Callbacks    map[string]*CallbackV32  `json:"callbacks,omitempty"`
	Deprecated   bool                     `json:"deprecated,omitempty"`
	Security     []SecurityRequirementV32 `json:"security,omitempty"`
	Servers      []*ServerV32             `json:"servers,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (o *OperationV32) MarshalJSON() ([]byte, error) {
	type operationV32 OperationV32

	return util.MarshalWithExtensions(operationV32(*o), o.Extensions)
}

// ParameterV32 additionally allows In == "querystring" (3.2's
// whole-query-string binding), expressed as an ordinary string value since
// the wire format is unchanged -- only the set of accepted locations grows.
type ParameterV32 struct {
	Ref string `json:"$ref,omitempty"`

	Name            string                   `json:"name,omitempty"`
	In              string                   `json:"in,omitempty"`
	Description     string                   `json:"description,omitempty"`
	Required        bool                     `json:"required,omitempty"`
	Deprecated      bool                     `json:"deprecated,omitempty"`
	AllowEmptyValue bool                     `json:"allowEmptyValue,omitempty"`
	Style           string                   `json:"style,omitempty"`
	Explode         bool                     `json:"explode,omitempty"`
	AllowReserved   bool                     `json:"allowReserved,omitempty"`
	Schema          *SchemaV32               `json:"schema,omitempty"`
	Example         any                      `json:"example,omitempty"`
	Examples        map[string]*ExampleV32   `json:"examples,omitempty"`
	Content         map[string]*MediaTypeV32 `json:"content,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (p *ParameterV32) MarshalJSON() ([]byte, error) {
	type parameterV32 ParameterV32

	return util.MarshalWithExtensions(parameterV32(*p), p.Extensions)
}

// RequestBodyV32 mirrors RequestBodyV31 with a 3.2 content map.
type RequestBodyV32 struct {
	Ref string `json:"$ref,omitempty"`

	Description string                   `json:"description,omitempty"`
	Required    bool                     `json:"required,omitempty"`
	Content     map[string]*MediaTypeV32 `json:"content"`

	Extensions map[string]any `json:"-"`
}

func (r *RequestBodyV32) MarshalJSON() ([]byte, error) {
	type requestBodyV32 RequestBodyV32

	return util.MarshalWithExtensions(requestBodyV32(*r), r.Extensions)
}

// ResponseV32 mirrors ResponseV31 with a 3.2 content map.
type ResponseV32 struct {
	Ref string `json:"$ref,omitempty"`

	Description string                   `json:"description"`
	Content     map[string]*MediaTypeV32 `json:"content,omitempty"`
	Headers     map[string]*HeaderV32    `json:"headers,omitempty"`
	Links       map[string]*v312.LinkV31 `json:"links,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (r *ResponseV32) MarshalJSON() ([]byte, error) {
	type responseV32 ResponseV32

	return util.MarshalWithExtensions(responseV32(*r), r.Extensions)
}

// HeaderV32 mirrors HeaderV31 with a 3.2 content map.
type HeaderV32 struct {
	Ref string `json:"$ref,omitempty"`

	Description     string                   `json:"description,omitempty"`
	Required        bool                     `json:"required,omitempty"`
	Deprecated      bool                     `json:"deprecated,omitempty"`
	AllowEmptyValue bool                     `json:"allowEmptyValue,omitempty"`
	Style           string                   `json:"style,omitempty"`
	Explode         bool                     `json:"explode,omitempty"`
	Schema          *SchemaV32               `json:"schema,omitempty"`
	Example         any                      `json:"example,omitempty"`
	Examples        map[string]*ExampleV32   `json:"examples,omitempty"`
	Content         map[string]*MediaTypeV32 `json:"content,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (h *HeaderV32) MarshalJSON() ([]byte, error) {
	type headerV32 HeaderV32

	return util.MarshalWithExtensions(headerV32(*h), h.Extensions)
}

// MediaTypeV32 mirrors MediaTypeV31 with an EncodingV32 map.
type MediaTypeV32 struct {
	Schema   *SchemaV32             `json:"schema,omitempty"`
	Example  any                    `json:"example,omitempty"`
	Examples map[string]*ExampleV32 `json:"examples,omitempty"`
	Encoding map[string]*EncodingV32 `json:"encoding,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (m *MediaTypeV32) MarshalJSON() ([]byte, error) {
	type mediaTypeV32 MediaTypeV32

	return util.MarshalWithExtensions(mediaTypeV32(*m), m.Extensions)
}

// EncodingV32 adds ItemEncoding (applies to stream items) and
// PrefixEncoding (applies to fixed leading tuple items) on top of the 3.1
// shape.
type EncodingV32 struct {
	ContentType   string                `json:"contentType,omitempty"`
	Headers       map[string]*HeaderV32 `json:"headers,omitempty"`
	Style         string                `json:"style,omitempty"`
	Explode       bool                  `json:"explode,omitempty"`
	AllowReserved bool                  `json:"allowReserved,omitempty"`

	// ItemEncoding describes the encoding of individual items when the
	// encoded property is a stream of items (3.2 feature).
	ItemEncoding *EncodingV32 `json:"itemEncoding,omitempty"`

	// PrefixEncoding describes the encoding of fixed leading items for a
	// tuple-like array, paired with prefixItems schemas (3.2 feature).
	PrefixEncoding []*EncodingV32 `json:"prefixEncoding,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (e *EncodingV32) MarshalJSON() ([]byte, error) {
	type encodingV32 EncodingV32

	return util.MarshalWithExtensions(encodingV32(*e), e.Extensions)
}

// ComponentsV32 mirrors ComponentsV31, re-pointed at the 3.2 variants of any
// type whose shape changed.
type ComponentsV32 struct {
	Schemas         map[string]*SchemaV32         `json:"schemas,omitempty"`
	Responses       map[string]*ResponseV32       `json:"responses,omitempty"`
	Parameters      map[string]*ParameterV32      `json:"parameters,omitempty"`
	Examples        map[string]*ExampleV32        `json:"examples,omitempty"`
	RequestBodies   map[string]*RequestBodyV32    `json:"requestBodies,omitempty"`
	Headers         map[string]*HeaderV32         `json:"headers,omitempty"`
	SecuritySchemes map[string]*SecuritySchemeV32 `json:"securitySchemes,omitempty"`
	Links           map[string]*v312.LinkV31      `json:"links,omitempty"`
	Callbacks       map[string]*CallbackV32       `json:"callbacks,omitempty"`
	PathItems       map[string]*PathItemV32       `json:"pathItems,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (c *ComponentsV32) MarshalJSON() ([]byte, error) {
	type componentsV32 ComponentsV32

	return util.MarshalWithExtensions(componentsV32(*c), c.Extensions)
}

// SecuritySchemeV32 mirrors SecuritySchemeV31 with an OAuthFlowsV32 that
// additionally carries the deviceAuthorization flow.
type SecuritySchemeV32 struct {
	Ref string `json:"$ref,omitempty"`

	Type             string        `json:"type,omitempty"`
	Description      string        `json:"description,omitempty"`
	Name             string        `json:"name,omitempty"`
	In               string        `json:"in,omitempty"`
	Scheme           string        `json:"scheme,omitempty"`
	BearerFormat     string        `json:"bearerFormat,omitempty"`
	Flows            *OAuthFlowsV32 `json:"flows,omitempty"`
	OpenIDConnectURL string        `json:"openIdConnectUrl,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (s *SecuritySchemeV32) MarshalJSON() ([]byte, error) {
	type securitySchemeV32 SecuritySchemeV32

	return util.MarshalWithExtensions(securitySchemeV32(*s), s.Extensions)
}

// OAuthFlowsV32 adds the 3.2 deviceAuthorization flow.
type OAuthFlowsV32 struct {
	Implicit            *v312.OAuthFlowV31 `json:"implicit,omitempty"`
	Password            *v312.OAuthFlowV31 `json:"password,omitempty"`
	ClientCredentials   *v312.OAuthFlowV31 `json:"clientCredentials,omitempty"`
	AuthorizationCode   *v312.OAuthFlowV31 `json:"authorizationCode,omitempty"`
	DeviceAuthorization *v312.OAuthFlowV31 `json:"deviceAuthorization,omitempty"`

	Extensions map[string]any `json:"-"`
}

func (f *OAuthFlowsV32) MarshalJSON() ([]byte, error) {
	type oAuthFlowsV32 OAuthFlowsV32

	return util.MarshalWithExtensions(oAuthFlowsV32(*f), f.Extensions)
}
