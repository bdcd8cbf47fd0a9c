package loader

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const minimalDoc = `{
	"openapi": "3.1.0",
	"info": {"title": "Widget API", "version": "1.0.0"},
	"paths": {
		"/widgets": {
			"get": {
				"operationId": "listWidgets",
				"responses": {"200": {"description": "OK"}}
			}
		}
	}
}`

func TestLoadDecodesInfoAndPaths(t *testing.T) {
	spec, err := Load(context.Background(), []byte(minimalDoc), "https://example.com/openapi.json", nil, Options{})
	require.NoError(t, err)
	assert.Equal(t, "Widget API", spec.Info.Title)
	require.Contains(t, spec.Paths, "/widgets")
	assert.Equal(t, "listWidgets", spec.Paths["/widgets"].Get.OperationID)
	assert.Equal(t, "https://example.com/openapi.json", spec.RetrievalURI)
}

func TestLoadMalformedJSONFails(t *testing.T) {
	_, err := Load(context.Background(), []byte("{not json"), "x", nil, Options{})
	require.Error(t, err)
}

func TestLoadRegistersUnderSelf(t *testing.T) {
	doc := `{"openapi": "3.2.0", "$self": "https://example.com/v2", "info": {"title": "X", "version": "1"}, "paths": {}}`

	reg := NewRegistry()
	spec, err := Load(context.Background(), []byte(doc), "https://fallback.example.com", reg, Options{})
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/v2", spec.CanonicalBaseURI())

	got, ok := reg.Lookup("https://example.com/v2")
	require.True(t, ok)
	assert.Same(t, spec, got)
}

func TestLoadCapturesExtensions(t *testing.T) {
	doc := `{
		"openapi": "3.1.0",
		"info": {"title": "X", "version": "1"},
		"paths": {},
		"x-internal-owner": "platform-team"
	}`

	spec, err := Load(context.Background(), []byte(doc), "x", nil, Options{})
	require.NoError(t, err)
	require.Contains(t, spec.Extensions, "x-internal-owner")
	assert.Equal(t, "platform-team", spec.Extensions["x-internal-owner"])
}

func TestLoadSchemaCompositionAndBounds(t *testing.T) {
	doc := `{
		"openapi": "3.1.0",
		"info": {"title": "X", "version": "1"},
		"paths": {},
		"components": {
			"schemas": {
				"Widget": {
					"type": "object",
					"properties": {
						"id": {"type": "string"},
						"count": {"type": "integer", "minimum": 0, "exclusiveMinimum": true}
					},
					"required": ["id"],
					"additionalProperties": false
				}
			}
		}
	}`

	spec, err := Load(context.Background(), []byte(doc), "x", nil, Options{})
	require.NoError(t, err)
	widget := spec.Components.Schemas["Widget"]
	require.NotNil(t, widget)
	assert.Equal(t, "object", widget.Type)
	assert.Equal(t, []string{"id"}, widget.Required)
	require.NotNil(t, widget.Additional)
	require.NotNil(t, widget.Additional.Allow)
	assert.False(t, *widget.Additional.Allow)

	count := widget.Properties["count"]
	require.NotNil(t, count.Minimum)
	assert.Equal(t, 0.0, count.Minimum.Value)
	assert.True(t, count.Minimum.Exclusive)
}

func TestLoadNullableTypeUnion(t *testing.T) {
	doc := `{
		"openapi": "3.1.0",
		"info": {"title": "X", "version": "1"},
		"paths": {},
		"components": {
			"schemas": {
				"Maybe": {"type": ["string", "null"]},
				"Either": {"type": ["string", "integer", "null"]}
			}
		}
	}`

	spec, err := Load(context.Background(), []byte(doc), "x", nil, Options{})
	require.NoError(t, err)

	maybe := spec.Components.Schemas["Maybe"]
	assert.Equal(t, "string", maybe.Type)
	assert.True(t, maybe.Nullable)
	assert.Empty(t, maybe.TypeUnion)

	either := spec.Components.Schemas["Either"]
	assert.True(t, either.Nullable)
	assert.ElementsMatch(t, []string{"string", "integer"}, either.TypeUnion)
}

func TestLoadOAuthFlowsAndSecuritySchemes(t *testing.T) {
	doc := `{
		"openapi": "3.2.0",
		"info": {"title": "X", "version": "1"},
		"paths": {},
		"components": {
			"securitySchemes": {
				"oauth2": {
					"type": "oauth2",
					"flows": {
						"deviceAuthorization": {
							"deviceAuthorizationUrl": "https://example.com/device",
							"tokenUrl": "https://example.com/token",
							"scopes": {"read": "Read access"}
						}
					}
				}
			}
		}
	}`

	spec, err := Load(context.Background(), []byte(doc), "x", nil, Options{})
	require.NoError(t, err)
	scheme := spec.Components.SecuritySchemes["oauth2"]
	require.NotNil(t, scheme.Flows.DeviceAuthorization)
	assert.Equal(t, "https://example.com/device", scheme.Flows.DeviceAuthorization.DeviceAuthorizationURL)
	assert.Equal(t, "Read access", scheme.Flows.DeviceAuthorization.Scopes["read"])
}

func TestLoadValidateHookRejectsDocument(t *testing.T) {
	opts := Options{Validate: func(ctx context.Context, doc []byte) error {
		return assertErr
	}}

	_, err := Load(context.Background(), []byte(minimalDoc), "x", nil, opts)
	require.Error(t, err)
}

var assertErr = errValidate{}

type errValidate struct{}

func (errValidate) Error() string { return "validation failed" }
