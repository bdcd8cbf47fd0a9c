package docparser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRouteAndParams(t *testing.T) {
	comment := `/**
 * @route GET /users/{id}
 * @operationId getUser
 * @summary Fetch a user
 * @param id [in:path] [required] the user id
 * @param verbose [in:query] [required:false] include extra fields
 * @return 200 [contentType:application/json] the user record
 * @return 404 not found
 */`

	meta, err := Parse(comment)
	require.NoError(t, err)

	assert.Equal(t, "GET", meta.Verb)
	assert.Equal(t, "/users/{id}", meta.Route)
	assert.Equal(t, "getUser", meta.OperationID)
	assert.Equal(t, "Fetch a user", meta.Summary)

	require.Len(t, meta.Params, 2)
	assert.Equal(t, "id", meta.Params[0].Name)
	assert.Equal(t, "path", meta.Params[0].In)
	assert.True(t, meta.Params[0].Required)
	assert.Equal(t, "the user id", meta.Params[0].Description)

	assert.Equal(t, "verbose", meta.Params[1].Name)
	assert.False(t, meta.Params[1].Required)

	require.Len(t, meta.Returns, 2)
	assert.Equal(t, "200", meta.Returns[0].Code)
	assert.Equal(t, "application/json", meta.Returns[0].ContentType)
	assert.Equal(t, "404", meta.Returns[1].Code)
}

func TestParseWebhook(t *testing.T) {
	meta, err := Parse("// @webhook POST /events")
	require.NoError(t, err)

	assert.True(t, meta.IsWebhook)
	assert.Equal(t, "POST", meta.Verb)
	assert.Equal(t, "/events", meta.Route)
}

func TestParseSecurityScheme(t *testing.T) {
	comment := "@securityScheme bearerAuth [type:http] [scheme:bearer] [bearerFormat:JWT]"

	meta, err := Parse(comment)
	require.NoError(t, err)
	require.Len(t, meta.SecuritySchemes, 1)

	s := meta.SecuritySchemes[0]
	assert.Equal(t, "bearerAuth", s.Name)
	assert.Equal(t, "http", s.Type)
	assert.Equal(t, "bearer", s.Scheme)
	assert.Equal(t, "JWT", s.BearerFormat)
}

func TestParseServerAndServerVar(t *testing.T) {
	comment := `@server https://{env}.example.com [name=Prod] [description=Production]
@serverVar env [default:api] [enum:api,sandbox] [description:Environment]`

	meta, err := Parse(comment)
	require.NoError(t, err)
	require.Len(t, meta.Servers, 1)

	srv := meta.Servers[0]
	assert.Equal(t, "https://{env}.example.com", srv.URL)
	assert.Equal(t, "Prod", srv.Name)
	require.Len(t, srv.Variables, 1)
	assert.Equal(t, "env", srv.Variables[0].Name)
	assert.Equal(t, "api", srv.Variables[0].Default)
	assert.Equal(t, []string{"api", "sandbox"}, srv.Variables[0].Enum)
}

func TestParseTagMeta(t *testing.T) {
	meta, err := Parse("@tagMeta users [summary:User operations] [parent:core]")
	require.NoError(t, err)
	require.Len(t, meta.TagMeta, 1)

	assert.Equal(t, "users", meta.TagMeta[0].Name)
	assert.Equal(t, "User operations", meta.TagMeta[0].Summary)
	assert.Equal(t, "core", meta.TagMeta[0].Parent)
}

func TestParseUnknownDirectiveSkipped(t *testing.T) {
	meta, err := Parse("@bogusDirective something\n@summary Still works")
	require.NoError(t, err)

	assert.Equal(t, "Still works", meta.Summary)
}

func TestParseContinuationDescription(t *testing.T) {
	comment := `@route GET /ping
First line of description.
Second line of description.`

	meta, err := Parse(comment)
	require.NoError(t, err)
	assert.Equal(t, "First line of description.\nSecond line of description.", meta.Description)
}

func TestParseDeprecatedShorthand(t *testing.T) {
	meta, err := Parse("@deprecated")
	require.NoError(t, err)

	assert.True(t, meta.Deprecated)
	assert.True(t, meta.DeprecatedSet)
}

func TestParseBoolShorthand(t *testing.T) {
	assert.True(t, parseBool(""))
	assert.True(t, parseBool("true"))
	assert.False(t, parseBool("false"))
	assert.False(t, parseBool("nope"))
}
