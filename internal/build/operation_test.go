package build

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/docparser"
	"github.com/talav/c2openapi/internal/typeinspect"
)

func TestBuildOperationVerbInferenceAndRoute(t *testing.T) {
	sig := Signature{
		Name:       "api_user_get",
		ReturnType: "int",
		Args: []Arg{
			{Name: "id", CType: "int"},
		},
	}

	gen := NewSchemaGenerator("#/components/schemas/", nil)
	built := BuildOperation(sig, nil, gen, config.DefaultEmitterConfig())

	assert.Equal(t, "GET", built.Verb)
	assert.Equal(t, "/user", built.Route)
	assert.Equal(t, "api_user_get", built.Operation.OperationID)
	require.Len(t, built.Operation.Parameters, 1)
	assert.Equal(t, "query", built.Operation.Parameters[0].In)
}

func TestBuildOperationDocOverridesAndPathParam(t *testing.T) {
	sig := Signature{
		Name: "get_user_by_id",
		Args: []Arg{
			{Name: "id", CType: "int"},
			{Name: "Authorization", CType: "const char", PointerDepth: 1},
		},
	}

	doc := &docparser.Metadata{
		Route:       "/users/{id}",
		OperationID: "getUser",
		Summary:     "Fetch a user",
	}

	gen := NewSchemaGenerator("#/components/schemas/", nil)
	built := BuildOperation(sig, doc, gen, config.DefaultEmitterConfig())

	assert.Equal(t, "/users/{id}", built.Route)
	assert.Equal(t, "getUser", built.Operation.OperationID)
	require.Len(t, built.Operation.Parameters, 1)
	assert.Equal(t, "id", built.Operation.Parameters[0].Name)
	assert.Equal(t, "path", built.Operation.Parameters[0].In)
	assert.True(t, built.Operation.Parameters[0].Required)
}

func TestBuildOperationRequestBodyFromStructPointer(t *testing.T) {
	sig := Signature{
		Name: "create_user",
		Args: []Arg{
			{Name: "user", CType: "struct User", PointerDepth: 1, RefName: "User"},
		},
	}

	defs := []typeinspect.TypeDef{{Name: "User"}}
	gen := NewSchemaGenerator("#/components/schemas/", defs)
	built := BuildOperation(sig, nil, gen, config.DefaultEmitterConfig())

	require.NotNil(t, built.Operation.RequestBody)
	mt, ok := built.Operation.RequestBody.Content["application/json"]
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/User", mt.Schema.Ref)
	assert.Empty(t, built.Operation.Parameters)
}

func TestBuildOperationResponsesFromReturns(t *testing.T) {
	sig := Signature{Name: "api_user_get"}
	doc := &docparser.Metadata{
		Returns: []docparser.Response{
			{Code: "200", ContentType: "application/json", Description: "ok"},
			{Code: "404", Description: "not found"},
		},
	}

	gen := NewSchemaGenerator("#/components/schemas/", nil)
	built := BuildOperation(sig, doc, gen, config.DefaultEmitterConfig())

	require.Len(t, built.Operation.Responses, 2)
	assert.Equal(t, "ok", built.Operation.Responses["200"].Description)
	assert.Contains(t, built.Operation.Responses["200"].Content, "application/json")
	assert.Equal(t, "not found", built.Operation.Responses["404"].Description)
}

func TestBuildOperationDefaultResponseFromOutputParam(t *testing.T) {
	sig := Signature{
		Name: "create_user",
		Args: []Arg{
			{Name: "in", CType: "struct User", PointerDepth: 1, RefName: "User"},
			{Name: "out", CType: "struct User", PointerDepth: 2, RefName: "User"},
		},
	}

	defs := []typeinspect.TypeDef{{Name: "User"}}
	gen := NewSchemaGenerator("#/components/schemas/", defs)
	built := BuildOperation(sig, nil, gen, config.DefaultEmitterConfig())

	resp, ok := built.Operation.Responses["200"]
	require.True(t, ok)
	mt, ok := resp.Content["application/json"]
	require.True(t, ok)
	assert.Equal(t, "#/components/schemas/User", mt.Schema.Ref)
}

func TestBuildOperationUnknownVerbIsAdditional(t *testing.T) {
	sig := Signature{Name: "sync_user"}
	doc := &docparser.Metadata{Verb: "SYNC"}

	gen := NewSchemaGenerator("#/components/schemas/", nil)
	built := BuildOperation(sig, doc, gen, config.DefaultEmitterConfig())

	assert.Equal(t, "SYNC", built.Verb)
	assert.True(t, built.IsAdditional)
}

func TestBuildOperationReservedHeaderDropped(t *testing.T) {
	sig := Signature{
		Name: "api_user_get",
		Args: []Arg{
			{Name: "id", CType: "int"},
		},
	}

	doc := &docparser.Metadata{
		Params: []docparser.Param{
			{Name: "id", In: "header"},
		},
	}

	gen := NewSchemaGenerator("#/components/schemas/", nil)
	cfg := config.DefaultEmitterConfig()
	cfg.ReservedHeaders = []string{"id"}

	built := BuildOperation(sig, doc, gen, cfg)
	assert.Empty(t, built.Operation.Parameters)
}
