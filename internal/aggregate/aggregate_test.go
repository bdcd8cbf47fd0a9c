package aggregate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/internal/build"
	"github.com/talav/c2openapi/internal/docparser"
	"github.com/talav/c2openapi/internal/model"
)

func op(id, route, verb string) build.Built {
	return build.Built{
		Route: route,
		Verb:  verb,
		Operation: &model.Operation{
			OperationID: id,
			Responses:   map[string]*model.Response{"200": {Description: "OK"}},
		},
	}
}

func TestAggregateGroupsByPathAndVerb(t *testing.T) {
	files := []FileResult{
		{
			Path:       "user.c",
			Operations: []build.Built{op("getUser", "/user", "GET"), op("createUser", "/user", "POST")},
		},
	}

	spec, err := Aggregate(files)
	require.NoError(t, err)
	require.Contains(t, spec.Paths, "/user")
	assert.Equal(t, "getUser", spec.Paths["/user"].Get.OperationID)
	assert.Equal(t, "createUser", spec.Paths["/user"].Post.OperationID)
}

func TestAggregateAdditionalOperations(t *testing.T) {
	built := op("lockUser", "/user/{id}", "LOCK")
	built.IsAdditional = true

	spec, err := Aggregate([]FileResult{{Path: "user.c", Operations: []build.Built{built}}})
	require.NoError(t, err)
	require.Contains(t, spec.Paths["/user/{id}"].AdditionalOperations, "LOCK")
}

func TestAggregateWebhook(t *testing.T) {
	built := op("onUserCreated", "/userCreated", "POST")
	built.IsWebhook = true

	spec, err := Aggregate([]FileResult{{Path: "hooks.c", Operations: []build.Built{built}}})
	require.NoError(t, err)
	require.Contains(t, spec.Webhooks, "/userCreated")
	assert.NotContains(t, spec.Paths, "/userCreated")
}

func TestAggregateDuplicateOperationIDFails(t *testing.T) {
	files := []FileResult{
		{Path: "a.c", Operations: []build.Built{op("dup", "/a", "GET")}},
		{Path: "b.c", Operations: []build.Built{op("dup", "/b", "GET")}},
	}

	_, err := Aggregate(files)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicateOperationID))
}

func TestAggregateGlobalsFirstFileWins(t *testing.T) {
	files := []FileResult{
		{Path: "a.c", Globals: &docparser.Metadata{InfoTitle: "Widget API", InfoVersion: "1.0.0"}},
		{Path: "b.c", Globals: &docparser.Metadata{InfoTitle: "Other Title", InfoVersion: "2.0.0"}},
	}

	spec, err := Aggregate(files)
	require.NoError(t, err)
	assert.Equal(t, "Widget API", spec.Info.Title)
	assert.Equal(t, "1.0.0", spec.Info.Version)
}

func TestAggregateTagsAndSecuritySchemesAccumulate(t *testing.T) {
	files := []FileResult{
		{Path: "a.c", Globals: &docparser.Metadata{
			TagMeta:         []docparser.TagMeta{{Name: "users", Description: "User operations"}},
			SecuritySchemes: []docparser.SecurityScheme{{Name: "bearerAuth", Type: "http", Scheme: "bearer"}},
		}},
		{Path: "b.c", Globals: &docparser.Metadata{
			TagMeta: []docparser.TagMeta{{Name: "orders", Description: "Order operations"}},
		}},
	}

	spec, err := Aggregate(files)
	require.NoError(t, err)
	require.Len(t, spec.Tags, 2)
	assert.Equal(t, "orders", spec.Tags[0].Name)
	assert.Equal(t, "users", spec.Tags[1].Name)
	require.Contains(t, spec.Components.SecuritySchemes, "bearerAuth")
}

func TestAggregateOAuthDeviceAuthorizationFlow(t *testing.T) {
	files := []FileResult{
		{Path: "a.c", Globals: &docparser.Metadata{
			SecuritySchemes: []docparser.SecurityScheme{{
				Name: "oauth2",
				Type: "oauth2",
				Flows: []docparser.OAuthFlow{{
					Type:                   "deviceAuthorization",
					DeviceAuthorizationURL: "https://example.com/device",
					TokenURL:               "https://example.com/token",
					Scopes:                 []docparser.OAuthScope{{Name: "read", Description: "Read access"}},
				}},
			}},
		}},
	}

	spec, err := Aggregate(files)
	require.NoError(t, err)
	scheme := spec.Components.SecuritySchemes["oauth2"]
	require.NotNil(t, scheme.Flows.DeviceAuthorization)
	assert.Equal(t, "https://example.com/device", scheme.Flows.DeviceAuthorization.DeviceAuthorizationURL)
}
