package emit

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/model"
)

func widgetSpec() *model.Spec {
	op := &model.Operation{
		OperationID: "getWidget",
		Tags:        []string{"widgets"},
		Parameters: []model.Parameter{
			{Name: "id", In: "path", Required: true, Schema: &model.Schema{Type: "string"}},
			{Name: "verbose", In: "query", Schema: &model.Schema{Type: "boolean"}},
		},
		Responses: map[string]*model.Response{
			"200": {
				Description: "OK",
				Content: map[string]*model.MediaType{
					"application/json": {Schema: &model.Schema{Ref: "#/components/schemas/Widget"}},
				},
			},
			"404": {Description: "Not found"},
		},
	}

	return &model.Spec{
		Paths: map[string]*model.PathItem{
			"/widgets/{id}": {Get: op},
		},
		Components: &model.Components{SecuritySchemes: map[string]*model.SecurityScheme{}},
	}
}

func TestSignatureIncludesPathAndQueryParams(t *testing.T) {
	spec := widgetSpec()
	op := spec.Paths["/widgets/{id}"].Get

	sig := Signature(op, config.DefaultEmitterConfig())
	assert.Contains(t, sig, "Widgets_getWidget")
	assert.Contains(t, sig, "const char *id")
	assert.Contains(t, sig, "bool verbose")
	assert.Contains(t, sig, "struct ApiError **api_error")
	assert.True(t, strings.HasSuffix(sig, ");"))
}

func TestSignatureAppendsSuccessOutput(t *testing.T) {
	spec := widgetSpec()
	op := spec.Paths["/widgets/{id}"].Get

	sig := Signature(op, config.DefaultEmitterConfig())
	assert.Contains(t, sig, "struct Widget **out")
}

func TestBodyOrdersStepsSequentially(t *testing.T) {
	spec := widgetSpec()
	op := spec.Paths["/widgets/{id}"].Get

	body := Body(op, spec, config.DefaultEmitterConfig())

	declIdx := strings.Index(body, "struct HttpRequest req;")
	initIdx := strings.Index(body, "http_request_init")
	sendIdx := strings.Index(body, "http_client_send")
	cleanupIdx := strings.Index(body, "cleanup:")

	require.True(t, declIdx >= 0 && initIdx > declIdx && sendIdx > initIdx && cleanupIdx > sendIdx)
}

func TestBodyHeaderParamAnchorComment(t *testing.T) {
	op := &model.Operation{
		OperationID: "pingWidget",
		Parameters: []model.Parameter{
			{Name: "traceId", In: "header", Schema: &model.Schema{Type: "string"}},
		},
		Responses: map[string]*model.Response{"200": {Description: "OK"}},
	}

	spec := &model.Spec{Paths: map[string]*model.PathItem{"/ping": {Post: op}}}

	body := Body(op, spec, config.DefaultEmitterConfig())
	assert.Contains(t, body, "/* Header Parameter: traceId */")
}

func TestSecurityBearerScheme(t *testing.T) {
	schemes := map[string]*model.SecurityScheme{
		"bearerAuth": {Type: "http", Scheme: "bearer"},
	}
	reqs := []model.SecurityRequirement{{"bearerAuth": {}}}

	block := Security(schemes, reqs)
	assert.Contains(t, block, "http_request_set_auth_bearer")
}

func TestSecurityAPIKeyInQuery(t *testing.T) {
	schemes := map[string]*model.SecurityScheme{
		"apiKeyAuth": {Type: "apiKey", In: "query", Name: "api_key"},
	}
	reqs := []model.SecurityRequirement{{"apiKeyAuth": {}}}

	block := Security(schemes, reqs)
	assert.Contains(t, block, "url_query_add(&q, \"api_key\"")
}

func TestHeaderEmitsExternCGuardAndPrototypes(t *testing.T) {
	spec := widgetSpec()

	header := Header(spec, config.DefaultEmitterConfig())
	assert.Contains(t, header, "extern \"C\"")
	assert.Contains(t, header, "struct ApiError {")
	assert.Contains(t, header, "Widgets_getWidget")
}

func TestSourceEmitsOneBodyPerOperation(t *testing.T) {
	spec := widgetSpec()

	source := Source(spec, config.DefaultEmitterConfig())
	assert.Contains(t, source, "#include <parson.h>")
	assert.Contains(t, source, "Widgets_getWidget")
	assert.Contains(t, source, "ApiError_from_json")
}

func TestAllOperationsSortedDeterministically(t *testing.T) {
	spec := &model.Spec{
		Paths: map[string]*model.PathItem{
			"/b": {Get: &model.Operation{OperationID: "b", Responses: map[string]*model.Response{"200": {Description: "OK"}}}},
			"/a": {Get: &model.Operation{OperationID: "a", Responses: map[string]*model.Response{"200": {Description: "OK"}}}},
		},
	}

	ops := allOperations(spec)
	require.Len(t, ops, 2)
	assert.Equal(t, "/a", ops[0].route)
	assert.Equal(t, "/b", ops[1].route)
}
