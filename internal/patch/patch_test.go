package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talav/c2openapi/config"
	"github.com/talav/c2openapi/internal/model"
)

func sampleSpec() (*model.Spec, *model.Operation) {
	op := &model.Operation{
		OperationID: "getWidget",
		Parameters: []model.Parameter{
			{Name: "id", In: "path", Schema: &model.Schema{Type: "string"}},
		},
		Responses: map[string]*model.Response{"200": {Description: "OK"}},
	}

	spec := &model.Spec{Paths: map[string]*model.PathItem{"/widgets/{id}": {Get: op}}}

	return spec, op
}

const sampleSource = `#include "client.h"

static void helper(void) {
	do_unrelated_work();
}

int getWidget(const char *old_id, struct ApiError **api_error) {
	struct HttpRequest req;
	http_request_init(&req);
	url_query_init(&q);
	url_query_build(&q, url, sizeof(url));
	snprintf(url, sizeof(url), "/widgets/%s", old_id);
	return 0;
}
`

func TestPlanFindsFunctionAndPatchesSignature(t *testing.T) {
	spec, op := sampleSpec()

	patches, err := Plan([]byte(sampleSource), op, spec, config.DefaultEmitterConfig())
	require.NoError(t, err)
	require.NotEmpty(t, patches)

	for i := 1; i < len(patches); i++ {
		assert.True(t, patches[i].Range.Start <= patches[i-1].Range.Start, "patches must be sorted by descending start")
	}
}

func TestPlanUnknownOperationFails(t *testing.T) {
	spec, _ := sampleSpec()

	missing := &model.Operation{OperationID: "doesNotExist", Responses: map[string]*model.Response{"200": {Description: "OK"}}}

	_, err := Plan([]byte(sampleSource), missing, spec, config.DefaultEmitterConfig())
	require.Error(t, err)
}

func TestApplyEmptyPatchListLeavesSourceByteExact(t *testing.T) {
	out, err := Apply([]byte(sampleSource), nil)
	require.NoError(t, err)
	assert.Equal(t, sampleSource, string(out))
}

func TestApplyRejectsOverlappingPatches(t *testing.T) {
	patches := []Patch{
		{Range: Range{Start: 10, End: 20}, Replacement: "a"},
		{Range: Range{Start: 15, End: 25}, Replacement: "b"},
	}

	_, err := Apply([]byte(sampleSource), patches)
	require.Error(t, err)
}

func TestApplyReplacesRangeVerbatimOutsidePatch(t *testing.T) {
	src := []byte("before MIDDLE after")
	patches := []Patch{{Range: Range{Start: 7, End: 13}, Replacement: "X"}}

	out, err := Apply(src, patches)
	require.NoError(t, err)
	assert.Equal(t, "before X after", string(out))
}

func TestPlanEndToEndRoundTrip(t *testing.T) {
	spec, op := sampleSpec()

	patches, err := Plan([]byte(sampleSource), op, spec, config.DefaultEmitterConfig())
	require.NoError(t, err)

	out, err := Apply([]byte(sampleSource), patches)
	require.NoError(t, err)
	assert.Contains(t, string(out), "getWidget")
	assert.NotContains(t, string(out), "old_id")
}
