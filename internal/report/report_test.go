package report

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asynkron/unidiff/pkg/unidiff"
)

const sampleDiff = `--- /dev/null
+++ b/added_file
@@ -0,0 +1,2 @@
+one
+two
--- a/modified_file
+++ b/modified_file
@@ -1,2 +1,2 @@
-old
+new
 same`

func parseSample(t *testing.T) *unidiff.PatchSet {
	t.Helper()
	patch := unidiff.New()
	require.NoError(t, patch.Parse(sampleDiff))
	return patch
}

func TestBuild(t *testing.T) {
	t.Parallel()

	summary := Build(parseSample(t))

	require.Len(t, summary.Files, 2)
	assert.Equal(t, FileSummary{Path: "added_file", Status: StatusAdded, Added: 2, Removed: 0, Hunks: 1}, summary.Files[0])
	assert.Equal(t, FileSummary{Path: "modified_file", Status: StatusModified, Added: 1, Removed: 1, Hunks: 1}, summary.Files[1])
	assert.Equal(t, 2, summary.FilesChanged)
	assert.Equal(t, 3, summary.TotalAdded)
	assert.Equal(t, 1, summary.TotalRemoved)
}

func TestBuildEmptyPatchSet(t *testing.T) {
	t.Parallel()

	summary := Build(unidiff.New())
	assert.NotNil(t, summary.Files)
	assert.Empty(t, summary.Files)
	assert.Zero(t, summary.FilesChanged)
}

func TestMarshalProducesSchemaValidJSON(t *testing.T) {
	t.Parallel()

	payload, err := Marshal(Build(parseSample(t)))
	require.NoError(t, err)
	require.NoError(t, Validate(payload))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.EqualValues(t, 2, decoded["filesChanged"])
}

func TestMarshalEmptySummaryStillValidates(t *testing.T) {
	t.Parallel()

	payload, err := Marshal(Build(unidiff.New()))
	require.NoError(t, err)
	assert.Contains(t, string(payload), `"files": []`)
}

func TestValidateRejectsMalformedPayload(t *testing.T) {
	t.Parallel()

	bad := `{"files": [{"path": 42}], "filesChanged": 1, "totalAdded": 0, "totalRemoved": 0}`
	err := Validate([]byte(bad))
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "schema"), "error should mention schema: %v", err)
}

func TestSummarySchemaRequiresStatusEnum(t *testing.T) {
	t.Parallel()

	schemaMap := SummarySchema()

	properties, ok := schemaMap["properties"].(map[string]any)
	require.True(t, ok, "expected schema properties to be present")
	files, ok := properties["files"].(map[string]any)
	require.True(t, ok)
	items, ok := files["items"].(map[string]any)
	require.True(t, ok)
	itemProps, ok := items["properties"].(map[string]any)
	require.True(t, ok)
	status, ok := itemProps["status"].(map[string]any)
	require.True(t, ok)

	enum, ok := status["enum"].([]any)
	require.True(t, ok, "expected status enum to be present")
	assert.ElementsMatch(t, []any{StatusAdded, StatusRemoved, StatusModified}, enum)
}
