package report

// SummarySchema returns the JSON Schema every marshalled summary payload
// must satisfy. Keeping the schema next to the types makes drift between
// the two a test failure instead of a consumer surprise.
func SummarySchema() map[string]any {
	return map[string]any{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"required":             []any{"files", "filesChanged", "totalAdded", "totalRemoved"},
		"additionalProperties": false,
		"properties": map[string]any{
			"files": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"required":             []any{"path", "status", "added", "removed", "hunks"},
					"additionalProperties": false,
					"properties": map[string]any{
						"path": map[string]any{
							"type": "string",
						},
						"status": map[string]any{
							"type": "string",
							"enum": []any{"added", "removed", "modified"},
						},
						"added": map[string]any{
							"type":    "integer",
							"minimum": 0,
						},
						"removed": map[string]any{
							"type":    "integer",
							"minimum": 0,
						},
						"hunks": map[string]any{
							"type":    "integer",
							"minimum": 0,
						},
					},
				},
			},
			"filesChanged": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"totalAdded": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
			"totalRemoved": map[string]any{
				"type":    "integer",
				"minimum": 0,
			},
		},
	}
}
