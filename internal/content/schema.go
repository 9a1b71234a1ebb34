package content

// choiceSchema is the schema fragment shared by quiz questions, call
// steps, and binder cases.
var choiceSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":      map[string]any{"type": "string", "minLength": 1},
		"prompt":  map[string]any{"type": "string", "minLength": 1},
		"correct": map[string]any{"type": "string", "minLength": 1},
		"distractors": map[string]any{
			"type":     "array",
			"items":    map[string]any{"type": "string", "minLength": 1},
			"minItems": 1,
		},
	},
	"required":             []any{"id", "prompt", "correct", "distractors"},
	"additionalProperties": false,
}

// packSchema validates the embedded practicum pack before any exercise is
// constructed. Structural constraints the schema cannot express (exactly
// two defective charts, correct answer distinct from distractors) are
// enforced by the exercise constructors.
var packSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"version": map[string]any{"type": "string", "minLength": 1},
		"quiz": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questions": map[string]any{
					"type":     "array",
					"items":    choiceSchema,
					"minItems": 1,
				},
				"ordering": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"steps": map[string]any{
							"type":     "array",
							"items":    map[string]any{"type": "string", "minLength": 1},
							"minItems": 2,
						},
					},
					"required":             []any{"id", "prompt", "steps"},
					"additionalProperties": false,
				},
			},
			"required":             []any{"questions", "ordering"},
			"additionalProperties": false,
		},
		"phoneCall": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{"type": "string", "minLength": 1},
				"steps": map[string]any{
					"type":     "array",
					"items":    choiceSchema,
					"minItems": 1,
				},
			},
			"required":             []any{"id", "steps"},
			"additionalProperties": false,
		},
		"binder": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id": map[string]any{"type": "string", "minLength": 1},
				"cases": map[string]any{
					"type":     "array",
					"items":    choiceSchema,
					"minItems": 1,
				},
			},
			"required":             []any{"id", "cases"},
			"additionalProperties": false,
		},
		"audit": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"id":            map[string]any{"type": "string", "minLength": 1},
				"requiredPages": map[string]any{"type": "integer", "minimum": 1},
				"charts": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"id":     map[string]any{"type": "string", "minLength": 1},
						"prompt": map[string]any{"type": "string", "minLength": 1},
						"universe": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"id":        map[string]any{"type": "string", "minLength": 1},
									"label":     map[string]any{"type": "string", "minLength": 1},
									"defective": map[string]any{"type": "boolean"},
								},
								"required":             []any{"id", "label"},
								"additionalProperties": false,
							},
							"minItems": 2,
						},
					},
					"required":             []any{"id", "prompt", "universe"},
					"additionalProperties": false,
				},
				"documents": map[string]any{
					"type": "array",
					"items": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"id":    map[string]any{"type": "string", "minLength": 1},
							"title": map[string]any{"type": "string", "minLength": 1},
							"pages": map[string]any{
								"type": "array",
								"items": map[string]any{
									"type": "object",
									"properties": map[string]any{
										"id":    map[string]any{"type": "string", "minLength": 1},
										"title": map[string]any{"type": "string", "minLength": 1},
										"issue": map[string]any{"type": "string"},
									},
									"required":             []any{"id", "title"},
									"additionalProperties": false,
								},
								"minItems": 1,
							},
						},
						"required":             []any{"id", "title", "pages"},
						"additionalProperties": false,
					},
					"minItems": 1,
				},
				"distractorPool": map[string]any{
					"type":     "array",
					"items":    map[string]any{"type": "string", "minLength": 1},
					"minItems": 2,
				},
			},
			"required":             []any{"id", "requiredPages", "charts", "documents", "distractorPool"},
			"additionalProperties": false,
		},
	},
	"required":             []any{"version", "quiz", "phoneCall", "binder", "audit"},
	"additionalProperties": false,
}
