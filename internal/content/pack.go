package content

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/mod/semver"

	"github.com/kellyelizabethx33-dvu/Practicum-Level-1--Doctor-s-Office/internal/exercise"
)

//go:embed data/practicum.json
var packJSON []byte

// MinPackVersion is the oldest content pack version this build can run.
const MinPackVersion = "v1.0.0"

const schemaURL = "schema://practicum-pack.json"

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	// The jsonschema library expects a parsed JSON value (any), not raw
	// bytes. Marshal then unmarshal to get a clean any representation.
	defBytes, err := json.Marshal(packSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal pack schema: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse pack schema: %w", err)
	}

	c := jsonschema.NewCompiler()
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add pack schema resource: %w", err)
	}
	return c.Compile(schemaURL)
})

// Load parses and validates the embedded content pack.
func Load() (*Pack, error) {
	return Parse(packJSON)
}

// Parse validates raw pack JSON against the pack schema and the minimum
// supported version, then decodes it. Any violation is an
// ErrUnsatisfiableConfiguration: the practicum must not start on content
// it cannot grade.
func Parse(raw []byte) (*Pack, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: content pack is not valid JSON: %v", exercise.ErrUnsatisfiableConfiguration, err)
	}

	compiled, err := compileSchema()
	if err != nil {
		return nil, fmt.Errorf("compile pack schema: %w", err)
	}
	if err := compiled.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: content pack failed schema validation: %v", exercise.ErrUnsatisfiableConfiguration, err)
	}

	var p Pack
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode content pack: %w", err)
	}

	v := "v" + p.Version
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("%w: content pack version %q is not a semantic version", exercise.ErrUnsatisfiableConfiguration, p.Version)
	}
	if semver.Compare(v, MinPackVersion) < 0 {
		return nil, fmt.Errorf("%w: content pack version %s is older than minimum %s", exercise.ErrUnsatisfiableConfiguration, v, MinPackVersion)
	}

	return &p, nil
}
