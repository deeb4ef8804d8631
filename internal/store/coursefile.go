package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tutorkit/tutorkit/internal/conceptgraph"
	"github.com/tutorkit/tutorkit/internal/mastery"
)

// CourseFile is the author-facing JSON description of a course. Importing
// one creates the course and declares its concepts; progress records are
// created lazily on first practice.
type CourseFile struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Units    []CourseFileUnit  `json:"units"`
	Defaults CourseFileDefault `json:"defaults"`
}

// CourseFileUnit groups concepts under a unit id.
type CourseFileUnit struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Concepts []CourseFileEntry `json:"concepts"`
}

// CourseFileEntry declares one concept.
type CourseFileEntry struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Prerequisites []string `json:"prerequisites,omitempty"`
	Difficulty    *float64 `json:"difficulty,omitempty"`
	BloomTarget   string   `json:"bloom_target,omitempty"`
}

// CourseFileDefault supplies fallback values for omitted entry fields.
type CourseFileDefault struct {
	Difficulty  *float64 `json:"difficulty,omitempty"`
	BloomTarget string   `json:"bloom_target,omitempty"`
}

// courseFileSchema validates the structure before any decoding happens,
// so authoring mistakes surface as one clear error instead of a partial
// import.
var courseFileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id": map[string]any{
			"type":    "string",
			"pattern": "^[a-z0-9][a-z0-9-]*$",
		},
		"name": map[string]any{"type": "string", "minLength": 1},
		"units": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"name": map[string]any{"type": "string"},
					"concepts": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":   map[string]any{"type": "string", "minLength": 1},
								"name": map[string]any{"type": "string", "minLength": 1},
								"prerequisites": map[string]any{
									"type":  "array",
									"items": map[string]any{"type": "string"},
								},
								"difficulty": map[string]any{
									"type":    "number",
									"minimum": 0,
									"maximum": 1,
								},
								"bloom_target": map[string]any{
									"type": "string",
									"enum": []any{"remember", "understand", "apply", "analyze", "evaluate", "create"},
								},
							},
							"required":             []any{"id", "name"},
							"additionalProperties": false,
						},
					},
				},
				"required":             []any{"id", "concepts"},
				"additionalProperties": false,
			},
		},
		"defaults": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"difficulty": map[string]any{
					"type":    "number",
					"minimum": 0,
					"maximum": 1,
				},
				"bloom_target": map[string]any{
					"type": "string",
					"enum": []any{"remember", "understand", "apply", "analyze", "evaluate", "create"},
				},
			},
			"additionalProperties": false,
		},
	},
	"required":             []any{"id", "name", "units"},
	"additionalProperties": false,
}

var (
	compiledCourseFileSchema *jsonschema.Schema
	compileCourseFileOnce    sync.Once
	compileCourseFileErr     error
)

func courseFileValidator() (*jsonschema.Schema, error) {
	compileCourseFileOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value, so the
		// definition is round-tripped through encoding/json first.
		defBytes, err := json.Marshal(courseFileSchema)
		if err != nil {
			compileCourseFileErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileCourseFileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://course-file.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileCourseFileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledCourseFileSchema, compileCourseFileErr = c.Compile(url)
	})
	return compiledCourseFileSchema, compileCourseFileErr
}

// ParseCourseFile validates raw JSON against the course file schema and
// decodes it.
func ParseCourseFile(raw []byte) (*CourseFile, error) {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, fmt.Errorf("%w: invalid JSON: %v", ErrInvalidPatch, err)
	}
	schema, err := courseFileValidator()
	if err != nil {
		return nil, fmt.Errorf("compile course file schema: %w", err)
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}

	var cf CourseFile
	if err := json.Unmarshal(raw, &cf); err != nil {
		return nil, fmt.Errorf("decode course file: %w", err)
	}
	return &cf, nil
}

// LoadCourseFile reads and parses a course file from disk.
func LoadCourseFile(path string) (*CourseFile, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read course file: %w", err)
	}
	return ParseCourseFile(raw)
}

// Concepts flattens the file into declared concepts, applying defaults.
func (cf *CourseFile) Concepts() ([]Concept, error) {
	defaultDifficulty := 0.5
	if cf.Defaults.Difficulty != nil {
		defaultDifficulty = *cf.Defaults.Difficulty
	}
	defaultTarget := mastery.Apply
	if cf.Defaults.BloomTarget != "" {
		t, err := mastery.ParseBloom(cf.Defaults.BloomTarget)
		if err != nil {
			return nil, fmt.Errorf("%w: defaults: %v", ErrInvalidPatch, err)
		}
		defaultTarget = t
	}

	var concepts []Concept
	for _, unit := range cf.Units {
		for _, entry := range unit.Concepts {
			difficulty := defaultDifficulty
			if entry.Difficulty != nil {
				difficulty = *entry.Difficulty
			}
			target := defaultTarget
			if entry.BloomTarget != "" {
				t, err := mastery.ParseBloom(entry.BloomTarget)
				if err != nil {
					return nil, fmt.Errorf("%w: concept %q: %v", ErrInvalidPatch, entry.ID, err)
				}
				target = t
			}
			concepts = append(concepts, Concept{
				ID:            entry.ID,
				Name:          entry.Name,
				Unit:          unit.ID,
				Bloom:         mastery.Remember,
				Status:        mastery.StatusNew,
				Prerequisites: append([]string(nil), entry.Prerequisites...),
				Difficulty:    difficulty,
				BloomTarget:   target,
			})
		}
	}
	return concepts, nil
}

// Graph builds the prerequisite DAG from the file's concepts, surfacing
// structural errors (cycles, dangling prerequisites) before anything is
// written.
func (cf *CourseFile) Graph() (*conceptgraph.Graph, error) {
	concepts, err := cf.Concepts()
	if err != nil {
		return nil, err
	}
	nodes := make([]conceptgraph.Concept, 0, len(concepts))
	for _, c := range concepts {
		nodes = append(nodes, conceptgraph.Concept{
			ID:            c.ID,
			Name:          c.Name,
			Unit:          c.Unit,
			Prerequisites: c.Prerequisites,
			Difficulty:    c.Difficulty,
			BloomTarget:   c.BloomTarget,
		})
	}
	g, err := conceptgraph.New(nodes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPatch, err)
	}
	return g, nil
}

// ImportCourse creates the course described by the file and declares its
// concepts. Fails with ErrCourseExists if the course id is taken and with
// ErrInvalidPatch when the file or its concept graph is malformed.
func (s *Store) ImportCourse(ctx context.Context, cf *CourseFile) error {
	if _, err := cf.Graph(); err != nil {
		return err
	}
	concepts, err := cf.Concepts()
	if err != nil {
		return err
	}

	units := make([]string, 0, len(cf.Units))
	for _, u := range cf.Units {
		units = append(units, u.ID)
	}

	courses := s.Courses()
	if err := courses.Create(ctx, Course{ID: cf.ID, Name: cf.Name, Units: units}); err != nil {
		return err
	}
	if err := courses.DeclareConcepts(ctx, cf.ID, concepts); err != nil {
		return err
	}
	return nil
}
