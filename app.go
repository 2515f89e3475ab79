package main

import (
	"log"

	"github.com/chazu/bspgeom/pkg/config"
	"github.com/chazu/bspgeom/pkg/engine"
	"github.com/chazu/bspgeom/pkg/kernel"
	"github.com/chazu/bspgeom/pkg/kernel/sdfx"
	"github.com/chazu/bspgeom/pkg/scene"
	"github.com/chazu/bspgeom/pkg/tessellate"
)

// colorPalette is a default palette used to assign distinct colors to meshes.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App ties the script engine, the scene validator and the mesh kernel
// together.
type App struct {
	cfg    config.Config
	engine *engine.Engine
	kernel kernel.Kernel
}

// MeshData is the JSON-serializable mesh format.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// EvalErrorData is a JSON-serializable error or warning.
type EvalErrorData struct {
	Line    int    `json:"line"`
	Col     int    `json:"col"`
	Message string `json:"message"`
}

// ObjectData summarizes one named scene object.
type ObjectData struct {
	Name    string `json:"name"`
	Kind    string `json:"kind"`
	Summary string `json:"summary"`
}

// CrossingData is a point where two named segments cross.
type CrossingData struct {
	A string  `json:"a"`
	B string  `json:"b"`
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EvalResult is the full result of evaluating a script.
type EvalResult struct {
	Objects   []ObjectData    `json:"objects"`
	Crossings []CrossingData  `json:"crossings"`
	Meshes    []MeshData      `json:"meshes"`
	Errors    []EvalErrorData `json:"errors"`
	Warnings  []EvalErrorData `json:"warnings"`
}

// NewApp creates an App with the default configuration.
func NewApp() *App {
	return NewAppWithConfig(config.Default())
}

// NewAppWithConfig creates an App from a validated configuration.
func NewAppWithConfig(cfg config.Config) *App {
	return &App{
		cfg: cfg,
		engine: engine.NewEngineWithOptions(engine.Options{
			Timeout:   cfg.Timeout(),
			Precision: cfg.Context(),
		}),
		kernel: sdfx.NewWithCells(cfg.Mesh.Cells),
	}
}

// Evaluate runs the script and reports the named objects, the crossings of
// named segments and validation findings. When mesh is true, bounded
// regions are also tessellated.
func (a *App) Evaluate(source string, mesh bool) EvalResult {
	result := EvalResult{
		Objects:   []ObjectData{},
		Crossings: []CrossingData{},
		Meshes:    []MeshData{},
		Errors:    []EvalErrorData{},
		Warnings:  []EvalErrorData{},
	}

	// Step 1: Evaluate the Lisp source into a scene.
	s, evalErrs, err := a.engine.Evaluate(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		log.Printf("Evaluate fatal error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	if len(evalErrs) > 0 {
		for _, e := range evalErrs {
			result.Errors = append(result.Errors, EvalErrorData{
				Line:    e.Line,
				Col:     e.Col,
				Message: e.Message,
			})
		}
		return result
	}

	// Step 2: Validate and summarize.
	findings := scene.Validate(s)
	for _, f := range findings.Errors {
		result.Errors = append(result.Errors, EvalErrorData{Message: f.Error()})
	}
	for _, f := range findings.Warnings {
		result.Warnings = append(result.Warnings, EvalErrorData{Message: f.Error()})
	}
	for _, o := range s.Objects() {
		result.Objects = append(result.Objects, ObjectData{
			Name:    o.Name,
			Kind:    o.Kind.String(),
			Summary: o.Summary(),
		})
	}
	if !findings.OK() {
		return result
	}

	crossings, err := s.Crossings(false)
	if err != nil {
		log.Printf("Crossings error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{Message: err.Error()})
		return result
	}
	for _, c := range crossings {
		result.Crossings = append(result.Crossings, CrossingData{A: c.A, B: c.B, X: c.Point.X, Y: c.Point.Y})
	}

	if !mesh {
		return result
	}

	// Step 3: Tessellate bounded regions into triangle meshes.
	meshes, err := tessellate.Tessellate(s, a.kernel, a.cfg.Mesh.Height)
	if err != nil {
		log.Printf("Tessellate error: %v", err)
		result.Errors = append(result.Errors, EvalErrorData{
			Message: "tessellation failed: " + err.Error(),
		})
		return result
	}
	for i, m := range meshes {
		result.Meshes = append(result.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Name:     m.Name,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}

	return result
}
