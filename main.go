// Command bspgeom evaluates a geometry script and prints a summary of the
// regions and segments it defines.
//
// Usage:
//
//	bspgeom [-config file] [-mesh] script.bsp
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/chazu/bspgeom/pkg/config"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("bspgeom: ")

	configPath := flag.String("config", "", "gcfg configuration file")
	mesh := flag.Bool("mesh", false, "tessellate bounded regions and report mesh sizes")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bspgeom [-config file] [-mesh] script.bsp\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	os.Exit(run(flag.Arg(0), *configPath, *mesh, os.Stdout))
}

// run evaluates the script at path and writes the report to w. It returns
// the process exit code.
func run(path, configPath string, mesh bool, w io.Writer) int {
	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.Load(configPath); err != nil {
			log.Print(err)
			return 1
		}
	}

	source, err := os.ReadFile(path)
	if err != nil {
		log.Print(err)
		return 1
	}

	result := NewAppWithConfig(cfg).Evaluate(string(source), mesh)
	report(w, result)

	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			if e.Line > 0 {
				log.Printf("%s:%d: %s", path, e.Line, e.Message)
			} else {
				log.Printf("%s: %s", path, e.Message)
			}
		}
		return 1
	}
	return 0
}

func report(w io.Writer, r EvalResult) {
	for _, o := range r.Objects {
		fmt.Fprintln(w, o.Summary)
	}
	for _, c := range r.Crossings {
		fmt.Fprintf(w, "crossing %q %q at (%g, %g)\n", c.A, c.B, c.X, c.Y)
	}
	for _, m := range r.Meshes {
		fmt.Fprintf(w, "mesh %q: %d triangles\n", m.Name, len(m.Indices)/3)
	}
	for _, warn := range r.Warnings {
		fmt.Fprintf(w, "warning: %s\n", warn.Message)
	}
}
