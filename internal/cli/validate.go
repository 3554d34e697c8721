package cli

import (
	"github.com/aretw0/statenav/internal/validator"
	"github.com/aretw0/statenav/pkg/loader"
)

// Validate loads a graph file and reports its problems and warnings.
// It returns the validation error, if any, after printing everything found.
func Validate(p *Printer, path string) error {
	graph, err := loader.Load(path)
	if err != nil {
		p.Fail("%s: %v", path, err)
		return err
	}

	report := validator.ValidateGraph(graph.Registry, graph.Start)
	for _, problem := range report.Problems {
		p.Fail("%s", problem)
	}
	for _, warning := range report.Warnings {
		p.Warn("%s", warning)
	}
	if err := report.Err(); err != nil {
		return err
	}

	p.OK("%s: %d states, start %v", graph.Name, len(graph.Registry.States()), graph.Start)
	return nil
}
