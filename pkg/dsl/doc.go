/*
Package dsl provides a Go DSL for programmatically constructing state graphs.

It allows developers to describe screens and the transitions between them using a
fluent builder instead of a YAML file. This is particularly useful for tests and
for graphs generated at runtime.

Example usage:

	b := dsl.New()

	b.Add("Main").Score(1).
		Go("Settings").Cost(2).
		Go("Modal").Hook(openModal)

	b.Add("Settings").Score(1).Go("Main")

	b.Add("Modal").Overlay().
		Back().Hook(closeModal)

	// The registry can be passed to statenav.New(...)
	registry, err := b.Build()
*/
package dsl
