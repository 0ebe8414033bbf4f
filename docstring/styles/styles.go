// Package styles provides a convenience function for registering the
// built-in docstring styles with a [docstring.Registry].
package styles

import (
	"go.jacobcolvin.com/pydocstring/docstring"
	"go.jacobcolvin.com/pydocstring/docstring/google"
	"go.jacobcolvin.com/pydocstring/docstring/numpy"
)

// DefaultRegistry returns a [docstring.Registry] populated with the
// built-in styles: google and numpy.
func DefaultRegistry() docstring.Registry {
	r := make(docstring.Registry)
	r.Add(google.New(), numpy.New())

	return r
}
