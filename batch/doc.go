// Package batch parses many docstrings at once.
//
// Input files list entries, each naming a documented entity, its kind and
// its docstring:
//
//	entries:
//	  - name: pkg.mod.fetch
//	    kind: function
//	    file: pkg/mod.py
//	    line: 12
//	    docstring: |
//	      Fetch rows.
//
//	      Args:
//	          table (str): Table name.
//
// Files ending in .toml are read as TOML with the same fields under
// [[entries]] tables; anything else is read as YAML.
//
// A [Runner] parses entries concurrently with a bounded number of workers
// and returns results in input order. Use [Write] to render results as
// text, JSON or YAML, and [Schema] for the JSON Schema of the JSON form.
package batch
