// Package plan loads a list of candidate generator outputs and replays it
// through a types.TemplateProcessor. It stands in for the generator engine
// when gendry is run from the command line.
//
// A plan file is YAML (also accepting JSON) or TOML:
//
//	outputs:
//	  - path: src/api.go
//	    action: write
//	    template: api.mustache
//	    data: {package: api}
//	  - path: README.md
//	    action: skip
//	    context: unchanged
package plan
