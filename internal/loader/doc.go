// Package loader reads parsed block records into a model.Log.
//
// satlens does not tokenize raw solver logs; that is the upstream parser's
// job. This package only rehydrates the parser's structured output, a
// kind-tagged list of block records with optional comment lines, from JSON
// or YAML. The format is chosen by file extension, with JSON as the default
// for stdin and unknown extensions.
package loader
