// Package profile loads benchmark profiles.
//
// A profile is a YAML (.yaml, .yml) or CUE (.cue) file carrying the same
// options as the run command line. Every field is optional; an absent field
// leaves the command-line default in place. Example:
//
//	type: int
//	avg: 5
//	quiet: true
//	fill:
//	  rand: 1000
//	  rand_lower: -500
//	  rand_upper: 500
//	algorithms:
//	  all: true
//	  except: [bogosort, permutation-sort]
//
// YAML is decoded strictly: unknown keys are errors. CUE profiles are unified
// with the closed #Profile definition in schema.cue, which rejects unknown
// fields and wrong types before decoding.
package profile
