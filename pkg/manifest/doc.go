// Package manifest loads declarative input manifests for filectx.
//
// A manifest lists the inputs of a resolution pass in TOML or HCL. A loaded
// [*Manifest] is a resolve.Container: adding it to a resolve.Context
// contributes its inputs, with relative paths resolved against the
// manifest's base directory.
//
// # TOML
//
//	base_dir = "."
//	inputs = ["README.md", ["docs", "LICENSE"], "src/**/*.go"]
//
//	[[group]]
//	name = "vendor"
//	base_dir = "third_party"
//	inputs = ["lib.txt"]
//
//	[[task]]
//	name = "compile"
//	outputs = ["build/app"]
//	depends_on = ["generate"]
//
//	[[tree]]
//	name = "sources"
//	dir = "src"
//	include = ["**/*.go"]
//	exclude = ["**/*_test.go"]
//
// # HCL
//
// The same manifest in HCL uses labelled blocks:
//
//	base_dir = "."
//	inputs   = ["README.md", ["docs", "LICENSE"], "src/**/*.go"]
//
//	group "vendor" {
//	  base_dir = "third_party"
//	  inputs   = ["lib.txt"]
//	}
//
//	task "compile" {
//	  outputs    = ["build/app"]
//	  depends_on = ["generate"]
//	}
//
//	tree "sources" {
//	  dir     = "src"
//	  include = ["**/*.go"]
//	  exclude = ["**/*_test.go"]
//	}
//
// # Inputs
//
// Inputs nest arbitrarily. Strings with glob meta characters are expanded
// when the manifest is resolved, not when it is loaded; matches are sorted.
// Other strings are [files.Path] values. The base_dir of the manifest is
// relative to the manifest file, and a group's base_dir is relative to the
// manifest's base_dir.
//
// A manifest contributes its top-level inputs first, then each group in a
// context pushed at the group's base directory, then its tasks and finally
// its trees.
package manifest
