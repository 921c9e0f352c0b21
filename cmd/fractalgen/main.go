// SPDX-License-Identifier: MIT

// Command fractalgen computes fractal instance transforms, curve point lists
// and their statistics, and writes them as JSON for an external renderer.
//
// Usage:
//
//	fractalgen <command> [flags]
//
// Commands:
//
//	transforms   instance transforms of the recursive fractal
//	menger       instance transforms of the Menger sponge
//	positions    one level of self-similar offsets
//	features     feature points and skeleton of a Platonic solid
//	curve        parametric curve points plus radial clone transforms
//	stats        copy count and similarity dimension
//
// Every command accepts -config (YAML), -env (.env file) and -out. Settings
// resolve as defaults, then YAML, then LVFRACTAL_* variables, then flags.
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
