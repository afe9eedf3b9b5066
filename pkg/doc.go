// Package pkg provides the libraries behind the frontier CLI.
//
// # Overview
//
// Frontier classifies alternatives that are scored on several criteria
// (higher is better on every one) into optimal and dominated ones under two
// rules: weak dominance (Pareto) and strict dominance (Slater). The pkg
// directory is organized as follows:
//
//  1. [dominance] - Domain logic (sets, rules, verdicts, frontier)
//  2. [dataset] - Loading and exporting alternatives as TOML, YAML or JSON
//  3. [report] - Summary lines, comparison table and the JSON report
//  4. [render] - Scatter charts, relation diagrams and PNG/PDF conversion
//  5. [pipeline] - Orchestration (analyze → render)
//
// # Architecture
//
// The typical data flow through frontier:
//
//	Dataset file (or the reference table)
//	         ↓
//	    [dataset] package (decode + validate)
//	         ↓
//	    [dominance] package (classify under both rules)
//	         ↓
//	    [render] package (scatter / node-link charts)
//	         ↓
//	    SVG/PNG/PDF/DOT/JSON output
//
// # Quick Start
//
//	import (
//	    "github.com/matzehuels/frontier/pkg/dataset"
//	    "github.com/matzehuels/frontier/pkg/dominance"
//	    "github.com/matzehuels/frontier/pkg/render/scatter"
//	)
//
//	set, _ := dataset.Load("alternatives.toml")
//	a := dominance.Analyze(set)
//	fmt.Println(a.ParetoOptimal(), a.SlaterOptimal())
//
//	svg, _ := scatter.Chart(scatter.KindComparison, a)
//
// For the whole analyze and render flow, use [pipeline.Runner].
//
// # Supporting packages
//
//   - [errors] - Coded errors with user-facing messages
//   - [buildinfo] - Version information injected at build time
//   - [observability] - Optional hooks around pipeline stages
//
// [dominance]: github.com/matzehuels/frontier/pkg/dominance
// [dataset]: github.com/matzehuels/frontier/pkg/dataset
// [report]: github.com/matzehuels/frontier/pkg/report
// [render]: github.com/matzehuels/frontier/pkg/render
// [pipeline]: github.com/matzehuels/frontier/pkg/pipeline
// [pipeline.Runner]: github.com/matzehuels/frontier/pkg/pipeline#Runner
// [errors]: github.com/matzehuels/frontier/pkg/errors
// [buildinfo]: github.com/matzehuels/frontier/pkg/buildinfo
// [observability]: github.com/matzehuels/frontier/pkg/observability
package pkg
