// Package broom converts fit results into tidy (long-form) tables.
//
// A tidy table holds one observation per row and one variable per column.
// Given a fit result, or an arbitrarily nested structure of slices and maps
// of fit results, the package extracts one of three views and returns a
// single [Table]:
//
//   - [Summary] → one row per fit (method, goodness-of-fit, convergence, ...)
//   - [Parameters] → one row per fitted parameter (value, stderr, bounds, ...)
//   - [Pointwise] → one row per data sample (x, data, best fit, residual, ...)
//
// [Extract] is the generic entry point taking a [View] constant; the three
// named functions are thin wrappers around it.
//
// # Nested inputs and path columns
//
// Inputs may nest slices, arrays, maps, and iter.Seq[any] sequences to any
// depth. The walker recurses to each leaf result, extracts the requested
// view, and concatenates sibling tables. Every nesting level contributes one
// provenance column, named by depth ("item0" for the outermost level, then
// "item1", ...): slice levels record the 0-based element position, map levels
// record the key. Map keys are visited in sorted order so output is
// deterministic. A path column colliding with a data column is reported as
// [ErrColumnCollision], never silently overwritten.
//
// # Adapters
//
// Result kinds are recognized by [Adapter] values held in a registry. An
// adapter implements extraction capabilities through optional interfaces:
//
//   - [Summarizer] → unlocks the summary view
//   - [Parameterizer] → unlocks the parameter view
//   - [Pointwiser] → unlocks the pointwise view
//
// Requesting a view the matched adapter does not implement yields zero rows
// for that object, not an error, so collections may mix result kinds.
// Adapters for [MinimizerResult] and [ModelResult] are registered by default;
// use [Register] (or a dedicated [Registry] with [WithRegistry]) to add
// adapters for third-party fitters.
//
// # Missing values
//
// [NA] is the canonical absent marker. It fills cells for columns a row does
// not carry after a merge, and cells whose source field a result does not
// report. Text formats render it as "NA", JSON and YAML as null. Test cells
// with [IsNA]; never compare against zero values.
//
// # Dict round trip
//
// [DictToTidy] converts a flat map into a two-column table (keys sorted) and
// [TidyToDict] inverts it. The inverse requires exactly the two expected
// columns with unique names and reports [ErrSchemaMismatch] otherwise.
//
// # Rendering
//
// [Write] and [Marshal] render a table in a [Format]: JSON, JSONL, YAML, CSV,
// TSV, Grid (text table, see [WriteGrid] for border styles), Markdown, HTML,
// ENV, List, or a parameterized [GoTemplate]. Numeric columns are
// right-aligned automatically in Grid and Markdown output. Use [ParseFormat]
// to convert a CLI flag string into a [Format].
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrUnsupportedKind] → a leaf object matched no registered adapter
//   - [ErrMalformedInput] → an element that is neither a result nor a
//     sequence/mapping, or a cyclic structure
//   - [ErrMalformedResult] → a result whose series lengths disagree
//   - [ErrSchemaMismatch] → dict round trip or rendering on a table with the
//     wrong column shape
//   - [ErrColumnCollision] → a path column name already used by the data
//   - [ErrDuplicateAdapter] → two adapters registered under one name
//   - [ErrUnknownColumn] → column lookup by a name the table lacks
//   - [ErrUnsupportedView], [ErrUnsupportedFormat], [ErrInvalidTemplate]
//
// Walker errors name the path at which the offending element was found, e.g.
// input[2]["fit-a"].
package broom
