// Package extract derives victim counts and a month from the free-text
// columns of an incident record.
//
// Both extractors are layered heuristics over English text. Each layer is a
// named Matcher so the order of evaluation is explicit and every rule can be
// exercised on its own. Nothing here keeps state; the same input always
// produces the same output.
package extract
