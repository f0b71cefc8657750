// SPDX-License-Identifier: MIT

// Package converters provides two-way adapters between matrix.Matrix and
// gonum's mat package:
//   - ToGonum copies any matrix.Matrix into a *mat.Dense;
//   - FromGonum copies any mat.Matrix into a *matrix.Dense.
//
// Use converters to hand matops data to gonum's decompositions and solvers,
// or to cross-check matops results against them. Every conversion copies;
// no storage is ever shared between the two representations.
package converters
