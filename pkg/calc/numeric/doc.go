// Package numeric provides integer arithmetic, combinatorics, root solvers
// and descriptive statistics.
//
// Factorials, permutations and combinations use math/big so results stay
// exact far beyond 20!.
package numeric
