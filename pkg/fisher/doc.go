// Package fisher computes hypergeometric probabilities of 2x2 contingency
// tables, the basis of Fisher's exact test.
//
// All combinatorics are carried out in log10 space so that tables with cell
// counts in the thousands never overflow an intermediate value:
//
//	| a  b |
//	| c  d |
//
//	P = C(a+b, a) * C(c+d, c) / C(a+b+c+d, a+c)
//
// The package is pure: it performs no I/O and holds no state.
package fisher
