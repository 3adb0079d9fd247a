// Package reporting computes the read-only views over a derived production
// table: average OEE, the defect histogram, the Pareto summary, the
// correlation matrix, cycle/lead time trends, the cost scatter and the
// threshold-based insight lines.
//
// Nulls are NaN. Means skip nulls and propagate infinities; correlations use
// pairwise-complete rows. No view mutates the table it is given.
package reporting
