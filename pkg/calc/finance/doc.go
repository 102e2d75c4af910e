// Package finance implements loan, investment and bracket-tax formulas.
//
// Monetary results are rounded half-up to cents. Tax brackets are summed
// with exact decimals so a bracket table never drifts by a cent.
package finance
