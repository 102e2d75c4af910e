// Package mathx provides exact decimal arithmetic and strict number parsing.
//
// Package: mathx
// Title: Numeric Utilities for mRW
// Description: Decimal is an exact rational-backed number used where money
//              or tax brackets must not drift. ParseNumber and friends turn
//              user text into numbers and reject anything that is not a
//              finite number, so NaN and Inf never reach a calculation.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with Decimal and business helpers
// - 2026-10-15 v0.2.0: Exact rounding modes, strict parsing, finance helpers
//                       moved to pkg/calc/finance
// - 2026-10-15 v0.3.0: Decimal comma, validated thousands groups, int64
//                       range check
//
// Usage:
//
//	income, err := mathx.ParseNumber("1.250.000,00")
//	d := mathx.NewDecimalFromFloat(income).
//		Multiply(mathx.MustNewDecimal("0.42")).
//		Round(2, mathx.RoundingModeHalfUp)
package mathx
