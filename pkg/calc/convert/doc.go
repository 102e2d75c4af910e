// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     convert
// Description: Unit conversion across fixed factor tables
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package convert converts values between units of one category.
//
// Linear categories store one factor per unit relative to a base unit
// (meter, gram, liter, joule, byte, hertz, meter/second, square meter,
// second, pascal); a conversion is value * factor[from] / factor[to].
// Temperature is affine and pivots through Celsius.
//
// Units resolve by exact symbol first, then by case-insensitive symbol,
// then by name or alias. Symbols such as "Mb" and "MB" only differ in case,
// so exact matches always win.
package convert
