// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     health
// Description: Body metrics and calendar-based health calculators
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package health computes BMR, TDEE, BMI and date-based estimates such as
// due dates, ovulation windows and sleep cycles.
//
// All results are estimates from population formulas and are not
// medical advice.
package health
