// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     text
// Description: Text transformations, numerology and digests
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

// Package text provides small text tools: reversing, scrambling, title
// casing, word statistics, Pythagorean numerology and string hashing.
package text
