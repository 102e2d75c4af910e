// Package stringx provides Unicode-safe string helpers.
//
// Package: stringx
// Title: String Utilities for mRW
// Description: Rune-aware helpers used by the text tools and by the CLI
//              table output: reversing, shuffling, truncating, padding and
//              word splitting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-15 v0.2.0: Shuffle with injectable source, Words, dropped
//                       interning and random token generators
package stringx
