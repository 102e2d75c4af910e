// Package errors provides the standard error constructors for mRW modules.
//
// Package: errors
// Title: Standard Error Constructors for mRW
// Description: Domain constructors and predicates on top of core/error. All
//              calculation modules create their errors here so that module,
//              operation and the offending input are always present as details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation for cross-module error standardization
// - 2026-10-15 v0.2.0: Calculation taxonomy: InvalidArgument, InvalidUnit,
//                       ParseFailure and the matching predicates
//
// # Error Kinds
//
// Three kinds of failure come out of the calculation library:
//   - InvalidArgument: a value violates a domain constraint (negative weight,
//     a == 0 in a quadratic, r > n in a combination)
//   - InvalidUnit: a unit symbol is unknown or belongs to another category
//   - ParseFailure: text that should be a number or date is malformed
//
// Each is checked with the matching predicate, which walks wrapped chains:
//
//	if errors.IsInvalidUnit(err) {
//		// show the unit list
//	}
//
// # Builder
//
// ErrorBuilder is available for errors that do not fit a constructor:
//
//	err := errors.NewErrorBuilder(errors.ModuleHistory).
//		Operation("append").
//		Cause(dbErr).
//		Code(mrwerror.CodeDatabaseError).
//		Build()
package errors
