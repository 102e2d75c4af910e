// Package error provides structured error handling for the mRW platform.
//
// Package: error
// Title: mRW Error Handling Framework
// Description: Implements a structured error type with codes, severity levels,
//              details and stack traces. Every calculation, conversion and
//              parsing failure in mRW is expressed as an *Error so that the CLI,
//              the gRPC server and the HTTP gateway can map it consistently.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-15 v0.2.0: Calculation error taxonomy (invalid argument, invalid unit,
//                       parse error), trimmed identity fields
//
// Usage:
//
//	err := error.New("r must not exceed n").
//		WithCode(error.CodeInvalidArgument).
//		WithDetail("n", 5).
//		WithDetail("r", 7)
//
//	if error.HasCode(err, error.CodeInvalidArgument) {
//		status := err.Code().HTTPStatus() // 400
//	}
package error
