// Package diag defines the diagnostic model shared by the lexer and parser.
//
// # Purpose
//
//   - Provide deterministic, serialisable records for findings produced
//     while scanning and parsing.
//   - Offer light-weight utilities (Reporter, Bag) that let producers emit
//     diagnostics without coupling to storage or formatting.
//
// # Scope
//
// Package diag performs no formatting or IO. Rendering lives in
// internal/diagfmt; orchestration lives in the driver layer.
//
// Diagnostic is the central record: a Severity, a stable numeric Code, a
// short message, the primary source span, and optional notes pointing at
// related spans. Keep messages short and concrete; a note must add context
// rather than restate the message.
package diag
