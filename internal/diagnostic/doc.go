// Package diagnostic provides structured warnings, errors, and infos
// collected during a generation pass.
//
// Key capabilities:
//   - Unknown-signature warnings naming the key and its signature
//   - Pass-level error aggregation for strict mode
//   - Stable string rendering for CLI output
package diagnostic
