// Package resolve decides, for every schema key, whether accessors are
// generated and with which argument/return types.
//
// Resolution order (first match wins):
//  1. Key-name skip list
//  2. Signature skip list
//  3. Key-name override table
//  4. Signature override table
//  5. Built-in type table, then the string generator for "s"
//  6. Enum generator for enum signatures (missing definitions are fatal)
//  7. Unknown
//
// Name-scoped rules are author intent for one key and win over
// signature-scoped rules, which win over engine defaults. Skips come
// before overrides: "do not generate" is terminal and must not be
// shadowed by a lower-priority type mapping.
package resolve
