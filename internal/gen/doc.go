// Package gen synthesizes the accessor bundles and renders the final
// generated Go source file.
//
// Generation approach uses dave/jennifer declarations rendered through
// goimports for deterministic, readable output.
//
// Emitted per resolved key:
//   - Documentation comment (summary, default, optional min/max)
//   - Getter, setter, fallible setter
//   - Change subscription, property binding, action creation
//   - Enum auxiliary declarations (type, constants, nick conversions)
package gen
