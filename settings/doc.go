// Package settings is the runtime side of the generator: a
// key-addressed store of typed values with change notification,
// external-object binding, and key-backed actions. Generated accessor
// bundles compile against this package.
//
// The store is safe for concurrent use. The generation pass itself is
// single-threaded and one-shot; only the code it emits runs against a
// shared store.
package settings
