// Package check exposes whether the module was built with the dsdebug tag.
// Adapter methods guard their precondition checks with the Enabled constant,
// so in default builds the compiler removes the checks entirely.
package check
