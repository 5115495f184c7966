// Package testutil contains helper builders used across tests to reduce
// boilerplate when constructing core model objects (turn events,
// transitions, descriptors). These helpers are intentionally minimal and
// platform-agnostic so any platform package can use them without import
// cycles. They are not intended for production usage.
package testutil
