// Package fserr defines the error taxonomy shared by all fluidpath
// operations.
//
// Every failure surfaced by a mutation or write operation is an *Error
// carrying the operation name, the offending path, and a Kind drawn
// from a closed set. Kinds are derived from the underlying os/syscall
// error, so callers can dispatch without inspecting platform errnos:
//
//	if fserr.IsKind(err, fserr.NotEmpty) {
//	    // directory was not empty
//	}
//
// Classification (pathtype.Classify) never returns errors from this
// package; it maps all failure modes into its own closed type set.
package fserr
