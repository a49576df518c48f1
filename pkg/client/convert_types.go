package client

// Pointer helpers for the optional arguments of the typed wrappers.
// Optional scalars are pointers so "absent" and "zero" stay distinct;
// the command builder omits absent fields from the wire encoding.

// String returns a pointer to the given string value.
func String(v string) *string { return &v }

// Int returns a pointer to the given int64 value.
func Int(v int64) *int64 { return &v }

// Float returns a pointer to the given float64 value.
func Float(v float64) *float64 { return &v }
