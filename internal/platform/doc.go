package platform

// Package platform contains OS integration glue: output folder validation,
// default downloads directory, bundled resource lookup, and file reveal.
