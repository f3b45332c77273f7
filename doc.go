// File: iniconf/doc.go

// Package iniconf parses, layers, and serializes INI-style configuration.
//
// Format rules:
//   - groups are created by naming them within brackets: [Group A]
//   - an equal sign ('=') assigns a variable; the split happens at the
//     first '=', so values may themselves contain '='
//   - leading and trailing whitespace is ignored; whitespace surrounding
//     group names, variables, and values is removed, whitespace within
//     them is allowed
//   - a semicolon (';') at the beginning of a line marks a comment
//   - assignments before any group header land in the implicit group
//     "DEFAULT"
//   - if a variable is set more than once, the last assignment wins
//
// Parsing never stops at the first problem: every malformed line is
// collected, and ReadFile returns either a fully valid Store or the
// complete list of errors, never a partial result.
//
// A Store is a value. Set and Merge return a new Store instead of mutating
// the receiver, so a constructed Store can be shared between goroutines
// without locking. Layered configuration ("defaults, then file overrides")
// is a Merge chain; the Builder wraps the common case:
//
//	store, err := iniconf.NewBuilder().
//	    WithDefaultVar("log_level", "info").
//	    WithOptionalFile("/etc/myapp/myapp.ini").
//	    WithFile("myapp.ini").
//	    Build()
//
// The Scan and Export methods bridge the opaque string values to typed
// structs and to TOML/JSON/YAML for external tooling.
package iniconf
