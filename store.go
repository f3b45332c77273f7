// File: iniconf/store.go
package iniconf

import (
	"fmt"
	"iter"
	"maps"

	"iniconf/seq"
)

// DefaultGroup is the implicit group for assignments that appear before any
// [group] header.
const DefaultGroup = "DEFAULT"

// Key addresses one value in a Store. Both halves are case-sensitive,
// arbitrary-length, and may contain inner whitespace.
type Key struct {
	Group    string
	Variable string
}

// Store maps group/variable pairs to string values.
//
// A Store is logically immutable: Set and Merge return a new Store and
// leave the receiver untouched, so a Store handed to other goroutines is
// safe for concurrent reads without locking. Values are opaque strings;
// interpretation is the caller's business (see Scan for typed decoding).
//
// Iteration order of Groups and VariablesInGroup follows the backing map
// and is not stable across runs or mutations.
type Store struct {
	values map[Key]string
}

// NewStore returns an empty Store.
func NewStore() Store { return Store{} }

// Get returns the value for group/variable. Absence is a normal false
// result, not an error.
func (s Store) Get(group, variable string) (string, bool) {
	v, ok := s.values[Key{Group: group, Variable: variable}]
	return v, ok
}

// GetDefault returns the value for variable within the DEFAULT group.
func (s Store) GetDefault(variable string) (string, bool) {
	return s.Get(DefaultGroup, variable)
}

// MustGet returns the value for group/variable and panics if it is absent.
// It is meant for keys whose presence was already established, e.g. after
// merging required defaults.
func (s Store) MustGet(group, variable string) string {
	v, ok := s.Get(group, variable)
	if !ok {
		panic(fmt.Sprintf("iniconf: no value for %s/%s", group, variable))
	}
	return v
}

// MustGetDefault is MustGet within the DEFAULT group.
func (s Store) MustGetDefault(variable string) string {
	return s.MustGet(DefaultGroup, variable)
}

// Set returns a copy of the Store with group/variable set to value,
// replacing any existing value for that exact key. Chained Set calls build
// a defaults layer before parsing:
//
//	defaults := iniconf.NewStore().
//	    SetDefault("log_level", "info").
//	    Set("server", "port", "8080")
func (s Store) Set(group, variable, value string) Store {
	values := make(map[Key]string, len(s.values)+1)
	maps.Copy(values, s.values)
	values[Key{Group: group, Variable: variable}] = value
	return Store{values: values}
}

// SetDefault is Set within the DEFAULT group.
func (s Store) SetDefault(variable, value string) Store {
	return s.Set(DefaultGroup, variable, value)
}

// Merge combines two Stores. Every key present in other overrides the same
// key in s; keys present only in s are kept. Neither operand is modified.
// Merging a parsed file over a defaults Store implements "declared
// defaults, overridden by configuration" layering.
func (s Store) Merge(other Store) Store {
	values := make(map[Key]string, len(s.values)+len(other.values))
	maps.Copy(values, s.values)
	maps.Copy(values, other.values)
	return Store{values: values}
}

// Len reports the number of values in the Store.
func (s Store) Len() int { return len(s.values) }

// Groups yields each distinct group name exactly once, in unspecified
// order.
func (s Store) Groups() iter.Seq[string] {
	return seq.Uniq(func(yield func(string) bool) {
		for k := range s.values {
			if !yield(k.Group) {
				return
			}
		}
	})
}

// VariablesInGroup yields the variables present under group. The scan costs
// the total key count, not the group size; fine for config-sized data.
func (s Store) VariablesInGroup(group string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for k := range s.values {
			if k.Group == group && !yield(k.Variable) {
				return
			}
		}
	}
}

// GroupKeyValues yields each variable/value pair under group.
func (s Store) GroupKeyValues(group string) iter.Seq2[string, string] {
	return func(yield func(string, string) bool) {
		for k, v := range s.values {
			if k.Group == group && !yield(k.Variable, v) {
				return
			}
		}
	}
}
