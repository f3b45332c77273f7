// File: iniconf/writer.go
package iniconf

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"slices"
)

// Write serializes the Store as INI text: a [group] header followed by one
// "variable = value" line per variable, with no blank separators.
//
// Output order is deterministic so written files diff cleanly: the DEFAULT
// group comes first, remaining groups are sorted lexicographically, and
// variables are sorted within each group. This is a property of the writer
// only; Store iteration order stays unspecified.
func Write(s Store, w io.Writer) error {
	bw := bufio.NewWriter(w)

	for _, group := range sortedGroups(s) {
		if _, err := fmt.Fprintf(bw, "[%s]\n", group); err != nil {
			return err
		}
		for _, variable := range slices.Sorted(s.VariablesInGroup(group)) {
			if _, err := fmt.Fprintf(bw, "%s = %s\n", variable, s.MustGet(group, variable)); err != nil {
				return err
			}
		}
	}

	return bw.Flush()
}

// WriteFile writes the Store to path, replacing any existing file.
//
// The write is not atomic: a failure partway through leaves a truncated
// file in place, with no temp-file-and-rename protection.
func WriteFile(s Store, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &IOError{Path: path, Err: err}
	}
	if err := Write(s, f); err != nil {
		f.Close()
		return &IOError{Path: path, Err: err}
	}
	if err := f.Close(); err != nil {
		return &IOError{Path: path, Err: err}
	}
	return nil
}

func sortedGroups(s Store) []string {
	groups := slices.Sorted(s.Groups())
	if i := slices.Index(groups, DefaultGroup); i > 0 {
		groups = slices.Delete(groups, i, i+1)
		groups = slices.Insert(groups, 0, DefaultGroup)
	}
	return groups
}
