// File: iniconf/classify.go
package iniconf

import "strings"

// lineKind is the classification of one input line.
type lineKind int

const (
	lineBlank lineKind = iota
	lineComment
	lineGroup
	lineAssign
	lineBadGroup  // '[' with no closing ']'
	lineBadAssign // '=' with an empty variable name
	lineInvalid
)

// lineClass carries the classification plus the decomposed payload for
// group headers and assignments.
type lineClass struct {
	kind  lineKind
	group string
	key   string
	value string
}

// classify decides what a single line is. The input must already be trimmed
// of surrounding whitespace; the rules are checked in order, so a comment
// starting with ';' wins over anything else and a '[' line is always a
// header attempt, never an assignment.
func classify(line string) lineClass {
	switch {
	case line == "":
		return lineClass{kind: lineBlank}
	case strings.HasPrefix(line, ";"):
		return lineClass{kind: lineComment}
	case strings.HasPrefix(line, "["):
		if !strings.HasSuffix(line, "]") {
			return lineClass{kind: lineBadGroup}
		}
		name := strings.TrimSpace(line[1 : len(line)-1])
		return lineClass{kind: lineGroup, group: name}
	}

	if key, value, found := strings.Cut(line, "="); found {
		// Split at the first '=' only, so the value may contain '='.
		// The line is pre-trimmed, so only the inner edges need trimming.
		key = strings.TrimSpace(key)
		if key == "" {
			// Empty values are allowed, empty variables are not.
			return lineClass{kind: lineBadAssign}
		}
		return lineClass{kind: lineAssign, key: key, value: strings.TrimSpace(value)}
	}

	return lineClass{kind: lineInvalid}
}
