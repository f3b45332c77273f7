// File: iniconf/decode.go
package iniconf

import (
	"fmt"
	"reflect"

	"github.com/mitchellh/mapstructure"
)

// Scan decodes the variables of one group into target, which must be a
// non-nil struct pointer. Fields are matched by `ini` struct tags, falling
// back to case-insensitive field names.
//
// The Store itself keeps values as opaque strings; Scan is where callers
// opt into conversion. Decoding is weakly typed ("8080" fills an int
// field) with hooks for time.Duration and comma-separated slices.
func (s Store) Scan(group string, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Ptr || rv.IsNil() {
		return fmt.Errorf("scan target must be a non-nil pointer, got %T", target)
	}

	data := make(map[string]any)
	for variable, value := range s.GroupKeyValues(group) {
		data[variable] = value
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "ini",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("decoder creation failed: %w", err)
	}

	if err := decoder.Decode(data); err != nil {
		return fmt.Errorf("decode failed for group %q: %w", group, err)
	}
	return nil
}

// ScanDefault decodes the DEFAULT group into target.
func (s Store) ScanDefault(target any) error {
	return s.Scan(DefaultGroup, target)
}
