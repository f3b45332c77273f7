// File: iniconf/builder.go
package iniconf

import "fmt"

// ValidatorFunc validates a fully layered Store at the end of Build.
type ValidatorFunc func(Store) error

// Builder assembles a Store from declared defaults and layered INI files.
// Defaults are applied first, then each file is merged on top in the order
// it was added, so later files override earlier ones.
type Builder struct {
	defaults   Store
	files      []builderFile
	validators []ValidatorFunc
}

type builderFile struct {
	path     string
	optional bool
}

// NewBuilder creates an empty configuration builder.
func NewBuilder() *Builder {
	return &Builder{defaults: NewStore()}
}

// WithDefault declares a default value for group/variable.
func (b *Builder) WithDefault(group, variable, value string) *Builder {
	b.defaults = b.defaults.Set(group, variable, value)
	return b
}

// WithDefaultVar declares a default value within the DEFAULT group.
func (b *Builder) WithDefaultVar(variable, value string) *Builder {
	b.defaults = b.defaults.SetDefault(variable, value)
	return b
}

// WithStore merges an already built Store into the defaults layer.
func (b *Builder) WithStore(store Store) *Builder {
	b.defaults = b.defaults.Merge(store)
	return b
}

// WithFile adds a required configuration file layer. Build fails if the
// file is missing or malformed.
func (b *Builder) WithFile(path string) *Builder {
	b.files = append(b.files, builderFile{path: path})
	return b
}

// WithOptionalFile adds a file layer that is skipped when the file does
// not exist. A file that exists but fails to parse still fails Build.
func (b *Builder) WithOptionalFile(path string) *Builder {
	b.files = append(b.files, builderFile{path: path, optional: true})
	return b
}

// WithValidator adds a validation function run after all layers are merged.
// Validators run in the order they were added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Build parses and layers everything and returns the final Store. A file
// with parse errors aborts the build with its complete *ParseErrors.
func (b *Builder) Build() (Store, error) {
	store := b.defaults

	for _, f := range b.files {
		layer, err := ReadFile(f.path)
		if err != nil {
			if f.optional && IsNotExist(err) {
				continue
			}
			return Store{}, err
		}
		store = store.Merge(layer)
	}

	for _, validate := range b.validators {
		if err := validate(store); err != nil {
			return Store{}, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return store, nil
}

// MustBuild is like Build but panics on error.
func (b *Builder) MustBuild() Store {
	store, err := b.Build()
	if err != nil {
		panic(fmt.Sprintf("config build failed: %v", err))
	}
	return store
}
