package broom

import (
	"fmt"
	"sort"
)

const (
	defaultKeyColumn   = "name"
	defaultValueColumn = "value"
)

type dictConfig struct {
	key     string
	value   string
	exclude map[string]bool
}

// DictOption configures the dict round-trip conversions.
type DictOption func(*dictConfig)

// WithKeyColumn sets the column holding the map keys (default "name").
func WithKeyColumn(name string) DictOption {
	return func(c *dictConfig) { c.key = name }
}

// WithValueColumn sets the column holding the map values (default "value").
func WithValueColumn(name string) DictOption {
	return func(c *dictConfig) { c.value = name }
}

// WithExclude drops the given keys from the conversion, in either direction.
func WithExclude(keys ...string) DictOption {
	return func(c *dictConfig) {
		for _, k := range keys {
			c.exclude[k] = true
		}
	}
}

func dictSettings(opts []DictOption) dictConfig {
	cfg := dictConfig{
		key:     defaultKeyColumn,
		value:   defaultValueColumn,
		exclude: make(map[string]bool),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// DictToTidy converts a flat mapping into a two-column tidy table, one row
// per entry. Keys are emitted in sorted order, which is also the ordering
// contract [TidyToDict] sees on the way back.
func DictToTidy(m map[string]any, opts ...DictOption) *Table {
	cfg := dictSettings(opts)
	keys := make([]string, 0, len(m))
	for k := range m {
		if !cfg.exclude[k] {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	t := NewTable(cfg.key, cfg.value)
	for _, k := range keys {
		t.Append(Row{cfg.key: k, cfg.value: m[k]})
	}
	return t
}

// TidyToDict converts a two-column tidy table back into a flat mapping. The
// table must have exactly the key and value columns the options name, and
// the keys must be unique strings; anything else is ErrSchemaMismatch.
//
// For any flat map m, TidyToDict(DictToTidy(m)) == m.
func TidyToDict(t *Table, opts ...DictOption) (map[string]any, error) {
	cfg := dictSettings(opts)
	if len(t.cols) != 2 || !t.set[cfg.key] || !t.set[cfg.value] {
		return nil, fmt.Errorf("%w: want exactly columns %q and %q, have %v",
			ErrSchemaMismatch, cfg.key, cfg.value, t.cols)
	}
	out := make(map[string]any, t.Len())
	for i := range t.rows {
		kv := t.cell(i, cfg.key)
		k, ok := kv.(string)
		if !ok {
			return nil, fmt.Errorf("%w: non-string key %v in row %d", ErrSchemaMismatch, kv, i)
		}
		if cfg.exclude[k] {
			continue
		}
		if _, dup := out[k]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrSchemaMismatch, k)
		}
		out[k] = t.cell(i, cfg.value)
	}
	return out, nil
}
