package broom

import (
	"fmt"
	"iter"
	"reflect"
	"sort"
	"strconv"
)

// pathColumn names the provenance column injected at one nesting level.
// Depth 0 is the outermost container.
func pathColumn(depth int) string {
	return "item" + strconv.Itoa(depth)
}

type walker struct {
	reg  *Registry
	skip bool
	// seen tracks maps and slices on the current walk stack, by data
	// pointer, to turn cyclic inputs into errors instead of stack
	// overflows.
	seen map[uintptr]bool
}

func (w *walker) walk(input any, v View, depth int, path string) (*Table, error) {
	if input == nil {
		return nil, fmt.Errorf("%w: nil element at %s", ErrMalformedInput, path)
	}
	if a, err := w.reg.Resolve(input); err == nil {
		return extract(a, input, v)
	}
	if seq, ok := input.(iter.Seq[any]); ok {
		var elems []any
		for e := range seq {
			elems = append(elems, e)
		}
		return w.walkSeq(elems, v, depth, path)
	}
	rv := reflect.ValueOf(input)
	switch rv.Kind() {
	case reflect.Slice:
		if rv.Len() > 0 {
			if err := w.enter(rv.Pointer(), path); err != nil {
				return nil, err
			}
			defer w.leave(rv.Pointer())
		}
		return w.walkSeq(elems(rv), v, depth, path)
	case reflect.Array:
		return w.walkSeq(elems(rv), v, depth, path)
	case reflect.Map:
		if err := w.enter(rv.Pointer(), path); err != nil {
			return nil, err
		}
		defer w.leave(rv.Pointer())
		return w.walkMap(rv, v, depth, path)
	case reflect.Struct, reflect.Pointer:
		if w.skip {
			return NewTable(), nil
		}
		return nil, fmt.Errorf("%w: %T at %s", ErrUnsupportedKind, input, path)
	}
	return nil, fmt.Errorf("%w: %T at %s", ErrMalformedInput, input, path)
}

func elems(rv reflect.Value) []any {
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out
}

// walkSeq converts each element, concatenates the per-element tables, and
// tags every row with its originating element position.
func (w *walker) walkSeq(items []any, v View, depth int, path string) (*Table, error) {
	tables := make([]*Table, len(items))
	for i, e := range items {
		t, err := w.walk(e, v, depth+1, path+"["+strconv.Itoa(i)+"]")
		if err != nil {
			return nil, err
		}
		tables[i] = t
	}
	merged := Concat(tables...)
	values := make([]any, 0, merged.Len())
	for i, t := range tables {
		for range t.Len() {
			values = append(values, i)
		}
	}
	if err := merged.addPath(pathColumn(depth), values); err != nil {
		return nil, err
	}
	return merged, nil
}

// walkMap converts each entry value in deterministic (sorted-key) order and
// tags every row with its originating key, kept as-is rather than coerced to
// string.
func (w *walker) walkMap(rv reflect.Value, v View, depth int, path string) (*Table, error) {
	keys := rv.MapKeys()
	sortKeys(keys)
	tables := make([]*Table, len(keys))
	for i, k := range keys {
		t, err := w.walk(rv.MapIndex(k).Interface(), v, depth+1, path+keyPath(k))
		if err != nil {
			return nil, err
		}
		tables[i] = t
	}
	merged := Concat(tables...)
	values := make([]any, 0, merged.Len())
	for i, t := range tables {
		for range t.Len() {
			values = append(values, keys[i].Interface())
		}
	}
	if err := merged.addPath(pathColumn(depth), values); err != nil {
		return nil, err
	}
	return merged, nil
}

func (w *walker) enter(ptr uintptr, path string) error {
	if w.seen == nil {
		w.seen = make(map[uintptr]bool)
	}
	if w.seen[ptr] {
		return fmt.Errorf("%w: cycle detected at %s", ErrMalformedInput, path)
	}
	w.seen[ptr] = true
	return nil
}

func (w *walker) leave(ptr uintptr) {
	delete(w.seen, ptr)
}

func sortKeys(keys []reflect.Value) {
	sort.Slice(keys, func(i, j int) bool { return keyLess(keys[i], keys[j]) })
}

func keyLess(a, b reflect.Value) bool {
	if a.Kind() == reflect.Interface {
		a = a.Elem()
	}
	if b.Kind() == reflect.Interface {
		b = b.Elem()
	}
	if a.Kind() != b.Kind() {
		return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
	}
	switch a.Kind() {
	case reflect.String:
		return a.String() < b.String()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return a.Int() < b.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return a.Uint() < b.Uint()
	case reflect.Float32, reflect.Float64:
		return a.Float() < b.Float()
	}
	return fmt.Sprint(a.Interface()) < fmt.Sprint(b.Interface())
}

func keyPath(k reflect.Value) string {
	if k.Kind() == reflect.Interface {
		k = k.Elem()
	}
	if k.Kind() == reflect.String {
		return fmt.Sprintf("[%q]", k.String())
	}
	return fmt.Sprintf("[%v]", k.Interface())
}
