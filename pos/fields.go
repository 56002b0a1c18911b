package pos

// Field is a single wire field. Value may be a string, an integer type, a
// nested Fields, or a []Fields for repeated elements.
type Field struct {
	Key   string
	Value any
}

// Fields is an insertion-ordered field list. Bank wire formats are
// sensitive to element order, which Go maps cannot preserve, so request
// bodies are built as Fields and only response bodies come back as plain
// maps.
type Fields []Field

// Set appends the key or replaces the value of an existing key in place.
func (f *Fields) Set(key string, value any) {
	for i := range *f {
		if (*f)[i].Key == key {
			(*f)[i].Value = value
			return
		}
	}
	*f = append(*f, Field{Key: key, Value: value})
}

// Get returns the value for key, or nil when absent.
func (f Fields) Get(key string) any {
	for _, fld := range f {
		if fld.Key == key {
			return fld.Value
		}
	}
	return nil
}

// Map flattens the fields into an unordered map, recursing into nested
// Fields values. It is used for logging and hash-parameter lookups where
// order no longer matters.
func (f Fields) Map() map[string]any {
	out := make(map[string]any, len(f))
	for _, fld := range f {
		if nested, ok := fld.Value.(Fields); ok {
			out[fld.Key] = nested.Map()
			continue
		}
		out[fld.Key] = fld.Value
	}
	return out
}
