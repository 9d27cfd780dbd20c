package htmlnode

import "strings"

// Attr is one HTML attribute.
type Attr struct {
	Key   string
	Value string
}

// Attributes is an insertion-ordered attribute list.
// Setting an existing key replaces its value in place.
type Attributes []Attr

// Attrs builds Attributes from alternating key/value strings.
// A trailing key without a value is ignored.
func Attrs(kv ...string) Attributes {
	var a Attributes
	for i := 0; i+1 < len(kv); i += 2 {
		a = a.With(kv[i], kv[i+1])
	}
	return a
}

// With returns a copy of a with key set to value.
func (a Attributes) With(key, value string) Attributes {
	out := a.Clone()
	for i := range out {
		if out[i].Key == key {
			out[i].Value = value
			return out
		}
	}
	return append(out, Attr{Key: key, Value: value})
}

// Get returns the value for key and whether it is present.
func (a Attributes) Get(key string) (string, bool) {
	for _, attr := range a {
		if attr.Key == key {
			return attr.Value, true
		}
	}
	return "", false
}

// Clone returns an independent copy, nil for an empty list.
func (a Attributes) Clone() Attributes {
	if len(a) == 0 {
		return nil
	}
	out := make(Attributes, len(a))
	copy(out, a)
	return out
}

// Render serializes the attributes as ` key="value"` pairs in insertion order.
// Values are not escaped.
func (a Attributes) Render() string {
	if len(a) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, attr := range a {
		sb.WriteString(" ")
		sb.WriteString(attr.Key)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteString(`"`)
	}
	return sb.String()
}
