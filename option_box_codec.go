package galbi

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

var jsonNull = []byte("null")

// MarshalJSON encodes None as null and Some as its value.
func (o OptionBox[T]) MarshalJSON() ([]byte, error) {
	if o.ptr == nil {
		return jsonNull, nil
	}
	return json.Marshal(*o.ptr)
}

// UnmarshalJSON decodes null as None and anything else as Some.
// A field missing from the input is left untouched (None for a zero value).
func (o *OptionBox[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		o.ptr = nil
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	o.ptr = &v
	return nil
}

// MarshalYAML encodes None as null and Some as its value.
func (o OptionBox[T]) MarshalYAML() (interface{}, error) {
	if o.ptr == nil {
		return nil, nil
	}
	return *o.ptr, nil
}

// UnmarshalYAML decodes a value as Some.
//
// yaml.v3 does not call unmarshalers for null (or ~) nodes, so decoding a
// null through yaml.Unmarshal leaves an existing OptionBox unchanged, as it
// does for any other non-pointer field. Decode into a fresh value to get
// None for null. Called directly with a null node, it sets None.
func (o *OptionBox[T]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null" {
		o.ptr = nil
		return nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return err
	}
	o.ptr = &v
	return nil
}
