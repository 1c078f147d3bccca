package utils

import (
	"bytes"
	"encoding/json"
)

// OrderedMap is a string keyed map that marshals to a JSON object in
// insertion order.
type OrderedMap[T any] struct {
	keys   []string
	values map[string]T
}

func NewOrderedMap[T any]() *OrderedMap[T] {
	return &OrderedMap[T]{values: make(map[string]T)}
}

// Set stores the value. Overwriting a key keeps its original position.
func (om *OrderedMap[T]) Set(key string, value T) {
	if _, ok := om.values[key]; !ok {
		om.keys = append(om.keys, key)
	}
	om.values[key] = value
}

func (om *OrderedMap[T]) Get(key string) (T, bool) {
	v, ok := om.values[key]
	return v, ok
}

func (om *OrderedMap[T]) Keys() []string {
	return append([]string(nil), om.keys...)
}

func (om *OrderedMap[T]) Len() int {
	return len(om.keys)
}

func (om *OrderedMap[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range om.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		keyBytes, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyBytes)
		buf.WriteByte(':')

		valueBytes, err := json.Marshal(om.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(valueBytes)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
