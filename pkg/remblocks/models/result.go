package models

import (
	"bytes"
	"fmt"
)

// ResultSet maps block keys to tables, keeping insertion order.
type ResultSet struct {
	keys   []string
	tables map[string]*Table
}

// NewResultSet returns an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{tables: make(map[string]*Table)}
}

// Add stores t under t.Key. Keys must be unique.
func (rs *ResultSet) Add(t *Table) error {
	if _, ok := rs.tables[t.Key]; ok {
		return fmt.Errorf("duplicate block key %q", t.Key)
	}
	rs.keys = append(rs.keys, t.Key)
	rs.tables[t.Key] = t
	return nil
}

// Get returns the table stored under key.
func (rs *ResultSet) Get(key string) (*Table, bool) {
	t, ok := rs.tables[key]
	return t, ok
}

// Keys returns the block keys in insertion order.
func (rs *ResultSet) Keys() []string {
	out := make([]string, len(rs.keys))
	copy(out, rs.keys)
	return out
}

// Len returns the number of tables.
func (rs *ResultSet) Len() int {
	return len(rs.keys)
}

// Tables returns the tables in insertion order.
func (rs *ResultSet) Tables() []*Table {
	out := make([]*Table, len(rs.keys))
	for i, k := range rs.keys {
		out[i] = rs.tables[k]
	}
	return out
}

// MarshalJSON encodes the set as an object keyed by block key.
func (rs *ResultSet) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range rs.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, k); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, rs.tables[k]); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
