package models

import (
	"context"
	"fmt"
	"reflect"
	"sync"

	"gorm.io/gorm/schema"
)

var schemaCache sync.Map

// ToMap projects a record onto its table columns, keyed by column name.
// Associations have no column and are left out. Nil pointers map to nil,
// set pointers to the value they point at.
func ToMap(record any) (map[string]any, error) {
	s, err := schema.Parse(record, &schemaCache, schema.NamingStrategy{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema for %T: %w", record, err)
	}

	rv := reflect.Indirect(reflect.ValueOf(record))
	out := make(map[string]any, len(s.DBNames))
	for _, name := range s.DBNames {
		field := s.FieldsByDBName[name]
		value, _ := field.ValueOf(context.Background(), rv)
		out[name] = deref(value)
	}
	return out, nil
}

func deref(value any) any {
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr {
		return value
	}
	if rv.IsNil() {
		return nil
	}
	return rv.Elem().Interface()
}
