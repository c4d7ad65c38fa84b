package repository

import (
	"encoding/json"

	"github.com/fieldops/crew-scheduler/internal/persistence"
)

// readAll loads and decodes every record of a table, preserving order.
func readAll[T any](store *persistence.Store, table persistence.Table) ([]T, error) {
	records, err := store.Read(table)
	if err != nil {
		return nil, err
	}
	return decodeRecords[T](table, records)
}

// mutate runs a typed read-modify-write under the table lock.
func mutate[T any](store *persistence.Store, table persistence.Table, fn func(items []T) ([]T, error)) error {
	return store.Update(table, func(records []json.RawMessage) ([]json.RawMessage, error) {
		items, err := decodeRecords[T](table, records)
		if err != nil {
			return nil, err
		}
		updated, err := fn(items)
		if err != nil {
			return nil, err
		}
		return encodeRecords(table, updated)
	})
}

func decodeRecords[T any](table persistence.Table, records []json.RawMessage) ([]T, error) {
	items := make([]T, 0, len(records))
	for _, record := range records {
		var item T
		if err := json.Unmarshal(record, &item); err != nil {
			return nil, &persistence.StorageError{Op: "decode", Table: table, Err: err}
		}
		items = append(items, item)
	}
	return items, nil
}

func encodeRecords[T any](table persistence.Table, items []T) ([]json.RawMessage, error) {
	records := make([]json.RawMessage, 0, len(items))
	for _, item := range items {
		data, err := json.Marshal(item)
		if err != nil {
			return nil, &persistence.StorageError{Op: "encode", Table: table, Err: err}
		}
		records = append(records, data)
	}
	return records, nil
}
