package internal

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dgraph-io/badger/v4"
)

// InspectRow is one stored value as shown by the inspection tool.
type InspectRow struct {
	Key    string
	Entity string
	ID     string
	Size   int
	Detail string
}

type RowMapper func(key string, val []byte) InspectRow

// detailFields are tried in order to pick a readable summary of a JSON document.
var detailFields = []string{"Name", "MailAddress", "Value", "CultureName", "Description"}

// DefaultMapper splits "<entity>:<id>" keys and summarizes the JSON value.
// Index keys ("idx:...") point to an id and are shown as such.
func DefaultMapper(key string, val []byte) InspectRow {
	row := InspectRow{Key: key, Entity: "raw", ID: "-", Size: len(val), Detail: "-"}

	parts := strings.Split(key, ":")
	if parts[0] == "idx" {
		row.Entity = "index"
		if len(parts) > 1 {
			row.Entity = "index/" + parts[1]
		}
		row.Detail = "-> " + strings.Trim(string(val), `"`)
		return row
	}
	if len(parts) >= 2 {
		row.Entity = parts[0]
		row.ID = parts[len(parts)-1]
		if n, err := strconv.Atoi(row.ID); err == nil {
			row.ID = strconv.Itoa(n)
		}
	}

	var document map[string]any
	if err := json.Unmarshal(val, &document); err != nil {
		return row
	}
	for _, field := range detailFields {
		if v, ok := document[field]; ok && fmt.Sprint(v) != "" {
			row.Detail = fmt.Sprintf("%s=%v", field, v)
			break
		}
	}
	return row
}

// Scan maps every value stored under prefix, in key order. Index keys are
// skipped unless the prefix asks for them.
func Scan(db *badger.DB, prefix string, mapper RowMapper) ([]InspectRow, error) {
	if mapper == nil {
		mapper = DefaultMapper
	}
	includeIndexes := strings.HasPrefix(prefix, "idx:")
	var rows []InspectRow
	err := db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			item := it.Item()
			key := string(item.Key())
			if !includeIndexes && strings.HasPrefix(key, "idx:") {
				continue
			}
			err := item.Value(func(val []byte) error {
				rows = append(rows, mapper(key, val))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return rows, err
}

func RenderRows(w io.Writer, rows []InspectRow) {
	table := newTable(w, "Key", "Entity", "ID", "Size", "Detail")
	for _, row := range rows {
		id := row.ID
		if len(id) > 8 {
			id = id[:8]
		}
		table.Append([]string{row.Key, row.Entity, id, strconv.Itoa(row.Size), row.Detail})
	}
	table.Render()
}

// OpenReadOnly opens the database next to a running process. A database that
// needs a log truncate is opened once in write mode to repair it first.
func OpenReadOnly(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err == nil {
		return db, nil
	}
	if !strings.Contains(err.Error(), "Log truncate required") {
		return nil, err
	}
	repaired, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil).WithBypassLockGuard(true))
	if err != nil {
		return nil, fmt.Errorf("repair failed: %w", err)
	}
	_ = repaired.Close()
	return badger.Open(opts)
}
