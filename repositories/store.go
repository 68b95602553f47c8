package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"log/slog"

	"household-intranet/errors"

	"github.com/dgraph-io/badger/v4"
)

// store holds the badger plumbing shared by the repositories.
// Values are JSON documents; keys are "<entity>:<id>" plus "idx:" secondary indexes.
type store struct {
	db  *badger.DB
	log *slog.Logger
}

func get(txn *badger.Txn, key string, out any) error {
	item, err := txn.Get([]byte(key))
	if err != nil {
		return err
	}
	return item.Value(func(val []byte) error {
		return json.Unmarshal(val, out)
	})
}

func set(txn *badger.Txn, key string, value any) error {
	bytes, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	return txn.Set([]byte(key), bytes)
}

func exists(txn *badger.Txn, key string) (bool, error) {
	_, err := txn.Get([]byte(key))
	switch {
	case err == nil:
		return true, nil
	case stderrors.Is(err, badger.ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}

// scan decodes every value stored under prefix, in key order.
func scan[T any](txn *badger.Txn, prefix string) ([]T, error) {
	var values []T
	it := txn.NewIterator(badger.DefaultIteratorOptions)
	defer it.Close()

	p := []byte(prefix)
	for it.Seek(p); it.ValidForPrefix(p); it.Next() {
		var v T
		err := it.Item().Value(func(val []byte) error {
			return json.Unmarshal(val, &v)
		})
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// translate turns badger failures into classified repository errors.
func translate(err error, entity string, id any, action string) error {
	if err == nil {
		return nil
	}
	var ie *errors.IntranetError
	if stderrors.As(err, &ie) {
		return err
	}
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return errors.NewRepositoryError(errors.CodeCantFindObjectByID, err, entity, id)
	}
	return errors.NewRepositoryError(errors.CodeRepositoryError, err, action, err.Error())
}
