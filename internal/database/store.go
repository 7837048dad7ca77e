package database

import (
	"reflect"

	jsoniter "github.com/json-iterator/go"
	"go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// Persisted state lives under four independent keys in one bucket, each
// holding a JSON-serialized array. There is no schema version field and no
// atomicity across keys: callers updating two collections perform two
// independent writes.
const (
	KeyProducts     = "pos_products"
	KeyTransactions = "pos_transactions"
	KeyCustomers    = "pos_customers"
	KeySettings     = "pos_settings"
)

var bucketName = []byte("pos")

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Store is a local key-value store mapping string keys to JSON values,
// backed by a single bbolt file. Read and write failures are logged and
// swallowed; no operation on Store returns an error.
type Store struct {
	db *bbolt.DB
}

func Connect(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, err
	}
	if err := db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketName)
		return err
	}); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Read deserializes the value stored under key into out, which must be a
// non-nil pointer. On a missing key or a decode failure, out keeps the
// default the caller initialized it with.
func (s *Store) Read(key string, out interface{}) {
	var raw []byte
	err := s.db.View(func(tx *bbolt.Tx) error {
		if v := tx.Bucket(bucketName).Get([]byte(key)); v != nil {
			raw = append(raw, v...)
		}
		return nil
	})
	if err != nil {
		zap.S().Errorw("store read failed", "key", key, "error", err)
		return
	}
	if raw == nil {
		return
	}

	// Decode into a scratch value so a corrupt record cannot leave out
	// half-populated.
	tmp := reflect.New(reflect.TypeOf(out).Elem())
	if err := json.Unmarshal(raw, tmp.Interface()); err != nil {
		zap.S().Errorw("store decode failed", "key", key, "error", err)
		return
	}
	reflect.ValueOf(out).Elem().Set(tmp.Elem())
}

// Write serializes value and stores it under key. Serialization happens in
// memory before the store call, so a failure never leaves a partial write;
// on failure the prior state is kept and the error is logged.
func (s *Store) Write(key string, value interface{}) {
	data, err := json.Marshal(value)
	if err != nil {
		zap.S().Errorw("store encode failed", "key", key, "error", err)
		return
	}
	if err := s.db.Update(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketName).Put([]byte(key), data)
	}); err != nil {
		zap.S().Errorw("store write failed", "key", key, "error", err)
	}
}
