// Package store persists the moneymind Database record.
//
// A store holds one versioned record. Backends never fail on malformed
// data: the unusable parts are replaced by empty data, a warning is logged and
// the original record is backed up next to it.
package store

import (
	"bytes"
	"context"
	"fmt"

	"github.com/etnz/moneymind"
	"github.com/etnz/moneymind/logger"
)

// Store loads and saves the Database record.
type Store interface {
	Load(ctx context.Context) (*moneymind.Database, error)
	Save(ctx context.Context, db *moneymind.Database) error
}

// Kinds of store accepted by Open.
const (
	KindFile  = "file"
	KindRedis = "redis"
)

// Open returns the store of this kind. path is the file of a file store and
// addr the address of a redis store.
func Open(kind, path, addr string) (Store, error) {
	switch kind {
	case "", KindFile:
		return NewFile(path), nil
	case KindRedis:
		return NewRedis(addr), nil
	default:
		return nil, fmt.Errorf("unknown store %q, want %q or %q", kind, KindFile, KindRedis)
	}
}

// decode parses a stored record. A malformed record is replaced by an empty
// database. A user whose data is inconsistent is kept with a fresh dataset.
// Every repair is logged as a warning, and damaged reports whether the record
// needs a backup before it is overwritten.
func decode(ctx context.Context, source string, data []byte) (db *moneymind.Database, damaged bool) {
	log := logger.FromContext(ctx)
	db, err := moneymind.DecodeDatabase(bytes.NewReader(data))
	if err != nil {
		log.Warn().Err(err).Str("source", source).Msg("stored data is malformed, starting with an empty database")
		return moneymind.NewDatabase(), true
	}
	for _, repair := range db.Repairs {
		log.Warn().Err(repair).Str("source", source).Msg("stored user is malformed, its data is reset")
	}
	return db, len(db.Repairs) > 0
}

func encode(db *moneymind.Database) ([]byte, error) {
	var buf bytes.Buffer
	if err := moneymind.EncodeDatabase(&buf, db); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
