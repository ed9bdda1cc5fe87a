// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package gateway

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/danielhkuo/stimmie/models"
)

// ErrNoSnapshot means the cache holds no usable collection.
var ErrNoSnapshot = errors.New("no cached snapshot")

var snapshotKey = []byte("snapshot/interviews")

var (
	encMode     cbor.EncMode
	decMode     cbor.DecMode
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error

	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	encMode, err = opts.EncMode()
	if err != nil {
		panic("gateway: cbor encoder initialization failed: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("gateway: cbor decoder initialization failed: " + err.Error())
	}

	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("gateway: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("gateway: zstd decoder initialization failed: " + err.Error())
	}
}

// Snapshot is the last collection read from the primary source.
type Snapshot struct {
	SavedAt time.Time               `cbor:"saved_at"`
	Records []models.ResponseRecord `cbor:"records"`
}

// SnapshotCache persists the most recent collection on local disk.
type SnapshotCache struct {
	db *badger.DB
}

// OpenCache opens the cache in dir. An empty dir keeps it in memory.
func OpenCache(dir string) (*SnapshotCache, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	if dir == "" {
		opts = opts.WithInMemory(true)
	}
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot cache: %w", err)
	}
	return &SnapshotCache{db: db}, nil
}

// Save replaces the cached snapshot with records.
func (c *SnapshotCache) Save(records []models.ResponseRecord) error {
	raw, err := encMode.Marshal(Snapshot{SavedAt: time.Now().UTC(), Records: records})
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	value := zstdEncoder.EncodeAll(raw, nil)

	if err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(snapshotKey, value)
	}); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}

	slog.Debug("Snapshot cached", "records", len(records), "bytes", len(value))
	return nil
}

// Load returns the cached snapshot. An absent or empty snapshot returns
// ErrNoSnapshot.
func (c *SnapshotCache) Load() (Snapshot, error) {
	var snap Snapshot
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(snapshotKey)
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			raw, err := zstdDecoder.DecodeAll(val, nil)
			if err != nil {
				return fmt.Errorf("zstd decompress: %w", err)
			}
			return decMode.Unmarshal(raw, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return Snapshot{}, ErrNoSnapshot
	}
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to load snapshot: %w", err)
	}
	if len(snap.Records) == 0 {
		return Snapshot{}, ErrNoSnapshot
	}
	return snap, nil
}

func (c *SnapshotCache) Close() error {
	return c.db.Close()
}
