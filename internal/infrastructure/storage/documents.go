package storage

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/sirupsen/logrus"
)

// Documents reads and writes JSON documents through a Store, absorbing
// persistence failures: unreadable documents read as absent, and failed
// writes are logged and reported to the caller without being fatal.
type Documents struct {
	store Store
	log   logrus.FieldLogger
}

// NewDocuments wraps a store with JSON encoding and failure logging
func NewDocuments(store Store, log logrus.FieldLogger) *Documents {
	return &Documents{store: store, log: log}
}

// Load decodes the document stored under key into dest.
// It returns false when the document is missing, unreadable or corrupt.
func (d *Documents) Load(ctx context.Context, key string, dest any) bool {
	raw, err := d.store.Read(ctx, key)
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			d.log.WithFields(logrus.Fields{"key": key, "error": err}).Error("Error reading document")
		}
		return false
	}

	if err := json.Unmarshal(raw, dest); err != nil {
		d.log.WithFields(logrus.Fields{"key": key, "error": err}).Error("Discarding corrupt document")
		return false
	}
	return true
}

// Save encodes value and writes it under key
func (d *Documents) Save(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err == nil {
		err = d.store.Write(ctx, key, raw)
	}
	if err != nil {
		d.log.WithFields(logrus.Fields{"key": key, "error": err}).Error("Error saving document")
	}
	return err
}
