package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"alcyxob/oly-planner/internal/config"
	"alcyxob/oly-planner/internal/domain"
	"alcyxob/oly-planner/internal/storage"

	"github.com/google/uuid"
)

// BlockBackup writes JSON snapshots of generated blocks to object storage.
// Backups are advisory: a failed upload is logged and retried, never
// surfaced to the athlete.
type BlockBackup struct {
	store      storage.BackupStorage
	maxRetries int
	baseDelay  time.Duration
}

const (
	backupContentType  = "application/json"
	backupAttemptLimit = 10 * time.Second
	backupMaxDelay     = 30 * time.Second
)

// NewBlockBackup wires a backup writer, or returns nil when disabled.
func NewBlockBackup(store storage.BackupStorage, cfg config.BackupConfig) *BlockBackup {
	if !cfg.Enabled || store == nil {
		return nil
	}
	retries := cfg.MaxRetries
	if retries < 0 {
		retries = 0
	}
	delay := time.Duration(cfg.RetryBaseDelayMs) * time.Millisecond
	if delay <= 0 {
		delay = time.Second
	}
	return &BlockBackup{store: store, maxRetries: retries, baseDelay: delay}
}

// Upload writes the block snapshot under its stable key and returns the key.
func (b *BlockBackup) Upload(ctx context.Context, block *domain.Block) (string, error) {
	data, err := json.Marshal(block)
	if err != nil {
		return "", err
	}
	key := fmt.Sprintf("blocks/%s.json", block.ID.Hex())
	if err := b.store.UploadSnapshot(ctx, key, data, backupContentType); err != nil {
		return "", err
	}
	return key, nil
}

// UploadAsync snapshots the block in the background with capped exponential
// backoff. Each snapshot gets a unique key so earlier ones are never
// overwritten.
func (b *BlockBackup) UploadAsync(block *domain.Block) {
	data, err := json.Marshal(block)
	if err != nil {
		log.Printf("backup: failed to serialize block %s: %v", block.ID.Hex(), err)
		return
	}
	key := fmt.Sprintf("snapshots/%s/%s.json", block.ProfileName, uuid.New().String())

	go func() {
		delay := b.baseDelay
		for attempt := 0; attempt <= b.maxRetries; attempt++ {
			ctx, cancel := context.WithTimeout(context.Background(), backupAttemptLimit)
			err := b.store.UploadSnapshot(ctx, key, data, backupContentType)
			cancel()
			if err == nil {
				return
			}
			log.Printf("backup: attempt %d for %s failed: %v", attempt+1, key, err)
			if attempt == b.maxRetries {
				return
			}
			time.Sleep(delay)
			delay *= 2
			if delay > backupMaxDelay {
				delay = backupMaxDelay
			}
		}
	}()
}
