// ============================================================================
// meinRECHENWERK (mRW) - Rechenkern
// ============================================================================
//
// Package:     logging
// Description: BatchWriter buffers log lines and flushes them to a file
// Author:      Mike Stoffels
// Created:     2026-10-15
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// BatchWriter implements io.Writer. Lines are buffered and written to the
// destination in batches, either when BatchSize lines are pending or every
// FlushPeriod.
type BatchWriter struct {
	dest        io.Writer
	closer      io.Closer
	batchSize   int
	flushPeriod time.Duration

	// Batching
	buffer   [][]byte
	bufferMu sync.Mutex
	flushCh  chan struct{}
	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once

	dropped int
}

// BatchWriterConfig holds configuration for BatchWriter
type BatchWriterConfig struct {
	BatchSize   int           // Number of lines per batch (default: 100)
	FlushPeriod time.Duration // How often to flush (default: 2s)
}

// DefaultBatchWriterConfig returns default configuration
func DefaultBatchWriterConfig() BatchWriterConfig {
	return BatchWriterConfig{
		BatchSize:   100,
		FlushPeriod: 2 * time.Second,
	}
}

// NewBatchWriter creates a BatchWriter over dest. If dest is an io.Closer
// it is closed by Close.
func NewBatchWriter(dest io.Writer, cfg BatchWriterConfig) *BatchWriter {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.FlushPeriod <= 0 {
		cfg.FlushPeriod = 2 * time.Second
	}

	w := &BatchWriter{
		dest:        dest,
		batchSize:   cfg.BatchSize,
		flushPeriod: cfg.FlushPeriod,
		buffer:      make([][]byte, 0, cfg.BatchSize),
		flushCh:     make(chan struct{}, 1),
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}
	if c, ok := dest.(io.Closer); ok {
		w.closer = c
	}

	go w.flushWorker()

	return w
}

// OpenLogFile opens path for appending, creating parent directories
func OpenLogFile(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}

// Write implements io.Writer. The logger reuses its buffer, so p is copied.
func (w *BatchWriter) Write(p []byte) (n int, err error) {
	line := make([]byte, len(p))
	copy(line, p)

	w.bufferMu.Lock()
	w.buffer = append(w.buffer, line)
	shouldFlush := len(w.buffer) >= w.batchSize
	w.bufferMu.Unlock()

	if shouldFlush {
		select {
		case w.flushCh <- struct{}{}:
		default:
		}
	}

	return len(p), nil
}

// flushWorker periodically flushes the buffer
func (w *BatchWriter) flushWorker() {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.flushPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			// Final flush
			w.Flush()
			return
		case <-w.flushCh:
			w.Flush()
		case <-ticker.C:
			w.Flush()
		}
	}
}

// Flush writes all pending lines to the destination
func (w *BatchWriter) Flush() {
	w.bufferMu.Lock()
	defer w.bufferMu.Unlock()

	for _, line := range w.buffer {
		if _, err := w.dest.Write(line); err != nil {
			w.dropped++
		}
	}
	w.buffer = w.buffer[:0]
}

// Dropped returns the number of lines the destination rejected
func (w *BatchWriter) Dropped() int {
	w.bufferMu.Lock()
	defer w.bufferMu.Unlock()
	return w.dropped
}

// Close flushes pending lines and closes the destination
func (w *BatchWriter) Close() error {
	w.stopOnce.Do(func() { close(w.stopCh) })
	<-w.doneCh // Wait for final flush

	if w.closer != nil {
		return w.closer.Close()
	}
	return nil
}
