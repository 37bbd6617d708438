// Package caching implements the read-through cache protocol shared by the
// query handlers and the invalidation rules applied by the command handlers.
//
// Keys live in one region per aggregate type:
//
//	<region>:id:<uuid>          one record
//	<region>:page:<n>:<size>    one page of FindAll
//
// Search results are never cached.
package caching

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"parceltracker/internal/core/domain/model/kernel"
	"parceltracker/internal/core/ports"

	"go.uber.org/zap"
)

type Region string

const (
	Guests  Region = "guests"
	Parcels Region = "parcels"
)

// Key is a cache key bound to its region.
type Key struct {
	region Region
	value  string
}

func IDKey(region Region, id kernel.UUID) Key {
	return Key{region: region, value: fmt.Sprintf("%s:id:%s", region, id)}
}

func PageKey(region Region, page kernel.PageRequest) Key {
	return Key{region: region, value: fmt.Sprintf("%s:page:%d:%d", region, page.Page(), page.Size())}
}

func (k Key) Region() Region { return k.region }

func (k Key) String() string { return k.value }

func pagePrefix(region Region) string {
	return string(region) + ":page:"
}

// Coordinator owns the cache and the per-region invalidation epochs.
//
// Every invalidation bumps the region epoch under mu before deleting keys. A
// read-through fill remembers the epoch it started with and stores its value
// only if the epoch is unchanged, checking and storing under mu. A fill that
// raced with a commit therefore never lands after that commit's invalidation.
type Coordinator struct {
	cache  ports.Cache
	logger *zap.Logger

	mu     sync.Mutex
	epochs map[Region]uint64
}

func NewCoordinator(cache ports.Cache, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		cache:  cache,
		logger: logger.With(zap.String("component", "cache-coordinator")),
		epochs: make(map[Region]uint64),
	}
}

// ReadThrough returns the cached value for key, or calls load, caches its
// result and returns it. Cache failures fall back to load.
func ReadThrough[T any](ctx context.Context, c *Coordinator, key Key, load func(context.Context) (T, error)) (T, error) {
	if cached, ok := lookup[T](ctx, c, key); ok {
		return cached, nil
	}

	epoch := c.epoch(key.region)

	value, err := load(ctx)
	if err != nil {
		var zero T
		return zero, err
	}

	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Warn("cache encode failed", zap.String("key", key.String()), zap.Error(err))
		return value, nil
	}

	c.fill(ctx, key, epoch, data)
	return value, nil
}

// Created drops every cached page of region.
func (c *Coordinator) Created(ctx context.Context, region Region) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epochs[region]++

	if err := c.cache.DeletePrefix(ctx, pagePrefix(region)); err != nil {
		return fmt.Errorf("invalidate %s pages: %w", region, err)
	}
	return nil
}

// Changed drops the cached record id of region and every cached page of region.
func (c *Coordinator) Changed(ctx context.Context, region Region, id kernel.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epochs[region]++

	key := IDKey(region, id)
	if err := c.cache.Delete(ctx, key.String()); err != nil {
		return fmt.Errorf("invalidate %s: %w", key, err)
	}
	if err := c.cache.DeletePrefix(ctx, pagePrefix(region)); err != nil {
		return fmt.Errorf("invalidate %s pages: %w", region, err)
	}
	return nil
}

func lookup[T any](ctx context.Context, c *Coordinator, key Key) (T, bool) {
	var value T

	data, err := c.cache.Get(ctx, key.String())
	if errors.Is(err, ports.ErrCacheMiss) {
		return value, false
	}
	if err != nil {
		c.logger.Warn("cache read failed", zap.String("key", key.String()), zap.Error(err))
		return value, false
	}

	if err = json.Unmarshal(data, &value); err != nil {
		c.logger.Warn("cache decode failed", zap.String("key", key.String()), zap.Error(err))
		var zero T
		return zero, false
	}

	return value, true
}

func (c *Coordinator) epoch(region Region) uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.epochs[region]
}

func (c *Coordinator) fill(ctx context.Context, key Key, epoch uint64, data []byte) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.epochs[key.region] != epoch {
		c.logger.Debug("cache fill skipped after invalidation", zap.String("key", key.String()))
		return
	}

	if err := c.cache.Set(ctx, key.String(), data); err != nil {
		c.logger.Warn("cache write failed", zap.String("key", key.String()), zap.Error(err))
	}
}
