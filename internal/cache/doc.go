// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package cache provides a small generic LRU cache.
//
// It memoizes values that are cheap to keep but not free to build, such as
// composed pixel row converters keyed by a (source, destination) format pair.
//
//	c := cache.New[key, bitmap.RowConverter](64)
//	conv := c.GetOrCreate(k, build)
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
