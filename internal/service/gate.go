// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "sync"

// rotationGate serializes rotations within the process and keeps ordinary
// writes out of a running rotation. Writers hold the read side of writes,
// a rotation holds the write side.
type rotationGate struct {
	rotating sync.Mutex
	writes   sync.RWMutex
}

func newRotationGate() *rotationGate {
	return &rotationGate{}
}

// beginWrite blocks while a rotation commits and returns the release func.
func (g *rotationGate) beginWrite() func() {
	g.writes.RLock()
	return g.writes.RUnlock
}

// tryBeginRotation claims the single rotation slot without waiting.
func (g *rotationGate) tryBeginRotation() (func(), bool) {
	if !g.rotating.TryLock() {
		return nil, false
	}
	return g.rotating.Unlock, true
}

// excludeWrites waits for in-flight writes and blocks new ones.
func (g *rotationGate) excludeWrites() func() {
	g.writes.Lock()
	return g.writes.Unlock
}
