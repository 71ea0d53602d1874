// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package models

import (
	"gopkg.in/typ.v4/sync2"
)

// Pool reusable buffers for the selection passes to reduce garbage collector.
type Pool struct {
	PlayerIDs *sync2.Pool[[]PlayerID]
	Assigned  *sync2.Pool[map[PlayerID]struct{}]
}

func NewPool() *Pool {
	return &Pool{
		PlayerIDs: &sync2.Pool[[]PlayerID]{
			New: func() []PlayerID {
				return make([]PlayerID, 0, 16)
			},
		},
		Assigned: &sync2.Pool[map[PlayerID]struct{}]{
			New: func() map[PlayerID]struct{} {
				return make(map[PlayerID]struct{}, 16)
			},
		},
	}
}

// GetAssigned returns an empty assignment set.
func (p *Pool) GetAssigned() map[PlayerID]struct{} {
	m := p.Assigned.Get()
	clear(m)
	return m
}
