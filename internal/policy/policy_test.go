// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnershipRules(t *testing.T) {
	tests := []struct {
		name    string
		actorID int64
		ownerID int64
		want    bool
	}{
		{name: "owner", actorID: 1, ownerID: 1, want: true},
		{name: "someone else", actorID: 1, ownerID: 2, want: false},
		{name: "guest", actorID: 0, ownerID: 2, want: false},
		{name: "guest against zero owner", actorID: 0, ownerID: 0, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanModifyUser(tt.actorID, tt.ownerID))
			assert.Equal(t, tt.want, CanDeleteStatus(tt.actorID, tt.ownerID))
		})
	}
}
