// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package policy holds the ownership rules that gate mutations.
// Every rule is a pure function of the acting user and the resource owner;
// there are no roles and no administrative override.
package policy

// CanModifyUser reports whether the actor may edit, update or delete the
// target user account.
func CanModifyUser(actorID, targetID int64) bool {
	return actorID > 0 && actorID == targetID
}

// CanDeleteStatus reports whether the actor may delete a status owned by
// ownerID.
func CanDeleteStatus(actorID, ownerID int64) bool {
	return actorID > 0 && actorID == ownerID
}
