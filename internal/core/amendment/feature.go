// Copyright (c) 2024-2025. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

// Package amendment tracks the protocol amendments that change how ledger
// directories are maintained.
package amendment

import (
	crypto "github.com/LeJamon/xrpldir/internal/crypto/common"
)

// VoteBehavior defines how a node votes on an amendment by default.
type VoteBehavior int

const (
	// VoteDefaultNo means the amendment is not voted for by default.
	VoteDefaultNo VoteBehavior = iota
	// VoteDefaultYes means the amendment is voted for by default.
	VoteDefaultYes
	// VoteObsolete means the amendment is obsolete and should not be voted on.
	VoteObsolete
)

// Feature represents an XRP Ledger amendment/feature.
type Feature struct {
	// Name is the human-readable name of the feature.
	Name string
	// ID is the SHA-512 half of the feature name, used as unique identifier.
	ID [32]byte
	// Vote is the default voting behavior for this feature.
	Vote VoteBehavior
	// Description says what changes when the feature is enabled.
	Description string
}

// FeatureID computes the feature ID from a feature name.
func FeatureID(name string) [32]byte {
	return crypto.Sha512Half([]byte(name))
}

// IsDefaultYes returns true if the feature should be enabled by default.
func (f *Feature) IsDefaultYes() bool {
	return f.Vote == VoteDefaultYes
}

// String returns the feature name.
func (f *Feature) String() string {
	return f.Name
}
