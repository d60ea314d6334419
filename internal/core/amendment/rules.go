// Copyright (c) 2024-2025. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package amendment

import (
	"github.com/cockroachdb/errors"
)

// ErrUnknownFeature is returned when a feature name is not registered.
var ErrUnknownFeature = errors.New("unknown amendment")

// Rules provides a read-only view of which amendments are enabled. Rules
// are consulted on every directory operation, so switching rule sets
// between operations takes effect immediately.
type Rules struct {
	// enabled is the set of enabled amendment IDs
	enabled map[[32]byte]bool
}

// NewRules creates a new Rules instance with the given enabled amendments.
func NewRules(enabledIDs [][32]byte) *Rules {
	r := &Rules{
		enabled: make(map[[32]byte]bool, len(enabledIDs)),
	}
	for _, id := range enabledIDs {
		r.enabled[id] = true
	}
	return r
}

// RulesFromNames builds Rules from feature names, as found in configuration.
func RulesFromNames(names []string) (*Rules, error) {
	b := NewRulesBuilder()
	for _, name := range names {
		if GetFeatureByName(name) == nil {
			return nil, errors.Wrapf(ErrUnknownFeature, "%q", name)
		}
		b.EnableByName(name)
	}
	return b.Build(), nil
}

// Enabled returns true if the amendment with the given ID is enabled.
func (r *Rules) Enabled(featureID [32]byte) bool {
	if r == nil {
		return false
	}
	return r.enabled[featureID]
}

// EnabledCount returns the number of enabled amendments.
func (r *Rules) EnabledCount() int {
	return len(r.enabled)
}

// EnabledNames returns the names of the enabled amendments, ordered by name.
func (r *Rules) EnabledNames() []string {
	var names []string
	for _, f := range AllFeatures() {
		if r.Enabled(f.ID) {
			names = append(names, f.Name)
		}
	}
	return names
}

// DefaultRules returns Rules with every default-yes amendment enabled.
func DefaultRules() *Rules {
	b := NewRulesBuilder()
	for _, f := range AllFeatures() {
		if f.IsDefaultYes() {
			b.Enable(f.ID)
		}
	}
	return b.Build()
}

// EmptyRules returns Rules with no amendments enabled.
// This matches ledgers that predate sorted directories.
func EmptyRules() *Rules {
	return NewRules(nil)
}

// RulesBuilder allows building custom Rules instances.
type RulesBuilder struct {
	enabled map[[32]byte]bool
}

// NewRulesBuilder creates a new RulesBuilder.
func NewRulesBuilder() *RulesBuilder {
	return &RulesBuilder{
		enabled: make(map[[32]byte]bool),
	}
}

// Enable adds an amendment to the enabled set.
func (b *RulesBuilder) Enable(featureID [32]byte) *RulesBuilder {
	b.enabled[featureID] = true
	return b
}

// EnableByName adds an amendment by name to the enabled set.
func (b *RulesBuilder) EnableByName(name string) *RulesBuilder {
	if f := GetFeatureByName(name); f != nil {
		b.enabled[f.ID] = true
	}
	return b
}

// Disable removes an amendment from the enabled set.
func (b *RulesBuilder) Disable(featureID [32]byte) *RulesBuilder {
	delete(b.enabled, featureID)
	return b
}

// Build creates the Rules instance.
func (b *RulesBuilder) Build() *Rules {
	enabledIDs := make([][32]byte, 0, len(b.enabled))
	for id := range b.enabled {
		enabledIDs = append(enabledIDs, id)
	}
	return NewRules(enabledIDs)
}

// SortedDirectoriesEnabled returns true if directory entries are kept sorted.
func (r *Rules) SortedDirectoriesEnabled() bool {
	return r.Enabled(FeatureSortedDirectories)
}

// DirectoryLimitLifted returns true if fixDirectoryLimit is enabled.
func (r *Rules) DirectoryLimitLifted() bool {
	return r.Enabled(FeatureFixDirectoryLimit)
}
