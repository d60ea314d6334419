// Copyright (c) 2024-2025. All rights reserved.
// Use of this source code is governed by a BSD-style license that can be
// found in the LICENSE file.

package amendment

import (
	"sort"
	"sync"
)

// Global feature registry
var (
	registryMu     sync.RWMutex
	features       = make(map[[32]byte]*Feature)
	featuresByName = make(map[string]*Feature)
)

// Feature IDs - computed at init time
var (
	// FeatureSortedDirectories keeps directory entries in ascending key
	// order. Without it entries are appended to the tail page.
	FeatureSortedDirectories [32]byte

	// FeatureFixDirectoryLimit lifts the cap on pages per directory.
	FeatureFixDirectoryLimit [32]byte
)

func init() {
	registerFeature("SortedDirectories", VoteDefaultYes,
		"directory pages hold entries in ascending order", &FeatureSortedDirectories)
	registerFeature("fixDirectoryLimit", VoteDefaultNo,
		"directories may grow past the page limit", &FeatureFixDirectoryLimit)
}

// registerFeature registers a feature with the given parameters.
func registerFeature(name string, vote VoteBehavior, description string, idPtr *[32]byte) {
	id := FeatureID(name)
	*idPtr = id

	f := &Feature{
		Name:        name,
		ID:          id,
		Vote:        vote,
		Description: description,
	}

	registryMu.Lock()
	features[id] = f
	featuresByName[name] = f
	registryMu.Unlock()
}

// GetFeature returns the feature with the given ID, or nil if not found.
func GetFeature(id [32]byte) *Feature {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return features[id]
}

// GetFeatureByName returns the feature with the given name, or nil if not found.
func GetFeatureByName(name string) *Feature {
	registryMu.RLock()
	defer registryMu.RUnlock()
	return featuresByName[name]
}

// AllFeatures returns every registered feature ordered by name.
func AllFeatures() []*Feature {
	registryMu.RLock()
	defer registryMu.RUnlock()

	result := make([]*Feature, 0, len(features))
	for _, f := range features {
		result = append(result, f)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result
}
