// Copyright 2018-2019 CERN
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// In applying this license, CERN does not waive the privileges and immunities
// granted to it by virtue of its status as an Intergovernmental Organization
// or submit itself to any jurisdiction.

package revisionstats

// LargestChange is one entry of a LargestChanges list.
type LargestChange struct {
	Size     int64
	Revision RevNum
	Path     string
}

// LargestChanges keeps up to Capacity changes, descending by size,
// without ever growing past its capacity. MinSize is the size of the
// last (smallest) stored entry, 1 while the list is empty; a change
// smaller than MinSize is discarded even while the list has room.
type LargestChanges struct {
	Capacity int
	MinSize  int64
	Changes  []LargestChange
}

// NewLargestChanges returns an empty list bounded at capacity
// entries.
func NewLargestChanges(capacity int) *LargestChanges {
	return &LargestChanges{
		Capacity: capacity,
		MinSize:  1,
		Changes:  make([]LargestChange, 0, capacity),
	}
}

// Insert considers (size, revision, path) for inclusion. Sizes below
// the current minimum are discarded outright; otherwise the new
// entry is appended while the list is below capacity, or displaces
// the current smallest once it is full, and is then bubbled up past
// any smaller neighbor.
func (lc *LargestChanges) Insert(size int64, revision RevNum, path string) {
	if size < lc.MinSize {
		return
	}
	if len(lc.Changes) < lc.Capacity {
		lc.Changes = append(lc.Changes, LargestChange{})
	}
	i := len(lc.Changes) - 1
	lc.Changes[i] = LargestChange{Size: size, Revision: revision, Path: path}
	for i > 0 && lc.Changes[i-1].Size < size {
		lc.Changes[i-1], lc.Changes[i] = lc.Changes[i], lc.Changes[i-1]
		i--
	}
	lc.MinSize = lc.Changes[len(lc.Changes)-1].Size
}
