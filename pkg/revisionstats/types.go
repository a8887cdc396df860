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

import (
	provider "github.com/cs3org/go-cs3apis/cs3/storage/provider/v1beta1"
)

// RevNum identifies a revision. Revisions are non-negative and dense,
// starting at 0.
type RevNum int64

// ByteOffset is an absolute or revision-relative byte position,
// depending on context (always documented at the call site).
type ByteOffset int64

// NodeRevID names a node-revision record by the revision that owns it
// and its location within that revision (a physical offset or a
// logical item index, depending on addressing mode).
type NodeRevID struct {
	Revision RevNum
	Item     ByteOffset
}

// RepLocator is what a node-revision's data or property field carries:
// enough to find, and possibly dedup, the representation it names.
type RepLocator struct {
	Revision     RevNum
	ItemIndex    ByteOffset
	Size         int64
	ExpandedSize int64
}

// NodeRev is the decoded form of a node-revision record, as produced
// by RevisionStore.ReadNodeRev. Decoding the raw bytes into this shape
// is the filesystem module's job, not this package's.
type NodeRev struct {
	Kind           provider.ResourceType
	DataRep        *RepLocator
	PropRep        *RepLocator
	HasPredecessor bool
	CreatedPath    string
}

// DirEntry is one entry of a directory's contents, as produced by
// RevisionStore.RepContentsDir.
type DirEntry struct {
	Name string
	ID   NodeRevID
}

// ItemType classifies a p2l index entry.
type ItemType int

const (
	ItemTypeUnknown ItemType = iota
	ItemTypeNodeRev
	ItemTypeChanges
)

// P2LEntry is one entry returned by RevisionStore.P2LIndexLookup: the
// region of the file at [Offset, Offset+Size) holds an item of the
// given Type belonging to Item.
type P2LEntry struct {
	Offset ByteOffset
	Size   int64
	Type   ItemType
	Item   NodeRevID
}

// RepHeader is what RevisionStore.ReadRepHeader reports about a
// representation's header line (physical addressing only).
type RepHeader struct {
	HeaderSize int
	HasBase    bool
	BaseRev    RevNum
	BaseOffset ByteOffset
}
