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

// RepKind classifies what a representation's bytes hold, assigned by
// the first node-revision that reaches it.
type RepKind uint8

const (
	Unused RepKind = iota
	DirProperty
	FileProperty
	Directory
	File
)

func (k RepKind) String() string {
	switch k {
	case DirProperty:
		return "dir-property"
	case FileProperty:
		return "file-property"
	case Directory:
		return "directory"
	case File:
		return "file"
	default:
		return "unused"
	}
}

// Rep is one representation: the stored bytes for a file's content
// or a property set, possibly shared by several node-revisions via
// delta-chain reuse.
type Rep struct {
	Offset       ByteOffset
	Size         int64
	ExpandedSize int64
	Revision     RevNum
	RefCount     uint32
	HeaderSize   int
	Kind         RepKind
}
