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

// RevisionInfo accumulates everything learned about a single revision
// while it is being parsed. Representations is always kept sorted
// ascending by Offset.
type RevisionInfo struct {
	Revision RevNum

	Offset ByteOffset
	End    ByteOffset

	Changes     ByteOffset
	ChangesLen  int64
	ChangeCount int64

	DirNoderevCount  int64
	FileNoderevCount int64
	DirNoderevSize   int64
	FileNoderevSize  int64

	Representations []*Rep

	// file is live only while this revision is being parsed; it is
	// nilled out as soon as parsing finishes, well before the
	// aggregation pass runs.
	file FileHandle
}
