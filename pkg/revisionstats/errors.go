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

// Corrupt reports a malformed on-disk structure: a bad revision
// trailer, an unparsable integer, a header shorter than expected.
type Corrupt string

func (e Corrupt) Error() string { return "revisionstats: corrupt revision data: " + string(e) }

// IsCorrupt lets callers use errors.As to detect Corrupt without a
// string comparison.
func (e Corrupt) IsCorrupt() {}

// IsCorrupt is implemented by errors.As targets that want to detect a
// Corrupt error.
type IsCorrupt interface{ IsCorrupt() }

// Io reports a read or seek failure against a pack or rev file.
type Io string

func (e Io) Error() string { return "revisionstats: i/o error: " + string(e) }
func (e Io) IsIo()         {}

type IsIo interface{ IsIo() }

// Cancelled reports that the caller's cancel or progress callback
// signalled abort.
type Cancelled string

func (e Cancelled) Error() string { return "revisionstats: cancelled: " + string(e) }
func (e Cancelled) IsCancelled()  {}

type IsCancelled interface{ IsCancelled() }

// IndexInconsistent reports a p2l index entry that cannot be trusted:
// an offset beyond the file, or an internally contradictory size.
type IndexInconsistent string

func (e IndexInconsistent) Error() string {
	return "revisionstats: inconsistent logical index: " + string(e)
}
func (e IndexInconsistent) IsIndexInconsistent() {}

type IsIndexInconsistent interface{ IsIndexInconsistent() }
