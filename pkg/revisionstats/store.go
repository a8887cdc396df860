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
	"context"
	"io"
)

// FileHandle is a pack or rev file, open for random-access reads.
// RevisionStore implementations own the underlying descriptor; Close
// releases it.
type FileHandle interface {
	io.ReaderAt
	io.Closer
	Size() (int64, error)
}

// RevisionStore is the filesystem collaborator this package consumes
// but never implements: a decomposed-filesystem driver (or a test
// fake) provides it. Every method mirrors one piece of the on-disk
// FSFS-style format that GetStats needs to walk a repository.
type RevisionStore interface {
	// YoungestRevision returns the highest revision present.
	YoungestRevision(ctx context.Context) (RevNum, error)

	// MinUnpackedRevision returns the lowest revision that is not
	// part of a packed shard; 0 if nothing is packed.
	MinUnpackedRevision(ctx context.Context) (RevNum, error)

	// ShardSize returns the number of revisions per pack, or 0 if
	// the repository is not sharded.
	ShardSize(ctx context.Context) (int, error)

	// UseLogicalAddressing reports whether revisions should be read
	// via the p2l index (true) or via the physical tree walk
	// (false).
	UseLogicalAddressing(ctx context.Context) (bool, error)

	// OpenPackOrRev opens the pack file that contains rev, or rev's
	// own file if it is not packed. Revisions sharing a pack share
	// the returned handle until the caller closes it.
	OpenPackOrRev(ctx context.Context, rev RevNum) (FileHandle, error)

	// PackedOffset resolves rev's start offset within its pack via
	// the pack's manifest. Only meaningful for packed revisions.
	PackedOffset(ctx context.Context, rev RevNum) (ByteOffset, error)

	// ReadRepHeader decodes a representation's header line found at
	// offset within data, the current revision's content buffer.
	// Physical addressing only.
	ReadRepHeader(ctx context.Context, data []byte, offset int) (RepHeader, error)

	// ReadNodeRev decodes the node-revision record starting at
	// offset within data, returning the decoded record and the
	// number of bytes it occupies (the record is terminated by a
	// blank line or by the end of data).
	ReadNodeRev(ctx context.Context, data []byte, offset int) (*NodeRev, int, error)

	// RepContentsDir lists a directory node-revision's entries.
	// Physical addressing only.
	RepContentsDir(ctx context.Context, fh FileHandle, nr *NodeRev) ([]DirEntry, error)

	// P2LPageSize returns the page size the p2l index is organized
	// in. Logical addressing only.
	P2LPageSize(ctx context.Context) (int, error)

	// P2LMaxOffset returns the highest file offset the p2l index
	// for rev's shard covers. Logical addressing only.
	P2LMaxOffset(ctx context.Context, fh FileHandle, rev RevNum) (ByteOffset, error)

	// P2LIndexLookup returns the index entries describing the items
	// found at or after offset, up to one page. Logical addressing
	// only.
	P2LIndexLookup(ctx context.Context, fh FileHandle, rev RevNum, offset ByteOffset, pageSize int) ([]P2LEntry, error)
}
