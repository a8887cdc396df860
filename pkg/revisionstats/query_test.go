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

package revisionstats_test

import (
	"context"
	"fmt"
	"io"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/stretchr/testify/mock"

	provider "github.com/cs3org/go-cs3apis/cs3/storage/provider/v1beta1"

	"github.com/cs3org/revfsstats/pkg/revisionstats"
	"github.com/cs3org/revfsstats/pkg/revisionstats/mocks"
)

// memFile is a read-only in-memory FileHandle backing the fake store
// fixtures below.
type memFile struct{ data []byte }

func (f *memFile) ReadAt(p []byte, off int64) (int, error) {
	if off >= int64(len(f.data)) {
		return 0, io.EOF
	}
	n := copy(p, f.data[off:])
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}
func (f *memFile) Close() error         { return nil }
func (f *memFile) Size() (int64, error) { return int64(len(f.data)), nil }

// fakeStore is a hand-rolled RevisionStore fixture: every scenario
// below configures only the fields its traversal mode actually
// touches and leaves the rest at their zero value.
type fakeStore struct {
	youngest    revisionstats.RevNum
	minUnpacked revisionstats.RevNum
	shardSize   int
	logical     bool

	file *memFile

	// physical mode
	nodeRevsByOffset map[int]*revisionstats.NodeRev
	consumedByOffset map[int]int
	repHeaders       map[int]revisionstats.RepHeader
	dirEntries       map[int][]revisionstats.DirEntry

	// logical mode
	nodeRevsByMarker map[byte]*revisionstats.NodeRev
	pageSize         int
	maxOffset        revisionstats.ByteOffset
	p2lEntries       []revisionstats.P2LEntry
}

func (s *fakeStore) YoungestRevision(ctx context.Context) (revisionstats.RevNum, error) {
	return s.youngest, nil
}
func (s *fakeStore) MinUnpackedRevision(ctx context.Context) (revisionstats.RevNum, error) {
	return s.minUnpacked, nil
}
func (s *fakeStore) ShardSize(ctx context.Context) (int, error) { return s.shardSize, nil }
func (s *fakeStore) UseLogicalAddressing(ctx context.Context) (bool, error) {
	return s.logical, nil
}
func (s *fakeStore) OpenPackOrRev(ctx context.Context, rev revisionstats.RevNum) (revisionstats.FileHandle, error) {
	return s.file, nil
}
func (s *fakeStore) PackedOffset(ctx context.Context, rev revisionstats.RevNum) (revisionstats.ByteOffset, error) {
	return 0, fmt.Errorf("fakeStore: PackedOffset not configured for this scenario")
}
func (s *fakeStore) ReadRepHeader(ctx context.Context, data []byte, offset int) (revisionstats.RepHeader, error) {
	h, ok := s.repHeaders[offset]
	if !ok {
		return revisionstats.RepHeader{}, fmt.Errorf("fakeStore: no rep header scripted at offset %d", offset)
	}
	return h, nil
}
func (s *fakeStore) ReadNodeRev(ctx context.Context, data []byte, offset int) (*revisionstats.NodeRev, int, error) {
	if s.nodeRevsByMarker != nil {
		nr, ok := s.nodeRevsByMarker[data[0]]
		if !ok {
			return nil, 0, fmt.Errorf("fakeStore: no node-revision scripted for marker %d", data[0])
		}
		return nr, len(data), nil
	}
	nr, ok := s.nodeRevsByOffset[offset]
	if !ok {
		return nil, 0, fmt.Errorf("fakeStore: no node-revision scripted at offset %d", offset)
	}
	return nr, s.consumedByOffset[offset], nil
}
func (s *fakeStore) RepContentsDir(ctx context.Context, fh revisionstats.FileHandle, nr *revisionstats.NodeRev) ([]revisionstats.DirEntry, error) {
	return s.dirEntries[int(nr.DataRep.ItemIndex)], nil
}
func (s *fakeStore) P2LPageSize(ctx context.Context) (int, error) { return s.pageSize, nil }
func (s *fakeStore) P2LMaxOffset(ctx context.Context, fh revisionstats.FileHandle, rev revisionstats.RevNum) (revisionstats.ByteOffset, error) {
	return s.maxOffset, nil
}
func (s *fakeStore) P2LIndexLookup(ctx context.Context, fh revisionstats.FileHandle, rev revisionstats.RevNum, offset revisionstats.ByteOffset, pageSize int) ([]revisionstats.P2LEntry, error) {
	var out []revisionstats.P2LEntry
	for _, e := range s.p2lEntries {
		if e.Offset >= offset {
			out = append(out, e)
		}
	}
	return out, nil
}

var _ revisionstats.RevisionStore = (*fakeStore)(nil)

// newEmptyRepoPhysicalStore builds the fixture for spec's "empty
// repo" scenario: revision 0 only, a single root directory, no
// properties, read through physical (offset-based) addressing.
func newEmptyRepoPhysicalStore() *fakeStore {
	changes := []byte("A /foo\ntext\n") // one two-line changed-path record
	root := len(changes)
	trailer := []byte(fmt.Sprintf("%d %d\n", root, 0))
	data := append(append([]byte{}, changes...), trailer...)

	const rootOffset = 12 // == len(changes), where the trailer starts
	const rootDataRepOffset = 40

	return &fakeStore{
		youngest:    0,
		minUnpacked: 0,
		shardSize:   0,
		logical:     false,
		file:        &memFile{data: data},
		nodeRevsByOffset: map[int]*revisionstats.NodeRev{
			rootOffset: {
				Kind:           provider.ResourceType_RESOURCE_TYPE_CONTAINER,
				DataRep:        &revisionstats.RepLocator{Revision: 0, ItemIndex: rootDataRepOffset, Size: 30, ExpandedSize: 30},
				HasPredecessor: false,
				CreatedPath:    "/",
			},
		},
		consumedByOffset: map[int]int{rootOffset: 9},
		repHeaders: map[int]revisionstats.RepHeader{
			rootDataRepOffset: {HeaderSize: 3},
		},
		dirEntries: map[int][]revisionstats.DirEntry{
			rootDataRepOffset: {},
		},
	}
}

// newSharedFileLogicalStore builds a single-revision fixture with two
// node-revisions that both reference the same file representation,
// read through logical (index-based) addressing.
func newSharedFileLogicalStore() *fakeStore {
	changesContent := []byte("A /a.txt\ntext\n") // 14 bytes, one record

	buf := make([]byte, 30)
	buf[0] = 1
	buf[8] = 2
	copy(buf[16:], changesContent)

	shared := &revisionstats.RepLocator{Revision: 0, ItemIndex: 500, Size: 50, ExpandedSize: 50}

	return &fakeStore{
		youngest:    0,
		minUnpacked: 0,
		shardSize:   0,
		logical:     true,
		file:        &memFile{data: buf},
		nodeRevsByMarker: map[byte]*revisionstats.NodeRev{
			1: {Kind: provider.ResourceType_RESOURCE_TYPE_FILE, DataRep: shared, HasPredecessor: false, CreatedPath: "/a.txt"},
			2: {Kind: provider.ResourceType_RESOURCE_TYPE_FILE, DataRep: shared, HasPredecessor: true, CreatedPath: "/b.txt"},
		},
		pageSize:  1024,
		maxOffset: 30,
		p2lEntries: []revisionstats.P2LEntry{
			{Offset: 0, Size: 8, Type: revisionstats.ItemTypeNodeRev, Item: revisionstats.NodeRevID{Revision: 0}},
			{Offset: 8, Size: 8, Type: revisionstats.ItemTypeNodeRev, Item: revisionstats.NodeRevID{Revision: 0}},
			{Offset: 16, Size: int64(len(changesContent)), Type: revisionstats.ItemTypeChanges, Item: revisionstats.NodeRevID{Revision: 0}},
		},
	}
}

var _ = Describe("GetStats", func() {
	It("aggregates an empty repository read via physical addressing", func() {
		stats, err := revisionstats.GetStats(context.Background(), newEmptyRepoPhysicalStore(), revisionstats.New())
		Expect(err).ToNot(HaveOccurred())

		Expect(stats.RevisionCount).To(Equal(int64(1)))
		Expect(stats.DirNodeStats.Count).To(Equal(int64(1)))
		Expect(stats.FileNodeStats.Count).To(Equal(int64(0)))
		Expect(stats.TotalRepStats.Count).To(Equal(int64(1)), "the root directory's single rep")
		Expect(stats.ChangeCount).To(Equal(int64(1)))
		Expect(stats.LargestChanges.Changes).To(HaveLen(1))
		Expect(stats.LargestChanges.Changes[0].Size).To(Equal(int64(30)))
	})

	It("dedups a representation shared by two node-revisions in logical mode", func() {
		stats, err := revisionstats.GetStats(context.Background(), newSharedFileLogicalStore(), revisionstats.New())
		Expect(err).ToNot(HaveOccurred())

		Expect(stats.TotalRepStats.Count).To(Equal(int64(1)), "one rep, referenced twice")
		Expect(stats.FileRepStats.Shared.Count).To(Equal(int64(1)))
		Expect(stats.FileRepStats.Unique.Count).To(Equal(int64(0)))
		Expect(stats.FileRepStats.References).To(Equal(int64(2)))
		Expect(stats.FileRepStats.ExpandedSize).To(Equal(int64(2 * 50)))

		Expect(stats.ChangeCount).To(Equal(int64(1)))
		Expect(stats.ChangeLen).To(Equal(int64(14)))

		Expect(stats.LargestChanges.Changes).To(HaveLen(1), "only the first reference records a change")
		Expect(stats.LargestChanges.Changes[0].Path).To(Equal("/a.txt"))
	})

	It("is idempotent across repeated reads of the same repository", func() {
		ctx := context.Background()
		first, err := revisionstats.GetStats(ctx, newEmptyRepoPhysicalStore(), revisionstats.New())
		Expect(err).ToNot(HaveOccurred())
		second, err := revisionstats.GetStats(ctx, newEmptyRepoPhysicalStore(), revisionstats.New())
		Expect(err).ToNot(HaveOccurred())

		Expect(cmp.Diff(first, second)).To(BeEmpty())
	})

	It("returns Cancelled and no partial Stats when the cancel callback aborts", func() {
		store := &mocks.RevisionStore{}
		store.On("YoungestRevision", mock.Anything).Return(revisionstats.RevNum(0), nil)
		store.On("MinUnpackedRevision", mock.Anything).Return(revisionstats.RevNum(0), nil)
		store.On("ShardSize", mock.Anything).Return(0, nil)
		store.On("UseLogicalAddressing", mock.Anything).Return(false, nil)

		opts := revisionstats.New()
		opts.CancelFunc = func(ctx context.Context) error {
			return fmt.Errorf("operator requested abort")
		}

		stats, err := revisionstats.GetStats(context.Background(), store, opts)
		Expect(stats).To(BeNil())
		var cancelled revisionstats.Cancelled
		Expect(err).To(BeAssignableToTypeOf(cancelled))

		store.AssertNotCalled(GinkgoT(), "OpenPackOrRev", mock.Anything, mock.Anything)
	})
})
