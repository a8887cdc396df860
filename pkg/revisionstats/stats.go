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

// noExtension is the sentinel key used for paths with no extension,
// or whose only "." is the leading character of the file name.
const noExtension = "(none)"

// NodeStats is a plain count/size pair for node-revisions of one
// kind.
type NodeStats struct {
	Count int64
	Size  int64
}

// RepPackStats accumulates the on-disk footprint of a set of
// representations.
type RepPackStats struct {
	Count        int64
	PackedSize   int64
	ExpandedSize int64
	OverheadSize int64
}

func addRepPackStats(s *RepPackStats, rep *Rep) {
	s.Count++
	s.PackedSize += rep.Size
	s.ExpandedSize += rep.ExpandedSize
	// 7 accounts for the literal "ENDREP\n" trailer every
	// representation carries after its header.
	s.OverheadSize += int64(rep.HeaderSize) + 7
}

// RepresentationStats splits a set of representations into unique
// (ref_count == 1) and shared (ref_count > 1) and tracks the
// reference total and the pre-deduplication logical footprint.
type RepresentationStats struct {
	Total  RepPackStats
	Unique RepPackStats
	Shared RepPackStats

	References   int64
	ExpandedSize int64
}

func addRepStats(s *RepresentationStats, rep *Rep) {
	addRepPackStats(&s.Total, rep)
	if rep.RefCount == 1 {
		addRepPackStats(&s.Unique, rep)
	} else {
		addRepPackStats(&s.Shared, rep)
	}
	s.References += int64(rep.RefCount)
	s.ExpandedSize += int64(rep.RefCount) * rep.ExpandedSize
}

// ExtensionStats are the per-extension histograms accumulated for
// File-kind representations only.
type ExtensionStats struct {
	Extension     string
	NodeHistogram Histogram
	RepHistogram  Histogram
}

// Stats is the complete result of a GetStats run.
type Stats struct {
	RevisionCount int64
	ChangeCount   int64
	ChangeLen     int64
	TotalSize     int64

	DirNodeStats   NodeStats
	FileNodeStats  NodeStats
	TotalNodeStats NodeStats

	DirRepStats      RepresentationStats
	FileRepStats     RepresentationStats
	DirPropRepStats  RepresentationStats
	FilePropRepStats RepresentationStats
	TotalRepStats    RepresentationStats

	RepSizeHistogram  Histogram
	NodeSizeHistogram Histogram

	AddedRepSizeHistogram  Histogram
	AddedNodeSizeHistogram Histogram

	// UnusedRepHistogram mirrors stats.c's unused_rep_histogram
	// field. It stays empty: a rep only ever reaches add_change
	// through a node-revision reference, and by then its kind has
	// already moved off Unused. Kept for structural parity with the
	// reference implementation and in case a future delta-base-only
	// accounting path needs it.
	UnusedRepHistogram Histogram

	DirRepHistogram Histogram
	DirHistogram    Histogram

	FileRepHistogram Histogram
	FileHistogram    Histogram

	DirPropRepHistogram Histogram
	DirPropHistogram    Histogram

	FilePropRepHistogram Histogram
	FilePropHistogram    Histogram

	LargestChanges *LargestChanges
	ByExtension    map[string]*ExtensionStats
}

func newStats(largestChangesCapacity int) *Stats {
	return &Stats{
		LargestChanges: NewLargestChanges(largestChangesCapacity),
		ByExtension:    make(map[string]*ExtensionStats),
	}
}

func (s *Stats) extensionStats(ext string) *ExtensionStats {
	e, ok := s.ByExtension[ext]
	if !ok {
		e = &ExtensionStats{Extension: ext}
		s.ByExtension[ext] = e
	}
	return e
}
