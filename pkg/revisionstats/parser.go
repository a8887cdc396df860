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
	"bytes"
	"context"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	provider "github.com/cs3org/go-cs3apis/cs3/storage/provider/v1beta1"
)

// maxTrailerScan bounds how many trailing bytes of a revision blob
// readRevisionTrailer inspects looking for the final header line.
const maxTrailerScan = 64

// parseNodeRev decodes the node-revision record at offset within
// data (the revision currently being parsed) and interns its
// representations, recursing into directory contents in physical
// mode per the rules in parseDir.
func (q *Query) parseNodeRev(ctx context.Context, data []byte, offset int, info *RevisionInfo, physical bool) error {
	ctx, span := tracer.Start(ctx, "parseNodeRev")
	defer span.End()

	nr, consumed, err := q.store.ReadNodeRev(ctx, data, offset)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: decoding node-revision at offset %d in r%d", offset, info.Revision)
	}

	isDir := nr.Kind == provider.ResourceType_RESOURCE_TYPE_CONTAINER

	var text, props *Rep
	if nr.DataRep != nil {
		text, err = q.intern(ctx, *nr.DataRep, info, data, physical)
		if err != nil {
			return err
		}
		text.RefCount++
		if text.RefCount == 1 {
			if isDir {
				text.Kind = Directory
			} else {
				text.Kind = File
			}
			q.addChange(text.Size, text.ExpandedSize, text.Revision, nr.CreatedPath, text.Kind, !nr.HasPredecessor)
		}
	}

	if nr.PropRep != nil {
		props, err = q.intern(ctx, *nr.PropRep, info, data, physical)
		if err != nil {
			return err
		}
		props.RefCount++
		if props.RefCount == 1 {
			if isDir {
				props.Kind = DirProperty
			} else {
				props.Kind = FileProperty
			}
			q.addChange(props.Size, props.ExpandedSize, props.Revision, nr.CreatedPath, props.Kind, !nr.HasPredecessor)
		}
	}

	if isDir && physical && text != nil && text.RefCount == 1 {
		if err := q.parseDir(ctx, data, nr, info, physical); err != nil {
			return err
		}
	}

	if isDir {
		info.DirNoderevCount++
		info.DirNoderevSize += int64(consumed)
	} else {
		info.FileNoderevCount++
		info.FileNoderevSize += int64(consumed)
	}
	return nil
}

// parseDir recurses into a directory's entries that belong to the
// current revision. Entries pointing at an earlier revision were
// already accounted for when that revision was processed; their
// bytes are not even in data.
func (q *Query) parseDir(ctx context.Context, data []byte, nr *NodeRev, info *RevisionInfo, physical bool) error {
	entries, err := q.store.RepContentsDir(ctx, info.file, nr)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: listing directory contents in r%d", info.Revision)
	}
	for _, e := range entries {
		if e.ID.Revision != info.Revision {
			continue
		}
		if err := q.parseNodeRev(ctx, data, int(e.ID.Item), info, physical); err != nil {
			return err
		}
	}
	return nil
}

// addChange records a node-revision's representation as a change: it
// feeds the largest-changes list and every relevant histogram.
// plainAdded is true iff the node-revision has no predecessor.
func (q *Query) addChange(repSize, expandedSize int64, revision RevNum, path string, kind RepKind, plainAdded bool) {
	stats := q.stats
	stats.LargestChanges.Insert(repSize, revision, path)
	stats.RepSizeHistogram.Add(repSize)
	stats.NodeSizeHistogram.Add(expandedSize)
	if plainAdded {
		stats.AddedRepSizeHistogram.Add(repSize)
		stats.AddedNodeSizeHistogram.Add(expandedSize)
	}

	switch kind {
	case DirProperty:
		stats.DirPropRepHistogram.Add(repSize)
		stats.DirPropHistogram.Add(expandedSize)
	case FileProperty:
		stats.FilePropRepHistogram.Add(repSize)
		stats.FilePropHistogram.Add(expandedSize)
	case Directory:
		stats.DirRepHistogram.Add(repSize)
		stats.DirHistogram.Add(expandedSize)
	case File:
		stats.FileRepHistogram.Add(repSize)
		stats.FileHistogram.Add(expandedSize)
		ext := extensionOf(path)
		e := stats.extensionStats(ext)
		e.RepHistogram.Add(repSize)
		e.NodeHistogram.Add(expandedSize)
	}
}

// extensionOf returns path's file extension (including the leading
// dot) or noExtension if it has none, or if its only dot is the
// first character of the file name (e.g. ".gitignore").
func extensionOf(path string) string {
	slash := strings.LastIndexByte(path, '/')
	name := path[slash+1:]
	dot := strings.LastIndexByte(name, '.')
	if dot <= 0 {
		return noExtension
	}
	return name[dot:]
}

// readRevisionTrailer parses the last line of a revision blob, of
// the shape "<root offset> <changes offset>\n", and derives the
// changed-paths section's length from it.
func readRevisionTrailer(data []byte) (rootOffset, changesOffset, changesLen int64, err error) {
	n := len(data)
	length := maxTrailerScan
	if length > n {
		length = n
	}
	tail := data[n-length:]

	if length == 0 || tail[length-1] != '\n' {
		return 0, 0, 0, Corrupt("trailing newline missing")
	}

	body := tail[:length-1]
	idx := bytes.LastIndexByte(body, '\n')
	if idx < 0 {
		return 0, 0, 0, Corrupt("final line too long")
	}
	line := body[idx+1:]

	sp := bytes.IndexByte(line, ' ')
	if sp < 0 {
		return 0, 0, 0, Corrupt("missing separator")
	}

	root, perr := strconv.ParseInt(string(line[:sp]), 10, 64)
	if perr != nil {
		return 0, 0, 0, Corrupt("invalid root node-revision offset")
	}
	changes, perr := strconv.ParseInt(string(line[sp+1:]), 10, 64)
	if perr != nil {
		return 0, 0, 0, Corrupt("invalid changes offset")
	}

	// distToEnd mirrors the original C pointer arithmetic "buf + len -
	// line", where line points AT the separating newline itself (not
	// past it) — so the distance includes that newline byte.
	distToEnd := int64(length - idx)
	changesLen = int64(n) - changes - distToEnd + 1
	return root, changes, changesLen, nil
}

// getChangeCount decodes the number of records in a changed-paths
// section: each record is exactly two lines.
func getChangeCount(data []byte) int64 {
	return int64(bytes.Count(data, []byte{'\n'})) / 2
}
