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

	"github.com/pkg/errors"

	"github.com/cs3org/revfsstats/pkg/appctx"
)

// readFull reads exactly len(buf) bytes at offset from fh, treating
// an io.EOF that still filled buf completely as success.
func readFull(fh FileHandle, buf []byte, offset int64) error {
	if len(buf) == 0 {
		return nil
	}
	n, err := fh.ReadAt(buf, offset)
	if err != nil && !(err == io.EOF && n == len(buf)) {
		return Io(err.Error())
	}
	return nil
}

// processPackPhysical reads every revision of the packed shard rooted
// at base using physical (offset-based) addressing.
func (q *Query) processPackPhysical(ctx context.Context, base RevNum) error {
	ctx, span := tracer.Start(ctx, "processPackPhysical")
	defer span.End()

	fh, err := q.store.OpenPackOrRev(ctx, base)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: opening pack for r%d", base)
	}
	defer fh.Close()

	appctx.GetLogger(ctx).Debug().Int64("base_revision", int64(base)).Msg("opened pack file")

	size, err := fh.Size()
	if err != nil {
		return errors.Wrapf(err, "revisionstats: sizing pack for r%d", base)
	}

	for i := 0; i < q.shardSize; i++ {
		if err := q.checkCancel(ctx); err != nil {
			return err
		}

		rev := base + RevNum(i)
		info := &RevisionInfo{Revision: rev}

		off, err := q.store.PackedOffset(ctx, rev)
		if err != nil {
			return errors.Wrapf(err, "revisionstats: resolving packed offset for r%d", rev)
		}
		info.Offset = off

		if i+1 == q.shardSize {
			info.End = ByteOffset(size)
		} else {
			end, err := q.store.PackedOffset(ctx, rev+1)
			if err != nil {
				return errors.Wrapf(err, "revisionstats: resolving packed offset for r%d", rev+1)
			}
			info.End = end
		}

		data := make([]byte, int64(info.End-info.Offset))
		if err := readFull(fh, data, int64(info.Offset)); err != nil {
			return errors.Wrapf(err, "revisionstats: reading r%d from pack", rev)
		}

		root, changesOff, changesLen, err := readRevisionTrailer(data)
		if err != nil {
			return errors.Wrapf(err, "revisionstats: parsing trailer of r%d", rev)
		}
		info.Changes = ByteOffset(changesOff)
		info.ChangesLen = changesLen
		if changesOff >= 0 && changesLen >= 0 && changesOff+changesLen <= int64(len(data)) {
			info.ChangeCount = getChangeCount(data[changesOff : changesOff+changesLen])
		}

		q.Revisions[rev] = info

		info.file = fh
		if err := q.parseNodeRev(ctx, data, int(root), info, true); err != nil {
			return err
		}
		info.file = nil
	}

	return q.notifyProgress(ctx, base)
}

// processRevPhysical reads the single unpacked revision rev using
// physical addressing; the revision spans the whole file.
func (q *Query) processRevPhysical(ctx context.Context, rev RevNum) error {
	ctx, span := tracer.Start(ctx, "processRevPhysical")
	defer span.End()

	if err := q.checkCancel(ctx); err != nil {
		return err
	}

	fh, err := q.store.OpenPackOrRev(ctx, rev)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: opening rev file for r%d", rev)
	}
	defer fh.Close()

	appctx.GetLogger(ctx).Debug().Int64("revision", int64(rev)).Msg("opened rev file")

	size, err := fh.Size()
	if err != nil {
		return errors.Wrapf(err, "revisionstats: sizing rev file for r%d", rev)
	}

	info := &RevisionInfo{Revision: rev, Offset: 0, End: ByteOffset(size)}

	data := make([]byte, size)
	if err := readFull(fh, data, 0); err != nil {
		return errors.Wrapf(err, "revisionstats: reading r%d", rev)
	}

	root, changesOff, changesLen, err := readRevisionTrailer(data)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: parsing trailer of r%d", rev)
	}
	info.Changes = ByteOffset(changesOff)
	info.ChangesLen = changesLen
	if changesOff >= 0 && changesLen >= 0 && changesOff+changesLen <= int64(len(data)) {
		info.ChangeCount = getChangeCount(data[changesOff : changesOff+changesLen])
	}

	q.Revisions[rev] = info

	info.file = fh
	if err := q.parseNodeRev(ctx, data, int(root), info, true); err != nil {
		return err
	}
	info.file = nil

	return q.notifyUnpackedProgress(ctx, rev)
}
