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

	"github.com/pkg/errors"

	"github.com/cs3org/revfsstats/pkg/appctx"
)

// processPackLogical reads every revision of the shard rooted at base
// (packed or not — the p2l index covers both) using logical
// (index-based) addressing.
func (q *Query) processPackLogical(ctx context.Context, base RevNum) error {
	if err := q.processShardLogical(ctx, base, q.shardSize); err != nil {
		return err
	}
	return q.notifyProgress(ctx, base)
}

// processRevLogical reads the single unpacked revision rev using
// logical addressing.
func (q *Query) processRevLogical(ctx context.Context, rev RevNum) error {
	if err := q.checkCancel(ctx); err != nil {
		return err
	}
	if err := q.processShardLogical(ctx, rev, 1); err != nil {
		return err
	}
	return q.notifyUnpackedProgress(ctx, rev)
}

// processShardLogical walks a shard of count consecutive revisions
// starting at base through its p2l index, dispatching each entry to
// the node-revision parser or the changed-paths counter.
func (q *Query) processShardLogical(ctx context.Context, base RevNum, count int) error {
	ctx, span := tracer.Start(ctx, "processShardLogical")
	defer span.End()

	for i := 0; i < count; i++ {
		q.Revisions[base+RevNum(i)] = &RevisionInfo{Revision: base + RevNum(i)}
	}

	fh, err := q.store.OpenPackOrRev(ctx, base)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: opening shard at r%d", base)
	}
	defer fh.Close()

	appctx.GetLogger(ctx).Debug().Int64("base_revision", int64(base)).Msg("opened shard for logical walk")

	pageSize, err := q.store.P2LPageSize(ctx)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: reading p2l page size")
	}

	maxOffset, err := q.store.P2LMaxOffset(ctx, fh, base)
	if err != nil {
		return errors.Wrapf(err, "revisionstats: reading p2l max offset for r%d", base)
	}
	q.Revisions[base].End = maxOffset

	var offset ByteOffset
	lastRev := RevNum(-1)
	for offset < maxOffset {
		if err := q.checkCancel(ctx); err != nil {
			return err
		}

		entries, err := q.store.P2LIndexLookup(ctx, fh, base, offset, pageSize)
		if err != nil {
			return errors.Wrapf(err, "revisionstats: p2l lookup at offset %d", offset)
		}

		for _, e := range entries {
			if e.Offset < offset || e.Size == 0 {
				continue
			}
			// poll once more whenever the walk reaches another revision
			if e.Item.Revision != lastRev {
				if err := q.checkCancel(ctx); err != nil {
					return err
				}
				lastRev = e.Item.Revision
			}
			if int64(e.Offset)+e.Size > int64(maxOffset) {
				return IndexInconsistent("p2l entry extends beyond the shard's indexed range")
			}

			switch e.Type {
			case ItemTypeNodeRev:
				info := q.revisionInfo(e.Item.Revision)
				if info == nil {
					return IndexInconsistent("p2l entry names an unknown revision")
				}
				data := make([]byte, e.Size)
				if err := readFull(fh, data, int64(e.Offset)); err != nil {
					return errors.Wrapf(err, "revisionstats: reading node-revision item at offset %d", e.Offset)
				}
				if err := q.parseNodeRev(ctx, data, 0, info, false); err != nil {
					return err
				}
			case ItemTypeChanges:
				info := q.revisionInfo(e.Item.Revision)
				if info == nil {
					return IndexInconsistent("p2l entry names an unknown revision")
				}
				data := make([]byte, e.Size)
				if err := readFull(fh, data, int64(e.Offset)); err != nil {
					return errors.Wrapf(err, "revisionstats: reading changes item at offset %d", e.Offset)
				}
				info.ChangeCount = getChangeCount(data)
				info.ChangesLen += e.Size
			default:
				// unknown item types are skipped without error
			}

			offset = e.Offset + ByteOffset(e.Size)
		}
	}

	return nil
}
