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

// Query owns everything a single GetStats run accumulates: the
// filesystem collaborator, the per-revision array, and the Stats
// result being built up. It is not meant to be reused across runs and
// is never accessed concurrently.
type Query struct {
	store RevisionStore
	opts  Options

	shardSize int

	// Revisions is indexed by RevNum; entries are allocated as the
	// traversal reaches each revision (physical mode) or each shard
	// (logical mode, up front).
	Revisions []*RevisionInfo

	stats *Stats
}

// GetStats walks every revision of store, physical or logical
// addressing alike, and returns the aggregated Stats. No partial
// result is ever returned: any error — corrupt data, I/O failure,
// cancellation, or an inconsistent logical index — aborts the whole
// run.
func GetStats(ctx context.Context, store RevisionStore, opts Options) (*Stats, error) {
	ctx, span := tracer.Start(ctx, "GetStats")
	defer span.End()

	opts = opts.withDefaults()

	youngest, err := store.YoungestRevision(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "revisionstats: reading youngest revision")
	}
	minUnpacked, err := store.MinUnpackedRevision(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "revisionstats: reading min unpacked revision")
	}
	shardSize, err := store.ShardSize(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "revisionstats: reading shard size")
	}
	logical, err := store.UseLogicalAddressing(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "revisionstats: reading addressing mode")
	}

	appctx.GetLogger(ctx).Debug().
		Int64("youngest_revision", int64(youngest)).
		Int64("min_unpacked_revision", int64(minUnpacked)).
		Int("shard_size", shardSize).
		Bool("logical_addressing", logical).
		Msg("starting revision-file stats traversal")

	q := &Query{
		store:     store,
		opts:      opts,
		shardSize: shardSize,
		Revisions: make([]*RevisionInfo, youngest+1),
		stats:     newStats(opts.LargestChangesCapacity),
	}

	if shardSize > 0 {
		for base := RevNum(0); base < minUnpacked; base += RevNum(shardSize) {
			var perr error
			if logical {
				perr = q.processPackLogical(ctx, base)
			} else {
				perr = q.processPackPhysical(ctx, base)
			}
			if perr != nil {
				return nil, perr
			}
		}
	}

	for rev := minUnpacked; rev <= youngest; rev++ {
		var perr error
		if logical {
			perr = q.processRevLogical(ctx, rev)
		} else {
			perr = q.processRevPhysical(ctx, rev)
		}
		if perr != nil {
			return nil, perr
		}
	}

	q.aggregate(ctx)
	return q.stats, nil
}

// checkCancel polls the caller's CancelFunc, if any. Per spec this
// happens at the top of every revision, at the top of every logical
// index block, and between pack-file revisions.
func (q *Query) checkCancel(ctx context.Context) error {
	if q.opts.CancelFunc == nil {
		return nil
	}
	if err := q.opts.CancelFunc(ctx); err != nil {
		return Cancelled(err.Error())
	}
	return nil
}

// notifyProgress reports that the traversal has reached revision,
// used at pack/shard boundaries. A returned error is treated as a
// cancellation, per spec §7 ("the progress callback's own errors are
// surfaced; they count as cancellation").
func (q *Query) notifyProgress(ctx context.Context, revision RevNum) error {
	if q.opts.ProgressFunc == nil {
		return nil
	}
	if err := q.opts.ProgressFunc(ctx, revision, q.opts.ProgressBaton); err != nil {
		return Cancelled(err.Error())
	}
	return nil
}

// notifyUnpackedProgress reports progress while walking unpacked
// revisions one at a time: every shardSize revisions if the
// repository is sharded, else every 1000.
func (q *Query) notifyUnpackedProgress(ctx context.Context, revision RevNum) error {
	interval := q.shardSize
	if interval <= 0 {
		interval = 1000
	}
	if int64(revision)%int64(interval) != 0 {
		return nil
	}
	return q.notifyProgress(ctx, revision)
}
