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
	"sort"

	"github.com/pkg/errors"

	"github.com/cs3org/revfsstats/pkg/appctx"
)

// revisionInfo returns the RevisionInfo already allocated for rev.
// Every revision a representation can legally reference has been
// allocated by the time intern looks it up: physical mode allocates
// a revision's RevisionInfo before parsing its reps, logical mode
// pre-allocates the whole shard up front.
func (q *Query) revisionInfo(rev RevNum) *RevisionInfo {
	if rev < 0 || int(rev) >= len(q.Revisions) {
		return nil
	}
	return q.Revisions[rev]
}

// intern finds the Rep identified by loc, creating it on first
// sighting. data is the byte buffer of the revision currently being
// parsed; it is only consulted (for the rep's header) when loc names
// a representation that physically lives in that same revision,
// which holds for every rep intern sees on first sighting: an
// already-known rep is found by (revision, offset) alone without
// touching data again.
func (q *Query) intern(ctx context.Context, loc RepLocator, current *RevisionInfo, data []byte, physical bool) (*Rep, error) {
	target := current
	if target == nil || target.Revision != loc.Revision {
		target = q.revisionInfo(loc.Revision)
	}
	if target == nil {
		return nil, errors.Errorf("revisionstats: representation at offset %d refers to unknown revision %d", loc.ItemIndex, loc.Revision)
	}

	reps := target.Representations
	idx := sort.Search(len(reps), func(i int) bool { return reps[i].Offset >= loc.ItemIndex })
	if idx < len(reps) && reps[idx].Offset == loc.ItemIndex {
		return reps[idx], nil
	}

	expanded := loc.ExpandedSize
	if expanded == 0 {
		expanded = loc.Size
	}
	rep := &Rep{
		Offset:       loc.ItemIndex,
		Size:         loc.Size,
		ExpandedSize: expanded,
		Revision:     loc.Revision,
	}

	if physical {
		hdr, err := q.store.ReadRepHeader(ctx, data, int(loc.ItemIndex))
		if err != nil {
			return nil, errors.Wrapf(err, "revisionstats: reading representation header at offset %d in r%d", loc.ItemIndex, loc.Revision)
		}
		rep.HeaderSize = hdr.HeaderSize
		if hdr.HasBase {
			if _, err := q.intern(ctx, RepLocator{Revision: hdr.BaseRev, ItemIndex: hdr.BaseOffset}, nil, nil, false); err != nil {
				appctx.GetLogger(ctx).Warn().Err(err).
					Int64("base_revision", int64(hdr.BaseRev)).
					Msg("could not resolve delta base representation; leaving unused")
			}
		}
	}

	target.Representations = append(target.Representations, nil)
	copy(target.Representations[idx+1:], target.Representations[idx:])
	target.Representations[idx] = rep
	return rep, nil
}
