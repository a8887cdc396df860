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

import "context"

// aggregate collapses the per-revision accumulators built up while
// parsing into the final Stats. It runs exactly once, after every
// revision has been read; nothing here can fail.
func (q *Query) aggregate(ctx context.Context) {
	_, span := tracer.Start(ctx, "aggregate")
	defer span.End()

	stats := q.stats
	stats.RevisionCount = int64(len(q.Revisions))

	for _, info := range q.Revisions {
		if info == nil {
			continue
		}
		// Parsing released this well before aggregation; make sure
		// no live handle outlives the run regardless.
		info.file = nil

		stats.ChangeCount += info.ChangeCount
		stats.ChangeLen += info.ChangesLen
		stats.TotalSize += int64(info.End - info.Offset)

		stats.DirNodeStats.Count += info.DirNoderevCount
		stats.DirNodeStats.Size += info.DirNoderevSize
		stats.FileNodeStats.Count += info.FileNoderevCount
		stats.FileNodeStats.Size += info.FileNoderevSize

		for _, rep := range info.Representations {
			addRepStats(&stats.TotalRepStats, rep)
			switch rep.Kind {
			case Directory:
				addRepStats(&stats.DirRepStats, rep)
			case File:
				addRepStats(&stats.FileRepStats, rep)
			case DirProperty:
				addRepStats(&stats.DirPropRepStats, rep)
			case FileProperty:
				addRepStats(&stats.FilePropRepStats, rep)
			case Unused:
				// Counted in TotalRepStats only: a rep that was
				// never reached by a node-revision has no kind
				// bucket of its own.
			}
		}
	}

	stats.TotalNodeStats.Count = stats.DirNodeStats.Count + stats.FileNodeStats.Count
	stats.TotalNodeStats.Size = stats.DirNodeStats.Size + stats.FileNodeStats.Size
}
