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

// defaultLargestChangesCapacity mirrors stats.c's hard-coded top-N
// capacity for the largest-changes list.
const defaultLargestChangesCapacity = 64

// ProgressFunc is invoked as the traversal crosses a pack/shard
// boundary (and periodically while walking unpacked revisions) with
// the revision reached so far. Returning a non-nil error aborts the
// traversal exactly like a cancellation.
type ProgressFunc func(ctx context.Context, revision RevNum, baton interface{}) error

// CancelFunc is polled at least once per revision and at least once
// per logical-index block. A well-behaved callback returns promptly;
// a non-nil error aborts the traversal with Cancelled.
type CancelFunc func(ctx context.Context) error

// Options configures a GetStats run. The zero value is usable: New
// fills in the capacity default, and nil callbacks are simply never
// invoked.
type Options struct {
	// LargestChangesCapacity bounds Stats.LargestChanges. Defaults to
	// 64 when zero.
	LargestChangesCapacity int

	// ProgressFunc and ProgressBaton are kept as two separate fields
	// deliberately: the reference implementation passes progress_func
	// as its own baton, which the spec identifies as almost certainly
	// a bug. ProgressBaton carries whatever the caller wants without
	// that confusion.
	ProgressFunc  ProgressFunc
	ProgressBaton interface{}

	CancelFunc CancelFunc
}

// New returns Options with defaults applied.
func New() Options {
	return Options{LargestChangesCapacity: defaultLargestChangesCapacity}
}

func (o Options) withDefaults() Options {
	if o.LargestChangesCapacity <= 0 {
		o.LargestChangesCapacity = defaultLargestChangesCapacity
	}
	return o
}
