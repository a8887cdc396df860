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

// histogramBuckets mirrors stats.c's fixed bucket count: enough to
// cover sizes up to 2^63 without ever needing to grow.
const histogramBuckets = 64

// Bucket accumulates a count and a sum of sizes.
type Bucket struct {
	Count int64
	Sum   int64
}

// Histogram is a fixed set of geometrically-spaced buckets plus a
// running total across all of them.
type Histogram struct {
	Buckets [histogramBuckets]Bucket
	Total   Bucket
}

// BucketFor returns the bucket index for size: the smallest k such
// that 2^k > size. size must be non-negative.
func BucketFor(size int64) int {
	k := 0
	for k < histogramBuckets-1 && (int64(1)<<uint(k)) <= size {
		k++
	}
	return k
}

// Add records one occurrence of size in its bucket and in Total.
func (h *Histogram) Add(size int64) {
	k := BucketFor(size)
	h.Buckets[k].Count++
	h.Buckets[k].Sum += size
	h.Total.Count++
	h.Total.Sum += size
}
