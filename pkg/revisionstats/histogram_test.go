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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cs3org/revfsstats/pkg/revisionstats"
)

func TestBucketForLaw(t *testing.T) {
	cases := []struct {
		size int64
		want int
	}{
		{0, 0},
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 3},
		{7, 3},
		{8, 4},
		{15, 4},
		{16, 5},
	}
	for _, c := range cases {
		require.Equalf(t, c.want, revisionstats.BucketFor(c.size), "size=%d", c.size)
	}
}

func TestHistogramAddAccumulatesBucketAndTotal(t *testing.T) {
	var h revisionstats.Histogram
	h.Add(0)
	h.Add(10)
	h.Add(10)

	require.Equal(t, int64(1), h.Buckets[0].Count)
	require.Equal(t, int64(0), h.Buckets[0].Sum)
	require.Equal(t, int64(2), h.Buckets[revisionstats.BucketFor(10)].Count)
	require.Equal(t, int64(20), h.Buckets[revisionstats.BucketFor(10)].Sum)

	require.Equal(t, int64(3), h.Total.Count)
	require.Equal(t, int64(20), h.Total.Sum)
}

func TestHistogramTotalsMatchBucketSums(t *testing.T) {
	var h revisionstats.Histogram
	sizes := []int64{0, 1, 2, 5, 13, 100, 1000, 1 << 20}
	for _, s := range sizes {
		h.Add(s)
	}

	var count, sum int64
	for _, b := range h.Buckets {
		count += b.Count
		sum += b.Sum
	}
	require.Equal(t, h.Total.Count, count)
	require.Equal(t, h.Total.Sum, sum)
}
