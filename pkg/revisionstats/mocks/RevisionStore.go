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

// This mock follows the shape of mockery v1.0.0 output; it is
// maintained by hand.

package mocks

import (
	context "context"

	mock "github.com/stretchr/testify/mock"

	revisionstats "github.com/cs3org/revfsstats/pkg/revisionstats"
)

// RevisionStore is an autogenerated mock type for the RevisionStore type
type RevisionStore struct {
	mock.Mock
}

// YoungestRevision provides a mock function with given fields: ctx
func (_m *RevisionStore) YoungestRevision(ctx context.Context) (revisionstats.RevNum, error) {
	ret := _m.Called(ctx)

	var r0 revisionstats.RevNum
	if rf, ok := ret.Get(0).(func(context.Context) revisionstats.RevNum); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(revisionstats.RevNum)
	}

	return r0, ret.Error(1)
}

// MinUnpackedRevision provides a mock function with given fields: ctx
func (_m *RevisionStore) MinUnpackedRevision(ctx context.Context) (revisionstats.RevNum, error) {
	ret := _m.Called(ctx)

	var r0 revisionstats.RevNum
	if rf, ok := ret.Get(0).(func(context.Context) revisionstats.RevNum); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(revisionstats.RevNum)
	}

	return r0, ret.Error(1)
}

// ShardSize provides a mock function with given fields: ctx
func (_m *RevisionStore) ShardSize(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context) int); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0, ret.Error(1)
}

// UseLogicalAddressing provides a mock function with given fields: ctx
func (_m *RevisionStore) UseLogicalAddressing(ctx context.Context) (bool, error) {
	ret := _m.Called(ctx)

	var r0 bool
	if rf, ok := ret.Get(0).(func(context.Context) bool); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(bool)
	}

	return r0, ret.Error(1)
}

// OpenPackOrRev provides a mock function with given fields: ctx, rev
func (_m *RevisionStore) OpenPackOrRev(ctx context.Context, rev revisionstats.RevNum) (revisionstats.FileHandle, error) {
	ret := _m.Called(ctx, rev)

	var r0 revisionstats.FileHandle
	if rf, ok := ret.Get(0).(func(context.Context, revisionstats.RevNum) revisionstats.FileHandle); ok {
		r0 = rf(ctx, rev)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(revisionstats.FileHandle)
	}

	return r0, ret.Error(1)
}

// PackedOffset provides a mock function with given fields: ctx, rev
func (_m *RevisionStore) PackedOffset(ctx context.Context, rev revisionstats.RevNum) (revisionstats.ByteOffset, error) {
	ret := _m.Called(ctx, rev)

	var r0 revisionstats.ByteOffset
	if rf, ok := ret.Get(0).(func(context.Context, revisionstats.RevNum) revisionstats.ByteOffset); ok {
		r0 = rf(ctx, rev)
	} else {
		r0 = ret.Get(0).(revisionstats.ByteOffset)
	}

	return r0, ret.Error(1)
}

// ReadRepHeader provides a mock function with given fields: ctx, data, offset
func (_m *RevisionStore) ReadRepHeader(ctx context.Context, data []byte, offset int) (revisionstats.RepHeader, error) {
	ret := _m.Called(ctx, data, offset)

	var r0 revisionstats.RepHeader
	if rf, ok := ret.Get(0).(func(context.Context, []byte, int) revisionstats.RepHeader); ok {
		r0 = rf(ctx, data, offset)
	} else {
		r0 = ret.Get(0).(revisionstats.RepHeader)
	}

	return r0, ret.Error(1)
}

// ReadNodeRev provides a mock function with given fields: ctx, data, offset
func (_m *RevisionStore) ReadNodeRev(ctx context.Context, data []byte, offset int) (*revisionstats.NodeRev, int, error) {
	ret := _m.Called(ctx, data, offset)

	var r0 *revisionstats.NodeRev
	if rf, ok := ret.Get(0).(func(context.Context, []byte, int) *revisionstats.NodeRev); ok {
		r0 = rf(ctx, data, offset)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).(*revisionstats.NodeRev)
	}

	var r1 int
	if rf, ok := ret.Get(1).(func(context.Context, []byte, int) int); ok {
		r1 = rf(ctx, data, offset)
	} else {
		r1 = ret.Get(1).(int)
	}

	return r0, r1, ret.Error(2)
}

// RepContentsDir provides a mock function with given fields: ctx, fh, nr
func (_m *RevisionStore) RepContentsDir(ctx context.Context, fh revisionstats.FileHandle, nr *revisionstats.NodeRev) ([]revisionstats.DirEntry, error) {
	ret := _m.Called(ctx, fh, nr)

	var r0 []revisionstats.DirEntry
	if rf, ok := ret.Get(0).(func(context.Context, revisionstats.FileHandle, *revisionstats.NodeRev) []revisionstats.DirEntry); ok {
		r0 = rf(ctx, fh, nr)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]revisionstats.DirEntry)
	}

	return r0, ret.Error(1)
}

// P2LPageSize provides a mock function with given fields: ctx
func (_m *RevisionStore) P2LPageSize(ctx context.Context) (int, error) {
	ret := _m.Called(ctx)

	var r0 int
	if rf, ok := ret.Get(0).(func(context.Context) int); ok {
		r0 = rf(ctx)
	} else {
		r0 = ret.Get(0).(int)
	}

	return r0, ret.Error(1)
}

// P2LMaxOffset provides a mock function with given fields: ctx, fh, rev
func (_m *RevisionStore) P2LMaxOffset(ctx context.Context, fh revisionstats.FileHandle, rev revisionstats.RevNum) (revisionstats.ByteOffset, error) {
	ret := _m.Called(ctx, fh, rev)

	var r0 revisionstats.ByteOffset
	if rf, ok := ret.Get(0).(func(context.Context, revisionstats.FileHandle, revisionstats.RevNum) revisionstats.ByteOffset); ok {
		r0 = rf(ctx, fh, rev)
	} else {
		r0 = ret.Get(0).(revisionstats.ByteOffset)
	}

	return r0, ret.Error(1)
}

// P2LIndexLookup provides a mock function with given fields: ctx, fh, rev, offset, pageSize
func (_m *RevisionStore) P2LIndexLookup(ctx context.Context, fh revisionstats.FileHandle, rev revisionstats.RevNum, offset revisionstats.ByteOffset, pageSize int) ([]revisionstats.P2LEntry, error) {
	ret := _m.Called(ctx, fh, rev, offset, pageSize)

	var r0 []revisionstats.P2LEntry
	if rf, ok := ret.Get(0).(func(context.Context, revisionstats.FileHandle, revisionstats.RevNum, revisionstats.ByteOffset, int) []revisionstats.P2LEntry); ok {
		r0 = rf(ctx, fh, rev, offset, pageSize)
	} else if ret.Get(0) != nil {
		r0 = ret.Get(0).([]revisionstats.P2LEntry)
	}

	return r0, ret.Error(1)
}
