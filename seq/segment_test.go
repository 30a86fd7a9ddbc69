// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// segment_test.go — invariants of the segment node.
package seq

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/fake"
)

func TestSegmentConfigureDefaults(t *testing.T) {
	s := &segment{runningIndex: 99, next: &segment{}}
	block := make([]byte, 8)
	s.configure(block, 0, 0)
	if s.start != 0 || s.end != 0 || s.runningIndex != 0 || s.next != nil {
		t.Errorf("configure left state: start=%d end=%d ri=%d next=%v",
			s.start, s.end, s.runningIndex, s.next)
	}
	if s.length() != 0 || s.writable() != 8 {
		t.Errorf("length=%d writable=%d, want 0/8", s.length(), s.writable())
	}
}

func TestSegmentGrowAndTrim(t *testing.T) {
	s := &segment{}
	s.configure(make([]byte, 4), 0, 0)

	if err := s.grow(3); err != nil {
		t.Fatal(err)
	}
	if s.length() != 3 || s.writable() != 1 {
		t.Errorf("length=%d writable=%d, want 3/1", s.length(), s.writable())
	}
	if err := s.grow(5); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("grow past capacity = %v, want out of range", err)
	}

	if err := s.trim(2); err != nil {
		t.Fatal(err)
	}
	if s.length() != 1 {
		t.Errorf("length = %d after trim, want 1", s.length())
	}
	if err := s.trim(4); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("trim past end = %v, want out of range", err)
	}
}

func TestSegmentTrailingAliasesBlock(t *testing.T) {
	s := &segment{}
	s.configure(make([]byte, 8), 0, 0)

	copy(s.trailing(), "abcd")
	if err := s.grow(4); err != nil {
		t.Fatal(err)
	}
	if got := string(s.block[s.start:s.end]); got != "abcd" {
		t.Errorf("active window = %q, want abcd", got)
	}
	if len(s.trailing()) != 4 {
		t.Errorf("trailing = %d, want 4", len(s.trailing()))
	}
}

func TestSegmentLinkStampsRunningIndex(t *testing.T) {
	a := &segment{}
	a.configure(make([]byte, 8), 0, 0)
	if err := a.grow(5); err != nil {
		t.Fatal(err)
	}
	a.runningIndex = 100

	b := &segment{}
	b.configure(make([]byte, 8), 0, 0)
	a.link(b)
	if a.next != b {
		t.Error("link did not set next")
	}
	if b.runningIndex != 105 {
		t.Errorf("runningIndex = %d, want 105", b.runningIndex)
	}
}

func TestSegmentReleaseClearsAndReturns(t *testing.T) {
	fa := fake.NewAllocator()
	s := &segment{}
	s.configure(fa.Lease(16), 0, 0)
	if err := s.grow(10); err != nil {
		t.Fatal(err)
	}
	s.runningIndex = 7
	s.next = &segment{}

	s.release(fa)
	if fa.ReleaseCount() != 1 {
		t.Errorf("ReleaseCount = %d, want 1", fa.ReleaseCount())
	}
	if s.block != nil || s.start != 0 || s.end != 0 || s.runningIndex != 0 || s.next != nil {
		t.Error("release left residual state")
	}

	// A released node carries no block; releasing again must not
	// double-return to the allocator.
	s.release(fa)
	if fa.ReleaseCount() != 1 {
		t.Errorf("ReleaseCount = %d after second release, want 1", fa.ReleaseCount())
	}
}
