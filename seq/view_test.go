// Copyright 2025 momentics@gmail.com
// Licensed under the Apache License, Version 2.0.

// view_test.go — zero-copy view semantics: chunk walking, positions,
// generation-based invalidation.
package seq_test

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-buf/api"
	"github.com/momentics/hioload-buf/fake"
	"github.com/momentics/hioload-buf/seq"
)

func TestViewChunkOffsets(t *testing.T) {
	s, _ := seq.New(fake.NewAllocator())
	write(t, s, []byte("AB"))
	write(t, s, []byte("CDE"))
	write(t, s, []byte("F"))

	v := s.View()
	var (
		nextOff int64
		total   int64
		chunks  int
	)
	err := v.Chunks(func(off int64, chunk []byte) bool {
		if off != nextOff {
			t.Errorf("chunk %d: offset %d, want %d", chunks, off, nextOff)
		}
		nextOff = off + int64(len(chunk))
		total += int64(len(chunk))
		chunks++
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	if chunks != 3 {
		t.Errorf("chunks = %d, want 3", chunks)
	}
	if total != v.Len() {
		t.Errorf("chunk total = %d, want %d", total, v.Len())
	}
}

func TestViewChunksEarlyStop(t *testing.T) {
	s, _ := seq.New(fake.NewAllocator())
	write(t, s, []byte("AB"))
	write(t, s, []byte("CD"))

	seen := 0
	err := s.View().Chunks(func(_ int64, _ []byte) bool {
		seen++
		return false
	})
	if err != nil {
		t.Fatal(err)
	}
	if seen != 1 {
		t.Errorf("chunks seen = %d, want 1", seen)
	}
}

func TestViewOffsetsSurviveConsume(t *testing.T) {
	fa := &fake.Allocator{NominalCap: 4}
	s, _ := seq.New(fa)
	write(t, s, []byte("ABCD"))
	write(t, s, []byte("EFGH"))

	pos, err := s.View().Seek(6)
	if err != nil {
		t.Fatal(err)
	}
	if err := s.ConsumeTo(pos); err != nil {
		t.Fatal(err)
	}

	// Running offsets are absolute: the remaining data still reports
	// its original position.
	err = s.View().Chunks(func(off int64, chunk []byte) bool {
		if off != 6 {
			t.Errorf("offset = %d, want 6", off)
		}
		if string(chunk) != "GH" {
			t.Errorf("chunk = %q, want GH", chunk)
		}
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestStaleViewFailsFast(t *testing.T) {
	s, _ := seq.New(fake.NewAllocator())
	write(t, s, []byte("payload"))

	v := s.View()
	s.Reset()

	if err := v.Chunks(func(int64, []byte) bool { return true }); !errors.Is(err, api.ErrStaleView) {
		t.Errorf("Chunks on stale view = %v, want stale view", err)
	}
	if _, err := v.Copy(); !errors.Is(err, api.ErrStaleView) {
		t.Errorf("Copy on stale view = %v, want stale view", err)
	}
	if _, err := v.Seek(0); !errors.Is(err, api.ErrStaleView) {
		t.Errorf("Seek on stale view = %v, want stale view", err)
	}
}

func TestConsumeInvalidatesView(t *testing.T) {
	s, _ := seq.New(fake.NewAllocator())
	write(t, s, []byte("one"))
	write(t, s, []byte("two"))

	v := s.View()
	if err := s.ConsumeTo(v.End()); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Copy(); !errors.Is(err, api.ErrStaleView) {
		t.Errorf("view survived ConsumeTo: %v", err)
	}
}

func TestTailReplacementInvalidatesView(t *testing.T) {
	fa := &fake.Allocator{NominalCap: 4}
	s, _ := seq.New(fa)
	write(t, s, []byte("XY"))
	if _, err := s.RequestWritable(10); err != nil {
		t.Fatal(err)
	}

	v := s.View() // spans the zero-length tail about to be replaced
	if _, err := s.RequestWritable(20); err != nil {
		t.Fatal(err)
	}
	if _, err := v.Copy(); !errors.Is(err, api.ErrStaleView) {
		t.Errorf("view survived tail replacement: %v", err)
	}
}

func TestCommitKeepsViewValid(t *testing.T) {
	s, _ := seq.New(fake.NewAllocator())
	write(t, s, []byte("before"))

	v := s.View()
	write(t, s, []byte("after"))

	// The view is a snapshot: still valid, still the old range.
	got, err := v.Copy()
	if err != nil {
		t.Fatalf("view invalidated by commit: %v", err)
	}
	if string(got) != "before" {
		t.Errorf("view = %q, want before", got)
	}
	if full, _ := s.View().Copy(); string(full) != "beforeafter" {
		t.Errorf("full view = %q, want beforeafter", full)
	}
}

func TestSeekBoundaries(t *testing.T) {
	fa := &fake.Allocator{NominalCap: 4}
	s, _ := seq.New(fa)
	write(t, s, []byte("ABCD"))
	write(t, s, []byte("EFGH"))

	v := s.View()
	start, err := v.Seek(0)
	if err != nil {
		t.Fatal(err)
	}
	if start != v.Start() {
		t.Error("Seek(0) != Start()")
	}
	end, err := v.Seek(v.Len())
	if err != nil {
		t.Fatal(err)
	}
	if end != v.End() {
		t.Error("Seek(Len) != End()")
	}

	// A boundary offset names the start of the following segment, so
	// consuming to it drains the first segment completely.
	boundary, err := v.Seek(4)
	if err != nil {
		t.Fatal(err)
	}
	if boundary == end || boundary == start {
		t.Error("boundary position collides with view ends")
	}
	if err := s.ConsumeTo(boundary); err != nil {
		t.Fatal(err)
	}
	if s.SegmentCount() != 1 || s.Len() != 4 {
		t.Errorf("after boundary consume: %d segments, len %d", s.SegmentCount(), s.Len())
	}

	v = s.View()
	if _, err := v.Seek(-1); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("Seek(-1) = %v, want out of range", err)
	}
	if _, err := v.Seek(v.Len() + 1); !errors.Is(err, api.ErrOutOfRange) {
		t.Errorf("Seek(Len+1) = %v, want out of range", err)
	}
}

func TestEmptyView(t *testing.T) {
	s, _ := seq.New(fake.NewAllocator())
	v := s.View()
	if !v.Empty() || v.Len() != 0 {
		t.Errorf("empty sequence view: Empty=%v Len=%d", v.Empty(), v.Len())
	}
	if got, err := v.Copy(); err != nil || len(got) != 0 {
		t.Errorf("Copy = %q, %v", got, err)
	}
	calls := 0
	if err := v.Chunks(func(int64, []byte) bool { calls++; return true }); err != nil {
		t.Fatal(err)
	}
	if calls != 0 {
		t.Errorf("chunks on empty view = %d", calls)
	}
	if err := s.ConsumeTo(v.End()); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("ConsumeTo(empty End) = %v, want invalid argument", err)
	}
}
