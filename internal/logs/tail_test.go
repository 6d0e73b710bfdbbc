package logs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"blackbeard/internal/logs"
)

func writeLog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blackbeard.log")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}
	return path
}

func TestTailMissingFileIsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.log")
	result, err := logs.Tail(context.Background(), path, logs.TailOptions{Offset: -1, Limit: 10})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(result.Lines) != 0 || result.Offset != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestTailLastLines(t *testing.T) {
	path := writeLog(t, "one\ntwo\nthree\nfour\n")

	result, err := logs.Tail(context.Background(), path, logs.TailOptions{Offset: -1, Limit: 2})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(result.Lines) != 2 || result.Lines[0] != "three" || result.Lines[1] != "four" {
		t.Fatalf("unexpected lines: %v", result.Lines)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if result.Offset != info.Size() {
		t.Fatalf("offset = %d, want file size %d", result.Offset, info.Size())
	}
}

func TestTailLastLinesFewerThanLimit(t *testing.T) {
	path := writeLog(t, "only\n")
	result, err := logs.Tail(context.Background(), path, logs.TailOptions{Offset: -1, Limit: 10})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(result.Lines) != 1 || result.Lines[0] != "only" {
		t.Fatalf("unexpected lines: %v", result.Lines)
	}
}

func TestTailReadsForwardFromOffset(t *testing.T) {
	path := writeLog(t, "one\ntwo\n")

	first, err := logs.Tail(context.Background(), path, logs.TailOptions{Offset: 0})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(first.Lines) != 2 {
		t.Fatalf("unexpected lines: %v", first.Lines)
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if _, err := f.WriteString("three\n"); err != nil {
		t.Fatalf("append: %v", err)
	}
	f.Close()

	second, err := logs.Tail(context.Background(), path, logs.TailOptions{Offset: first.Offset})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(second.Lines) != 1 || second.Lines[0] != "three" {
		t.Fatalf("unexpected lines: %v", second.Lines)
	}
	if second.Offset <= first.Offset {
		t.Fatalf("offset did not advance: %d -> %d", first.Offset, second.Offset)
	}
}

func TestTailClampsOffsetAfterTruncate(t *testing.T) {
	path := writeLog(t, "short\n")
	result, err := logs.Tail(context.Background(), path, logs.TailOptions{Offset: 10_000})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(result.Lines) != 0 {
		t.Fatalf("unexpected lines: %v", result.Lines)
	}
	info, _ := os.Stat(path)
	if result.Offset != info.Size() {
		t.Fatalf("offset = %d, want clamp to %d", result.Offset, info.Size())
	}
}

func TestTailFollowPicksUpNewLines(t *testing.T) {
	path := writeLog(t, "")

	go func() {
		time.Sleep(400 * time.Millisecond)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return
		}
		defer f.Close()
		_, _ = f.WriteString("late line\n")
	}()

	result, err := logs.Tail(context.Background(), path, logs.TailOptions{
		Offset: 0,
		Follow: true,
		Wait:   3 * time.Second,
	})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(result.Lines) != 1 || result.Lines[0] != "late line" {
		t.Fatalf("unexpected lines: %v", result.Lines)
	}
}

func TestTailFollowReturnsAfterWait(t *testing.T) {
	path := writeLog(t, "")
	start := time.Now()
	result, err := logs.Tail(context.Background(), path, logs.TailOptions{
		Offset: 0,
		Follow: true,
		Wait:   300 * time.Millisecond,
	})
	if err != nil {
		t.Fatalf("tail: %v", err)
	}
	if len(result.Lines) != 0 {
		t.Fatalf("unexpected lines: %v", result.Lines)
	}
	if elapsed := time.Since(start); elapsed > 2*time.Second {
		t.Fatalf("follow blocked for %v", elapsed)
	}
}
