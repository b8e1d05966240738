package benchmark

import (
	"io"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/philipp01105/ntrace/core"
	"github.com/philipp01105/ntrace/handler"
	"github.com/philipp01105/ntrace/handler/consolehandler"
	"github.com/philipp01105/ntrace/handler/filehandler"
	"github.com/philipp01105/ntrace/handler/multihandler"
	"github.com/philipp01105/ntrace/tracer"
)

var sinkLevel core.Level

func newConsoleTracer(level core.Level) *tracer.Tracer {
	return tracer.NewBuilder().
		WithConsole(consolehandler.RawWriter(io.Discard)).
		WithLevel(level).
		WithProgramName("bench").
		Build()
}

func newDestinationTracer(level core.Level) (*tracer.Tracer, *noopDestination) {
	dest := newNoopDestination()
	t := tracer.NewBuilder().
		WithDestination(dest).
		WithLevel(level).
		WithProgramName("bench").
		Build()
	return t, dest
}

func BenchmarkTracerCreation(b *testing.B) {
	dest := newNoopDestination()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = tracer.NewBuilder().
			WithDestination(dest).
			WithProgramName("bench").
			Build()
	}
}

func BenchmarkShowMessage(b *testing.B) {
	b.Run("Console", func(b *testing.B) {
		t := newConsoleTracer(core.LevelReports)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.ShowMessage("mounted share", "smbfs.c", 120)
		}
	})

	b.Run("Destination", func(b *testing.B) {
		t, dest := newDestinationTracer(core.LevelReports)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.ShowMessage("mounted share", "smbfs.c", 120)
		}
		b.StopTimer()
		if dest.syncs.Load() < uint64(b.N) {
			b.Fatalf("Expected a sync per line, got %d for %d lines", dest.syncs.Load(), b.N)
		}
	})

	b.Run("Filtered", func(b *testing.B) {
		t, dest := newDestinationTracer(core.LevelAssertions)
		b.ResetTimer()
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.ShowMessage("mounted share", "smbfs.c", 120)
		}
		b.StopTimer()
		if dest.bytes.Load() != 0 {
			b.Fatal("Filtered lines must not be written")
		}
	})
}

func BenchmarkInspectors(b *testing.B) {
	t, _ := newDestinationTracer(core.LevelReports)
	s := "//server/share"
	p := &s

	b.Run("Value", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.ShowValue(uint32(i), 4, "count", "smbfs.c", 130)
		}
	})

	b.Run("Pointer", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.ShowPointer(p, "share", "smbfs.c", 131)
		}
	})

	b.Run("String", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.ShowString(p, "share", "smbfs.c", 132)
		}
	})

	b.Run("HeaderPrintf", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.Header("smbfs.c", 133)
			t.Printf("read %d bytes", i)
		}
	})
}

func BenchmarkEnterLeave(b *testing.B) {
	b.Run("Explicit", func(b *testing.B) {
		t, _ := newDestinationTracer(core.LevelCallTracing)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.Enter("smbfs.c", 100, "mount")
			t.LeaveWithResult("smbfs.c", 140, "mount", 0)
		}
	})

	b.Run("Deferred", func(b *testing.B) {
		t, _ := newDestinationTracer(core.LevelCallTracing)
		traced := func() {
			defer t.Trace()()
		}
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			traced()
		}
	})

	b.Run("BelowLevel", func(b *testing.B) {
		t, _ := newDestinationTracer(core.LevelReports)
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			t.Enter("smbfs.c", 100, "mount")
			t.Leave("smbfs.c", 140, "mount")
		}
	})
}

func BenchmarkPushPopLevel(b *testing.B) {
	t := newConsoleTracer(core.LevelCallTracing)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t.PushLevel(core.LevelAssertions)
		t.PopLevel()
	}
	sinkLevel = t.Level()
}

func BenchmarkMultiDestination(b *testing.B) {
	for _, n := range []int{1, 2, 4} {
		b.Run(strconv.Itoa(n), func(b *testing.B) {
			dests := make([]handler.Destination, n)
			for i := range dests {
				dests[i] = newNoopDestination()
			}
			t := tracer.NewBuilder().
				WithDestination(multihandler.NewMultiDestination(dests...)).
				WithLevel(core.LevelReports).
				Build()

			b.ResetTimer()
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				t.ShowMessage("mounted share", "smbfs.c", 120)
			}
		})
	}
}

func BenchmarkFileDestination(b *testing.B) {
	f, err := filehandler.Open(filehandler.FileConfig{
		Filename:   filepath.Join(b.TempDir(), "bench.log"),
		BufferSize: 64 * 1024,
	})
	if err != nil {
		b.Fatal(err)
	}
	defer f.Close()

	t := tracer.NewBuilder().
		WithDestination(f).
		WithLevel(core.LevelReports).
		Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		t.ShowValue(uint32(i), 4, "count", "smbfs.c", 130)
	}
}
