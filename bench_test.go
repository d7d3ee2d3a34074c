package picofmt_test

import (
	"testing"

	"github.com/bjaus/picofmt"
)

var benchSink int

func BenchmarkSprintf(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		s := picofmt.Sprintf("dev=%s seq=%05d v=%#06x t=%+d", "uart0", i, i, i)
		benchSink = len(s)
	}
}

func BenchmarkAppendReuse(b *testing.B) {
	buf := make([]byte, 0, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf = picofmt.Append(buf[:0], "dev=%s seq=%05d v=%#06x t=%+d", "uart0", i, i, i)
		benchSink = len(buf)
	}
}

func BenchmarkSnprintf(b *testing.B) {
	buf := make([]byte, 64)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = picofmt.Snprintf(buf, "dev=%s seq=%05d v=%#06x t=%+d", "uart0", i, i, i)
	}
}

func BenchmarkFormatCount(b *testing.B) {
	drop := picofmt.Sink(func(byte) {})
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = picofmt.Format(drop, "dev=%s seq=%05d v=%#06x t=%+d", "uart0", i, i, i)
	}
}

func BenchmarkDecimal64(b *testing.B) {
	buf := make([]byte, 32)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		benchSink = picofmt.Snprintf(buf, "%lld", int64(-9182736455463728190)+int64(i))
	}
}
