package memory

import (
	"bytes"
	"strings"
	"testing"
)

func TestGetReaderResetsToNewSource(t *testing.T) {
	br := GetReader(strings.NewReader("hello"))
	defer PutReader(br)

	got, err := br.ReadString(0)
	if err == nil {
		t.Fatalf("expected EOF-style error reading to a sentinel byte, got data %q", got)
	}
	if got != "hello" {
		t.Fatalf("expected to read back the wrapped source, got %q", got)
	}
}

func TestGetWriterFlushesToUnderlying(t *testing.T) {
	var buf bytes.Buffer
	bw := GetWriter(&buf)
	if _, err := bw.WriteString("world"); err != nil {
		t.Fatalf("WriteString: %v", err)
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	PutWriter(bw)

	if buf.String() != "world" {
		t.Fatalf("expected %q, got %q", "world", buf.String())
	}
}

func TestPoolReusesAcrossGetPut(t *testing.T) {
	br1 := GetReader(strings.NewReader("a"))
	PutReader(br1)
	br2 := GetReader(strings.NewReader("b"))
	defer PutReader(br2)

	b, err := br2.ReadByte()
	if err != nil {
		t.Fatalf("ReadByte: %v", err)
	}
	if b != 'b' {
		t.Fatalf("expected pooled reader reset to new source, got %q", b)
	}
}
