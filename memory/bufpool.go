// Package memory provides buffer pooling for the hot paths that read and
// write GTFS-scale data: the XML pull parser's input buffering and the CSV
// writer's output buffering. It is a pure implementation optimization with
// no effect on observable behavior.
package memory

import (
	"bufio"
	"io"
	"sync"
)

const defaultBufSize = 64 * 1024

var (
	readerPool = sync.Pool{New: func() interface{} { return bufio.NewReaderSize(nil, defaultBufSize) }}
	writerPool = sync.Pool{New: func() interface{} { return bufio.NewWriterSize(nil, defaultBufSize) }}
)

// GetReader returns a pooled *bufio.Reader wrapping r. Call PutReader when
// done with it.
func GetReader(r io.Reader) *bufio.Reader {
	br := readerPool.Get().(*bufio.Reader)
	br.Reset(r)
	return br
}

// PutReader returns br to the pool. br must not be used afterward.
func PutReader(br *bufio.Reader) {
	br.Reset(nil)
	readerPool.Put(br)
}

// GetWriter returns a pooled *bufio.Writer wrapping w. Call PutWriter (after
// Flush) when done with it.
func GetWriter(w io.Writer) *bufio.Writer {
	bw := writerPool.Get().(*bufio.Writer)
	bw.Reset(w)
	return bw
}

// PutWriter returns bw to the pool. bw must not be used afterward.
func PutWriter(bw *bufio.Writer) {
	bw.Reset(nil)
	writerPool.Put(bw)
}
