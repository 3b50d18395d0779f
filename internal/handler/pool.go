package handler

import (
	"bytes"
	"sync"
)

// initialBufferSize fits a typical search page without growing.
const initialBufferSize = 4 << 10

// bufferPool recycles response encoding buffers.
var bufferPool = sync.Pool{
	New: func() interface{} {
		return bytes.NewBuffer(make([]byte, 0, initialBufferSize))
	},
}

func getBuffer() *bytes.Buffer {
	return bufferPool.Get().(*bytes.Buffer)
}

// putBuffer drops oversized buffers so one huge listing does not pin memory.
func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 1<<20 {
		return
	}
	buf.Reset()
	bufferPool.Put(buf)
}
