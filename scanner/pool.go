package scanner

import (
	"sync"
)

var chunkPool = sync.Pool{
	New: func() any {
		return make([]byte, defScanBufferSize)
	},
}

func getChunk(needed int) []byte {
	buf := chunkPool.Get().([]byte)
	if cap(buf) < needed {
		return make([]byte, needed)
	}
	return buf[:needed]
}

func freeChunk(buf []byte) {
	chunkPool.Put(buf)
}
