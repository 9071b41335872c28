// Package cstring hands strings to native callers as C heap buffers.
//
// The only legal lifecycle of a buffer is Export, any number of reads, then
// exactly one Release. Releasing twice, releasing a pointer that did not come
// from Export, or reading after Release is undefined and is not detected.
package cstring

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import (
	"strings"
	"unsafe"
)

// Export copies text into a new NUL-terminated buffer on the C heap and
// transfers ownership to the caller. It returns nil when text contains a NUL
// byte or the allocation fails.
func Export(text string) unsafe.Pointer {
	if strings.IndexByte(text, 0) >= 0 {
		return nil
	}

	p := C.malloc(C.size_t(len(text) + 1))
	if p == nil {
		return nil
	}

	buf := unsafe.Slice((*byte)(p), len(text)+1)
	copy(buf, text)
	buf[len(text)] = 0

	return p
}

// Release frees a buffer returned by Export. A nil p is a no-op.
func Release(p unsafe.Pointer) {
	if p == nil {
		return
	}

	C.free(p)
}

// Bytes returns a copy of the buffer's content without the terminator.
func Bytes(p unsafe.Pointer) []byte {
	if p == nil {
		return nil
	}

	n := int(C.strlen((*C.char)(p)))

	return C.GoBytes(p, C.int(n))
}

// String returns a copy of the buffer's content.
func String(p unsafe.Pointer) string {
	if p == nil {
		return ""
	}

	return C.GoString((*C.char)(p))
}
