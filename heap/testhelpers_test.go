package heap

import "unsafe"

func ptrOf(b []byte) unsafe.Pointer {
	return unsafe.Pointer(&b[0])
}

func bytesAt(bp unsafe.Pointer, n uintptr) []byte {
	out := make([]byte, n)
	copy(out, unsafe.Slice((*byte)(bp), n))
	return out
}
