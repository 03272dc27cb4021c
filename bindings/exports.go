package main

/*
#include <stdbool.h>
#include <stddef.h>
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/mgood7123/android-9-patch/ninepatch"
)

func bytesOf(p unsafe.Pointer, n int) []byte {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*byte)(p), n)
}

//export NinePatchGlue_isNinePatchChunk
func NinePatchGlue_isNinePatchChunk(array *C.int8_t, length C.int32_t) C.bool {
	return C.bool(ninepatch.IsNinePatchChunk(bytesOf(unsafe.Pointer(array), int(length))))
}

// NinePatchGlue_validateNinePatchChunk returns a decoded copy of the record in
// C memory, or NULL. Release it with NinePatchGlue_finalize.
//
//export NinePatchGlue_validateNinePatchChunk
func NinePatchGlue_validateNinePatchChunk(array *C.int8_t, length C.int32_t) *C.int8_t {
	c, err := ninepatch.ValidateNinePatchChunk(bytesOf(unsafe.Pointer(array), int(length)))
	if err != nil {
		opts.Log().Warn("rejected 9-patch chunk", "length", int(length), "error", err)
		return nil
	}
	b := c.Bytes()
	out := C.malloc(C.size_t(len(b)))
	copy(unsafe.Slice((*byte)(out), len(b)), b)
	return (*C.int8_t)(out)
}

//export NinePatchGlue_finalize
func NinePatchGlue_finalize(patch *C.int8_t) {
	C.free(unsafe.Pointer(patch))
}

//export NinePatchPeeker_new
func NinePatchPeeker_new() C.uintptr_t {
	return C.uintptr_t(newPeeker())
}

//export NinePatchPeeker_delete
func NinePatchPeeker_delete(handle *C.uintptr_t) {
	deletePeeker((*uintptr)(unsafe.Pointer(handle)))
}

//export NinePatchPeeker_readChunk
func NinePatchPeeker_readChunk(handle C.uintptr_t, tag *C.char, data unsafe.Pointer, length C.size_t) C.bool {
	p := peekerFor(uintptr(handle))
	if p == nil || tag == nil {
		return false
	}
	return C.bool(p.ReadChunk(C.GoString(tag), bytesOf(data, int(length))))
}

//export NinePatchPeeker_hasPatch
func NinePatchPeeker_hasPatch(handle C.uintptr_t) C.bool {
	return C.bool(view(uintptr(handle)).HasPatch())
}

// NinePatchPeeker_getPadding writes left, top, right, bottom to out[0:4].
//
//export NinePatchPeeker_getPadding
func NinePatchPeeker_getPadding(handle C.uintptr_t, out *C.int32_t) {
	if out == nil {
		return
	}
	pad := padding(uintptr(handle))
	copy(unsafe.Slice((*int32)(unsafe.Pointer(out)), 4), pad[:])
}

//export NinePatchPeeker_getCounts
func NinePatchPeeker_getCounts(handle C.uintptr_t, numXDivs, numYDivs, numColors *C.uint8_t) {
	patch := view(uintptr(handle)).Patch()
	for _, f := range []struct {
		dst *C.uint8_t
		v   uint8
	}{{numXDivs, patch.NumXDivs()}, {numYDivs, patch.NumYDivs()}, {numColors, patch.NumColors()}} {
		if f.dst != nil {
			*f.dst = C.uint8_t(f.v)
		}
	}
}

// NinePatchPeeker_getXDivs copies up to n divs into out and returns the total
// number available.
//
//export NinePatchPeeker_getXDivs
func NinePatchPeeker_getXDivs(handle C.uintptr_t, out *C.int32_t, n C.size_t) C.size_t {
	return C.size_t(copyInts(int32Slice(out, n), view(uintptr(handle)).Patch().XDivs()))
}

//export NinePatchPeeker_getYDivs
func NinePatchPeeker_getYDivs(handle C.uintptr_t, out *C.int32_t, n C.size_t) C.size_t {
	return C.size_t(copyInts(int32Slice(out, n), view(uintptr(handle)).Patch().YDivs()))
}

//export NinePatchPeeker_getColors
func NinePatchPeeker_getColors(handle C.uintptr_t, out *C.uint32_t, n C.size_t) C.size_t {
	var dst []uint32
	if out != nil && n > 0 {
		dst = unsafe.Slice((*uint32)(unsafe.Pointer(out)), int(n))
	}
	return C.size_t(copyInts(dst, view(uintptr(handle)).Patch().Colors()))
}

//export NinePatchPeeker_scale
func NinePatchPeeker_scale(handle C.uintptr_t, scaleX, scaleY C.float, scaledWidth, scaledHeight C.int32_t) {
	view(uintptr(handle)).Scale(float32(scaleX), float32(scaleY), int(scaledWidth), int(scaledHeight))
}

func int32Slice(out *C.int32_t, n C.size_t) []int32 {
	if out == nil || n == 0 {
		return nil
	}
	return unsafe.Slice((*int32)(unsafe.Pointer(out)), int(n))
}
