package tendril

import "fmt"

// elideAfter caps how many content bytes DebugDescribe renders verbatim
// before summarizing the remainder, keeping descriptions of large
// Tendrils usable as test-oracle output.
const elideAfter = 32

// DebugDescribe renders a deterministic, human-readable description of
// src's form, length, and (for heap-backed forms) refcount, capacity, and
// offset into dst, followed by its content. It is intended for
// test-oracle diffing, not for production logging.
func DebugDescribe(dst, src *Tendril) error {
	content := src.Bytes()
	var dataField string
	if len(content) > elideAfter {
		dataField = fmt.Sprintf("%q...(%d more bytes)", content[:elideAfter], len(content)-elideAfter)
	} else {
		dataField = fmt.Sprintf("%q", content)
	}

	var rendered string
	switch src.form {
	case formEmpty:
		rendered = "empty len=0"
	case formInline:
		rendered = fmt.Sprintf("inline len=%d data=%s", src.length, dataField)
	case formOwned:
		rendered = fmt.Sprintf("owned len=%d cap=%d refcount=%d data=%s",
			src.length, src.aux, src.hdr.refcount, dataField)
	case formShared:
		rendered = fmt.Sprintf("shared len=%d offset=%d cap=%d refcount=%d data=%s",
			src.length, src.aux, src.hdr.capacity, src.hdr.refcount, dataField)
	}

	dst.Destroy()
	return dst.PushBuffer([]byte(rendered))
}
