package tendril

// form is the explicit discriminator this port uses in place of the
// pointer-tagged ptr word described by the core's ABI (see SPEC_FULL.md
// §0): a Go *header pointer cannot safely be hidden in a tagged integer,
// so the four shapes are told apart by this field instead.
type form uint8

const (
	// formEmpty is the canonical zero-length, no-allocation state. It is
	// both the initial state of a Tendril and the state Destroy leaves
	// behind.
	formEmpty form = iota

	// formInline holds 1 to maxInline bytes directly in the value; a
	// length of 0 is always formEmpty.
	formInline

	// formOwned is the sole reference to its header; it may grow in
	// place without touching a shared refcount.
	formOwned

	// formShared is one of >=1 references to a header; it carries a
	// byte offset into the header's buffer.
	formShared
)

func (f form) String() string {
	switch f {
	case formEmpty:
		return "empty"
	case formInline:
		return "inline"
	case formOwned:
		return "owned"
	case formShared:
		return "shared"
	default:
		return "invalid"
	}
}

// maxInline is the largest length stored inline, matching the 8-byte
// content area of the spec's 16-byte value (a and b together).
const maxInline = 8

func (f form) heapBacked() bool {
	return f == formOwned || f == formShared
}
