package tendril

import "io"

// WriteTo writes t's content to w, implementing io.WriterTo. It is the
// reference "stdio sink" collaborator named in spec.md §6.3: read-only,
// consuming only Data/Len (via Bytes).
func (t *Tendril) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(t.Bytes())
	return int64(n), err
}
