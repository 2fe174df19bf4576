// Package variants holds the clone operations under comparison: a full
// copy of a large string versus a reference-count bump on a shared,
// mutably-borrowable buffer.
package variants

import (
	"strings"

	"github.com/adamsitnik/ClonePlayground/internal/sharedbuf"
)

// Modification is the fixed suffix the modifying variants append.
const Modification = "B"

var modification = []byte(Modification)

// StringClone duplicates s into freshly allocated storage. Cost is
// linear in len(s).
func StringClone(s string) string {
	return strings.Clone(s)
}

// StringCloneAndModify duplicates s and appends the modification suffix.
// The result never aliases s's storage.
func StringCloneAndModify(s string) string {
	var b strings.Builder
	b.Grow(len(s) + len(Modification))
	b.WriteString(s)
	b.WriteString(Modification)
	return b.String()
}

// HandleClone bumps the reference count on h. It never copies buffer
// bytes.
func HandleClone(h *sharedbuf.Handle) *sharedbuf.Handle {
	return h.Clone()
}

// HandleCloneAndModify clones the handle, takes the runtime-checked
// exclusive borrow, appends the modification suffix to the shared buffer
// in place and copies out a snapshot. A borrow conflict aborts the call
// with sharedbuf.ErrBorrowed.
func HandleCloneAndModify(h *sharedbuf.Handle) (string, error) {
	c := h.Clone()
	defer c.Release()

	m, err := c.BorrowMut()
	if err != nil {
		return "", err
	}
	defer m.Release()

	m.Append(modification)
	return m.Snapshot(), nil
}
