package variants

import (
	"bytes"

	"github.com/adamsitnik/ClonePlayground/internal/harness"
	"github.com/adamsitnik/ClonePlayground/internal/sharedbuf"
)

// Benchmark group names understood by the runner.
const (
	GroupClone       = "clone"
	GroupCloneModify = "clone-modify"
)

var sink string

// Groups builds the benchmark groups over data. Each variant gets its own
// private copy of data so that the in-place appends of one variant never
// change the buffer length another variant is timed against.
func Groups(data []byte) []harness.Group {
	str := string(data)
	pure := sharedbuf.New(bytes.Clone(data))
	mod := sharedbuf.New(bytes.Clone(data))
	size := int64(len(data))

	return []harness.Group{
		{
			Name: GroupClone,
			Variants: []harness.Variant{
				{
					Name:  "string-clone",
					Bytes: size,
					Func: func() {
						sink = StringClone(str)
					},
				},
				{
					Name:  "handle-clone",
					Bytes: size,
					Func: func() {
						h := HandleClone(pure)
						h.Release()
					},
				},
			},
		},
		{
			Name: GroupCloneModify,
			Variants: []harness.Variant{
				{
					Name:  "string-clone-modify",
					Bytes: size,
					Func: func() {
						sink = StringCloneAndModify(str)
					},
				},
				{
					Name:  "handle-clone-modify",
					Bytes: size,
					Func: func() {
						s, err := HandleCloneAndModify(mod)
						if err != nil {
							// Only reachable through a borrow held across
							// calls, which is a defect in the harness itself.
							panic(err)
						}
						sink = s
					},
				},
			},
		},
	}
}
