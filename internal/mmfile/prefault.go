package mmfile

import (
	"fmt"
	"runtime/debug"
)

// Populate faults in every page of the mapped window so that an unreadable
// region (a file truncated behind the mapping, a dead network mount) shows up
// here as an error instead of as SIGBUS in the middle of decoding.
func (m *FileMap) Populate() error {
	if len(m.base) == 0 {
		return nil
	}
	if err := populate(m.base); err != nil {
		return fmt.Errorf("mmfile: %s: mapped region contains inaccessible pages: %w", m.name, err)
	}
	return nil
}

// touchPages reads one byte per page. SetPanicOnFault turns a fault into a
// recoverable panic for the duration of the walk.
func touchPages(data []byte, pageSize int) (retErr error) {
	old := debug.SetPanicOnFault(true)
	defer debug.SetPanicOnFault(old)
	defer func() {
		if r := recover(); r != nil {
			if err, ok := r.(error); ok {
				retErr = fmt.Errorf("memory access fault: %w", err)
			} else {
				retErr = fmt.Errorf("memory access fault: %v", r)
			}
		}
	}()

	var sink byte
	for i := 0; i < len(data); i += pageSize {
		sink ^= data[i]
	}
	sink ^= data[len(data)-1]
	_ = sink
	return nil
}
