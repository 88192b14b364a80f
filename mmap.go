package dupscan

import (
	"os"
	"runtime"

	"golang.org/x/sys/unix"
)

// MappedFile a read-only memory mapping of a file, used to feed large
// inputs to the scanner without reading them into the heap.
type MappedFile struct {
	data []byte
}

func OpenMapped(path string) (*MappedFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	st, err := f.Stat()
	if err != nil {
		return nil, err
	}

	// mmap of length 0 fails with EINVAL, an empty file is a valid
	// (empty) input sequence
	if st.Size() == 0 {
		return &MappedFile{}, nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(st.Size()), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		return nil, err
	}

	m := &MappedFile{data: data}

	runtime.SetFinalizer(m, func(obj *MappedFile) {
		if len(obj.data) > 0 {
			_ = unix.Munmap(obj.data)
		}
	})

	return m, nil
}

func (m *MappedFile) Data() []byte {
	return m.data
}

func (m *MappedFile) Len() int {
	return len(m.data)
}

func (m *MappedFile) Close() (err error) {
	if len(m.data) > 0 {
		runtime.SetFinalizer(m, nil)
		err = unix.Munmap(m.data)
		m.data = nil
	}
	return
}
