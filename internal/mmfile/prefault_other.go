//go:build !linux

package mmfile

func populate(data []byte) error {
	return touchPages(data, PageSize())
}
