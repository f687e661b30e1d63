//go:build linux

package hwaccel

import (
	"fmt"
	"os"
	"sync/atomic"
	"unsafe"

	"golang.org/x/sys/unix"
)

// MMIOBus maps the accelerator register window from a memory device
// node (typically /dev/mem). Word accesses go through sync/atomic so
// every Read32 is a fresh load and the write/GO/poll phases keep their
// program order.
type MMIOBus struct {
	mapping []byte
	window  []byte
}

var _ Bus = (*MMIOBus)(nil)

// OpenMMIO maps the register window at base from device. The base must
// be word aligned.
func OpenMMIO(device string, base uint32) (*MMIOBus, error) {
	if base%4 != 0 {
		return nil, fmt.Errorf("register base %#x is not word aligned", base)
	}
	f, err := os.OpenFile(device, os.O_RDWR|os.O_SYNC, 0)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", device, err)
	}
	defer f.Close()

	// mmap offsets must be page aligned; the register base need not be.
	page := int64(unix.Getpagesize())
	aligned := int64(base) &^ (page - 1)
	delta := int64(base) - aligned
	length := int((delta + int64(regWindow) + page - 1) &^ (page - 1))

	mapping, err := unix.Mmap(int(f.Fd()), aligned, length, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, fmt.Errorf("map %s at %#x: %w", device, base, err)
	}

	return &MMIOBus{mapping: mapping, window: mapping[delta : delta+int64(regWindow)]}, nil
}

// Read32 implements Bus with an uncached, ordered load.
func (b *MMIOBus) Read32(off uint32) uint32 {
	return atomic.LoadUint32((*uint32)(unsafe.Pointer(&b.window[off])))
}

// Write32 implements Bus with an ordered store.
func (b *MMIOBus) Write32(off uint32, v uint32) {
	atomic.StoreUint32((*uint32)(unsafe.Pointer(&b.window[off])), v)
}

// Close unmaps the register window.
func (b *MMIOBus) Close() error {
	if b.mapping == nil {
		return nil
	}
	err := unix.Munmap(b.mapping)
	b.mapping = nil
	b.window = nil
	return err
}
