package watcher

import (
	"os"
	"sync"
	"unique"

	"github.com/cespare/xxhash/v2"
)

// Fingerprints remembers an xxhash of each file's content so saves that do
// not change the bytes can be ignored.
type Fingerprints struct {
	mu   sync.Mutex
	sums map[unique.Handle[string]]uint64
	read func(string) ([]byte, error)
}

// NewFingerprints creates an empty fingerprint cache reading from disk.
func NewFingerprints() *Fingerprints {
	return &Fingerprints{
		sums: make(map[unique.Handle[string]]uint64),
		read: os.ReadFile,
	}
}

// Seed records the current content of path.
func (f *Fingerprints) Seed(path string) error {
	data, err := f.read(path)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.sums[unique.Make(path)] = xxhash.Sum64(data)
	return nil
}

// Changed reads path and reports whether its content differs from the last
// recorded fingerprint. The new fingerprint is recorded.
func (f *Fingerprints) Changed(path string) (bool, error) {
	data, err := f.read(path)
	if err != nil {
		f.Forget(path)
		return false, err
	}
	sum := xxhash.Sum64(data)

	f.mu.Lock()
	defer f.mu.Unlock()

	handle := unique.Make(path)
	prev, ok := f.sums[handle]
	f.sums[handle] = sum
	return !ok || prev != sum, nil
}

// Forget drops the fingerprint of path.
func (f *Fingerprints) Forget(path string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.sums, unique.Make(path))
}
