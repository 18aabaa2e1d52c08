package pixbuf

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/disintegration/imaging"
)

// BufferCache provides thread-safe caching of decoded pixel buffers to avoid
// redundant disk reads.
//
// Buffers are keyed by the exact file path string used to load them. Once a
// file is decoded, subsequent Load calls for the same path return the cached
// buffer without disk I/O — including its backing slice, so mutations through
// one caller are visible to all.
//
// BufferCache is safe for concurrent use; the buffers it hands out are not
// (see the package documentation).
//
// Cached buffers remain in memory until removed via Evict or Clear. For
// long-running processes handling many images, consider periodic cleanup to
// prevent unbounded memory growth.
type BufferCache struct {
	mu      sync.RWMutex
	buffers map[string]*Buffer
}

// NewBufferCache creates an empty cache ready for use.
func NewBufferCache() *BufferCache {
	return &BufferCache{
		buffers: make(map[string]*Buffer),
	}
}

// Load retrieves the buffer for an image file, decoding from disk on the
// first call and serving the cache afterwards.
//
// Decoding goes through the imaging package with EXIF auto-orientation, so
// JPEG files shot in rotated orientations come back upright. Supported
// formats are those registered with the imaging package: PNG, JPEG, GIF,
// TIFF and BMP.
func (c *BufferCache) Load(path string) (*Buffer, error) {
	c.mu.RLock()
	if buf, ok := c.buffers[path]; ok {
		c.mu.RUnlock()
		return buf, nil
	}
	c.mu.RUnlock()

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	buf, err := FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("failed to build buffer for %s: %w", path, err)
	}

	c.mu.Lock()
	c.buffers[path] = buf
	c.mu.Unlock()

	return buf, nil
}

// Clear removes all buffers from the cache, freeing the associated memory.
func (c *BufferCache) Clear() {
	c.mu.Lock()
	c.buffers = make(map[string]*Buffer)
	c.mu.Unlock()
}

// Evict removes a specific buffer from the cache by its path. Unknown paths
// are ignored.
func (c *BufferCache) Evict(path string) {
	c.mu.Lock()
	delete(c.buffers, path)
	c.mu.Unlock()
}

// Info contains metadata about a loaded image file.
type Info struct {
	// Width is the buffer width in pixels.
	Width int `json:"width"`

	// Height is the buffer height in pixels.
	Height int `json:"height"`

	// Format is the image format guessed from the file extension:
	// "png", "jpeg", "gif", "tiff", "bmp" or "unknown".
	Format string `json:"format"`

	// HasAlpha reports whether any pixel is less than fully opaque.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadInfo loads an image through the cache and reports its metadata.
func LoadInfo(cache *BufferCache, path string) (*Info, error) {
	buf, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	format := "unknown"
	switch filepath.Ext(path) {
	case ".png":
		format = "png"
	case ".jpg", ".jpeg":
		format = "jpeg"
	case ".gif":
		format = "gif"
	case ".tif", ".tiff":
		format = "tiff"
	case ".bmp":
		format = "bmp"
	}

	hasAlpha := false
	data := buf.Data()
	for i := 3; i < len(data); i += 4 {
		if data[i] != 0xFF {
			hasAlpha = true
			break
		}
	}

	return &Info{
		Width:         buf.Width(),
		Height:        buf.Height(),
		Format:        format,
		HasAlpha:      hasAlpha,
		FileSizeBytes: stat.Size(),
	}, nil
}
