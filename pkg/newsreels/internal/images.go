package internal

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"sync"

	"github.com/newsai/newsreels/pkg/newsreels/constants"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/atomic"
)

const maxImageBytes = 10 << 20

type imageResult struct {
	ref  string
	data []byte
	err  error
}

// ImageLoader fetches card images off the render thread and turns them into
// textures on it. Textures are only created in Drain, which must be called
// from the render loop.
type ImageLoader struct {
	client   *http.Client
	requests chan string
	results  chan imageResult
	done     chan struct{}
	closed   *atomic.Bool
	wg       sync.WaitGroup

	pending     map[string]bool
	failed      map[string]bool
	cache       *TextureCache
	placeholder *sdl.Texture
}

// NewImageLoader starts workers that fetch with client.
func NewImageLoader(client *http.Client, workers int) *ImageLoader {
	if workers <= 0 {
		workers = 2
	}
	l := &ImageLoader{
		client:   client,
		requests: make(chan string, 16),
		results:  make(chan imageResult, 16),
		done:     make(chan struct{}),
		closed:   atomic.NewBool(false),
		pending:  make(map[string]bool),
		failed:   make(map[string]bool),
		cache:    NewTextureCache(defaultMaxCacheSize),
	}
	for i := 0; i < workers; i++ {
		l.wg.Add(1)
		go l.work()
	}
	return l
}

func (l *ImageLoader) work() {
	defer l.wg.Done()
	for {
		select {
		case <-l.done:
			return
		case ref := <-l.requests:
			data, err := l.fetch(ref)
			select {
			case l.results <- imageResult{ref: ref, data: data, err: err}:
			case <-l.done:
				return
			}
		}
	}
}

func (l *ImageLoader) fetch(ref string) ([]byte, error) {
	if !strings.HasPrefix(ref, "http://") && !strings.HasPrefix(ref, "https://") {
		return os.ReadFile(ref)
	}

	resp, err := l.client.Get(ref)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status %d", resp.StatusCode)
	}
	return io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
}

// Texture returns the first available texture of a fallback chain. Refs that
// are not loaded yet are requested and skipped only once they fail, so a
// slow first choice shows nothing rather than briefly flashing a fallback.
func (l *ImageLoader) Texture(renderer *sdl.Renderer, refs []string, w, h int32) (*sdl.Texture, bool) {
	for _, ref := range refs {
		if ref == constants.PlaceholderImage {
			return l.placeholderTexture(renderer, w, h)
		}
		if tex, ok := l.cache.Get(ref); ok {
			return tex, true
		}
		if l.failed[ref] {
			continue
		}
		if !l.pending[ref] && !l.closed.Load() {
			select {
			case l.requests <- ref:
				l.pending[ref] = true
			default:
			}
		}
		return nil, false
	}
	return nil, false
}

func (l *ImageLoader) placeholderTexture(renderer *sdl.Renderer, w, h int32) (*sdl.Texture, bool) {
	if l.placeholder == nil {
		tex, err := PlaceholderTexture(renderer, w, h)
		if err != nil {
			GetInternalLogger().Error("Failed to draw placeholder", "error", err)
			return nil, false
		}
		l.placeholder = tex
	}
	return l.placeholder, true
}

// Drain turns finished downloads into textures.
func (l *ImageLoader) Drain(renderer *sdl.Renderer) {
	for {
		select {
		case res := <-l.results:
			delete(l.pending, res.ref)
			if res.err != nil {
				GetInternalLogger().Debug("Image unavailable", "ref", res.ref, "error", res.err)
				l.failed[res.ref] = true
				continue
			}
			tex, err := decodeTexture(renderer, res.data)
			if err != nil {
				GetInternalLogger().Debug("Image could not be decoded", "ref", res.ref, "error", err)
				l.failed[res.ref] = true
				continue
			}
			l.cache.Put(res.ref, tex)
		default:
			return
		}
	}
}

func decodeTexture(renderer *sdl.Renderer, data []byte) (*sdl.Texture, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("empty image")
	}
	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	return img.LoadTextureRW(renderer, rw, true)
}

// Close stops the workers and frees all textures.
func (l *ImageLoader) Close() {
	if l.closed.Swap(true) {
		return
	}
	close(l.done)
	l.wg.Wait()

	l.cache.Destroy()
	if l.placeholder != nil {
		l.placeholder.Destroy()
		l.placeholder = nil
	}
}
