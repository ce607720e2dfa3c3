package internal

import "github.com/veandco/go-sdl2/sdl"

const defaultMaxCacheSize = 8

// TextureCache keeps the most recently drawn card images. Evicted textures
// are destroyed.
type TextureCache struct {
	textures map[string]*sdl.Texture
	order    []string // least recently used first
	maxSize  int
}

func NewTextureCache(maxSize int) *TextureCache {
	if maxSize <= 0 {
		maxSize = defaultMaxCacheSize
	}
	return &TextureCache{
		textures: make(map[string]*sdl.Texture),
		order:    make([]string, 0, maxSize),
		maxSize:  maxSize,
	}
}

// Get returns the texture for ref and marks it recently used.
func (c *TextureCache) Get(ref string) (*sdl.Texture, bool) {
	texture, ok := c.textures[ref]
	if ok {
		c.touch(ref)
	}
	return texture, ok
}

// Put stores texture under ref, replacing and destroying any previous one.
func (c *TextureCache) Put(ref string, texture *sdl.Texture) {
	if old, ok := c.textures[ref]; ok {
		if old != texture {
			old.Destroy()
		}
		c.textures[ref] = texture
		c.touch(ref)
		return
	}

	if len(c.order) >= c.maxSize {
		c.evictOldest()
	}
	c.textures[ref] = texture
	c.order = append(c.order, ref)
}

func (c *TextureCache) Len() int {
	return len(c.order)
}

func (c *TextureCache) touch(ref string) {
	for i, k := range c.order {
		if k == ref {
			c.order = append(c.order[:i], c.order[i+1:]...)
			c.order = append(c.order, ref)
			return
		}
	}
}

func (c *TextureCache) evictOldest() {
	if len(c.order) == 0 {
		return
	}
	oldest := c.order[0]
	c.order = c.order[1:]

	if texture, ok := c.textures[oldest]; ok {
		texture.Destroy()
		delete(c.textures, oldest)
	}
}

// Destroy releases every cached texture.
func (c *TextureCache) Destroy() {
	for _, texture := range c.textures {
		texture.Destroy()
	}
	c.textures = make(map[string]*sdl.Texture)
	c.order = c.order[:0]
}
