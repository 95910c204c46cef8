package compose

import (
	"image"
	"sync/atomic"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/image/draw"
)

type layerKey struct {
	id   uuid.UUID
	w, h int
}

// layerCache keeps resources already scaled to their fitted size so pointer
// motion only re-composites, never re-scales. Entries are never mutated after
// insertion, which keeps rendering deterministic.
type layerCache struct {
	interp draw.Interpolator
	cache  *lru.Cache[layerKey, *image.RGBA]
	hits   atomic.Uint64 // read by the debug logger goroutine
	misses atomic.Uint64
}

func newLayerCache(size int, interp draw.Interpolator) (*layerCache, error) {
	if size <= 0 {
		size = 8
	}
	c, err := lru.New[layerKey, *image.RGBA](size)
	if err != nil {
		return nil, err
	}
	return &layerCache{interp: interp, cache: c}, nil
}

// fitted returns src scaled to w x h, scaling at most once per (id, size).
func (lc *layerCache) fitted(id uuid.UUID, src image.Image, w, h int) *image.RGBA {
	key := layerKey{id: id, w: w, h: h}
	if img, ok := lc.cache.Get(key); ok {
		lc.hits.Add(1)
		return img
	}
	lc.misses.Add(1)
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	sb := src.Bounds()
	if sb.Dx() == w && sb.Dy() == h {
		draw.Draw(dst, dst.Bounds(), src, sb.Min, draw.Src)
	} else {
		lc.interp.Scale(dst, dst.Bounds(), src, sb, draw.Src, nil)
	}
	lc.cache.Add(key, dst)
	return dst
}

func (lc *layerCache) stats() (hits, misses uint64, size int) {
	return lc.hits.Load(), lc.misses.Load(), lc.cache.Len()
}

// interpolator maps a config name onto an x/image/draw kernel.
func interpolator(name string) draw.Interpolator {
	switch name {
	case "nearest":
		return draw.NearestNeighbor
	case "bilinear":
		return draw.BiLinear
	default:
		return draw.CatmullRom
	}
}
