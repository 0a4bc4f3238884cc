package bridge

import (
	"fmt"
	"sync"

	"github.com/ironsheep/colorpad-mcp/internal/convert"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// slot holds a model that is either not yet computed or fixed forever.
type slot[T any] struct {
	v  T
	ok bool
}

func known[T any](v T) slot[T] { return slot[T]{v: v, ok: true} }

// Lazy is a Bridge that derives each model on first access and caches it.
//
// A Lazy bridge may be shared between goroutines; each model is computed at
// most once.
type Lazy struct {
	reg  *convert.Registry
	rgb  model.Rgb
	gray model.Grayscale

	mu    sync.Mutex
	hsb   slot[model.Hsb]
	hsl   slot[model.Hsl]
	cmyk  slot[model.Cmyk]
	ycrcb slot[model.YCrCb]
	xyz   slot[model.Xyz]
	lab   slot[model.Lab]
}

var _ Bridge = (*Lazy)(nil)

// NewLazy builds a lazy bridge from a pivot of any kind. A nil registry
// means convert.Default().
func NewLazy(reg *convert.Registry, pivot model.Model) (*Lazy, error) {
	switch p := pivot.(type) {
	case model.Rgb:
		return LazyFromRgb(reg, p)
	case model.Grayscale:
		return LazyFromGrayscale(reg, p)
	case model.Hsb:
		return LazyFromHsb(reg, p)
	case model.Hsl:
		return LazyFromHsl(reg, p)
	case model.Cmyk:
		return LazyFromCmyk(reg, p)
	case model.YCrCb:
		return LazyFromYCrCb(reg, p)
	case model.Xyz:
		return LazyFromXyz(reg, p)
	case model.Lab:
		return LazyFromLab(reg, p)
	default:
		return nil, fmt.Errorf("bridge: unsupported pivot %T", pivot)
	}
}

// Empty returns a lazy bridge for white on the default registry, for use as
// a placeholder before a real color is known. It panics if the default
// registry cannot derive grayscale from RGB.
func Empty() *Lazy {
	b, err := LazyFromRgb(nil, model.White)
	if err != nil {
		panic(fmt.Sprintf("bridge: empty bridge: %v", err))
	}
	return b
}

// LazyFromRgbValues validates r, g and b and pivots on the resulting color.
func LazyFromRgbValues(reg *convert.Registry, r, g, b int) (*Lazy, error) {
	c, err := model.NewRgb(r, g, b)
	if err != nil {
		return nil, err
	}
	return LazyFromRgb(reg, c)
}

// LazyFromRgb pivots on c; nothing else is computed yet.
func LazyFromRgb(reg *convert.Registry, c model.Rgb) (*Lazy, error) {
	return newLazy(registry(reg), c)
}

// LazyFromGrayscale pivots on the gray value replicated into RGB.
func LazyFromGrayscale(reg *convert.Registry, c model.Grayscale) (*Lazy, error) {
	return lazyVia(reg, c, func(*Lazy) {})
}

// LazyFromHsb caches c and resolves RGB from it.
func LazyFromHsb(reg *convert.Registry, c model.Hsb) (*Lazy, error) {
	return lazyVia(reg, c, func(b *Lazy) { b.hsb = known(c) })
}

// LazyFromHsl caches c and resolves RGB from it.
func LazyFromHsl(reg *convert.Registry, c model.Hsl) (*Lazy, error) {
	return lazyVia(reg, c, func(b *Lazy) { b.hsl = known(c) })
}

// LazyFromCmyk caches c and resolves RGB from it.
func LazyFromCmyk(reg *convert.Registry, c model.Cmyk) (*Lazy, error) {
	return lazyVia(reg, c, func(b *Lazy) { b.cmyk = known(c) })
}

// LazyFromYCrCb caches c and resolves RGB from it.
func LazyFromYCrCb(reg *convert.Registry, c model.YCrCb) (*Lazy, error) {
	return lazyVia(reg, c, func(b *Lazy) { b.ycrcb = known(c) })
}

// LazyFromXyz caches c and resolves RGB from it.
func LazyFromXyz(reg *convert.Registry, c model.Xyz) (*Lazy, error) {
	return lazyVia(reg, c, func(b *Lazy) { b.xyz = known(c) })
}

// LazyFromLab resolves RGB through XYZ; both Lab and XYZ start out cached.
func LazyFromLab(reg *convert.Registry, c model.Lab) (*Lazy, error) {
	reg = registry(reg)
	xyz, err := convert.To[model.Xyz](reg, c)
	if err != nil {
		return nil, err
	}
	rgb, err := toRgb(reg, xyz)
	if err != nil {
		return nil, err
	}
	b, err := newLazy(reg, rgb)
	if err != nil {
		return nil, err
	}
	b.xyz, b.lab = known(xyz), known(c)
	return b, nil
}

// LazyFrom copies src into a new lazy bridge on reg. When src is a *Lazy
// only the models it has already computed are copied; any other Bridge has
// every model read out of it.
func LazyFrom(reg *convert.Registry, src Bridge) (*Lazy, error) {
	if l, ok := src.(*Lazy); ok {
		c := l.Clone()
		if reg != nil {
			c.reg = reg
		}
		return c, nil
	}

	b := &Lazy{reg: registry(reg), rgb: src.Rgb(), gray: src.Grayscale()}
	hsb, err := src.Hsb()
	if err != nil {
		return nil, err
	}
	hsl, err := src.Hsl()
	if err != nil {
		return nil, err
	}
	cmyk, err := src.Cmyk()
	if err != nil {
		return nil, err
	}
	ycrcb, err := src.YCrCb()
	if err != nil {
		return nil, err
	}
	xyz, err := src.Xyz()
	if err != nil {
		return nil, err
	}
	lab, err := src.Lab()
	if err != nil {
		return nil, err
	}
	b.hsb, b.hsl, b.cmyk = known(hsb), known(hsl), known(cmyk)
	b.ycrcb, b.xyz, b.lab = known(ycrcb), known(xyz), known(lab)
	return b, nil
}

func lazyVia(reg *convert.Registry, pivot model.Model, set func(*Lazy)) (*Lazy, error) {
	reg = registry(reg)
	rgb, err := toRgb(reg, pivot)
	if err != nil {
		return nil, err
	}
	b, err := newLazy(reg, rgb)
	if err != nil {
		return nil, err
	}
	set(b)
	return b, nil
}

func newLazy(reg *convert.Registry, rgb model.Rgb) (*Lazy, error) {
	gray, err := convert.To[model.Grayscale](reg, rgb)
	if err != nil {
		return nil, err
	}
	return &Lazy{reg: reg, rgb: rgb, gray: gray}, nil
}

// Clone copies b including every model computed so far. The copy fills its
// own cache independently.
func (b *Lazy) Clone() *Lazy {
	b.mu.Lock()
	defer b.mu.Unlock()
	return &Lazy{
		reg:   b.reg,
		rgb:   b.rgb,
		gray:  b.gray,
		hsb:   b.hsb,
		hsl:   b.hsl,
		cmyk:  b.cmyk,
		ycrcb: b.ycrcb,
		xyz:   b.xyz,
		lab:   b.lab,
	}
}

// Computed lists the kinds b currently holds, in Kind order. RGB and
// grayscale are always present.
func (b *Lazy) Computed() []model.Kind {
	b.mu.Lock()
	defer b.mu.Unlock()
	kinds := []model.Kind{model.KindRgb, model.KindGrayscale}
	for _, s := range []struct {
		kind model.Kind
		ok   bool
	}{
		{model.KindHsb, b.hsb.ok},
		{model.KindHsl, b.hsl.ok},
		{model.KindCmyk, b.cmyk.ok},
		{model.KindYCrCb, b.ycrcb.ok},
		{model.KindXyz, b.xyz.ok},
		{model.KindLab, b.lab.ok},
	} {
		if s.ok {
			kinds = append(kinds, s.kind)
		}
	}
	return kinds
}

// Rgb returns the pivot color.
func (b *Lazy) Rgb() model.Rgb { return b.rgb }

// Grayscale returns the gray level of the pivot.
func (b *Lazy) Grayscale() model.Grayscale { return b.gray }

// Hex renders the pivot as six hex digits.
func (b *Lazy) Hex(upper bool) string { return b.rgb.Hex(upper) }

// Hsb converts on first use and caches the result.
func (b *Lazy) Hsb() (model.Hsb, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fill(b.reg, &b.hsb, b.rgb)
}

// Hsl converts on first use and caches the result.
func (b *Lazy) Hsl() (model.Hsl, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fill(b.reg, &b.hsl, b.rgb)
}

// Cmyk converts on first use and caches the result.
func (b *Lazy) Cmyk() (model.Cmyk, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fill(b.reg, &b.cmyk, b.rgb)
}

// YCrCb converts on first use and caches the result.
func (b *Lazy) YCrCb() (model.YCrCb, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fill(b.reg, &b.ycrcb, b.rgb)
}

// Xyz converts on first use and caches the result.
func (b *Lazy) Xyz() (model.Xyz, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return fill(b.reg, &b.xyz, b.rgb)
}

// Lab derives from XYZ, computing and caching XYZ first if needed.
func (b *Lazy) Lab() (model.Lab, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.lab.ok {
		return b.lab.v, nil
	}
	xyz, err := fill(b.reg, &b.xyz, b.rgb)
	if err != nil {
		return model.Lab{}, err
	}
	return fill(b.reg, &b.lab, xyz)
}

// fill returns the cached value in s, converting src and caching the result
// on first use. Callers hold the bridge lock.
func fill[T model.Model](reg *convert.Registry, s *slot[T], src model.Model) (T, error) {
	if s.ok {
		return s.v, nil
	}
	v, err := convert.To[T](reg, src)
	if err != nil {
		return v, err
	}
	*s = known(v)
	return v, nil
}
