package convert

import (
	"fmt"
	"sort"
	"sync"

	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// Pair is an ordered (source, target) pair of model kinds.
type Pair struct {
	From model.Kind
	To   model.Kind
}

// String renders the pair as "from -> to".
func (p Pair) String() string {
	return p.From.String() + " -> " + p.To.String()
}

// Func converts one color value into another model.
type Func func(model.Model) (model.Model, error)

// Registry is a concurrency-safe table of conversion functions keyed by Pair.
//
// The zero value is not usable; create one with NewRegistry or
// NewDefaultRegistry.
type Registry struct {
	mu    sync.RWMutex
	funcs map[Pair]Func
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		funcs: make(map[Pair]Func),
	}
}

// NewDefaultRegistry returns a registry seeded with RegisterDefaults.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry, seeding it on first use.
// Registrations made on it are visible to every later caller.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewDefaultRegistry()
	})
	return defaultRegistry
}

// Register installs fn for the (from, to) pair, replacing any previous
// function for that exact pair. It panics if fn is nil.
func (r *Registry) Register(from, to model.Kind, fn Func) {
	if fn == nil {
		panic(fmt.Sprintf("convert: nil converter for %s", Pair{from, to}))
	}
	r.mu.Lock()
	r.funcs[Pair{from, to}] = fn
	r.mu.Unlock()
}

// IsConvertible reports whether a function is registered for (from, to).
func (r *Registry) IsConvertible(from, to model.Kind) bool {
	r.mu.RLock()
	_, ok := r.funcs[Pair{from, to}]
	r.mu.RUnlock()
	return ok
}

// Convert converts src into the model identified by to.
//
// Returns a *NotRegisteredError if no function is registered for
// (src.Kind(), to), and otherwise whatever the registered function returns.
// The lock is released before the function runs, so a conversion may itself
// call back into the registry.
func (r *Registry) Convert(src model.Model, to model.Kind) (model.Model, error) {
	if src == nil {
		return nil, fmt.Errorf("convert: nil source value")
	}
	from := src.Kind()
	r.mu.RLock()
	fn, ok := r.funcs[Pair{from, to}]
	r.mu.RUnlock()
	if !ok {
		return nil, &NotRegisteredError{From: from, To: to}
	}
	return fn(src)
}

// Pairs lists the registered pairs ordered by source then target kind.
func (r *Registry) Pairs() []Pair {
	r.mu.RLock()
	pairs := make([]Pair, 0, len(r.funcs))
	for p := range r.funcs {
		pairs = append(pairs, p)
	}
	r.mu.RUnlock()

	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].From != pairs[j].From {
			return pairs[i].From < pairs[j].From
		}
		return pairs[i].To < pairs[j].To
	})
	return pairs
}

// Typed adapts a strongly typed conversion into a Func. The returned Func
// fails if it is handed a value of the wrong concrete type.
func Typed[S, T model.Model](fn func(S) (T, error)) Func {
	return func(m model.Model) (model.Model, error) {
		src, ok := m.(S)
		if !ok {
			var want S
			return nil, fmt.Errorf("convert: converter for %T received %T", want, m)
		}
		out, err := fn(src)
		if err != nil {
			return nil, err
		}
		return out, nil
	}
}

// To converts src into the model type T through r. T must be one of the
// concrete value types of the model package, e.g.
//
//	hsb, err := convert.To[model.Hsb](reg, rgb)
func To[T model.Model](r *Registry, src model.Model) (T, error) {
	var zero T
	out, err := r.Convert(src, zero.Kind())
	if err != nil {
		return zero, err
	}
	v, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("convert: %s converter returned %T", Pair{src.Kind(), zero.Kind()}, out)
	}
	return v, nil
}

// RegisterDefaults installs the default algorithm set into r, overwriting
// any functions already registered for those pairs.
func RegisterDefaults(r *Registry) {
	r.Register(model.KindRgb, model.KindGrayscale, Typed(RgbToGrayscaleLuma))
	r.Register(model.KindGrayscale, model.KindRgb, Typed(GrayscaleToRgb))
	r.Register(model.KindRgb, model.KindHsb, Typed(RgbToHsb))
	r.Register(model.KindHsb, model.KindRgb, Typed(HsbToRgb))
	r.Register(model.KindRgb, model.KindHsl, Typed(RgbToHsl))
	r.Register(model.KindHsl, model.KindRgb, Typed(HslToRgb))
	r.Register(model.KindRgb, model.KindCmyk, Typed(RgbToCmyk))
	r.Register(model.KindCmyk, model.KindRgb, Typed(CmykToRgb))
	r.Register(model.KindRgb, model.KindYCrCb, Typed(RgbToYCrCb))
	r.Register(model.KindYCrCb, model.KindRgb, Typed(YCrCbToRgb))
	r.Register(model.KindRgb, model.KindXyz, Typed(RgbToXyz))
	r.Register(model.KindXyz, model.KindRgb, Typed(XyzToRgb))
	r.Register(model.KindXyz, model.KindLab, Typed(XyzToLab))
	r.Register(model.KindLab, model.KindXyz, Typed(LabToXyz))
}

// GrayscaleAlgorithm returns the RGB to grayscale Func called name:
// "luma" (ITU-R BT.601 weights) or "average".
func GrayscaleAlgorithm(name string) (Func, error) {
	switch name {
	case "luma", "":
		return Typed(RgbToGrayscaleLuma), nil
	case "average":
		return Typed(RgbToGrayscaleAverage), nil
	default:
		return nil, fmt.Errorf("unknown grayscale algorithm %q (want luma or average)", name)
	}
}
