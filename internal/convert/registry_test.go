package convert

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ironsheep/colorpad-mcp/internal/model"
)

func mustRgb(t *testing.T, r, g, b int) model.Rgb {
	t.Helper()
	c, err := model.NewRgb(r, g, b)
	if err != nil {
		t.Fatalf("NewRgb(%d,%d,%d): %v", r, g, b, err)
	}
	return c
}

func TestRegistry_NotRegistered(t *testing.T) {
	reg := NewRegistry()
	_, err := reg.Convert(model.White, model.KindHsb)
	if !errors.Is(err, ErrNotRegistered) {
		t.Fatalf("want ErrNotRegistered, got %v", err)
	}
	var nre *NotRegisteredError
	if !errors.As(err, &nre) {
		t.Fatalf("want *NotRegisteredError, got %T", err)
	}
	if nre.From != model.KindRgb || nre.To != model.KindHsb {
		t.Errorf("error pair = %s -> %s", nre.From, nre.To)
	}
}

func TestRegistry_RegisterAndConvert(t *testing.T) {
	reg := NewRegistry()
	if reg.IsConvertible(model.KindRgb, model.KindGrayscale) {
		t.Fatal("empty registry reports rgb -> grayscale")
	}

	reg.Register(model.KindRgb, model.KindGrayscale, Typed(RgbToGrayscaleLuma))
	if !reg.IsConvertible(model.KindRgb, model.KindGrayscale) {
		t.Fatal("registered pair not convertible")
	}
	if reg.IsConvertible(model.KindGrayscale, model.KindRgb) {
		t.Error("pairs must be directional")
	}

	got, err := reg.Convert(mustRgb(t, 255, 128, 64), model.KindGrayscale)
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if g := got.(model.Grayscale).Value(); g != 159 {
		t.Errorf("luma = %d, want 159", g)
	}
}

func TestRegistry_LastWriteWins(t *testing.T) {
	reg := NewRegistry()
	reg.Register(model.KindRgb, model.KindGrayscale, Typed(RgbToGrayscaleLuma))
	reg.Register(model.KindRgb, model.KindGrayscale, Typed(RgbToGrayscaleAverage))

	got, err := To[model.Grayscale](reg, mustRgb(t, 255, 128, 64))
	if err != nil {
		t.Fatalf("To: %v", err)
	}
	if got.Value() != 149 {
		t.Errorf("average = %d, want 149", got.Value())
	}
}

func TestRegistry_NilFuncPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Register(nil) did not panic")
		}
	}()
	NewRegistry().Register(model.KindRgb, model.KindHsb, nil)
}

func TestRegistry_NilSource(t *testing.T) {
	if _, err := NewDefaultRegistry().Convert(nil, model.KindHsb); err == nil {
		t.Error("expected error for nil source")
	}
}

func TestRegistry_ConverterErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	reg := NewRegistry()
	reg.Register(model.KindRgb, model.KindHsb, func(model.Model) (model.Model, error) {
		return nil, boom
	})
	if _, err := reg.Convert(model.Black, model.KindHsb); !errors.Is(err, boom) {
		t.Errorf("got %v, want boom", err)
	}
}

func TestTyped_WrongInput(t *testing.T) {
	fn := Typed(RgbToHsb)
	g, _ := model.NewGrayscale(10)
	if _, err := fn(g); err == nil {
		t.Error("expected error for mismatched input type")
	}
}

func TestDefaultRegistry_Pairs(t *testing.T) {
	want := []Pair{
		{model.KindRgb, model.KindGrayscale},
		{model.KindRgb, model.KindHsb},
		{model.KindRgb, model.KindHsl},
		{model.KindRgb, model.KindCmyk},
		{model.KindRgb, model.KindYCrCb},
		{model.KindRgb, model.KindXyz},
		{model.KindGrayscale, model.KindRgb},
		{model.KindHsb, model.KindRgb},
		{model.KindHsl, model.KindRgb},
		{model.KindCmyk, model.KindRgb},
		{model.KindYCrCb, model.KindRgb},
		{model.KindXyz, model.KindRgb},
		{model.KindXyz, model.KindLab},
		{model.KindLab, model.KindXyz},
	}
	if diff := cmp.Diff(want, NewDefaultRegistry().Pairs()); diff != "" {
		t.Errorf("Pairs mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRegistry_NoDirectLabFromRgb(t *testing.T) {
	reg := NewDefaultRegistry()
	if reg.IsConvertible(model.KindRgb, model.KindLab) {
		t.Error("rgb -> lab should go through xyz")
	}
	if reg.IsConvertible(model.KindHsb, model.KindHsl) {
		t.Error("hsb -> hsl should go through rgb")
	}
}

func TestDefault_IsShared(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default returned different registries")
	}
	if !Default().IsConvertible(model.KindXyz, model.KindLab) {
		t.Error("default registry not seeded")
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	reg := NewDefaultRegistry()
	src := mustRgb(t, 12, 34, 56)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			reg.Register(model.KindRgb, model.KindGrayscale, Typed(RgbToGrayscaleLuma))
		}()
		go func() {
			defer wg.Done()
			if _, err := reg.Convert(src, model.KindHsb); err != nil {
				t.Errorf("Convert: %v", err)
			}
		}()
	}
	wg.Wait()
}

func TestGrayscaleAlgorithm(t *testing.T) {
	tests := []struct {
		name    string
		want    uint8
		wantErr bool
	}{
		{"luma", 159, false},
		{"", 159, false},
		{"average", 149, false},
		{"median", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn, err := GrayscaleAlgorithm(tt.name)
			if tt.wantErr {
				if err == nil {
					t.Error("expected error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			got, err := fn(mustRgb(t, 255, 128, 64))
			if err != nil {
				t.Fatalf("convert: %v", err)
			}
			if v := got.(model.Grayscale).Value(); v != tt.want {
				t.Errorf("got %d, want %d", v, tt.want)
			}
		})
	}
}
