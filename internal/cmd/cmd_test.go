package cmd

import (
	"bytes"
	"encoding/json"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/colorpad-mcp/internal/bridge"
	"github.com/ironsheep/colorpad-mcp/internal/model"
)

// run executes a fresh command tree with an isolated HOME and returns what
// it wrote to stdout.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Cleanup(func() { log.SetOutput(os.Stderr) })

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestConvert_Text(t *testing.T) {
	out, err := run(t, "", "convert", "rgb", "255", "0", "0")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 9 {
		t.Fatalf("got %d lines, want 9:\n%s", len(lines), out)
	}
	if lines[0] != "HEX: #FF0000" {
		t.Errorf("first line: got %q", lines[0])
	}
	if lines[1] != "RGB: (255,0,0)" {
		t.Errorf("second line: got %q", lines[1])
	}
}

func TestConvert_SingleArgumentValue(t *testing.T) {
	joined, err := run(t, "", "convert", "hsb", "20,100,100")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	split, err := run(t, "", "convert", "hsb", "20", "100", "100")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if joined != split {
		t.Errorf("comma-joined and separate arguments disagree:\n%s\nvs\n%s", joined, split)
	}
}

func TestConvert_JSON(t *testing.T) {
	out, err := run(t, "", "convert", "name", "teal", "--output", "json")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	var snap bridge.Snapshot
	if err := json.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if diff := cmp.Diff([]int{0, 128, 128}, snap.Rgb); diff != "" {
		t.Errorf("rgb mismatch (-want +got):\n%s", diff)
	}
	if snap.Hex != "#008080" {
		t.Errorf("hex: got %s", snap.Hex)
	}
}

func TestConvert_YAML(t *testing.T) {
	out, err := run(t, "", "convert", "hex", "#f00", "-o", "yaml")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}

	var snap bridge.Snapshot
	if err := yaml.Unmarshal([]byte(out), &snap); err != nil {
		t.Fatalf("output is not YAML: %v\n%s", err, out)
	}
	if snap.Hex != "#FF0000" || snap.Grayscale != 76 {
		t.Errorf("snapshot: got %+v", snap)
	}
	if !strings.Contains(out, "rgb: [255, 0, 0]") {
		t.Errorf("slices should render in flow style:\n%s", out)
	}
}

func TestConvert_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want error
	}{
		{"out of range", []string{"convert", "rgb", "256,0,0"}, model.ErrRange},
		{"bad text", []string{"convert", "lab", "a,b,c"}, model.ErrFormat},
		{"unknown model", []string{"convert", "pantone", "1"}, model.ErrFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, "", tt.args...)
			if !errors.Is(err, tt.want) {
				t.Errorf("error: got %v, want %v", err, tt.want)
			}
		})
	}

	if _, err := run(t, "", "convert", "rgb", "1,2,3", "-o", "xml"); err == nil {
		t.Error("expected error for unknown output format")
	}
	if _, err := run(t, "", "convert", "rgb"); err == nil {
		t.Error("expected error for missing value")
	}
}

func TestConvert_LowerHexFlag(t *testing.T) {
	out, err := run(t, "", "--upper-hex=false", "convert", "rgb", "255,0,0")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.HasPrefix(out, "HEX: #ff0000\n") {
		t.Errorf("got %q", out)
	}
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "colorpad.yaml")
	if err := os.WriteFile(path, []byte("upper_hex: false\ngrayscale: average\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "--config", path, "convert", "rgb", "255,128,64")
	if err != nil {
		t.Fatalf("convert failed: %v", err)
	}
	if !strings.HasPrefix(out, "HEX: #ff8040\n") {
		t.Errorf("upper_hex from file ignored: %q", out)
	}
	if !strings.Contains(out, "Grayscale: 149\n") {
		t.Errorf("average grayscale from file ignored:\n%s", out)
	}

	if _, err := run(t, "", "--config", filepath.Join(t.TempDir(), "missing.yaml"), "models"); err == nil {
		t.Error("expected error for missing explicit config file")
	}
}

func TestInvalidConfiguration(t *testing.T) {
	if _, err := run(t, "", "--bridge", "fast", "models"); err == nil {
		t.Error("expected error for unknown bridge variant")
	}
	if _, err := run(t, "", "--grayscale", "median", "models"); err == nil {
		t.Error("expected error for unknown grayscale algorithm")
	}
}

func TestModels(t *testing.T) {
	t.Setenv("COLORPAD_BRIDGE", "eager")

	out, err := run(t, "", "--grayscale", "average", "models")
	if err != nil {
		t.Fatalf("models failed: %v", err)
	}

	for _, want := range []string{
		"Models: rgb, grayscale, hsb, hsl, cmyk, ycrcb, xyz, lab\n",
		"Grayscale: average\n",
		"Bridge: eager\n",
		"  rgb -> grayscale\n",
		"  xyz -> lab\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "rgb -> lab") {
		t.Errorf("rgb -> lab should not be a direct conversion:\n%s", out)
	}
}

func TestHarmony(t *testing.T) {
	out, err := run(t, "", "harmony", "hex", "ff0000", "--scheme", "triadic")
	if err != nil {
		t.Fatalf("harmony failed: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	var hexes []string
	for _, line := range lines {
		hexes = append(hexes, strings.Fields(line)[0])
	}
	if diff := cmp.Diff([]string{"#FF0000", "#00FF00", "#0000FF"}, hexes); diff != "" {
		t.Errorf("triadic mismatch (-want +got):\n%s", diff)
	}

	out, err = run(t, "", "harmony", "hsb", "0,100,100", "-s", "analogous", "--angle", "500")
	if err != nil {
		t.Fatalf("harmony failed: %v", err)
	}
	if !strings.Contains(out, "HSB: (90") || !strings.Contains(out, "HSB: (270") {
		t.Errorf("angle should clamp to 90:\n%s", out)
	}

	if _, err := run(t, "", "harmony", "rgb", "1,2,3", "--scheme", "pastel"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestDifference(t *testing.T) {
	out, err := run(t, "", "difference", "name", "white", "hex", "000")
	if err != nil {
		t.Fatalf("difference failed: %v", err)
	}
	if !strings.HasPrefix(out, "#FFFFFF vs #000000\n") {
		t.Errorf("got %q", out)
	}
	if !strings.Contains(out, "CIE76:") || !strings.Contains(out, "CIEDE2000:") {
		t.Errorf("missing metrics:\n%s", out)
	}

	same, err := run(t, "", "difference", "rgb", "10,20,30", "rgb", "10,20,30")
	if err != nil {
		t.Fatalf("difference failed: %v", err)
	}
	if !strings.Contains(same, "CIE76:     0.0000\n") {
		t.Errorf("identical colors should be 0 apart:\n%s", same)
	}

	if _, err := run(t, "", "difference", "rgb", "1,2,3"); err == nil {
		t.Error("expected error for missing second color")
	}
}

func TestServe(t *testing.T) {
	in := `{"jsonrpc":"2.0","id":1,"method":"ping"}` + "\n" +
		`{"jsonrpc":"2.0","id":2,"method":"initialize"}` + "\n"

	for _, args := range [][]string{{}, {"serve"}} {
		out, err := run(t, in, args...)
		if err != nil {
			t.Fatalf("serve %v failed: %v", args, err)
		}
		if !strings.Contains(out, `"id":1`) || !strings.Contains(out, `"colorpad-mcp"`) {
			t.Errorf("serve %v output:\n%s", args, out)
		}
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "colorpad-mcp "+Version+"\n") {
		t.Errorf("got %q", out)
	}
}
