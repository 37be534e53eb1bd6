package debug

import (
	"bytes"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/signadot/richtext/ir"
)

func TestLogf(t *testing.T) {
	buf := bytes.NewBuffer(nil)
	old := Logger()
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(old)

	Logf("decoded %s at %d", IR{ir.FromString("AU").WithTag("!flag")}, 3)
	out := buf.String()
	if !strings.Contains(out, "decoded !flag AU at 3") {
		t.Errorf("unexpected log output %q", out)
	}
}

func TestIRString(t *testing.T) {
	node := ir.FromKeyVals([]ir.KeyVal{
		{Key: ir.FromString("url"), Val: ir.FromString("x")},
	}).WithTag("!hyperlink")
	if got, want := (IR{node}).String(), "!hyperlink {url: x}"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
	if got, want := fmt.Sprintf("%v", IR{ir.FromInt(3)}), "3"; got != want {
		t.Errorf("got %q want %q", got, want)
	}
}
