package debug

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/signadot/richtext/encode"
	"github.com/signadot/richtext/ir"
)

var logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
	Level: slog.LevelDebug,
	ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
		if a.Key == slog.TimeKey {
			return slog.Attr{}
		}
		return a
	},
}))

// Logger returns the logger tracing is written to.
func Logger() *slog.Logger {
	return logger
}

// SetLogger replaces the tracing logger.
func SetLogger(l *slog.Logger) {
	logger = l
}

// IR renders an *ir.Node in compact flow style when formatted with %s or
// %v.
type IR struct{ *ir.Node }

func (y IR) String() string {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(y.Node, buf, encode.EncodeBrackets(true), encode.EncodeWire(true)); err != nil {
		return fmt.Sprintf("[raw *ir.Node] %v", y.Node)
	}
	return string(bytes.TrimSpace(buf.Bytes()))
}

// Logf formats msg like fmt.Sprintf, rendering *ir.Node arguments as with
// IR, and logs it at debug level.
func Logf(msg string, args ...any) {
	for i := range args {
		if x, ok := args[i].(*ir.Node); ok {
			args[i] = IR{x}
		}
	}
	logger.Debug(fmt.Sprintf(msg, args...))
}
