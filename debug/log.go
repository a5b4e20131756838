package debug

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/kdl-mutate/kdl"

	"github.com/mattn/go-isatty"
)

var (
	out  io.Writer = os.Stderr
	opts []kdl.EncodeOption
)

func init() {
	if isatty.IsTerminal(os.Stderr.Fd()) {
		opts = append(opts, kdl.EncodeColors(kdl.NewColors()))
	}
}

type KDL struct{ *kdl.Node }

func (y KDL) String() string {
	return render(y.Node)
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *kdl.Node:
			args[i] = render(x)
		case *kdl.Document:
			buf := bytes.NewBuffer(nil)
			if err := kdl.EncodeDocument(x, buf, opts...); err != nil {
				args[i] = fmt.Sprintf("[raw *kdl.Document] %v", x)
				continue
			}
			args[i] = strings.TrimSpace(buf.String())
		case kdl.Value:
			args[i] = x.GoString()
		case kdl.Property:
			args[i] = x.Key + "=" + x.Value.GoString()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}

func render(x *kdl.Node) string {
	if x == nil {
		return "<nil>"
	}
	buf := bytes.NewBuffer(nil)
	if err := kdl.Encode(x, buf, opts...); err != nil {
		return fmt.Sprintf("[raw *kdl.Node] %v", x.Name())
	}
	return strings.TrimSpace(buf.String())
}
