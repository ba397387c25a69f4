package visual

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/harrison/searchbench/internal/search"
)

// TikZ emits a tikzpicture with one Beamer overlay (\only<k>) per step.
// The midpoint is filled orange, eliminated elements gray, active ones white.
type TikZ struct{}

func (t *TikZ) Begin(w io.Writer, values []int, target int) error {
	var b strings.Builder
	b.WriteString("% Code automatically generated by searchbench\n")
	b.WriteString(`\begin{tikzpicture}[scale=0.8, transform shape]` + "\n")
	b.WriteString("  % Nodes style\n")
	b.WriteString(`  \tikzstyle{mybox} = [draw, minimum size=0.8cm, align=center]` + "\n")
	_, err := io.WriteString(w, b.String())
	return err
}

func (t *TikZ) Step(w io.Writer, values []int, p search.Probe) error {
	var b strings.Builder
	fmt.Fprintf(&b, "  \\only<%d>{\n", p.Step)

	for i, v := range values {
		var style string
		switch Classify(i, p) {
		case Midpoint:
			style = "fill=orange!50"
		case Eliminated:
			style = "fill=gray!30, text=gray"
		default:
			style = "fill=white"
		}
		fmt.Fprintf(&b, "    \\node[mybox, %s] at (%d, 0) {%d};\n", style, i, v)
		fmt.Fprintf(&b, "    \\node[font=\\tiny, text=gray] at (%d, -0.6) {%d};\n", i, i)
	}

	center := strconv.FormatFloat(float64(len(values))/2, 'f', -1, 64)
	fmt.Fprintf(&b, "    \\node[anchor=north] at (%s, -1.5) {%s};\n", center, Caption(values, p))
	b.WriteString("  }\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func (t *TikZ) End(w io.Writer, values []int, target int, res search.Result) error {
	_, err := io.WriteString(w, `\end{tikzpicture}`+"\n")
	return err
}
