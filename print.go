package arbor

/*
BSD 3-Clause License

Copyright (c) 2024–25, the arbor authors

Please refer to the License file in the repository root.

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// PreviewFunc renders a payload for diagnostic output. Implementations
// should return a short single-line string; the default preview clips to
// previewWidth display cells.
type PreviewFunc func(payload []byte) string

// previewWidth is the display budget for payload previews, measured in
// fixed-width character cells.
const previewWidth = 8

// branch glyphs for the sideways rendering
const (
	junctionRight = "┌── "
	junctionLeft  = "└── "
	indentBar     = "│   "
	indentBlank   = "    "
)

// PrettyPrint renders the tree sideways onto w, the right subtree above each
// node and the left subtree below it, one line per node:
//
//	┌── [node=0xc000014300 size=2 L=0x0 R=0x0 data=“15”]
//	[node=0xc0000142a0 size=2 L=0xc0000142d0 R=0xc000014300 data=“10”]
//	└── [node=0xc0000142d0 size=1 L=0x0 R=0x0 data=“5”]
//
// preview may be nil, in which case payloads render as quoted text when they
// are printable UTF-8 and as a hex dump of the leading bytes otherwise, both
// clipped to previewWidth cells. Node lines are colorized when w is a
// terminal. Diagnostic only; the tree is not modified.
func (t *Tree) PrettyPrint(w io.Writer, preview PreviewFunc) error {
	if !t.initialized() {
		return ErrNotInitialized
	}
	if w == nil {
		return ErrNilWriter
	}
	p := newTreePrinter(w, preview)
	if t.root == nil {
		p.printf("(empty tree)\n")
		return p.err
	}
	if t.root.right != nil {
		p.subtree(t.root.right, "", true)
	}
	p.nodeLine(t.root, "")
	if t.root.left != nil {
		p.subtree(t.root.left, "", false)
	}
	return p.err
}

type treePrinter struct {
	w       io.Writer
	preview PreviewFunc
	addr    *color.Color
	data    *color.Color
	err     error
}

func newTreePrinter(w io.Writer, preview PreviewFunc) *treePrinter {
	if preview == nil {
		context := uax11.ContextFromEnvironment()
		preview = func(payload []byte) string {
			return defaultPreview(payload, context)
		}
	}
	p := &treePrinter{
		w:       w,
		preview: preview,
		addr:    color.New(color.FgBlue),
		data:    color.New(color.FgGreen),
	}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.addr.EnableColor()
		p.data.EnableColor()
	} else {
		p.addr.DisableColor()
		p.data.DisableColor()
	}
	return p
}

// subtree renders n and its children sideways. The prefix accumulates the
// continuation glyphs of all ancestors; isRight selects the junction and
// which side of the parent's line the continuation bars belong to.
func (p *treePrinter) subtree(n *Node, prefix string, isRight bool) {
	abovePrefix, belowPrefix := prefix+indentBar, prefix+indentBar
	if isRight {
		abovePrefix = prefix + indentBlank
	} else {
		belowPrefix = prefix + indentBlank
	}
	if n.right != nil {
		p.subtree(n.right, abovePrefix, true)
	}
	if isRight {
		p.nodeLine(n, prefix+junctionRight)
	} else {
		p.nodeLine(n, prefix+junctionLeft)
	}
	if n.left != nil {
		p.subtree(n.left, belowPrefix, false)
	}
}

func (p *treePrinter) nodeLine(n *Node, prefix string) {
	p.printf("%s[node=%s size=%d L=%s R=%s data=%s]\n",
		prefix,
		p.addr.Sprintf("%p", n),
		len(n.payload),
		p.addr.Sprintf("%p", n.left),
		p.addr.Sprintf("%p", n.right),
		p.data.Sprint(p.preview(n.payload)))
}

func (p *treePrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

// defaultPreview renders printable UTF-8 payloads as quoted text and
// everything else as a hex dump of the leading bytes, clipped to
// previewWidth display cells with an ellipsis marking truncation.
func defaultPreview(payload []byte, context *uax11.Context) string {
	if isPrintable(payload) {
		return "“" + clipCells(string(payload), previewWidth, context) + "”"
	}
	lim := min(len(payload), previewWidth)
	var bf strings.Builder
	bf.WriteString("0x")
	for _, b := range payload[:lim] {
		fmt.Fprintf(&bf, "%02X", b)
	}
	if len(payload) > lim {
		bf.WriteString("…")
	}
	return bf.String()
}

func isPrintable(payload []byte) bool {
	if !utf8.Valid(payload) {
		return false
	}
	for _, r := range string(payload) {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

// clipCells cuts s after at most cells fixed-width character positions,
// respecting grapheme boundaries and East Asian wide glyphs. The appended
// ellipsis is not counted against the budget.
func clipCells(s string, cells int, context *uax11.Context) string {
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= cells {
		return s
	}
	fit := 0
	for i := range s {
		if uax11.StringWidth(grapheme.StringFromString(s[:i]), context) > cells {
			break
		}
		fit = i
	}
	return s[:fit] + "…"
}
