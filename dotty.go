package arbor

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/uax/uax11"
)

type nodeids struct {
	idTable map[*Node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*Node]int),
		max:     1,
	}
}

func (ids nodeids) find(node *Node) int {
	return ids.idTable[node]
}

func (ids *nodeids) alloc(node *Node) int {
	if id := ids.find(node); id > 0 {
		return id
	}
	ids.idTable[node] = ids.max
	ids.max++
	return ids.max - 1
}

// Dot outputs the internal structure of the tree in Graphviz DOT format
// (for debugging purposes). Leaves render as boxes, inner nodes as filled
// circles; a missing child of an inner node renders as a small empty circle
// so one-child shapes stay visible.
func (t *Tree) Dot(w io.Writer) error {
	if !t.initialized() {
		return ErrNotInitialized
	}
	if w == nil {
		return ErrNilWriter
	}
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable()
	context := uax11.ContextFromEnvironment()
	nodelist, edgelist := "", ""
	t.Each(func(node *Node) bool {
		ID := ids.alloc(node)
		label := dotLabel(node, context)
		if node.left == nil && node.right == nil {
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,shape=box];\n", ID, label)
			return true
		}
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\",style=filled,color=black,fillcolor=\"#a3d7e4\",shape=circle];\n",
			ID, label)
		if node.left == nil {
			nilid := ID + 10000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.left))
		}
		if node.right == nil {
			nilid := ID + 20000
			nodelist += fmt.Sprintf("\"%d\" %s;\n", nilid, emptyNode())
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, nilid)
		} else {
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(node.right))
		}
		return true
	})
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	_, err := io.WriteString(w, "}\n")
	return err
}

func dotLabel(node *Node, context *uax11.Context) string {
	preview := defaultPreview(node.payload, context)
	preview = strings.ReplaceAll(preview, `"`, `\"`)
	return fmt.Sprintf("%d\\n%s", len(node.payload), preview)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.4]"
}
