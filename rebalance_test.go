package arbor

import (
	"testing"
)

func TestRebalanceSkewedTree(t *testing.T) {
	tree := buildIntTree(t)
	for v := 1; v <= 15; v++ {
		if _, _, err := tree.Insert(intPayload(v)); err != nil {
			t.Fatalf("insert %d failed: %v", v, err)
		}
	}
	if tree.Height() != 15 {
		t.Fatalf("ascending inserts must stay skewed: height=%d want 15", tree.Height())
	}
	root := tree.Root()
	before := collectInts(t, tree)
	if err := tree.Rebalance(); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}
	// the root node keeps its payload and position, so the best achievable
	// shape is the root plus a balanced 14-node subtree
	if h := tree.Height(); h > 5 {
		t.Fatalf("tree not balanced: height=%d want <= 5", h)
	}
	if tree.Root() != root {
		t.Fatalf("root node object replaced during rebalance")
	}
	if string(tree.Root().Payload()) != "1" {
		t.Fatalf("root payload changed: got %q want 1", tree.Root().Payload())
	}
	after := collectInts(t, tree)
	if !equalInts(before, after) {
		t.Fatalf("in-order sequence changed: before %v, after %v", before, after)
	}
	for v := 1; v <= 15; v++ {
		mustFind(t, tree, v)
	}
	if tree.Len() != 15 {
		t.Fatalf("unexpected size after rebalance: %d", tree.Len())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestRebalanceDescendingInserts(t *testing.T) {
	tree := buildIntTree(t)
	for v := 15; v >= 1; v-- {
		if _, _, err := tree.Insert(intPayload(v)); err != nil {
			t.Fatalf("insert %d failed: %v", v, err)
		}
	}
	if tree.Height() != 15 {
		t.Fatalf("descending inserts must stay skewed: height=%d want 15", tree.Height())
	}
	if err := tree.Rebalance(); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}
	if h := tree.Height(); h > 5 {
		t.Fatalf("tree not balanced: height=%d want <= 5", h)
	}
	if string(tree.Root().Payload()) != "15" {
		t.Fatalf("root payload changed: got %q want 15", tree.Root().Payload())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestRebalanceAroundMedianRoot(t *testing.T) {
	// the root payload sits in the middle of the order, so both sides
	// balance to the minimal height
	tree := buildIntTree(t, 8)
	for v := 1; v <= 7; v++ {
		if _, _, err := tree.Insert(intPayload(v)); err != nil {
			t.Fatalf("insert %d failed: %v", v, err)
		}
	}
	for v := 9; v <= 15; v++ {
		if _, _, err := tree.Insert(intPayload(v)); err != nil {
			t.Fatalf("insert %d failed: %v", v, err)
		}
	}
	if tree.Height() != 8 {
		t.Fatalf("unexpected height before rebalance: %d want 8", tree.Height())
	}
	if err := tree.Rebalance(); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}
	if h := tree.Height(); h != 4 {
		t.Fatalf("unexpected height after rebalance: %d want 4", h)
	}
	if string(tree.Root().Payload()) != "8" {
		t.Fatalf("root payload changed: got %q want 8", tree.Root().Payload())
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestRebalanceReusesNodes(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3, 4, 5, 6, 7)
	nodesBefore := make(map[int]*Node)
	for v := 1; v <= 7; v++ {
		nodesBefore[v] = mustFind(t, tree, v)
	}
	if err := tree.Rebalance(); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}
	for v := 1; v <= 7; v++ {
		if mustFind(t, tree, v) != nodesBefore[v] {
			t.Fatalf("node for %d was reallocated during rebalance", v)
		}
	}
}

func TestRebalanceTrivialTrees(t *testing.T) {
	empty := buildIntTree(t)
	if err := empty.Rebalance(); err != nil {
		t.Fatalf("Rebalance on empty tree failed: %v", err)
	}
	single := buildIntTree(t, 42)
	root := single.Root()
	if err := single.Rebalance(); err != nil {
		t.Fatalf("Rebalance on single-node tree failed: %v", err)
	}
	if single.Root() != root || single.Len() != 1 {
		t.Fatalf("single-node tree changed by rebalance")
	}
	pair := buildIntTree(t, 1, 2)
	if err := pair.Rebalance(); err != nil {
		t.Fatalf("Rebalance on two-node tree failed: %v", err)
	}
	if got, want := collectInts(t, pair), []int{1, 2}; !equalInts(got, want) {
		t.Fatalf("unexpected in-order sequence: got %v want %v", got, want)
	}
	if err := pair.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestRebalanceKeepsTreeUsable(t *testing.T) {
	tree := buildIntTree(t, 1, 2, 3, 4, 5, 6, 7, 8, 9)
	if err := tree.Rebalance(); err != nil {
		t.Fatalf("Rebalance failed: %v", err)
	}
	if _, _, err := tree.Insert(intPayload(10)); err != nil {
		t.Fatalf("insert after rebalance failed: %v", err)
	}
	mustDelete(t, tree, 4, nil)
	if got, want := collectInts(t, tree), []int{1, 2, 3, 5, 6, 7, 8, 9, 10}; !equalInts(got, want) {
		t.Fatalf("unexpected in-order sequence: got %v want %v", got, want)
	}
	if err := tree.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}
