// Package layout computes Gantt and calendar geometry from a flat task list.
//
// Every pass is a pure function of its inputs: the task slice is never
// mutated and the returned records share no state with later passes.
package layout

import (
	"iter"
	"slices"

	"go.trai.ch/scaffold/internal/core/domain"
)

// Node is one task in the reconstructed hierarchy.
type Node struct {
	Task     domain.Task
	Parent   int
	Children []int
	Depth    int
}

// Tree is an arena of nodes in pre-order. Parent and child references are
// indices into Nodes; a root has Parent -1.
type Tree struct {
	Nodes []Node
	Roots []int

	gaps []int
}

// BuildTree reconstructs the hierarchy implied by the tasks' indent levels.
// Tasks are ordered by OrderIndex first; ties keep their input order.
func BuildTree(tasks []domain.Task) *Tree {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b domain.Task) int {
		return a.OrderIndex - b.OrderIndex
	})

	tree := &Tree{Nodes: make([]Node, len(sorted))}
	stack := make([]int, 0, 8)
	prevLevel := -1

	for i, task := range sorted {
		level := max(task.IndentLevel, 0)
		if level > prevLevel+1 {
			tree.gaps = append(tree.gaps, i)
		}
		prevLevel = level

		for len(stack) > 0 && max(tree.Nodes[stack[len(stack)-1]].Task.IndentLevel, 0) >= level {
			stack = stack[:len(stack)-1]
		}

		node := Node{Task: task, Parent: -1}
		if len(stack) > 0 {
			parent := stack[len(stack)-1]
			node.Parent = parent
			node.Depth = tree.Nodes[parent].Depth + 1
			tree.Nodes[parent].Children = append(tree.Nodes[parent].Children, i)
		} else {
			tree.Roots = append(tree.Roots, i)
		}
		tree.Nodes[i] = node
		stack = append(stack, i)
	}

	return tree
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.Nodes)
}

// All yields node indices in pre-order.
func (t *Tree) All() iter.Seq2[int, *Node] {
	return func(yield func(int, *Node) bool) {
		for i := range t.Nodes {
			if !yield(i, &t.Nodes[i]) {
				return
			}
		}
	}
}

// Gaps returns the indices of nodes whose indent level jumped more than one
// level below the preceding task. Such nodes are attached to the nearest
// shallower ancestor.
func (t *Tree) Gaps() []int {
	return t.gaps
}

// IsSummary reports whether the node has children or was declared a group.
func (t *Tree) IsSummary(i int) bool {
	return len(t.Nodes[i].Children) > 0 || t.Nodes[i].Task.IsGroup
}
