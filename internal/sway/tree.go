package sway

import "encoding/json"

// treeNode is one node of the `swaymsg -t get_tree` container tree. Windows
// can hang off either the tiled child list or the floating list at any
// depth, so both are walked.
type treeNode struct {
	ID               uint64          `json:"id"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	AppID            *string         `json:"app_id"`
	WindowProperties json.RawMessage `json:"window_properties"`
	Focused          bool            `json:"focused"`
	Nodes            []treeNode      `json:"nodes"`
	FloatingNodes    []treeNode      `json:"floating_nodes"`
}

// leaf is a candidate window together with the output (monitor) name
// inherited from the nearest enclosing output node.
type leaf struct {
	node   treeNode
	output string
}

// isWindow reports whether a container node actually hosts an application:
// native Wayland clients carry app_id, XWayland clients carry
// window_properties.
func (n *treeNode) isWindow() bool {
	if n.Type != "con" && n.Type != "floating_con" {
		return false
	}
	if n.AppID != nil {
		return true
	}
	return len(n.WindowProperties) > 0 && string(n.WindowProperties) != "null"
}

// collectLeaves walks the tree depth-first, threading the owning output name
// down as an explicit accumulator so every leaf knows its monitor.
func collectLeaves(node treeNode, output string, leaves []leaf) []leaf {
	if node.Type == "output" {
		output = node.Name
	}

	if node.isWindow() {
		leaves = append(leaves, leaf{node: node, output: output})
	}

	for _, child := range node.Nodes {
		leaves = collectLeaves(child, output, leaves)
	}
	for _, child := range node.FloatingNodes {
		leaves = collectLeaves(child, output, leaves)
	}
	return leaves
}
