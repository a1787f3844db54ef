package ast

// Walk visits every node of the tree rooted at root bottom-up: a node is
// visited after all of its children. Siblings are visited last to first, so
// by the time a node is visited its following siblings are in their final
// shape too (case fallthrough copies bodies from later cases).
//
// visit may rewrite the node it is given in place. Walk stops at the first error visit returns.
func Walk(root *Node, visit func(*Node) error) error {
	if root == nil {
		return nil
	}
	for i := len(root.children) - 1; i >= 0; i-- {
		if err := Walk(root.children[i], visit); err != nil {
			return err
		}
	}
	return visit(root)
}

// Inspect calls f on every node of the tree rooted at root, parents before children.
// If f returns false the children of that node are skipped.
func Inspect(root *Node, f func(*Node) bool) {
	if root == nil || !f(root) {
		return
	}
	for _, child := range root.children {
		Inspect(child, f)
	}
}
