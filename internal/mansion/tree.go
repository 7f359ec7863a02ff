package mansion

// Walk calls fn for every room in pre-order (parent, left subtree, right subtree).
func Walk(root *Room, fn func(*Room)) {
	if root == nil {
		return
	}
	fn(root)
	Walk(root.Left, fn)
	Walk(root.Right, fn)
}

// Count returns the number of rooms in the tree.
func Count(root *Room) int {
	n := 0
	Walk(root, func(*Room) { n++ })
	return n
}

// Release tears the tree down in post-order: both subtrees are released before
// their parent. Each room's links and name are cleared and fn, if non-nil, is
// called once per room after that room is released. Returns the number of
// rooms released.
func Release(root *Room, fn func(*Room)) int {
	if root == nil {
		return 0
	}
	n := Release(root.Left, fn)
	n += Release(root.Right, fn)

	root.Left = nil
	root.Right = nil
	root.Name = ""
	root.Color = ""
	if fn != nil {
		fn(root)
	}
	return n + 1
}
