package scene

import "testing"

func TestFindObjectAtPoint(t *testing.T) {
	child := leaf("b", 1, 1, 2, 2)
	child.ParentID = "a"
	root := container("a", 0, 0, 5, 5)
	root.Children = []*Object{child}
	roots := []*Object{root}

	tests := []struct {
		name    string
		x, y    int
		exclude *Object
		want    *Object
	}{
		{
			name: "child wins over parent",
			x:    1, y: 1,
			want: child,
		},
		{
			name: "parent where child does not cover",
			x:    4, y: 4,
			want: root,
		},
		{
			name: "miss",
			x:    10, y: 10,
			want: nil,
		},
		{
			name: "excluded child falls through to parent",
			x:    1, y: 1,
			exclude: child,
			want:    root,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindObjectAtPoint(roots, tt.x, tt.y, tt.exclude); got != tt.want {
				t.Errorf("FindObjectAtPoint(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFindObjectAtPointSkipsInvisibleAndLocked(t *testing.T) {
	hidden := container("hidden", 0, 0, 5, 5)
	hidden.Visible = false
	hiddenChild := leaf("hidden-child", 1, 1, 2, 2)
	hiddenChild.ParentID = "hidden"
	hidden.Children = []*Object{hiddenChild}

	locked := leaf("locked", 0, 0, 5, 5)
	locked.Locked = true

	if got := FindObjectAtPoint([]*Object{hidden}, 1, 1, nil); got != nil {
		t.Errorf("invisible subtree hit: %v, want nil", got)
	}
	if got := FindObjectAtPoint([]*Object{locked}, 1, 1, nil); got != nil {
		t.Errorf("locked object hit: %v, want nil", got)
	}
}

func TestFindObjectAtPointTopmostWins(t *testing.T) {
	bottom := leaf("bottom", 0, 0, 5, 5)
	top := leaf("top", 0, 0, 5, 5)
	roots := []*Object{bottom, top} // last = topmost

	if got := FindObjectAtPoint(roots, 2, 2, nil); got != top {
		t.Errorf("FindObjectAtPoint = %v, want topmost %v", got, top)
	}
}

func TestFindDropTarget(t *testing.T) {
	inner := container("inner", 2, 2, 4, 4)
	inner.ParentID = "outer"
	outer := container("outer", 0, 0, 10, 10)
	outer.Children = []*Object{inner}
	plain := leaf("plain", 20, 20, 5, 5)
	dragged := leaf("dragged", 40, 40, 2, 2)
	roots := []*Object{outer, plain, dragged}

	tests := []struct {
		name string
		x, y int
		want *Object
	}{
		{
			name: "innermost container wins",
			x:    3, y: 3,
			want: inner,
		},
		{
			name: "outer container outside inner",
			x:    8, y: 8,
			want: outer,
		},
		{
			name: "leaf is not a drop target",
			x:    22, y: 22,
			want: nil,
		},
		{
			name: "empty canvas",
			x:    50, y: 50,
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FindDropTarget(roots, tt.x, tt.y, dragged); got != tt.want {
				t.Errorf("FindDropTarget(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestFindDropTargetNeverReturnsDraggedSubtree(t *testing.T) {
	nested := container("nested", 1, 1, 5, 5)
	nested.ParentID = "dragged"
	dragged := container("dragged", 0, 0, 10, 10)
	dragged.Children = []*Object{nested}
	roots := []*Object{dragged}

	if got := FindDropTarget(roots, 2, 2, dragged); got != nil {
		t.Errorf("FindDropTarget inside dragged subtree = %v, want nil", got)
	}
}

func TestIsDescendantOf(t *testing.T) {
	grandchild := leaf("grandchild", 0, 0, 1, 1)
	child := container("child", 0, 0, 5, 5)
	child.Children = []*Object{grandchild}
	root := container("root", 0, 0, 10, 10)
	root.Children = []*Object{child}

	tests := []struct {
		name               string
		candidate, ancestor *Object
		want               bool
	}{
		{name: "direct child", candidate: child, ancestor: root, want: true},
		{name: "transitive", candidate: grandchild, ancestor: root, want: true},
		{name: "not its own descendant", candidate: root, ancestor: root, want: false},
		{name: "reversed relation", candidate: root, ancestor: child, want: false},
		{name: "nil candidate", candidate: nil, ancestor: root, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDescendantOf(tt.candidate, tt.ancestor); got != tt.want {
				t.Errorf("IsDescendantOf = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDescendantOfPanicsOnCycle(t *testing.T) {
	a := container("a", 0, 0, 5, 5)
	b := container("b", 0, 0, 5, 5)
	a.Children = []*Object{b}
	b.Children = []*Object{a} // corrupt on purpose

	defer func() {
		if recover() == nil {
			t.Error("expected panic on cyclic tree")
		}
	}()
	IsDescendantOf(leaf("x", 0, 0, 1, 1), a)
}

func TestObjectPath(t *testing.T) {
	grandchild := leaf("grandchild", 0, 0, 1, 1)
	child := container("child", 0, 0, 5, 5)
	child.Children = []*Object{grandchild}
	root := container("root", 0, 0, 10, 10)
	root.Children = []*Object{child}
	other := container("other", 20, 0, 5, 5)
	roots := []*Object{other, root}

	path := ObjectPath(roots, grandchild)
	want := []string{"root", "child", "grandchild"}
	if len(path) != len(want) {
		t.Fatalf("ObjectPath len = %d, want %d", len(path), len(want))
	}
	for i, id := range want {
		if path[i].ID != id {
			t.Errorf("path[%d] = %s, want %s", i, path[i].ID, id)
		}
	}

	if got := ObjectPath(roots, leaf("stranger", 0, 0, 1, 1)); got != nil {
		t.Errorf("ObjectPath(stranger) = %v, want nil", got)
	}
}

func TestInsertionIndex(t *testing.T) {
	makeRow := func() *Object {
		c := container("row", 0, 0, 20, 6)
		c.AutoLayout = DefaultAutoLayout()
		for i, x := range []int{0, 5, 10} {
			child := leaf(string(rune('a'+i)), x, 0, 4, 4)
			child.ParentID = "row"
			c.Children = append(c.Children, child)
		}
		return c
	}

	tests := []struct {
		name string
		x, y int
		want int
	}{
		// Midpoints are 2, 7, 12.
		{name: "before first midpoint", x: 1, y: 0, want: 0},
		{name: "between first and second midpoints", x: 6, y: 0, want: 1},
		{name: "between second and third midpoints", x: 8, y: 0, want: 2},
		{name: "past the last midpoint", x: 15, y: 0, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := makeRow()
			if got := InsertionIndex(c, tt.x, tt.y, nil); got != tt.want {
				t.Errorf("InsertionIndex(%d) = %d, want %d", tt.x, got, tt.want)
			}
		})
	}
}

func TestInsertionIndexSkipsDragged(t *testing.T) {
	c := container("row", 0, 0, 20, 6)
	c.AutoLayout = DefaultAutoLayout()
	dragged := leaf("dragged", 0, 0, 4, 4)
	other := leaf("other", 5, 0, 4, 4)
	for _, o := range []*Object{dragged, other} {
		o.ParentID = "row"
		c.Children = append(c.Children, o)
	}

	// Drop before the remaining sibling's midpoint (7): slot 0 once the
	// dragged object is out of the sequence.
	if got := InsertionIndex(c, 3, 0, dragged); got != 0 {
		t.Errorf("InsertionIndex = %d, want 0", got)
	}
	// Past it: append.
	if got := InsertionIndex(c, 9, 0, dragged); got != 1 {
		t.Errorf("InsertionIndex = %d, want 1", got)
	}
}

func TestInsertionIndexVerticalAndFreeForm(t *testing.T) {
	col := container("col", 0, 0, 6, 20)
	col.AutoLayout = AutoLayout{Enabled: true, Direction: Vertical}
	a := leaf("a", 0, 0, 4, 4)
	b := leaf("b", 0, 5, 4, 4)
	col.Children = []*Object{a, b}

	if got := InsertionIndex(col, 0, 3, nil); got != 1 {
		t.Errorf("vertical InsertionIndex = %d, want 1", got)
	}

	free := container("free", 0, 0, 10, 10)
	free.Children = []*Object{a, b}
	if got := InsertionIndex(free, 0, 0, nil); got != 2 {
		t.Errorf("free-form InsertionIndex = %d, want append (2)", got)
	}
}
