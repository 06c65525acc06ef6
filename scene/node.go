package scene

import (
	"github.com/sean-bowman/portfolio/core"
	"github.com/sean-bowman/portfolio/math"
)

// Node represents an object in the scene graph
type Node struct {
	Name      string
	Transform core.Transform
	Parent    *Node
	Children  []*Node
	Mesh      *Mesh
	Visible   bool

	// Cached world transform
	worldMatrixDirty bool
	worldMatrix      math.Mat4
}

func NewNode(name string) *Node {
	return &Node{
		Name:             name,
		Transform:        core.NewTransform(),
		Children:         make([]*Node, 0),
		Visible:          true,
		worldMatrixDirty: true,
	}
}

func (n *Node) AddChild(child *Node) {
	if child.Parent != nil {
		child.Parent.RemoveChild(child)
	}
	child.Parent = n
	n.Children = append(n.Children, child)
	child.MarkWorldMatrixDirty()
}

func (n *Node) RemoveChild(child *Node) {
	for i, c := range n.Children {
		if c == child {
			n.Children = append(n.Children[:i], n.Children[i+1:]...)
			child.Parent = nil
			child.MarkWorldMatrixDirty()
			return
		}
	}
}

func (n *Node) GetWorldMatrix() math.Mat4 {
	if n.worldMatrixDirty {
		localMatrix := n.Transform.GetMatrix()
		if n.Parent != nil {
			n.worldMatrix = n.Parent.GetWorldMatrix().Mul(localMatrix)
		} else {
			n.worldMatrix = localMatrix
		}
		n.worldMatrixDirty = false
	}
	return n.worldMatrix
}

func (n *Node) MarkWorldMatrixDirty() {
	n.worldMatrixDirty = true
	for _, child := range n.Children {
		child.MarkWorldMatrixDirty()
	}
}

func (n *Node) SetPosition(pos math.Vec3) {
	n.Transform.Position = pos
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetRotation(rot math.Quaternion) {
	n.Transform.Rotation = rot
	n.MarkWorldMatrixDirty()
}

func (n *Node) SetScale(scale math.Vec3) {
	n.Transform.Scale = scale
	n.MarkWorldMatrixDirty()
}

// SetUniformScale scales the node by the same factor on every axis.
func (n *Node) SetUniformScale(s float32) {
	n.SetScale(math.Vec3{X: s, Y: s, Z: s})
}

func (n *Node) Rotate(axis math.Vec3, angle float32) {
	rotation := math.QuaternionFromAxisAngle(axis, angle)
	n.Transform.Rotation = n.Transform.Rotation.Mul(rotation).Normalize()
	n.MarkWorldMatrixDirty()
}

// Traverse visits all nodes in the graph
func (n *Node) Traverse(callback func(*Node)) {
	callback(n)
	for _, child := range n.Children {
		child.Traverse(callback)
	}
}
