package vdom

// VNode represents a virtual DOM node.
type VNode struct {
	Tag        string         // The HTML tag name
	Attributes map[string]any // The attributes of the node
	Children   []*VNode       // The child nodes
	Content    string         // The text content of the node
	OnClick    func()         // Optional click event handler

	// callbacks holds js.Func values created while mounting this node so the
	// renderer can release them when the node is patched away.
	callbacks []any
}

// NewVNode creates a new VNode.
// An "onClick" attribute of type func() is lifted into OnClick.
func NewVNode(tag string, attributes map[string]any, children []*VNode, content string) *VNode {
	var onClick func()
	if attributes != nil {
		if v, ok := attributes["onClick"]; ok {
			if f, ok := v.(func()); ok {
				onClick = f
				// Remove from attributes so it doesn't get rendered as an HTML attribute
				delete(attributes, "onClick")
			}
		}
	}
	return &VNode{
		Tag:        tag,
		Attributes: attributes,
		Children:   children,
		Content:    content,
		OnClick:    onClick,
	}
}

// ID returns the node's id attribute, or "" if it has none.
func (v *VNode) ID() string {
	if v == nil || v.Attributes == nil {
		return ""
	}
	id, _ := v.Attributes["id"].(string)
	return id
}

// FindByID returns the first node in the tree (depth-first) with the given id.
func (v *VNode) FindByID(id string) *VNode {
	if v == nil {
		return nil
	}
	if v.ID() == id {
		return v
	}
	for _, child := range v.Children {
		if found := child.FindByID(id); found != nil {
			return found
		}
	}
	return nil
}

// AddEventCallback stores a callback created for this node.
func (v *VNode) AddEventCallback(cb any) {
	v.callbacks = append(v.callbacks, cb)
}

// GetEventCallbacks returns the callbacks stored on this node.
func (v *VNode) GetEventCallbacks() []any {
	return v.callbacks
}

// ClearEventCallbacks forgets the stored callbacks.
func (v *VNode) ClearEventCallbacks() {
	v.callbacks = nil
}

// Div creates a <div> VNode with the given children and allows passing attributes.
func Div(attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("div", attrs, children, "")
}

// Heading creates an <h1>..<h6> VNode. Levels outside 1-6 are clamped.
func Heading(level int, text string, attrs map[string]any) *VNode {
	if level < 1 {
		level = 1
	} else if level > 6 {
		level = 6
	}
	return NewVNode("h"+string(rune('0'+level)), attrs, nil, text)
}

// Button creates a <button> VNode with the given content and allows passing attributes.
func Button(content string, attrs map[string]any, children ...*VNode) *VNode {
	return NewVNode("button", attrs, children, content)
}
