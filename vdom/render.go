//go:build js || wasm
// +build js wasm

package vdom

import (
	"syscall/js"

	"github.com/vcrobe/nojs-counter/console"
)

// supportedTags lists the elements createElement knows how to build.
var supportedTags = map[string]bool{
	"div": true, "span": true, "p": true, "section": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"button": true,
}

// releaseCallbacks releases all js.Func objects stored in a VNode.
func releaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	for _, cb := range v.GetEventCallbacks() {
		if jsFunc, ok := cb.(js.Func); ok {
			jsFunc.Release()
		}
	}
	v.ClearEventCallbacks()
}

// deepReleaseCallbacks recursively releases all callbacks in the entire VNode tree.
func deepReleaseCallbacks(v *VNode) {
	if v == nil {
		return
	}
	releaseCallbacks(v)
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

func mountPoint(selector string) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return js.Undefined()
	}
	mount := doc.Call("querySelector", selector)
	if !mount.Truthy() {
		console.Error("Mount element not found for selector:", selector)
	}
	return mount
}

// Clear empties the mount element and releases callbacks held by prevVDOM.
func Clear(selector string, prevVDOM *VNode) {
	if selector == "" {
		return
	}
	deepReleaseCallbacks(prevVDOM)

	mount := mountPoint(selector)
	if !mount.Truthy() {
		return
	}
	mount.Set("innerHTML", "")
}

// RenderToSelector mounts the VNode under the first element matching the CSS selector.
func RenderToSelector(selector string, n *VNode) {
	if n == nil || selector == "" {
		return
	}
	mount := mountPoint(selector)
	if !mount.Truthy() {
		return
	}
	RenderTo(mount, n)
}

// RenderTo appends the rendered node to a specific mount element.
func RenderTo(mount js.Value, n *VNode) {
	if n == nil {
		return
	}
	el := createElement(n)
	if el.Truthy() {
		mount.Call("appendChild", el)
	}
}

// setAttributeValue sets an attribute, treating bools as presence flags.
func setAttributeValue(el js.Value, key string, value any) {
	if boolVal, ok := value.(bool); ok {
		if boolVal {
			el.Call("setAttribute", key, "")
		} else {
			el.Call("removeAttribute", key)
		}
		return
	}
	el.Call("setAttribute", key, value)
}

// attachClick wires n.OnClick to el and records the callback on n.
func attachClick(el js.Value, n *VNode) {
	if n.OnClick == nil {
		return
	}
	handler := n.OnClick
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		handler()
		return nil
	})
	el.Call("addEventListener", "click", cb)
	n.AddEventCallback(cb)
}

func createElement(n *VNode) js.Value {
	doc := js.Global().Get("document")
	if !doc.Truthy() || n == nil {
		return js.Undefined()
	}
	if !supportedTags[n.Tag] {
		console.Error("Unsupported tag: ", n.Tag)
		return js.Undefined()
	}

	el := doc.Call("createElement", n.Tag)
	for k, v := range n.Attributes {
		setAttributeValue(el, k, v)
	}
	attachClick(el, n)

	// Content wins over children, as textContent would wipe them anyway.
	if n.Content != "" {
		el.Set("textContent", n.Content)
		return el
	}
	for _, child := range n.Children {
		childEl := createElement(child)
		if childEl.Truthy() {
			el.Call("appendChild", childEl)
		}
	}
	return el
}

// Patch updates the DOM by comparing old and new VDOM trees and applying minimal changes.
func Patch(mountSelector string, oldVNode, newVNode *VNode) {
	if oldVNode == nil || newVNode == nil {
		return
	}
	mount := mountPoint(mountSelector)
	if !mount.Truthy() {
		return
	}

	rootElement := mount.Get("firstElementChild")
	if !rootElement.Truthy() {
		// No existing DOM, just render fresh
		RenderTo(mount, newVNode)
		return
	}
	patchElement(rootElement, oldVNode, newVNode)
}

func replaceElement(domElement js.Value, oldVNode, newVNode *VNode) {
	deepReleaseCallbacks(oldVNode)
	newElement := createElement(newVNode)
	if !newElement.Truthy() {
		return
	}
	if parent := domElement.Get("parentNode"); parent.Truthy() {
		parent.Call("replaceChild", newElement, domElement)
	}
}

// patchElement updates a single DOM element based on VDOM differences.
func patchElement(domElement js.Value, oldVNode, newVNode *VNode) {
	if !domElement.Truthy() || oldVNode == nil || newVNode == nil {
		return
	}

	if oldVNode.Tag != newVNode.Tag {
		replaceElement(domElement, oldVNode, newVNode)
		return
	}

	patchAttributes(domElement, oldVNode.Attributes, newVNode.Attributes)

	// Handlers close over component state, so swap them on every patch.
	if oldVNode.OnClick != nil {
		for _, cb := range oldVNode.GetEventCallbacks() {
			domElement.Call("removeEventListener", "click", cb)
		}
	}
	releaseCallbacks(oldVNode)
	attachClick(domElement, newVNode)

	// Setting textContent wipes all child nodes, so only do it for leaf nodes.
	if len(newVNode.Children) == 0 {
		if oldVNode.Content != newVNode.Content || len(oldVNode.Children) != 0 {
			deepReleaseCallbacksOfChildren(oldVNode)
			domElement.Set("textContent", newVNode.Content)
		}
		return
	}

	patchChildren(domElement, oldVNode.Children, newVNode.Children)
}

func deepReleaseCallbacksOfChildren(v *VNode) {
	for _, child := range v.Children {
		deepReleaseCallbacks(child)
	}
}

// patchAttributes updates the attributes of a DOM element.
func patchAttributes(domElement js.Value, oldAttrs, newAttrs map[string]any) {
	for key := range oldAttrs {
		if _, exists := newAttrs[key]; !exists {
			domElement.Call("removeAttribute", key)
		}
	}
	for key, value := range newAttrs {
		if oldAttrs == nil || oldAttrs[key] != value {
			setAttributeValue(domElement, key, value)
		}
	}
}

// patchChildren updates the element children of a DOM element pairwise.
func patchChildren(domElement js.Value, oldChildren, newChildren []*VNode) {
	oldLen := len(oldChildren)
	newLen := len(newChildren)
	minLen := min(oldLen, newLen)

	domChildren := domElement.Get("children")

	for i := 0; i < minLen; i++ {
		childElement := domChildren.Call("item", i)
		if childElement.Truthy() {
			patchElement(childElement, oldChildren[i], newChildren[i])
		}
	}

	for i := oldLen; i < newLen; i++ {
		if el := createElement(newChildren[i]); el.Truthy() {
			domElement.Call("appendChild", el)
		}
	}

	for i := oldLen - 1; i >= newLen; i-- {
		deepReleaseCallbacks(oldChildren[i])
		if childElement := domChildren.Call("item", i); childElement.Truthy() {
			domElement.Call("removeChild", childElement)
		}
	}
}
