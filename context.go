package htree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// Ctx is a builder context: a stack of scopes, each collecting nodes that
// have been registered while the scope is open. When a scope is exited,
// every node still pending in it becomes a child (or attribute) of the
// scope's owner, in registration order.
//
// A Ctx holds plain mutable state and is intended for a single goroutine.
// Two goroutines building trees concurrently each use their own Ctx; there
// is no process-global registration state.
type Ctx struct {
	frames []frame
}

type frame struct {
	owner *Element
	items []Buildable
}

// NewCtx creates an empty builder context.
func NewCtx() *Ctx {
	return &Ctx{}
}

// Enter opens a scope owned by owner. Nodes registered with the context
// while the scope is open are flushed into owner on Exit.
func (c *Ctx) Enter(owner *Element) {
	c.frames = append(c.frames, frame{owner: owner})
	tracer().Debugf("scope enter, owner = <%s>, depth = %d", owner.tag, len(c.frames))
}

// Exit closes the innermost scope and flushes its pending nodes into the
// scope owner, in registration order. Exiting with no open scope is a
// stack-discipline violation and panics with ErrNoScope.
func (c *Ctx) Exit() {
	if len(c.frames) == 0 {
		panic(fmt.Errorf("%w: Exit called on empty context", ErrNoScope))
	}
	top := c.frames[len(c.frames)-1]
	c.frames = c.frames[:len(c.frames)-1]
	tracer().Debugf("scope exit, owner = <%s>, flushing %d nodes", top.owner.tag, len(top.items))
	for _, item := range top.items {
		item.setPendingCtx(nil)
		top.owner.Add(item)
	}
	if len(c.frames) == 0 {
		c.frames = nil // release all context state
	}
}

// Scope runs body inside a scope owned by owner and returns owner.
// The scope is exited (and flushed) even if body panics.
func (c *Ctx) Scope(owner *Element, body func()) *Element {
	c.Enter(owner)
	defer c.Exit()
	body()
	return owner
}

// Depth returns the number of currently open scopes.
func (c *Ctx) Depth() int {
	return len(c.frames)
}

// Register offers item to the innermost open scope of c and returns it
// unchanged. With no scope open this is a no-op: the item stays unowned.
//
// Registration is a separate step from construction, so that the
// dependency on the context is visible at the call site:
//
//	sp := htree.Register(c, htree.Span("inner"))
func Register[T Buildable](c *Ctx, item T) T {
	c.register(item)
	return item
}

func (c *Ctx) register(item Buildable) {
	if len(c.frames) == 0 {
		return
	}
	top := &c.frames[len(c.frames)-1]
	top.items = append(top.items, item)
	item.setPendingCtx(c)
}

// claim removes item from the innermost scope, if present there. It is
// called whenever a pending node is explicitly consumed by a constructor
// or an Add call, so that the later scope flush never adds it twice.
// Claiming an item that is not pending is a no-op.
func (c *Ctx) claim(item Buildable) {
	if len(c.frames) == 0 {
		return
	}
	top := &c.frames[len(c.frames)-1]
	for i, it := range top.items {
		if it == item {
			top.items = append(top.items[:i], top.items[i+1:]...)
			break
		}
	}
	item.setPendingCtx(nil)
}

// claimPending detaches item from whatever context it is pending in.
func claimPending(item Buildable) {
	if c := item.pendingCtx(); c != nil {
		c.claim(item)
	}
}
