// Package sapling is a retained-mode widget runtime for [Ebitengine].
//
// Sapling provides the core cycle every widget toolkit needs: a declarative
// widget tree, a layout pass, ordered event dispatch with floating overlay
// content, state that survives rebuilds, and pluggable renderers.
//
// # Quick start
//
// The simplest way to get started is [github.com/phanxgames/sapling/ebitengine.Run],
// which creates a window and drives the whole cycle for you:
//
//	type Counter struct{ n int }
//
//	func (c *Counter) View() sapling.Widget {
//		return widget.NewColumn(
//			widget.NewText(strconv.Itoa(c.n)),
//			widget.NewButton(widget.NewText("+"), increment{}),
//		)
//	}
//
//	func (c *Counter) Update(message any) {
//		if _, ok := message.(increment); ok {
//			c.n++
//		}
//	}
//
//	ebitengine.Run(&Counter{}, ebitengine.RunConfig{Title: "Counter"})
//
// For full control, drive [Build], [UserInterface.Update], and
// [UserInterface.Draw] yourself: gather a batch of [Event] values, update,
// drain the published messages, rebuild when the state changed, draw.
//
// # The cycle
//
// Widget descriptions are immutable and rebuilt whenever application state
// changes. Interactive state (focus, scroll offsets, text cursors) lives in
// a parallel [Tree] that survives rebuilds by being diffed forward: widget
// type changes at a position reset that position's state, nothing else does.
// [Cache] threads the Tree between [UserInterface] generations.
//
// Overlays (menus, dropdowns, tooltips) render on top of the base tree and
// receive events first; while the pointer hovers an overlay, the base tree
// sees the cursor as unavailable. Overlays nest recursively via [Nested].
//
// # Renderers
//
// The runtime draws through the [Renderer] interface. Two backends ship
// with sapling: ebitengine (GPU, windowed) and software (CPU, into an
// image.RGBA, good for headless use and tests).
//
// Sapling is single-threaded: no call into the runtime may overlap
// another. Run everything from one goroutine.
//
// [Ebitengine]: https://ebitengine.org
package sapling
