// Package arbor is the layout and pointer-routing core of a retained-mode UI
// for [Ebitengine].
//
// arbor owns a tree of [Node] values, rebuilds layout for the parts of the
// tree that changed, and turns raw pointer positions into ordered enter,
// exit, press, click and drag events. It draws nothing but a debug overlay;
// visuals belong to the game.
//
// # Quick start
//
//	scene := arbor.NewScene()
//
//	menu := arbor.NewNodeRect("menu", arbor.Rect{Width: 200})
//	menu.AddBehavior(arbor.NewStackGroup(arbor.AxisVertical, 4))
//	menu.AddBehavior(arbor.NewSizeFitter(arbor.FitUnconstrained, arbor.FitPreferred))
//	scene.Root().AddChild(menu)
//
//	play := arbor.NewNode("play")
//	play.AddBehavior(arbor.NewLayoutBox(0, 32))
//	play.AddBehavior(&arbor.PointerFuncs{
//		Enter: func(arbor.PointerContext) { highlight(true) },
//		Exit:  func(arbor.PointerContext) { highlight(false) },
//	})
//	menu.AddChild(play)
//
//	arbor.Run(scene, arbor.RunConfig{Title: "Menu", Width: 640, Height: 480})
//
// # Behaviors
//
// A node's own data is its rect, activity and hit settings. Everything else
// is a behavior attached with [Node.AddBehavior]. What a behavior does is
// decided by the interfaces it implements: [LayoutElement] reports size
// hints, [LayoutGroup] and [SelfController] write rects, the pointer handler
// interfaces ([PointerEnterHandler] and friends) receive events, and
// [ResourceSubscriber] hears about shared resource rebuilds.
//
// # Layout
//
// Any change that can affect layout calls [Node.MarkLayoutDirty]. The mark
// climbs to the topmost ancestor whose layout depends on it and is queued
// once per frame no matter how many marks arrive. [Scene.Update] drains the
// queue shallowest root first and runs four passes per root: horizontal
// sizes (children first), horizontal rects (parents first), then the same
// for the vertical axis.
//
// # Pointers
//
// Each pointer keeps the chain of nodes it hovers. When the node under the
// pointer changes, nodes that are no longer hovered get exits (leaf first)
// before newly hovered nodes get enters, and the ancestors the two chains
// share hear nothing. Hit testing goes through a [HitBackend]; the default
// [TreeBackend] walks node rects and [HitShape] values.
//
// Nodes are referenced across frames by [Handle], which stops resolving once
// the node is disposed, so queued rebuilds and hit results never touch a
// dead node.
//
// [Ebitengine]: https://ebitengine.org
package arbor
