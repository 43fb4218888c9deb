// Package bramble is a retained-mode widget toolkit core.
//
// Bramble provides the integer geometry, the widget tree, hover tracking and
// event dispatch, and a batched draw queue that a rendering backend replays
// each frame. The [ebitenbackend] package runs a [Window] on [Ebitengine].
//
// # Quick start
//
//	label := bramble.NewLabel("Hello", nil)
//	button := bramble.NewButton("Quit", nil, func() { ... })
//	root := bramble.NewStack(bramble.Vertical, label, button)
//	root.Padding = bramble.Uniform(12)
//
//	win := bramble.NewWindow(root)
//	win.Attributes().SetTitle("Hello")
//	if err := ebitenbackend.Run(win, ebitenbackend.RunConfig{}); err != nil {
//		log.Fatal(err)
//	}
//
// # Widgets
//
// Every element implements [Widget]. Embed [Base] for identity and bounds, or
// [Group] for a child list, and override the methods the widget needs. Bounds
// are relative to the parent's child origin; a widget's [Widget.Origin]
// shifts its children, which is how [ScrollView] scrolls.
//
// Built-in widgets: [Fill], [Label], [Stack], [Button], [TextInput],
// [ScrollView] and [Slot], a holder for an optional widget.
//
// # Events
//
// The [Dispatcher] tracks pointer position, pressed buttons and modifiers.
// Pointer motion updates the hovered widget (the deepest one whose visible
// region contains the pointer) and sends a [PointerInsideEvent] leave to the
// old widget before the enter to the new one. A window-level
// PointerInsideEvent from the backend only updates hover this way and is not
// routed itself.
//
// Events are then routed children-first, last child first, until a widget
// returns [Consumed]. Pointer events, mouse buttons and file drops only reach
// widgets under the pointer; everything else reaches the whole tree. After
// each delivery every widget's [Widget.EventConsumed] is called with the
// consumer's id, or [NoWidget].
//
// # Drawing
//
// [Window.Draw] walks the tree parents-first and collects primitives into a
// [DrawQueue]. Consecutive draws with the same primitive kind, texture and
// clip rect are merged into one [Command], so a typical frame is a handful of
// draw calls. Rect corners sit on pixels: a rect at (x, y) of size w x h has
// its far corner at (x+w-1, y+h-1).
//
// # Configuration
//
// Window attributes can be loaded from TOML or YAML with [LoadWindowConfig]
// and applied with [WindowConfig.Apply].
//
// # Testing
//
// [Window.InjectClick], [Window.InjectDrag], [Window.InjectText] and friends
// queue synthetic input that is processed one step per [Window.Tick]. A JSON
// script loaded with [LoadTestScript] drives the same injection from a file
// and can request snapshots.
//
// # ECS integration
//
// Set an [EventStore] on the dispatcher to receive a [DispatchRecord] for
// every dispatch. The ecs subpackage provides a Donburi adapter.
//
// [Ebitengine]: https://ebitengine.org
// [ebitenbackend]: https://pkg.go.dev/github.com/phanxgames/bramble/ebitenbackend
package bramble
