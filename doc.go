/*
Package anchor is the immediate-mode widget engine of the Kraken editor.

# Overview

The UI is rebuilt every frame. Widgets are methods on an explicit *Context
and return what happened to them this frame (clicked, edited, opened);
anything that must survive between frames is keyed by an ID hashed from the
label and the ID stack. The engine never touches a graphics API: Render
returns DrawData that a backend such as backend/opengl turns into draw
calls.

# Quick Start

	renderer, _ := opengl.NewRenderer(1280, 720)
	ui := anchor.New(renderer)
	input := opengl.NewInputAdapter(window, &ui.Context().IO)

	for !window.ShouldClose() {
	    glfw.PollEvents()
	    input.NewFrame()

	    ctx := ui.Begin(anchor.V2(1280, 720), dt)
	    if ctx.Begin("Hello", nil, 0) {
	        ctx.Text("Hello World")
	        if ctx.Button("Click Me") {
	            // clicked this frame
	        }
	    }
	    ctx.End()

	    if err := ui.End(); err != nil {
	        log.Print(err) // unbalanced Begin/End or Push/Pop
	    }
	    window.SwapBuffers()
	}

Hosts that drive the frame themselves call NewFrame, submit windows and
widgets, then Render:

	ctx := anchor.NewContext(anchor.WithLogger(logger))
	ctx.IO.DisplaySize = anchor.V2(800, 600)
	ctx.NewFrame()
	...
	dd := ctx.Render()

# IDs

Labels double as IDs. Text after "##" is hidden but still hashed, so
"Save##file" and "Save##scene" are different buttons; with "###" only the
text from "###" on is hashed, so a label can change without losing state:

	ctx.Button(fmt.Sprintf("%d frames###counter", n))

PushID and PopID scope the IDs of repeated widgets such as list rows.

# Keyboard Reference

## InputText

Navigation:

	Left/Right       Move cursor one character
	Ctrl+Left/Right  Move cursor one word
	Home/End         Jump to start or end of line
	Ctrl+Home/End    Jump to start or end of text
	Up/Down          Move between lines (multiline)
	PageUp/PageDown  Move one page (multiline)

Selection:

	Shift+movement   Extend the selection
	Ctrl+A           Select all
	Double click     Select all (word under the pointer on macOS)

Editing:

	Ctrl+C, Ctrl+Insert   Copy
	Ctrl+X, Shift+Delete  Cut
	Ctrl+V, Shift+Insert  Paste
	Ctrl+Z                Undo
	Ctrl+Y, Ctrl+Shift+Z  Redo
	Backspace             Delete before cursor; Ctrl+Backspace deletes a word
	Delete                Delete after cursor
	Insert                Toggle overwrite mode
	Enter                 Confirm (Ctrl+Enter for a newline in multiline)
	Escape                Revert to the text at activation and unfocus

With Config.MacOSXBehaviors the word keys move to Alt and the shortcut keys
to Super.

## Drag and Slider widgets

	Click+Drag       Change the value
	Shift            Drag ten times faster
	Alt              Drag ten times slower
	Ctrl+Click       Type a value; "+5", "*2" and "/4" apply to the old one
	Double click     Type a value (drag widgets)

## Windows and navigation

	Arrow keys       Move keyboard focus between items
	Space, Enter     Activate the focused item
	Tab, Shift+Tab   Focus the next or previous text field
	Escape           Release the active item, or close the top popup
	Mouse wheel      Scroll; Shift+wheel scrolls horizontally

## Tab bars and space areas

	Drag a tab       Reorder (with TabBarFlagsReorderable)
	Middle click     Close a closable tab
	Ctrl+PgUp/PgDn   Cycle the tabs of a focused SpaceArea

## Color widgets

	Click swatch     Open the picker
	Right click      Open display and input options
	Escape           Restore the color from before the current picker drag

# Styles

DefaultStyle and LightStyle are built in. LoadStyleFile reads overrides from
TOML, naming sizes in snake_case and colors by their Col name:

	base = "light"

	[sizes]
	frame_padding = [6, 4]
	frame_rounding = 3

	[colors]
	Button = "#3D85E0FF"

# Logging

The package logs through log/slog. SetVerbose enables debug output of ID and
focus changes; WithLogger routes a Context's messages to the host's logger.
*/
package anchor
