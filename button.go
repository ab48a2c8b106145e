package anchor

// ButtonFlags tune ButtonBehavior.
type ButtonFlags int

const (
	ButtonFlagsNone              ButtonFlags = 0
	ButtonFlagsMouseButtonLeft   ButtonFlags = 1 << 0
	ButtonFlagsMouseButtonRight  ButtonFlags = 1 << 1
	ButtonFlagsMouseButtonMiddle ButtonFlags = 1 << 2

	ButtonFlagsPressedOnClick                ButtonFlags = 1 << 4  // return true on click (mouse down)
	ButtonFlagsPressedOnClickRelease         ButtonFlags = 1 << 5  // return true on click + release inside (default)
	ButtonFlagsPressedOnClickReleaseAnywhere ButtonFlags = 1 << 6  // return true on click + release even outside
	ButtonFlagsPressedOnRelease              ButtonFlags = 1 << 7  // return true on release without a prior click
	ButtonFlagsPressedOnDoubleClick          ButtonFlags = 1 << 8  // return true on double click
	ButtonFlagsPressedOnDragDropHold         ButtonFlags = 1 << 9  // return true when hovered long enough during another item's drag
	ButtonFlagsRepeat                        ButtonFlags = 1 << 10 // hold to repeat
	ButtonFlagsFlattenChildren               ButtonFlags = 1 << 11 // hovering a child window counts as hovering this
	ButtonFlagsAllowItemOverlap              ButtonFlags = 1 << 12
	ButtonFlagsDontClosePopups               ButtonFlags = 1 << 13
	ButtonFlagsDisabled                      ButtonFlags = 1 << 14
	ButtonFlagsAlignTextBaseLine             ButtonFlags = 1 << 15
	ButtonFlagsNoKeyModifiers                ButtonFlags = 1 << 16
	ButtonFlagsNoHoldingActiveID             ButtonFlags = 1 << 17
	ButtonFlagsNoNavFocus                    ButtonFlags = 1 << 18
	ButtonFlagsNoHoveredOnFocus              ButtonFlags = 1 << 19

	buttonFlagsMouseButtonMask = ButtonFlagsMouseButtonLeft | ButtonFlagsMouseButtonRight | ButtonFlagsMouseButtonMiddle
	buttonFlagsPressedOnMask   = ButtonFlagsPressedOnClick | ButtonFlagsPressedOnClickRelease | ButtonFlagsPressedOnClickReleaseAnywhere |
		ButtonFlagsPressedOnRelease | ButtonFlagsPressedOnDoubleClick | ButtonFlagsPressedOnDragDropHold
)

// dragHoldDelay is how long a PressedOnDragDropHold button must be hovered.
const dragHoldDelay = 0.70

// ButtonBehavior runs the click state machine of a widget occupying bb:
// idle, hovered, held, then pressed according to the PressedOn* flags.
//
// It owns ActiveID while the mouse button is held and reports
// pressed/hovered/held for this frame. Keyboard navigation activates through
// NavActivateID with the same result.
func (ctx *Context) ButtonBehavior(bb Rect, id ID, flags ButtonFlags) (pressed, hovered, held bool) {
	w := ctx.CurrentWindow
	io := &ctx.IO

	if flags&ButtonFlagsDisabled != 0 {
		if ctx.ActiveID == id {
			ctx.ClearActiveID()
		}
		return false, false, false
	}

	if flags&buttonFlagsMouseButtonMask == 0 {
		flags |= ButtonFlagsMouseButtonLeft
	}
	if flags&buttonFlagsPressedOnMask == 0 {
		flags |= ButtonFlagsPressedOnClickRelease
	}

	backupHovered := ctx.HoveredWindow
	flatten := flags&ButtonFlagsFlattenChildren != 0 && ctx.HoveredRootWindow == w
	if flatten {
		ctx.HoveredWindow = w
	}

	hovered = ctx.ItemHoverable(bb, id)

	// Hold-to-open while another item is being dragged.
	if flags&ButtonFlagsPressedOnDragDropHold != 0 && ctx.ActiveID != 0 && ctx.ActiveID != id && ctx.IsMouseDragging(MouseButtonLeft, -1) {
		if ctx.IsItemHovered(HoveredFlagsAllowWhenBlockedByActiveItem) {
			hovered = true
			ctx.SetHoveredID(id)
			t := ctx.HoveredIDTimer + 0.0001
			if calcTypematicRepeatAmount(t-io.DeltaTime, t, dragHoldDelay, 0) > 0 {
				pressed = true
				ctx.FocusWindow(w)
			}
		}
	}

	if flatten {
		ctx.HoveredWindow = backupHovered
	}

	if hovered && flags&ButtonFlagsAllowItemOverlap != 0 && ctx.HoveredIDPreviousFrame != id && ctx.HoveredIDPreviousFrame != 0 {
		hovered = false
	}

	// Mouse
	if hovered {
		if flags&ButtonFlagsNoKeyModifiers == 0 || (!io.KeyCtrl && !io.KeyShift && !io.KeyAlt) {
			clicked, released := MouseButton(-1), MouseButton(-1)
			switch {
			case flags&ButtonFlagsMouseButtonLeft != 0 && io.MouseClicked[MouseButtonLeft]:
				clicked = MouseButtonLeft
			case flags&ButtonFlagsMouseButtonRight != 0 && io.MouseClicked[MouseButtonRight]:
				clicked = MouseButtonRight
			case flags&ButtonFlagsMouseButtonMiddle != 0 && io.MouseClicked[MouseButtonMiddle]:
				clicked = MouseButtonMiddle
			}
			switch {
			case flags&ButtonFlagsMouseButtonLeft != 0 && io.MouseReleased[MouseButtonLeft]:
				released = MouseButtonLeft
			case flags&ButtonFlagsMouseButtonRight != 0 && io.MouseReleased[MouseButtonRight]:
				released = MouseButtonRight
			case flags&ButtonFlagsMouseButtonMiddle != 0 && io.MouseReleased[MouseButtonMiddle]:
				released = MouseButtonMiddle
			}

			if clicked != -1 && ctx.ActiveID != id {
				if flags&(ButtonFlagsPressedOnClickRelease|ButtonFlagsPressedOnClickReleaseAnywhere) != 0 {
					ctx.SetActiveID(id, w)
					ctx.ActiveIDMouseButton = clicked
					if flags&ButtonFlagsNoNavFocus == 0 {
						ctx.SetFocusID(id, w)
					}
					ctx.FocusWindow(w)
				}
				if flags&ButtonFlagsPressedOnClick != 0 || (flags&ButtonFlagsPressedOnDoubleClick != 0 && io.MouseDoubleClicked[clicked]) {
					pressed = true
					if flags&ButtonFlagsNoHoldingActiveID != 0 {
						ctx.ClearActiveID()
					} else {
						ctx.SetActiveID(id, w)
					}
					ctx.ActiveIDMouseButton = clicked
					ctx.FocusWindow(w)
				}
			}
			if flags&ButtonFlagsPressedOnRelease != 0 && released != -1 {
				// Repeat mode trumps release.
				repeated := flags&ButtonFlagsRepeat != 0 && io.MouseDownDurationPrev[released] >= io.KeyRepeatDelay
				if !repeated {
					pressed = true
				}
				ctx.ClearActiveID()
			}

			// Repeat acts while held regardless of the PressedOn flags.
			if ctx.ActiveID == id && flags&ButtonFlagsRepeat != 0 && ctx.ActiveIDMouseButton >= 0 {
				if io.MouseDownDuration[ctx.ActiveIDMouseButton] > 0 && ctx.IsMouseClicked(ctx.ActiveIDMouseButton, true) {
					pressed = true
				}
			}
		}
		if pressed {
			ctx.NavDisableHighlight = true
		}
	}

	// Keyboard navigation reports the nav item as hovered without taking
	// HoveredID from the mouse.
	if ctx.NavID == id && !ctx.NavDisableHighlight && ctx.NavDisableMouseHover &&
		(ctx.ActiveID == 0 || ctx.ActiveID == id || ctx.ActiveID == w.MoveID) {
		if flags&ButtonFlagsNoHoveredOnFocus == 0 {
			hovered = true
		}
	}
	if ctx.NavActivateDownID == id {
		byCode := ctx.NavActivateID == id
		byInput := ctx.IsKeyPressed(KeySpace, flags&ButtonFlagsRepeat != 0)
		if byCode || byInput {
			pressed = true
		}
		if byCode || byInput || ctx.ActiveID == id {
			ctx.NavActivateID = id
			ctx.SetActiveID(id, w)
			if (byCode || byInput) && flags&ButtonFlagsNoNavFocus == 0 {
				ctx.SetFocusID(id, w)
			}
		}
	}

	if ctx.ActiveID == id {
		switch ctx.ActiveIDSource {
		case InputSourceMouse:
			if ctx.ActiveIDIsJustActivated {
				ctx.ActiveIDClickOffset = io.MousePos.Sub(bb.Min)
			}
			button := ctx.ActiveIDMouseButton
			if button < 0 || button >= MouseButtonCount {
				button = MouseButtonLeft
			}
			if io.MouseDown[button] {
				held = true
			} else {
				releaseIn := hovered && flags&ButtonFlagsPressedOnClickRelease != 0
				releaseAnywhere := flags&ButtonFlagsPressedOnClickReleaseAnywhere != 0
				if releaseIn || releaseAnywhere {
					doubleClickRelease := flags&ButtonFlagsPressedOnDoubleClick != 0 && io.MouseDownWasDoubleClick[button]
					repeating := flags&ButtonFlagsRepeat != 0 && io.MouseDownDurationPrev[button] >= io.KeyRepeatDelay
					if !doubleClickRelease && !repeating {
						pressed = true
					}
				}
				ctx.ClearActiveID()
			}
			if flags&ButtonFlagsNoNavFocus == 0 {
				ctx.NavDisableHighlight = true
			}
		case InputSourceNav:
			// Nav activation holds ActiveID until the key is released.
			if ctx.NavActivateDownID != id {
				ctx.ClearActiveID()
			}
		}
		if pressed {
			ctx.ActiveIDHasBeenPressedBefore = true
		}
	}
	return pressed, hovered, held
}
