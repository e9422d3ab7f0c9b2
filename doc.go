/*
Package gadget is a small immediate-mode UI widget kit for pixel hosts.

It provides eight interactive controls: Button, Slider, Radio, Checkbox,
TextArea, Field, FilePicker and ColorPicker, plus a draw-only Label. Each
control draws itself and translates raw pointer/keyboard events into typed
callbacks. The zero structs have sane default behaviour so you only have to
fill in the fields you need; callbacks are exported func fields, and assigning
one replaces any previously set handler.

Widgets never talk to a window system directly. All rendering, font metrics
and native dialogs go through the capability interfaces on Env (Canvas,
FileDialog, ColorDialog), so widgets are host-agnostic and testable without a
real display. The draw9, raster and term subpackages provide hosts for
devdraw, off-screen software rendering and terminals respectively.

You are in charge of the event loop (or you use a host's): call Draw once per
frame per widget, and Mouse/Key for each pointer or keyboard event. Widgets
receive every event regardless of bounds and hit-test themselves; that is how
a text widget learns about a click outside it and drops focus. All callbacks
run synchronously inside those calls, on the host's single logical thread of
control, so no locking is required. Code running outside the event loop, such
as the file picker's image decoding, sends a function on Env.Call; the host
runs it on the loop.
*/
package gadget
