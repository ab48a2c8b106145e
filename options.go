package anchor

// Option configures the optional parameters of a widget call.
type Option func(*options)

// options holds widget configuration keyed by OptKey name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options.
// All options (built-in and custom) use this system for consistency.
//
// Example:
//
//	// Define option keys (built-in ones are already defined below)
//	var OptKnobSteps = anchor.NewOptKey("knobSteps", 0)
//
//	// Set options
//	ctx.Knob("gain", &gain, anchor.WithOpt(OptKnobSteps, 12))
//
//	// Read in the widget implementation
//	steps := anchor.ApplyAndGet(opts, OptKnobSteps)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value with type safety.
// Returns the key's default value if not set.
func GetOpt[T any](o options, key OptKey[T]) T {
	if o.extensions == nil {
		return key.def
	}
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	if o.extensions == nil {
		return false
	}
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
// Use this in external packages to create custom widgets.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// =============================================================================
// Built-in Option Keys
// =============================================================================

// --- Numeric widgets ---
var (
	OptFormat      = NewOptKey("format", "")
	OptFormatMax   = NewOptKey("formatMax", "")
	OptSliderFlags = NewOptKey("sliderFlags", SliderFlagsNone)
	OptStep        = NewOptKey[float64]("step", 0)
	OptStepFast    = NewOptKey[float64]("stepFast", 0)
	OptInputFlags  = NewOptKey("inputFlags", InputTextFlagsNone)
)

// --- Text input ---
var (
	OptHint       = NewOptKey("hint", "")
	OptBufferSize = NewOptKey("bufferSize", 0)
	OptCallback   = NewOptKey[InputTextCallback]("callback", nil)
	OptSize       = NewOptKey("size", Vec2{})
)

// PlotScale is the value range of a plot; floatMax components are derived
// from the data.
type PlotScale struct {
	Min, Max float32
}

// --- Plots ---
var (
	OptPlotScale   = NewOptKey("plotScale", PlotScale{Min: floatMax, Max: floatMax})
	OptPlotOverlay = NewOptKey("plotOverlay", "")
	OptPlotOffset  = NewOptKey("plotOffset", 0)
)

// --- Combo and list box ---
var (
	OptHeightInItems   = NewOptKey("heightInItems", -1)
	OptComboFlags      = NewOptKey("comboFlags", ComboFlagsNone)
	OptSelectableFlags = NewOptKey("selectableFlags", SelectableFlagsNone)
)

// =============================================================================
// Convenience Option Functions
// =============================================================================

// WithFormat sets the printf-style display format of a numeric widget.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithFormatMax sets the format of the upper bound of a range drag.
func WithFormatMax(format string) Option { return WithOpt(OptFormatMax, format) }

// WithSliderFlags sets the flags of a Drag or Slider widget.
func WithSliderFlags(flags SliderFlags) Option { return WithOpt(OptSliderFlags, flags) }

// WithStep sets the +/- button steps of an Input scalar widget. A zero step
// hides the buttons.
func WithStep(step, stepFast float64) Option {
	return func(o *options) {
		WithOpt(OptStep, step)(o)
		WithOpt(OptStepFast, stepFast)(o)
	}
}

// WithInputFlags sets the text flags of an Input scalar widget.
func WithInputFlags(flags InputTextFlags) Option { return WithOpt(OptInputFlags, flags) }

// WithHint shows hint while the text is empty.
func WithHint(hint string) Option { return WithOpt(OptHint, hint) }

// WithBufferSize caps the text at n bytes, terminator included. 0 means
// unlimited.
func WithBufferSize(n int) Option { return WithOpt(OptBufferSize, n) }

// WithCallback sets the InputText callback.
func WithCallback(cb InputTextCallback) Option { return WithOpt(OptCallback, cb) }

// WithSize sets the frame size of a multiline text input or plot.
func WithSize(size Vec2) Option { return WithOpt(OptSize, size) }

// WithPlotScale fixes the value range of a plot.
func WithPlotScale(minVal, maxVal float32) Option {
	return WithOpt(OptPlotScale, PlotScale{Min: minVal, Max: maxVal})
}

// WithPlotOverlay draws text centered over a plot.
func WithPlotOverlay(text string) Option { return WithOpt(OptPlotOverlay, text) }

// WithPlotOffset starts a plot at values[offset], wrapping around.
func WithPlotOffset(offset int) Option { return WithOpt(OptPlotOffset, offset) }

// WithHeightInItems limits a list box or combo popup to n visible items.
func WithHeightInItems(n int) Option { return WithOpt(OptHeightInItems, n) }

// WithComboFlags sets the flags of a Combo.
func WithComboFlags(flags ComboFlags) Option { return WithOpt(OptComboFlags, flags) }

// WithSelectableFlags sets the flags of a Selectable.
func WithSelectableFlags(flags SelectableFlags) Option { return WithOpt(OptSelectableFlags, flags) }
