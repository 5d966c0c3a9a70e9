package classmerge

// DefaultConfig returns the stock utility-class vocabulary: theme scales,
// class groups and both conflict tables. The group inventory follows the
// upstream utility framework; hosts with custom plugins extend the result via
// ConfigPatch rather than rebuilding it.
func DefaultConfig() Config {
	// Shared definition fragments. Slices are spliced by value into the
	// group declarations below; the builder never mutates them.
	opacity := []any{IsNumber, IsArbitraryNumber}
	spacingArbitrary := []any{IsArbitraryValue, FromTheme("spacing")}
	spacingAutoArbitrary := []any{"auto", IsArbitraryValue, FromTheme("spacing")}
	lengthEmptyArbitrary := []any{"", IsLength, IsArbitraryLength}
	numberArbitrary := []any{IsNumber, IsArbitraryValue}
	numberAutoArbitrary := []any{"auto", IsNumber, IsArbitraryValue}
	zeroEmptyArbitrary := []any{"", "0", IsArbitraryValue}

	breaks := []any{"auto", "avoid", "all", "avoid-page", "page", "left", "right", "column"}
	positions := []any{
		"bottom", "center", "left", "left-bottom", "left-top",
		"right", "right-bottom", "right-top", "top",
	}
	overflows := []any{"auto", "hidden", "clip", "visible", "scroll"}
	overscrolls := []any{"auto", "contain", "none"}
	aligns := []any{"start", "end", "center", "between", "around", "evenly", "stretch"}
	lineStyles := []any{"solid", "dashed", "dotted", "double", "none"}
	blendModes := []any{
		"normal", "multiply", "screen", "overlay", "darken", "lighten",
		"color-dodge", "color-burn", "hard-light", "soft-light", "difference",
		"exclusion", "hue", "saturation", "color", "luminosity",
	}

	g := func(id string, defs ...any) ClassGroup { return ClassGroup{ID: id, Defs: defs} }

	return Config{
		ModifierSeparator: ':',
		ClassSeparator:    '-',
		ImportantMarker:   '!',
		PostfixMarker:     '/',
		CacheCapacity:     500,

		Theme: map[string][]any{
			"colors":                     {IsAny},
			"spacing":                    {IsLength, IsArbitraryLength},
			"blur":                       {"none", "", IsTshirtSize, IsArbitraryValue},
			"brightness":                 {IsNumber, IsArbitraryNumber},
			"borderColor":                {FromTheme("colors")},
			"borderRadius":               {"none", "", "full", IsTshirtSize, IsArbitraryValue},
			"borderSpacing":              {IsArbitraryValue, FromTheme("spacing")},
			"borderWidth":                {"", IsLength, IsArbitraryLength},
			"contrast":                   {IsNumber, IsArbitraryNumber},
			"grayscale":                  {"", "0", IsArbitraryValue},
			"hueRotate":                  {IsNumber, IsArbitraryValue},
			"invert":                     {"", "0", IsArbitraryValue},
			"gap":                        {IsArbitraryValue, FromTheme("spacing")},
			"gradientColorStops":         {FromTheme("colors")},
			"gradientColorStopPositions": {IsPercent, IsArbitraryLength},
			"inset":                      {"auto", IsArbitraryValue, FromTheme("spacing")},
			"margin":                     {"auto", IsArbitraryValue, FromTheme("spacing")},
			"opacity":                    {IsNumber, IsArbitraryNumber},
			"padding":                    {IsArbitraryValue, FromTheme("spacing")},
			"saturate":                   {IsNumber, IsArbitraryNumber},
			"scale":                      {IsNumber, IsArbitraryNumber},
			"sepia":                      {"", "0", IsArbitraryValue},
			"skew":                       {IsNumber, IsArbitraryValue},
			"space":                      {IsArbitraryValue, FromTheme("spacing")},
			"translate":                  {IsArbitraryValue, FromTheme("spacing")},
		},

		ClassGroups: []ClassGroup{
			// Layout
			g("aspect", Sub{"aspect": {"auto", "square", "video", IsArbitraryValue}}),
			g("container", "container"),
			g("columns", Sub{"columns": {IsTshirtSize, IsArbitraryValue}}),
			g("break-after", Sub{"break-after": breaks}),
			g("break-before", Sub{"break-before": breaks}),
			g("break-inside", Sub{"break-inside": {"auto", "avoid", "avoid-page", "avoid-column"}}),
			g("box-decoration", Sub{"box-decoration": {"slice", "clone"}}),
			g("box", Sub{"box": {"border", "content"}}),
			g("display",
				"block", "inline-block", "inline", "flex", "inline-flex", "table",
				"inline-table", "table-caption", "table-cell", "table-column",
				"table-column-group", "table-footer-group", "table-header-group",
				"table-row-group", "table-row", "flow-root", "grid", "inline-grid",
				"contents", "list-item", "hidden"),
			g("float", Sub{"float": {"right", "left", "none", "start", "end"}}),
			g("clear", Sub{"clear": {"left", "right", "both", "none", "start", "end"}}),
			g("isolation", "isolate", Sub{"isolation": {"auto"}}),
			g("object-fit", Sub{"object": {"contain", "cover", "fill", "none", "scale-down"}}),
			g("object-position", Sub{"object": append(positions, IsArbitraryValue)}),
			g("overflow", Sub{"overflow": overflows}),
			g("overflow-x", Sub{"overflow-x": overflows}),
			g("overflow-y", Sub{"overflow-y": overflows}),
			g("overscroll", Sub{"overscroll": overscrolls}),
			g("overscroll-x", Sub{"overscroll-x": overscrolls}),
			g("overscroll-y", Sub{"overscroll-y": overscrolls}),
			g("position", "static", "fixed", "absolute", "relative", "sticky"),
			g("inset", Sub{"inset": {FromTheme("inset")}}),
			g("inset-x", Sub{"inset-x": {FromTheme("inset")}}),
			g("inset-y", Sub{"inset-y": {FromTheme("inset")}}),
			g("start", Sub{"start": {FromTheme("inset")}}),
			g("end", Sub{"end": {FromTheme("inset")}}),
			g("top", Sub{"top": {FromTheme("inset")}}),
			g("right", Sub{"right": {FromTheme("inset")}}),
			g("bottom", Sub{"bottom": {FromTheme("inset")}}),
			g("left", Sub{"left": {FromTheme("inset")}}),
			g("visibility", "visible", "invisible", "collapse"),
			g("z", Sub{"z": {"auto", IsInteger, IsArbitraryValue}}),

			// Flexbox & grid
			g("basis", Sub{"basis": spacingAutoArbitrary}),
			g("flex-direction", Sub{"flex": {"row", "row-reverse", "col", "col-reverse"}}),
			g("flex-wrap", Sub{"flex": {"wrap", "wrap-reverse", "nowrap"}}),
			g("flex", Sub{"flex": {"1", "auto", "initial", "none", IsArbitraryValue}}),
			g("grow", Sub{"grow": zeroEmptyArbitrary}),
			g("shrink", Sub{"shrink": zeroEmptyArbitrary}),
			g("order", Sub{"order": {"first", "last", "none", IsInteger, IsArbitraryValue}}),
			g("grid-cols", Sub{"grid-cols": {IsAny}}),
			g("col-start-end", Sub{"col": {"auto", Sub{"span": {"full", IsInteger, IsArbitraryValue}}, IsArbitraryValue}}),
			g("col-start", Sub{"col-start": numberAutoArbitrary}),
			g("col-end", Sub{"col-end": numberAutoArbitrary}),
			g("grid-rows", Sub{"grid-rows": {IsAny}}),
			g("row-start-end", Sub{"row": {"auto", Sub{"span": {IsInteger, IsArbitraryValue}}, IsArbitraryValue}}),
			g("row-start", Sub{"row-start": numberAutoArbitrary}),
			g("row-end", Sub{"row-end": numberAutoArbitrary}),
			g("grid-flow", Sub{"grid-flow": {"row", "col", "dense", "row-dense", "col-dense"}}),
			g("auto-cols", Sub{"auto-cols": {"auto", "min", "max", "fr", IsArbitraryValue}}),
			g("auto-rows", Sub{"auto-rows": {"auto", "min", "max", "fr", IsArbitraryValue}}),
			g("gap", Sub{"gap": {FromTheme("gap")}}),
			g("gap-x", Sub{"gap-x": {FromTheme("gap")}}),
			g("gap-y", Sub{"gap-y": {FromTheme("gap")}}),
			g("justify-content", Sub{"justify": append([]any{"normal"}, aligns...)}),
			g("justify-items", Sub{"justify-items": {"start", "end", "center", "stretch"}}),
			g("justify-self", Sub{"justify-self": {"auto", "start", "end", "center", "stretch"}}),
			g("align-content", Sub{"content": append([]any{"normal", "baseline"}, aligns...)}),
			g("align-items", Sub{"items": {"start", "end", "center", "baseline", "stretch"}}),
			g("align-self", Sub{"self": {"auto", "start", "end", "center", "stretch", "baseline"}}),
			g("place-content", Sub{"place-content": append([]any{"baseline"}, aligns...)}),
			g("place-items", Sub{"place-items": {"start", "end", "center", "baseline", "stretch"}}),
			g("place-self", Sub{"place-self": {"auto", "start", "end", "center", "stretch"}}),

			// Spacing
			g("p", Sub{"p": {FromTheme("padding")}}),
			g("px", Sub{"px": {FromTheme("padding")}}),
			g("py", Sub{"py": {FromTheme("padding")}}),
			g("ps", Sub{"ps": {FromTheme("padding")}}),
			g("pe", Sub{"pe": {FromTheme("padding")}}),
			g("pt", Sub{"pt": {FromTheme("padding")}}),
			g("pr", Sub{"pr": {FromTheme("padding")}}),
			g("pb", Sub{"pb": {FromTheme("padding")}}),
			g("pl", Sub{"pl": {FromTheme("padding")}}),
			g("m", Sub{"m": {FromTheme("margin")}}),
			g("mx", Sub{"mx": {FromTheme("margin")}}),
			g("my", Sub{"my": {FromTheme("margin")}}),
			g("ms", Sub{"ms": {FromTheme("margin")}}),
			g("me", Sub{"me": {FromTheme("margin")}}),
			g("mt", Sub{"mt": {FromTheme("margin")}}),
			g("mr", Sub{"mr": {FromTheme("margin")}}),
			g("mb", Sub{"mb": {FromTheme("margin")}}),
			g("ml", Sub{"ml": {FromTheme("margin")}}),
			g("space-x", Sub{"space-x": {FromTheme("space")}}),
			g("space-x-reverse", "space-x-reverse"),
			g("space-y", Sub{"space-y": {FromTheme("space")}}),
			g("space-y-reverse", "space-y-reverse"),

			// Sizing
			g("w", Sub{"w": {"auto", "min", "max", "fit", "svw", "lvw", "dvw", IsArbitraryValue, FromTheme("spacing")}}),
			g("min-w", Sub{"min-w": {IsArbitraryValue, FromTheme("spacing"), "min", "max", "fit"}}),
			g("max-w", Sub{"max-w": {
				IsArbitraryValue, FromTheme("spacing"),
				"none", "full", "min", "max", "fit", "prose",
				Sub{"screen": {IsTshirtSize}}, IsTshirtSize,
			}}),
			g("h", Sub{"h": {IsArbitraryValue, FromTheme("spacing"), "auto", "min", "max", "fit", "svh", "lvh", "dvh"}}),
			g("min-h", Sub{"min-h": {IsArbitraryValue, FromTheme("spacing"), "min", "max", "fit", "svh", "lvh", "dvh"}}),
			g("max-h", Sub{"max-h": {IsArbitraryValue, FromTheme("spacing"), "min", "max", "fit", "svh", "lvh", "dvh"}}),
			g("size", Sub{"size": {IsArbitraryValue, FromTheme("spacing"), "auto", "min", "max", "fit"}}),

			// Typography
			g("font-size", Sub{"text": {"base", IsTshirtSize, IsArbitraryLength}}),
			g("font-smoothing", "antialiased", "subpixel-antialiased"),
			g("font-style", "italic", "not-italic"),
			g("font-weight", Sub{"font": {
				"thin", "extralight", "light", "normal", "medium", "semibold",
				"bold", "extrabold", "black", IsArbitraryNumber,
			}}),
			g("font-family", Sub{"font": {IsAny}}),
			g("fvn-normal", "normal-nums"),
			g("fvn-ordinal", "ordinal"),
			g("fvn-slashed-zero", "slashed-zero"),
			g("fvn-figure", "lining-nums", "oldstyle-nums"),
			g("fvn-spacing", "proportional-nums", "tabular-nums"),
			g("fvn-fraction", "diagonal-fractions", "stacked-fractions"),
			g("tracking", Sub{"tracking": {"tighter", "tight", "normal", "wide", "wider", "widest", IsArbitraryValue}}),
			g("line-clamp", Sub{"line-clamp": {"none", IsNumber, IsArbitraryNumber}}),
			g("leading", Sub{"leading": {"none", "tight", "snug", "normal", "relaxed", "loose", IsLength, IsArbitraryValue}}),
			g("list-image", Sub{"list-image": {"none", IsArbitraryValue}}),
			g("list-style-type", Sub{"list": {"none", "disc", "decimal", IsArbitraryValue}}),
			g("list-style-position", Sub{"list": {"inside", "outside"}}),
			g("placeholder-color", Sub{"placeholder": {FromTheme("colors")}}),
			g("placeholder-opacity", Sub{"placeholder-opacity": opacity}),
			g("text-alignment", Sub{"text": {"left", "center", "right", "justify", "start", "end"}}),
			g("text-color", Sub{"text": {FromTheme("colors")}}),
			g("text-opacity", Sub{"text-opacity": opacity}),
			g("text-decoration", "underline", "overline", "line-through", "no-underline"),
			g("text-decoration-style", Sub{"decoration": append(lineStyles, "wavy")}),
			g("text-decoration-thickness", Sub{"decoration": {"auto", "from-font", IsLength, IsArbitraryLength}}),
			g("underline-offset", Sub{"underline-offset": {"auto", IsLength, IsArbitraryValue}}),
			g("text-decoration-color", Sub{"decoration": {FromTheme("colors")}}),
			g("text-transform", "uppercase", "lowercase", "capitalize", "normal-case"),
			g("text-overflow", "truncate", "text-ellipsis", "text-clip"),
			g("text-wrap", Sub{"text": {"wrap", "nowrap", "balance", "pretty"}}),
			g("indent", Sub{"indent": spacingArbitrary}),
			g("vertical-align", Sub{"align": {
				"baseline", "top", "middle", "bottom", "text-top", "text-bottom",
				"sub", "super", IsArbitraryValue,
			}}),
			g("whitespace", Sub{"whitespace": {"normal", "nowrap", "pre", "pre-line", "pre-wrap", "break-spaces"}}),
			g("break", Sub{"break": {"normal", "words", "all", "keep"}}),
			g("hyphens", Sub{"hyphens": {"none", "manual", "auto"}}),
			g("content", Sub{"content": {"none", IsArbitraryValue}}),

			// Backgrounds
			g("bg-attachment", Sub{"bg": {"fixed", "local", "scroll"}}),
			g("bg-clip", Sub{"bg-clip": {"border", "padding", "content", "text"}}),
			g("bg-opacity", Sub{"bg-opacity": opacity}),
			g("bg-origin", Sub{"bg-origin": {"border", "padding", "content"}}),
			g("bg-position", Sub{"bg": append(positions, IsArbitraryPosition)}),
			g("bg-repeat", Sub{"bg": {"no-repeat", Sub{"repeat": {"", "x", "y", "round", "space"}}}}),
			g("bg-size", Sub{"bg": {"auto", "cover", "contain", IsArbitrarySize}}),
			g("bg-image", Sub{"bg": {
				"none",
				Sub{"gradient-to": {"t", "tr", "r", "br", "b", "bl", "l", "tl"}},
				IsArbitraryImage,
			}}),
			g("bg-color", Sub{"bg": {FromTheme("colors")}}),
			g("gradient-from-pos", Sub{"from": {FromTheme("gradientColorStopPositions")}}),
			g("gradient-via-pos", Sub{"via": {FromTheme("gradientColorStopPositions")}}),
			g("gradient-to-pos", Sub{"to": {FromTheme("gradientColorStopPositions")}}),
			g("gradient-from", Sub{"from": {FromTheme("gradientColorStops")}}),
			g("gradient-via", Sub{"via": {FromTheme("gradientColorStops")}}),
			g("gradient-to", Sub{"to": {FromTheme("gradientColorStops")}}),

			// Borders
			g("rounded", Sub{"rounded": {FromTheme("borderRadius")}}),
			g("rounded-s", Sub{"rounded-s": {FromTheme("borderRadius")}}),
			g("rounded-e", Sub{"rounded-e": {FromTheme("borderRadius")}}),
			g("rounded-t", Sub{"rounded-t": {FromTheme("borderRadius")}}),
			g("rounded-r", Sub{"rounded-r": {FromTheme("borderRadius")}}),
			g("rounded-b", Sub{"rounded-b": {FromTheme("borderRadius")}}),
			g("rounded-l", Sub{"rounded-l": {FromTheme("borderRadius")}}),
			g("rounded-ss", Sub{"rounded-ss": {FromTheme("borderRadius")}}),
			g("rounded-se", Sub{"rounded-se": {FromTheme("borderRadius")}}),
			g("rounded-ee", Sub{"rounded-ee": {FromTheme("borderRadius")}}),
			g("rounded-es", Sub{"rounded-es": {FromTheme("borderRadius")}}),
			g("rounded-tl", Sub{"rounded-tl": {FromTheme("borderRadius")}}),
			g("rounded-tr", Sub{"rounded-tr": {FromTheme("borderRadius")}}),
			g("rounded-br", Sub{"rounded-br": {FromTheme("borderRadius")}}),
			g("rounded-bl", Sub{"rounded-bl": {FromTheme("borderRadius")}}),
			g("border-w", Sub{"border": {FromTheme("borderWidth")}}),
			g("border-w-x", Sub{"border-x": {FromTheme("borderWidth")}}),
			g("border-w-y", Sub{"border-y": {FromTheme("borderWidth")}}),
			g("border-w-s", Sub{"border-s": {FromTheme("borderWidth")}}),
			g("border-w-e", Sub{"border-e": {FromTheme("borderWidth")}}),
			g("border-w-t", Sub{"border-t": {FromTheme("borderWidth")}}),
			g("border-w-r", Sub{"border-r": {FromTheme("borderWidth")}}),
			g("border-w-b", Sub{"border-b": {FromTheme("borderWidth")}}),
			g("border-w-l", Sub{"border-l": {FromTheme("borderWidth")}}),
			g("border-opacity", Sub{"border-opacity": opacity}),
			g("border-style", Sub{"border": append(lineStyles, "hidden")}),
			g("divide-x", Sub{"divide-x": {FromTheme("borderWidth")}}),
			g("divide-x-reverse", "divide-x-reverse"),
			g("divide-y", Sub{"divide-y": {FromTheme("borderWidth")}}),
			g("divide-y-reverse", "divide-y-reverse"),
			g("divide-opacity", Sub{"divide-opacity": opacity}),
			g("divide-style", Sub{"divide": lineStyles}),
			g("border-color", Sub{"border": {FromTheme("borderColor")}}),
			g("border-color-x", Sub{"border-x": {FromTheme("borderColor")}}),
			g("border-color-y", Sub{"border-y": {FromTheme("borderColor")}}),
			g("border-color-t", Sub{"border-t": {FromTheme("borderColor")}}),
			g("border-color-r", Sub{"border-r": {FromTheme("borderColor")}}),
			g("border-color-b", Sub{"border-b": {FromTheme("borderColor")}}),
			g("border-color-l", Sub{"border-l": {FromTheme("borderColor")}}),
			g("divide-color", Sub{"divide": {FromTheme("borderColor")}}),
			g("outline-style", Sub{"outline": append([]any{""}, lineStyles...)}),
			g("outline-offset", Sub{"outline-offset": {IsLength, IsArbitraryValue}}),
			g("outline-w", Sub{"outline": {IsLength, IsArbitraryLength}}),
			g("outline-color", Sub{"outline": {FromTheme("colors")}}),
			g("ring-w", Sub{"ring": lengthEmptyArbitrary}),
			g("ring-w-inset", "ring-inset"),
			g("ring-color", Sub{"ring": {FromTheme("colors")}}),
			g("ring-opacity", Sub{"ring-opacity": opacity}),
			g("ring-offset-w", Sub{"ring-offset": {IsLength, IsArbitraryLength}}),
			g("ring-offset-color", Sub{"ring-offset": {FromTheme("colors")}}),

			// Effects
			g("shadow", Sub{"shadow": {"", "inner", "none", IsTshirtSize, IsArbitraryShadow}}),
			g("shadow-color", Sub{"shadow": {IsAny}}),
			g("opacity", Sub{"opacity": {FromTheme("opacity")}}),
			g("mix-blend", Sub{"mix-blend": append(blendModes, "plus-lighter", "plus-darker")}),
			g("bg-blend", Sub{"bg-blend": blendModes}),

			// Filters
			g("filter", Sub{"filter": {"", "none"}}),
			g("blur", Sub{"blur": {FromTheme("blur")}}),
			g("brightness", Sub{"brightness": {FromTheme("brightness")}}),
			g("contrast", Sub{"contrast": {FromTheme("contrast")}}),
			g("drop-shadow", Sub{"drop-shadow": {"", "none", IsTshirtSize, IsArbitraryValue}}),
			g("grayscale", Sub{"grayscale": {FromTheme("grayscale")}}),
			g("hue-rotate", Sub{"hue-rotate": {FromTheme("hueRotate")}}),
			g("invert", Sub{"invert": {FromTheme("invert")}}),
			g("saturate", Sub{"saturate": {FromTheme("saturate")}}),
			g("sepia", Sub{"sepia": {FromTheme("sepia")}}),
			g("backdrop-filter", Sub{"backdrop-filter": {"", "none"}}),
			g("backdrop-blur", Sub{"backdrop-blur": {FromTheme("blur")}}),
			g("backdrop-brightness", Sub{"backdrop-brightness": {FromTheme("brightness")}}),
			g("backdrop-contrast", Sub{"backdrop-contrast": {FromTheme("contrast")}}),
			g("backdrop-grayscale", Sub{"backdrop-grayscale": {FromTheme("grayscale")}}),
			g("backdrop-hue-rotate", Sub{"backdrop-hue-rotate": {FromTheme("hueRotate")}}),
			g("backdrop-invert", Sub{"backdrop-invert": {FromTheme("invert")}}),
			g("backdrop-opacity", Sub{"backdrop-opacity": {FromTheme("opacity")}}),
			g("backdrop-saturate", Sub{"backdrop-saturate": {FromTheme("saturate")}}),
			g("backdrop-sepia", Sub{"backdrop-sepia": {FromTheme("sepia")}}),

			// Tables
			g("border-collapse", Sub{"border": {"collapse", "separate"}}),
			g("border-spacing", Sub{"border-spacing": {FromTheme("borderSpacing")}}),
			g("border-spacing-x", Sub{"border-spacing-x": {FromTheme("borderSpacing")}}),
			g("border-spacing-y", Sub{"border-spacing-y": {FromTheme("borderSpacing")}}),
			g("table-layout", Sub{"table": {"auto", "fixed"}}),
			g("caption", Sub{"caption": {"top", "bottom"}}),

			// Transitions & animation
			g("transition", Sub{"transition": {"none", "all", "", "colors", "opacity", "shadow", "transform", IsArbitraryValue}}),
			g("duration", Sub{"duration": numberArbitrary}),
			g("ease", Sub{"ease": {"linear", "in", "out", "in-out", IsArbitraryValue}}),
			g("delay", Sub{"delay": numberArbitrary}),
			g("animate", Sub{"animate": {"none", "spin", "ping", "pulse", "bounce", IsArbitraryValue}}),

			// Transforms
			g("transform", Sub{"transform": {"", "gpu", "none"}}),
			g("scale", Sub{"scale": {FromTheme("scale")}}),
			g("scale-x", Sub{"scale-x": {FromTheme("scale")}}),
			g("scale-y", Sub{"scale-y": {FromTheme("scale")}}),
			g("rotate", Sub{"rotate": {IsInteger, IsArbitraryValue}}),
			g("translate-x", Sub{"translate-x": {FromTheme("translate")}}),
			g("translate-y", Sub{"translate-y": {FromTheme("translate")}}),
			g("skew-x", Sub{"skew-x": {FromTheme("skew")}}),
			g("skew-y", Sub{"skew-y": {FromTheme("skew")}}),
			g("transform-origin", Sub{"origin": {
				"center", "top", "top-right", "right", "bottom-right", "bottom",
				"bottom-left", "left", "top-left", IsArbitraryValue,
			}}),

			// Interactivity
			g("accent", Sub{"accent": {"auto", FromTheme("colors")}}),
			g("appearance", Sub{"appearance": {"none", "auto"}}),
			g("cursor", Sub{"cursor": {
				"auto", "default", "pointer", "wait", "text", "move", "help",
				"not-allowed", "none", "context-menu", "progress", "cell",
				"crosshair", "vertical-text", "alias", "copy", "no-drop", "grab",
				"grabbing", "all-scroll", "col-resize", "row-resize", "n-resize",
				"e-resize", "s-resize", "w-resize", "ne-resize", "nw-resize",
				"se-resize", "sw-resize", "ew-resize", "ns-resize", "nesw-resize",
				"nwse-resize", "zoom-in", "zoom-out", IsArbitraryValue,
			}}),
			g("caret-color", Sub{"caret": {FromTheme("colors")}}),
			g("pointer-events", Sub{"pointer-events": {"none", "auto"}}),
			g("resize", Sub{"resize": {"none", "y", "x", ""}}),
			g("scroll-behavior", Sub{"scroll": {"auto", "smooth"}}),
			g("scroll-m", Sub{"scroll-m": spacingArbitrary}),
			g("scroll-mx", Sub{"scroll-mx": spacingArbitrary}),
			g("scroll-my", Sub{"scroll-my": spacingArbitrary}),
			g("scroll-ms", Sub{"scroll-ms": spacingArbitrary}),
			g("scroll-me", Sub{"scroll-me": spacingArbitrary}),
			g("scroll-mt", Sub{"scroll-mt": spacingArbitrary}),
			g("scroll-mr", Sub{"scroll-mr": spacingArbitrary}),
			g("scroll-mb", Sub{"scroll-mb": spacingArbitrary}),
			g("scroll-ml", Sub{"scroll-ml": spacingArbitrary}),
			g("scroll-p", Sub{"scroll-p": spacingArbitrary}),
			g("scroll-px", Sub{"scroll-px": spacingArbitrary}),
			g("scroll-py", Sub{"scroll-py": spacingArbitrary}),
			g("scroll-ps", Sub{"scroll-ps": spacingArbitrary}),
			g("scroll-pe", Sub{"scroll-pe": spacingArbitrary}),
			g("scroll-pt", Sub{"scroll-pt": spacingArbitrary}),
			g("scroll-pr", Sub{"scroll-pr": spacingArbitrary}),
			g("scroll-pb", Sub{"scroll-pb": spacingArbitrary}),
			g("scroll-pl", Sub{"scroll-pl": spacingArbitrary}),
			g("snap-align", Sub{"snap": {"start", "end", "center", "align-none"}}),
			g("snap-stop", Sub{"snap": {"normal", "always"}}),
			g("snap-type", Sub{"snap": {"none", "x", "y", "both"}}),
			g("snap-strictness", Sub{"snap": {"mandatory", "proximity"}}),
			g("touch", Sub{"touch": {"auto", "none", "manipulation"}}),
			g("touch-x", Sub{"touch-pan": {"x", "left", "right"}}),
			g("touch-y", Sub{"touch-pan": {"y", "up", "down"}}),
			g("touch-pz", "touch-pinch-zoom"),
			g("select", Sub{"select": {"none", "text", "all", "auto"}}),
			g("will-change", Sub{"will-change": {"auto", "scroll", "contents", "transform", IsArbitraryValue}}),

			// SVG
			g("fill", Sub{"fill": {"none", FromTheme("colors")}}),
			g("stroke-w", Sub{"stroke": {IsLength, IsArbitraryLength, IsArbitraryNumber}}),
			g("stroke", Sub{"stroke": {"none", FromTheme("colors")}}),

			// Accessibility
			g("sr", "sr-only", "not-sr-only"),
			g("forced-color-adjust", Sub{"forced-color-adjust": {"auto", "none"}}),
		},

		ConflictingGroups: map[string][]string{
			"overflow":         {"overflow-x", "overflow-y"},
			"overscroll":       {"overscroll-x", "overscroll-y"},
			"inset":            {"inset-x", "inset-y", "start", "end", "top", "right", "bottom", "left"},
			"inset-x":          {"right", "left"},
			"inset-y":          {"top", "bottom"},
			"flex":             {"basis", "grow", "shrink"},
			"gap":              {"gap-x", "gap-y"},
			"p":                {"px", "py", "ps", "pe", "pt", "pr", "pb", "pl"},
			"px":               {"pr", "pl"},
			"py":               {"pt", "pb"},
			"m":                {"mx", "my", "ms", "me", "mt", "mr", "mb", "ml"},
			"mx":               {"mr", "ml"},
			"my":               {"mt", "mb"},
			"size":             {"w", "h"},
			"fvn-normal":       {"fvn-ordinal", "fvn-slashed-zero", "fvn-figure", "fvn-spacing", "fvn-fraction"},
			"fvn-ordinal":      {"fvn-normal"},
			"fvn-slashed-zero": {"fvn-normal"},
			"fvn-figure":       {"fvn-normal"},
			"fvn-spacing":      {"fvn-normal"},
			"fvn-fraction":     {"fvn-normal"},
			"line-clamp":       {"display", "overflow"},
			"rounded": {
				"rounded-s", "rounded-e", "rounded-t", "rounded-r", "rounded-b",
				"rounded-l", "rounded-ss", "rounded-se", "rounded-ee", "rounded-es",
				"rounded-tl", "rounded-tr", "rounded-br", "rounded-bl",
			},
			"rounded-s":      {"rounded-ss", "rounded-es"},
			"rounded-e":      {"rounded-se", "rounded-ee"},
			"rounded-t":      {"rounded-tl", "rounded-tr"},
			"rounded-r":      {"rounded-tr", "rounded-br"},
			"rounded-b":      {"rounded-br", "rounded-bl"},
			"rounded-l":      {"rounded-tl", "rounded-bl"},
			"border-spacing": {"border-spacing-x", "border-spacing-y"},
			"border-w":       {"border-w-s", "border-w-e", "border-w-t", "border-w-r", "border-w-b", "border-w-l"},
			"border-w-x":     {"border-w-r", "border-w-l"},
			"border-w-y":     {"border-w-t", "border-w-b"},
			"border-color":   {"border-color-t", "border-color-r", "border-color-b", "border-color-l"},
			"border-color-x": {"border-color-r", "border-color-l"},
			"border-color-y": {"border-color-t", "border-color-b"},
			"scroll-m": {
				"scroll-mx", "scroll-my", "scroll-ms", "scroll-me",
				"scroll-mt", "scroll-mr", "scroll-mb", "scroll-ml",
			},
			"scroll-mx": {"scroll-mr", "scroll-ml"},
			"scroll-my": {"scroll-mt", "scroll-mb"},
			"scroll-p": {
				"scroll-px", "scroll-py", "scroll-ps", "scroll-pe",
				"scroll-pt", "scroll-pr", "scroll-pb", "scroll-pl",
			},
			"scroll-px": {"scroll-pr", "scroll-pl"},
			"scroll-py": {"scroll-pt", "scroll-pb"},
			"touch":     {"touch-x", "touch-y", "touch-pz"},
			"touch-x":   {"touch"},
			"touch-y":   {"touch"},
			"touch-pz":  {"touch"},
		},

		ConflictingGroupModifiers: map[string][]string{
			"font-size": {"leading"},
		},

		OrderSensitiveModifiers: []string{
			"*", "**", "after", "backdrop", "before", "details-content",
			"file", "first-letter", "first-line", "marker", "placeholder",
			"selection",
		},
	}
}
