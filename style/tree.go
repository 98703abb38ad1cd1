package style

// ============================================================================
// Field Descriptors
// ============================================================================

// Compound is a style subtree that can describe its own fields.
type Compound interface {
	Fields() []Field
}

// Field describes one named entry of a Compound. Exactly one of the
// pointers is set, or Nested for a sub-style.
type Field struct {
	Name   string
	Color  *Color
	Vec2   *Vec2
	Item   *Item
	Flags  *Flags
	Float  *float32
	Font   *Font
	Nested Compound
}

// Kind returns the primitive kind of f. The second result is false for
// nested sub-styles.
func (f Field) Kind() (Kind, bool) {
	switch {
	case f.Color != nil:
		return KindColor, true
	case f.Vec2 != nil:
		return KindVec2, true
	case f.Item != nil:
		return KindItem, true
	case f.Flags != nil:
		return KindFlags, true
	case f.Float != nil:
		return KindFloat, true
	case f.Font != nil:
		return KindFont, true
	default:
		return 0, false
	}
}

func colorField(name string, p *Color) Field   { return Field{Name: name, Color: p} }
func vec2Field(name string, p *Vec2) Field     { return Field{Name: name, Vec2: p} }
func itemField(name string, p *Item) Field     { return Field{Name: name, Item: p} }
func flagsField(name string, p *Flags) Field   { return Field{Name: name, Flags: p} }
func floatField(name string, p *float32) Field { return Field{Name: name, Float: p} }
func fontField(name string, p *Font) Field     { return Field{Name: name, Font: p} }
func nested(name string, c Compound) Field     { return Field{Name: name, Nested: c} }

// ============================================================================
// Widget Styles
// ============================================================================

// Text styles plain labels.
type Text struct {
	Color   Color
	Padding Vec2
}

func (s *Text) Fields() []Field {
	return []Field{
		colorField("color", &s.Color),
		vec2Field("padding", &s.Padding),
	}
}

// Button styles push buttons.
type Button struct {
	Normal, Hover, Active Item

	BorderColor    Color
	TextBackground Color
	TextNormal     Color
	TextHover      Color
	TextActive     Color
	TextAlignment  Flags

	Border   float32
	Rounding float32

	Padding      Vec2
	ImagePadding Vec2
	TouchPadding Vec2
}

func (s *Button) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		colorField("text background", &s.TextBackground),
		colorField("text normal", &s.TextNormal),
		colorField("text hover", &s.TextHover),
		colorField("text active", &s.TextActive),
		flagsField("text alignment", &s.TextAlignment),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		vec2Field("padding", &s.Padding),
		vec2Field("image padding", &s.ImagePadding),
		vec2Field("touch padding", &s.TouchPadding),
	}
}

// Toggle styles checkboxes and option buttons.
type Toggle struct {
	Normal, Hover, Active     Item
	BorderColor               Color
	CursorNormal, CursorHover Item

	TextNormal     Color
	TextHover      Color
	TextActive     Color
	TextBackground Color
	TextAlignment  Flags

	Padding      Vec2
	TouchPadding Vec2
	Spacing      float32
	Border       float32
}

func (s *Toggle) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		itemField("cursor normal", &s.CursorNormal),
		itemField("cursor hover", &s.CursorHover),
		colorField("text normal", &s.TextNormal),
		colorField("text hover", &s.TextHover),
		colorField("text active", &s.TextActive),
		colorField("text background", &s.TextBackground),
		flagsField("text alignment", &s.TextAlignment),
		vec2Field("padding", &s.Padding),
		vec2Field("touch padding", &s.TouchPadding),
		floatField("spacing", &s.Spacing),
		floatField("border", &s.Border),
	}
}

// Selectable styles selectable labels.
type Selectable struct {
	Normal, Hover, Pressed                   Item
	NormalActive, HoverActive, PressedActive Item

	TextNormal        Color
	TextHover         Color
	TextPressed       Color
	TextNormalActive  Color
	TextHoverActive   Color
	TextPressedActive Color
	TextBackground    Color
	TextAlignment     Flags

	Rounding     float32
	Padding      Vec2
	TouchPadding Vec2
	ImagePadding Vec2
}

func (s *Selectable) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("pressed", &s.Pressed),
		itemField("normal active", &s.NormalActive),
		itemField("hover active", &s.HoverActive),
		itemField("pressed active", &s.PressedActive),
		colorField("text normal", &s.TextNormal),
		colorField("text hover", &s.TextHover),
		colorField("text pressed", &s.TextPressed),
		colorField("text normal active", &s.TextNormalActive),
		colorField("text hover active", &s.TextHoverActive),
		colorField("text pressed active", &s.TextPressedActive),
		colorField("text background", &s.TextBackground),
		flagsField("text alignment", &s.TextAlignment),
		floatField("rounding", &s.Rounding),
		vec2Field("padding", &s.Padding),
		vec2Field("touch padding", &s.TouchPadding),
		vec2Field("image padding", &s.ImagePadding),
	}
}

// Slider styles sliders.
type Slider struct {
	Normal, Hover, Active Item

	BorderColor Color
	BarNormal   Color
	BarActive   Color
	BarFilled   Color

	CursorNormal, CursorHover, CursorActive Item

	Border    float32
	Rounding  float32
	BarHeight float32

	Padding    Vec2
	Spacing    Vec2
	CursorSize Vec2
}

func (s *Slider) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		colorField("bar normal", &s.BarNormal),
		colorField("bar active", &s.BarActive),
		colorField("bar filled", &s.BarFilled),
		itemField("cursor normal", &s.CursorNormal),
		itemField("cursor hover", &s.CursorHover),
		itemField("cursor active", &s.CursorActive),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		floatField("bar height", &s.BarHeight),
		vec2Field("padding", &s.Padding),
		vec2Field("spacing", &s.Spacing),
		vec2Field("cursor size", &s.CursorSize),
	}
}

// Progress styles progress bars.
type Progress struct {
	Normal, Hover, Active                   Item
	BorderColor                             Color
	CursorNormal, CursorHover, CursorActive Item
	CursorBorderColor                       Color

	Rounding       float32
	Border         float32
	CursorBorder   float32
	CursorRounding float32
	Padding        Vec2
}

func (s *Progress) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		itemField("cursor normal", &s.CursorNormal),
		itemField("cursor hover", &s.CursorHover),
		itemField("cursor active", &s.CursorActive),
		colorField("cursor border color", &s.CursorBorderColor),
		floatField("rounding", &s.Rounding),
		floatField("border", &s.Border),
		floatField("cursor border", &s.CursorBorder),
		floatField("cursor rounding", &s.CursorRounding),
		vec2Field("padding", &s.Padding),
	}
}

// Scrollbar styles horizontal and vertical scrollbars.
type Scrollbar struct {
	Normal, Hover, Active                   Item
	BorderColor                             Color
	CursorNormal, CursorHover, CursorActive Item
	CursorBorderColor                       Color

	Border         float32
	Rounding       float32
	BorderCursor   float32
	RoundingCursor float32
	Padding        Vec2
}

func (s *Scrollbar) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		itemField("cursor normal", &s.CursorNormal),
		itemField("cursor hover", &s.CursorHover),
		itemField("cursor active", &s.CursorActive),
		colorField("cursor border color", &s.CursorBorderColor),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		floatField("border cursor", &s.BorderCursor),
		floatField("rounding cursor", &s.RoundingCursor),
		vec2Field("padding", &s.Padding),
	}
}

// Edit styles text edit fields.
type Edit struct {
	Normal, Hover, Active Item
	BorderColor           Color
	Scrollbar             Scrollbar

	CursorNormal       Color
	CursorHover        Color
	CursorTextNormal   Color
	CursorTextHover    Color
	TextNormal         Color
	TextHover          Color
	TextActive         Color
	SelectedNormal     Color
	SelectedHover      Color
	SelectedTextNormal Color
	SelectedTextHover  Color

	Border        float32
	Rounding      float32
	CursorSize    float32
	ScrollbarSize Vec2
	Padding       Vec2
	RowPadding    float32
}

func (s *Edit) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		nested("scrollbar", &s.Scrollbar),
		colorField("cursor normal", &s.CursorNormal),
		colorField("cursor hover", &s.CursorHover),
		colorField("cursor text normal", &s.CursorTextNormal),
		colorField("cursor text hover", &s.CursorTextHover),
		colorField("text normal", &s.TextNormal),
		colorField("text hover", &s.TextHover),
		colorField("text active", &s.TextActive),
		colorField("selected normal", &s.SelectedNormal),
		colorField("selected hover", &s.SelectedHover),
		colorField("selected text normal", &s.SelectedTextNormal),
		colorField("selected text hover", &s.SelectedTextHover),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		floatField("cursor size", &s.CursorSize),
		vec2Field("scrollbar size", &s.ScrollbarSize),
		vec2Field("padding", &s.Padding),
		floatField("row padding", &s.RowPadding),
	}
}

// Property styles numeric property fields.
type Property struct {
	Normal, Hover, Active Item

	BorderColor Color
	LabelNormal Color
	LabelHover  Color
	LabelActive Color

	Border   float32
	Rounding float32
	Padding  Vec2

	Edit      Edit
	IncButton Button
	DecButton Button
}

func (s *Property) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		colorField("label normal", &s.LabelNormal),
		colorField("label hover", &s.LabelHover),
		colorField("label active", &s.LabelActive),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		vec2Field("padding", &s.Padding),
		nested("edit", &s.Edit),
		nested("inc button", &s.IncButton),
		nested("dec button", &s.DecButton),
	}
}

// Chart styles line and column charts.
type Chart struct {
	Background    Item
	BorderColor   Color
	SelectedColor Color
	Color         Color

	Border   float32
	Rounding float32
	Padding  Vec2
}

func (s *Chart) Fields() []Field {
	return []Field{
		itemField("background", &s.Background),
		colorField("border color", &s.BorderColor),
		colorField("selected color", &s.SelectedColor),
		colorField("color", &s.Color),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		vec2Field("padding", &s.Padding),
	}
}

// Tab styles tree tabs and nodes.
type Tab struct {
	Background  Item
	BorderColor Color
	Text        Color

	TabMaximizeButton  Button
	TabMinimizeButton  Button
	NodeMaximizeButton Button
	NodeMinimizeButton Button

	Border   float32
	Rounding float32
	Indent   float32
	Padding  Vec2
	Spacing  Vec2
}

func (s *Tab) Fields() []Field {
	return []Field{
		itemField("background", &s.Background),
		colorField("border color", &s.BorderColor),
		colorField("text", &s.Text),
		nested("tab maximize button", &s.TabMaximizeButton),
		nested("tab minimize button", &s.TabMinimizeButton),
		nested("node maximize button", &s.NodeMaximizeButton),
		nested("node minimize button", &s.NodeMinimizeButton),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		floatField("indent", &s.Indent),
		vec2Field("padding", &s.Padding),
		vec2Field("spacing", &s.Spacing),
	}
}

// Combo styles combo boxes.
type Combo struct {
	Normal, Hover, Active Item

	BorderColor  Color
	LabelNormal  Color
	LabelHover   Color
	LabelActive  Color
	SymbolNormal Color
	SymbolHover  Color
	SymbolActive Color

	Button Button

	Border         float32
	Rounding       float32
	ContentPadding Vec2
	ButtonPadding  Vec2
	Spacing        Vec2
}

func (s *Combo) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		colorField("border color", &s.BorderColor),
		colorField("label normal", &s.LabelNormal),
		colorField("label hover", &s.LabelHover),
		colorField("label active", &s.LabelActive),
		colorField("symbol normal", &s.SymbolNormal),
		colorField("symbol hover", &s.SymbolHover),
		colorField("symbol active", &s.SymbolActive),
		nested("button", &s.Button),
		floatField("border", &s.Border),
		floatField("rounding", &s.Rounding),
		vec2Field("content padding", &s.ContentPadding),
		vec2Field("button padding", &s.ButtonPadding),
		vec2Field("spacing", &s.Spacing),
	}
}

// WindowHeader styles window title bars.
type WindowHeader struct {
	Normal, Hover, Active Item

	CloseButton    Button
	MinimizeButton Button

	LabelNormal Color
	LabelHover  Color
	LabelActive Color

	Padding      Vec2
	LabelPadding Vec2
	Spacing      Vec2
}

func (s *WindowHeader) Fields() []Field {
	return []Field{
		itemField("normal", &s.Normal),
		itemField("hover", &s.Hover),
		itemField("active", &s.Active),
		nested("close button", &s.CloseButton),
		nested("minimize button", &s.MinimizeButton),
		colorField("label normal", &s.LabelNormal),
		colorField("label hover", &s.LabelHover),
		colorField("label active", &s.LabelActive),
		vec2Field("padding", &s.Padding),
		vec2Field("label padding", &s.LabelPadding),
		vec2Field("spacing", &s.Spacing),
	}
}

// Window styles windows, groups, popups and their borders.
type Window struct {
	Header          WindowHeader
	FixedBackground Item

	Background            Color
	BorderColor           Color
	PopupBorderColor      Color
	ComboBorderColor      Color
	ContextualBorderColor Color
	MenuBorderColor       Color
	GroupBorderColor      Color
	TooltipBorderColor    Color

	Scaler Item

	Border           float32
	ComboBorder      float32
	ContextualBorder float32
	MenuBorder       float32
	GroupBorder      float32
	TooltipBorder    float32
	PopupBorder      float32
	Rounding         float32

	Spacing           Vec2
	ScrollbarSize     Vec2
	MinSize           Vec2
	Padding           Vec2
	GroupPadding      Vec2
	PopupPadding      Vec2
	ComboPadding      Vec2
	ContextualPadding Vec2
	MenuPadding       Vec2
	TooltipPadding    Vec2
}

func (s *Window) Fields() []Field {
	return []Field{
		nested("header", &s.Header),
		itemField("fixed background", &s.FixedBackground),
		colorField("background", &s.Background),
		colorField("border color", &s.BorderColor),
		colorField("popup border color", &s.PopupBorderColor),
		colorField("combo border color", &s.ComboBorderColor),
		colorField("contextual border color", &s.ContextualBorderColor),
		colorField("menu border color", &s.MenuBorderColor),
		colorField("group border color", &s.GroupBorderColor),
		colorField("tooltip border color", &s.TooltipBorderColor),
		itemField("scaler", &s.Scaler),
		floatField("border", &s.Border),
		floatField("combo border", &s.ComboBorder),
		floatField("contextual border", &s.ContextualBorder),
		floatField("menu border", &s.MenuBorder),
		floatField("group border", &s.GroupBorder),
		floatField("tooltip border", &s.TooltipBorder),
		floatField("popup border", &s.PopupBorder),
		floatField("rounding", &s.Rounding),
		vec2Field("spacing", &s.Spacing),
		vec2Field("scrollbar size", &s.ScrollbarSize),
		vec2Field("min size", &s.MinSize),
		vec2Field("padding", &s.Padding),
		vec2Field("group padding", &s.GroupPadding),
		vec2Field("popup padding", &s.PopupPadding),
		vec2Field("combo padding", &s.ComboPadding),
		vec2Field("contextual padding", &s.ContextualPadding),
		vec2Field("menu padding", &s.MenuPadding),
		vec2Field("tooltip padding", &s.TooltipPadding),
	}
}

// Style is the root of the UI core's style tree.
type Style struct {
	Font Font

	Text             Text
	Button           Button
	ContextualButton Button
	MenuButton       Button
	Option           Toggle
	Checkbox         Toggle
	Selectable       Selectable
	Slider           Slider
	Progress         Progress
	Property         Property
	Edit             Edit
	Chart            Chart
	ScrollH          Scrollbar
	ScrollV          Scrollbar
	Tab              Tab
	Combo            Combo
	Window           Window
}

func (s *Style) Fields() []Field {
	return []Field{
		fontField("font", &s.Font),
		nested("text", &s.Text),
		nested("button", &s.Button),
		nested("contextual button", &s.ContextualButton),
		nested("menu button", &s.MenuButton),
		nested("option", &s.Option),
		nested("checkbox", &s.Checkbox),
		nested("selectable", &s.Selectable),
		nested("slider", &s.Slider),
		nested("progress", &s.Progress),
		nested("property", &s.Property),
		nested("edit", &s.Edit),
		nested("chart", &s.Chart),
		nested("scrollh", &s.ScrollH),
		nested("scrollv", &s.ScrollV),
		nested("tab", &s.Tab),
		nested("combo", &s.Combo),
		nested("window", &s.Window),
	}
}
