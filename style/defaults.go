package style

import (
	"errors"
	"fmt"
)

// ColorIndex names one slot of a theme color table.
type ColorIndex int

const (
	ColorText ColorIndex = iota
	ColorWindow
	ColorHeader
	ColorBorder
	ColorButton
	ColorButtonHover
	ColorButtonActive
	ColorToggle
	ColorToggleHover
	ColorToggleCursor
	ColorSelect
	ColorSelectActive
	ColorSlider
	ColorSliderCursor
	ColorSliderCursorHover
	ColorSliderCursorActive
	ColorProperty
	ColorEdit
	ColorEditCursor
	ColorCombo
	ColorChart
	ColorChartColor
	ColorChartColorHighlight
	ColorScrollbar
	ColorScrollbarCursor
	ColorScrollbarCursorHover
	ColorScrollbarCursorActive
	ColorTabHeader

	ColorCount
)

// ColorNames are the table keys for each ColorIndex, in index order.
var ColorNames = [ColorCount]string{
	"text",
	"window",
	"header",
	"border",
	"button",
	"button hover",
	"button active",
	"toggle",
	"toggle hover",
	"toggle cursor",
	"select",
	"select active",
	"slider",
	"slider cursor",
	"slider cursor hover",
	"slider cursor active",
	"property",
	"edit",
	"edit cursor",
	"combo",
	"chart",
	"chart color",
	"chart color highlight",
	"scrollbar",
	"scrollbar cursor",
	"scrollbar cursor hover",
	"scrollbar cursor active",
	"tab header",
}

func (i ColorIndex) String() string {
	if i >= 0 && i < ColorCount {
		return ColorNames[i]
	}
	return fmt.Sprintf("ColorIndex(%d)", int(i))
}

// DefaultColors is the stock dark theme.
var DefaultColors = [ColorCount]Color{
	ColorText:                  RGB(175, 175, 175),
	ColorWindow:                RGB(45, 45, 45),
	ColorHeader:                RGB(40, 40, 40),
	ColorBorder:                RGB(65, 65, 65),
	ColorButton:                RGB(50, 50, 50),
	ColorButtonHover:           RGB(40, 40, 40),
	ColorButtonActive:          RGB(35, 35, 35),
	ColorToggle:                RGB(100, 100, 100),
	ColorToggleHover:           RGB(120, 120, 120),
	ColorToggleCursor:          RGB(45, 45, 45),
	ColorSelect:                RGB(45, 45, 45),
	ColorSelectActive:          RGB(35, 35, 35),
	ColorSlider:                RGB(38, 38, 38),
	ColorSliderCursor:          RGB(100, 100, 100),
	ColorSliderCursorHover:     RGB(120, 120, 120),
	ColorSliderCursorActive:    RGB(150, 150, 150),
	ColorProperty:              RGB(38, 38, 38),
	ColorEdit:                  RGB(38, 38, 38),
	ColorEditCursor:            RGB(175, 175, 175),
	ColorCombo:                 RGB(45, 45, 45),
	ColorChart:                 RGB(120, 120, 120),
	ColorChartColor:            RGB(45, 45, 45),
	ColorChartColorHighlight:   RGB(255, 0, 0),
	ColorScrollbar:             RGB(40, 40, 40),
	ColorScrollbarCursor:       RGB(100, 100, 100),
	ColorScrollbarCursorHover:  RGB(120, 120, 120),
	ColorScrollbarCursorActive: RGB(150, 150, 150),
	ColorTabHeader:             RGB(40, 40, 40),
}

// ErrMissingColor is returned by LoadColors when a table lacks one of the
// named colors.
var ErrMissingColor = errors.New("missing color")

// LoadColors reads a complete theme color table keyed by ColorNames.
func LoadColors(t Table) ([ColorCount]Color, error) {
	var out [ColorCount]Color
	for i, name := range ColorNames {
		v, ok := t[name]
		if !ok {
			return out, fmt.Errorf("%w: table missing color value for %q", ErrMissingColor, name)
		}
		c, err := decodeColor(name, v)
		if err != nil {
			return out, err
		}
		out[i] = c
	}
	return out, nil
}

// ColorTable returns t keyed by ColorNames, the inverse of LoadColors.
func ColorTable(t [ColorCount]Color) Table {
	out := make(Table, ColorCount)
	for i, name := range ColorNames {
		out[name] = t[i].String()
	}
	return out
}

// Transparent is the fully transparent color.
var Transparent = Color{}

// Default returns the stock style using font.
func Default(font Font) Style {
	return FromTable(DefaultColors, font)
}

// FromTable builds a complete style tree from a theme color table.
func FromTable(t [ColorCount]Color, font Font) Style {
	item := func(i ColorIndex) Item { return ColorItem(t[i]) }
	hidden := ColorItem(Transparent)

	var s Style
	s.Font = font
	s.Text = Text{Color: t[ColorText]}

	s.Button = Button{
		Normal:         item(ColorButton),
		Hover:          item(ColorButtonHover),
		Active:         item(ColorButtonActive),
		BorderColor:    t[ColorBorder],
		TextBackground: t[ColorButton],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Border:         1,
		Rounding:       4,
		Padding:        Vec2{2, 2},
	}
	s.ContextualButton = Button{
		Normal:         item(ColorWindow),
		Hover:          item(ColorButtonHover),
		Active:         item(ColorButtonActive),
		BorderColor:    t[ColorWindow],
		TextBackground: t[ColorWindow],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{2, 2},
	}
	s.MenuButton = Button{
		Normal:         item(ColorWindow),
		Hover:          item(ColorWindow),
		Active:         item(ColorWindow),
		BorderColor:    t[ColorWindow],
		TextBackground: t[ColorWindow],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Rounding:       1,
		Padding:        Vec2{2, 2},
	}

	toggle := Toggle{
		Normal:         item(ColorToggle),
		Hover:          item(ColorToggleHover),
		Active:         item(ColorToggleHover),
		CursorNormal:   item(ColorToggleCursor),
		CursorHover:    item(ColorToggleCursor),
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextBackground: t[ColorWindow],
		TextAlignment:  TextLeft,
		Padding:        Vec2{2, 2},
		Spacing:        4,
	}
	s.Checkbox = toggle
	s.Option = toggle

	s.Selectable = Selectable{
		Normal:            item(ColorSelect),
		Hover:             item(ColorSelect),
		Pressed:           item(ColorSelect),
		NormalActive:      item(ColorSelectActive),
		HoverActive:       item(ColorSelectActive),
		PressedActive:     item(ColorSelectActive),
		TextNormal:        t[ColorText],
		TextHover:         t[ColorText],
		TextPressed:       t[ColorText],
		TextNormalActive:  t[ColorText],
		TextHoverActive:   t[ColorText],
		TextPressedActive: t[ColorText],
		TextAlignment:     TextLeft,
		Padding:           Vec2{2, 2},
		ImagePadding:      Vec2{2, 2},
	}

	s.Slider = Slider{
		Normal:       hidden,
		Hover:        hidden,
		Active:       hidden,
		BarNormal:    t[ColorSlider],
		BarActive:    t[ColorSlider],
		BarFilled:    t[ColorSliderCursor],
		CursorNormal: item(ColorSliderCursor),
		CursorHover:  item(ColorSliderCursorHover),
		CursorActive: item(ColorSliderCursorActive),
		BarHeight:    8,
		Padding:      Vec2{2, 2},
		Spacing:      Vec2{2, 2},
		CursorSize:   Vec2{16, 16},
	}

	s.Progress = Progress{
		Normal:       item(ColorSlider),
		Hover:        item(ColorSlider),
		Active:       item(ColorSlider),
		CursorNormal: item(ColorSliderCursor),
		CursorHover:  item(ColorSliderCursorHover),
		CursorActive: item(ColorSliderCursorActive),
		Padding:      Vec2{4, 4},
	}

	s.ScrollH = Scrollbar{
		Normal:            item(ColorScrollbar),
		Hover:             item(ColorScrollbar),
		Active:            item(ColorScrollbar),
		BorderColor:       t[ColorScrollbar],
		CursorNormal:      item(ColorScrollbarCursor),
		CursorHover:       item(ColorScrollbarCursorHover),
		CursorActive:      item(ColorScrollbarCursorActive),
		CursorBorderColor: t[ColorScrollbar],
	}
	s.ScrollV = s.ScrollH

	s.Edit = Edit{
		Normal:             item(ColorEdit),
		Hover:              item(ColorEdit),
		Active:             item(ColorEdit),
		BorderColor:        t[ColorBorder],
		Scrollbar:          s.ScrollV,
		CursorNormal:       t[ColorText],
		CursorHover:        t[ColorText],
		CursorTextNormal:   t[ColorEdit],
		CursorTextHover:    t[ColorEdit],
		TextNormal:         t[ColorText],
		TextHover:          t[ColorText],
		TextActive:         t[ColorText],
		SelectedNormal:     t[ColorText],
		SelectedHover:      t[ColorText],
		SelectedTextNormal: t[ColorEdit],
		SelectedTextHover:  t[ColorEdit],
		Border:             1,
		CursorSize:         4,
		ScrollbarSize:      Vec2{10, 10},
		Padding:            Vec2{4, 4},
		RowPadding:         2,
	}

	propButton := Button{
		Normal:         item(ColorProperty),
		Hover:          item(ColorProperty),
		Active:         item(ColorProperty),
		TextBackground: t[ColorProperty],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
	}
	propEdit := s.Edit
	propEdit.Normal = item(ColorProperty)
	propEdit.Hover = item(ColorProperty)
	propEdit.Active = item(ColorProperty)
	propEdit.BorderColor = Transparent
	propEdit.Border = 0
	propEdit.CursorSize = 8
	propEdit.Padding = Vec2{}
	s.Property = Property{
		Normal:      item(ColorProperty),
		Hover:       item(ColorProperty),
		Active:      item(ColorProperty),
		BorderColor: t[ColorBorder],
		LabelNormal: t[ColorText],
		LabelHover:  t[ColorText],
		LabelActive: t[ColorText],
		Border:      1,
		Rounding:    10,
		Padding:     Vec2{4, 4},
		Edit:        propEdit,
		IncButton:   propButton,
		DecButton:   propButton,
	}

	s.Chart = Chart{
		Background:    item(ColorChart),
		BorderColor:   t[ColorBorder],
		SelectedColor: t[ColorChartColorHighlight],
		Color:         t[ColorChartColor],
		Padding:       Vec2{4, 4},
	}

	comboButton := Button{
		Normal:         item(ColorCombo),
		Hover:          item(ColorCombo),
		Active:         item(ColorCombo),
		TextBackground: t[ColorCombo],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{2, 2},
	}
	s.Combo = Combo{
		Normal:         item(ColorCombo),
		Hover:          item(ColorCombo),
		Active:         item(ColorCombo),
		BorderColor:    t[ColorBorder],
		LabelNormal:    t[ColorText],
		LabelHover:     t[ColorText],
		LabelActive:    t[ColorText],
		SymbolNormal:   t[ColorText],
		SymbolHover:    t[ColorText],
		SymbolActive:   t[ColorText],
		Button:         comboButton,
		Border:         1,
		ContentPadding: Vec2{4, 4},
		ButtonPadding:  Vec2{0, 4},
		Spacing:        Vec2{4, 0},
	}

	tabButton := Button{
		Normal:         item(ColorTabHeader),
		Hover:          item(ColorTabHeader),
		Active:         item(ColorTabHeader),
		TextBackground: t[ColorTabHeader],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
		Padding:        Vec2{2, 2},
	}
	nodeButton := tabButton
	nodeButton.Normal = item(ColorWindow)
	nodeButton.Hover = item(ColorWindow)
	nodeButton.Active = item(ColorWindow)
	s.Tab = Tab{
		Background:         item(ColorTabHeader),
		BorderColor:        t[ColorBorder],
		Text:               t[ColorText],
		TabMaximizeButton:  tabButton,
		TabMinimizeButton:  tabButton,
		NodeMaximizeButton: nodeButton,
		NodeMinimizeButton: nodeButton,
		Border:             1,
		Indent:             10,
		Padding:            Vec2{4, 4},
		Spacing:            Vec2{4, 4},
	}

	headerButton := Button{
		Normal:         item(ColorHeader),
		Hover:          item(ColorHeader),
		Active:         item(ColorHeader),
		TextBackground: t[ColorHeader],
		TextNormal:     t[ColorText],
		TextHover:      t[ColorText],
		TextActive:     t[ColorText],
		TextAlignment:  TextCentered,
	}
	s.Window = Window{
		Header: WindowHeader{
			Normal:         item(ColorHeader),
			Hover:          item(ColorHeader),
			Active:         item(ColorHeader),
			CloseButton:    headerButton,
			MinimizeButton: headerButton,
			LabelNormal:    t[ColorText],
			LabelHover:     t[ColorText],
			LabelActive:    t[ColorText],
			Padding:        Vec2{4, 4},
			LabelPadding:   Vec2{4, 4},
		},
		FixedBackground:       item(ColorWindow),
		Background:            t[ColorWindow],
		BorderColor:           t[ColorBorder],
		PopupBorderColor:      t[ColorBorder],
		ComboBorderColor:      t[ColorBorder],
		ContextualBorderColor: t[ColorBorder],
		MenuBorderColor:       t[ColorBorder],
		GroupBorderColor:      t[ColorBorder],
		TooltipBorderColor:    t[ColorBorder],
		Scaler:                item(ColorText),
		Border:                2,
		ComboBorder:           1,
		ContextualBorder:      1,
		MenuBorder:            1,
		GroupBorder:           1,
		TooltipBorder:         1,
		PopupBorder:           1,
		Spacing:               Vec2{4, 4},
		ScrollbarSize:         Vec2{10, 10},
		MinSize:               Vec2{64, 64},
		Padding:               Vec2{4, 4},
		GroupPadding:          Vec2{4, 4},
		PopupPadding:          Vec2{4, 4},
		ComboPadding:          Vec2{4, 4},
		ContextualPadding:     Vec2{4, 4},
		MenuPadding:           Vec2{4, 4},
		TooltipPadding:        Vec2{4, 4},
	}
	return s
}
