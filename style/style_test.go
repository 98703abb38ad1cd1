package style

import (
	"errors"
	"reflect"
	"testing"

	"github.com/keharriso/love-nuklear/handle"
	"github.com/keharriso/love-nuklear/host"
)

type testResources struct {
	images *handle.Registry[host.Image, struct{}]
	fonts  *handle.Registry[host.Font, struct{}]
}

func newTestResources(limit int) *testResources {
	return &testResources{
		images: handle.New[host.Image, struct{}](limit),
		fonts:  handle.New[host.Font, struct{}](limit),
	}
}

func (r *testResources) RegisterImage(img host.Image, region *Region) (Image, bool) {
	h, ok := r.images.Register(img, nil)
	if !ok {
		return Image{}, false
	}
	w, ht := img.Dimensions()
	out := Image{Handle: h, W: w, H: ht, Region: Region{W: w, H: ht}}
	if region != nil {
		out.Region = *region
	}
	return out, true
}

func (r *testResources) RegisterFont(f host.Font) (Font, bool) {
	h, ok := r.fonts.Register(f, nil)
	if !ok {
		return Font{}, false
	}
	return Font{Handle: h, Height: f.Height()}, true
}

func newTestStack(caps Capacities) (*Style, *ConfigStacks, *Stack) {
	s := Default(Font{})
	stacks := NewConfigStacks(caps)
	return &s, stacks, NewStack(stacks, newTestResources(0))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff0000", Color{255, 0, 0, 255}, false},
		{"#00FF0080", Color{0, 255, 0, 128}, false},
		{"#123abc", Color{0x12, 0x3a, 0xbc, 255}, false},
		{"ff0000", Color{}, true},
		{"#ff00", Color{}, true},
		{"#gg0000", Color{}, true},
		{"", Color{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseColor(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorString(t *testing.T) {
	if got := RGB(1, 2, 3).String(); got != "#010203" {
		t.Errorf("String() = %q, want #010203", got)
	}
	if got := (Color{1, 2, 3, 4}).String(); got != "#01020304" {
		t.Errorf("String() = %q, want #01020304", got)
	}
}

func TestParseAlign(t *testing.T) {
	tests := []struct {
		in   string
		want Flags
	}{
		{"left", AlignMiddle | AlignLeft},
		{"centered", AlignMiddle | AlignCentered},
		{"right", AlignMiddle | AlignRight},
		{"top centered", AlignTop | AlignCentered},
		{"bottom right", AlignBottom | AlignRight},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseAlign(tt.in)
			if err != nil {
				t.Fatalf("ParseAlign(%q) error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseAlign(%q) = %#x, want %#x", tt.in, got, tt.want)
			}
			if got.String() != tt.in {
				t.Errorf("Flags.String() = %q, want %q", got.String(), tt.in)
			}
		})
	}
	if _, err := ParseAlign("middle"); err == nil {
		t.Error("ParseAlign(middle) succeeded, want error")
	}
}

func TestButtonOverrideScenario(t *testing.T) {
	s, stacks, st := newTestStack(DefaultCapacities())
	oldNormal, oldBorder := s.Button.Normal, s.Button.Border

	p, err := st.Push(s, Table{
		"button": Table{"normal": "#ff0000", "border": 3},
	})
	if err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if want := []Kind{KindItem, KindFloat}; !reflect.DeepEqual(p.Kinds(), want) {
		t.Errorf("Kinds() = %v, want %v", p.Kinds(), want)
	}
	if want := []Kind{KindItem, KindFloat}; !reflect.DeepEqual(st.Top(), want) {
		t.Errorf("Top() = %v, want %v", st.Top(), want)
	}
	if s.Button.Normal != ColorItem(RGB(255, 0, 0)) || s.Button.Border != 3 {
		t.Errorf("override not applied: normal=%v border=%v", s.Button.Normal, s.Button.Border)
	}

	popped, err := st.Pop()
	if err != nil {
		t.Fatalf("Pop error: %v", err)
	}
	if want := []Kind{KindFloat, KindItem}; !reflect.DeepEqual(popped, want) {
		t.Errorf("Pop() = %v, want %v", popped, want)
	}
	if s.Button.Normal != oldNormal || s.Button.Border != oldBorder {
		t.Errorf("values not restored: normal=%v border=%v", s.Button.Normal, s.Button.Border)
	}
	for _, k := range Kinds {
		if d := stacks.Depth(k); d != 0 {
			t.Errorf("Depth(%v) = %d after pop, want 0", k, d)
		}
	}

	if _, err := st.Pop(); !errors.Is(err, ErrEmptyStack) {
		t.Errorf("second Pop error = %v, want ErrEmptyStack", err)
	}
}

func TestPushPopSequenceRestoresDepths(t *testing.T) {
	s, stacks, st := newTestStack(DefaultCapacities())
	before := *s

	tables := []Table{
		{"text": Table{"color": "#ffffff", "padding": Table{"x": 1, "y": 2}}},
		{},
		{"window": Table{"header": Table{"close button": Table{"rounding": 2.5}}, "rounding": 4}},
		{"edit": Table{"scrollbar": Table{"cursor active": "#00ff00"}}, "checkbox": Table{"text alignment": "right"}},
		{"unknown": 1},
	}
	for i, tt := range tables {
		if _, err := st.Push(s, tt); err != nil {
			t.Fatalf("Push #%d error: %v", i, err)
		}
	}
	if st.Depth() != len(tables) {
		t.Errorf("Depth() = %d, want %d", st.Depth(), len(tables))
	}
	for range tables {
		if _, err := st.Pop(); err != nil {
			t.Fatalf("Pop error: %v", err)
		}
	}
	if st.Depth() != 0 {
		t.Errorf("meta-stack depth = %d, want 0", st.Depth())
	}
	for _, k := range Kinds {
		if d := stacks.Depth(k); d != 0 {
			t.Errorf("Depth(%v) = %d, want 0", k, d)
		}
	}
	if !reflect.DeepEqual(*s, before) {
		t.Error("style tree not restored after matching pops")
	}
}

func TestEmptyTableIsLegalNoop(t *testing.T) {
	s, _, st := newTestStack(DefaultCapacities())
	p, err := st.Push(s, Table{"button": Table{}})
	if err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if len(p.Kinds()) != 0 {
		t.Errorf("Kinds() = %v, want empty", p.Kinds())
	}
	popped, err := st.Pop()
	if err != nil || len(popped) != 0 {
		t.Errorf("Pop() = %v, %v, want empty, nil", popped, err)
	}
}

func TestPushStopsAtCapacity(t *testing.T) {
	caps := DefaultCapacities()
	caps.Float = 1
	s, stacks, st := newTestStack(caps)

	p, err := st.Push(s, Table{
		"button": Table{"border": 5, "rounding": 7, "text normal": "#010101"},
	})
	if err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if want := []Kind{KindColor, KindFloat}; !reflect.DeepEqual(p.Kinds(), want) {
		t.Errorf("Kinds() = %v, want %v", p.Kinds(), want)
	}
	if want := []string{"button.rounding"}; !reflect.DeepEqual(p.Dropped(), want) {
		t.Errorf("Dropped() = %v, want %v", p.Dropped(), want)
	}
	if s.Button.Rounding != 4 {
		t.Errorf("dropped field changed to %v, want old value 4", s.Button.Rounding)
	}
	if stacks.Depth(KindFloat) != 1 {
		t.Errorf("Depth(float) = %d, want 1", stacks.Depth(KindFloat))
	}
}

func TestPushRollsBackOnBadValue(t *testing.T) {
	s, stacks, st := newTestStack(DefaultCapacities())
	old := s.Button

	_, err := st.Push(s, Table{
		"button": Table{"normal": "#ff0000", "border": "thick"},
	})
	if !errors.Is(err, ErrBadValue) {
		t.Fatalf("Push error = %v, want ErrBadValue", err)
	}
	if st.Depth() != 0 {
		t.Errorf("meta-stack depth = %d, want 0", st.Depth())
	}
	if stacks.Depth(KindItem) != 0 {
		t.Errorf("Depth(item) = %d, want 0", stacks.Depth(KindItem))
	}
	if s.Button != old {
		t.Error("button style not rolled back")
	}
}

func TestBadValues(t *testing.T) {
	tests := []struct {
		name  string
		table Table
	}{
		{"bad color", Table{"text": Table{"color": "red"}}},
		{"vec2 missing y", Table{"text": Table{"padding": Table{"x": 1}}}},
		{"nested not table", Table{"button": "#ffffff"}},
		{"bad align", Table{"button": Table{"text alignment": "middle"}}},
		{"item number", Table{"button": Table{"normal": 3}}},
		{"font string", Table{"font": "sans"}},
		{"slice inset", Table{"button": Table{"normal": []any{&host.Blank{W: 8, H: 8}, 1, 2, "x", 4}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, st := newTestStack(DefaultCapacities())
			if _, err := st.Push(s, tt.table); !errors.Is(err, ErrBadValue) {
				t.Errorf("Push error = %v, want ErrBadValue", err)
			}
		})
	}
}

func TestItemShapes(t *testing.T) {
	img := &host.Blank{W: 64, H: 32}
	region := Region{X: 8, Y: 0, W: 16, H: 16}

	tests := []struct {
		name       string
		value      any
		wantType   ItemType
		wantRegion Region
		wantInsets [4]int
	}{
		{"color", "#336699", ItemColor, Region{}, [4]int{}},
		{"image", img, ItemImage, Region{W: 64, H: 32}, [4]int{}},
		{"region", ImageRegion{Image: img, Region: region}, ItemImage, region, [4]int{}},
		{"region list", []any{img, region}, ItemImage, region, [4]int{}},
		{"slice list", []any{img, 1, 2, 3, 4}, ItemNineSlice, Region{W: 64, H: 32}, [4]int{1, 2, 3, 4}},
		{"slice region list", []any{img, region, 4, 4, 4, 4.0}, ItemNineSlice, region, [4]int{4, 4, 4, 4}},
		{"nine-slice descriptor", NineSliceSpec{Source: img, L: 2, T: 2, R: 2, B: 2}, ItemNineSlice, Region{W: 64, H: 32}, [4]int{2, 2, 2, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, _, st := newTestStack(DefaultCapacities())
			if _, err := st.Push(s, Table{"window": Table{"fixed background": tt.value}}); err != nil {
				t.Fatalf("Push error: %v", err)
			}
			it := s.Window.FixedBackground
			if it.Type != tt.wantType {
				t.Fatalf("Type = %v, want %v", it.Type, tt.wantType)
			}
			switch it.Type {
			case ItemImage:
				if it.Image.Region != tt.wantRegion || it.Image.Handle == handle.None {
					t.Errorf("image = %+v, want region %+v", it.Image, tt.wantRegion)
				}
			case ItemNineSlice:
				sl := it.Slice
				if sl.Image.Region != tt.wantRegion {
					t.Errorf("slice region = %+v, want %+v", sl.Image.Region, tt.wantRegion)
				}
				if got := [4]int{sl.L, sl.T, sl.R, sl.B}; got != tt.wantInsets {
					t.Errorf("insets = %v, want %v", got, tt.wantInsets)
				}
			}
		})
	}
}

func TestRegionOutsideImageRejected(t *testing.T) {
	s, _, st := newTestStack(DefaultCapacities())
	img := &host.Blank{W: 16, H: 16}
	_, err := st.Push(s, Table{"button": Table{"normal": ImageRegion{Image: img, Region: Region{X: 8, W: 16, H: 16}}}})
	if !errors.Is(err, ErrBadValue) {
		t.Errorf("Push error = %v, want ErrBadValue", err)
	}
}

func TestImageTableFullDropsPush(t *testing.T) {
	s := Default(Font{})
	stacks := NewConfigStacks(DefaultCapacities())
	st := NewStack(stacks, newTestResources(1))

	p, err := st.Push(&s, Table{"button": Table{
		"normal": &host.Blank{W: 1, H: 1},
		"hover":  &host.Blank{W: 2, H: 2},
	}})
	if err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if want := []Kind{KindItem}; !reflect.DeepEqual(p.Kinds(), want) {
		t.Errorf("Kinds() = %v, want %v", p.Kinds(), want)
	}
	if s.Button.Hover.Type != ItemColor {
		t.Errorf("hover changed to %v, want old color item", s.Button.Hover)
	}
}

func TestFieldKeysTargetTheirOwnFields(t *testing.T) {
	s, _, st := newTestStack(DefaultCapacities())
	oldActive := s.Edit.Scrollbar.Active
	oldText := s.Edit.TextNormal

	_, err := st.Push(s, Table{"edit": Table{
		"scrollbar":            Table{"cursor active": "#0000ff"},
		"selected text normal": "#00ff00",
	}})
	if err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if s.Edit.Scrollbar.CursorActive != ColorItem(RGB(0, 0, 255)) {
		t.Errorf("scrollbar cursor active = %v, want #0000ff", s.Edit.Scrollbar.CursorActive)
	}
	if s.Edit.Scrollbar.Active != oldActive {
		t.Errorf("scrollbar active changed to %v", s.Edit.Scrollbar.Active)
	}
	if s.Edit.SelectedTextNormal != RGB(0, 255, 0) {
		t.Errorf("selected text normal = %v, want #00ff00", s.Edit.SelectedTextNormal)
	}
	if s.Edit.TextNormal != oldText {
		t.Errorf("text normal changed to %v", s.Edit.TextNormal)
	}
}

func TestPushFont(t *testing.T) {
	s, stacks, st := newTestStack(DefaultCapacities())
	f := &host.FixedFont{LineHeight: 18, Advance: 9}

	p, err := st.Push(s, Table{"font": f})
	if err != nil {
		t.Fatalf("Push error: %v", err)
	}
	if want := []Kind{KindFont}; !reflect.DeepEqual(p.Kinds(), want) {
		t.Errorf("Kinds() = %v, want %v", p.Kinds(), want)
	}
	if s.Font.Height != 18 || s.Font.Handle == handle.None {
		t.Errorf("Font = %+v, want registered height 18", s.Font)
	}
	saved := 0
	stacks.SavedFonts(func(*Font) { saved++ })
	if saved != 1 {
		t.Errorf("saved fonts = %d, want 1", saved)
	}
}

func TestPreserveVisitsLiveReferences(t *testing.T) {
	s, _, st := newTestStack(DefaultCapacities())
	img := &host.Blank{W: 4, H: 4}
	s.Window.Scaler = ImageItem(Image{Handle: 9, W: 4, H: 4})

	// The first push saves the scaler image on the item stack.
	if _, err := st.Push(s, Table{"window": Table{"scaler": "#ffffff"}}); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Push(s, Table{"button": Table{"normal": []any{img, 1, 1, 1, 1}}}); err != nil {
		t.Fatal(err)
	}

	var images, fonts int
	err := Preserve(s, st.stacks,
		func(i *Image) error { images++; i.Handle = 100; return nil },
		func(f *Font) error { fonts++; return nil },
	)
	if err != nil {
		t.Fatalf("Preserve error: %v", err)
	}
	// Nine-slice in the tree and the saved scaler image.
	if images != 2 {
		t.Errorf("images visited = %d, want 2", images)
	}
	if fonts != 1 {
		t.Errorf("fonts visited = %d, want 1", fonts)
	}
	if s.Button.Normal.Slice.Image.Handle != 100 {
		t.Errorf("nine-slice handle not rewritten")
	}

	if _, err := st.Pop(); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Pop(); err != nil {
		t.Fatal(err)
	}
	if s.Window.Scaler.Image.Handle != 100 {
		t.Errorf("restored scaler handle = %v, want rewritten handle", s.Window.Scaler.Image.Handle)
	}
}

func TestPreserveStopsOnError(t *testing.T) {
	s := Default(Font{})
	s.Button.Normal = ImageItem(Image{Handle: 1})
	s.Button.Hover = ImageItem(Image{Handle: 2})
	boom := errors.New("boom")
	calls := 0
	err := Preserve(&s, nil, func(*Image) error { calls++; return boom }, func(*Font) error { return nil })
	if !errors.Is(err, boom) || calls != 1 {
		t.Errorf("Preserve = %v after %d calls, want boom after 1", err, calls)
	}
}

func TestWalkCoversNestedFields(t *testing.T) {
	s := Default(Font{})
	paths := map[string]Kind{}
	Walk(&s, func(path string, f Field) {
		k, _ := f.Kind()
		paths[path] = k
	})
	tests := []struct {
		path string
		want Kind
	}{
		{"font", KindFont},
		{"button.normal", KindItem},
		{"property.edit.scrollbar.cursor active", KindItem},
		{"window.header.close button.text alignment", KindFlags},
		{"tab.node minimize button.padding", KindVec2},
		{"chart.color", KindColor},
		{"slider.bar height", KindFloat},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, ok := paths[tt.path]
			if !ok {
				t.Fatalf("path %q not walked", tt.path)
			}
			if got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUnknownKeys(t *testing.T) {
	s := Default(Font{})
	got := UnknownKeys(&s, Table{
		"button":  Table{"normal": "#fff", "shadow": 1},
		"bogus":   true,
		"window":  Table{"header": Table{"title": "x"}},
		"spacing": 2,
	})
	want := []string{"bogus", "button.shadow", "spacing", "window.header.title"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("UnknownKeys = %v, want %v", got, want)
	}
}

func TestFromTable(t *testing.T) {
	var colors [ColorCount]Color
	for i := range colors {
		colors[i] = RGB(uint8(i), 0, 0)
	}
	s := FromTable(colors, Font{Height: 12})
	tests := []struct {
		name string
		got  any
		want any
	}{
		{"text", s.Text.Color, colors[ColorText]},
		{"button normal", s.Button.Normal, ColorItem(colors[ColorButton])},
		{"button hover", s.Button.Hover, ColorItem(colors[ColorButtonHover])},
		{"slider cursor active", s.Slider.CursorActive, ColorItem(colors[ColorSliderCursorActive])},
		{"chart highlight", s.Chart.SelectedColor, colors[ColorChartColorHighlight]},
		{"tab header", s.Tab.Background, ColorItem(colors[ColorTabHeader])},
		{"edit scrollbar", s.Edit.Scrollbar.CursorNormal, ColorItem(colors[ColorScrollbarCursor])},
		{"font", s.Font.Height, float32(12)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestColorNamesMatchIndices(t *testing.T) {
	if ColorNames[ColorText] != "text" || ColorNames[ColorTabHeader] != "tab header" {
		t.Errorf("ColorNames out of order: %v", ColorNames)
	}
	seen := map[string]bool{}
	for _, n := range ColorNames {
		if n == "" || seen[n] {
			t.Errorf("duplicate or empty color name %q", n)
		}
		seen[n] = true
	}
}

func TestLoadColors(t *testing.T) {
	table := ColorTable(DefaultColors)
	got, err := LoadColors(table)
	if err != nil {
		t.Fatalf("LoadColors() error = %v", err)
	}
	if got != DefaultColors {
		t.Errorf("LoadColors(ColorTable(DefaultColors)) = %v, want DefaultColors", got)
	}

	delete(table, "tab header")
	if _, err := LoadColors(table); !errors.Is(err, ErrMissingColor) {
		t.Errorf("missing color error = %v, want ErrMissingColor", err)
	}

	table["tab header"] = 12
	if _, err := LoadColors(table); !errors.Is(err, ErrBadValue) {
		t.Errorf("bad color error = %v, want ErrBadValue", err)
	}
}
