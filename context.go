// Package nuklear bridges a host program that owns fonts, images and the
// clipboard to an immediate-mode UI core that only understands handles.
//
// A Context drives one core through frames:
//
//	ctx, err := nuklear.New(ui, provider, nuklear.DefaultConfig())
//	...
//	err = ctx.Frame(func() error {
//		ctx.Rotate(math.Pi / 8)
//		return ctx.Call(func(ui core.Core) error { ... })
//	})
//	err = ctx.Draw(drawer)
//
// Between frames the host forwards its input events (KeyPressed,
// MousePressed, ...) which report whether the UI consumed them.
package nuklear

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/keharriso/love-nuklear/core"
	"github.com/keharriso/love-nuklear/draw"
	"github.com/keharriso/love-nuklear/handle"
	"github.com/keharriso/love-nuklear/host"
	"github.com/keharriso/love-nuklear/style"
	"github.com/keharriso/love-nuklear/transform"
)

// FrameState tells whether a frame is open on a Context.
type FrameState int

const (
	FrameIdle FrameState = iota
	FrameActive
)

func (s FrameState) String() string {
	if s == FrameActive {
		return "active"
	}
	return "idle"
}

type imageMeta struct {
	w, h int
}

// Context is one bridge between a host and a UI core. It is not safe for
// concurrent use; every call must come from the thread running the frame
// loop.
type Context struct {
	cfg      Config
	ui       core.Core
	provider host.Provider
	logger   *log.Logger
	platform Platform

	fonts  *handle.Registry[host.Font, float32]
	images *handle.Registry[host.Image, imageMeta]

	styles    *style.Stack
	transform *transform.Stack
	emitter   *draw.Emitter

	state FrameState
	held  map[string]bool
}

var (
	_ style.Resources = (*Context)(nil)
	_ draw.Resolver   = (*Context)(nil)
)

// New binds ui to provider. The provider's default font becomes the active
// font and the core receives the stock style, a text measurement callback
// backed by the registered fonts and the provider's clipboard.
//
// Host fonts and images are used as map keys and must be comparable;
// pointer types always are.
func New(ui core.Core, provider host.Provider, cfg Config) (*Context, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	font := provider.DefaultFont()
	if font == nil {
		return nil, errors.New("failed to create context: provider has no default font")
	}

	c := &Context{
		cfg:       cfg,
		ui:        ui,
		provider:  provider,
		logger:    log.New(os.Stderr, "nuklear: ", log.LstdFlags),
		platform:  CurrentPlatform(),
		fonts:     handle.New[host.Font, float32](cfg.MaxFonts),
		images:    handle.New[host.Image, imageMeta](cfg.MaxImages),
		transform: transform.NewStack(),
		emitter: &draw.Emitter{
			CurveSegments:  cfg.CurveSegments,
			CircleSegments: cfg.CircleSegments,
		},
		held: make(map[string]bool),
	}
	c.styles = style.NewStack(ui.Stacks(), c)

	active, ok := c.RegisterFont(font)
	if !ok {
		return nil, errors.New("failed to create context: font table full")
	}
	ui.StyleDefault()
	ui.SetFont(active)
	ui.SetTextWidth(c.textWidth)
	if board := provider.Clipboard(); board != nil {
		ui.SetClipboard(board.SetText, board.GetText)
	}
	return c, nil
}

// SetLogger replaces the logger. A nil logger discards output.
func (c *Context) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(discard{}, "", 0)
	}
	c.logger = l
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

// Core returns the UI core.
func (c *Context) Core() core.Core { return c.ui }

// Config returns the configuration the context was created with.
func (c *Context) Config() Config { return c.cfg }

// State returns whether a frame is open.
func (c *Context) State() FrameState { return c.state }

// invariant logs and panics with an *InvariantError.
func (c *Context) invariant(op string, err error) {
	c.logger.Printf("invariant violated in %s: %v", op, err)
	panic(&InvariantError{Op: op, Err: err})
}

// ============================================================================
// Frame Lifecycle
// ============================================================================

// BeginFrame opens a frame. Input collected since the previous frame is
// handed to the core, the handle tables are rebuilt keeping every font and
// image still referenced by live style state, and the transform is reset
// to identity and unlocked.
func (c *Context) BeginFrame() error {
	if c.state == FrameActive {
		return fmt.Errorf("failed to begin frame: %w", ErrFrameActive)
	}
	c.ui.InputEnd()
	c.ui.SetDeltaTime(float32(c.provider.Delta().Seconds()))
	c.rebuild()
	c.transform.Arm()
	c.state = FrameActive
	return nil
}

// EndFrame closes the frame opened by BeginFrame and starts collecting
// input for the next one.
func (c *Context) EndFrame() error {
	if c.state != FrameActive {
		return fmt.Errorf("failed to end frame: %w", ErrNotInFrame)
	}
	c.transform.Lock()
	c.ui.InputBegin()
	c.state = FrameIdle
	return nil
}

// Frame runs fn between BeginFrame and EndFrame. The frame is closed even
// when fn fails or panics.
func (c *Context) Frame(fn func() error) (err error) {
	if err := c.BeginFrame(); err != nil {
		return err
	}
	defer func() {
		if endErr := c.EndFrame(); err == nil {
			err = endErr
		}
	}()
	return fn()
}

// Call runs an ordinary UI call against the core. It requires an open
// frame and locks the transform for the rest of it.
func (c *Context) Call(fn func(ui core.Core) error) error {
	if c.state != FrameActive {
		return fmt.Errorf("failed to call core: %w", ErrNotInFrame)
	}
	c.transform.Lock()
	return fn(c.ui)
}

func (c *Context) rebuild() {
	c.fonts.BeginRebuild()
	c.images.BeginRebuild()
	err := style.Preserve(c.ui.Style(), c.ui.Stacks(), c.preserveImage, c.preserveFont)
	c.fonts.EndRebuild()
	c.images.EndRebuild()
	if err != nil {
		c.invariant("begin frame", err)
	}
}

func (c *Context) preserveImage(img *style.Image) error {
	if img.Handle == handle.None {
		return nil
	}
	h, err := c.images.Preserve(img.Handle)
	if err != nil {
		return err
	}
	img.Handle = h
	return nil
}

func (c *Context) preserveFont(f *style.Font) error {
	if f.Handle == handle.None {
		return nil
	}
	h, err := c.fonts.Preserve(f.Handle)
	if err != nil {
		return err
	}
	f.Handle = h
	return nil
}

// ============================================================================
// Resources
// ============================================================================

// RegisterFont implements style.Resources. The font's height is read once
// per frame-build cycle.
func (c *Context) RegisterFont(font host.Font) (style.Font, bool) {
	h, ok := c.fonts.Register(font, host.Font.Height)
	if !ok {
		return style.Font{}, false
	}
	_, height, err := c.fonts.Resolve(h)
	if err != nil {
		c.invariant("register font", err)
	}
	return style.Font{Handle: h, Height: height}, true
}

// RegisterImage implements style.Resources. A nil region selects the whole
// image.
func (c *Context) RegisterImage(img host.Image, region *style.Region) (style.Image, bool) {
	h, ok := c.images.Register(img, func(img host.Image) imageMeta {
		w, ht := img.Dimensions()
		return imageMeta{w: w, h: ht}
	})
	if !ok {
		return style.Image{}, false
	}
	_, meta, err := c.images.Resolve(h)
	if err != nil {
		c.invariant("register image", err)
	}
	out := style.Image{Handle: h, W: meta.w, H: meta.h, Region: style.Region{W: meta.w, H: meta.h}}
	if region != nil {
		out.Region = *region
	}
	return out, true
}

// ResolveFont implements draw.Resolver.
func (c *Context) ResolveFont(h handle.Handle) (host.Font, error) {
	f, _, err := c.fonts.Resolve(h)
	return f, err
}

// ResolveImage implements draw.Resolver.
func (c *Context) ResolveImage(h handle.Handle) (host.Image, error) {
	img, _, err := c.images.Resolve(h)
	return img, err
}

// FontCount and ImageCount return the size of the current handle tables.
func (c *Context) FontCount() int  { return c.fonts.Len() }
func (c *Context) ImageCount() int { return c.images.Len() }

func (c *Context) textWidth(font style.Font, text string) float32 {
	f, err := c.ResolveFont(font.Handle)
	if err != nil {
		c.invariant("text width", err)
	}
	return f.Width(text)
}

// ============================================================================
// Drawing
// ============================================================================

// Draw hands the core's queued commands to d in screen space and clears
// the queue.
func (c *Context) Draw(d draw.Drawer) error {
	defer c.ui.Clear()
	err := c.emitter.Emit(c.ui.Commands(), c.transform.Forward(), c, d)
	if errors.Is(err, handle.ErrUnknownHandle) {
		c.invariant("draw", err)
	}
	return err
}
