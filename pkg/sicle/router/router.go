package router

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"slices"

	"github.com/sicle-games/sicle/pkg/sicle/binding"
	"github.com/sicle-games/sicle/pkg/sicle/constants"
	"github.com/sicle-games/sicle/pkg/sicle/internal"
	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// ErrPageNotFound is returned when a page name has not been registered.
var ErrPageNotFound = errors.New("page not found")

// Names of the pages every router registers.
const (
	DefaultPage binding.PageName = constants.DefaultPageName
	PausedPage  binding.PageName = constants.PausedPageName
)

// PageChangeFunc is notified after the active page changes.
type PageChangeFunc func(from, to binding.PageName)

// Router owns the page registry and page stack, and dispatches one frame of
// input to the active page on every Tick.
//
// A Router is driven from a single goroutine: the host's frame loop. Listeners
// run synchronously inside Tick and may freely add or remove bindings,
// including on the page being dispatched.
type Router struct {
	source Source
	clock  Clock
	lock   Lock
	logger *slog.Logger

	pages  map[binding.PageName]*binding.Page
	stack  *Stack
	active *binding.Page

	paused     bool
	pauseKeys  []keys.Key
	deadzone   float64
	debugInput bool

	useGamepad bool
	platform   constants.Platform
	player     int

	observers    []pageObserver
	nextObserver uint64
}

type pageObserver struct {
	id uint64
	fn PageChangeFunc
}

// New creates a Router reading from src. The Default page is registered and
// active; the Paused page is registered.
func New(src Source, opts ...Option) *Router {
	r := &Router{
		source:   src,
		clock:    nopClock{},
		pages:    make(map[binding.PageName]*binding.Page),
		stack:    NewStack(DefaultPage),
		deadzone: constants.DefaultDeadzone,
		platform: constants.CurrentPlatform(),
		player:   constants.AnyPlayer,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = internal.GetInternalLogger()
	}

	r.active = r.AddPage(DefaultPage)
	r.AddPage(PausedPage)

	return r
}

// AddPage registers a page. Registering a name twice returns the existing page.
func (r *Router) AddPage(name binding.PageName) *binding.Page {
	if p, ok := r.pages[name]; ok {
		r.logger.Warn("Page already registered", "page", string(name))
		return p
	}
	p := binding.NewPage(name, r.logger)
	r.pages[name] = p
	return p
}

// Page returns the named page. An empty name means the Default page. When the
// page does not exist it is created if create is set; otherwise the miss is
// logged and nil is returned.
func (r *Router) Page(name binding.PageName, create bool) *binding.Page {
	if name == "" {
		name = DefaultPage
	}
	if p, ok := r.pages[name]; ok {
		return p
	}
	if create {
		return r.AddPage(name)
	}
	r.logger.Error("No page with this name in the input page registry", "page", string(name))
	return nil
}

// LookupPage returns the named page or ErrPageNotFound.
func (r *Router) LookupPage(name binding.PageName) (*binding.Page, error) {
	if name == "" {
		name = DefaultPage
	}
	p, ok := r.pages[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPageNotFound, name)
	}
	return p, nil
}

// DefaultPage returns the page at the bottom of the stack.
func (r *Router) DefaultPage() *binding.Page {
	return r.pages[DefaultPage]
}

// PausedPage returns the page that is active while paused.
func (r *Router) PausedPage() *binding.Page {
	return r.pages[PausedPage]
}

// Current returns the active page.
func (r *Router) Current() *binding.Page {
	return r.active
}

// CurrentName returns the name of the active page.
func (r *Router) CurrentName() binding.PageName {
	return r.stack.Peek()
}

// Depth returns the number of pages on the stack.
func (r *Router) Depth() int {
	return r.stack.Len()
}

// StackNames returns the stacked page names, base first.
func (r *Router) StackNames() []binding.PageName {
	return r.stack.Names()
}

// Push makes name the active page. Pushing the page that is already active
// does nothing. The page must be registered.
func (r *Router) Push(name binding.PageName) error {
	if name == r.stack.Peek() {
		return nil
	}
	if _, ok := r.pages[name]; !ok {
		r.logger.Error("Cannot push unregistered page", "page", string(name))
		return fmt.Errorf("push: %w: %q", ErrPageNotFound, name)
	}
	from := r.stack.Peek()
	r.stack.Push(name)
	r.pageChanged(from)
	return nil
}

// Pop returns to the previous page. The base page is never popped; Pop
// reports whether the stack changed.
func (r *Router) Pop() bool {
	from := r.stack.Peek()
	if !r.stack.Pop() {
		return false
	}
	r.pageChanged(from)
	return true
}

func (r *Router) pageChanged(from binding.PageName) {
	to := r.stack.Peek()
	r.active = r.pages[to]
	r.logger.Debug("Input page changed", "from", string(from), "to", string(to), "depth", r.stack.Len())

	for _, o := range slices.Clone(r.observers) {
		o.fn(from, to)
	}
}

// OnPageChange registers fn to run after every page change. The returned
// function unregisters it.
func (r *Router) OnPageChange(fn PageChangeFunc) func() {
	r.nextObserver++
	id := r.nextObserver
	r.observers = append(r.observers, pageObserver{id: id, fn: fn})
	return func() {
		r.observers = slices.DeleteFunc(r.observers, func(o pageObserver) bool { return o.id == id })
	}
}

// IsPaused reports whether the router is paused.
func (r *Router) IsPaused() bool {
	return r.paused
}

// SetPaused enters or leaves the paused state. Entering releases every held
// key on the active page, freezes the clock and pushes the Paused page;
// leaving restores the clock and pops.
//
// The call is level triggered: setting the current value again repeats the
// release and clock update, while the page stack absorbs the duplicate push.
func (r *Router) SetPaused(paused bool) {
	r.paused = paused
	if paused {
		r.ReleaseAll()
		r.clock.SetTimeScale(0)
		if err := r.Push(PausedPage); err != nil {
			r.logger.Error("Failed to push pause page", "error", err)
		}
	} else {
		r.clock.SetTimeScale(1)
		r.Pop()
	}
	r.logger.Debug("Paused state set", "paused", paused)
}

// TogglePause flips the paused state.
func (r *Router) TogglePause() {
	r.SetPaused(!r.paused)
}

// ReleaseAll sends a synthetic up event for every key on the active page that
// has a down or held binding and an up binding. Each up event runs once even
// when the key has both down and held bindings.
func (r *Router) ReleaseAll() {
	page := r.active
	candidates := page.Keys(binding.KindDown)
	for _, k := range page.Keys(binding.KindHeld) {
		if !slices.Contains(candidates, k) {
			candidates = append(candidates, k)
		}
	}

	for _, k := range candidates {
		if ev := page.Event(binding.KindUp, k); ev != nil {
			ev.Invoke()
		}
	}
}

// AddPauseKey makes a fresh press of k toggle pause during Tick.
func (r *Router) AddPauseKey(k keys.Key) {
	if slices.Contains(r.pauseKeys, k) {
		return
	}
	r.pauseKeys = append(r.pauseKeys, k)
}

// RemovePauseKey stops k from toggling pause.
func (r *Router) RemovePauseKey(k keys.Key) {
	r.pauseKeys = slices.DeleteFunc(r.pauseKeys, func(p keys.Key) bool { return p == k })
}

// ClearPauseKeys removes every pause key.
func (r *Router) ClearPauseKeys() {
	r.pauseKeys = nil
}

// PauseKeys returns a copy of the pause keys.
func (r *Router) PauseKeys() []keys.Key {
	return slices.Clone(r.pauseKeys)
}

// Deadzone returns the axis deadzone.
func (r *Router) Deadzone() float64 {
	return r.deadzone
}

// SetDeadzone changes the axis deadzone. Negative values are treated as zero.
func (r *Router) SetDeadzone(deadzone float64) {
	r.deadzone = math.Max(0, deadzone)
}

// Axis reads an axis directly, returning 0 inside the deadzone.
func (r *Router) Axis(a keys.Axis) float64 {
	v := r.source.Axis(a)
	if r.insideDeadzone(v) {
		return 0
	}
	return v
}

func (r *Router) insideDeadzone(v float64) bool {
	return math.Abs(v) < r.deadzone
}

// Tick dispatches one frame of input to the active page. It does nothing
// while the transition lock is held.
func (r *Router) Tick() {
	if r.lock != nil && r.lock.Locked() {
		return
	}

	if r.processPauseKeys() {
		return
	}

	for _, kind := range binding.Kinds {
		r.processKeys(kind)
	}
	r.processAxes()
}

// processPauseKeys toggles pause on a fresh pause key press. The rest of the
// frame is dropped so the same press is not dispatched to the new page.
func (r *Router) processPauseKeys() bool {
	for _, k := range r.pauseKeys {
		if r.source.KeyDown(k) {
			r.TogglePause()
			return true
		}
	}
	return false
}

func (r *Router) sourceReports(kind binding.Kind, k keys.Key) bool {
	switch kind {
	case binding.KindDown:
		return r.source.KeyDown(k)
	case binding.KindHeld:
		return r.source.KeyHeld(k)
	case binding.KindUp:
		return r.source.KeyUp(k)
	default:
		return false
	}
}

func (r *Router) processKeys(kind binding.Kind) {
	page := r.active
	for _, k := range page.Keys(kind) {
		if !r.sourceReports(kind, k) {
			continue
		}
		// Earlier listeners in this pass may have removed the slot
		ev := page.Event(kind, k)
		if ev == nil {
			continue
		}
		if r.debugInput {
			r.logger.Debug("Key event", "kind", kind.String(), "key", k.String(), "page", string(page.Name()))
		}
		ev.Invoke()
	}
}

func (r *Router) processAxes() {
	page := r.active
	for _, a := range page.Axes() {
		v := r.source.Axis(a)
		if r.insideDeadzone(v) {
			continue
		}
		ev := page.AxisEvent(a)
		if ev == nil {
			continue
		}
		if r.debugInput {
			r.logger.Debug("Axis event", "axis", string(a), "value", v, "page", string(page.Name()))
		}
		ev.Invoke(v)
	}
}
