// Package binding holds input pages: named binding tables that map keys and
// axes to ordered listener lists.
//
// Pages do nothing on their own. A router activates one page at a time and
// invokes that page's listeners when the matching input arrives.
//
//	page := binding.NewPage("Dialogue", nil)
//	page.AddListenerDown(keys.Return, advance, false)
//	page.AddAxisListener(keys.AxisVertical, scroll, false)
package binding

import (
	"log/slog"

	"github.com/sicle-games/sicle/pkg/sicle/keys"
)

// PageName identifies a page within a router.
type PageName string

// Page is a named binding table.
type Page struct {
	*Table
	name PageName
}

// NewPage creates an empty page.
func NewPage(name PageName, logger *slog.Logger) *Page {
	return &Page{
		Table: NewTable(string(name), logger),
		name:  name,
	}
}

// Name returns the page's name.
func (p *Page) Name() PageName {
	return p.name
}

func (p *Page) AddListenerDown(key keys.Key, fn Action, newEvent bool) ListenerID {
	return p.AddListener(KindDown, key, fn, newEvent)
}

func (p *Page) AddListenerHeld(key keys.Key, fn Action, newEvent bool) ListenerID {
	return p.AddListener(KindHeld, key, fn, newEvent)
}

func (p *Page) AddListenerUp(key keys.Key, fn Action, newEvent bool) ListenerID {
	return p.AddListener(KindUp, key, fn, newEvent)
}

func (p *Page) RemoveListenerDown(key keys.Key, id ListenerID) bool {
	return p.RemoveListener(KindDown, key, id)
}

func (p *Page) RemoveListenerHeld(key keys.Key, id ListenerID) bool {
	return p.RemoveListener(KindHeld, key, id)
}

func (p *Page) RemoveListenerUp(key keys.Key, id ListenerID) bool {
	return p.RemoveListener(KindUp, key, id)
}

func (p *Page) SetKeyDownEvent(key keys.Key, ev *Event) {
	p.SetEvent(KindDown, key, ev)
}

func (p *Page) SetKeyHeldEvent(key keys.Key, ev *Event) {
	p.SetEvent(KindHeld, key, ev)
}

func (p *Page) SetKeyUpEvent(key keys.Key, ev *Event) {
	p.SetEvent(KindUp, key, ev)
}

func (p *Page) RemoveKeyDown(key keys.Key) {
	p.RemoveKey(KindDown, key)
}

func (p *Page) RemoveKeyHeld(key keys.Key) {
	p.RemoveKey(KindHeld, key)
}

func (p *Page) RemoveKeyUp(key keys.Key) {
	p.RemoveKey(KindUp, key)
}
