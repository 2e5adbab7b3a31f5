package assets

import (
	"strconv"
	"strings"
	"testing"

	"github.com/grafana/sobek"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// domStub is just enough DOM for the overlay and bridge, plus a virtual clock.
const domStub = `
var window = this;
window.innerWidth = 1280;
window.innerHeight = 800;

var __now = 0, __nextTimer = 1, __timers = [];
function setTimeout(fn, ms) {
  var id = __nextTimer++;
  __timers.push({ id: id, at: __now + ms, fn: fn });
  return id;
}
function clearTimeout(id) {
  __timers = __timers.filter(function (t) { return t.id !== id; });
}
function __advance(ms) {
  var target = __now + ms;
  for (;;) {
    var due = __timers.filter(function (t) { return t.at <= target; });
    if (!due.length) break;
    due.sort(function (a, b) { return a.at - b.at; });
    var t = due[0];
    __timers = __timers.filter(function (x) { return x !== t; });
    __now = t.at;
    t.fn();
  }
  __now = target;
}

var __byId = {};
function __register(el) {
  if (el.id) __byId[el.id] = el;
  el.children.forEach(__register);
}
function __element(tag) {
  var classes = {};
  return {
    tagName: tag.toUpperCase(),
    id: '', title: '', textContent: '',
    children: [], listeners: {},
    classList: {
      add: function (c) { classes[c] = true; },
      remove: function (c) { delete classes[c]; },
      contains: function (c) { return !!classes[c]; },
    },
    appendChild: function (c) { this.children.push(c); __register(c); return c; },
    addEventListener: function (type, fn) { (this.listeners[type] = this.listeners[type] || []).push(fn); },
    click: function () { (this.listeners.click || []).forEach(function (fn) { fn({ type: 'click' }); }); },
  };
}

var document = {
  body: __element('body'),
  documentElement: __element('html'),
  createElement: __element,
  getElementById: function (id) { return __byId[id] || null; },
};

var __windowListeners = {};
window.addEventListener = function (type, fn) {
  (__windowListeners[type] = __windowListeners[type] || []).push(fn);
};
function __move(x, y) {
  (__windowListeners.mousemove || []).forEach(function (fn) { fn({ clientX: x, clientY: y }); });
}

var __posted = [];
window.webkit = { messageHandlers: { kiosk: { postMessage: function (m) { __posted.push(m); } } } };
`

type page struct {
	t  *testing.T
	rt *sobek.Runtime
}

func newPage(t *testing.T, configScript string) *page {
	t.Helper()
	rt := sobek.New()
	_, err := rt.RunScript("dom-stub.js", domStub)
	require.NoError(t, err)
	if configScript != "" {
		_, err = rt.RunScript("config.js", configScript)
		require.NoError(t, err)
	}
	_, err = rt.RunScript("bridge.js", BridgeScript)
	require.NoError(t, err)
	_, err = rt.RunScript("overlay.js", OverlayScript)
	require.NoError(t, err)
	return &page{t: t, rt: rt}
}

func (p *page) eval(src string) sobek.Value {
	p.t.Helper()
	v, err := p.rt.RunString(src)
	require.NoError(p.t, err)
	return v
}

func (p *page) move(x, y int) {
	p.t.Helper()
	p.eval("__move(" + strconv.Itoa(x) + "," + strconv.Itoa(y) + ")")
}

func (p *page) advance(ms int) {
	p.t.Helper()
	p.eval("__advance(" + strconv.Itoa(ms) + ")")
}

func (p *page) visible() bool {
	return p.eval("document.getElementById('kiosk-window-controls').classList.contains('visible')").ToBoolean()
}

func (p *page) pendingTimers() int64 {
	return p.eval("__timers.length").ToInteger()
}

func TestOverlay_RevealsInZoneAndHidesAfterDelay(t *testing.T) {
	p := newPage(t, "")
	assert.False(t, p.visible())

	p.move(1200, 50)
	assert.True(t, p.visible())
	assert.EqualValues(t, 1, p.pendingTimers())

	p.advance(1999)
	assert.True(t, p.visible())

	p.advance(1)
	assert.False(t, p.visible())
	assert.EqualValues(t, 0, p.pendingTimers())
}

func TestOverlay_MoveRestartsSingleTimer(t *testing.T) {
	p := newPage(t, "")

	p.move(1200, 50)
	p.advance(1500)
	p.move(1210, 40)
	assert.EqualValues(t, 1, p.pendingTimers())

	p.advance(1500)
	assert.True(t, p.visible(), "second move restarts the hide delay")

	p.advance(500)
	assert.False(t, p.visible())
}

func TestOverlay_OutOfZoneNeverReveals(t *testing.T) {
	p := newPage(t, "")

	for _, pt := range [][2]int{{100, 50}, {1200, 150}, {1080, 50}, {1200, 100}} {
		p.move(pt[0], pt[1])
	}
	assert.False(t, p.visible())
	assert.EqualValues(t, 0, p.pendingTimers())
}

func TestOverlay_OutOfZoneDoesNotExtendVisibility(t *testing.T) {
	p := newPage(t, "")

	p.move(1200, 50)
	p.advance(1000)
	p.move(10, 10)
	p.advance(1000)
	assert.False(t, p.visible())
}

func TestOverlay_ButtonsPostBridgeMessages(t *testing.T) {
	p := newPage(t, "")

	p.eval("document.getElementById('kiosk-close-btn').click()")
	p.eval("document.getElementById('kiosk-min-btn').click()")

	assert.Equal(t,
		`[{"type":"window-close"},{"type":"window-minimize"}]`,
		p.eval("JSON.stringify(__posted)").String(),
	)
}

func TestOverlay_UsesInjectedConfig(t *testing.T) {
	cfg, err := OverlayConfigScript(OverlayParams{ZoneWidth: 400, ZoneHeight: 40, HideDelayMs: 500})
	require.NoError(t, err)
	p := newPage(t, cfg)

	p.move(1000, 30)
	assert.True(t, p.visible())
	p.advance(500)
	assert.False(t, p.visible())

	p.move(1200, 50)
	assert.False(t, p.visible(), "zone height shrinks to 40px")
}

func TestOverlay_ReinjectionIsIdempotent(t *testing.T) {
	p := newPage(t, "")
	_, err := p.rt.RunScript("overlay.js", OverlayScript)
	require.NoError(t, err)
	_, err = p.rt.RunScript("bridge.js", BridgeScript)
	require.NoError(t, err)

	assert.EqualValues(t, 1, p.eval("document.body.children.length").ToInteger())
	assert.EqualValues(t, 1, p.eval("__windowListeners.mousemove.length").ToInteger())
}

func TestBridge_WithoutHandlerIsSilent(t *testing.T) {
	rt := sobek.New()
	_, err := rt.RunString("var window = this;")
	require.NoError(t, err)
	_, err = rt.RunScript("bridge.js", BridgeScript)
	require.NoError(t, err)

	_, err = rt.RunString("window.kioskBridge.closeWindow()")
	require.NoError(t, err)
}

func TestRenderSplash_EscapesText(t *testing.T) {
	html, err := RenderSplash(SplashData{Title: "<b>FMFAU</b>", Subtitle: "Loading"})
	require.NoError(t, err)

	assert.Contains(t, html, "&lt;b&gt;FMFAU&lt;/b&gt;")
	assert.Contains(t, html, "<p>Loading</p>")
	assert.Equal(t, 3, strings.Count(html, `class="dot"`))
	assert.NotContains(t, html, "<script")
}
