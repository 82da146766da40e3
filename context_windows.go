// Copyright 2010 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"sync/atomic"
	"syscall"
	"unsafe"

	"github.com/Gipcomp/win32/handle"
	"github.com/Gipcomp/win32/user32"
	"golang.org/x/sys/windows"

	"github.com/Gipcomp/mmaccel/errs"
	"github.com/Gipcomp/mmaccel/handler"
	"github.com/Gipcomp/mmaccel/settings"
)

// MainWindowClass is the window class of the host's main window.
const MainWindowClass = "Polygon Movie Maker"

var (
	callWndProcRetCallback = syscall.NewCallback(callWndProcRetHook)
	getMessageCallback     = syscall.NewCallback(getMessageHook)

	current atomic.Pointer[Context]
)

// Context is the add-on's state inside the host process. Everything but
// Reload runs on the host's GUI thread.
type Context struct {
	settings *settings.Settings
	hooks    []uintptr
	window   handle.HWND
	menu     *Menu
	monitor  *Monitor
	handler  *handler.Handler
	pending  atomic.Pointer[handler.Handler]
	enabled  atomic.Bool
}

// Attach loads the configuration named by s and hooks the calling thread,
// which must be the host's GUI thread.
func Attach(s *settings.Settings) (*Context, error) {
	if current.Load() != nil {
		return nil, errs.NewError("already attached")
	}

	h, err := LoadHandler(s, Controls{})
	if err != nil {
		return nil, err
	}

	c := &Context{
		settings: s,
		handler:  h,
	}
	c.enabled.Store(true)

	if !current.CompareAndSwap(nil, c) {
		return nil, errs.NewError("already attached")
	}

	threadID := windows.GetCurrentThreadId()
	for _, hook := range []struct {
		id int
		fn uintptr
	}{
		{whCallWndProcRet, callWndProcRetCallback},
		{whGetMessage, getMessageCallback},
	} {
		hh, err := setWindowsHookEx(hook.id, hook.fn, threadID)
		if err != nil {
			c.close()
			current.CompareAndSwap(c, nil)
			return nil, errs.Wrap(err, "SetWindowsHookEx")
		}
		c.hooks = append(c.hooks, hh)
	}

	if s.Watch {
		m, err := NewMonitor(s.Dir, []string{s.MMDMap, s.KeyMap}, c.reloadAsync)
		if err != nil {
			errs.Logf("monitor: %v", err)
		} else {
			c.monitor = m
		}
	}

	errs.Debugf("attached to thread %d", threadID)
	return c, nil
}

// Detach unhooks the current Context. It does nothing when none is
// attached.
func Detach() {
	if c := current.Swap(nil); c != nil {
		c.close()
	}
}

// Current returns the attached Context or nil.
func Current() *Context {
	return current.Load()
}

func (c *Context) close() {
	for _, h := range c.hooks {
		unhookWindowsHookEx(h)
	}
	c.hooks = nil

	if c.monitor != nil {
		c.monitor.Stop()
		c.monitor = nil
	}
	if c.menu != nil {
		c.menu.Dispose()
		c.menu = nil
	}
}

// Reload rebuilds the Handler from disk. The new Handler takes over on the
// GUI thread with the next hooked message; on failure the current one
// stays.
func (c *Context) Reload() error {
	h, err := LoadHandler(c.settings, Controls{})
	if err != nil {
		return err
	}
	c.pending.Store(h)
	return nil
}

func (c *Context) reloadAsync() {
	if err := c.Reload(); err != nil {
		errs.Logf("reload: %v", err)
		return
	}
	errs.Logf("reloaded")
}

func (c *Context) swapPending() {
	if h := c.pending.Swap(nil); h != nil {
		c.handler = h
	}
}

// KeyState is the GetKeyState decision of the active Handler.
func (c *Context) KeyState(vk uint32) (uint16, bool) {
	return c.handler.KeyState(vk)
}

func (c *Context) callWndProcRet(data *cwpRetStruct) {
	switch data.Message {
	case wmCreate:
		if c.window != 0 || className(data.HWnd) != MainWindowClass {
			return
		}
		errs.Debugf("main window %#x created", data.HWnd)
		c.window = data.HWnd

		m, err := newMenu(data.HWnd, c.enabled.Load())
		if err != nil {
			errs.Logf("menu: %v", err)
			return
		}
		c.menu = m

	case user32.WM_DESTROY:
		if data.HWnd != c.window {
			return
		}
		errs.Debugf("main window %#x destroyed", data.HWnd)
		if c.menu != nil {
			c.menu.release()
			c.menu = nil
		}
		c.window = 0
	}
}

func (c *Context) getMessage(msg *user32.MSG) {
	c.swapPending()

	switch msg.Message {
	case user32.WM_COMMAND:
		if c.menu == nil {
			return
		}
		if item, ok := c.menu.Command(msg.WParam); ok {
			c.command(item)
		}

	case user32.WM_KEYDOWN, wmSysKeyDown:
		if c.window != 0 && c.enabled.Load() {
			c.handler.KeyDown(uint32(msg.WParam), handler.Window(c.window))
		}

	case user32.WM_KEYUP, wmSysKeyUp:
		c.handler.KeyUp(uint32(msg.WParam))
	}
}

func (c *Context) command(item MenuItem) {
	errs.Debugf("menu: %v", item)

	switch item {
	case MenuKeyConfig:
		if err := Launch(c.window, c.settings.EditorPath(), c.settings.Dir); err != nil {
			showError(c.window, "キー設定を起動できません: %v", err)
		}

	case MenuReload:
		if err := c.Reload(); err != nil {
			showError(c.window, "再読み込みに失敗しました: %v", err)
			return
		}
		c.swapPending()
		for _, conflict := range c.handler.Conflicts() {
			errs.Logf("%v is bound to %v", conflict.Keys, conflict.Names)
		}

	case MenuEnabled:
		enabled := !c.enabled.Load()
		c.enabled.Store(enabled)
		if err := c.menu.SetChecked(MenuEnabled, enabled); err != nil {
			errs.Logf("menu: %v", err)
		}

	case MenuVersion:
		versionInfo(c.window)
	}
}

func callWndProcRetHook(code int, wParam, lParam uintptr) uintptr {
	if code == hcAction && lParam != 0 {
		if c := current.Load(); c != nil {
			c.safely(func() {
				c.callWndProcRet((*cwpRetStruct)(unsafe.Pointer(lParam)))
			})
		}
	}
	return callNextHookEx(code, wParam, lParam)
}

// getMessageHook only sees messages leaving the queue; a PM_NOREMOVE peek
// would otherwise dispatch the same key twice.
func getMessageHook(code int, wParam, lParam uintptr) uintptr {
	if code >= 0 && wParam&pmRemove != 0 && lParam != 0 {
		if c := current.Load(); c != nil {
			c.safely(func() {
				c.getMessage((*user32.MSG)(unsafe.Pointer(lParam)))
			})
		}
	}
	return callNextHookEx(code, wParam, lParam)
}

// safely keeps a panic from unwinding into the host.
func (c *Context) safely(f func()) {
	defer func() {
		if x := recover(); x != nil {
			errs.Recovered(x)
		}
	}()
	f()
}
