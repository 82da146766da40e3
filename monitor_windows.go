// Copyright 2021 The Walk Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build windows
// +build windows

package mmaccel

import (
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/Gipcomp/mmaccel/errs"
)

// Editors tend to write a file several times in a row.
const settleDelay = 200 * time.Millisecond

// Monitor calls a function whenever one of a set of files in a directory
// is written.
type Monitor struct {
	dir  windows.Handle
	stop windows.Handle
	done chan struct{}
}

// NewMonitor watches names inside dir and calls onChange from its own
// goroutine after they change.
func NewMonitor(dir string, names []string, onChange func()) (*Monitor, error) {
	path, err := windows.UTF16PtrFromString(dir)
	if err != nil {
		return nil, errs.WrapError(err)
	}

	h, err := windows.CreateFile(
		path,
		windows.FILE_LIST_DIRECTORY,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE|windows.FILE_SHARE_DELETE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_FLAG_BACKUP_SEMANTICS|windows.FILE_FLAG_OVERLAPPED,
		0)
	if err != nil {
		return nil, errs.Wrap(err, dir)
	}

	stop, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		windows.CloseHandle(h)
		return nil, errs.Wrap(err, "CreateEvent")
	}

	m := &Monitor{
		dir:  h,
		stop: stop,
		done: make(chan struct{}),
	}
	go m.run(names, onChange)

	return m, nil
}

func (m *Monitor) run(names []string, onChange func()) {
	defer close(m.done)
	defer windows.CloseHandle(m.dir)

	ready, err := windows.CreateEvent(nil, 1, 0, nil)
	if err != nil {
		errs.Logf("monitor: CreateEvent: %v", err)
		return
	}
	defer windows.CloseHandle(ready)

	buf := make([]byte, 4096)
	for {
		ov := windows.Overlapped{HEvent: ready}
		windows.ResetEvent(ready)

		err := windows.ReadDirectoryChanges(
			m.dir,
			&buf[0],
			uint32(len(buf)),
			false,
			windows.FILE_NOTIFY_CHANGE_LAST_WRITE,
			nil,
			&ov,
			0)
		if err != nil {
			errs.Logf("monitor: ReadDirectoryChanges: %v", err)
			return
		}

		event, err := windows.WaitForMultipleObjects([]windows.Handle{ready, m.stop}, false, windows.INFINITE)
		if err != nil || event != windows.WAIT_OBJECT_0 {
			windows.CancelIoEx(m.dir, &ov)
			var n uint32
			windows.GetOverlappedResult(m.dir, &ov, &n, true)
			return
		}

		var n uint32
		if err := windows.GetOverlappedResult(m.dir, &ov, &n, false); err != nil {
			errs.Logf("monitor: GetOverlappedResult: %v", err)
			continue
		}

		if changedAny(buf[:n], names) {
			// Collect the remaining writes before reporting.
			if event, _ := windows.WaitForSingleObject(m.stop, uint32(settleDelay/time.Millisecond)); event == windows.WAIT_OBJECT_0 {
				return
			}
			onChange()
		}
	}
}

func changedAny(buf []byte, names []string) bool {
	for off := uint32(0); int(off)+int(unsafe.Sizeof(windows.FileNotifyInformation{})) <= len(buf); {
		info := (*windows.FileNotifyInformation)(unsafe.Pointer(&buf[off]))
		name := windows.UTF16ToString(unsafe.Slice(&info.FileName, info.FileNameLength/2))
		errs.Debugf("monitor: %s changed", name)
		if watched(name, names) {
			return true
		}
		if info.NextEntryOffset == 0 {
			break
		}
		off += info.NextEntryOffset
	}
	return false
}

// Stop ends the watch and waits for the goroutine to exit.
func (m *Monitor) Stop() {
	windows.SetEvent(m.stop)
	<-m.done
	windows.CloseHandle(m.stop)
}
