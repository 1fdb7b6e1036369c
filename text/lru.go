// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"golang.org/x/image/math/fixed"

	"gioui.org/overlay/font"
)

// measureCache is a least recently used cache of string advances.
type measureCache struct {
	m          map[measureKey]*measureElem
	head, tail *measureElem
}

type measureElem struct {
	next, prev *measureElem
	key        measureKey
	width      fixed.Int26_6
}

type measureKey struct {
	ppem fixed.Int26_6
	str  string
	font font.Font
}

const maxSize = 1000

func (l *measureCache) Get(k measureKey) (fixed.Int26_6, bool) {
	if lt, ok := l.m[k]; ok {
		l.remove(lt)
		l.insert(lt)
		return lt.width, true
	}
	return 0, false
}

func (l *measureCache) Put(k measureKey, w fixed.Int26_6) {
	if l.m == nil {
		l.m = make(map[measureKey]*measureElem)
		l.head = new(measureElem)
		l.tail = new(measureElem)
		l.head.prev = l.tail
		l.tail.next = l.head
	}
	val := &measureElem{key: k, width: w}
	l.m[k] = val
	l.insert(val)
	if len(l.m) > maxSize {
		oldest := l.tail.next
		l.remove(oldest)
		delete(l.m, oldest.key)
	}
}

func (l *measureCache) Len() int {
	return len(l.m)
}

func (l *measureCache) remove(lt *measureElem) {
	lt.next.prev = lt.prev
	lt.prev.next = lt.next
}

func (l *measureCache) insert(lt *measureElem) {
	lt.next = l.head
	lt.prev = l.head.prev
	lt.prev.next = lt
	lt.next.prev = lt
}
