package sqlstmt

import (
	"strconv"
	"sync"
	"unsafe"
)

/*
Allocation-free conversion. Reinterprets a byte slice as a string. Borrowed from
the standard library. Reasonably safe. Should not be used when the underlying
byte array is volatile.
*/
func bytesToMutableString(bytes []byte) string {
	return *(*string)(unsafe.Pointer(&bytes))
}

func cacheOf[Key comparable, Val any](fun func(Key) Val) *cache[Key, Val] {
	return &cache[Key, Val]{Func: fun}
}

type cache[Key comparable, Val any] struct {
	sync.Map
	Func func(Key) Val
}

// Susceptible to "thundering herd". An improvement from no caching, but still
// not ideal.
func (self *cache[Key, Val]) Get(key Key) Val {
	iface, ok := self.Load(key)
	if ok {
		return iface.(Val)
	}

	val := self.Func(key)
	self.Store(key, val)
	return val
}

func try(err error) {
	if err != nil {
		panic(err)
	}
}

func try1[A any](val A, err error) A {
	try(err)
	return val
}

// Must be deferred.
func rec(ptr *error) {
	val := recover()
	if val == nil {
		return
	}

	err, _ := val.(error)
	if err != nil {
		*ptr = err
		return
	}

	panic(val)
}

func appendOrdinal(text []byte, ord int) []byte {
	text = append(text, ordinalParamPrefix)
	return strconv.AppendInt(text, int64(ord), 10)
}

func appendJoined(text []byte, delim string, vals []string) []byte {
	for ind, val := range vals {
		if ind > 0 {
			text = append(text, delim...)
		}
		text = append(text, val...)
	}
	return text
}

func appendClause(text []byte, keyword string) []byte {
	if len(text) > 0 {
		text = append(text, ' ')
	}
	text = append(text, keyword...)
	return append(text, ' ')
}
