// Package scratch formats short per-frame strings (HUD labels, counters)
// into a reusable byte buffer instead of allocating through fmt.
package scratch

import (
	"strconv"
	"unicode/utf8"
	"unsafe"
)

// Buffer is single-threaded. Strings returned by Printf and View alias the
// buffer and stay valid until the next Reset.
type Buffer struct {
	buf []byte
}

func New(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = 1024
	}
	return &Buffer{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer without freeing memory. Call once per frame,
// before any label is formatted.
func (s *Buffer) Reset() { s.buf = s.buf[:0] }

func (s *Buffer) Len() int { return len(s.buf) }
func (s *Buffer) Cap() int { return cap(s.buf) }

// Mark returns a bookmark to later slice the output.
func (s *Buffer) Mark() int { return len(s.buf) }

// String copies everything written since mark.
func (s *Buffer) String(mark int) string { return string(s.buf[mark:]) }

// View returns a zero-copy string of everything written since mark.
// Growing the buffer leaves earlier views pointing at the old backing
// array, which is never written again, so views stay intact.
func (s *Buffer) View(mark int) string {
	b := s.buf[mark:]
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// ----- Append primitives (chainable) -----

func (s *Buffer) S(v string) *Buffer {
	s.buf = append(s.buf, v...)
	return s
}

func (s *Buffer) R(r rune) *Buffer {
	s.buf = utf8.AppendRune(s.buf, r)
	return s
}

func (s *Buffer) I(v int) *Buffer {
	s.buf = strconv.AppendInt(s.buf, int64(v), 10)
	return s
}

// F64 appends v with prec digits after the decimal point.
func (s *Buffer) F64(v float64, prec int) *Buffer {
	s.buf = strconv.AppendFloat(s.buf, v, 'f', prec, 64)
	return s
}

// Hex appends u in lowercase hexadecimal without a prefix.
func (s *Buffer) Hex(u uint64) *Buffer {
	s.buf = strconv.AppendUint(s.buf, u, 16)
	return s
}

// ----- Minimal % formatter -----

// Printf supports %s %d %x %t %f (with .prec, default 3) and %%. Unknown
// verbs are written literally; missing arguments stop formatting. The
// result is a View.
//
//	label := buf.Printf("Mouse: (%.0f, %.0f)", x, y)
func (s *Buffer) Printf(format string, args ...any) string {
	mark := len(s.buf)
	ai := 0
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' {
			s.buf = append(s.buf, ch)
			continue
		}
		if i+1 < len(format) && format[i+1] == '%' {
			s.buf = append(s.buf, '%')
			i++
			continue
		}
		i++
		prec := -1
		if i < len(format) && format[i] == '.' {
			i++
			start := i
			for i < len(format) && format[i] >= '0' && format[i] <= '9' {
				i++
			}
			prec = atoi(format[start:i])
		}
		if i >= len(format) || ai >= len(args) {
			break
		}
		arg := args[ai]
		ai++
		switch format[i] {
		case 's':
			s.appendString(arg)
		case 'd':
			s.buf = strconv.AppendInt(s.buf, toInt64(arg), 10)
		case 'x':
			s.buf = strconv.AppendUint(s.buf, uint64(toInt64(arg)), 16)
		case 't':
			b, _ := arg.(bool)
			s.buf = strconv.AppendBool(s.buf, b)
		case 'f':
			if prec < 0 {
				prec = 3
			}
			s.buf = strconv.AppendFloat(s.buf, toFloat64(arg), 'f', prec, 64)
		default:
			s.buf = append(s.buf, '%', format[i])
		}
	}
	return s.View(mark)
}

func (s *Buffer) appendString(v any) {
	switch x := v.(type) {
	case string:
		s.buf = append(s.buf, x...)
	case []byte:
		s.buf = append(s.buf, x...)
	case interface{ String() string }:
		s.buf = append(s.buf, x.String()...)
	default:
		s.buf = append(s.buf, "<?>"...)
	}
}

func atoi(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		n = n*10 + int(s[i]-'0')
	}
	return n
}

func toInt64(v any) int64 {
	switch x := v.(type) {
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case int64:
		return x
	case uint:
		return int64(x)
	case uint32:
		return int64(x)
	case uint64:
		return int64(x)
	case uintptr:
		return int64(x)
	default:
		return 0
	}
}

func toFloat64(v any) float64 {
	switch x := v.(type) {
	case float32:
		return float64(x)
	case float64:
		return x
	case int:
		return float64(x)
	default:
		return 0
	}
}
