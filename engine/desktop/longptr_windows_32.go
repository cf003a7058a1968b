//go:build windows && (386 || arm)

package desktop

// 32-bit user32 has no *LongPtr exports; the 32-bit calls cover pointers.
var (
	procGetWindowLongPtr = user32.NewProc("GetWindowLongW")
	procSetWindowLongPtr = user32.NewProc("SetWindowLongW")
)
