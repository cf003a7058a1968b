//go:build windows && !386 && !arm

package desktop

// 64-bit user32 exports the pointer-sized variants.
var (
	procGetWindowLongPtr = user32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtr = user32.NewProc("SetWindowLongPtrW")
)
