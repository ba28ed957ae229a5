package dom

// Breakpoints maps responsive breakpoint names to their minimum widths.
var Breakpoints = map[string]string{
	"xs":  "0",
	"sm":  "36rem",   // 576px
	"md":  "48rem",   // 768px
	"lg":  "62rem",   // 992px
	"xl":  "75rem",   // 1200px
	"xxl": "87.5rem", // 1400px
}

// Breakpoint returns the minimum width registered for name.
func Breakpoint(name string) (string, bool) {
	v, ok := Breakpoints[name]
	return v, ok
}
