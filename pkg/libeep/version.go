package libeep

// wrapperVersion is populated at build time via ldflags. In development it
// defaults to v0.0.0-dev.
var wrapperVersion = "v0.0.0-dev"

// WrapperVersion returns the version of this binding, as opposed to
// Version, which reports the native library's own version string.
func WrapperVersion() string {
	return wrapperVersion
}
