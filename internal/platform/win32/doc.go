// Package win32 provides Windows platform support using user32, kernel32
// and the registry. On other operating systems only the portable window
// description logic is compiled, nothing registers a provider, and
// platform.NewProvider reports platform.ErrUnsupported.
package win32
