package bolt

import (
	"time"

	"github.com/packstream-go/bolt/bolt/internal/boltlog"
	"github.com/packstream-go/bolt/bolt/internal/platform"
)

// Options configures a Facade: its handshake identity and a few behavioral
// knobs. This is a plain struct with package-level defaults, not a
// functional-options API — there's no variadic construction path here
// worth the indirection.
type Options struct {
	// ClientName is an INIT clientName value, DefaultClientName() in
	// DefaultOptions. NewFacade does not read it: Initialize sends the
	// clientName passed to it.
	ClientName string

	// ByteArraysSupported reflects what the connection's handshake
	// negotiated; it seeds the Packer's capability flag.
	ByteArraysSupported bool

	// DisableLosslessIntegers is carried for the connection's Unpacker,
	// which decodes responses. The Facade does not decode responses and
	// does not read this field.
	DisableLosslessIntegers bool

	// HandshakeTimeout is carried as configuration for the connection that
	// waits for INIT's response. The façade has no timer and does not read
	// this field.
	HandshakeTimeout time.Duration

	// Logger receives protocol tracing and fatal-error reports. Defaults to
	// a no-op (LevelNone) logger if nil.
	Logger *boltlog.Logger
}

// defaultOptions is a ready-to-use baseline that DefaultOptions returns a
// copy of.
var defaultOptions = Options{
	ClientName:              "",
	ByteArraysSupported:     true,
	DisableLosslessIntegers: false,
	HandshakeTimeout:        10 * time.Second,
}

// DefaultOptions returns an Options populated with this package's defaults,
// with ClientName filled in from DefaultClientName(). Callers are free to
// overwrite any field on the returned value.
func DefaultOptions() Options {
	o := defaultOptions
	o.ClientName = DefaultClientName()
	o.Logger = boltlog.New(boltlog.LevelNone)
	return o
}

// DefaultClientName builds a "module/version (GOOS/kernel-release)" style
// identifier suitable for INIT's clientName field.
func DefaultClientName() string {
	return "packstream-go-bolt/0.1.0 (" + platform.OSIdentifier() + ")"
}

func (o Options) logger() *boltlog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return boltlog.New(boltlog.LevelNone)
}
