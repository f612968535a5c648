// zerohex generates hex codec methods for byte-array types. Given
//
//	type Address [20]byte
//
// in package p, running
//
//	zerohex -type=Address
//
// in the package directory writes zerohex_gen.go with ParseAddress,
// AddressLen and the String, GoString, MarshalText and UnmarshalText
// methods. -msgpack, -cbor and -proto add the framework adapters.
// Typically invoked through go generate:
//
//	//go:generate zerohex -type=Address,Hash -msgpack
//
// If any requested type is not a single [N]byte with a literal N, zerohex
// reports every such type, writes nothing and exits with status 1.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	stdslog "log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/unkn0wn-root/zerohex"
	"github.com/unkn0wn-root/zerohex/gen"
	zlogrus "github.com/unkn0wn-root/zerohex/log/logrus"
	zslog "github.com/unkn0wn-root/zerohex/log/slog"
	zzap "github.com/unkn0wn-root/zerohex/log/zap"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("zerohex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		typeNames = fs.String("type", "", "comma-separated list of type names; required")
		output    = fs.String("output", "", "output file name; default <dir>/"+gen.DefaultOutput)
		msgpack   = fs.Bool("msgpack", false, "emit EncodeMsgpack/DecodeMsgpack")
		cbor      = fs.Bool("cbor", false, "emit MarshalCBOR/UnmarshalCBOR")
		proto     = fs.Bool("proto", false, "emit Proto/SetProto using wrapperspb.StringValue")
		logKind   = fs.String("log", "zap", "log backend: zap, logrus or slog")
		verbose   = fs.Bool("v", false, "log at debug level")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: zerohex -type T[,T...] [flags] [dir]\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *typeNames == "" {
		fs.Usage()
		return errors.New("zerohex: -type is required")
	}

	dir := "."
	switch fs.NArg() {
	case 0:
	case 1:
		dir = fs.Arg(0)
	default:
		return fmt.Errorf("zerohex: expected at most one directory, got %d", fs.NArg())
	}
	out := *output
	if out == "" {
		out = filepath.Join(dir, gen.DefaultOutput)
	}

	log, sync, err := newLogger(*logKind, *verbose, stderr)
	if err != nil {
		return err
	}
	defer sync()

	names := strings.Split(*typeNames, ",")
	pkg, ds, err := gen.Load(dir, names, filepath.Base(out))
	if err != nil {
		return err
	}

	f := gen.Features{Msgpack: *msgpack, CBOR: *cbor, Proto: *proto}
	codecs, err := gen.New(gen.Options{Features: f, Logger: log}).GenerateAll(ds)
	if err != nil {
		return err
	}
	src, err := gen.Render(pkg, codecs, f, headerArgs(args[:len(args)-fs.NArg()]))
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}
	log.Info("wrote file", zerohex.Fields{"path": out, "package": pkg})
	return nil
}

// headerArgs keeps the flags that shape the generated code, in the order
// given. The directory, -output, -log and -v are dropped so the header is
// the same on every machine and with every logger.
func headerArgs(flags []string) []string {
	var out []string
	for i := 0; i < len(flags); i++ {
		a := flags[i]
		if a == "--" {
			continue
		}
		name, _, hasValue := strings.Cut(strings.TrimLeft(a, "-"), "=")
		switch name {
		case "output", "log":
			if !hasValue {
				i++
			}
			continue
		case "v":
			continue
		case "type":
			if !hasValue && i+1 < len(flags) {
				out = append(out, a, flags[i+1])
				i++
				continue
			}
		}
		out = append(out, a)
	}
	return out
}

func newLogger(kind string, verbose bool, w io.Writer) (zerohex.Logger, func(), error) {
	switch kind {
	case "zap":
		level := zapcore.InfoLevel
		if verbose {
			level = zapcore.DebugLevel
		}
		core := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
			zapcore.AddSync(w),
			level,
		)
		l := zap.New(core).Named("zerohex")
		return zzap.New(l), func() { _ = l.Sync() }, nil
	case "logrus":
		l := logrus.New()
		l.SetOutput(w)
		if verbose {
			l.SetLevel(logrus.DebugLevel)
		}
		return zlogrus.New(l), func() {}, nil
	case "slog":
		level := stdslog.LevelInfo
		if verbose {
			level = stdslog.LevelDebug
		}
		l := stdslog.New(stdslog.NewTextHandler(w, &stdslog.HandlerOptions{Level: level}))
		return zslog.Logger{L: l}, func() {}, nil
	default:
		return nil, nil, fmt.Errorf("zerohex: unknown -log %q", kind)
	}
}
