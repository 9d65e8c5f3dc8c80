// Command zcat decompresses zlib or raw DEFLATE streams. With no
// arguments it streams stdin to stdout; with file arguments it
// decompresses each file, concurrently, into <file>.out (or into the
// directory given with -o).
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/zstreamkit/zstream/flagutil"
	"github.com/zstreamkit/zstream/inflate"
	"github.com/zstreamkit/zstream/yamlutil"
	"github.com/zstreamkit/zstream/zlog"
	"github.com/zstreamkit/zstream/zreader"
)

var log = zlog.NewPackageLogger("github.com/zstreamkit/zstream", "zcat")

func main() {
	fs := flag.NewFlagSet("zcat", flag.ExitOnError)
	var (
		raw        = fs.Bool("raw", false, "input is a bare DEFLATE stream without zlib framing")
		wbits      flagutil.WindowBitsFlag
		bufSize    flagutil.SizeFlag
		outDir     = fs.String("o", "", "directory for per-file output (default: alongside the input)")
		jobs       = fs.Int("j", 4, "how many files to decompress at once")
		configPath = fs.String("config", "", "YAML file supplying defaults for unset flags")
		logLevel   = fs.String("log-level", "INFO", "log verbosity")
		logJournal = fs.Bool("log-journal", false, "log to the systemd journal instead of stderr")
	)
	wbits.Set("15")
	fs.Var(&wbits, "wbits", "window size exponent, 8..15 (negative for raw streams)")
	bufSize.Set("64K")
	fs.Var(&bufSize, "bufsize", "output copy buffer size, e.g. 64K or 1M")
	fs.Parse(os.Args[1:])

	if *configPath != "" {
		cfg, err := os.ReadFile(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "zcat: reading config: %v\n", err)
			os.Exit(1)
		}
		if err := yamlutil.SetFlagsFromYaml(fs, cfg); err != nil {
			fmt.Fprintf(os.Stderr, "zcat: applying config: %v\n", err)
			os.Exit(1)
		}
	}

	if *logJournal {
		f, err := zlog.NewJournalFormatter()
		if err != nil {
			fmt.Fprintf(os.Stderr, "zcat: %v\n", err)
			os.Exit(1)
		}
		zlog.SetFormatter(f)
	} else {
		zlog.SetFormatter(zlog.NewPrettyFormatter(os.Stderr))
	}
	level, err := zlog.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "zcat: %v\n", err)
		os.Exit(1)
	}
	zlog.SetGlobalLogLevel(level)

	windowBits := wbits.Bits()
	if *raw && windowBits > 0 {
		windowBits = -windowBits
	}

	args := fs.Args()
	if len(args) == 0 || len(args) == 1 && args[0] == "-" {
		if err := decompress(os.Stdin, os.Stdout, windowBits, bufSize.Bytes()); err != nil {
			log.Errorf("stdin: %v", err)
			os.Exit(1)
		}
		return
	}

	var eg errgroup.Group
	eg.SetLimit(*jobs)
	for _, name := range args {
		name := name
		eg.Go(func() error {
			return decompressFile(name, *outDir, windowBits, bufSize.Bytes())
		})
	}
	if err := eg.Wait(); err != nil {
		os.Exit(1)
	}
}

func decompressFile(name, outDir string, windowBits int, bufSize int64) error {
	in, err := os.Open(name)
	if err != nil {
		log.Errorf("%s: %v", name, err)
		return err
	}
	defer in.Close()

	outName := name + ".out"
	if outDir != "" {
		outName = filepath.Join(outDir, filepath.Base(name)+".out")
	}
	out, err := os.Create(outName)
	if err != nil {
		log.Errorf("%s: %v", name, err)
		return err
	}

	if err := decompress(in, out, windowBits, bufSize); err != nil {
		log.Errorf("%s: %v", name, err)
		out.Close()
		os.Remove(outName)
		return err
	}
	if err := out.Close(); err != nil {
		log.Errorf("%s: %v", name, err)
		return err
	}
	log.Infof("%s -> %s", name, outName)
	return nil
}

func decompress(in io.Reader, out io.Writer, windowBits int, bufSize int64) error {
	var zr io.ReadCloser
	switch {
	case windowBits == inflate.MaxWindowBits:
		zr = zreader.NewReader(in)
	case windowBits == -inflate.MaxWindowBits:
		zr = zreader.NewReaderRaw(in)
	default:
		zr = zreader.NewReaderWindow(in, windowBits)
	}
	n, err := io.CopyBuffer(out, zr, make([]byte, bufSize))
	if err != nil {
		return err
	}
	log.Debugf("wrote %d bytes", n)
	return zr.Close()
}
