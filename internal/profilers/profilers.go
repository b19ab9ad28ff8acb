// Package profilers profiles the phases of the fuzzer.
//
// A Session covers the whole run: the CPU profile (-cpu_profile) spans it, and each Phase labels
// its CPU samples with the phase name plus the caller's labels (e.g. the range of match ids) and
// writes its own heap profile (-mem_profile) when it ends. Optionally an HTTP pprof server (-prof)
// is started, and kept alive after the run until the context is cancelled.
package profilers

import (
	"context"
	"flag"
	"fmt"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
	"net/http"
	_ "net/http/pprof"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"strings"
)

var (
	flagHTTPPort   = flag.Int("prof", -1, "If >= 0, serves pprof at localhost on the given port, and keeps the program alive at the end until interrupted.")
	flagCPUProfile = flag.String("cpu_profile", "", "Write a CPU profile of the run to `file`. Samples are labeled with the phase.")
	flagMemProfile = flag.String("mem_profile", "", "Write a heap profile at the end of each phase to `file`, with the phase name added before the extension.")
)

// Options selects which profiles a Session takes. The zero value takes none.
type Options struct {
	HTTPPort   int // Disabled if < 0.
	CPUProfile string
	MemProfile string
}

// FlagOptions returns the Options set by the -prof, -cpu_profile and -mem_profile flags.
func FlagOptions() Options {
	return Options{HTTPPort: *flagHTTPPort, CPUProfile: *flagCPUProfile, MemProfile: *flagMemProfile}
}

// Session holds the profilers started by New. Call Session.Close at the end of the run.
type Session struct {
	ctx     context.Context
	opts    Options
	cpuFile *os.File
	server  *http.Server
}

// New starts the profilers selected in opts. ctx is used to release the HTTP server on Close.
func New(ctx context.Context, opts Options) (*Session, error) {
	s := &Session{ctx: ctx, opts: opts}
	if opts.CPUProfile != "" {
		f, err := os.Create(opts.CPUProfile)
		if err != nil {
			return nil, errors.Wrapf(err, "creating CPU profile")
		}
		if err = pprof.StartCPUProfile(f); err != nil {
			_ = f.Close()
			return nil, errors.Wrapf(err, "starting CPU profile")
		}
		s.cpuFile = f
	}
	if opts.HTTPPort >= 0 {
		s.server = &http.Server{Addr: fmt.Sprintf("localhost:%d", opts.HTTPPort)}
		go func() {
			if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				klog.Errorf("pprof server on %s failed: %v", s.server.Addr, err)
			}
		}()
		klog.Infof("Serving pprof on http://%s/debug/pprof (e.g.: go tool pprof http://%s/debug/pprof/heap)",
			s.server.Addr, s.server.Addr)
	}
	return s, nil
}

// Phase runs fn with the pprof labels "phase"=name plus the given key/value labels, and then
// writes the heap profile of the phase, if one was requested.
func (s *Session) Phase(ctx context.Context, name string, fn func(ctx context.Context), labels ...string) error {
	if len(labels)%2 != 0 {
		return errors.Errorf("profiler labels for phase %q must be key/value pairs, got %q", name, labels)
	}
	pprof.Do(ctx, pprof.Labels(append([]string{"phase", name}, labels...)...), fn)
	if s.opts.MemProfile == "" {
		return nil
	}
	return writeHeapProfile(HeapProfilePath(s.opts.MemProfile, name))
}

// HeapProfilePath returns the heap profile file of the phase: the phase name is inserted before
// the extension of path.
func HeapProfilePath(path, phase string) string {
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%s%s", strings.TrimSuffix(path, ext), phase, ext)
}

func writeHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating heap profile")
	}
	runtime.GC()
	err = pprof.WriteHeapProfile(f)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return errors.Wrapf(err, "writing heap profile to %q", path)
	}
	klog.V(1).Infof("Heap profile written to %s", path)
	return nil
}

// Close stops the CPU profile. If the HTTP server is running, it blocks until the Session's
// context is done, so the profiles can still be inspected.
func (s *Session) Close() error {
	var err error
	if s.cpuFile != nil {
		pprof.StopCPUProfile()
		err = s.cpuFile.Close()
		s.cpuFile = nil
	}
	if s.server == nil {
		return err
	}
	if s.ctx.Err() == nil {
		klog.Infof("Finished: pprof still served on http://%s/debug/pprof, interrupt (Ctrl+C) to exit", s.server.Addr)
		<-s.ctx.Done()
	}
	if closeErr := s.server.Close(); err == nil {
		err = closeErr
	}
	return err
}
