package java

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/spf13/afero"

	"github.com/cntlib/cnt/debug"
)

// Searcher looks for Java installations on a filesystem.
type Searcher struct {
	Fs     afero.Fs
	Getenv func(string) string
	// GOOS selects the platform conventions, "windows" or anything else.
	GOOS string
}

func NewSearcher() *Searcher {
	return &Searcher{
		Fs:     afero.NewOsFs(),
		Getenv: os.Getenv,
		GOOS:   runtime.GOOS,
	}
}

func (s *Searcher) windows() bool {
	return s.GOOS == "windows"
}

func (s *Searcher) exe(name string) string {
	if s.windows() {
		return name + ".exe"
	}
	return name
}

// Quick scans the common locations one level deep and PATH.
func (s *Searcher) Quick(ctx context.Context) ([]Info, error) {
	res := map[string]Info{}
	for _, loc := range s.commonLocations() {
		if err := s.scan(ctx, loc, false, res); err != nil {
			return nil, err
		}
	}
	s.checkPath(res)
	s.checkJavaHome(res)
	return sorted(res), nil
}

// Deep is like Quick but covers more locations and scans some of them
// recursively.
func (s *Searcher) Deep(ctx context.Context) ([]Info, error) {
	res := map[string]Info{}
	for _, loc := range s.deepLocations() {
		if err := s.scan(ctx, loc, s.recursive(loc), res); err != nil {
			return nil, err
		}
	}
	s.checkPath(res)
	s.checkJavaHome(res)
	return sorted(res), nil
}

func sorted(m map[string]Info) []Info {
	res := make([]Info, 0, len(m))
	for _, info := range m {
		res = append(res, info)
	}
	slices.SortFunc(res, func(a, b Info) int {
		return strings.Compare(a.Path, b.Path)
	})
	return res
}

func (s *Searcher) commonLocations() []string {
	var locs []string
	if s.windows() {
		for _, v := range []string{"ProgramFiles", "ProgramFiles(x86)"} {
			if d := s.Getenv(v); d != "" {
				locs = append(locs, filepath.Join(d, "Java"))
			}
		}
		if d := s.Getenv("LOCALAPPDATA"); d != "" {
			locs = append(locs, filepath.Join(d, "Programs", "Java"))
		}
	} else {
		locs = append(locs,
			"/usr/lib/jvm",
			"/usr/lib64/jvm",
			"/usr/local/lib/jvm",
			"/usr/java",
			"/usr/local/java",
			"/usr/lib/jvm/java",
			"/usr/lib/jvm/openjdk",
		)
		if home := s.Getenv("HOME"); home != "" {
			locs = append(locs,
				filepath.Join(home, ".jdks"),
				filepath.Join(home, ".local", "share", "java"),
			)
		}
	}
	if jh := s.Getenv("JAVA_HOME"); jh != "" {
		if ok, _ := afero.Exists(s.Fs, jh); ok {
			locs = append(locs, jh)
		}
	}
	return locs
}

func (s *Searcher) deepLocations() []string {
	locs := s.commonLocations()
	if s.windows() {
		if up := s.Getenv("USERPROFILE"); up != "" {
			locs = append(locs,
				filepath.Join(up, "Downloads"),
				filepath.Join(up, "Desktop"),
				filepath.Join(up, "Documents"),
				filepath.Join(up, "AppData", "Local", "Programs"),
			)
		}
		return append(locs, `C:\Program Files`, `C:\Program Files (x86)`)
	}
	locs = append(locs, "/opt", "/usr/local", "/var/lib")
	if home := s.Getenv("HOME"); home != "" {
		sdk := filepath.Join(home, ".sdkman", "candidates", "java")
		locs = append(locs, sdk)
		if ms, err := afero.Glob(s.Fs, filepath.Join(sdk, "*")); err == nil {
			locs = append(locs, ms...)
		}
	}
	return locs
}

func (s *Searcher) recursive(loc string) bool {
	if s.windows() {
		l := strings.ToLower(loc)
		for _, n := range []string{"download", "desktop", "document", "appdata"} {
			if strings.Contains(l, n) {
				return true
			}
		}
		return false
	}
	return strings.HasPrefix(loc, "/home/") ||
		loc == "/opt" ||
		loc == "/usr/local" ||
		strings.Contains(loc, "/.sdkman/")
}

func (s *Searcher) isFile(p string) bool {
	fi, err := s.Fs.Stat(p)
	return err == nil && fi.Mode().IsRegular()
}

// install reports dir as an installation if it has bin/java.
func (s *Searcher) install(dir string, res map[string]Info) {
	if !s.isFile(filepath.Join(dir, "bin", s.exe("java"))) {
		return
	}
	if _, ok := res[dir]; ok {
		return
	}
	info := Info{
		Name:      filepath.Base(dir),
		Publisher: Publisher(dir),
		Structure: s.structure(dir),
		Path:      dir,
	}
	if debug.Java() {
		debug.Logf("found %s %s at %s\n", info.Publisher, info.Structure, dir)
	}
	res[dir] = info
}

func (s *Searcher) structure(dir string) string {
	name := strings.ToLower(filepath.Base(dir))
	switch {
	case strings.Contains(name, "jdk"):
		return JDK
	case strings.Contains(name, "jre"):
		return JRE
	case s.isFile(filepath.Join(dir, "bin", s.exe("javac"))):
		return JDK
	}
	return JRE
}

// scan looks for installations in the subdirectories of dir. Unreadable
// directories are skipped.
func (s *Searcher) scan(ctx context.Context, dir string, recursive bool, res map[string]Info) error {
	if ok, _ := afero.DirExists(s.Fs, dir); !ok {
		return nil
	}
	if !recursive {
		entries, err := afero.ReadDir(s.Fs, dir)
		if err != nil {
			return nil
		}
		for _, e := range entries {
			if e.IsDir() {
				s.install(filepath.Join(dir, e.Name()), res)
			}
		}
		return nil
	}
	return afero.Walk(s.Fs, dir, func(p string, fi fs.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err != nil {
			if fi != nil && fi.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if fi.IsDir() && p != dir {
			s.install(p, res)
		}
		return nil
	})
}

// checkPath reports the installations owning the java executables found
// on PATH.
func (s *Searcher) checkPath(res map[string]Info) {
	sep := ":"
	if s.windows() {
		sep = ";"
	}
	for _, dir := range strings.Split(s.Getenv("PATH"), sep) {
		if dir == "" {
			continue
		}
		exe := filepath.Join(dir, s.exe("java"))
		if !s.isFile(exe) {
			continue
		}
		s.install(installDir(exe), res)
	}
}

// checkJavaHome reports JAVA_HOME when it is an installation itself.
func (s *Searcher) checkJavaHome(res map[string]Info) {
	if jh := s.Getenv("JAVA_HOME"); jh != "" {
		s.install(filepath.Clean(jh), res)
	}
}

// installDir returns the installation directory of a java executable: the
// parent of its bin directory, or the directory holding it.
func installDir(exe string) string {
	bin := filepath.Dir(exe)
	if filepath.Base(bin) == "bin" {
		return filepath.Dir(bin)
	}
	return bin
}
