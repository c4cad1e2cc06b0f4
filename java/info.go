package java

import (
	"path/filepath"
	"strings"

	"github.com/cntlib/cnt/gomap"
	"github.com/cntlib/cnt/ir"
)

const (
	JDK = "JDK"
	JRE = "JRE"
)

// Info describes one Java installation.
type Info struct {
	// Name is the installation directory's base name, which usually
	// carries the version.
	Name      string `cnt:"name"`
	Publisher string `cnt:"publisher"`
	// Structure is JDK or JRE.
	Structure string `cnt:"structure"`
	Path      string `cnt:"path"`
}

// ToNode renders infos as an array of objects.
func ToNode(infos []Info) *ir.Node {
	if infos == nil {
		infos = []Info{}
	}
	res, err := gomap.ToNode(infos)
	if err != nil {
		// Info only holds strings
		panic(err)
	}
	return res
}

var publishers = []struct {
	needles []string
	name    string
}{
	{[]string{"oracle"}, "Oracle"},
	{[]string{"adoptopenjdk"}, "AdoptOpenJDK"},
	{[]string{"openjdk"}, "OpenJDK"},
	{[]string{"adoptium"}, "Adoptium"},
	{[]string{"amazon", "corretto"}, "Amazon Corretto"},
	{[]string{"azul", "zulu"}, "Azul Zulu"},
	{[]string{"microsoft"}, "Microsoft"},
	{[]string{"bellsoft", "liberica"}, "BellSoft Liberica"},
	{[]string{"graalvm"}, "GraalVM"},
	{[]string{"java"}, "Java"},
}

// Publisher guesses the vendor of the installation at dir from the last
// three elements of the path, innermost first.
func Publisher(dir string) string {
	cur := filepath.Clean(dir)
	for range 3 {
		part := strings.ToLower(filepath.Base(cur))
		for _, p := range publishers {
			for _, n := range p.needles {
				if strings.Contains(part, n) {
					return p.name
				}
			}
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			break
		}
		cur = parent
	}
	return "Unknown"
}
