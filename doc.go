// Package cnt reads, edits and writes cnt configuration documents.
//
// A document is a set of top level key: value entries:
//
//	name: "Launcher",
//	version: 3,
//	flags: [true, false, true],
//	meta: {author: "x"}
//
// Config binds a document to a file. Values are ir.Node trees; every value
// handed out by a Config is a copy, so callers may modify what they get
// without affecting the document.
//
//	c := cnt.New()
//	if err := c.Open("launcher.cnt"); err != nil {
//	    return err
//	}
//	c.Set("memory", ir.FromInt(4096))
//	c.Add("jvm-args", ir.FromString("-Xmx4G"))
//	return c.Save()
//
// Besides the lifecycle, the package offers structural Diff, subset Match
// and JSON Patch application over documents.
package cnt
