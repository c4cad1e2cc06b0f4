package gomap

import (
	"reflect"
	"strings"
	"sync"
)

type fieldInfo struct {
	name      string
	index     []int
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

func parseTag(tag string) (name string, omitEmpty bool) {
	name, opts, _ := strings.Cut(tag, ",")
	for _, o := range strings.Split(opts, ",") {
		if o == "omitempty" {
			omitEmpty = true
		}
	}
	return name, omitEmpty
}

// fields lists the mapped fields of the struct type ty, including
// those promoted from untagged embedded structs.
func fields(ty reflect.Type) []fieldInfo {
	if res, ok := fieldCache.Load(ty); ok {
		return res.([]fieldInfo)
	}
	var res []fieldInfo
	for i := range ty.NumField() {
		f := ty.Field(i)
		tag, hasTag := f.Tag.Lookup("cnt")
		if tag == "-" {
			continue
		}
		name, omitEmpty := parseTag(tag)
		if f.Anonymous && !hasTag && f.IsExported() && f.Type.Kind() == reflect.Struct {
			for _, sub := range fields(f.Type) {
				sub.index = append([]int{i}, sub.index...)
				res = append(res, sub)
			}
			continue
		}
		if !f.IsExported() {
			continue
		}
		if name == "" {
			name = f.Name
		}
		res = append(res, fieldInfo{name: name, index: []int{i}, omitEmpty: omitEmpty})
	}
	fieldCache.Store(ty, res)
	return res
}
