package log

import (
	"fmt"
	"path"
	"runtime"
	"strings"
)

// moduleRoot is the source directory of this module, including a trailing slash.
// Caller file names are reported relative to it.
var moduleRoot = findModuleRoot()

func findModuleRoot() string {
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		return ""
	}
	// file is <root>/internal/log/caller.go
	return path.Dir(path.Dir(path.Dir(file))) + "/"
}

func getCaller(skip int) string {
	pc, file, line, ok := runtime.Caller(skip + 1)
	if !ok {
		return ""
	}
	if moduleRoot != "/" {
		file = strings.TrimPrefix(file, moduleRoot)
	}
	fn := runtime.FuncForPC(pc).Name()
	fn = fn[strings.LastIndexAny(fn, "./")+1:]
	return fmt.Sprintf("%s:%d:%s()", file, line, fn)
}
