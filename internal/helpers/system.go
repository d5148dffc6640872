package helpers

import (
	"fmt"
	"path"
	"runtime"

	"github.com/dustin/go-humanize"
)

func RootDir() string {
	_, filename, _, _ := runtime.Caller(0)
	return path.Join(path.Dir(filename), "../..")
}

func MemUsageString() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("alloc %v, sys %v, gc cycles %v",
		humanize.Bytes(m.Alloc), humanize.Bytes(m.Sys), m.NumGC)
}
