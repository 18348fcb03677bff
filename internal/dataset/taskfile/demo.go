package taskfile

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"gantt-chart/pkg/datemath"
)

//go:embed demo/*.yaml
var demoFS embed.FS

// Demos decodes every embedded demo task file, sorted by file name.
func Demos(p *datemath.Parser, now time.Time) ([]Decoded, error) {
	names, err := fs.Glob(demoFS, "demo/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("taskfile: list demos: %w", err)
	}
	sort.Strings(names)

	out := make([]Decoded, 0, len(names))
	for _, name := range names {
		fh, err := demoFS.Open(name)
		if err != nil {
			return nil, fmt.Errorf("taskfile: open %s: %w", name, err)
		}
		d, err := Decode(fh, p, now)
		fh.Close()
		if err != nil {
			return nil, fmt.Errorf("taskfile: %s: %w", path.Base(name), err)
		}
		out = append(out, d)
	}
	return out, nil
}
