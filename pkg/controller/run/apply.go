package run

import (
	"maps"
	"slices"
	"strings"

	"github.com/suzuki-shunsuke/pyrignore/pkg/config"
)

const (
	typeIgnoreMarker    = "# type: ignore"
	pyrightIgnoreMarker = "# pyright: ignore"
	markerSeparator     = "  "
)

func (c *Controller) additionMarker() string {
	if c.cfg.CommentStyle == config.CommentStylePyright {
		return pyrightIgnoreMarker
	}
	return typeIgnoreMarker
}

// apply mutates every buffer in the plan. Per buffer, all additions are
// applied before any removal. This ordering is load-bearing: a single
// report may request an addition at a line while also carrying a stale
// removal for the same line, and a comment added this run must never be
// stripped by that removal.
func (c *Controller) apply(plan *Plan) {
	for _, buf := range plan.Buffers() {
		c.applyAdditions(buf)
		c.applyRemovals(buf)
	}
}

func sortedIndices(m map[int]struct{}) []int {
	return slices.Sorted(maps.Keys(m))
}

// applyAdditions appends the suppression comment to each recorded line,
// in ascending order for reproducible output. A line that already ends
// with the comment is left as is, so applying the same report twice is
// a no-op.
func (c *Controller) applyAdditions(buf *FileBuffer) {
	marker := c.additionMarker()
	for _, i := range sortedIndices(buf.added) {
		line := buf.Lines[i]
		if strings.HasSuffix(strings.TrimSpace(line), marker) {
			continue
		}
		buf.Lines[i] = strings.TrimRight(line, " \t\r\n") + markerSeparator + marker + "\n"
		buf.appended[i] = struct{}{}
		buf.changed = true
	}
}

// applyRemovals strips the suppression comment from each recorded line,
// in ascending order. Both comment forms are recognized. A line whose
// comment was appended this run is skipped. A line with no recognized
// comment is reported and left unmodified.
func (c *Controller) applyRemovals(buf *FileBuffer) {
	for _, i := range sortedIndices(buf.removed) {
		if _, ok := buf.appended[i]; ok {
			continue
		}
		line := buf.Lines[i]
		trimmed := strings.TrimSpace(line)
		var marker string
		switch {
		case strings.HasSuffix(trimmed, typeIgnoreMarker):
			marker = typeIgnoreMarker
		case strings.HasSuffix(trimmed, pyrightIgnoreMarker):
			marker = pyrightIgnoreMarker
		default:
			c.logger.MarkerNotFound(buf.Path, i)
			continue
		}
		idx := strings.Index(line, marker)
		buf.Lines[i] = strings.TrimRight(line[:idx], " \t") + "\n"
		buf.changed = true
	}
}
