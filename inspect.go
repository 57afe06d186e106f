package ini

import "strings"

// doInspect implements the INSPECT action (spec §4.3): classify the line
// just read and hand it to the matching sub-handler. Classification order
// follows the source: an in-progress C comment block takes precedence
// over everything else, then line comments, then section headers, then
// leading whitespace (continuation/fold), then a plain key/value pair.
func doInspect(ps *parserState) {
	line := ps.lastLineRaw

	if ps.insideCComment {
		handleCCommentBody(ps, line)
		return
	}

	switch {
	case isCommentLine(line, ps.flags):
		handleComment(ps, line)
	case strings.HasPrefix(line, "["):
		handleSection(ps, line)
	case len(line) > 0 && isLeadingSpace(line[0]):
		handleSpace(ps, line)
	default:
		handleKVP(ps, line)
	}
}

func isLeadingSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v'
}

// isCommentLine reports whether line opens a comment under the active
// parse flags. ';' and '#' are always recognized; "//" and the "/*"
// block-opener are recognized unless NoCComments is set (spec §4.3.1,
// §6).
func isCommentLine(line string, flags ParseFlags) bool {
	if len(line) == 0 {
		return false
	}
	switch line[0] {
	case ';', '#':
		return true
	}
	if !flags.has(NoCComments) && strings.HasPrefix(line, "//") {
		return true
	}
	if !flags.has(NoCComments) && strings.HasPrefix(line, "/*") {
		return true
	}
	return false
}
