package ini

import "strings"

// handleComment absorbs a single-line comment (';', '#', "//") or opens a
// "/* ... */" block (spec §4.3.1). The raw line, terminator stripped, is
// kept verbatim in the pending comment block so later re-emission doesn't
// need to reconstruct the marker. A key still in flight is committed first,
// so the comment attaches to the next key rather than the previous one.
func handleComment(ps *parserState, line string) {
	if commitPendingValue(ps, false) {
		ps.aborted = true
		ps.enqueue(ActionPost)
		return
	}
	if strings.HasPrefix(line, "/*") {
		if idx := strings.Index(line[2:], "*/"); idx >= 0 {
			ps.appendComment(line)
		} else {
			ps.appendComment(line)
			ps.insideCComment = true
		}
		ps.enqueue(ActionRead)
		return
	}
	ps.appendComment(line)
	ps.enqueue(ActionRead)
}

// handleCCommentBody consumes lines while inside an open "/* ... */"
// block, closing it once "*/" is seen.
func handleCCommentBody(ps *parserState, line string) {
	ps.appendComment(line)
	if strings.Contains(line, "*/") {
		ps.insideCComment = false
	}
	ps.enqueue(ActionRead)
}

// handleSpace processes a line beginning with whitespace (spec §4.3.2,
// ini_parse.c:1090-1163). A genuinely blank (whitespace-only) line is
// empty padding and is always ignored. Otherwise, with NoWrap set, a
// non-blank indented line is not a continuation at all: NoSpace/NoTab
// reject the corresponding leading character, and an allowed line is
// dispatched as a fresh key/value pair; with folding enabled, the line
// (leading whitespace included) continues the pending value, or — with
// no value pending to fold into — raises ErrSpace.
func handleSpace(ps *parserState, line string) {
	b := line[0]

	if b == '\f' || b == '\v' {
		ps.pendingCode = ErrSpecial
		ps.enqueue(ActionError)
		return
	}

	trimmed := strings.TrimLeft(line, " \t")
	if trimmed == "" {
		ps.enqueue(ActionRead)
		return
	}

	if ps.flags.has(NoWrap) {
		if b == ' ' && ps.flags.has(NoSpace) {
			ps.pendingCode = ErrSpace
			ps.enqueue(ActionError)
			return
		}
		if b == '\t' && ps.flags.has(NoTab) {
			ps.pendingCode = ErrTab
			ps.enqueue(ActionError)
			return
		}
		handleKVP(ps, trimmed)
		return
	}

	if !ps.hasPendingKey() {
		ps.pendingCode = ErrSpace
		ps.enqueue(ActionError)
		return
	}

	ps.foldFragment(line)
	ps.enqueue(ActionRead)
}

// handleSection processes a "[name]" header: validates the bracket pair
// and name length, commits whatever value was pending in the previous
// section, closes that section through the collision engine, and opens
// the new one (spec §4.3.3).
//
// Per spec §8 scenario S4, a comment block accumulated just before a
// section header attaches to the section's *next key*, not to the
// header itself: unlike the source's complete_value_processing call for
// the synthetic INI_SECTION_KEY pseudo-entry, Header is set directly here
// without touching the pending comment buffer.
func handleSection(ps *parserState, line string) {
	end := len(line) - 1
	for end >= 0 && (line[end] == ' ' || line[end] == '\t') {
		end--
	}
	if end < 0 || line[end] != ']' {
		ps.pendingCode = ErrNoCloseSec
		ps.enqueue(ActionError)
		return
	}
	name := strings.TrimSpace(line[1:end])
	if name == "" {
		ps.pendingCode = ErrNoSection
		ps.enqueue(ActionError)
		return
	}
	if len(name) > MaxKey {
		ps.pendingCode = ErrSectionLong
		ps.enqueue(ActionError)
		return
	}

	stop := commitPendingValue(ps, false)
	if !stop {
		stop = closeCurrentSection(ps, false)
	}
	if stop {
		ps.aborted = true
		ps.enqueue(ActionPost)
		return
	}

	header := &Value{KeyName: SectionHeaderKey, Line: ps.lineNum}
	header.addFragment(name)

	sec := newSection(name)
	sec.Header = header
	ps.currentSection = sec

	ps.enqueue(ActionRead)
}

// handleKVP processes a "key = value" line: locates the first '=',
// validates both sides, and opens a new pending value (spec §4.3.4).
func handleKVP(ps *parserState, line string) {
	eq := strings.IndexByte(line, '=')
	if eq < 0 {
		ps.pendingCode = ErrNoEqual
		ps.enqueue(ActionError)
		return
	}
	key := strings.TrimRight(line[:eq], " \t")
	if key == "" {
		ps.pendingCode = ErrNoKey
		ps.enqueue(ActionError)
		return
	}
	if len(key) >= MaxKey {
		ps.pendingCode = ErrLongKey
		ps.enqueue(ActionError)
		return
	}

	if commitPendingValue(ps, false) {
		ps.aborted = true
		ps.enqueue(ActionPost)
		return
	}

	value := strings.TrimLeft(line[eq+1:], " \t")
	ps.beginValue(key, value, ps.lineNum)

	ps.enqueue(ActionRead)
}
