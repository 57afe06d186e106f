package ini

// Implementation-defined limits (spec §6: "Keys and section names up to
// MAX_KEY-1 bytes. Lines up to BUFFER_SIZE-1 bytes."). The original C
// header that defines these constants was not part of the retrieved
// source; these values are chosen generously for a modern config file and
// are exercised directly by the boundary tests (spec §8, invariants 11-12).
const (
	MaxKey     = 512
	BufferSize = 4096
)

// Action is one of the five operations the driver dispatches (spec §3, §4.1).
type Action int

const (
	ActionRead Action = iota
	ActionInspect
	ActionPost
	ActionError
	ActionDone
)

// parserState aggregates everything the driver needs between actions: the
// raw line buffer, parse/collision flags, line counters, the in-flight key
// and section, and merge bookkeeping. Spec §9's design note observes the
// action queue holds at most one pending action in normal use and models
// it as an explicit "next" field; the queue form is kept only because the
// ERROR handler's abort path needs to enqueue a recovery action distinct
// from what INSPECT/POST would otherwise pick.
type parserState struct {
	filename string

	errorLevel ErrorLevel
	collision  CollisionFlags
	flags      ParseFlags

	lineNum uint32

	insideCComment bool
	lastLineRaw    string

	pendingKey       string
	pendingFragments []Fragment
	pendingKeyLine   uint32
	pendingBoundary  int

	pendingComment *CommentBlock

	currentSection *Section

	config *Config

	// deferredDuplicate records that a DETECT-mode collision fired; it
	// surfaces as ErrDuplicateDetected only if nothing worse happened
	// (spec §4.1, §8 S-scenarios).
	deferredDuplicate bool

	// status is the running final classification the ERROR handler
	// updates per spec §4.6's table; zero value means "ok so far".
	status finalStatus

	queue []Action

	// eof is set once the underlying reader has nothing left to give;
	// a final partial line (no trailing newline) is still processed
	// before eof causes POST to be enqueued.
	eof bool

	// aborted is set when a stop condition was met and ActionPost is
	// enqueued early: by doError, or by handleComment, handleSection or
	// handleKVP when committing a value or closing a section hits a
	// collision that stops the parser. It distinguishes that path
	// from POST reached by an ordinary clean end of stream, since only
	// the abort path suppresses a further duplicate-section/key
	// diagnostic during the final flush (spec §4.6).
	aborted bool

	// pendingCode carries the diagnostic ActionError should record; set by
	// whichever handler enqueued ActionError.
	pendingCode Code
}

type finalStatus int

const (
	statusOK finalStatus = iota
	statusWarnings
	statusIO
)

func newParserState(filename string, level ErrorLevel, collision CollisionFlags, flags ParseFlags) *parserState {
	return &parserState{
		filename:  filename,
		errorLevel: level,
		collision: collision,
		flags:     flags,
		config:    newConfig(),
		queue:     []Action{ActionRead},
	}
}

func (ps *parserState) enqueue(a Action) {
	ps.queue = append(ps.queue, a)
}

func (ps *parserState) dequeue() (Action, bool) {
	if len(ps.queue) == 0 {
		return ActionDone, false
	}
	a := ps.queue[0]
	ps.queue = ps.queue[1:]
	return a, true
}

func (ps *parserState) hasPendingKey() bool {
	return ps.pendingKey != ""
}

func (ps *parserState) beginValue(key string, firstFragment string, line uint32) {
	ps.pendingKey = key
	ps.pendingFragments = []Fragment{{Raw: firstFragment, Len: len(firstFragment)}}
	ps.pendingKeyLine = line
	ps.pendingBoundary = 0
}

func (ps *parserState) foldFragment(raw string) {
	ps.pendingFragments = append(ps.pendingFragments, Fragment{Raw: raw, Len: len(raw)})
	if len(raw) > ps.pendingBoundary {
		ps.pendingBoundary = len(raw)
	}
}

func (ps *parserState) clearPendingValue() {
	ps.pendingKey = ""
	ps.pendingFragments = nil
	ps.pendingKeyLine = 0
	ps.pendingBoundary = 0
}

func (ps *parserState) appendComment(line string) {
	if ps.pendingComment == nil {
		ps.pendingComment = &CommentBlock{}
	}
	ps.pendingComment.append(line)
}

func (ps *parserState) takeComment() *CommentBlock {
	c := ps.pendingComment
	ps.pendingComment = nil
	return c
}
