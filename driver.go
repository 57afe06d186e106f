package ini

import (
	"bufio"
	"io"
)

// Parse runs the READ/INSPECT/POST/ERROR/DONE action loop over r until
// the stream is exhausted or the configured error policy stops it early
// (spec §4.1). filename is used only to decorate diagnostics produced by
// layers above this package; the parser itself never opens a file (spec
// §1, §5: file discovery and search paths are an external collaborator's
// job, not this package's).
//
// Parse returns a non-nil *Config, including on a stopped parse:
// whatever was fully assembled before the stop, plus a flush of any
// in-flight section, is still delivered (spec §8 scenario S1). The one
// exception is a collision that fails Validate, for which Parse returns a
// nil *Config and ErrInvalidFlags without reading any input. The
// returned error uses errors.Is against ErrStopped / ErrWarnings /
// ErrDuplicateDetected / ErrInvalidFlags to report the overall status,
// which is kept separate from config delivery rather than conflated with
// it as the source's single EIO/EILSEQ/EEXIST return code does.
func Parse(r io.Reader, filename string, level ErrorLevel, collision CollisionFlags, flags ParseFlags) (*Config, error) {
	if err := collision.Validate(); err != nil {
		return nil, err
	}

	ps := newParserState(filename, level, collision, flags)
	br := bufio.NewReaderSize(r, BufferSize+64)

	for {
		action, ok := ps.dequeue()
		if !ok {
			action = ActionDone
		}

		switch action {
		case ActionRead:
			doRead(ps, br)
		case ActionInspect:
			doInspect(ps)
		case ActionPost:
			doPost(ps)
		case ActionError:
			doError(ps)
		case ActionDone:
			return finish(ps)
		}
	}
}

func finish(ps *parserState) (*Config, error) {
	switch ps.status {
	case statusIO:
		return ps.config, ErrStopped
	case statusWarnings:
		return ps.config, ErrWarnings
	}
	if ps.deferredDuplicate {
		return ps.config, ErrDuplicateDetected
	}
	return ps.config, nil
}
