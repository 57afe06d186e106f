package ini

// doError implements the ERROR action (spec §4.6): record the pending
// diagnostic and decide, from the configured ErrorLevel and the code's
// severity, whether to resume reading or stop. ErrRead and ErrBadComment
// always stop regardless of level, since both mean the stream itself
// can no longer be trusted.
func doError(ps *parserState) {
	code := ps.pendingCode
	if applyDiagnostic(ps, code) {
		ps.aborted = true
		ps.enqueue(ActionPost)
		return
	}
	ps.enqueue(ActionRead)
}

// applyDiagnostic records code against the current line, updates the
// parser's running status, and reports whether the parser should stop
// now. DETECT-policy collisions never go through here: they record their
// own diagnostic and set deferredDuplicate directly, bypassing the error
// level entirely (spec §4.4, §8).
func applyDiagnostic(ps *parserState, code Code) bool {
	sev := code.severity()
	ps.config.addDiagnostic(Diagnostic{Line: ps.lineNum, Code: code, Severity: sev})

	if sev == SeverityWarning {
		if ps.status == statusOK {
			ps.status = statusWarnings
		}
	} else {
		ps.status = statusIO
	}

	if code == ErrRead || code == ErrBadComment {
		return true
	}

	switch ps.errorLevel {
	case StopOnAny:
		return true
	case StopOnError:
		return sev == SeverityError
	case StopOnNone:
		return false
	default:
		return false
	}
}
