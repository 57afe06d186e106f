package ini

// commitPendingValue finalizes whatever key/value is in flight (if any)
// into the current section, creating the default section on first use.
// It returns true if the insertion itself should stop the parser (an
// ERROR-policy duplicate key under an error level that halts).
func commitPendingValue(ps *parserState, suppress bool) bool {
	if !ps.hasPendingKey() {
		return false
	}

	v := &Value{
		KeyName:      ps.pendingKey,
		Fragments:    ps.pendingFragments,
		Comment:      ps.takeComment(),
		Line:         ps.pendingKeyLine,
		WrapBoundary: ps.pendingBoundary,
	}
	ps.clearPendingValue()

	if ps.currentSection == nil {
		ps.currentSection = newSection(DefaultSectionName)
	}

	return insertKey(ps, ps.currentSection, v, ps.collision.MV1S, ErrDupKey, suppress)
}

// insertKey applies one of the five key-collision policies (spec §4.4)
// when v's key already exists in section. dupCode distinguishes a
// same-section collision (ErrDupKey) from one discovered while merging
// two sections (ErrDupKeySec), since spec §4.4 notes the dispatch logic
// itself ("MV2S/MV1S == 1") is otherwise identical.
func insertKey(ps *parserState, section *Section, v *Value, policy ValuePolicy, dupCode Code, suppress bool) bool {
	if _, exists := section.Get(v.KeyName); !exists {
		section.appendValue(v)
		return false
	}

	switch policy {
	case PolicyPreserve, PolicyError:
		if policy == PolicyError && !suppress {
			return applyDiagnostic(ps, dupCode)
		}
		return false
	case PolicyAllow:
		section.appendValue(v)
		return false
	case PolicyOverwrite:
		section.replaceFirst(v.KeyName, v)
		return false
	case PolicyDetect:
		// Record the duplicate but, per spec §4.4, lose no data: the
		// source's COL_INSERT_NOCHECK path appends rather than replaces.
		section.appendValue(v)
		ps.deferredDuplicate = true
		ps.config.addDiagnostic(Diagnostic{Line: v.Line, Code: dupCode, Severity: SeverityWarning})
		return false
	default:
		return false
	}
}

// closeCurrentSection finalizes the in-flight section into the config,
// dispatching on the section-level collision policy when a section of
// the same name already exists (spec §4.4). It returns true if the
// collision itself should stop the parser.
func closeCurrentSection(ps *parserState, suppress bool) bool {
	sec := ps.currentSection
	if sec == nil {
		return false
	}
	ps.currentSection = nil

	existing, exists := ps.config.Section(sec.Name)
	if !exists {
		ps.config.addSection(sec)
		return false
	}

	switch ps.collision.MS {
	case MSPreserve:
		return false
	case MSOverwrite:
		existing.clearEntries()
		for _, v := range sec.entries {
			existing.appendValue(v)
		}
		return false
	case MSDetect:
		ps.deferredDuplicate = true
		line := sec.Header.Line
		ps.config.addDiagnostic(Diagnostic{Line: line, Code: ErrDupSection, Severity: SeverityWarning})
		return mergeSectionInto(ps, existing, sec, suppress)
	case MSMerge:
		return mergeSectionInto(ps, existing, sec, suppress)
	case MSError:
		if suppress {
			return false
		}
		return applyDiagnostic(ps, ErrDupSection)
	default:
		return false
	}
}

// mergeSectionInto folds incoming's entries into existing one key at a
// time, using the MV2S policy for any collision (the source's
// merge_section).
func mergeSectionInto(ps *parserState, existing, incoming *Section, suppress bool) bool {
	for _, v := range incoming.entries {
		if insertKey(ps, existing, v, ps.collision.MV2S, ErrDupKeySec, suppress) {
			return true
		}
	}
	return false
}
