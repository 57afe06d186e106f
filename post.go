package ini

// doPost implements the POST action (spec §4.5): flush whatever key/value
// and section are still in flight, attach any trailing orphan comment to
// the config, and finish. POST is reached both at a clean end of stream
// and, via the abort path (ps.aborted), when a stop condition cut the
// stream short early — in the latter case only, the flush suppresses a
// further duplicate-section/key diagnostic exactly when the source does:
// MS is ERROR, or MS is MERGE and MV2S is ERROR (spec §4.6). A clean EOF
// never suppresses: ps.status alone cannot distinguish "ERROR already
// fired but parsing continued under StopOnNone" from "ERROR just decided
// to stop", which is why this is a dedicated flag rather than a status
// check.
func doPost(ps *parserState) {
	suppress := ps.aborted &&
		(ps.collision.MS == MSError || (ps.collision.MS == MSMerge && ps.collision.MV2S == PolicyError))

	commitPendingValue(ps, suppress)
	closeCurrentSection(ps, suppress)

	if tc := ps.takeComment(); tc != nil {
		ps.config.TrailingComment = mergeComment(ps.config.TrailingComment, tc)
	}

	ps.enqueue(ActionDone)
}
