package ini_test

import (
	"errors"
	"strings"
	"testing"

	. "gopkg.in/check.v1"

	"github.com/ltick/tick-ini"
)

func Test(t *testing.T) { TestingT(t) }

type S struct{}

var _ = Suite(&S{})

func (s *S) TestS1DuplicateKeyErrorStops(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\nk=2\n"), "s1",
		ini.StopOnError,
		ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyError, MV2S: ini.PolicyError},
		0)
	c.Assert(errors.Is(err, ini.ErrStopped), Equals, true)

	var found bool
	for _, d := range cfg.Diagnostics {
		if d.Line == 3 && d.Code == ini.ErrDupKey {
			found = true
		}
	}
	c.Assert(found, Equals, true)

	sec, ok := cfg.Section("a")
	c.Assert(ok, Equals, true)
	v, ok := sec.Get("k")
	c.Assert(ok, Equals, true)
	c.Assert(v.Raw(), Equals, "1")
}

func (s *S) TestS2MergeAllowThenOverwrite(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\n[a]\nk=2\n"), "s2",
		ini.StopOnError,
		ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyAllow, MV2S: ini.PolicyOverwrite},
		0)
	c.Assert(err, IsNil)

	sec, ok := cfg.Section("a")
	c.Assert(ok, Equals, true)
	c.Assert(sec.Len(), Equals, 1)
	v, ok := sec.Get("k")
	c.Assert(ok, Equals, true)
	c.Assert(v.Raw(), Equals, "2")
}

func (s *S) TestS3Folding(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=one\n two\n"), "s3",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)

	sec, _ := cfg.Section("a")
	v, ok := sec.Get("k")
	c.Assert(ok, Equals, true)
	c.Assert(v.Lines(), DeepEquals, []string{"one", " two"})
}

func (s *S) TestS4CommentAttachesToNextKey(c *C) {
	cfg, err := ini.Parse(strings.NewReader("; top\n[a]\nk=1\n"), "s4",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)

	sec, _ := cfg.Section("a")
	v, ok := sec.Get("k")
	c.Assert(ok, Equals, true)
	c.Assert(v.Comment, NotNil)
	c.Assert(v.Comment.Lines, DeepEquals, []string{"; top"})
	c.Assert(sec.Header.Comment, IsNil)
}

func (s *S) TestS5UnterminatedCComment(c *C) {
	cfg, err := ini.Parse(strings.NewReader("/* unterminated\n"), "s5",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(errors.Is(err, ini.ErrStopped), Equals, true)
	c.Assert(cfg.Diagnostics, HasLen, 1)
	c.Assert(cfg.Diagnostics[0].Line, Equals, uint32(1))
	c.Assert(cfg.Diagnostics[0].Code, Equals, ini.ErrBadComment)
}

func (s *S) TestS6DefaultSection(c *C) {
	cfg, err := ini.Parse(strings.NewReader("k=1\n[a]\nk=2\n"), "s6",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)

	def, ok := cfg.Section(ini.DefaultSectionName)
	c.Assert(ok, Equals, true)
	v, _ := def.Get("k")
	c.Assert(v.Raw(), Equals, "1")

	a, ok := cfg.Section("a")
	c.Assert(ok, Equals, true)
	v2, _ := a.Get("k")
	c.Assert(v2.Raw(), Equals, "2")
}

func (s *S) TestPreservePolicyKeepsFirst(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\nk=2\n"), "preserve",
		ini.StopOnNone,
		ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyPreserve, MV2S: ini.PolicyError},
		0)
	c.Assert(err, IsNil)
	sec, _ := cfg.Section("a")
	c.Assert(sec.Len(), Equals, 1)
	v, _ := sec.Get("k")
	c.Assert(v.Raw(), Equals, "1")
}

func (s *S) TestOverwritePolicyKeepsLastWithItsLine(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\nk=2\n"), "overwrite",
		ini.StopOnNone,
		ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyOverwrite, MV2S: ini.PolicyError},
		0)
	c.Assert(err, IsNil)
	sec, _ := cfg.Section("a")
	c.Assert(sec.Len(), Equals, 1)
	v, _ := sec.Get("k")
	c.Assert(v.Raw(), Equals, "2")
	c.Assert(v.Line, Equals, uint32(3))
}

func (s *S) TestAllowPolicyKeepsBoth(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\nk=2\n"), "allow",
		ini.StopOnNone,
		ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyAllow, MV2S: ini.PolicyError},
		0)
	c.Assert(err, IsNil)
	sec, _ := cfg.Section("a")
	all := sec.GetAll("k")
	c.Assert(all, HasLen, 2)
	c.Assert(all[0].Raw(), Equals, "1")
	c.Assert(all[1].Raw(), Equals, "2")
}

func (s *S) TestDetectModeStable(c *C) {
	run := func() *ini.Config {
		cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\nk=2\n"), "detect",
			ini.StopOnNone,
			ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyDetect, MV2S: ini.PolicyDetect},
			0)
		c.Assert(errors.Is(err, ini.ErrDuplicateDetected), Equals, true)
		return cfg
	}
	c1 := run()
	c2 := run()
	c.Assert(c1.Diagnostics, DeepEquals, c2.Diagnostics)

	sec, _ := c1.Section("a")
	all := sec.GetAll("k")
	c.Assert(all, HasLen, 2)
	c.Assert(all[0].Raw(), Equals, "1")
	c.Assert(all[1].Raw(), Equals, "2")
}

func (s *S) TestDuplicateSectionErrorKeepsFirst(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\n[a]\nk=2\n"), "dupsec",
		ini.StopOnError,
		ini.CollisionFlags{MS: ini.MSError, MV1S: ini.PolicyError, MV2S: ini.PolicyError},
		0)
	c.Assert(errors.Is(err, ini.ErrStopped), Equals, true)

	sections := cfg.Sections()
	count := 0
	for _, sec := range sections {
		if sec.Name == "a" {
			count++
		}
	}
	c.Assert(count, Equals, 1)
	sec, _ := cfg.Section("a")
	v, _ := sec.Get("k")
	c.Assert(v.Raw(), Equals, "1")
}

func (s *S) TestKeyLengthBoundary(c *C) {
	okKey := strings.Repeat("k", ini.MaxKey-1)
	cfg, err := ini.Parse(strings.NewReader("[a]\n"+okKey+"=v\n"), "keyok",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)
	sec, _ := cfg.Section("a")
	_, ok := sec.Get(okKey)
	c.Assert(ok, Equals, true)

	longKey := strings.Repeat("k", ini.MaxKey)
	cfg2, err2 := ini.Parse(strings.NewReader("[a]\n"+longKey+"=v\n"), "keylong",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(errors.Is(err2, ini.ErrStopped), Equals, true)
	c.Assert(cfg2.Diagnostics[0].Code, Equals, ini.ErrLongKey)
}

func (s *S) TestLineLengthBoundary(c *C) {
	okLine := "k=" + strings.Repeat("v", ini.BufferSize-3)
	_, err := ini.Parse(strings.NewReader(okLine+"\n"), "lineok",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)

	longLine := "k=" + strings.Repeat("v", ini.BufferSize)
	cfg, err2 := ini.Parse(strings.NewReader(longLine+"\n"), "linelong",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(errors.Is(err2, ini.ErrStopped), Equals, true)
	c.Assert(cfg.Diagnostics[0].Code, Equals, ini.ErrLongData)
}

func (s *S) TestDiagnosticLineWithinRange(c *C) {
	cfg, _ := ini.Parse(strings.NewReader("[a]\nk=1\nk=2\nk=3\n"), "lines",
		ini.StopOnNone,
		ini.CollisionFlags{MS: ini.MSMerge, MV1S: ini.PolicyAllow, MV2S: ini.PolicyError},
		0)
	for _, d := range cfg.Diagnostics {
		c.Assert(d.Line >= 1, Equals, true)
		c.Assert(d.Line <= 4, Equals, true)
	}
}

func (s *S) TestValueNeverHasZeroFragments(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=\n"), "zerofrag",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)
	sec, _ := cfg.Section("a")
	v, _ := sec.Get("k")
	c.Assert(len(v.Fragments) > 0, Equals, true)
}

func (s *S) TestInvalidCollisionFlagsRejected(c *C) {
	_, err := ini.Parse(strings.NewReader("[a]\nk=1\n"), "badflags",
		ini.StopOnError, ini.CollisionFlags{MS: ini.MSPolicy(99)}, 0)
	c.Assert(errors.Is(err, ini.ErrInvalidFlags), Equals, true)
}

func (s *S) TestNoWrapTreatsIndentedLineAsFreshKVP(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=one\n k2=two\n"), "nowrap",
		ini.StopOnError, ini.DefaultCollisionFlags(), ini.NoWrap)
	c.Assert(err, IsNil)

	sec, _ := cfg.Section("a")
	v, ok := sec.Get("k")
	c.Assert(ok, Equals, true)
	c.Assert(v.Lines(), DeepEquals, []string{"one"})

	v2, ok := sec.Get("k2")
	c.Assert(ok, Equals, true)
	c.Assert(v2.Raw(), Equals, "two")
}

func (s *S) TestIndentedLineWithNoPendingKeyIsErrSpace(c *C) {
	// ErrSpace is warning-severity, so StopOnAny (not StopOnError) is
	// needed to observe the stop; the overall result is then ErrWarnings,
	// not ErrStopped, since finish() classifies by severity.
	cfg, err := ini.Parse(strings.NewReader(" stray\n[a]\nk=1\n"), "errspace",
		ini.StopOnAny, ini.DefaultCollisionFlags(), 0)
	c.Assert(errors.Is(err, ini.ErrWarnings), Equals, true)
	c.Assert(cfg.Diagnostics[0].Line, Equals, uint32(1))
	c.Assert(cfg.Diagnostics[0].Code, Equals, ini.ErrSpace)
	_, ok := cfg.Section("a")
	c.Assert(ok, Equals, false)
}

func (s *S) TestBlankIndentedLineIsIgnored(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=1\n   \nk2=2\n"), "blank",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)
	c.Assert(cfg.Diagnostics, HasLen, 0)
	sec, _ := cfg.Section("a")
	v, _ := sec.Get("k")
	c.Assert(v.Lines(), DeepEquals, []string{"1"})
}

func (s *S) TestNoSpaceRejectsLeadingSpace(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=one\n two\n"), "nospace",
		ini.StopOnAny, ini.DefaultCollisionFlags(), ini.NoWrap|ini.NoSpace)
	c.Assert(errors.Is(err, ini.ErrWarnings), Equals, true)
	c.Assert(cfg.Diagnostics[0].Code, Equals, ini.ErrSpace)
}

func (s *S) TestNoTabRejectsLeadingTab(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a]\nk=one\n\ttwo\n"), "notab",
		ini.StopOnAny, ini.DefaultCollisionFlags(), ini.NoWrap|ini.NoTab)
	c.Assert(errors.Is(err, ini.ErrWarnings), Equals, true)
	c.Assert(cfg.Diagnostics[0].Code, Equals, ini.ErrTab)
}

func (s *S) TestSectionHeaderTrimsInteriorWhitespace(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[ a ]\nk=1\n"), "trim",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(err, IsNil)
	_, ok := cfg.Section("a")
	c.Assert(ok, Equals, true)
	_, ok = cfg.Section(" a ")
	c.Assert(ok, Equals, false)
}

func (s *S) TestSectionHeaderRejectsTrailingGarbage(c *C) {
	cfg, err := ini.Parse(strings.NewReader("[a] garbage\nk=1\n"), "garbage",
		ini.StopOnError, ini.DefaultCollisionFlags(), 0)
	c.Assert(errors.Is(err, ini.ErrStopped), Equals, true)
	c.Assert(cfg.Diagnostics[0].Code, Equals, ini.ErrNoCloseSec)
}
