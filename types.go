package ini

// SectionHeaderKey is the well-known name the original C implementation used
// for the synthetic first entry of a section (INI_SECTION_KEY), the anchor
// that let a header-attached comment survive re-emission. This port keeps
// the constant for anyone cross-referencing the source it was grounded on,
// but stores the header as a dedicated Section.Header field instead of a
// literal entry — see DESIGN.md.
const SectionHeaderKey = "INI_SECTION_KEY"

// DefaultSectionName is the section that orphan key/value pairs — ones
// appearing before any "[section]" header — are collected into.
const DefaultSectionName = "default"

// Fragment is one physical line's contribution to a value. The first
// fragment of a Value is the right-hand side of '='; any further fragments
// are folded continuation lines, stored verbatim.
type Fragment struct {
	Raw string
	Len int
}

// CommentBlock is an ordered run of raw comment lines accumulated between
// semantic tokens. It is owned by whichever Value or Config adopted it.
type CommentBlock struct {
	Lines []string
}

func (c *CommentBlock) append(line string) {
	c.Lines = append(c.Lines, line)
}

// mergeComment appends from's lines after into's, returning into (creating
// it if nil). Used when two comment runs are adjacent with nothing between
// them, e.g. a trailing comment block that spans a read error recovery.
func mergeComment(into, from *CommentBlock) *CommentBlock {
	if from == nil || len(from.Lines) == 0 {
		return into
	}
	if into == nil {
		return from
	}
	into.Lines = append(into.Lines, from.Lines...)
	return into
}

// Value holds a key's one-or-more raw line fragments, its attached comment
// block, and the line on which the key itself was found. WrapBoundary
// records the column the caller prefers wrapping at on re-emission; it is
// zero when the value was never folded.
type Value struct {
	KeyName      string
	Fragments    []Fragment
	Comment      *CommentBlock
	Line         uint32
	WrapBoundary int
}

// Raw returns the first fragment, i.e. the unfolded right-hand side.
func (v *Value) Raw() string {
	if len(v.Fragments) == 0 {
		return ""
	}
	return v.Fragments[0].Raw
}

// Lines returns every fragment's raw text in order, one per physical line
// the value spanned.
func (v *Value) Lines() []string {
	out := make([]string, len(v.Fragments))
	for i, f := range v.Fragments {
		out[i] = f.Raw
	}
	return out
}

func (v *Value) addFragment(raw string) {
	v.Fragments = append(v.Fragments, Fragment{Raw: raw, Len: len(raw)})
}

// Section is an ordered mapping from key to value, tagged with a section
// name. Header carries the section's own "[name]" line so a comment
// immediately preceding it can be re-emitted; it is the typed replacement
// for the synthetic INI_SECTION_KEY entry described in spec §9's design
// notes.
type Section struct {
	Name   string
	Header *Value

	entries []*Value
	index   map[string][]int
}

func newSection(name string) *Section {
	return &Section{
		Name:  name,
		index: make(map[string][]int),
	}
}

// Keys returns the section's keys in first-occurrence-then-insertion order,
// one entry per occurrence when a key repeats (ALLOW policy).
func (s *Section) Keys() []string {
	out := make([]string, len(s.entries))
	for i, v := range s.entries {
		out[i] = v.KeyName
	}
	return out
}

// Entries returns every value in insertion order.
func (s *Section) Entries() []*Value {
	return s.entries
}

// Len returns the number of ordinary (non-header) entries.
func (s *Section) Len() int {
	return len(s.entries)
}

// Get returns the first value stored under key.
func (s *Section) Get(key string) (*Value, bool) {
	idxs, ok := s.index[key]
	if !ok || len(idxs) == 0 {
		return nil, false
	}
	return s.entries[idxs[0]], true
}

// GetAll returns every value stored under key, in textual order. It holds
// more than one value only when duplicates were kept (ALLOW or DETECT
// policy).
func (s *Section) GetAll(key string) []*Value {
	idxs := s.index[key]
	if len(idxs) == 0 {
		return nil
	}
	out := make([]*Value, len(idxs))
	for i, idx := range idxs {
		out[i] = s.entries[idx]
	}
	return out
}

func (s *Section) appendValue(v *Value) {
	idx := len(s.entries)
	s.entries = append(s.entries, v)
	s.index[v.KeyName] = append(s.index[v.KeyName], idx)
}

// replaceFirst overwrites the first value stored under key in place,
// preserving its position, and returns true if a dup was found.
func (s *Section) replaceFirst(key string, v *Value) bool {
	idxs, ok := s.index[key]
	if !ok || len(idxs) == 0 {
		return false
	}
	s.entries[idxs[0]] = v
	return true
}

// clearEntries wipes every ordinary entry but keeps Header untouched — the
// shape OVERWRITE-mode section collision needs (spec §4.4, §9 open
// question: "keep the old header").
func (s *Section) clearEntries() {
	s.entries = nil
	s.index = make(map[string][]int)
}

// Config is the ordered section-name → section mapping the parser builds.
// It also carries the trailing ("orphan") comment block and the
// accumulated diagnostic list.
type Config struct {
	names    []string
	sections map[string]*Section

	TrailingComment *CommentBlock
	Diagnostics     []Diagnostic
}

func newConfig() *Config {
	return &Config{sections: make(map[string]*Section)}
}

// Section looks up a section by name.
func (c *Config) Section(name string) (*Section, bool) {
	s, ok := c.sections[name]
	return s, ok
}

// Sections returns every section in the order it was first embedded.
func (c *Config) Sections() []*Section {
	out := make([]*Section, len(c.names))
	for i, n := range c.names {
		out[i] = c.sections[n]
	}
	return out
}

func (c *Config) addSection(s *Section) {
	if _, exists := c.sections[s.Name]; !exists {
		c.names = append(c.names, s.Name)
	}
	c.sections[s.Name] = s
}

func (c *Config) addDiagnostic(d Diagnostic) {
	c.Diagnostics = append(c.Diagnostics, d)
}
