// SPDX-License-Identifier: Apache-2.0

package corpus

// LineCollection maps a character to the lines it speaks. Characters keep
// the order in which they were first added; that order drives tie-breaking
// in classification.
type LineCollection struct {
	order []string
	lines map[string][]string
}

// NewLineCollection returns an empty collection.
func NewLineCollection() *LineCollection {
	return &LineCollection{lines: make(map[string][]string)}
}

// Add appends line to character's list, registering the character on first use.
func (c *LineCollection) Add(character, line string) {
	if _, ok := c.lines[character]; !ok {
		c.order = append(c.order, character)
	}
	c.lines[character] = append(c.lines[character], line)
}

// Set replaces character's lines. The character is registered even when
// lines is empty.
func (c *LineCollection) Set(character string, lines []string) {
	if _, ok := c.lines[character]; !ok {
		c.order = append(c.order, character)
	}
	if lines == nil {
		lines = []string{}
	}
	c.lines[character] = lines
}

// Lines returns character's lines, or nil for an unknown character.
// The returned slice must not be modified.
func (c *LineCollection) Lines(character string) []string {
	return c.lines[character]
}

// Has reports whether character is registered, even with no lines.
func (c *LineCollection) Has(character string) bool {
	_, ok := c.lines[character]
	return ok
}

// Characters returns the character keys in first-seen order.
func (c *LineCollection) Characters() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of characters.
func (c *LineCollection) Len() int {
	return len(c.order)
}

// TotalLines returns the number of lines across all characters.
func (c *LineCollection) TotalLines() int {
	n := 0
	for _, ch := range c.order {
		n += len(c.lines[ch])
	}
	return n
}

// Clone returns a deep copy that shares no slices with c.
func (c *LineCollection) Clone() *LineCollection {
	out := NewLineCollection()
	for _, ch := range c.order {
		out.Set(ch, append([]string{}, c.lines[ch]...))
	}
	return out
}
