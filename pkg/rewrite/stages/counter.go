package stages

// counter is a per-document registry assigning 1-based indices to keys in
// first-seen order. A key seen again keeps its first index.
type counter struct {
	byKey map[string]int
	texts []string // texts[i] is the display text stored for index i+1
}

func newCounter() *counter {
	return &counter{byKey: make(map[string]int)}
}

// Len returns the number of assigned indices.
func (c *counter) Len() int {
	return len(c.texts)
}

// assign returns the index and stored text for key. An unseen key gets the
// next index and the text produced by render for it.
func (c *counter) assign(key string, render func(index int) string) (int, string) {
	if index, ok := c.byKey[key]; ok {
		return index, c.texts[index-1]
	}

	index := len(c.texts) + 1
	c.byKey[key] = index
	c.texts = append(c.texts, render(index))
	return index, c.texts[index-1]
}

// has reports whether key has been recorded.
func (c *counter) has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// record stores text as its own key under the next index and returns it.
func (c *counter) record(text string) int {
	index := len(c.texts) + 1
	c.byKey[text] = index
	c.texts = append(c.texts, text)
	return index
}

// latest returns the stored text of the highest assigned index.
func (c *counter) latest() (string, bool) {
	if len(c.texts) == 0 {
		return "", false
	}
	return c.texts[len(c.texts)-1], true
}
