package trace

// Buffer is the FIFO of entries recorded since the last flush.
// It is not safe for concurrent use.
type Buffer struct {
	entries []Entry
}

// NewBuffer creates an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{entries: make([]Entry, 0)}
}

// Append adds an entry to the back of the buffer.
func (b *Buffer) Append(e Entry) {
	b.entries = append(b.entries, e)
}

// Len returns the number of buffered entries.
func (b *Buffer) Len() int {
	return len(b.entries)
}

// DrainAll removes and returns every buffered entry in arrival order.
// Draining an empty buffer returns an empty slice.
func (b *Buffer) DrainAll() []Entry {
	drained := b.entries
	b.entries = make([]Entry, 0)
	return drained
}
