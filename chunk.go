package main

import (
	"errors"
	"fmt"
)

var ErrChunkLimit = errors.New("chunk limit reached")

type chunkHandle int

const noChunk chunkHandle = -1

type chunk struct {
	index  int
	width  int
	height int
	pixels Surface
	next   chunkHandle
	prev   chunkHandle
}

type surfaceAllocator func(width, height int) (Surface, error)

// chain owns every chunk of a canvas. Chunks live in an arena and link to
// their neighbours by handle; none is removed before destroy.
type chain struct {
	chunks  []chunk
	root    chunkHandle
	byIndex map[int]chunkHandle
	alloc   surfaceAllocator
	limit   int
}

func newChain(width, height, limit int, alloc surfaceAllocator) (*chain, error) {
	ch := &chain{
		root:    noChunk,
		byIndex: make(map[int]chunkHandle),
		alloc:   alloc,
		limit:   limit,
	}
	root, err := ch.newChunk(width, height, 0)
	if err != nil {
		return nil, err
	}
	ch.root = root
	return ch, nil
}

func (ch *chain) newChunk(width, height, index int) (chunkHandle, error) {
	if ch.limit > 0 && len(ch.chunks) >= ch.limit {
		return noChunk, fmt.Errorf("%w: %d chunks", ErrChunkLimit, ch.limit)
	}
	s, err := ch.alloc(width, height)
	if err != nil {
		return noChunk, fmt.Errorf("allocating chunk %d: %w", index, err)
	}
	h := chunkHandle(len(ch.chunks))
	ch.chunks = append(ch.chunks, chunk{
		index:  index,
		width:  width,
		height: height,
		pixels: s,
		next:   noChunk,
		prev:   noChunk,
	})
	ch.byIndex[index] = h
	return h, nil
}

func (ch *chain) get(h chunkHandle) *chunk {
	return &ch.chunks[h]
}

func (ch *chain) first() chunkHandle {
	h := ch.root
	for ch.chunks[h].prev != noChunk {
		h = ch.chunks[h].prev
	}
	return h
}

func (ch *chain) last() chunkHandle {
	h := ch.root
	for ch.chunks[h].next != noChunk {
		h = ch.chunks[h].next
	}
	return h
}

// prepend links a new chunk before the first one.
func (ch *chain) prepend(width, height int) (chunkHandle, error) {
	f := ch.first()
	h, err := ch.newChunk(width, height, ch.chunks[f].index-1)
	if err != nil {
		return noChunk, err
	}
	ch.chunks[h].next = f
	ch.chunks[f].prev = h
	return h, nil
}

// append links a new chunk after the last one.
func (ch *chain) append(width, height int) (chunkHandle, error) {
	l := ch.last()
	h, err := ch.newChunk(width, height, ch.chunks[l].index+1)
	if err != nil {
		return noChunk, err
	}
	ch.chunks[h].prev = l
	ch.chunks[l].next = h
	return h, nil
}

func (ch *chain) lookup(index int) (*chunk, bool) {
	h, ok := ch.byIndex[index]
	if !ok {
		return nil, false
	}
	return &ch.chunks[h], true
}

func (ch *chain) len() int { return len(ch.chunks) }

// each visits the chunks from first to last.
func (ch *chain) each(fn func(c *chunk)) {
	if len(ch.chunks) == 0 {
		return
	}
	for h := ch.first(); h != noChunk; h = ch.chunks[h].next {
		fn(&ch.chunks[h])
	}
}

func (ch *chain) indices() []int {
	var out []int
	ch.each(func(c *chunk) { out = append(out, c.index) })
	return out
}

func (ch *chain) destroy() {
	for i := range ch.chunks {
		ch.chunks[i].pixels.Release()
	}
	ch.chunks = nil
	ch.byIndex = nil
	ch.root = noChunk
}

// assertChain panics when neighbouring chunks do not carry consecutive
// indices or their links disagree.
func (ch *chain) assertChain() {
	seen := 0
	for h := ch.first(); h != noChunk; h = ch.chunks[h].next {
		c := &ch.chunks[h]
		if c.next != noChunk {
			n := &ch.chunks[c.next]
			if n.index != c.index+1 || n.prev != h {
				panic(fmt.Sprintf("chunk chain broken after index %d (next %d)", c.index, n.index))
			}
		}
		seen++
	}
	if seen != len(ch.chunks) {
		panic(fmt.Sprintf("chunk chain reaches %d of %d chunks", seen, len(ch.chunks)))
	}
}
