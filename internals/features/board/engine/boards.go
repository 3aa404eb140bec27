package engine

import "sync"

// Boards keeps one Board per signed-in admin.
type Boards struct {
	mu     sync.Mutex
	boards map[string]*Board
	build  func(owner string) *Board
}

func NewBoards(build func(owner string) *Board) *Boards {
	return &Boards{boards: map[string]*Board{}, build: build}
}

func (r *Boards) Get(owner string) *Board {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.boards[owner]; ok {
		return b
	}
	b := r.build(owner)
	r.boards[owner] = b
	return b
}

// Drop forgets owner's board, e.g. on logout.
func (r *Boards) Drop(owner string) {
	r.mu.Lock()
	delete(r.boards, owner)
	r.mu.Unlock()
}
