package portfolio

import (
	"errors"
	"sync"
)

// ErrNoRecord 表示尚未有任何成功提交。
var ErrNoRecord = errors.New("no portfolio data found")

// Store 持有进程内唯一的当前记录。
// 锁只保护槽位本身的读写；两次提交在 merge 层面的竞争按
// 后写覆盖处理，不做冲突检测（单编辑者假设）。
type Store struct {
	mu      sync.RWMutex
	current *Record
}

// NewStore 返回空的单槽存储。
func NewStore() *Store {
	return &Store{}
}

// Current 返回当前记录，尚无记录时返回 nil。
func (s *Store) Current() *Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// HasRecord 报告是否已有有效记录（以 Name 已设置为准）。
func (s *Store) HasRecord() bool {
	rec := s.Current()
	return rec != nil && rec.Name != ""
}

// Apply 将提交与当前记录合并，并整体替换槽位，返回新记录。
func (s *Store) Apply(sub Submission) *Record {
	prev := s.Current()
	rec := Merge(prev, sub)

	s.mu.Lock()
	s.current = rec
	s.mu.Unlock()

	return rec
}
