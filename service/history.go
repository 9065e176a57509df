package service

import (
	"color_api/model/color/vo"
	"fmt"
	"sync"
	"time"
)

type historyItem struct {
	id        string
	hex       string
	format    string
	timestamp time.Time
}

// History 最近转换过的颜色，只存在内存里，最新的在最前面。
// gin 的 handler 会并发调用，所以要加锁
type History struct {
	mu    sync.Mutex
	items []historyItem
	size  int
	now   func() time.Time
}

func NewHistory(size int) *History {
	if size <= 0 {
		size = 10
	}
	return &History{size: size, now: time.Now}
}

// Add 和最近一条相同的颜色不重复记录，返回是否真正写入
func (h *History) Add(hex, format string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	if len(h.items) > 0 && h.items[0].hex == hex {
		return false
	}
	ts := h.now()
	item := historyItem{
		id:        fmt.Sprintf("%s-%d", hex, ts.UnixMilli()),
		hex:       hex,
		format:    format,
		timestamp: ts,
	}
	h.items = append([]historyItem{item}, h.items...)
	if len(h.items) > h.size {
		h.items = h.items[:h.size]
	}
	return true
}

func (h *History) List() []vo.HistoryItemResp {
	h.mu.Lock()
	defer h.mu.Unlock()

	now := h.now()
	out := make([]vo.HistoryItemResp, len(h.items))
	for i, item := range h.items {
		out[i] = vo.HistoryItemResp{
			ID:        item.id,
			Hex:       item.hex,
			Format:    item.format,
			Timestamp: item.timestamp,
			TimeAgo:   FormatTimeAgo(now, item.timestamp),
		}
	}
	return out
}

// Resize 修改最多保存的条数，多出来的旧记录直接丢掉
func (h *History) Resize(size int) {
	if size <= 0 {
		size = 10
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	h.size = size
	if len(h.items) > size {
		h.items = h.items[:size]
	}
}

func (h *History) Clear() {
	h.mu.Lock()
	h.items = nil
	h.mu.Unlock()
}

func (h *History) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.items)
}

// FormatTimeAgo "Just now" / "5m ago" / "2h ago" / "3d ago"
func FormatTimeAgo(now, t time.Time) string {
	diff := int(now.Sub(t).Seconds())
	switch {
	case diff < 60:
		return "Just now"
	case diff < 3600:
		return fmt.Sprintf("%dm ago", diff/60)
	case diff < 86400:
		return fmt.Sprintf("%dh ago", diff/3600)
	default:
		return fmt.Sprintf("%dd ago", diff/86400)
	}
}
