package analyze

import (
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/harmoniccanvas/voicecheck/model"
	"github.com/harmoniccanvas/voicecheck/util"
	"github.com/harmoniccanvas/voicecheck/voice"
)

// Cache memoizes results by a content hash of the voice lines and the
// effective config. Purely an optimization for callers that re-analyze
// the same score repeatedly (e.g. the HTTP layer); the engine itself
// stays stateless.
type Cache struct {
	mu      sync.Mutex
	entries map[uint64]model.AnalysisResult
}

func NewCache() *Cache {
	return &Cache{entries: make(map[uint64]model.AnalysisResult)}
}

func (c *Cache) Analyze(lines model.VoiceLines, cfg model.AnalyzerConfig) model.AnalysisResult {
	key := contentHash(lines, cfg)

	c.mu.Lock()
	res, ok := c.entries[key]
	c.mu.Unlock()
	if ok {
		return res
	}

	res = RunMerged(lines, cfg)

	c.mu.Lock()
	c.entries[key] = res
	c.mu.Unlock()
	return res
}

// contentHash walks the input in canonical part order so the key does
// not depend on map iteration order.
func contentHash(lines model.VoiceLines, cfg model.AnalyzerConfig) uint64 {
	h := fnv.New64a()

	parts := util.GetKeys(lines)
	voice.SortParts(parts)
	for _, part := range parts {
		line := lines[part]
		fmt.Fprintf(h, "%v|%v|", part, line.Enabled)
		for _, n := range line.Notes {
			fmt.Fprintf(h, "%v:%v:%v:%v:%v;", n.ID, n.Pitch, n.StartBeat, n.Duration, n.IsRest)
		}
	}
	fmt.Fprintf(h, "%+v", cfg)
	return h.Sum64()
}
