package service

import (
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/Geetha-SV/ContractAI/config"
	"github.com/Geetha-SV/ContractAI/model"
)

// AnalysisStore keeps completed analyses in memory so the interactive views
// (list, detail, report download) work across requests. It is bounded and
// evicts oldest first; nothing here outlives the process.
type AnalysisStore struct {
	analyses    map[string]*model.Analysis
	mu          sync.RWMutex
	maxAnalyses int // 0 = unlimited
}

var (
	globalStore *AnalysisStore
	storeOnce   sync.Once
)

// InitAnalysisStore initializes the global analysis store with configuration
func InitAnalysisStore(cfg *config.StoreConfig) {
	storeOnce.Do(func() {
		maxAnalyses := cfg.MaxAnalyses
		if maxAnalyses < 0 {
			maxAnalyses = 0
		}
		globalStore = &AnalysisStore{
			analyses:    make(map[string]*model.Analysis),
			maxAnalyses: maxAnalyses,
		}
		slog.Info("analysis store initialized", "max_analyses", maxAnalyses)
	})
}

// GetAnalysisStore returns the global analysis store
func GetAnalysisStore() *AnalysisStore {
	if globalStore == nil {
		// Fallback initialization with default settings
		globalStore = &AnalysisStore{
			analyses:    make(map[string]*model.Analysis),
			maxAnalyses: 100,
		}
	}
	return globalStore
}

func (s *AnalysisStore) Save(a *model.Analysis) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analyses[a.ID] = a
	s.cleanupIfNeeded()
}

func (s *AnalysisStore) Get(id string) *model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analyses[id]
}

func (s *AnalysisStore) GetByTenant(tenant string) []*model.Analysis {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result []*model.Analysis
	for _, a := range s.analyses {
		if a.Tenant == tenant {
			result = append(result, a)
		}
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result
}

func (s *AnalysisStore) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.analyses, id)
}

// cleanupIfNeeded removes oldest analyses if the store exceeds maxAnalyses.
// Must be called with lock held.
func (s *AnalysisStore) cleanupIfNeeded() {
	if s.maxAnalyses <= 0 {
		return // Unlimited
	}
	if len(s.analyses) <= s.maxAnalyses {
		return
	}

	all := make([]*model.Analysis, 0, len(s.analyses))
	for _, a := range s.analyses {
		all = append(all, a)
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].CreatedAt.Before(all[j].CreatedAt)
	})

	removeCount := len(all) - s.maxAnalyses
	for i := 0; i < removeCount; i++ {
		slog.Info("auto-cleaning old analysis",
			"analysis_id", all[i].ID,
			"created_at", all[i].CreatedAt.Format(time.RFC3339),
		)
		delete(s.analyses, all[i].ID)
	}
}

// Count returns the number of analyses in the store
func (s *AnalysisStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.analyses)
}
