package pivot

import (
	"context"
	"log/slog"
	"sync"

	v1 "github.com/aevon-lab/project-tally/internal/api/v1"
	"golang.org/x/sync/errgroup"
)

// LoadActorProfiles resolves the distinct non-empty ids in chunks no larger
// than the store's lookup limit, running at most LookupConcurrency chunks at
// once. A failed chunk is logged and its actors are left unresolved.
func (e *Engine) LoadActorProfiles(ctx context.Context, actorIDs []string) map[string]v1.ActorProfile {
	ids := distinctIDs(actorIDs)
	profiles := make(map[string]v1.ActorProfile, len(ids))
	if len(ids) == 0 {
		return profiles
	}

	size := e.cfg.LookupChunkSize
	if limit := e.profiles.MaxLookupKeys(); limit > 0 && size > limit {
		size = limit
	}

	var (
		mu sync.Mutex
		g  errgroup.Group
	)
	g.SetLimit(e.cfg.LookupConcurrency)

	for start := 0; start < len(ids); start += size {
		chunk := ids[start:min(start+size, len(ids))]
		g.Go(func() error {
			found, err := e.profiles.GetByIDs(ctx, chunk)
			if err != nil {
				slog.Warn("[Pivot] Profile lookup failed, actors stay unresolved",
					"actors", len(chunk),
					"error", err)
				return nil
			}

			mu.Lock()
			for id, profile := range found {
				profiles[id] = profile
			}
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return profiles
}

func distinctIDs(actorIDs []string) []string {
	seen := make(map[string]struct{}, len(actorIDs))
	ids := make([]string, 0, len(actorIDs))
	for _, id := range actorIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
