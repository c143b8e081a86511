package stats

import "github.com/moba-league/league-system/models"

// Resolver maps raw in-game display names to canonical roster names so that a
// player's history under any number of past IGNs converges into one stat line.
type Resolver interface {
	Resolve(rawName string) string
}

type rosterResolver struct {
	byAlias map[string]string
}

// NewResolver indexes the roster once so every later lookup is a single map
// hit. A name matches an entry when it equals the entry's current IGN, the
// entry's real name, or any of its previous IGNs (exact, case-sensitive).
// When alias sets overlap across entries, the entry earliest in roster order
// wins; later claims on the same alias are ignored.
func NewResolver(roster []models.PlayerIdentity) Resolver {
	byAlias := make(map[string]string)
	claim := func(alias, realName string) {
		if alias == "" {
			return
		}
		if _, taken := byAlias[alias]; !taken {
			byAlias[alias] = realName
		}
	}
	for _, p := range roster {
		claim(p.IGN, p.RealName)
		claim(p.RealName, p.RealName)
		for _, prev := range p.PreviousIGNs {
			claim(prev, p.RealName)
		}
	}
	return &rosterResolver{byAlias: byAlias}
}

// Resolve returns the canonical real name for a raw in-game name. Unknown
// names are returned as-is, so unregistered or guest players still show up in
// the stats, just without any merged history. It never fails.
func (r *rosterResolver) Resolve(rawName string) string {
	if real, ok := r.byAlias[rawName]; ok {
		return real
	}
	return rawName
}

// ResolvePlayerName is the one-shot form of Resolve for callers that do not
// hold a prebuilt Resolver.
func ResolvePlayerName(rawName string, roster []models.PlayerIdentity) string {
	return NewResolver(roster).Resolve(rawName)
}
