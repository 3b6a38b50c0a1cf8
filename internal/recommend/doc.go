// Pastime - Activity Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pastime

/*
Package recommend ranks catalog activities for a user.

# Scoring

For a user with ratings R, likes L, pins P and dislikes D:

	score[j]  = sum over (i, r) in R of sim[i][j] * r
	score[l] += LikeBoost       for l in L   (0.5)
	score[p] += PinBoost        for p in P   (0.3)
	score[d] -= DislikePenalty  for d in D   (1.0)

Activities outside the user's preferences, and every activity the user has
already pinned, liked, disliked or rated, are then set to the sentinel score
(-10). The list is sorted by score descending with ties broken by ascending
id and cut to TopN. Sentinel rows are dropped, so a recommendation never
repeats something the user has seen or filtered out. With FillExcluded they
are kept and the list is always min(TopN, catalog size) long.

# Failure Handling

Rank is deterministic and returns errors as-is. Recommend never leaves the
caller empty-handed: on an unknown user, a non-finite score or a recovered
panic it returns a uniformly random sample flagged with Metadata.Fallback
and a *RecommendationError. That sample is the only non-deterministic output.

# Caching

Responses are cached by (username, profile revision, TopN). Any profile
mutation bumps the revision, so a cached list is never stale.

# Usage

	engine, err := recommend.NewEngine(cfg.Recommend.EngineConfig(), cat, sim, store, logger)
	resp, err := engine.Recommend(ctx, recommend.Request{Username: "alice", TopN: 5})
*/
package recommend
