package redis

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/redis/go-redis/v9"
)

// releaseScript deletes the lease only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// JobGuard keeps one settlement job from running twice at the same time
// across server instances. A lease expires after ttl even if its holder dies.
type JobGuard struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewJobGuard creates a new JobGuard.
func NewJobGuard(client *redis.Client, ttl time.Duration) *JobGuard {
	return &JobGuard{
		client: client,
		prefix: "job:",
		ttl:    ttl,
	}
}

// Acquire takes the lease for job. ok is false when another run holds it.
// release must be called once the run ends.
func (g *JobGuard) Acquire(ctx context.Context, job string) (release func(), ok bool, err error) {
	key := g.prefix + job
	token := ulid.Make().String()

	ok, err = g.client.SetNX(ctx, key, token, g.ttl).Result()
	if err != nil || !ok {
		return func() {}, false, err
	}

	return func() {
		_ = releaseScript.Run(context.WithoutCancel(ctx), g.client, []string{key}, token).Err()
	}, true, nil
}
