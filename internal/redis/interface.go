package redis

import (
	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mocks/redis.go -package=redismocks -source=interface.go

// Client is the subset of go-redis the repositories depend on. Single node, cluster
// and sentinel clients all satisfy it.
type Client interface {
	redis.UniversalClient
}

// Pipeliner batches commands inside a MULTI/EXEC block
type Pipeliner interface {
	redis.Pipeliner
}

// Nil is returned by reads of missing keys
var Nil = redis.Nil
